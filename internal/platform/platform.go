package platform

import "strings"

// Platform - площадка, которой принадлежит ссылка. Определяется только по тексту url.
type Platform uint8

const (
	Unsupported Platform = iota
	TikTok
	YouTube
	Instagram
	Facebook
)

type marker struct {
	domain   string
	platform Platform
}

// Порядок важен: первое совпадение побеждает
var markers = []marker{
	{"tiktok.com", TikTok},
	{"youtube.com", YouTube},
	{"youtu.be", YouTube},
	{"instagram.com", Instagram},
	{"facebook.com", Facebook},
	{"fb.watch", Facebook},
}

// Classify сопоставляет url с площадкой по вхождению доменного маркера без учёта регистра.
// Без сети, не может завершиться ошибкой; вызывается на каждое изменение ввода.
func Classify(url string) Platform {
	lower := strings.ToLower(url)

	for _, m := range markers {
		if strings.Contains(lower, m.domain) {
			return m.platform
		}
	}

	return Unsupported
}

// Supported - проверка для включения/выключения кнопки скачивания
func Supported(url string) bool {
	return Classify(url) != Unsupported
}

// Markers возвращает копию списка доменных маркеров в порядке проверки
func Markers() []string {
	res := make([]string, 0, len(markers))
	for _, m := range markers {
		res = append(res, m.domain)
	}

	return res
}

// All - все поддерживаемые площадки
func All() []Platform {
	return []Platform{TikTok, YouTube, Instagram, Facebook}
}

func (p Platform) String() string {
	switch p {
	case TikTok:
		return "TikTok"
	case YouTube:
		return "YouTube"
	case Instagram:
		return "Instagram"
	case Facebook:
		return "Facebook"
	default:
		return "Unsupported"
	}
}

// Slug - имя в нижнем регистре, используется в метриках и в названии по умолчанию ("tiktok_video")
func (p Platform) Slug() string {
	return strings.ToLower(p.String())
}

// DefaultTitle - название, когда площадка его не вернула
func (p Platform) DefaultTitle() string {
	return p.Slug() + "_video"
}

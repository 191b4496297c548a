package markup

import (
	"encoding/json"
	"html"
	"regexp"
	"strings"
	"sync"
)

// JSONArray ищет `"key"` в html/js и возвращает JSON массив, который идёт после него.
// Закрывающая ']' ищется с учётом вложенности, строк и экранирования.
func JSONArray(blob, key string) (string, bool) {
	quoted := `"` + key + `"`

	i := strings.Index(blob, quoted)
	if i == -1 {
		return "", false
	}

	// найти '[' после ключа, между ними допускается только ':' и пробелы
	rest := blob[i+len(quoted):]
	brStart := strings.IndexByte(rest, '[')
	if brStart == -1 || strings.Trim(rest[:brStart], ": \t\r\n") != "" {
		return "", false
	}

	pos := i + len(quoted) + brStart

	depth := 0
	inString := false
	escaped := false

	for j := pos; j < len(blob); j++ {
		c := blob[j]

		if escaped {
			escaped = false

			continue
		}

		if c == '\\' {
			escaped = true

			continue
		}

		if c == '"' {
			inString = !inString

			continue
		}

		if inString {
			continue
		}

		switch c {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return blob[pos : j+1], true
			}
		}
	}

	return "", false
}

// VideoVersion - интересующие нас поля элемента "video_versions"
type VideoVersion struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// VideoVersions разбирает массив "video_versions" (instagram и threads кладут его в html)
func VideoVersions(blob string) []VideoVersion {
	arr, ok := JSONArray(blob, "video_versions")
	if !ok {
		return nil
	}

	var versions []VideoVersion
	if err := json.Unmarshal([]byte(arr), &versions); err != nil {
		return nil
	}

	res := versions[:0]
	for _, v := range versions {
		// json.Unmarshal уже расшифровал \/ в /
		if strings.TrimSpace(v.URL) != "" {
			res = append(res, v)
		}
	}

	return res
}

var (
	keyPatternsMu sync.Mutex
	keyPatterns   = map[string]*regexp.Regexp{}
)

func keyPattern(key string) *regexp.Regexp {
	keyPatternsMu.Lock()
	defer keyPatternsMu.Unlock()

	re, ok := keyPatterns[key]
	if !ok {
		re = regexp.MustCompile(`"` + regexp.QuoteMeta(key) + `"\s*:\s*("(?:[^"\\]|\\.)*")`)
		keyPatterns[key] = re
	}

	return re
}

// JSONString возвращает первое непустое строковое значение по одному из ключей (в порядке ключей).
// Значение раскодируется как JSON строка: \/, \u0026 и т.п.
func JSONString(blob string, keys ...string) (string, bool) {
	for _, key := range keys {
		for _, m := range keyPattern(key).FindAllStringSubmatch(blob, -1) {
			var value string
			if err := json.Unmarshal([]byte(m[1]), &value); err != nil {
				continue
			}

			if value = strings.TrimSpace(value); value != "" {
				return value, true
			}
		}
	}

	return "", false
}

var mediaURLPattern = regexp.MustCompile(`https?:(?:\\?/){2}[^"'\s<>]+?\.(?:mp4|m4a|mp3|webm)(?:\?[^"'\s<>]*)?`)

// FindMediaURL - последний шанс: любой абсолютный адрес аудио/видео файла в тексте
func FindMediaURL(blob string) (string, bool) {
	m := mediaURLPattern.FindString(blob)
	if m == "" {
		return "", false
	}

	return UnescapeURL(m), true
}

// UnescapeURL снимает экранирование, типичное для url внутри js/html
func UnescapeURL(s string) string {
	s = strings.ReplaceAll(s, `\/`, `/`)
	s = strings.ReplaceAll(s, `\u0026`, `&`)
	s = strings.ReplaceAll(s, `\u003d`, `=`)

	return html.UnescapeString(s)
}

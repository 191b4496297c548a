package resolver

import (
	"fmt"
	"strings"
	"time"

	"github.com/StounhandJ/shorts_resolver/internal/platform"
)

// Quality - желаемое качество, носит рекомендательный характер
type Quality uint8

const (
	QualityBest Quality = iota
	Quality1080p
	Quality720p
	Quality480p
	Quality360p
)

var qualityNames = map[Quality]string{
	QualityBest:  "Best",
	Quality1080p: "1080p",
	Quality720p:  "720p",
	Quality480p:  "480p",
	Quality360p:  "360p",
}

// Qualities в порядке отображения пользователю
func Qualities() []Quality {
	return []Quality{QualityBest, Quality1080p, Quality720p, Quality480p, Quality360p}
}

// ParseQuality принимает "best", "1080p", "1080" и т.п. без учёта регистра. Пустая строка - Best.
func ParseQuality(s string) (Quality, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return QualityBest, nil
	}

	s = strings.TrimSuffix(s, "p")

	for q, name := range qualityNames {
		if strings.TrimSuffix(strings.ToLower(name), "p") == s {
			return q, nil
		}
	}

	return QualityBest, fmt.Errorf("unknown quality %q", s)
}

func (q Quality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}

	return fmt.Sprintf("Quality(%d)", q)
}

// Height - максимальная высота кадра; 0 для Best
func (q Quality) Height() int {
	switch q {
	case Quality1080p:
		return 1080
	case Quality720p:
		return 720
	case Quality480p:
		return 480
	case Quality360p:
		return 360
	default:
		return 0
	}
}

// Request создаётся вызывающей стороной на каждое действие пользователя
type Request struct {
	URL       string
	Quality   Quality
	AudioOnly bool
}

// Media - результат успешного разрешения ссылки. URL всегда прямой адрес файла, не адрес страницы.
type Media struct {
	URL          string
	Title        string
	Platform     platform.Platform
	IsAudio      bool
	ThumbnailURL string
	Duration     time.Duration
}

// Extension - расширение файла для сохранения
func (m Media) Extension() string {
	if m.IsAudio {
		return "mp3"
	}

	return "mp4"
}

// MimeType - для передачи в мессенджер
func (m Media) MimeType() string {
	if m.IsAudio {
		return "audio/mpeg"
	}

	return "video/mp4"
}

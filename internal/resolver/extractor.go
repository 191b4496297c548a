package resolver

import (
	"context"
	"time"

	"github.com/StounhandJ/shorts_resolver/internal/platform"
)

// Extractor - логика одной площадки: из ссылки страницы получить прямой адрес файла и название.
// Реализации должны уважать ctx и возвращать *Failure там, где вид ошибки известен.
type Extractor interface {
	Platform() platform.Platform
	Extract(ctx context.Context, req Request) (Extraction, error)
}

// Extraction - сырые данные от площадки до проверки резолвером
type Extraction struct {
	MediaURL     string
	Title        string
	ThumbnailURL string
	Duration     time.Duration
}

package instagram

import (
	"context"
	"strings"

	"github.com/StounhandJ/shorts_resolver/internal/extractors/markup"
	"github.com/StounhandJ/shorts_resolver/internal/platform"
	"github.com/StounhandJ/shorts_resolver/internal/resolver"
)

type Extractor struct {
	fetcher *resolver.Fetcher
}

func New(fetcher *resolver.Fetcher) *Extractor {
	return &Extractor{
		fetcher: fetcher,
	}
}

func (*Extractor) Platform() platform.Platform {
	return platform.Instagram
}

func (e *Extractor) Extract(ctx context.Context, req resolver.Request) (resolver.Extraction, error) {
	body, err := e.fetcher.Get(ctx, req.URL, resolver.AcceptHTML)
	if err != nil {
		return resolver.Extraction{}, err
	}

	doc, err := markup.ParseHTML(body)
	if err != nil {
		return resolver.Extraction{}, resolver.NewFailure(resolver.ParseError, "instagram html: %v", err)
	}

	mediaURL, ok := pickVersion(markup.VideoVersions(string(body)), req.Quality.Height())
	if !ok {
		mediaURL, ok = markup.MetaContent(doc, "og:video:secure_url", "og:video", "og:video:url")
	}

	if !ok {
		return resolver.Extraction{}, resolver.NewFailure(resolver.ParseError, "instagram: no video_versions or og:video in page")
	}

	title, _ := markup.MetaContent(doc, "og:title", "twitter:title")
	thumbnail, _ := markup.MetaContent(doc, "og:image")

	return resolver.Extraction{
		MediaURL:     markup.UnescapeURL(mediaURL),
		Title:        cleanTitle(title),
		ThumbnailURL: thumbnail,
	}, nil
}

// pickVersion - первая версия не выше limit (instagram отдаёт их по убыванию качества),
// если таких нет или limit == 0, то первая. Для вертикальных видео "p" - это ширина.
func pickVersion(versions []markup.VideoVersion, limit int) (string, bool) {
	if len(versions) == 0 {
		return "", false
	}

	if limit != 0 {
		for _, v := range versions {
			size := v.Height
			if v.Width != 0 && v.Width < size {
				size = v.Width
			}

			if size != 0 && size <= limit {
				return v.URL, true
			}
		}
	}

	return versions[0].URL, true
}

// cleanTitle убирает хвост вида " • Instagram" / " | Instagram"
func cleanTitle(title string) string {
	for _, sep := range []string{" • Instagram", " | Instagram", " on Instagram"} {
		if i := strings.Index(title, sep); i > 0 {
			title = title[:i]
		}
	}

	return strings.TrimSpace(title)
}

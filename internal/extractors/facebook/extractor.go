package facebook

import (
	"context"
	"strings"

	"github.com/StounhandJ/shorts_resolver/internal/extractors/markup"
	"github.com/StounhandJ/shorts_resolver/internal/platform"
	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	"github.com/StounhandJ/shorts_resolver/internal/utils"
)

// Ключи, под которыми facebook кладёт прямые ссылки в json внутри страницы (старые и новые варианты)
var (
	hdKeys = []string{"browser_native_hd_url", "playable_url_quality_hd", "hd_src", "hd_src_no_ratelimit"}
	sdKeys = []string{"browser_native_sd_url", "playable_url", "sd_src", "sd_src_no_ratelimit"}
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
	return platform.Facebook
}

func (e *Extractor) Extract(ctx context.Context, req resolver.Request) (resolver.Extraction, error) {
	body, err := e.fetcher.Get(ctx, req.URL, resolver.AcceptHTML)
	if err != nil {
		return resolver.Extraction{}, err
	}

	doc, err := markup.ParseHTML(body)
	if err != nil {
		return resolver.Extraction{}, resolver.NewFailure(resolver.ParseError, "facebook html: %v", err)
	}

	keys := append(append([]string{}, sdKeys...), hdKeys...)
	if h := req.Quality.Height(); h == 0 || h >= 720 {
		keys = append(append([]string{}, hdKeys...), sdKeys...)
	}

	mediaURL, ok := markup.JSONString(string(body), keys...)
	if !ok {
		mediaURL, ok = markup.MetaContent(doc, "og:video:secure_url", "og:video", "og:video:url")
	}

	if !ok {
		return resolver.Extraction{}, resolver.NewFailure(resolver.ParseError, "facebook: no playable url in page")
	}

	title, _ := markup.MetaContent(doc, "og:title", "twitter:title")
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	thumbnail, _ := markup.MetaContent(doc, "og:image")

	return resolver.Extraction{
		MediaURL:     markup.UnescapeURL(mediaURL),
		Title:        utils.TruncateRunes(strings.TrimSuffix(title, " | Facebook"), 200),
		ThumbnailURL: thumbnail,
	}, nil
}

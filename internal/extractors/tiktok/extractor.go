package tiktok

import (
	"context"

	"github.com/StounhandJ/shorts_resolver/internal/extractors/markup"
	"github.com/StounhandJ/shorts_resolver/internal/platform"
	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	"github.com/StounhandJ/shorts_resolver/internal/utils"
)

var (
	hdKeys    = []string{"hdplay", "playAddr", "downloadAddr", "play", "video_url", "wmplay"}
	sdKeys    = []string{"play", "playAddr", "downloadAddr", "video_url", "hdplay", "wmplay"}
	audioKeys = []string{"music", "musicUrl", "playUrl"}
)

type Extractor struct {
	fetcher  *resolver.Fetcher
	endpoint string
}

func New(fetcher *resolver.Fetcher, endpoint string) *Extractor {
	return &Extractor{
		fetcher:  fetcher,
		endpoint: utils.StringNotEmptyCoalesce(endpoint, DefaultEndpoint),
	}
}

func (*Extractor) Platform() platform.Platform {
	return platform.TikTok
}

func (e *Extractor) Extract(ctx context.Context, req resolver.Request) (resolver.Extraction, error) {
	data, body, err := fetchOembed(ctx, e.fetcher, e.endpoint, req.URL)
	if err != nil {
		return resolver.Extraction{}, err
	}

	mediaURL, ok := findAssetURL(data, string(body), req)
	if !ok {
		return resolver.Extraction{}, resolver.NewFailure(resolver.ParseError, "no video url in oembed response")
	}

	title := data.Title
	if title == "" {
		// у сторонних API название лежит во вложенном объекте
		title, _ = markup.JSONString(string(body), "title")
	}

	thumbnail := data.ThumbnailURL
	if thumbnail == "" {
		thumbnail, _ = markup.JSONString(string(body), "origin_cover", "cover")
	}

	return resolver.Extraction{
		MediaURL:     mediaURL,
		Title:        title,
		ThumbnailURL: thumbnail,
	}, nil
}

// findAssetURL ищет прямой адрес файла: сначала по известным ключам во всём ответе,
// затем любой адрес медиафайла внутри embed разметки и ответа целиком
func findAssetURL(data oembedResponse, body string, req resolver.Request) (string, bool) {
	keys := sdKeys
	if h := req.Quality.Height(); h == 0 || h >= 720 {
		keys = hdKeys
	}

	if req.AudioOnly {
		keys = append(append([]string{}, audioKeys...), keys...)
	}

	if v, ok := markup.JSONString(body, keys...); ok {
		return markup.UnescapeURL(v), true
	}

	for _, blob := range []string{data.HTML, body} {
		if v, ok := markup.FindMediaURL(blob); ok {
			return v, true
		}
	}

	return "", false
}

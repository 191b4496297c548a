//go:generate easyjson oembed.go
package tiktok

import (
	"context"
	"fmt"
	netUrl "net/url"
	"strings"

	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	easyjson "github.com/mailru/easyjson"
)

const (
	DefaultEndpoint = "https://www.tiktok.com/oembed"
)

// easyjson:json
type oembedResponse struct {
	// code/msg отдают совместимые сторонние API (tikwm и т.п.), у самого tiktok их нет
	Code int    `json:"code,omitempty"`
	Msg  string `json:"msg,omitempty"`

	Version         string `json:"version,omitempty"`
	Type            string `json:"type,omitempty"`
	Title           string `json:"title,omitempty"`
	AuthorURL       string `json:"author_url,omitempty"`
	AuthorName      string `json:"author_name,omitempty"`
	HTML            string `json:"html,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	ThumbnailWidth  int    `json:"thumbnail_width,omitempty"`
	ThumbnailHeight int    `json:"thumbnail_height,omitempty"`
	ProviderName    string `json:"provider_name,omitempty"`
	EmbedProductID  string `json:"embed_product_id,omitempty"`
}

func fetchOembed(ctx context.Context, fetcher *resolver.Fetcher, endpoint, postURL string) (oembedResponse, []byte, error) {
	apiURL := fmt.Sprintf("%s?url=%s", endpoint, netUrl.QueryEscape(postURL))

	body, err := fetcher.Get(ctx, apiURL, resolver.AcceptJSON)
	if err != nil {
		return oembedResponse{}, nil, err
	}

	var data oembedResponse
	if err := easyjson.Unmarshal(body, &data); err != nil {
		return oembedResponse{}, nil, resolver.NewFailure(resolver.ParseError, "decode oembed: %v", err)
	}

	if data.Code != 0 {
		switch {
		case strings.HasPrefix(data.Msg, "Free Api Limit"):
			return data, body, resolver.NewFailure(resolver.NetworkError, "rate limit exceeded: %s", data.Msg)
		default:
			return data, body, resolver.NewFailure(resolver.ParseError, "api error %d: %s", data.Code, data.Msg)
		}
	}

	return data, body, nil
}

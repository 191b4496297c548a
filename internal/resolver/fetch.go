package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/StounhandJ/shorts_resolver/internal/utils"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 YaBrowser/25.10.0.0 Safari/537.36"

	AcceptJSON = "application/json"
	AcceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7"

	// MaxBodySize - ответ длиннее считается ParseError, а не обрезается
	MaxBodySize = 16 << 20
)

// Fetcher - общий для экстракторов GET с браузерным User-Agent и разбором статусов
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}

	return &Fetcher{
		client:    client,
		userAgent: utils.StringNotEmptyCoalesce(userAgent, DefaultUserAgent),
	}
}

// Client - http клиент для библиотек площадок, которым нужен свой транспорт
func (f *Fetcher) Client() *http.Client {
	return f.client
}

// Get выполняет один запрос. 403 - RegionBlocked, прочие не-2xx и сбои соединения - NetworkError.
func (f *Fetcher) Get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, NewFailure(ParseError, "build request: %v", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", accept)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, transportFailure(ctx, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			utils.Log.Error(err)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, NewFailure(RegionBlocked, "GET %s: status %d", req.URL.Host, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, NewFailure(NetworkError, "GET %s: status %d", req.URL.Host, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, transportFailure(ctx, fmt.Errorf("read body: %w", err))
	}

	if len(body) > MaxBodySize {
		return nil, NewFailure(ParseError, "GET %s: response too large (over %d bytes)", req.URL.Host, MaxBodySize)
	}

	return body, nil
}

func transportFailure(ctx context.Context, err error) *Failure {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		err = fmt.Errorf("%w: %w", ctxErr, err)
	}

	return AsFailure(err)
}

package resolver

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/StounhandJ/shorts_resolver/internal/metrics"
	"github.com/StounhandJ/shorts_resolver/internal/platform"
	"github.com/StounhandJ/shorts_resolver/internal/utils"
	"github.com/sirupsen/logrus"
)

const DefaultTimeout = 15 * time.Second

// Resolver не хранит изменяемого состояния между вызовами, Resolve можно звать конкурентно
type Resolver struct {
	extractors map[platform.Platform]Extractor
	timeout    time.Duration
}

type Option func(*Resolver)

// WithExtractor регистрирует экстрактор для его площадки, повторная регистрация заменяет прежний
func WithExtractor(e Extractor) Option {
	return func(r *Resolver) {
		r.extractors[e.Platform()] = e
	}
}

func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func New(opts ...Option) *Resolver {
	r := &Resolver{
		extractors: make(map[platform.Platform]Extractor),
		timeout:    DefaultTimeout,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Resolver) Timeout() time.Duration {
	return r.timeout
}

// Classify - то же, что platform.Classify, но учитывает наличие экстрактора
func (r *Resolver) Classify(rawURL string) platform.Platform {
	p := platform.Classify(rawURL)
	if _, ok := r.extractors[p]; !ok {
		return platform.Unsupported
	}

	return p
}

// Resolve возвращает Media либо ошибку, которая всегда является *Failure
func (r *Resolver) Resolve(ctx context.Context, req Request) (Media, error) {
	start := time.Now()
	p := platform.Classify(req.URL)

	media, err := r.resolve(ctx, p, req)

	outcome := "ok"
	if err != nil {
		outcome = KindOf(err).String()

		utils.Log.WithFields(logrus.Fields{
			"platform": p.String(),
			"url":      req.URL,
		}).Debugf("resolve failed: %v", err)
	}

	metrics.Resolutions.WithLabelValues(p.Slug(), outcome).Inc()
	metrics.ResolveDuration.WithLabelValues(p.Slug()).Observe(time.Since(start).Seconds())

	return media, err
}

func (r *Resolver) resolve(ctx context.Context, p platform.Platform, req Request) (Media, error) {
	if p == platform.Unsupported {
		return Media{}, NewFailure(Unsupported, "no known platform in %q", req.URL)
	}

	extractor, ok := r.extractors[p]
	if !ok {
		return Media{}, NewFailure(Unsupported, "no extractor for %s", p)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	type result struct {
		extraction Extraction
		err        error
	}

	done := make(chan result, 1)

	go func() {
		extraction, err := extractor.Extract(ctx, req)
		done <- result{extraction, err}
	}()

	var res result

	select {
	case res = <-done:
	case <-ctx.Done():
		// экстрактор получит отмену через ctx, его результат уже не нужен
		return Media{}, AsFailure(ctx.Err())
	}

	if res.err != nil {
		if ctx.Err() != nil {
			return Media{}, AsFailure(ctx.Err())
		}

		return Media{}, AsFailure(res.err)
	}

	if err := validateMediaURL(res.extraction.MediaURL, req.URL); err != nil {
		return Media{}, err
	}

	return Media{
		URL:          res.extraction.MediaURL,
		Title:        utils.StringNotEmptyCoalesce(strings.TrimSpace(res.extraction.Title), p.DefaultTitle()),
		Platform:     p,
		IsAudio:      req.AudioOnly,
		ThumbnailURL: res.extraction.ThumbnailURL,
		Duration:     res.extraction.Duration,
	}, nil
}

// validateMediaURL - адрес должен быть абсолютным http(s) и не совпадать с адресом страницы
func validateMediaURL(mediaURL, pageURL string) error {
	if strings.TrimSpace(mediaURL) == "" {
		return NewFailure(ParseError, "no media url in response")
	}

	u, err := url.Parse(mediaURL)
	if err != nil {
		return NewFailure(ParseError, "malformed media url: %v", err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NewFailure(ParseError, "media url is not absolute: %q", mediaURL)
	}

	if samePage(u, pageURL) {
		return NewFailure(ParseError, "media url equals page url")
	}

	return nil
}

// samePage - тот же адрес с точностью до схемы, регистра и завершающего "/"
func samePage(media *url.URL, pageURL string) bool {
	page, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil {
		return false
	}

	return strings.EqualFold(media.Host, page.Host) &&
		strings.EqualFold(strings.TrimSuffix(media.Path, "/"), strings.TrimSuffix(page.Path, "/")) &&
		media.RawQuery == page.RawQuery
}

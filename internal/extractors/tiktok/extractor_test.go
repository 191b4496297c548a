package tiktok_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/StounhandJ/shorts_resolver/internal/extractors/tiktok"
	"github.com/StounhandJ/shorts_resolver/internal/platform"
	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	postURL  = "https://www.tiktok.com/@scout2015/video/6718335390845095173"
	assetURL = "https://v16-webapp-prime.tiktok.com/video/tos/useast2a/abc.mp4?a=1988"
)

type stub struct {
	server *httptest.Server
	calls  atomic.Int32
}

func newStub(t *testing.T, handler http.HandlerFunc) *stub {
	t.Helper()

	s := &stub{}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(s.server.Close)

	return s
}

func (s *stub) resolver(timeout time.Duration) *resolver.Resolver {
	fetcher := resolver.NewFetcher(s.server.Client(), "")

	return resolver.New(
		resolver.WithExtractor(tiktok.New(fetcher, s.server.URL+"/oembed")),
		resolver.WithTimeout(timeout),
	)
}

func jsonBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestResolveSample(t *testing.T) {
	s := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oembed", r.URL.Path)
		assert.Equal(t, postURL, r.URL.Query().Get("url"))
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")

		jsonBody(`{"version":"1.0","type":"video","title":"Sample","author_name":"Scout",
			"html":"<blockquote cite=\"`+postURL+`\"><video src=\"`+assetURL+`\"></video></blockquote>",
			"thumbnail_url":"https://p16-sign.tiktokcdn.com/thumb.jpeg","thumbnail_width":720}`)(w, r)
	})

	for _, audio := range []bool{false, true} {
		media, err := s.resolver(time.Second).Resolve(context.Background(), resolver.Request{URL: postURL, AudioOnly: audio})
		require.NoError(t, err)
		require.Equal(t, assetURL, media.URL)
		require.Equal(t, "Sample", media.Title)
		require.Equal(t, platform.TikTok, media.Platform)
		require.Equal(t, audio, media.IsAudio)
		require.Equal(t, "https://p16-sign.tiktokcdn.com/thumb.jpeg", media.ThumbnailURL)
	}
}

func TestResolveMissingTitle(t *testing.T) {
	s := newStub(t, jsonBody(`{"html":"<video src=\"`+assetURL+`\"></video>"}`))

	media, err := s.resolver(time.Second).Resolve(context.Background(), resolver.Request{URL: postURL})
	require.NoError(t, err)
	require.Equal(t, "tiktok_video", media.Title)
}

func TestResolveRegionBlocked(t *testing.T) {
	s := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := s.resolver(time.Second).Resolve(context.Background(), resolver.Request{URL: postURL})
	require.Equal(t, resolver.RegionBlocked, resolver.KindOf(err))
}

func TestResolveServerError(t *testing.T) {
	s := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := s.resolver(time.Second).Resolve(context.Background(), resolver.Request{URL: postURL})
	require.Equal(t, resolver.NetworkError, resolver.KindOf(err))
}

func TestResolveMalformedBody(t *testing.T) {
	s := newStub(t, jsonBody(`<html>not json</html>`))

	_, err := s.resolver(time.Second).Resolve(context.Background(), resolver.Request{URL: postURL})
	require.Equal(t, resolver.ParseError, resolver.KindOf(err))
}

func TestResolveNoAssetInEmbed(t *testing.T) {
	s := newStub(t, jsonBody(`{"title":"Sample","html":"<blockquote cite=\"`+postURL+`\"></blockquote>"}`))

	_, err := s.resolver(time.Second).Resolve(context.Background(), resolver.Request{URL: postURL})
	require.Equal(t, resolver.ParseError, resolver.KindOf(err))
}

func TestResolveNeverResponds(t *testing.T) {
	release := make(chan struct{})
	s := newStub(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	t.Cleanup(func() { close(release) })

	start := time.Now()
	_, err := s.resolver(100*time.Millisecond).Resolve(context.Background(), resolver.Request{URL: postURL})
	require.Equal(t, resolver.NetworkError, resolver.KindOf(err))
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestResolveUnsupportedMakesNoRequest(t *testing.T) {
	s := newStub(t, jsonBody(`{}`))

	_, err := s.resolver(time.Second).Resolve(context.Background(), resolver.Request{URL: "https://vimeo.com/76979871"})
	require.Equal(t, resolver.Unsupported, resolver.KindOf(err))
	require.Zero(t, s.calls.Load())
}

func TestResolveIdempotent(t *testing.T) {
	s := newStub(t, jsonBody(`{"title":"Sample","html":"<video src=\"`+assetURL+`\"></video>"}`))
	r := s.resolver(time.Second)
	req := resolver.Request{URL: postURL, Quality: resolver.Quality480p}

	first, err := r.Resolve(context.Background(), req)
	require.NoError(t, err)

	second, err := r.Resolve(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.EqualValues(t, 2, s.calls.Load())
}

func TestResolveThirdPartyAPI(t *testing.T) {
	body := `{"code":0,"msg":"success","data":{"title":"From api","origin_cover":"https://cdn.example.com/c.jpg",
		"play":"https://cdn.example.com/sd.mp4","hdplay":"https://cdn.example.com/hd.mp4",
		"music":"https://cdn.example.com/track.mp3"}}`
	s := newStub(t, jsonBody(body))
	r := s.resolver(time.Second)

	cases := []struct {
		req  resolver.Request
		want string
	}{
		{resolver.Request{URL: postURL}, "https://cdn.example.com/hd.mp4"},
		{resolver.Request{URL: postURL, Quality: resolver.Quality360p}, "https://cdn.example.com/sd.mp4"},
		{resolver.Request{URL: postURL, AudioOnly: true}, "https://cdn.example.com/track.mp3"},
	}

	for _, c := range cases {
		media, err := r.Resolve(context.Background(), c.req)
		require.NoError(t, err)
		require.Equal(t, c.want, media.URL)
		require.Equal(t, "From api", media.Title)
		require.Equal(t, "https://cdn.example.com/c.jpg", media.ThumbnailURL)
	}
}

func TestResolveThirdPartyAPIErrors(t *testing.T) {
	cases := map[string]resolver.Kind{
		`{"code":-1,"msg":"Free Api Limit: 1 request/second."}`: resolver.NetworkError,
		`{"code":-1,"msg":"Url parsing is failed!"}`:            resolver.ParseError,
	}

	for body, kind := range cases {
		s := newStub(t, jsonBody(body))

		_, err := s.resolver(time.Second).Resolve(context.Background(), resolver.Request{URL: postURL})
		require.Equal(t, kind, resolver.KindOf(err), body)
	}
}

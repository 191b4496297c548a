package server

import (
	"context"
	"net"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/StounhandJ/shorts_resolver/internal/platform"
	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	easyjson "github.com/mailru/easyjson"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

type stubExtractor struct {
	extraction resolver.Extraction
	err        error
	block      bool
}

func (s stubExtractor) Platform() platform.Platform {
	return platform.TikTok
}

func (s stubExtractor) Extract(ctx context.Context, _ resolver.Request) (resolver.Extraction, error) {
	if s.block {
		<-ctx.Done()
		return resolver.Extraction{}, ctx.Err()
	}

	return s.extraction, s.err
}

func startServer(t *testing.T, e resolver.Extractor, opts ...resolver.Option) *fasthttp.HostClient {
	t.Helper()

	r := resolver.New(append([]resolver.Option{resolver.WithExtractor(e)}, opts...)...)

	s := New(r)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	ln := fasthttputil.NewInmemoryListener()

	go func() {
		_ = s.Serve(ln)
	}()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		_ = s.Shutdown(ctx)
	})

	return &fasthttp.HostClient{
		Addr: "resolver.test",
		Dial: func(string) (net.Conn, error) { return ln.Dial() },
	}
}

func get(t *testing.T, c *fasthttp.HostClient, path string, query url.Values) (int, []byte) {
	t.Helper()

	status, body, err := c.Get(nil, "http://resolver.test"+path+"?"+query.Encode())
	require.NoError(t, err)

	return status, body
}

var sample = stubExtractor{extraction: resolver.Extraction{
	MediaURL:     "https://cdn.example.com/v.mp4",
	Title:        "Sample",
	ThumbnailURL: "https://cdn.example.com/t.jpg",
	Duration:     42 * time.Second,
}}

func TestClassify(t *testing.T) {
	c := startServer(t, sample)

	status, body := get(t, c, "/classify", url.Values{"url": {"https://www.TikTok.com/@a/video/1"}})
	require.Equal(t, fasthttp.StatusOK, status)

	var resp classifyResponse
	require.NoError(t, easyjson.Unmarshal(body, &resp))
	require.Equal(t, classifyResponse{Platform: "TikTok", Supported: true}, resp)

	// для YouTube экстрактор не зарегистрирован
	status, body = get(t, c, "/classify", url.Values{"url": {"https://youtu.be/x"}})
	require.Equal(t, fasthttp.StatusOK, status)
	require.NoError(t, easyjson.Unmarshal(body, &resp))
	require.Equal(t, classifyResponse{Platform: "Unsupported", Supported: false}, resp)

	status, _ = get(t, c, "/classify", url.Values{})
	require.Equal(t, fasthttp.StatusBadRequest, status)
}

func TestResolve(t *testing.T) {
	c := startServer(t, sample)

	status, body := get(t, c, "/resolve", url.Values{"url": {"https://www.tiktok.com/@a/video/1"}, "quality": {"720p"}})
	require.Equal(t, fasthttp.StatusOK, status)

	var resp mediaResponse
	require.NoError(t, easyjson.Unmarshal(body, &resp))
	require.Equal(t, mediaResponse{
		URL:          "https://cdn.example.com/v.mp4",
		Title:        "Sample",
		Platform:     "TikTok",
		MimeType:     "video/mp4",
		FileName:     "Sample_1700000000000.mp4",
		ThumbnailURL: "https://cdn.example.com/t.jpg",
		Duration:     42,
	}, resp)
}

func TestResolveAudio(t *testing.T) {
	c := startServer(t, sample)

	status, body := get(t, c, "/resolve", url.Values{"url": {"https://www.tiktok.com/@a/video/1"}, "audio": {"true"}})
	require.Equal(t, fasthttp.StatusOK, status)

	var resp mediaResponse
	require.NoError(t, easyjson.Unmarshal(body, &resp))
	require.True(t, resp.IsAudio)
	require.Equal(t, "Sample_1700000000000.mp3", resp.FileName)
	require.Equal(t, "audio/mpeg", resp.MimeType)
}

func TestResolveBadRequest(t *testing.T) {
	c := startServer(t, sample)

	status, _ := get(t, c, "/resolve", url.Values{"url": {"https://www.tiktok.com/@a/video/1"}, "quality": {"4k"}})
	require.Equal(t, fasthttp.StatusBadRequest, status)

	status, _ = get(t, c, "/resolve", url.Values{})
	require.Equal(t, fasthttp.StatusBadRequest, status)
}

func TestResolveFailures(t *testing.T) {
	cases := []struct {
		name      string
		extractor stubExtractor
		url       string
		status    int
		kind      string
		retryable bool
	}{
		{
			name:      "unsupported",
			extractor: sample,
			url:       "https://example.com/v",
			status:    fasthttp.StatusUnprocessableEntity,
			kind:      "unsupported",
		},
		{
			name:      "region blocked",
			extractor: stubExtractor{err: resolver.NewFailure(resolver.RegionBlocked, "status 403")},
			url:       "https://www.tiktok.com/@a/video/1",
			status:    fasthttp.StatusUnavailableForLegalReasons,
			kind:      "region_blocked",
			retryable: true,
		},
		{
			name:      "parse error",
			extractor: stubExtractor{extraction: resolver.Extraction{Title: "no url"}},
			url:       "https://www.tiktok.com/@a/video/1",
			status:    fasthttp.StatusBadGateway,
			kind:      "parse_error",
		},
		{
			name:      "network error",
			extractor: stubExtractor{err: resolver.NewFailure(resolver.NetworkError, "status 503")},
			url:       "https://www.tiktok.com/@a/video/1",
			status:    fasthttp.StatusBadGateway,
			kind:      "network_error",
			retryable: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := startServer(t, tc.extractor)

			status, body := get(t, c, "/resolve", url.Values{"url": {tc.url}})
			require.Equal(t, tc.status, status)

			var resp errorResponse
			require.NoError(t, easyjson.Unmarshal(body, &resp))
			require.Equal(t, tc.kind, resp.Kind)
			require.Equal(t, tc.retryable, resp.Retryable)
		})
	}
}

func TestResolveTimeout(t *testing.T) {
	c := startServer(t, stubExtractor{block: true}, resolver.WithTimeout(50*time.Millisecond))

	status, body := get(t, c, "/resolve", url.Values{"url": {"https://www.tiktok.com/@a/video/1"}})
	require.Equal(t, fasthttp.StatusGatewayTimeout, status)

	var resp errorResponse
	require.NoError(t, easyjson.Unmarshal(body, &resp))
	require.Equal(t, "network_error", resp.Kind)
	require.True(t, resp.Retryable)
}

func TestMetricsAndRouting(t *testing.T) {
	c := startServer(t, sample)

	get(t, c, "/resolve", url.Values{"url": {"https://www.tiktok.com/@a/video/1"}})

	status, body := get(t, c, "/metrics", url.Values{})
	require.Equal(t, fasthttp.StatusOK, status)
	require.True(t, strings.Contains(string(body), "shorts_resolver_resolutions_total"))

	status, _ = get(t, c, "/nope", url.Values{})
	require.Equal(t, fasthttp.StatusNotFound, status)

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("http://resolver.test/classify?url=x")
	req.Header.SetMethod(fasthttp.MethodPost)
	require.NoError(t, c.Do(req, resp))
	require.Equal(t, fasthttp.StatusMethodNotAllowed, resp.StatusCode())
}

package handlers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/StounhandJ/shorts_resolver/internal/downloads"
	"github.com/StounhandJ/shorts_resolver/internal/platform"
	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingLinks(t *testing.T) {
	links := newPendingLinks(time.Minute)

	now := time.Unix(1700000000, 0)
	links.now = func() time.Time { return now }

	id := links.Put("https://www.tiktok.com/@a/video/1")
	require.NotEmpty(t, id)

	url, ok := links.Get(id)
	require.True(t, ok)
	require.Equal(t, "https://www.tiktok.com/@a/video/1", url)

	_, ok = links.Get("missing")
	require.False(t, ok)

	now = now.Add(2 * time.Minute)

	_, ok = links.Get(id)
	require.False(t, ok, "expired link must not be returned")

	links.Put("https://youtu.be/x")
	require.Equal(t, 1, links.Len(), "expired links are pruned on put")
}

func TestChoiceRoundTrip(t *testing.T) {
	for _, c := range []choice{
		{linkID: "abc", quality: resolver.QualityBest},
		{linkID: "abc", quality: resolver.Quality720p},
		{linkID: "abc", audio: true},
	} {
		data := c.encode()
		require.LessOrEqual(t, len(data), 64)

		decoded, ok := decodeChoice(data)
		require.True(t, ok, data)
		require.Equal(t, c, decoded)
	}
}

func TestDecodeChoiceInvalid(t *testing.T) {
	for _, data := range []string{"", "720p", "|abc", "720p|", "4k|abc"} {
		_, ok := decodeChoice(data)
		require.False(t, ok, data)
	}
}

func TestQualityKeyboard(t *testing.T) {
	kb := qualityKeyboard("abc")

	var data []string
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			data = append(data, b.CallbackData)
		}
	}

	require.Len(t, data, len(resolver.Qualities())+1)
	require.Equal(t, "audio|abc", data[len(data)-1])

	for _, d := range data {
		_, ok := decodeChoice(d)
		require.True(t, ok, d)
	}
}

func TestFailureReply(t *testing.T) {
	text, markup := failureReply(resolver.NewFailure(resolver.RegionBlocked, "status 403"), "720p|abc")
	require.Equal(t, textRegionBlocked, text)

	kb, ok := markup.(*telego.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Equal(t, "720p|abc", kb.InlineKeyboard[0][0].CallbackData)

	for _, kind := range []resolver.Kind{resolver.NetworkError, resolver.ParseError, resolver.Unsupported} {
		text, markup := failureReply(resolver.NewFailure(kind, "x"), "720p|abc")
		require.Equal(t, textFailed, text)
		require.Nil(t, markup)
	}
}

func TestFindLink(t *testing.T) {
	require.Equal(t, "https://vm.tiktok.com/x/", findLink("смотри https://vm.tiktok.com/x/ !"))
	require.Equal(t, "http://fb.watch/abc", findLink("http://fb.watch/abc"))
	require.Empty(t, findLink("no links here www.tiktok.com"))
}

func TestInlineResult(t *testing.T) {
	media := resolver.Media{
		URL:      "https://cdn.example.com/v.mp4",
		Title:    "Sample",
		Platform: platform.TikTok,
		Duration: 75 * time.Second,
	}

	res := inlineResult("https://www.tiktok.com/@a/video/1", media)
	require.Equal(t, media.URL, res.VideoURL)
	require.Equal(t, media.URL, res.ThumbnailURL, "thumbnail falls back to the video")
	require.Equal(t, "video/mp4", res.MimeType)
	require.Equal(t, "TikTok 01:15", res.Description)
	require.NotEmpty(t, res.ID)
}

func TestNewHandlerSettings(t *testing.T) {
	h := NewHandler(resolver.New(), downloads.Settings{})
	require.NotEmpty(t, h.settings.BaseDir)
	require.Equal(t, downloads.DefaultMaxConcurrent, cap(h.slots))

	h = NewHandler(resolver.New(), downloads.Settings{BaseDir: "/data", MaxConcurrent: 1})
	require.Equal(t, "/data", h.settings.BaseDir)
	require.Equal(t, 1, cap(h.slots))
}

type countingEnqueuer struct {
	active, peak *atomic.Int32
	jobs         chan downloads.Job
}

func (e countingEnqueuer) Enqueue(_ context.Context, job downloads.Job) error {
	n := e.active.Add(1)
	defer e.active.Add(-1)

	for {
		peak := e.peak.Load()
		if n <= peak || e.peak.CompareAndSwap(peak, n) {
			break
		}
	}

	time.Sleep(10 * time.Millisecond)
	e.jobs <- job

	return nil
}

func TestEnqueueRespectsMaxConcurrent(t *testing.T) {
	h := NewHandler(resolver.New(), downloads.Settings{BaseDir: "/data", MaxConcurrent: 2})

	e := countingEnqueuer{active: new(atomic.Int32), peak: new(atomic.Int32), jobs: make(chan downloads.Job, 8)}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			assert.NoError(t, h.enqueue(context.Background(), e, downloads.Job{}))
		}()
	}

	wg.Wait()
	require.Len(t, e.jobs, 8)
	require.LessOrEqual(t, e.peak.Load(), int32(2))
}

func TestEnqueueCancelled(t *testing.T) {
	h := NewHandler(resolver.New(), downloads.Settings{MaxConcurrent: 1})
	h.slots <- struct{}{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.enqueue(ctx, countingEnqueuer{}, downloads.Job{})
	require.ErrorIs(t, err, context.Canceled)
}

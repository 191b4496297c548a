package youtube

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/StounhandJ/shorts_resolver/internal/platform"
	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	"github.com/kkdai/youtube/v2"
)

type Extractor struct {
	client *youtube.Client
}

func New(client *http.Client) *Extractor {
	return &Extractor{
		client: &youtube.Client{
			HTTPClient: client,
		},
	}
}

func (*Extractor) Platform() platform.Platform {
	return platform.YouTube
}

func (e *Extractor) Extract(ctx context.Context, req resolver.Request) (resolver.Extraction, error) {
	video, err := e.client.GetVideoContext(ctx, req.URL)
	if err != nil {
		return resolver.Extraction{}, mapError(err)
	}

	format, ok := selectFormat(video.Formats, req)
	if !ok {
		return resolver.Extraction{}, resolver.NewFailure(resolver.ParseError, "no downloadable format for %s", video.ID)
	}

	streamURL, err := e.client.GetStreamURLContext(ctx, video, format)
	if err != nil {
		return resolver.Extraction{}, mapError(err)
	}

	var thumbnail string
	if len(video.Thumbnails) > 0 {
		thumbnail = video.Thumbnails[len(video.Thumbnails)-1].URL
	}

	return resolver.Extraction{
		MediaURL:     streamURL,
		Title:        video.Title,
		ThumbnailURL: thumbnail,
		Duration:     video.Duration,
	}, nil
}

// selectFormat выбирает поток под запрос. Для видео берутся только форматы со звуком,
// качество - наибольшее, не превышающее запрошенное; если все выше, то наименьшее.
func selectFormat(formats youtube.FormatList, req resolver.Request) (*youtube.Format, bool) {
	if req.AudioOnly {
		if f, ok := bestAudio(formats); ok {
			return f, true
		}
	}

	candidates := formats.WithAudioChannels().Type("video/mp4")
	if len(candidates) == 0 {
		candidates = formats.WithAudioChannels()
	}

	if len(candidates) == 0 {
		return nil, false
	}

	limit := req.Quality.Height()

	var best, lowest *youtube.Format

	for i := range candidates {
		f := &candidates[i]

		if lowest == nil || shortSide(f) < shortSide(lowest) {
			lowest = f
		}

		if limit != 0 && shortSide(f) > limit {
			continue
		}

		if best == nil || shortSide(f) > shortSide(best) || (shortSide(f) == shortSide(best) && f.Bitrate > best.Bitrate) {
			best = f
		}
	}

	if best == nil {
		best = lowest
	}

	return best, true
}

// shortSide - "p" у вертикальных shorts считается по ширине
func shortSide(f *youtube.Format) int {
	if f.Width != 0 && f.Width < f.Height {
		return f.Width
	}

	return f.Height
}

// bestAudio - m4a с наибольшим битрейтом, webm/opus только если m4a нет
func bestAudio(formats youtube.FormatList) (*youtube.Format, bool) {
	audio := formats.Type("audio/mp4")
	if len(audio) == 0 {
		audio = formats.Type("audio/")
	}

	var best *youtube.Format

	for i := range audio {
		f := &audio[i]
		if best == nil || f.Bitrate > best.Bitrate {
			best = f
		}
	}

	return best, best != nil
}

func mapError(err error) error {
	var status youtube.ErrUnexpectedStatusCode
	if errors.As(err, &status) {
		if int(status) == http.StatusForbidden {
			return resolver.NewFailure(resolver.RegionBlocked, "youtube: %v", err)
		}

		return resolver.NewFailure(resolver.NetworkError, "youtube: %v", err)
	}

	var playability *youtube.ErrPlayabiltyStatus
	if errors.As(err, &playability) {
		return playabilityFailure(playability.Status, playability.Reason, err)
	}

	var playabilityValue youtube.ErrPlayabiltyStatus
	if errors.As(err, &playabilityValue) {
		return playabilityFailure(playabilityValue.Status, playabilityValue.Reason, err)
	}

	switch {
	case errors.Is(err, youtube.ErrVideoPrivate),
		errors.Is(err, youtube.ErrLoginRequired),
		errors.Is(err, youtube.ErrNotPlayableInEmbed),
		errors.Is(err, youtube.ErrInvalidCharactersInVideoID),
		errors.Is(err, youtube.ErrVideoIDMinLength),
		errors.Is(err, youtube.ErrCipherNotFound),
		errors.Is(err, youtube.ErrSignatureTimestampNotFound):
		return resolver.NewFailure(resolver.ParseError, "youtube: %v", err)
	}

	return resolver.AsFailure(err)
}

func playabilityFailure(status, reason string, err error) error {
	lower := strings.ToLower(reason)
	if strings.Contains(lower, "country") || strings.Contains(lower, "region") {
		return resolver.NewFailure(resolver.RegionBlocked, "youtube: %v", err)
	}

	return resolver.NewFailure(resolver.ParseError, "youtube: %s", status+" "+reason)
}

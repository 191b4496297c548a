package downloads

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	"github.com/StounhandJ/shorts_resolver/internal/utils"
	"github.com/google/uuid"
)

const (
	DefaultDirName       = "BDM"
	DefaultMaxConcurrent = 2

	maxTitleLen = 120
)

type AudioQuality string

const (
	AudioHigh   AudioQuality = "high"
	AudioMedium AudioQuality = "medium"
	AudioLow    AudioQuality = "low"
)

// Bitrate в kbps
func (q AudioQuality) Bitrate() int {
	switch q {
	case AudioMedium:
		return 192
	case AudioLow:
		return 128
	default:
		return 320
	}
}

// Job - всё, что нужно менеджеру загрузок хоста. Сама передача файла происходит не здесь.
type Job struct {
	ID       uuid.UUID
	MediaURL string
	Path     string
	Title    string
	IsAudio  bool
	// AudioBitrate - подсказка для конвертации в mp3, kbps. 0 для видео
	AudioBitrate int
}

// Settings - пользовательские настройки загрузок
type Settings struct {
	BaseDir       string
	MaxConcurrent int
	AudioQuality  AudioQuality
}

// Normalize подставляет значения по умолчанию
func (s Settings) Normalize() Settings {
	if s.BaseDir == "" {
		s.BaseDir = DefaultBaseDir()
	}

	s.MaxConcurrent = ClampConcurrent(s.MaxConcurrent)

	switch AudioQuality(strings.ToLower(string(s.AudioQuality))) {
	case AudioMedium:
		s.AudioQuality = AudioMedium
	case AudioLow:
		s.AudioQuality = AudioLow
	default:
		s.AudioQuality = AudioHigh
	}

	return s
}

// Plan - то же, что пакетный Plan, но с каталогом и битрейтом из настроек
func (s Settings) Plan(media resolver.Media, now time.Time) Job {
	job := Plan(media, s.BaseDir, now)
	if job.IsAudio {
		job.AudioBitrate = s.AudioQuality.Bitrate()
	}

	return job
}

// Completion - сигнал о завершении, связывается с Job по непрозрачному ID
type Completion struct {
	ID  uuid.UUID
	Err error
}

// Enqueuer - менеджер загрузок хоста
type Enqueuer interface {
	Enqueue(ctx context.Context, job Job) error
}

// FileName собирает "<title>_<unix millis>.<mp3|mp4>"
func FileName(title string, isAudio bool, now time.Time) string {
	title = utils.TruncateRunes(utils.SanitizeFileName(title), maxTitleLen)
	if title == "" {
		title = "video"
	}

	ext := "mp4"
	if isAudio {
		ext = "mp3"
	}

	return fmt.Sprintf("%s_%d.%s", title, now.UnixMilli(), ext)
}

// Plan строит задачу на загрузку из результата резолвера
func Plan(media resolver.Media, baseDir string, now time.Time) Job {
	return Job{
		ID:       uuid.New(),
		MediaURL: media.URL,
		Path:     filepath.Join(baseDir, FileName(media.Title, media.IsAudio, now)),
		Title:    media.Title,
		IsAudio:  media.IsAudio,
	}
}

// DefaultBaseDir - "<home>/Downloads/BDM"
func DefaultBaseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), DefaultDirName)
	}

	return filepath.Join(home, "Downloads", DefaultDirName)
}

// EnsureDir создаёт каталог загрузок, если его нет
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create download dir %s: %w", dir, err)
	}

	return nil
}

// ClampConcurrent приводит число одновременных загрузок к диапазону 1..5
func ClampConcurrent(n int) int {
	switch {
	case n <= 0:
		return DefaultMaxConcurrent
	case n > 5:
		return 5
	default:
		return n
	}
}

package telegram

import (
	"context"
	"fmt"
	"html"

	"github.com/StounhandJ/shorts_resolver/internal/downloads"
	"github.com/StounhandJ/shorts_resolver/internal/metrics"
	"github.com/StounhandJ/shorts_resolver/internal/utils"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

const (
	maxMessageLen = 4096
	maxCaptionLen = 1024
)

// Enqueuer передаёт прямую ссылку телеграму, файл скачивает уже он
type Enqueuer struct {
	bot    *telego.Bot
	chatID int64
	done   func(downloads.Completion)
}

func NewEnqueuer(bot *telego.Bot, chatID int64, done func(downloads.Completion)) Enqueuer {
	return Enqueuer{bot: bot, chatID: chatID, done: done}
}

func (e Enqueuer) Enqueue(ctx context.Context, job downloads.Job) error {
	err := e.send(ctx, job)

	status := "ok"
	if err != nil {
		status = "error"
		err = fmt.Errorf("telegram rejected %s: %w", job.MediaURL, err)
	}

	metrics.Deliveries.WithLabelValues("telegram", status).Inc()

	if e.done != nil {
		e.done(downloads.Completion{ID: job.ID, Err: err})
	}

	return err
}

func (e Enqueuer) send(ctx context.Context, job downloads.Job) error {
	caption := Caption(job.Title)

	if job.IsAudio {
		_, err := e.bot.SendAudio(ctx, &telego.SendAudioParams{
			ChatID:    tu.ID(e.chatID),
			Audio:     tu.FileFromURL(job.MediaURL),
			Title:     utils.TruncateRunes(job.Title, 64),
			Caption:   caption,
			ParseMode: "HTML",
		})

		return err
	}

	_, err := e.bot.SendVideo(ctx, &telego.SendVideoParams{
		ChatID:            tu.ID(e.chatID),
		Video:             tu.FileFromURL(job.MediaURL),
		Caption:           caption,
		ParseMode:         "HTML",
		SupportsStreaming: true,
	})

	return err
}

// Caption - экранированная подпись в пределах лимита телеграма
func Caption(title string) string {
	return html.EscapeString(utils.TruncateRunes(title, maxCaptionLen-32))
}

// Отправка сообщения, возвращает ID или 0 при ошибке
func SendMessage(ctx context.Context, bot *telego.Bot, chatID int64, text string, markup telego.ReplyMarkup) int {
	params := &telego.SendMessageParams{
		ChatID:    tu.ID(chatID),
		Text:      utils.TruncateRunes(text, maxMessageLen),
		ParseMode: "HTML",
		LinkPreviewOptions: &telego.LinkPreviewOptions{
			IsDisabled: true,
		},
	}

	if markup != nil {
		params.ReplyMarkup = markup
	}

	msg, err := bot.SendMessage(ctx, params)
	if err != nil {
		utils.Log.Error(err)

		return 0
	}

	return msg.MessageID
}

// Удаление сообщения
func DeleteMessage(ctx context.Context, bot *telego.Bot, chatID int64, messageID int) {
	if messageID == 0 {
		return
	}

	if err := bot.DeleteMessage(ctx, &telego.DeleteMessageParams{
		ChatID:    tu.ID(chatID),
		MessageID: messageID,
	}); err != nil {
		utils.Log.Error(err)
	}
}

// Отправка сообщения ответа на callback
func AnswerCallbackQuery(ctx *th.Context, query telego.CallbackQuery, text string) {
	if err := ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).WithText(text)); err != nil {
		utils.Log.Error(err)
	}
}

// Получение ID чата, в котором нажата кнопка
func CallbackChatID(query telego.CallbackQuery) int64 {
	if query.Message != nil {
		if msg := query.Message.Message(); msg != nil {
			return msg.Chat.ID
		}
	}

	return query.From.ID
}

// Получение ID сообщения с кнопкой
func CallbackMessageID(query telego.CallbackQuery) int {
	if query.Message != nil {
		return query.Message.GetMessageID()
	}

	return 0
}

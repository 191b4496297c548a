package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/StounhandJ/shorts_resolver/internal/downloads"
	"github.com/StounhandJ/shorts_resolver/internal/platform"
	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	"github.com/StounhandJ/shorts_resolver/internal/utils"
	telegramUtils "github.com/StounhandJ/shorts_resolver/internal/utils/telegram"
	"github.com/google/uuid"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/sirupsen/logrus"
)

const (
	textStart = "Пришлите ссылку на видео из TikTok, YouTube, Instagram или Facebook.\n" +
		"Можно и в любом чате: <code>@bot ссылка</code>"
	textUnsupported   = "Эта ссылка не поддерживается. Поддерживаются TikTok, YouTube, Instagram и Facebook."
	textChoose        = "<b>%s</b>\nВыберите качество или только звук"
	textExpired       = "Ссылка устарела, пришлите её ещё раз"
	textSearching     = "Ищу видео..."
	textRegionBlocked = "Площадка недоступна из вашего региона. Включите VPN и нажмите «Повторить»."
	textFailed        = "Не удалось получить видео"
	textRejected      = "Телеграм не смог забрать файл, скачайте его по ссылке"
)

// Стартовое сообщение
func (h handler) StartCommand(ctx *th.Context, update telego.Update) error {
	telegramUtils.SendMessage(ctx, ctx.Bot(), update.Message.Chat.ID, textStart, nil)

	return nil
}

// Ссылка в сообщении: проверка площадки и выбор качества
func (h handler) LinkMessage(ctx *th.Context, message telego.Message) error {
	link := findLink(message.Text)
	if link == "" {
		return nil
	}

	p := h.resolver.Classify(link)
	if p == platform.Unsupported {
		telegramUtils.SendMessage(ctx, ctx.Bot(), message.Chat.ID, textUnsupported, nil)

		return nil
	}

	id := h.links.Put(link)
	telegramUtils.SendMessage(ctx, ctx.Bot(), message.Chat.ID, fmt.Sprintf(textChoose, p), qualityKeyboard(id))

	return nil
}

// Нажатие кнопки качества или «Повторить»
func (h handler) ChooseQuality(ctx *th.Context, query telego.CallbackQuery) error {
	c, ok := decodeChoice(query.Data)
	if !ok {
		telegramUtils.AnswerCallbackQuery(ctx, query, textExpired)

		return nil
	}

	link, ok := h.links.Get(c.linkID)
	if !ok {
		telegramUtils.AnswerCallbackQuery(ctx, query, textExpired)

		return nil
	}

	telegramUtils.AnswerCallbackQuery(ctx, query, textSearching)

	chatID := telegramUtils.CallbackChatID(query)

	media, err := h.resolver.Resolve(ctx, resolver.Request{URL: link, Quality: c.quality, AudioOnly: c.audio})
	if err != nil {
		text, markup := failureReply(err, query.Data)
		telegramUtils.SendMessage(ctx, ctx.Bot(), chatID, text, markup)

		return nil
	}

	telegramUtils.DeleteMessage(ctx, ctx.Bot(), chatID, telegramUtils.CallbackMessageID(query))

	job := h.settings.Plan(media, time.Now())

	var enqueuer downloads.Enqueuer = telegramUtils.NewEnqueuer(ctx.Bot(), chatID, logCompletion)
	if err := h.enqueue(ctx, enqueuer, job); err != nil {
		telegramUtils.SendMessage(ctx, ctx.Bot(), chatID, textRejected, directLinkKeyboard(job))
	}

	return nil
}

func (h handler) enqueue(ctx context.Context, enqueuer downloads.Enqueuer, job downloads.Job) error {
	select {
	case h.slots <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	defer func() { <-h.slots }()

	return enqueuer.Enqueue(ctx, job)
}

func (h handler) InlineVideo(ctx *th.Context, query telego.InlineQuery) error {
	link := findLink(query.Query)

	// Проверка площадки без запросов в сеть
	if link == "" || h.resolver.Classify(link) == platform.Unsupported {
		return answerEmpty(ctx, query)
	}

	media, err := h.resolver.Resolve(ctx, resolver.Request{URL: link, Quality: resolver.QualityBest})
	if err != nil {
		return answerEmpty(ctx, query)
	}

	return ctx.Bot().AnswerInlineQuery(ctx, &telego.AnswerInlineQueryParams{
		InlineQueryID: query.ID,
		Results:       []telego.InlineQueryResult{inlineResult(link, media)},
		CacheTime:     300,
	})
}

func answerEmpty(ctx *th.Context, query telego.InlineQuery) error {
	return ctx.Bot().AnswerInlineQuery(ctx, &telego.AnswerInlineQueryParams{
		InlineQueryID: query.ID,
		Results:       []telego.InlineQueryResult{},
		CacheTime:     0,
	})
}

func inlineResult(link string, media resolver.Media) *telego.InlineQueryResultVideo {
	return &telego.InlineQueryResultVideo{
		Type:         telego.ResultTypeVideo,
		ID:           uuid.NewString(),
		Title:        utils.TruncateRunes(media.Title, 200),
		Caption:      telegramUtils.Caption(media.Title),
		ParseMode:    "HTML",
		VideoURL:     media.URL,
		ThumbnailURL: utils.StringNotEmptyCoalesce(media.ThumbnailURL, media.URL),
		MimeType:     media.MimeType(),
		Description:  fmt.Sprintf("%s %s", media.Platform, utils.FormatSecondsToMMSS(int(media.Duration/time.Second))),
		ReplyMarkup:  tu.InlineKeyboard(tu.InlineKeyboardRow(tu.InlineKeyboardButton("Оригинал").WithURL(link))),
	}
}

func qualityKeyboard(linkID string) *telego.InlineKeyboardMarkup {
	var rows [][]telego.InlineKeyboardButton

	row := []telego.InlineKeyboardButton{}

	for _, q := range resolver.Qualities() {
		row = append(row, tu.InlineKeyboardButton(q.String()).WithCallbackData(choice{linkID: linkID, quality: q}.encode()))
		if len(row) == 3 {
			rows = append(rows, row)
			row = []telego.InlineKeyboardButton{}
		}
	}

	if len(row) > 0 {
		rows = append(rows, row)
	}

	rows = append(rows, tu.InlineKeyboardRow(
		tu.InlineKeyboardButton("Только звук").WithCallbackData(choice{linkID: linkID, audio: true}.encode()),
	))

	return tu.InlineKeyboard(rows...)
}

func directLinkKeyboard(job downloads.Job) *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(tu.InlineKeyboardRow(tu.InlineKeyboardButton("Скачать").WithURL(job.MediaURL)))
}

// failureReply - текст и кнопки для ошибки. Для RegionBlocked кнопка «Повторить» повторяет исходный выбор.
func failureReply(err error, data string) (string, telego.ReplyMarkup) {
	if resolver.KindOf(err) == resolver.RegionBlocked {
		return textRegionBlocked, tu.InlineKeyboard(tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("Повторить").WithCallbackData(data),
		))
	}

	return textFailed, nil
}

// findLink - первая http(s) ссылка в тексте
func findLink(text string) string {
	for _, field := range strings.Fields(text) {
		if strings.HasPrefix(field, "http://") || strings.HasPrefix(field, "https://") {
			return field
		}
	}

	return ""
}

func logCompletion(c downloads.Completion) {
	entry := utils.Log.WithFields(logrus.Fields{"job": c.ID.String()})
	if c.Err != nil {
		entry.Warn(c.Err)

		return
	}

	entry.Debug("delivered")
}

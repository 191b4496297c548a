package handlers

import (
	"github.com/StounhandJ/shorts_resolver/internal/downloads"
	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	th "github.com/mymmrac/telego/telegohandler"
)

type handler struct {
	resolver *resolver.Resolver
	links    *pendingLinks
	settings downloads.Settings
	// ограничение одновременных отправок файлов
	slots chan struct{}
}

func NewHandler(r *resolver.Resolver, settings downloads.Settings) handler {
	settings = settings.Normalize()

	return handler{
		resolver: r,
		links:    newPendingLinks(linkTTL),
		settings: settings,
		slots:    make(chan struct{}, settings.MaxConcurrent),
	}
}

func (h handler) SetupRoutes(bh *th.BotHandler) {
	// Базовые действия
	bh.Handle(h.StartCommand, th.CommandEqual("start"))

	// Ссылка в личных сообщениях -> выбор качества -> отправка файла
	bh.HandleMessage(h.LinkMessage, th.AnyMessageWithText())
	bh.HandleCallbackQuery(h.ChooseQuality, th.AnyCallbackQueryWithMessage())

	bh.HandleInlineQuery(h.InlineVideo)
}

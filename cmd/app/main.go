package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StounhandJ/shorts_resolver/internal/config"
	"github.com/StounhandJ/shorts_resolver/internal/downloads"
	"github.com/StounhandJ/shorts_resolver/internal/extractors/facebook"
	"github.com/StounhandJ/shorts_resolver/internal/extractors/instagram"
	"github.com/StounhandJ/shorts_resolver/internal/extractors/tiktok"
	"github.com/StounhandJ/shorts_resolver/internal/extractors/youtube"
	"github.com/StounhandJ/shorts_resolver/internal/handlers"
	"github.com/StounhandJ/shorts_resolver/internal/resolver"
	"github.com/StounhandJ/shorts_resolver/internal/server"
	"github.com/StounhandJ/shorts_resolver/internal/utils"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

var cfg config.Config

func main() {
	//------ Получение Конфигурации ------//
	if err := config.LoadConfig(&cfg); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	utils.InitLogger(cfg.Application.LogLevel)
	//---------------//

	//------ HTTP клиент для отправки запросов ------//
	client := http.Client{}

	if cfg.Application.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.Application.ProxyURL)
		if err != nil {
			utils.Log.Panic(err)
		}

		client.Transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL), // прокси
		}
	}
	//---------------//

	//------ Резолвер ------//
	fetcher := resolver.NewFetcher(&client, cfg.Resolver.UserAgent)

	res := resolver.New(
		resolver.WithTimeout(cfg.Resolver.TimeoutDuration()),
		resolver.WithExtractor(tiktok.New(fetcher, cfg.Resolver.TikTokEndpoint)),
		resolver.WithExtractor(youtube.New(&client)),
		resolver.WithExtractor(instagram.New(fetcher)),
		resolver.WithExtractor(facebook.New(fetcher)),
	)

	settings := downloads.Settings{
		BaseDir:       cfg.Downloads.BaseDir,
		MaxConcurrent: cfg.Downloads.MaxConcurrent,
		AudioQuality:  downloads.AudioQuality(cfg.Downloads.AudioQuality),
	}.Normalize()

	if err := downloads.EnsureDir(settings.BaseDir); err != nil {
		utils.Log.Warn(err)
	}
	//---------------//

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	//------ TELEGRAM бот ------//
	if cfg.Telegram.Enabled {
		startBot(ctx, res, settings)
	}
	//---------------//

	//------ HTTP API ------//
	var api *server.Server

	if cfg.Server.Enabled {
		api = server.New(res)

		go func() {
			if err := api.ListenAndServe(cfg.Server.Address); err != nil {
				utils.Log.Fatal(err)
			}
		}()
	}
	//---------------//

	//------ Ожидание заершения программы ------//
	utils.Log.Info("Всё запущено")

	cSignal := make(chan os.Signal, 2)
	signal.Notify(cSignal, os.Interrupt, syscall.SIGTERM)
	<-cSignal

	cancel()

	if api != nil {
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()

		if err := api.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			utils.Log.Error(err)
		}
	}
}

func startBot(ctx context.Context, res *resolver.Resolver, settings downloads.Settings) {
	utils.Log.Info("Подключение TG-бота")

	bot, err := telego.NewBot(cfg.Telegram.Token, telego.WithDefaultLogger(cfg.Application.LogLevel == "debug", true))
	if err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}

	// Обработка сообщений ботом
	updates, err := bot.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}

	bh, err := th.NewBotHandler(bot, updates)
	if err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}

	handlers.NewHandler(res, settings).SetupRoutes(bh)

	user, err := bot.GetMe(ctx)
	if err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}

	go func() {
		utils.Log.Infof("TG БОТ ID=%d имя=%s username=@%s", user.ID, user.FirstName, user.Username)
		utils.Log.Fatal(bh.Start())
	}()
}

package config

import "time"

type Config struct {
	Application Application `yaml:"Application" env:"APP" flag:""`
	Resolver    Resolver    `yaml:"Resolver"`
	Telegram    Telegram    `yaml:"Telegram" env:"TG" flag:"tg"`
	Server      Server      `yaml:"Server"`
	Downloads   Downloads   `yaml:"Downloads"`
}

type Application struct {
	LogLevel string `yaml:"LogLevel" env:"LOGLEVEL" cli:"optional"`
	ProxyURL string `yaml:"ProxyURL" env:"PROXY_URL" flag:"proxy-url" usage:"Прокси для отправки запросов" cli:"optional"`
}

type Resolver struct {
	Timeout        duration `yaml:"Timeout" usage:"Ограничение на одно разрешение ссылки" cli:"optional"`
	UserAgent      string   `yaml:"UserAgent" cli:"optional"`
	TikTokEndpoint string   `yaml:"TikTokEndpoint" env:"TIKTOK_ENDPOINT" flag:"tiktok-endpoint" cli:"optional"`
}

type Telegram struct {
	Enabled bool   `yaml:"Enabled"`
	Token   string `yaml:"Token" env:"BOT_TOKEN" flag:"bot-token" usage:"Токен телегам бота" cli:"optional"`
}

type Server struct {
	Enabled bool   `yaml:"Enabled"`
	Address string `yaml:"Address" usage:"Адрес HTTP API, например :8080" cli:"optional"`
}

type Downloads struct {
	BaseDir       string `yaml:"BaseDir" cli:"optional"`
	MaxConcurrent int    `yaml:"MaxConcurrent" cli:"optional"`
	AudioQuality  string `yaml:"AudioQuality" cli:"optional"`
}

func (r Resolver) TimeoutDuration() time.Duration {
	return time.Duration(r.Timeout)
}

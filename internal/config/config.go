package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

var (
	configPath      = "config/config.yaml"
	devConfigPath   = "config/config.dev.yaml"
	localConfigPath = "config/config.local.yaml"
)

type duration time.Duration

func LoadConfig(c any) error {
	var path string

	switch os.Getenv("ENV") {
	case "local":
		path = localConfigPath
	case "dev":
		path = devConfigPath
	default:
		path = configPath
	}

	return parseConfig(c, path, CommonParseOptions)
}

func parseConfig(c any, path string, opts parseOptions) error {
	if err := readFile(c, path); err != nil {
		return err
	}

	return CommonHelp("shorts_resolver", "Запустить резолвер ссылок", "Бот и HTTP API для получения прямых ссылок на видео", c, opts)
}

func readFile(cfg any, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", path, err)
	}

	defer f.Close()

	if err = yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode yaml file %s: %w", path, err)
	}

	return nil
}

// UnmarshalYAML: "15s", целое число секунд или дробное число секунд
func (d *duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	var seconds float64

	switch v := raw.(type) {
	case string:
		if dur, err := time.ParseDuration(v); err == nil {
			*d = duration(dur)

			return nil
		}

		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("unsupported duration format %q", v)
		}

		seconds = f
	case int:
		seconds = float64(v)
	case int64:
		seconds = float64(v)
	case uint64:
		seconds = float64(v)
	case float64:
		seconds = v
	default:
		return fmt.Errorf("unsupported duration format %v", raw)
	}

	*d = duration(time.Duration(seconds * float64(time.Second)))

	return nil
}

func (d duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

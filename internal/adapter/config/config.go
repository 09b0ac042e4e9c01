package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Platform *Platform
	HTTP     *HTTP
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Platform struct {
	BaseURL string        `env:"PLATFORM_ADDRESS"`
	Timeout time.Duration `env:"PLATFORM_TIMEOUT"`
}

func NewConfig() (*Config, error) {
	var http HTTP
	var platform Platform
	var app App

	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&platform.BaseURL, "p", "", "Platform backend base URL")
	flag.DurationVar(&platform.Timeout, "t", 30*time.Second, "Platform request timeout")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&platform)
	if err != nil {
		return nil, fmt.Errorf("error parsing platform config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Platform: &platform,
		HTTP:     &http,
		App:      &app,
	}

	return &config, nil
}

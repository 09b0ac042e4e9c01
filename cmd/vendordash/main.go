package main

import (
	"fmt"

	"github.com/vendomart/vendordash/internal/adapter/client/platform"
	"github.com/vendomart/vendordash/internal/adapter/config"
	"github.com/vendomart/vendordash/internal/adapter/handler/http"
	"github.com/vendomart/vendordash/internal/adapter/logger"
	"github.com/vendomart/vendordash/internal/adapter/tokenstore"
	"github.com/vendomart/vendordash/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	tokens := tokenstore.NewMemory()

	client, err := platform.NewClient(conf.Platform, tokens, log)
	if err != nil {
		log.Error("platform client error", zap.Error(err))
		return
	}

	session := service.NewSession()

	auth, err := service.NewAuth(client, tokens, session, log)
	if err != nil {
		log.Error("auth service creating error", zap.Error(err))
		return
	}
	triage, err := service.NewTriage(client, session, log)
	if err != nil {
		log.Error("triage service creating error", zap.Error(err))
		return
	}
	progress, err := service.NewProgress(client, session, log)
	if err != nil {
		log.Error("progress service creating error", zap.Error(err))
		return
	}

	authHandler, err := http.NewAuthHandler(auth, log)
	if err != nil {
		log.Error("auth handler creating error", zap.Error(err))
		return
	}
	requestHandler, err := http.NewRequestHandler(triage, log)
	if err != nil {
		log.Error("request handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(progress, log)
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	router, err := http.NewRouter(conf.HTTP, tokens, authHandler, requestHandler, orderHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	log.Info("starting vendor dashboard gateway",
		zap.String("listen", conf.HTTP.HostString),
		zap.String("platform", conf.Platform.BaseURL))

	if err := router.Serve(conf.HTTP.HostString); err != nil {
		log.Error("server error", zap.Error(err))
	}
}

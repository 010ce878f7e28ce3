package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/smartgym/backend/internal/config"
	"github.com/smartgym/backend/internal/db"
	"github.com/smartgym/backend/internal/handlers"
	"github.com/smartgym/backend/internal/logger"
	"github.com/smartgym/backend/internal/recommend"
	"github.com/smartgym/backend/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.New(cfg.LogLevel)
	defer func() { _ = zl.Sync() }()

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		zl.Fatal("db open", zap.Error(err))
	}
	if err := db.Seed(conn); err != nil {
		zl.Fatal("db seed", zap.Error(err))
	}

	// Without an API key the engine runs in deterministic fallback mode.
	var chat recommend.ChatClient
	if cfg.OpenAI.APIKey != "" {
		chat = recommend.NewHTTPChatClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Timeout)
	} else {
		zl.Warn("no OpenAI API key configured, recommendations use fallback mode only")
	}
	engine := recommend.NewEngine(conn, chat, zl, recommend.Options{
		Model:         cfg.OpenAI.Model,
		Temperature:   cfg.OpenAI.Temperature,
		MaxToolRounds: cfg.OpenAI.MaxToolRounds,
	})

	api := handlers.New(conn, engine, zl)
	r := web.Router(api)

	zl.Info("smart gym backend listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		zl.Fatal("server", zap.Error(err))
	}
}

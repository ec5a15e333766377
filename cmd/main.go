package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pelusa-v/hushr/internal/config"
	"github.com/pelusa-v/hushr/internal/handlers"
	"github.com/pelusa-v/hushr/internal/hub"
	"github.com/pelusa-v/hushr/internal/ledger"
	"github.com/pelusa-v/hushr/internal/logger"
	"github.com/pelusa-v/hushr/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogSink, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ws commands reach the API once it is built below
	var api *handlers.API
	eventHub := hub.New(func(viewer string, data []byte) { api.Command(viewer, data) })
	go eventHub.Start(ctx)

	sessions := session.NewRegistry(
		session.WithPublisher(eventHub),
		session.WithSettleDelay(cfg.SettleDelay),
		session.WithSeed(cfg.RandomSeed),
	)
	defer sessions.Close()
	api = handlers.New(sessions, eventHub, cfg.AssetPrefix)

	watchdog, err := ledger.NewWatchdog(sessions.Ledgers, nil, cfg.WatchdogInterval, cfg.PendingTimeout)
	if err != nil {
		logger.Log.Error("failed to create watchdog", "error", err)
		os.Exit(1)
	}
	watchdog.Start()
	defer func() { _ = watchdog.Stop() }()

	app := fiber.New(fiber.Config{AppName: "hushr", DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.Origins(), ","),
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, " + handlers.WalletHeader,
		MaxAge:       86400,
	}))

	// WS & APIs
	api.Mount(app)

	go func() {
		<-ctx.Done()
		logger.Log.Info("shutting down")
		_ = app.ShutdownWithTimeout(5 * time.Second)
	}()

	logger.Log.Info("listening", "addr", cfg.Addr, "settle_delay", cfg.SettleDelay, "pending_timeout", cfg.PendingTimeout)
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Log.Error("server stopped", "error", err)
	}
}

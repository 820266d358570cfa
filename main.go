package main

import (
	"html/template"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"portfolio.site/configs"
	"portfolio.site/configs/configsdatabase"
	"portfolio.site/configs/configslog"
	"portfolio.site/routes"
)

func main() {
	configs.LoadEnv()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")
	// Custom page sections carry admin-authored markup that must render as-is.
	engine.AddFunc("raw", func(s string) template.HTML {
		return template.HTML(s)
	})

	app := fiber.New(fiber.Config{
		Views:   engine,
		AppName: "portfolio.site",
	})

	routes.SetupRoutes(app, configsdatabase.GetDB())

	addr := ":" + configs.GetEnv("APP_PORT", "3000")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		configslog.SLog.Info("shutdown signal received, stopping server...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("server listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		configslog.Log.Fatal("server stopped unexpectedly", zap.Error(err))
	}
}

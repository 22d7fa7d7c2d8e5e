package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Astreocclu/arc-citadel-sub002/internal/content"
	"github.com/Astreocclu/arc-citadel-sub002/internal/engine"
	"github.com/Astreocclu/arc-citadel-sub002/internal/server"
	"github.com/Astreocclu/arc-citadel-sub002/internal/version"
	"github.com/Astreocclu/arc-citadel-sub002/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var contentPath string
	var demo bool
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&contentPath, "content", "", "Path to YAML weapon/armor tables (empty for built-in presets)")
	flag.BoolVar(&demo, "demo", true, "Assemble and run the demo battle on startup")
	flag.Parse()

	logger.Log.Info("Starting Arc Citadel battle server...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}

	// 2. Каталог свойств: внешние таблицы или встроенные пресеты.
	// Невалидный контент - это отказ на старте, а не падение в бою.
	registry := content.DefaultRegistry()
	if contentPath != "" {
		loaded, err := content.LoadFile(contentPath)
		if err != nil {
			logger.Log.Fatal("Content rejected: ", err)
		}
		registry = loaded
	}

	port := os.Getenv("AC_PORT")
	if port == "" {
		port = "8080"
	}

	// 3. Инициализация ядра
	battleService := engine.NewService(cfg, registry)

	if demo {
		b, err := battleService.StartDemoBattle()
		if err != nil {
			logger.Log.Fatal("Demo battle setup failed: ", err)
		}
		go battleService.RunBattle(b)
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. Запуск сервера
	srv := server.New(battleService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
	logger.Log.Info("Done.")
}

package fx

import (
	"log"

	"github.com/harunoztuurk/otoservis/config"
	"github.com/harunoztuurk/otoservis/internal/logger"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
	),
	fx.Invoke(
		loadEnvFiles,
		initLogger,
	),
)

func loadEnvFiles() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Uyarı: .env dosyası yüklenemedi: %v", err)
	}
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("Uyarı: ../../.env dosyası yüklenemedi: %v", err)
	}
	return nil
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}

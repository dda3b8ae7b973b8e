package main

import (
	"os"
	"path/filepath"
	"time"

	"retreats/internal/config"
	"retreats/internal/handler"
	"retreats/internal/repository"
	"retreats/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL драйвер
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	// Настраиваем глобальный логгер
	if cfg.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Debug().Str("url", cfg.RetreatsAPIURL).Msg("внешний каталог ретритов")

	db, err := sqlx.Connect("postgres", cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Не удалось подключиться к базе данных")
	}

	// Выполняем миграции (если есть)
	runMigrations(db)

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(db)
	retreatRepo := repository.NewRetreatRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, authService)
	retreatService := service.NewRetreatService(retreatRepo)
	bookingService := service.NewBookingService(bookingRepo, retreatRepo)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(authService, userService, retreatService, bookingService)
	router := gin.New()
	router.Use(handler.RequestLogger(), gin.Recovery())
	h.RegisterRoutes(router)

	// Запускаем HTTP-сервер
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Ошибка запуска сервера")
	}
}

// runMigrations применяет SQL-миграции из каталога migrations,
// каждую в отдельной транзакции.
func runMigrations(db *sqlx.DB) {
	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		return
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Error().Err(err).Str("file", file).Msg("Не удалось прочитать файл миграции")
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			log.Error().Err(err).Msg("Ошибка при инициации транзакции миграции")
			continue
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			log.Error().Err(err).Str("file", file).Msg("Миграция завершилась ошибкой")
			continue
		}
		if err := tx.Commit(); err != nil {
			log.Error().Err(err).Str("file", file).Msg("Не удалось зафиксировать миграцию")
			continue
		}
		log.Info().Str("file", file).Msg("Миграция применена")
	}
}

// @title        Admin Dashboard API
// @version      1.0
// @description  管理後台的參考 API：使用者、商品、銷售與分析
// @host         localhost:5000
// @BasePath     /api
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"admin-dashboard/internal/cache"
	"admin-dashboard/internal/config"
	"admin-dashboard/internal/database"
	"admin-dashboard/internal/logging"
	"admin-dashboard/internal/middleware"
	"admin-dashboard/internal/router"
	"admin-dashboard/internal/service"
	"admin-dashboard/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	_ "admin-dashboard/docs" // swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadDotEnv      = config.LoadDotEnv
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	rollbackAllFn   = database.RollbackAll
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func run() error {
	if err := loadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	cch, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer cch.Close()

	if cfg.ResetSchema {
		logger.Warn("rolling back all migrations")
		if err := rollbackAllFn(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("Rollback 執行失敗: %w", err)
		}
	}
	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount, logger)
	defer wp.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = middleware.ErrorHandler(logger)
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())

	recorder := service.NewActivityRecorder(db, cch, wp, logger)
	router.Setup(e, db, cch, recorder, cfg.StatsTTL)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.Info("listening", "addr", cfg.Addr())
	return startServer(e, cfg.Addr())
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}

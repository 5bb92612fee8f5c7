package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pivolan/worklife_dashboard/config"
	"github.com/pivolan/worklife_dashboard/dataset"
)

func main() {
	cfg := config.GetConfig()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalln("cannot build logger", err)
	}
	defer logger.Sync()

	ds, err := loadDataset(cfg)
	if err != nil {
		logger.Fatal("cannot load dataset", zap.Error(err))
	}
	ageMin, ageMax := ds.AgeDomain()
	logger.Info("dataset loaded",
		zap.Int("records", ds.Len()),
		zap.Int("age_min", ageMin),
		zap.Int("age_max", ageMax),
	)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           newRouter(ds, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listen on", zap.String("url", "http://"+cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadDataset reads the table named by DB_TABLE when DB_DSN is set, the
// DATA_PATH file otherwise.
func loadDataset(cfg *config.Config) (*dataset.Dataset, error) {
	if cfg.DbDsn == "" {
		return dataset.LoadFile(cfg.DataPath)
	}
	db, err := gorm.Open(mysql.Open(cfg.DbDsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, err
	}
	return dataset.LoadFromDB(db, cfg.DbTable)
}

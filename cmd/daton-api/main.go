package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Web-Star-Studio/daton-esg-insight/internal/api"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/constants"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/logger"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store"
	"github.com/Web-Star-Studio/daton-esg-insight/internal/pkg/store/xpgx"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func initConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperKeyAddr, ":8080")
	viper.SetDefault(constants.ViperKeyCORSOrigin, "http://localhost:3000")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

func main() {
	ctx := context.Background()

	if err := initConfig(); err != nil {
		logger.Fatal(ctx, err)
	}
	logger.Init(viper.GetBool(constants.ViperKeyDebug))
	defer logger.Sync()

	pool, err := xpgx.Connect(ctx, viper.GetString(constants.ViperKeyDatabaseURL))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperKeyAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meusite/cms/internal/access"
	"github.com/meusite/cms/internal/buttons"
	"github.com/meusite/cms/internal/config"
	"github.com/meusite/cms/internal/database"
	"github.com/meusite/cms/internal/logging"
	"github.com/meusite/cms/internal/menu"
	"github.com/meusite/cms/internal/pages"
	"github.com/meusite/cms/internal/server"
	"github.com/meusite/cms/internal/settings"
	"github.com/meusite/cms/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cms-api",
		Short: "Site content management backend service",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}

	setupFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().String("http-address", defaults.GetString("http.address"), "HTTP listen address")
	cmd.PersistentFlags().String("database-driver", defaults.GetString("database.driver"), "Entity store backend (sqlite, memory)")
	cmd.PersistentFlags().String("database-path", defaults.GetString("database.path"), "SQLite database path")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("admin-secret", "", "Admin access secret (overrides env)")
	cmd.PersistentFlags().Bool("seed", defaults.GetBool("seed.enabled"), "Seed default pages and menu when the store is empty")

	bindFlag(cmd, "http.address", "http-address")
	bindFlag(cmd, "database.driver", "database-driver")
	bindFlag(cmd, "database.path", "database-path")
	bindFlag(cmd, "log.level", "log-level")
	bindFlag(cmd, "admin.secret", "admin-secret")
	bindFlag(cmd, "seed.enabled", "seed")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err := viper.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if cfgFile != "" && errors.As(err, &configNotFound) {
			return err
		}
	}

	return nil
}

func runServer(ctx context.Context) error {
	appConfig, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(appConfig.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	entityStore, closeStore, err := openStore(appConfig, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if appConfig.SeedEnabled {
		if err := store.Seed(entityStore, time.Now().UTC(), logger); err != nil {
			return err
		}
	}

	pageService, err := pages.NewService(pages.ServiceConfig{Store: entityStore, Logger: logger})
	if err != nil {
		return err
	}
	menuService, err := menu.NewService(menu.ServiceConfig{Store: entityStore, Logger: logger})
	if err != nil {
		return err
	}
	buttonService, err := buttons.NewService(buttons.ServiceConfig{Store: entityStore, Logger: logger})
	if err != nil {
		return err
	}
	settingService, err := settings.NewService(settings.ServiceConfig{Store: entityStore, Logger: logger})
	if err != nil {
		return err
	}
	gate, err := access.NewGate(access.GateConfig{Secret: appConfig.AdminSecret})
	if err != nil {
		return err
	}

	handler, err := server.NewHTTPHandler(server.Dependencies{
		Pages:    pageService,
		Menu:     menuService,
		Buttons:  buttonService,
		Settings: settingService,
		Gate:     gate,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    appConfig.HTTPAddress,
		Handler: handler,
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("address", appConfig.HTTPAddress),
			zap.String("store", appConfig.DatabaseDriver))
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-signalCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func openStore(appConfig config.AppConfig, logger *zap.Logger) (store.Store, func(), error) {
	if appConfig.DatabaseDriver == config.DriverMemory {
		logger.Info("using in-memory store; content will not survive restarts")
		return store.NewMemoryStore(), func() {}, nil
	}

	db, err := database.OpenSQLite(appConfig.DatabasePath, logger)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	databaseStore, err := store.NewDatabaseStore(db)
	if err != nil {
		sqlDB.Close() //nolint:errcheck
		return nil, nil, err
	}
	return databaseStore, func() { sqlDB.Close() }, nil //nolint:errcheck
}

// Command phishscope starts the URL assessment API server.
// Usage: phishscope [-addr :8000] [-config phishscope.yaml] [-model model.json] [-capacity 200]
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/raysh454/phishscope/internal/app"
	"github.com/raysh454/phishscope/internal/cli"
	"github.com/raysh454/phishscope/internal/logging"
	"github.com/raysh454/phishscope/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	args, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer zl.Sync() //nolint:errcheck

	logger := logging.NewZapLogger(zl, "phishscope")

	cfg := loadConfig(args, logger)

	srv, err := server.NewServer(server.Config{
		ListenAddr: cfg.ListenAddr,
		AppConfig:  cfg,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("creating server", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := srv.HTTPServer()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", logging.Field{Key: "error", Value: err.Error()})
		}
	}()

	logger.Info("listening", logging.Field{Key: "addr", Value: cfg.ListenAddr})
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server", logging.Field{Key: "error", Value: err.Error()})
		os.Exit(1)
	}
}

// loadConfig layers settings: defaults, then the config file, then the
// PORT environment variable, then flags.
func loadConfig(args *cli.CLIArgs, logger logging.Logger) *app.Config {
	cfg := app.DefaultConfig()

	if args.ConfigPath != "" {
		loaded, err := app.LoadConfig(args.ConfigPath)
		if err != nil {
			logger.Warn("loading config file, using defaults",
				logging.Field{Key: "path", Value: args.ConfigPath},
				logging.Field{Key: "error", Value: err.Error()})
		} else {
			cfg = loaded
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.ListenAddr = ":" + port
	}

	if args.Addr != "" {
		cfg.ListenAddr = args.Addr
	}
	if args.ModelPath != "" {
		cfg.ModelPath = args.ModelPath
	}
	if args.HistoryCapacity > 0 {
		cfg.HistoryCapacity = args.HistoryCapacity
	}

	return cfg
}

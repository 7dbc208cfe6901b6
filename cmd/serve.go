package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/studyhall/internal/httpapi"
	"github.com/abhisek/studyhall/internal/llm"
	"github.com/abhisek/studyhall/internal/qa"
	"github.com/abhisek/studyhall/internal/recommend"
	"github.com/abhisek/studyhall/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Missing .env is fine; real deployments set the environment
		// directly.
		_ = godotenv.Load()

		log, err := newLogger()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		llmCfg := llm.ConfigFromEnv()
		if os.Getenv("STUDYHALL_LLM_PROVIDER") == "" {
			// No explicit provider selection: probe the standard key vars.
			if discovered, ok := llm.DiscoverConfig(); ok {
				llmCfg = discovered
			}
		}
		if err := llmCfg.Validate(); err != nil {
			return fmt.Errorf("llm config: %w", err)
		}

		ctx := cmd.Context()
		provider, err := llm.NewProvider(ctx, llmCfg, s.EventRepo(), log)
		if err != nil {
			return fmt.Errorf("init provider: %w", err)
		}

		engineCfg := qa.DefaultEngineConfig()
		engineCfg.Timeout = llmCfg.Timeout
		engine := qa.NewEngine(provider, engineCfg)

		qaSvc := qa.NewService(s.LessonRepo(), s.HistoryRepo(), engine, qa.DefaultContextConfig(), log)
		recSvc := recommend.NewService(s.HistoryRepo(), recommend.DefaultConfig())

		httpCfg := httpapi.DefaultConfig()
		if addr := os.Getenv("STUDYHALL_ADDR"); addr != "" {
			httpCfg.Addr = addr
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			httpCfg.Addr = addr
		}
		server := httpapi.NewServer(httpCfg, s.LessonRepo(), qaSvc, recSvc, log)

		sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Listen()
		}()

		select {
		case err := <-errCh:
			return err
		case <-sigCtx.Done():
		}

		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

// newLogger builds the process logger. STUDYHALL_ENV=production switches
// to JSON output.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("STUDYHALL_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default :8080, or STUDYHALL_ADDR)")
}

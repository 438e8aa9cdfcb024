package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/colsense/internal/server"
	"github.com/sells-group/colsense/internal/session"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for uploads and column classification",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sessions := session.NewManager(time.Duration(cfg.Server.SessionTTLMins) * time.Minute)

		opts := []server.Option{
			server.WithConcurrency(cfg.Classifier.Concurrency),
		}
		if cfg.Ensemble.Enabled {
			if enhancer := buildEnhancer(); enhancer != nil {
				opts = append(opts, server.WithEnhancer(enhancer))
			}
		}
		if cfg.Store.Driver != "" {
			st, err := openStore(ctx)
			if err != nil {
				zap.L().Warn("run store unavailable, uploads will not be persisted", zap.Error(err))
			} else {
				defer st.Close() //nolint:errcheck
				opts = append(opts, server.WithStore(st))
			}
		}

		srv := server.New(buildEngine(), sessions, cfg.Limits, opts...)

		// Expired sessions are swept in the background until shutdown.
		go func() {
			ticker := time.NewTicker(5 * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if n := sessions.PurgeExpired(); n > 0 {
						zap.L().Info("sessions purged", zap.Int("count", n))
					}
				}
			}
		}()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		httpSrv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           srv.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			httpSrv.Shutdown(shutdownCtx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-web/config"
	"restaurant-web/middleware"
	"restaurant-web/routes"
	"restaurant-web/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	listenPort      string
	shutdownTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&listenPort, "port", "p", "", "Port to listen on (overrides PORT)")
	serveCmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "Time allowed for in-flight requests on shutdown")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := config.Close(db); err != nil {
			log.WithError(err).Warn("close database")
		}
	}()
	if listenPort != "" {
		cfg.Port = listenPort
	}
	gin.SetMode(cfg.GinMode)

	if err := config.SeedAdmin(db, cfg, log); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	images, err := storage.New(ctx, cfg)
	if err != nil {
		return err
	}
	limiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst, log)
	limiter.StartCleanup(5*time.Minute, ctx.Done())

	router, err := routes.NewRouter(routes.Deps{
		Config:  cfg,
		DB:      db,
		Log:     log,
		Images:  images,
		Limiter: limiter,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("server running on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

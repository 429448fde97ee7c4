package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/ellinika/internal/api"
	"github.com/example/ellinika/internal/database"
	"github.com/example/ellinika/internal/practice"
	"github.com/example/ellinika/internal/scheduler"
	"github.com/example/ellinika/internal/spaced_repetition"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := db.Migrate(ctx); err != nil {
			return err
		}

		loc, err := cfg.SRS.Location()
		if err != nil {
			return err
		}

		sm2 := spaced_repetition.NewSM2()
		sm2.MaxInterval = cfg.SRS.MaxIntervalDays

		svc := practice.NewService(db, practice.Options{
			Scheduler:         sm2,
			DefaultEaseFactor: cfg.SRS.DefaultEaseFactor,
			Location:          loc,
			Logger:            log,
		})

		if cfg.Reminders.Enabled {
			reminders := scheduler.New(
				database.NewStatisticsRepository(db),
				scheduler.NewLogNotifier(log),
				scheduler.Config{
					StartHour: cfg.Reminders.StartHour,
					EndHour:   cfg.Reminders.EndHour,
					Location:  loc,
				},
				log,
			)
			if err := reminders.Start(); err != nil {
				return err
			}
			defer reminders.Stop()
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           api.NewRouter(svc, log),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("server started", "addr", srv.Addr, "driver", cfg.Database.Driver)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("shutting down")
		// Give in-flight requests time to finish
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during shutdown: %w", err)
		}
		log.Info("server stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

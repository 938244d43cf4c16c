package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gateway "balance_gateway"
	"balance_gateway/pkg/handler"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serverCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "server",
	Short: "Run the HTTP gateway.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		h := handler.NewHandler(a.service, handler.Options{
			APIKey:       a.cfg.Gateway.APIKey,
			AllowOrigins: a.cfg.Gateway.AllowOrigins,
		})

		srv := gateway.NewServer(a.cfg.Server.Port, h.InitRoute(), a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout)
		errChan := make(chan error, 1)
		go func() {
			a.log.WithField("port", a.cfg.Server.Port).Info("starting server")
			errChan <- srv.Run()
		}()

		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(signalChan)

		select {
		case sig := <-signalChan:
			a.log.WithField("signal", sig.String()).Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return errors.Wrap(err, "shutdown")
			}
			a.log.Info("server stopped")
			return nil
		case err := <-errChan:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return errors.Wrap(err, "run server")
		}
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.AddCommand(serverCmd)
}

package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/truemediaorg/videolink/config"
	"github.com/truemediaorg/videolink/service"
	"golang.org/x/sync/errgroup"
)

func init() {
	rootCmd.AddCommand(serverCmd)
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Runs the videolink API server",
	Long:  `Runs the videolink API server, serving /api/download and the download form`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.FromEnvfile()
		cfg.ConfigureLogging()

		/*
			Graceful shutdown is possible with errgroup + signal.NotifyContext
			NotifyContext returns a context that will close on OS signals to terminate the process
			errgroup uses that context, and also closes it in case a goroutine errors out
		*/
		ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer done()
		g, gCtx := errgroup.WithContext(ctx)

		resolver := service.NewResolverFromConfig(cfg)
		api := service.NewAPIServer(cfg.Port, resolver)

		g.Go(func() error {
			log.Infof("Server listening on %d", cfg.Port)
			if err := api.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		})
		// ...and shut down the server once we're asked to terminate
		g.Go(func() error {
			<-gCtx.Done()
			defer log.Info("exiting API server")
			return api.Server.Shutdown(context.Background())
		})

		if err := g.Wait(); err != nil {
			log.Fatalf("caught error: %v", err)
		}
	},
}

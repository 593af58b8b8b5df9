package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/truemediaorg/videolink/config"
	"github.com/truemediaorg/videolink/model"
	"github.com/truemediaorg/videolink/service"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <page-url>",
	Short: "Prints the direct media URL for a video page",
	Long: `Fetches the video page once and prints the direct media URL found in it.
The URL is usually signed and stops working after a while.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnvfile()
		cfg.ConfigureLogging()

		req, err := model.ParseResolutionRequest(args[0])
		if err != nil {
			return err
		}

		ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer done()

		videoURL, err := service.NewResolverFromConfig(cfg).Resolve(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), videoURL)
		return nil
	},
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "videolink",
	Short: "videolink resolves video page URLs into direct media URLs",
	Long: `videolink fetches a public video page and digs the direct, signed media URL out of it.

  videolink server             serve the resolver API and its web form on $PORT
  videolink resolve <page-url> resolve a single page and print the media URL`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("No subcommand given")
		cmd.Usage()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Exit with a nonzero exit code if the command fails with an error
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Okyu59/TubeLingo/internal/app"
	"github.com/Okyu59/TubeLingo/internal/bundle"
)

var learnCmd = &cobra.Command{
	Use:   "learn [url]",
	Short: "Start studying a YouTube video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		url := args[0]
		if bundle.ExtractVideoID(url) == "" {
			return fmt.Errorf("%q is not a valid YouTube URL", url)
		}
		return app.Run(app.Options{InitialURL: url})
	},
}

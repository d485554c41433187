package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Okyu59/TubeLingo/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "tubelingo",
	Short: "Learn languages from YouTube videos",
	Long:  "TubeLingo is a terminal app that turns YouTube videos into language lessons with synced transcripts, vocabulary, and quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(app.Options{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

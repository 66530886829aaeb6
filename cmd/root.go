package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "talentbot",
	Short: "Talent management bot for Microsoft Teams",
	Long: `Talentbot is a sample talent management bot for Microsoft Teams.
It answers text commands and card actions about open positions and
candidates, schedules interviews, and serves a search-style messaging
extension, all against mock HR data.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".talentbot.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

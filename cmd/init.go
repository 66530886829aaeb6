package cmd

import (
	"github.com/spf13/cobra"

	"github.com/contoso/talentbot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize talentbot configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the bot credentials and server settings and generates a .talentbot.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

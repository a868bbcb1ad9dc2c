package main

import (
	"os"

	"community_survey/internal/config"
	"community_survey/internal/logger"

	"github.com/spf13/cobra"
)

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.8.12 init --dir ../ --generalInfo cmd/main.go --output ../docs

// @title           Community Survey API
// @version         1.0
// @description     Swipe survey: prompts, answers, area statistics and profiles.
// @host            localhost:4000
// @BasePath        /

var (
	cfgFile string

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:           "survey",
	Short:         "survey runs the community swipe-survey server and its terminal client",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		log = logger.GetWithFormat(cfg.Log.Level, cfg.Log.Format)
		return nil
	},
}

func init() {
	// run the root config hook before subcommand hooks such as the admin check
	cobra.EnableTraverseRunHooks = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default configs/config.yml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(questionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if log != nil {
			log.Errorw("command failed", "err", err)
		} else {
			rootCmd.PrintErrln("Error:", err)
		}
		os.Exit(1)
	}
}

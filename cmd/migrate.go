package main

import (
	"community_survey/internal/repository/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema and insert the default prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		conn, err := db.Open(cfg.DB.Path)
		if err != nil {
			return err
		}
		defer closeDB(conn)

		if err := db.Migrate(ctx, conn); err != nil {
			return err
		}
		added, err := db.SeedDefaults(ctx, conn)
		if err != nil {
			return err
		}
		log.Infow("migration complete", "db", cfg.DB.Path, "default_questions_added", added)
		return nil
	},
}

package main

import (
	"community_survey/internal/repository"
	"community_survey/internal/service"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	seedCount int
	seedValue int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate demo data",
}

var seedUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Insert fake users with the seed_ id prefix",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		conn, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer closeDB(conn)

		users, err := newSeeder(repository.NewRepository(conn)).SeedUsers(ctx, seedCount)
		if err != nil {
			return err
		}
		cmd.Printf("Seeded %s users\n", humanize.Comma(int64(len(users))))
		return nil
	},
}

var seedAnswersCmd = &cobra.Command{
	Use:   "answers",
	Short: "Answer every question for every seed user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		conn, err := openDB(ctx)
		if err != nil {
			return err
		}
		defer closeDB(conn)

		n, err := newSeeder(repository.NewRepository(conn)).SeedAnswers(ctx)
		if err != nil {
			return err
		}
		cmd.Printf("Seeded %s answers\n", humanize.Comma(int64(n)))
		return nil
	},
}

func newSeeder(repos *repository.Repository) *service.Seeder {
	return service.NewSeeder(repos, seedValue)
}

func init() {
	seedCmd.PersistentFlags().Int64Var(&seedValue, "seed", 0, "random seed (0 picks one)")
	seedUsersCmd.Flags().IntVar(&seedCount, "count", 80, "number of users to create")

	seedCmd.AddCommand(seedUsersCmd)
	seedCmd.AddCommand(seedAnswersCmd)
}

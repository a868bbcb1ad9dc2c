package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"community_survey/internal/client"
	"community_survey/internal/quiz"

	"github.com/spf13/cobra"
)

var (
	adminMode        bool
	questionImageURL string
	questionInfo     string
)

var errAdminRequired = errors.New("admin mode is off; pass --admin")

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Manage questions (admin)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !adminMode {
			return errAdminRequired
		}
		return nil
	},
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := newAPIClient()
		if err != nil {
			return err
		}
		qs, err := api.ListQuestions(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPROMPT\tIMAGE\tINFO")
		for _, q := range qs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", q.ID, q.Prompt, orDash(q.ImageURL), orDash(q.AdditionalInfo))
		}
		return w.Flush()
	},
}

var questionsAddCmd = &cobra.Command{
	Use:   "add PROMPT",
	Short: "Add a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := newAPIClient()
		if err != nil {
			return err
		}
		q, err := api.CreateQuestion(cmd.Context(), questionInput(args[0]))
		if err != nil {
			return err
		}
		cmd.Printf("Added question %d.\n", q.ID)
		return nil
	},
}

var questionsEditCmd = &cobra.Command{
	Use:   "edit ID PROMPT",
	Short: "Replace a question's prompt, image and info",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		api, _, err := newAPIClient()
		if err != nil {
			return err
		}
		if _, err := api.UpdateQuestion(cmd.Context(), id, questionInput(args[1])); err != nil {
			return err
		}
		cmd.Printf("Saved question %d.\n", id)
		return nil
	},
}

var questionsRmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"delete"},
	Short:   "Delete a question and its answers",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		api, _, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := api.DeleteQuestion(cmd.Context(), id); err != nil {
			return err
		}
		cmd.Printf("Deleted question %d.\n", id)
		return nil
	},
}

func questionInput(prompt string) client.QuestionInput {
	return client.NewQuestionInput(prompt, questionImageURL, questionInfo)
}

func init() {
	questionsCmd.PersistentFlags().BoolVar(&adminMode, "admin", false,
		fmt.Sprintf("enable admin mode (the terminal stand-in for %d title clicks)", quiz.AdminClicks))
	for _, c := range []*cobra.Command{questionsAddCmd, questionsEditCmd} {
		c.Flags().StringVar(&questionImageURL, "image-url", "", "image URL")
		c.Flags().StringVar(&questionInfo, "info", "", "additional info")
	}

	questionsCmd.AddCommand(questionsListCmd)
	questionsCmd.AddCommand(questionsAddCmd)
	questionsCmd.AddCommand(questionsEditCmd)
	questionsCmd.AddCommand(questionsRmCmd)
}

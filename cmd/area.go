package main

import (
	"fmt"
	"io"

	"community_survey/internal/quiz"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Show how your area answered each question",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, token, err := newAPIClient()
		if err != nil {
			return err
		}
		report, err := quiz.LoadArea(cmd.Context(), api, token, log)
		if err != nil {
			return err
		}
		printArea(cmd.OutOrStdout(), report)
		return nil
	},
}

const barWidth = 20

func printArea(out io.Writer, report quiz.AreaReport) {
	if len(report.Rows) == 0 {
		fmt.Fprintln(out, "No questions yet.")
		return
	}
	for _, row := range report.Rows {
		st := row.Stat
		fmt.Fprintf(out, "Question %d: %s\n", row.Position, st.Prompt)
		fmt.Fprintf(out, "  %s  %3d%% yes  (%s of %s)  you: %s\n",
			bar(st.PercentTrue),
			st.PercentTrue,
			humanize.Comma(int64(st.TrueCount)),
			humanize.Comma(int64(st.Total)),
			row.MineLabel(),
		)
	}
}

// bar draws percent as a fixed-width yes/no gauge.
func bar(percent int) string {
	filled := percent * barWidth / 100
	b := make([]byte, 0, barWidth+2)
	b = append(b, '[')
	for i := 0; i < barWidth; i++ {
		if i < filled {
			b = append(b, '#')
		} else {
			b = append(b, '.')
		}
	}
	return string(append(b, ']'))
}

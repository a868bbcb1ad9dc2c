package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"community_survey/internal/quiz"
	"community_survey/internal/swipe"

	"github.com/spf13/cobra"
)

// full-width drag used for the y/n shortcuts
const shortcutDrag = 120.0

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Answer questions in the terminal",
	Long: `Answer questions one by one.

  y / n     swipe right (yes) or left (no)
  <number>  drag by that many pixels; beyond ±80 commits, otherwise snaps back
  b         back to the previous question
  s         skip to the first unanswered question
  q         quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, token, err := newAPIClient()
		if err != nil {
			return err
		}
		session := quiz.NewSession(api, token, log)
		if err := session.Load(cmd.Context()); err != nil {
			return err
		}
		return runPlay(cmd.Context(), session, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

type moveKind int

const (
	moveDrag moveKind = iota
	moveBack
	moveSkipToUnanswered
	moveQuit
)

type move struct {
	kind moveKind
	dx   float64
}

func parseMove(line string) (move, error) {
	switch in := strings.ToLower(strings.TrimSpace(line)); in {
	case "y", "yes":
		return move{kind: moveDrag, dx: shortcutDrag}, nil
	case "n", "no":
		return move{kind: moveDrag, dx: -shortcutDrag}, nil
	case "b":
		return move{kind: moveBack}, nil
	case "s":
		return move{kind: moveSkipToUnanswered}, nil
	case "q":
		return move{kind: moveQuit}, nil
	default:
		dx, err := strconv.ParseFloat(in, 64)
		if err != nil {
			return move{}, fmt.Errorf("unknown input %q", in)
		}
		return move{kind: moveDrag, dx: dx}, nil
	}
}

func runPlay(ctx context.Context, s *quiz.Session, in io.Reader, out io.Writer) error {
	if len(s.Questions()) == 0 {
		fmt.Fprintln(out, "No questions yet.")
		return nil
	}

	scanner := bufio.NewScanner(in)
	for {
		renderCard(out, s)
		if s.Done() {
			return nil
		}
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		m, err := parseMove(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		switch m.kind {
		case moveQuit:
			return nil
		case moveBack:
			s.Back()
		case moveSkipToUnanswered:
			if !s.SkipToUnanswered() {
				fmt.Fprintln(out, "Nothing to skip to.")
			}
		case moveDrag:
			g := s.Gesture()
			g.Press(0)
			g.Move(m.dx)
			fmt.Fprintf(out, "  tilt %.0f°  yes %.0f%%  no %.0f%%\n",
				swipe.Rotation(m.dx), 100*swipe.YesOpacity(m.dx), 100*swipe.NoOpacity(m.dx))
			if outcome := s.Release(ctx); outcome == swipe.SnappedBack {
				fmt.Fprintln(out, "  snapped back")
			} else {
				fmt.Fprintf(out, "  answered %s\n", outcome)
			}
		}
	}
}

func renderCard(out io.Writer, s *quiz.Session) {
	q, ok := s.Current()
	if !ok {
		fmt.Fprintln(out, "All done! Check `survey area` to see how your area answered.")
		return
	}
	fmt.Fprintf(out, "\nQuestion %d/%d: %s\n", s.Index()+1, len(s.Questions()), q.Prompt)
	if q.AdditionalInfo != nil {
		fmt.Fprintf(out, "  info: %s\n", *q.AdditionalInfo)
	}
	if q.ImageURL != nil {
		fmt.Fprintf(out, "  image: %s\n", *q.ImageURL)
	}
	if prev, ok := s.PreviousAnswer(); ok {
		fmt.Fprintf(out, "  you answered: %s\n", yesNo(prev))
	}
	if s.CanSkipToUnanswered() {
		fmt.Fprintln(out, "  (s) skip to unanswered question")
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

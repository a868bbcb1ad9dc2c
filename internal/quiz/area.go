package quiz

import (
	"context"
	"fmt"

	"community_survey/internal/identity"
	"community_survey/internal/logger"
	"community_survey/internal/models"

	"golang.org/x/sync/errgroup"
)

// AreaBackend is the subset of the API the area report reads.
type AreaBackend interface {
	AnswerStats(ctx context.Context) ([]models.AnswerStat, error)
	ListAnswers(ctx context.Context, userID string) ([]models.UserAnswer, error)
	ListQuestions(ctx context.Context) ([]models.Question, error)
}

// AreaRow is one question of the report.
type AreaRow struct {
	Position int // 1-based
	Stat     models.AnswerStat
	Mine     *bool
	ImageURL *string
}

// MineLabel renders the user's own answer.
func (r AreaRow) MineLabel() string {
	switch {
	case r.Mine == nil:
		return "Unanswered"
	case *r.Mine:
		return "Yes"
	default:
		return "No"
	}
}

type AreaReport struct {
	Rows []AreaRow
}

// LoadArea builds the report from stats, the user's answers and the
// question list, fetched concurrently. Stats are required; the other two
// fall back to empty.
func LoadArea(ctx context.Context, api AreaBackend, user identity.Token, log *logger.Logger) (AreaReport, error) {
	if log == nil {
		log = logger.Nop()
	}

	var (
		stats     []models.AnswerStat
		answers   []models.UserAnswer
		questions []models.Question
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = api.AnswerStats(gctx)
		if err != nil {
			return fmt.Errorf("load area stats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		list, err := api.ListAnswers(gctx, user.String())
		if err != nil {
			log.Warnw("area_answers_failed", "err", err)
			return nil
		}
		answers = list
		return nil
	})
	g.Go(func() error {
		list, err := api.ListQuestions(gctx)
		if err != nil {
			log.Warnw("area_questions_failed", "err", err)
			return nil
		}
		questions = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return AreaReport{}, err
	}

	mine := make(map[int64]bool, len(answers))
	for _, a := range answers {
		mine[a.QuestionID] = a.Answer
	}
	images := make(map[int64]*string, len(questions))
	for _, q := range questions {
		images[q.ID] = q.ImageURL
	}

	rows := make([]AreaRow, 0, len(stats))
	for i, st := range stats {
		row := AreaRow{Position: i + 1, Stat: st, ImageURL: images[st.QuestionID]}
		if v, ok := mine[st.QuestionID]; ok {
			row.Mine = &v
		}
		rows = append(rows, row)
	}
	return AreaReport{Rows: rows}, nil
}

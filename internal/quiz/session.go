// Package quiz holds the client-side flow of answering questions and
// reviewing area results.
package quiz

import (
	"context"
	"fmt"

	"community_survey/internal/identity"
	"community_survey/internal/logger"
	"community_survey/internal/models"
	"community_survey/internal/swipe"
)

// Backend is the subset of the API a quiz session talks to.
type Backend interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
	ListAnswers(ctx context.Context, userID string) ([]models.UserAnswer, error)
	SubmitAnswer(ctx context.Context, userID string, questionID int64, answer bool) (models.Answer, error)
}

// Session walks a user through the question list. It is not safe for
// concurrent use.
type Session struct {
	api  Backend
	user identity.Token
	log  *logger.Logger

	questions []models.Question
	index     int
	answers   map[int64]bool
	gesture   swipe.Gesture
}

func NewSession(api Backend, user identity.Token, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{
		api:     api,
		user:    user,
		log:     log,
		answers: map[int64]bool{},
	}
}

// Load fetches the questions and the user's previous answers. Only the
// question list is required; missing answers start the cache empty.
func (s *Session) Load(ctx context.Context) error {
	qs, err := s.api.ListQuestions(ctx)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	s.questions = qs
	s.index = 0
	s.gesture.Reset()
	s.refreshAnswers(ctx)
	return nil
}

func (s *Session) Questions() []models.Question { return s.questions }

func (s *Session) Index() int { return s.index }

// Done reports whether every question has been passed.
func (s *Session) Done() bool { return s.index >= len(s.questions) }

// Current returns the question under the cursor.
func (s *Session) Current() (models.Question, bool) {
	if s.Done() {
		return models.Question{}, false
	}
	return s.questions[s.index], true
}

// Gesture exposes the drag state of the current card.
func (s *Session) Gesture() *swipe.Gesture { return &s.gesture }

// Release finishes the current drag and commits the answer when it passed the threshold.
func (s *Session) Release(ctx context.Context) swipe.Outcome {
	out := s.gesture.Release()
	if answer, ok := out.Committed(); ok {
		s.Commit(ctx, answer)
	}
	return out
}

// Commit submits answer for the current question and advances. Submission
// failures are logged and the cursor moves on regardless; the local cache
// only records answers the server accepted.
func (s *Session) Commit(ctx context.Context, answer bool) {
	q, ok := s.Current()
	if !ok {
		return
	}
	defer s.advance()

	if _, err := s.api.SubmitAnswer(ctx, s.user.String(), q.ID, answer); err != nil {
		s.log.Warnw("answer_submit_failed", "err", err, "question_id", q.ID)
		return
	}
	s.answers[q.ID] = answer
	s.refreshAnswers(ctx)
}

// Skip moves past the current question without answering it.
func (s *Session) Skip() { s.advance() }

// Back moves to the previous question, stopping at the first.
func (s *Session) Back() {
	s.gesture.Reset()
	if s.index > 0 {
		s.index--
	}
}

// PreviousAnswer is the cached answer for the current question.
func (s *Session) PreviousAnswer() (answer, ok bool) {
	q, found := s.Current()
	if !found {
		return false, false
	}
	answer, ok = s.answers[q.ID]
	return answer, ok
}

// FirstUnanswered returns the index of the first question without a cached
// answer, or -1.
func (s *Session) FirstUnanswered() int {
	for i, q := range s.questions {
		if _, ok := s.answers[q.ID]; !ok {
			return i
		}
	}
	return -1
}

// CanSkipToUnanswered is true while revisiting an answered question and an
// unanswered one exists elsewhere.
func (s *Session) CanSkipToUnanswered() bool {
	if _, ok := s.PreviousAnswer(); !ok {
		return false
	}
	first := s.FirstUnanswered()
	return first != -1 && first != s.index
}

// SkipToUnanswered jumps to FirstUnanswered when CanSkipToUnanswered holds.
func (s *Session) SkipToUnanswered() bool {
	if !s.CanSkipToUnanswered() {
		return false
	}
	s.gesture.Reset()
	s.index = s.FirstUnanswered()
	return true
}

// Answers returns a copy of the answer cache keyed by question id.
func (s *Session) Answers() map[int64]bool {
	out := make(map[int64]bool, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

func (s *Session) advance() {
	s.gesture.Reset()
	if s.index < len(s.questions) {
		s.index++
	}
}

func (s *Session) refreshAnswers(ctx context.Context) {
	list, err := s.api.ListAnswers(ctx, s.user.String())
	if err != nil {
		s.log.Debugw("answers_refresh_failed", "err", err)
		return
	}
	fresh := make(map[int64]bool, len(list))
	for _, a := range list {
		fresh[a.QuestionID] = a.Answer
	}
	s.answers = fresh
}

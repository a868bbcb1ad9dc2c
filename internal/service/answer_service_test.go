package service

import (
	"context"
	"errors"
	"testing"

	"community_survey/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerService_SubmitTwiceKeepsLatest(t *testing.T) {
	repo := &fakeAnswerRepo{}
	svc := NewAnswerService(repo)
	ctx := context.Background()

	_, err := svc.SubmitAnswer(ctx, "u1", 3, true)
	require.NoError(t, err)
	saved, err := svc.SubmitAnswer(ctx, "u1", 3, false)
	require.NoError(t, err)
	assert.Equal(t, models.Answer{UserID: "u1", QuestionID: 3, Answer: false}, saved)

	got, err := svc.ListAnswersForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []models.UserAnswer{{QuestionID: 3, Answer: false}}, got)
}

func TestAnswerService_SubmitRequiresUser(t *testing.T) {
	svc := NewAnswerService(&fakeAnswerRepo{})
	_, err := svc.SubmitAnswer(context.Background(), "", 1, true)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnswerService_SubmitStorageErrorPropagates(t *testing.T) {
	storeErr := errors.New("disk full")
	svc := NewAnswerService(&fakeAnswerRepo{err: storeErr})
	_, err := svc.SubmitAnswer(context.Background(), "u1", 1, true)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestAnswerService_DeleteAnswersForUser(t *testing.T) {
	repo := &fakeAnswerRepo{rows: []models.Answer{
		{UserID: "u1", QuestionID: 1}, {UserID: "u2", QuestionID: 1}, {UserID: "u1", QuestionID: 2},
	}}
	svc := NewAnswerService(repo)

	n, err := svc.DeleteAnswersForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	left, _ := svc.ListAnswersForUser(context.Background(), "u1")
	assert.Empty(t, left)
}

func TestAnswerService_AnswerStatsComputesPercent(t *testing.T) {
	repo := &fakeAnswerRepo{stats: []models.AnswerStat{
		{QuestionID: 1, Prompt: "a", Total: 0, TrueCount: 0},
		{QuestionID: 2, Prompt: "b", Total: 4, TrueCount: 3},
		{QuestionID: 3, Prompt: "c", Total: 1, TrueCount: 1},
		{QuestionID: 4, Prompt: "d", Total: 3, TrueCount: 1},
	}}
	stats, err := NewAnswerService(repo).AnswerStats(context.Background())
	require.NoError(t, err)

	got := make([]int, 0, len(stats))
	for _, s := range stats {
		got = append(got, s.PercentTrue)
	}
	assert.Equal(t, []int{0, 75, 100, 33}, got)
}

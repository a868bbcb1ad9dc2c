package service

import (
	"context"
	"testing"

	"community_survey/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestQuestionService_Create_TrimsAndNormalizes(t *testing.T) {
	repo := &fakeQuestionRepo{nextID: 11}
	svc := NewQuestionService(repo)

	q, err := svc.CreateQuestion(context.Background(), QuestionInput{
		Prompt:         "  Do you like tea?  ",
		ImageURL:       ptr(""),
		AdditionalInfo: ptr("Tea is popular."),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), q.ID)
	assert.Equal(t, "Do you like tea?", q.Prompt)
	assert.Nil(t, q.ImageURL)
	assert.Equal(t, "Tea is popular.", *q.AdditionalInfo)
	assert.Equal(t, "Do you like tea?", repo.lastWrite.Prompt)
}

func TestQuestionService_BlankPromptRejected(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionRepo{found: true})

	for _, p := range []string{"", "   ", "\t\n"} {
		_, err := svc.CreateQuestion(context.Background(), QuestionInput{Prompt: p})
		assert.ErrorIs(t, err, ErrInvalidInput, "create %q", p)

		_, err = svc.UpdateQuestion(context.Background(), 1, QuestionInput{Prompt: p})
		assert.ErrorIs(t, err, ErrInvalidInput, "update %q", p)
	}
}

func TestQuestionService_UpdateAndDeleteNotFound(t *testing.T) {
	repo := &fakeQuestionRepo{found: false}
	svc := NewQuestionService(repo)

	// updating a missing id echoes the record instead of failing
	q, err := svc.UpdateQuestion(context.Background(), 42, QuestionInput{Prompt: " x "})
	require.NoError(t, err)
	assert.Equal(t, models.Question{ID: 42, Prompt: "x"}, q)

	err = svc.DeleteQuestion(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []int64{42}, repo.deleted)

	repo.found = true
	q, err = svc.UpdateQuestion(context.Background(), 42, QuestionInput{Prompt: " y "})
	require.NoError(t, err)
	assert.Equal(t, int64(42), q.ID)
	assert.Equal(t, "y", q.Prompt)
	require.NoError(t, svc.DeleteQuestion(context.Background(), 42))
}

package service

import (
	"context"
	"testing"

	"community_survey/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)
	ctx := context.Background()

	_, err := svc.CreateContact(ctx, "", "123")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.CreateContact(ctx, "Ada", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	c, err := svc.CreateContact(ctx, "Ada", "123")
	require.NoError(t, err)
	assert.Equal(t, models.Contact{ID: 5, Name: "Ada", Phone: "123"}, c)

	assert.ErrorIs(t, svc.DeleteContact(ctx, 5), ErrNotFound)
	repo.found = true
	assert.NoError(t, svc.DeleteContact(ctx, 5))
}

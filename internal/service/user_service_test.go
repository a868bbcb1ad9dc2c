package service

import (
	"context"
	"errors"
	"testing"

	"community_survey/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUser_UnknownIDReturnsShell(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	p, err := svc.GetUser(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.False(t, p.Found)
	assert.Equal(t, models.User{UserID: "never-seen"}, p.User)
}

func TestUserService_SaveUser_OverwritesWholesale(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	name, email := "Ada", "ada@example.com"
	_, err := svc.SaveUser(ctx, models.User{UserID: "u1", Name: &name, Email: &email})
	require.NoError(t, err)

	// second save without email clears it
	_, err = svc.SaveUser(ctx, models.User{UserID: "u1", Name: &name})
	require.NoError(t, err)

	p, err := svc.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, p.Found)
	assert.Equal(t, "Ada", *p.User.Name)
	assert.Nil(t, p.User.Email)
}

func TestUserService_Errors(t *testing.T) {
	repo := newFakeUserRepo()
	repo.getErr = errors.New("db down")
	svc := NewUserService(repo)

	_, err := svc.GetUser(context.Background(), "u1")
	assert.EqualError(t, err, "db down")

	_, err = svc.GetUser(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SaveUser(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

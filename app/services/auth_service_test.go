package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/freshbasket/app/services"
	"github.com/shashiranjanraj/freshbasket/pkg/auth"
)

func TestRegister_HashesPassword(t *testing.T) {
	state := newMemState()
	svc := services.NewAuthService(&fakeUsers{state})

	user, err := svc.Register(context.Background(), services.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotZero(t, user.UserID)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "secret123"))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	state := newMemState()
	svc := services.NewAuthService(&fakeUsers{state})

	_, err := svc.Register(context.Background(), services.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), services.RegisterInput{
		Name: "Other", Email: "asha@example.com", Password: "different",
	})

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "email_taken", conflict.Reason)
}

func TestLogin_IssuesTokens(t *testing.T) {
	state := newMemState()
	svc := services.NewAuthService(&fakeUsers{state})

	_, err := svc.Register(context.Background(), services.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), services.LoginInput{
		Email: "asha@example.com", Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha", result.Name)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	claims, err := auth.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, result.UserID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	state := newMemState()
	svc := services.NewAuthService(&fakeUsers{state})

	_, err := svc.Register(context.Background(), services.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), services.LoginInput{
		Email: "asha@example.com", Password: "wrong",
	})

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "invalid_credentials", conflict.Reason)
}

func TestLogin_UnknownEmail(t *testing.T) {
	state := newMemState()
	svc := services.NewAuthService(&fakeUsers{state})

	_, err := svc.Login(context.Background(), services.LoginInput{
		Email: "nobody@example.com", Password: "x",
	})

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSendOTP_UnknownEmail(t *testing.T) {
	state := newMemState()
	svc := services.NewAuthService(&fakeUsers{state})

	err := svc.SendOTP(context.Background(), "nobody@example.com")

	var notFound *services.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestVerifyOTP_WithoutRequest(t *testing.T) {
	// No code was ever stored, so verification must fail as expired.
	state := newMemState()
	svc := services.NewAuthService(&fakeUsers{state})

	err := svc.VerifyOTP(context.Background(), "asha@example.com", "123456")

	var conflict *services.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "otp_expired", conflict.Reason)
}

package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/saladbowl/pkg/api"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	reg, err := env.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{Name: "Anna", Email: "Anna@Example.com"}))
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", reg.Msg.User.Email)
	assert.NotEmpty(t, reg.Msg.Token)
	assert.NotZero(t, reg.Msg.ExpiresAt)

	login, err := env.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: "anna@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, reg.Msg.User.ID, login.Msg.User.ID)

	me, err := env.auth.GetCurrentUser(ctx, as(login.Msg.Token, &api.GetCurrentUserRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "Anna", me.Msg.User.Name)
}

func TestRegister_Errors(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	env.register(t, "Anna", "anna@example.com")

	tests := []struct {
		name string
		req  *api.RegisterRequest
		code connect.Code
	}{
		{name: "email taken", req: &api.RegisterRequest{Name: "Other", Email: "ANNA@example.com"}, code: connect.CodeAlreadyExists},
		{name: "invalid email", req: &api.RegisterRequest{Name: "X", Email: "nope"}, code: connect.CodeInvalidArgument},
		{name: "missing name", req: &api.RegisterRequest{Email: "x@example.com"}, code: connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.auth.Register(ctx, connect.NewRequest(tt.req))
			assert.Equal(t, tt.code, connect.CodeOf(err))
		})
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.auth.Login(context.Background(), connect.NewRequest(&api.LoginRequest{Email: "ghost@example.com"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestGetCurrentUser_RequiresToken(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.auth.GetCurrentUser(context.Background(), as("", &api.GetCurrentUserRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = env.auth.GetCurrentUser(context.Background(), as("forged", &api.GetCurrentUserRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

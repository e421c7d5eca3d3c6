package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/saladbowl/pkg/api"
)

func TestJoin_DefaultsToCaller(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna@example.com")

	resp, err := env.roster.Join(ctx, as(anna, &api.JoinRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "Anna", resp.Msg.Participant.Name)
	assert.Equal(t, "anna@example.com", resp.Msg.Participant.Email)
	assert.NotEmpty(t, resp.Msg.Participant.UserID)

	_, err = env.roster.Join(ctx, as(anna, &api.JoinRequest{}))
	assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err))
}

func TestJoin_AddsSomeoneElse(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna@example.com")

	_, err := env.roster.Join(ctx, as(anna, &api.JoinRequest{}))
	require.NoError(t, err)
	_, err = env.roster.Join(ctx, as(anna, &api.JoinRequest{Name: " Carl ", Email: "CARL@example.com"}))
	require.NoError(t, err)

	list, err := env.roster.ListParticipants(ctx, connect.NewRequest(&api.ListParticipantsRequest{}))
	require.NoError(t, err)
	require.Len(t, list.Msg.Participants, 2)
	assert.Equal(t, "Anna", list.Msg.Participants[0].Name)
	assert.Equal(t, "Carl", list.Msg.Participants[1].Name)
	assert.Equal(t, "carl@example.com", list.Msg.Participants[1].Email)
	assert.Empty(t, list.Msg.Participants[1].UserID)
}

func TestJoin_RequiresAuth(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.roster.Join(context.Background(), as("", &api.JoinRequest{Name: "X", Email: "x@example.com"}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestLeave(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna@example.com")

	_, err := env.roster.Leave(ctx, as(anna, &api.LeaveRequest{}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	joined, err := env.roster.Join(ctx, as(anna, &api.JoinRequest{}))
	require.NoError(t, err)

	left, err := env.roster.Leave(ctx, as(anna, &api.LeaveRequest{}))
	require.NoError(t, err)
	assert.Equal(t, joined.Msg.Participant.ID, left.Msg.RemovedID)

	list, err := env.roster.ListParticipants(ctx, connect.NewRequest(&api.ListParticipantsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Participants)
}

func TestUpdateAndRemoveParticipant(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna@example.com")

	_, err := env.roster.Join(ctx, as(anna, &api.JoinRequest{}))
	require.NoError(t, err)
	carl, err := env.roster.Join(ctx, as(anna, &api.JoinRequest{Name: "Carl", Email: "carl@example.com"}))
	require.NoError(t, err)
	id := carl.Msg.Participant.ID

	_, err = env.roster.UpdateParticipant(ctx, as(anna, &api.UpdateParticipantRequest{ID: id, Name: "Carl", Email: "anna@example.com"}))
	assert.Equal(t, connect.CodeAlreadyExists, connect.CodeOf(err))

	updated, err := env.roster.UpdateParticipant(ctx, as(anna, &api.UpdateParticipantRequest{ID: id, Name: "Carla", Email: "carla@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, "Carla", updated.Msg.Participant.Name)

	_, err = env.roster.UpdateParticipant(ctx, as(anna, &api.UpdateParticipantRequest{ID: "missing", Name: "X", Email: "x@example.com"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	removed, err := env.roster.RemoveParticipant(ctx, as(anna, &api.RemoveParticipantRequest{ID: id}))
	require.NoError(t, err)
	assert.Equal(t, id, removed.Msg.RemovedID)

	_, err = env.roster.RemoveParticipant(ctx, as(anna, &api.RemoveParticipantRequest{ID: id}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/saladbowl/pkg/api"
)

func TestGetBillingSplit(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	empty, err := env.billing.GetBillingSplit(ctx, connect.NewRequest(&api.GetBillingSplitRequest{Total: qty(42)}))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Msg.ParticipantCount)
	assert.Equal(t, 0.0, empty.Msg.Share)

	anna := env.register(t, "Anna", "anna@example.com")
	for _, email := range []string{"anna@example.com", "ben@example.com", "carl@example.com"} {
		_, err := env.roster.Join(ctx, as(anna, &api.JoinRequest{Name: email, Email: email}))
		require.NoError(t, err)
	}

	split, err := env.billing.GetBillingSplit(ctx, connect.NewRequest(&api.GetBillingSplitRequest{Total: qty(30)}))
	require.NoError(t, err)
	assert.Equal(t, 3, split.Msg.ParticipantCount)
	assert.Equal(t, 30.0, split.Msg.Total)
	assert.Equal(t, 10.0, split.Msg.Share)
}

func TestGetBillingSplit_Validation(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	_, err := env.billing.GetBillingSplit(ctx, connect.NewRequest(&api.GetBillingSplitRequest{Total: qty(-1)}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = env.billing.GetBillingSplit(ctx, connect.NewRequest(&api.GetBillingSplitRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

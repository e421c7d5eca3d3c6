package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/saladbowl/pkg/api"
)

func TestGetShoppingList_NoActiveTemplate(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna@example.com")
	_, err := env.roster.Join(ctx, as(anna, &api.JoinRequest{}))
	require.NoError(t, err)

	list, err := env.shopping.GetShoppingList(ctx, connect.NewRequest(&api.GetShoppingListRequest{}))
	require.NoError(t, err)
	assert.Equal(t, 1, list.Msg.ParticipantCount)
	assert.Nil(t, list.Msg.Template)
	assert.Empty(t, list.Msg.Items)
}

func TestShoppingList_WithExclusions(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna@example.com")
	ben := env.register(t, "Ben", "ben@example.com")

	tmpl, err := env.recipe.CreateTemplate(ctx, as(anna, saladInput()))
	require.NoError(t, err)

	for _, token := range []string{anna, ben} {
		_, err := env.roster.Join(ctx, as(token, &api.JoinRequest{}))
		require.NoError(t, err)
	}
	_, err = env.roster.Join(ctx, as(anna, &api.JoinRequest{Name: "Carl", Email: "carl@example.com"}))
	require.NoError(t, err)

	set, err := env.shopping.SetExclusions(ctx, as(anna, &api.SetExclusionsRequest{
		Exclusions: []string{"  tomato ", "FETA", "Basil", "tomato", ""},
	}))
	require.NoError(t, err)
	assert.Equal(t, tmpl.Msg.Template.ID, set.Msg.TemplateID)
	assert.Equal(t, []string{"Tomato", "Feta"}, set.Msg.Exclusions)

	mine, err := env.shopping.GetExclusions(ctx, as(anna, &api.GetExclusionsRequest{}))
	require.NoError(t, err)
	assert.Equal(t, []string{"Feta", "Tomato"}, mine.Msg.Exclusions)

	list, err := env.shopping.GetShoppingList(ctx, connect.NewRequest(&api.GetShoppingListRequest{}))
	require.NoError(t, err)
	assert.Equal(t, 3, list.Msg.ParticipantCount)
	require.NotNil(t, list.Msg.Template)
	assert.Equal(t, 2, list.Msg.Template.Servings)
	assert.Equal(t, []api.ShoppingItem{
		{Name: "Tomato", Unit: "g", Quantity: 100, ExcludedBy: []string{"Anna"}},
		{Name: "Feta", Unit: "g", Quantity: 50, ExcludedBy: []string{"Anna"}},
		{Name: "Olive oil", Unit: "tbsp", Quantity: 1.5, ExcludedBy: []string{}},
	}, list.Msg.Items)

	cleared, err := env.shopping.SetExclusions(ctx, as(anna, &api.SetExclusionsRequest{Exclusions: []string{}}))
	require.NoError(t, err)
	assert.Empty(t, cleared.Msg.Exclusions)

	list, err = env.shopping.GetShoppingList(ctx, connect.NewRequest(&api.GetShoppingListRequest{}))
	require.NoError(t, err)
	assert.Equal(t, 150.0, list.Msg.Items[0].Quantity)
}

func TestShoppingList_ExcluderLeavingDropsAttribution(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna@example.com")
	ben := env.register(t, "Ben", "ben@example.com")

	_, err := env.recipe.CreateTemplate(ctx, as(anna, saladInput()))
	require.NoError(t, err)
	for _, token := range []string{anna, ben} {
		_, err := env.roster.Join(ctx, as(token, &api.JoinRequest{}))
		require.NoError(t, err)
	}
	_, err = env.shopping.SetExclusions(ctx, as(ben, &api.SetExclusionsRequest{Exclusions: []string{"Feta"}}))
	require.NoError(t, err)

	_, err = env.roster.Leave(ctx, as(ben, &api.LeaveRequest{}))
	require.NoError(t, err)

	list, err := env.shopping.GetShoppingList(ctx, connect.NewRequest(&api.GetShoppingListRequest{}))
	require.NoError(t, err)
	assert.Equal(t, 1, list.Msg.ParticipantCount)
	assert.Empty(t, list.Msg.Items[1].ExcludedBy)
	assert.Equal(t, 25.0, list.Msg.Items[1].Quantity)
}

func TestSetExclusions_Errors(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	anna := env.register(t, "Anna", "anna@example.com")

	_, err := env.shopping.SetExclusions(ctx, as(anna, &api.SetExclusionsRequest{Exclusions: []string{"Tomato"}}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = env.recipe.CreateTemplate(ctx, as(anna, saladInput()))
	require.NoError(t, err)

	_, err = env.shopping.SetExclusions(ctx, as(anna, &api.SetExclusionsRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = env.shopping.SetExclusions(ctx, as("", &api.SetExclusionsRequest{Exclusions: []string{"Tomato"}}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
}

func TestGetExclusions_NoActiveTemplate(t *testing.T) {
	env := setupTestServer(t)
	anna := env.register(t, "Anna", "anna@example.com")

	resp, err := env.shopping.GetExclusions(context.Background(), as(anna, &api.GetExclusionsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.TemplateID)
	assert.Empty(t, resp.Msg.Exclusions)
}

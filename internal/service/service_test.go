package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/saladbowl/internal/auth"
	"github.com/mmynk/saladbowl/internal/middleware"
	"github.com/mmynk/saladbowl/internal/models"
	"github.com/mmynk/saladbowl/internal/storage/sqlite"
	"github.com/mmynk/saladbowl/internal/validation"
	"github.com/mmynk/saladbowl/pkg/api"
	"github.com/mmynk/saladbowl/pkg/api/apiconnect"
)

// fakeScheduler records Reschedule calls.
type fakeScheduler struct {
	mu    sync.Mutex
	calls []models.Settings
}

func (f *fakeScheduler) Reschedule(_ context.Context, settings models.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, settings)
	return nil
}

func (f *fakeScheduler) Calls() []models.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Settings(nil), f.calls...)
}

type testEnv struct {
	store     *sqlite.SQLiteStore
	scheduler *fakeScheduler

	auth     apiconnect.AuthServiceClient
	roster   apiconnect.RosterServiceClient
	recipe   apiconnect.RecipeServiceClient
	shopping apiconnect.ShoppingServiceClient
	settings apiconnect.SettingsServiceClient
	billing  apiconnect.BillingServiceClient
}

// setupTestServer runs every service behind the real optional-auth
// interceptor on a fresh database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := validation.New()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	scheduler := &fakeScheduler{}

	opts := connect.WithInterceptors(middleware.OptionalAuth(jwtManager))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(auth.NewEmailAuthenticator(store), jwtManager, store, v, logger), opts))
	mux.Handle(apiconnect.NewRosterServiceHandler(NewRosterService(store, v, logger), opts))
	mux.Handle(apiconnect.NewRecipeServiceHandler(NewRecipeService(store, v, logger), opts))
	mux.Handle(apiconnect.NewShoppingServiceHandler(NewShoppingService(store, v, logger), opts))
	mux.Handle(apiconnect.NewSettingsServiceHandler(NewSettingsService(store, scheduler, v, logger), opts))
	mux.Handle(apiconnect.NewBillingServiceHandler(NewBillingService(store, v, logger), opts))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	client := server.Client()
	return &testEnv{
		store:     store,
		scheduler: scheduler,
		auth:      apiconnect.NewAuthServiceClient(client, server.URL),
		roster:    apiconnect.NewRosterServiceClient(client, server.URL),
		recipe:    apiconnect.NewRecipeServiceClient(client, server.URL),
		shopping:  apiconnect.NewShoppingServiceClient(client, server.URL),
		settings:  apiconnect.NewSettingsServiceClient(client, server.URL),
		billing:   apiconnect.NewBillingServiceClient(client, server.URL),
	}
}

// register creates an account and returns its session token.
func (e *testEnv) register(t *testing.T, name, email string) string {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{Name: name, Email: email}))
	require.NoError(t, err)
	return resp.Msg.Token
}

// as attaches a bearer token to a request message.
func as[T any](token string, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	return req
}

func qty(v float64) *float64 { return &v }

func intp(v int) *int { return &v }

// saladInput is Tomato 100 g, Feta 50 g and Olive oil 1 tbsp for 2 servings.
func saladInput() *api.CreateTemplateRequest {
	return &api.CreateTemplateRequest{
		Title:    "Greek salad",
		Servings: 2,
		Ingredients: []api.IngredientInput{
			{Name: "Tomato", Quantity: qty(100), Unit: "g"},
			{Name: "Feta", Quantity: qty(50), Unit: "g"},
			{Name: "Olive oil", Quantity: qty(1), Unit: "tbsp"},
		},
	}
}

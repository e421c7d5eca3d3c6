package di

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/saladbowl/internal/di/providers"
	"github.com/mmynk/saladbowl/internal/service"
)

func TestBootstrap(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("PORT", "0")
	t.Setenv("DB_PATH", filepath.Join(dir, "salad.db"))
	t.Setenv("STATIC_PATH", "")

	injector := NewContainer()
	require.NoError(t, Bootstrap(injector))

	schedulerHandle := do.MustInvoke[*providers.SchedulerHandle](injector)
	assert.False(t, schedulerHandle.Next().IsZero(), "scheduler is armed")

	storeHandle := do.MustInvoke[*providers.StoreHandle](injector)
	settings, err := storeHandle.GetSettings(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, settings.LastReset, "first boot performs the catch-up reset")

	_, err = do.Invoke[*service.ShoppingService](injector)
	assert.NoError(t, err)

	_ = injector.Shutdown()
	assert.True(t, schedulerHandle.Next().IsZero(), "scheduler stopped")
}

func TestBootstrap_InvalidConfig(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_ENV", "nowhere")

	injector := NewContainer()
	assert.Error(t, Bootstrap(injector))
}

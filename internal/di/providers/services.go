package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/mmynk/saladbowl/internal/auth"
	"github.com/mmynk/saladbowl/internal/service"
	"github.com/mmynk/saladbowl/internal/validation"
)

// ProvideAuthService provides the account service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	authenticator := do.MustInvoke[*auth.EmailAuthenticator](i)
	jwtManager := do.MustInvoke[*auth.JWTManager](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*slog.Logger](i)

	return service.NewAuthService(authenticator, jwtManager, storeHandle.SQLiteStore, validator, log), nil
}

// ProvideRosterService provides the roster service.
func ProvideRosterService(i do.Injector) (*service.RosterService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*slog.Logger](i)

	return service.NewRosterService(storeHandle.SQLiteStore, validator, log), nil
}

// ProvideRecipeService provides the recipe template service.
func ProvideRecipeService(i do.Injector) (*service.RecipeService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*slog.Logger](i)

	return service.NewRecipeService(storeHandle.SQLiteStore, validator, log), nil
}

// ProvideShoppingService provides the shopping list service.
func ProvideShoppingService(i do.Injector) (*service.ShoppingService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*slog.Logger](i)

	return service.NewShoppingService(storeHandle.SQLiteStore, validator, log), nil
}

// ProvideSettingsService provides the reset settings service.
func ProvideSettingsService(i do.Injector) (*service.SettingsService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	schedulerHandle := do.MustInvoke[*SchedulerHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*slog.Logger](i)

	return service.NewSettingsService(storeHandle.SQLiteStore, schedulerHandle.Scheduler, validator, log), nil
}

// ProvideBillingService provides the billing split service.
func ProvideBillingService(i do.Injector) (*service.BillingService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*slog.Logger](i)

	return service.NewBillingService(storeHandle.SQLiteStore, validator, log), nil
}

package usecase

import (
	"context"

	"github.com/GriffinCanCode/ShopList/client/internal/auth"
	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
)

// UserRepository is implemented by api.Users.
type UserRepository interface {
	CheckUser(ctx context.Context, email string) (model.UserCheck, error)
	Register(ctx context.Context, r model.Registration) (model.RegistrationResult, error)
	Login(ctx context.Context, email, password string) (model.AuthData, error)
}

// ShoppingListRepository is implemented by api.ShoppingLists.
type ShoppingListRepository interface {
	List(ctx context.Context) ([]model.ShoppingList, error)
	Create(ctx context.Context, name, listType string) (model.ShoppingList, error)
	Get(ctx context.Context, id string) (model.ShoppingList, error)
	AddItem(ctx context.Context, listID string, item model.AddItemRequest) (model.ShoppingList, error)
	Delete(ctx context.Context, id string) error
}

// PreferencesRepository is implemented by preferences.Preferences.
type PreferencesRepository interface {
	SaveAuthData(ctx context.Context, data model.AuthData) error
	AuthData(ctx context.Context) (*model.AuthData, error)
	ClearAuthData(ctx context.Context) error
	IsLoggedIn(ctx context.Context) (bool, error)
}

// SessionTokens is the token side of the session, implemented by
// auth.Manager.
type SessionTokens interface {
	Save(ctx context.Context, pair auth.TokenPair) error
	Clear(ctx context.Context) error
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/ShopList/client/internal/auth"
	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/GriffinCanCode/ShopList/client/internal/preferences"
	"github.com/GriffinCanCode/ShopList/client/internal/shared/utils"
	"go.uber.org/zap"
)

// User-facing messages.
const (
	MsgUserRegistered    = "This email is registered. Sign in to continue."
	MsgUserNotRegistered = "This email is not registered yet. Create an account to continue."
	MsgUnexpectedError   = "Something went wrong. Please try again."
	MsgRegisterSuccess   = "Account created. You can sign in now."
	MsgLoginSuccess      = "Signed in."
	MsgLogoutSuccess     = "Signed out."
	MsgLogoutError       = "Could not sign out completely."
)

// UserCheckResult pairs a user check with the message to show.
type UserCheckResult struct {
	Check   model.UserCheck
	Message string
}

// LoginResult is a successful sign-in.
type LoginResult struct {
	Message  string
	AuthData model.AuthData
}

// AuthState tells whether a user is signed in. AuthData is nil when not.
type AuthState struct {
	Authenticated bool
	AuthData      *model.AuthData
}

// LogoutResult reports the outcome of signing out. Err carries the cause
// when Success is false.
type LogoutResult struct {
	Success bool
	Message string
	Err     error
}

// Auth holds the account use cases.
type Auth struct {
	users   UserRepository
	prefs   PreferencesRepository
	session SessionTokens
	logger  *zap.Logger
}

// NewAuth creates the account use cases.
func NewAuth(users UserRepository, prefs PreferencesRepository, session SessionTokens, logger *zap.Logger) *Auth {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auth{users: users, prefs: prefs, session: session, logger: logger}
}

// CheckUserExists asks whether email has an account.
func (a *Auth) CheckUserExists(ctx context.Context, email string) (UserCheckResult, error) {
	email = strings.TrimSpace(email)
	if err := utils.ValidateEmail(email); err != nil {
		return UserCheckResult{}, err
	}

	check, err := a.users.CheckUser(ctx, email)
	if err != nil {
		return UserCheckResult{}, fmt.Errorf("check user: %w", err)
	}

	switch check.Status {
	case model.UserRegistered:
		return UserCheckResult{Check: check, Message: MsgUserRegistered}, nil
	case model.UserNotRegistered:
		return UserCheckResult{Check: check, Message: MsgUserNotRegistered}, nil
	default:
		msg := check.Message
		if msg == "" {
			msg = MsgUnexpectedError
		}
		return UserCheckResult{Check: check, Message: msg}, nil
	}
}

// RegisterUser validates r and creates the account.
func (a *Auth) RegisterUser(ctx context.Context, r model.Registration) (string, error) {
	r.Email = strings.TrimSpace(r.Email)
	r.FirstName = utils.SanitizeText(r.FirstName)
	r.LastName = utils.SanitizeText(r.LastName)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)

	validations := []error{
		utils.ValidateUsername(r.Username),
		utils.ValidatePassword(r.Password),
		utils.ValidateEmail(r.Email),
		utils.ValidateName(r.FirstName, "first name"),
		utils.ValidateName(r.LastName, "last name"),
		utils.ValidatePhone(r.PhoneNumber),
	}
	if err := errors.Join(validations...); err != nil {
		return "", err
	}

	result, err := a.users.Register(ctx, r)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	a.logger.Info("account registered", zap.String("user_id", result.ID), zap.String("username", result.Username))
	return MsgRegisterSuccess, nil
}

// Login signs in and persists the profile and the token pair.
func (a *Auth) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if err := errors.Join(
		utils.ValidateString(email, "email", 1, utils.MaxEmailLength, true),
		utils.ValidateString(password, "password", 1, utils.MaxPasswordLength, true),
	); err != nil {
		return LoginResult{}, err
	}

	data, err := a.users.Login(ctx, email, password)
	if err != nil {
		return LoginResult{}, fmt.Errorf("login: %w", err)
	}

	if err := a.prefs.SaveAuthData(ctx, data); err != nil {
		return LoginResult{}, err
	}
	pair := auth.TokenPair{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		TokenType:    data.TokenType,
	}
	if err := a.session.Save(ctx, pair); err != nil {
		return LoginResult{}, err
	}

	a.logger.Info("signed in", zap.String("user_id", data.User.ID))
	return LoginResult{Message: MsgLoginSuccess, AuthData: data}, nil
}

// CheckAuthState reports whether a user is signed in. Unreadable stored
// auth data counts as signed out.
func (a *Auth) CheckAuthState(ctx context.Context) (AuthState, error) {
	loggedIn, err := a.prefs.IsLoggedIn(ctx)
	if err != nil {
		return AuthState{}, err
	}
	if !loggedIn {
		return AuthState{}, nil
	}

	data, err := a.prefs.AuthData(ctx)
	if errors.Is(err, preferences.ErrCorruptAuthData) {
		a.logger.Warn("ignoring unreadable auth data", zap.Error(err))
		return AuthState{}, nil
	}
	if err != nil {
		return AuthState{}, err
	}
	if data == nil {
		return AuthState{}, nil
	}
	return AuthState{Authenticated: true, AuthData: data}, nil
}

// Logout removes the profile and the tokens. It always attempts both.
func (a *Auth) Logout(ctx context.Context) LogoutResult {
	err := errors.Join(a.prefs.ClearAuthData(ctx), a.session.Clear(ctx))
	if err != nil {
		a.logger.Error("sign out failed", zap.Error(err))
		return LogoutResult{Message: MsgLogoutError, Err: err}
	}
	a.logger.Info("signed out")
	return LogoutResult{Success: true, Message: MsgLogoutSuccess}
}

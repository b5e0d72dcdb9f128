package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/GriffinCanCode/ShopList/client/internal/client"
	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/config"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/monitoring"
	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

const (
	validateUserPath = "/api/v1/auth/validate-user"
	registerPath     = "/api/v1/auth/register"
)

// Users covers account lookup, registration and login.
type Users struct {
	caller
}

// NewUsers creates the user repository.
func NewUsers(c *client.Client, metrics *monitoring.Metrics) *Users {
	return &Users{caller{client: c, metrics: metrics, resource: "users"}}
}

// CheckUser asks whether email belongs to an account. A non-2xx answer is
// reported as a UserCheckError result carrying the server's code, not as an
// error; err is set only when no answer was received.
func (u *Users) CheckUser(ctx context.Context, email string) (model.UserCheck, error) {
	resp, err := u.do(ctx, "check", func(req *resty.Request) (*resty.Response, error) {
		return req.SetQueryParam("email", email).Post(validateUserPath)
	})

	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		var body userCheckResponse
		if sonic.UnmarshalString(statusErr.Body, &body) == nil && body.Code != "" {
			return model.UserCheck{Status: model.UserCheckError, Code: body.Code, Message: body.Email}, nil
		}
		return model.UserCheck{Status: model.UserCheckError, Message: statusErr.Error()}, nil
	case err != nil:
		return model.UserCheck{}, err
	}

	var body userCheckResponse
	if err := decode(resp, &body); err != nil {
		return model.UserCheck{}, err
	}
	return body.toDomain(), nil
}

// Register creates an account.
func (u *Users) Register(ctx context.Context, r model.Registration) (model.RegistrationResult, error) {
	resp, err := u.do(ctx, "register", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(newRegisterRequest(r)).Post(registerPath)
	})
	if err != nil {
		return model.RegistrationResult{}, err
	}

	var body registerResponse
	if err := decode(resp, &body); err != nil {
		return model.RegistrationResult{}, err
	}
	return body.toDomain(), nil
}

// Login exchanges credentials for the user profile and a token pair.
func (u *Users) Login(ctx context.Context, email, password string) (model.AuthData, error) {
	resp, err := u.do(ctx, "login", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(loginRequest{Email: email, Password: password}).Post(config.LoginPath)
	})
	if err != nil {
		return model.AuthData{}, err
	}
	if resp.StatusCode() == http.StatusNoContent {
		return model.AuthData{}, errors.New("login response was empty")
	}

	var body authResponse
	if err := decode(resp, &body); err != nil {
		return model.AuthData{}, err
	}
	return body.toDomain(), nil
}

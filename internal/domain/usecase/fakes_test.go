package usecase

import (
	"context"
	"errors"

	"github.com/GriffinCanCode/ShopList/client/internal/auth"
	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
)

type fakeUsers struct {
	check      model.UserCheck
	checkErr   error
	registered []model.Registration
	regErr     error
	authData   model.AuthData
	loginErr   error
	calls      int
}

func (f *fakeUsers) CheckUser(_ context.Context, _ string) (model.UserCheck, error) {
	f.calls++
	return f.check, f.checkErr
}

func (f *fakeUsers) Register(_ context.Context, r model.Registration) (model.RegistrationResult, error) {
	f.calls++
	if f.regErr != nil {
		return model.RegistrationResult{}, f.regErr
	}
	f.registered = append(f.registered, r)
	return model.RegistrationResult{ID: "1", Username: r.Username}, nil
}

func (f *fakeUsers) Login(_ context.Context, _, _ string) (model.AuthData, error) {
	f.calls++
	return f.authData, f.loginErr
}

type fakeSession struct {
	saved    *auth.TokenPair
	cleared  bool
	saveErr  error
	clearErr error
}

func (f *fakeSession) Save(_ context.Context, pair auth.TokenPair) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &pair
	return nil
}

func (f *fakeSession) Clear(context.Context) error {
	f.cleared = true
	return f.clearErr
}

type fakeLists struct {
	lists     []model.ShoppingList
	err       error
	created   []string
	createdAs []string
	added     []model.AddItemRequest
	deleted   []string
	calls     int
}

func (f *fakeLists) List(context.Context) ([]model.ShoppingList, error) {
	f.calls++
	return f.lists, f.err
}

func (f *fakeLists) Create(_ context.Context, name, listType string) (model.ShoppingList, error) {
	f.calls++
	if f.err != nil {
		return model.ShoppingList{}, f.err
	}
	f.created = append(f.created, name)
	f.createdAs = append(f.createdAs, listType)
	return model.ShoppingList{ID: "1", Name: name, Type: listType}, nil
}

func (f *fakeLists) Get(_ context.Context, id string) (model.ShoppingList, error) {
	f.calls++
	if f.err != nil {
		return model.ShoppingList{}, f.err
	}
	return model.ShoppingList{ID: id}, nil
}

func (f *fakeLists) AddItem(_ context.Context, listID string, item model.AddItemRequest) (model.ShoppingList, error) {
	f.calls++
	if f.err != nil {
		return model.ShoppingList{}, f.err
	}
	f.added = append(f.added, item)
	return model.ShoppingList{
		ID:    listID,
		Items: []model.ShoppingItem{{Name: item.Name, Status: model.DefaultItemStatus, Type: item.ListType}},
	}, nil
}

func (f *fakeLists) Delete(_ context.Context, id string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

var errBackend = errors.New("backend down")

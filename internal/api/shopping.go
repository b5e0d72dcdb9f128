package api

import (
	"context"

	"github.com/GriffinCanCode/ShopList/client/internal/client"
	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/ShopList/client/internal/shared/utils"
	"github.com/go-resty/resty/v2"
)

const (
	listsPath     = "/api/v1/shopping/lists"
	listPath      = "/api/v1/shopping/lists/{id}"
	listItemsPath = "/api/v1/shopping/lists/{id}/items"
)

// ShoppingLists is the repository for lists and their items. It expects a
// client whose transport keeps the session authenticated.
type ShoppingLists struct {
	caller
}

// NewShoppingLists creates the shopping list repository.
func NewShoppingLists(c *client.Client, metrics *monitoring.Metrics) *ShoppingLists {
	return &ShoppingLists{caller{client: c, metrics: metrics, resource: "shopping"}}
}

// List returns every list of the signed-in user.
func (s *ShoppingLists) List(ctx context.Context) ([]model.ShoppingList, error) {
	resp, err := s.do(ctx, "list", func(req *resty.Request) (*resty.Response, error) {
		return req.Get(listsPath)
	})
	if err != nil {
		return nil, err
	}

	var body []shoppingListDTO
	if err := decode(resp, &body); err != nil {
		return nil, err
	}
	return listsToDomain(body), nil
}

// Create makes a new list.
func (s *ShoppingLists) Create(ctx context.Context, name, listType string) (model.ShoppingList, error) {
	if listType == "" {
		listType = model.DefaultListType
	}
	payload := createListRequest{Name: utils.SanitizeText(name), Type: listType}

	resp, err := s.do(ctx, "create", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(payload).Post(listsPath)
	})
	if err != nil {
		return model.ShoppingList{}, err
	}
	return decodeList(resp)
}

// Get returns one list with its items.
func (s *ShoppingLists) Get(ctx context.Context, id string) (model.ShoppingList, error) {
	resp, err := s.do(ctx, "get", func(req *resty.Request) (*resty.Response, error) {
		return req.SetPathParam("id", id).Get(listPath)
	})
	if err != nil {
		return model.ShoppingList{}, err
	}
	return decodeList(resp)
}

// AddItem appends an item and returns the updated list.
func (s *ShoppingLists) AddItem(ctx context.Context, listID string, item model.AddItemRequest) (model.ShoppingList, error) {
	payload := newAddItemRequest(item)

	resp, err := s.do(ctx, "add_item", func(req *resty.Request) (*resty.Response, error) {
		return req.SetPathParam("id", listID).SetBody(payload).Post(listItemsPath)
	})
	if err != nil {
		return model.ShoppingList{}, err
	}
	return decodeList(resp)
}

// Delete removes a list.
func (s *ShoppingLists) Delete(ctx context.Context, id string) error {
	_, err := s.do(ctx, "delete", func(req *resty.Request) (*resty.Response, error) {
		return req.SetPathParam("id", id).Delete(listPath)
	})
	return err
}

func decodeList(resp *resty.Response) (model.ShoppingList, error) {
	var body shoppingListDTO
	if err := decode(resp, &body); err != nil {
		return model.ShoppingList{}, err
	}
	return body.toDomain(), nil
}

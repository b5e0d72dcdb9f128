package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/GriffinCanCode/ShopList/client/internal/shared/utils"
	"go.uber.org/zap"
)

// Messages for list creation.
const (
	MsgListNameRequired = "List name is required."
	MsgListCreateFailed = "Could not create the list."
)

// CreateListResult is either a created list or a message explaining why
// nothing was created.
type CreateListResult struct {
	List    *model.ShoppingList
	Message string
}

// OK reports whether the list was created.
func (r CreateListResult) OK() bool {
	return r.List != nil
}

// Shopping holds the shopping list use cases.
type Shopping struct {
	lists  ShoppingListRepository
	logger *zap.Logger
}

// NewShopping creates the shopping list use cases.
func NewShopping(lists ShoppingListRepository, logger *zap.Logger) *Shopping {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shopping{lists: lists, logger: logger}
}

// GetShoppingLists returns all lists of the signed-in user.
func (s *Shopping) GetShoppingLists(ctx context.Context) ([]model.ShoppingList, error) {
	lists, err := s.lists.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get shopping lists: %w", err)
	}
	return lists, nil
}

// CreateShoppingList creates a list. A blank name or a repository failure is
// reported in the result, not as an error.
func (s *Shopping) CreateShoppingList(ctx context.Context, name, listType string) CreateListResult {
	if utils.IsBlank(name) {
		return CreateListResult{Message: MsgListNameRequired}
	}
	if strings.TrimSpace(listType) == "" {
		listType = model.DefaultListType
	}

	list, err := s.lists.Create(ctx, strings.TrimSpace(name), listType)
	if err != nil {
		s.logger.Warn("create list failed", zap.Error(err))
		msg := err.Error()
		if msg == "" {
			msg = MsgListCreateFailed
		}
		return CreateListResult{Message: msg}
	}
	return CreateListResult{List: &list}
}

// GetShoppingListDetails returns one list with its items.
func (s *Shopping) GetShoppingListDetails(ctx context.Context, listID string) (model.ShoppingList, error) {
	if err := utils.ValidateID(listID, "list id"); err != nil {
		return model.ShoppingList{}, err
	}
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("get list %s: %w", listID, err)
	}
	return list, nil
}

// AddItemToList appends item to the list and returns the updated list.
func (s *Shopping) AddItemToList(ctx context.Context, listID string, item model.AddItemRequest) (model.ShoppingList, error) {
	if err := utils.ValidateID(listID, "list id"); err != nil {
		return model.ShoppingList{}, err
	}
	if err := utils.ValidateName(item.Name, "item name"); err != nil {
		return model.ShoppingList{}, err
	}
	if item.Notes != nil {
		if err := utils.ValidateNotes(*item.Notes); err != nil {
			return model.ShoppingList{}, err
		}
	}
	if item.ListType == "" {
		item.ListType = model.DefaultListType
	}

	list, err := s.lists.AddItem(ctx, listID, item)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("add item to list %s: %w", listID, err)
	}
	return list, nil
}

// DeleteShoppingList removes a list.
func (s *Shopping) DeleteShoppingList(ctx context.Context, listID string) error {
	if err := utils.ValidateID(listID, "list id"); err != nil {
		return err
	}
	if err := s.lists.Delete(ctx, listID); err != nil {
		return fmt.Errorf("delete list %s: %w", listID, err)
	}
	return nil
}

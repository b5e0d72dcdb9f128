package api

import (
	"strconv"

	"github.com/GriffinCanCode/ShopList/client/internal/auth"
	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/GriffinCanCode/ShopList/client/internal/shared/utils"
)

func (t tokenDTO) toPair() auth.TokenPair {
	return auth.TokenPair{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
	}
}

func (u userDTO) toDomain() model.User {
	return model.User{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
	}
}

func (a authResponse) toDomain() model.AuthData {
	return model.AuthData{
		User:         a.User.toDomain(),
		AccessToken:  a.Token.AccessToken,
		RefreshToken: a.Token.RefreshToken,
		TokenType:    a.Token.TokenType,
	}
}

func newRegisterRequest(r model.Registration) registerRequest {
	return registerRequest{
		Username:    r.Username,
		Password:    r.Password,
		Email:       r.Email,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
	}
}

func (r registerResponse) toDomain() model.RegistrationResult {
	result := model.RegistrationResult{ID: strconv.Itoa(r.ID)}
	if r.Username != nil {
		result.Username = *r.Username
	}
	return result
}

func (c userCheckResponse) toDomain() model.UserCheck {
	switch c.Code {
	case codeUserRegistered:
		return model.UserCheck{Status: model.UserRegistered, Code: c.Code}
	case codeUserNotRegistered:
		return model.UserCheck{Status: model.UserNotRegistered, Code: c.Code}
	default:
		return model.UserCheck{Status: model.UserCheckError, Code: c.Code, Message: c.Email}
	}
}

func (l shoppingListDTO) toDomain() model.ShoppingList {
	items := make([]model.ShoppingItem, 0, len(l.Items))
	for _, it := range l.Items {
		items = append(items, model.ShoppingItem{Name: it.Name, Status: it.Status, Type: it.Type})
	}
	return model.ShoppingList{
		ID:        l.ID,
		Name:      l.Name,
		CreatedAt: l.CreatedAt,
		UserID:    l.UserID,
		Type:      l.Type,
		Items:     items,
	}
}

func listsToDomain(dtos []shoppingListDTO) []model.ShoppingList {
	lists := make([]model.ShoppingList, 0, len(dtos))
	for _, l := range dtos {
		lists = append(lists, l.toDomain())
	}
	return lists
}

// newAddItemRequest strips markup from the free-text fields.
func newAddItemRequest(r model.AddItemRequest) addItemRequest {
	listType := r.ListType
	if listType == "" {
		listType = model.DefaultListType
	}
	return addItemRequest{
		Name:     utils.SanitizeText(r.Name),
		Status:   model.DefaultItemStatus,
		Type:     listType,
		Price:    r.Price,
		Quantity: r.Quantity,
		URL:      r.URL,
		Store:    utils.SanitizeOptional(r.Store),
		Notes:    utils.SanitizeOptional(r.Notes),
		Platform: utils.SanitizeOptional(r.Platform),
		Genre:    utils.SanitizeOptional(r.Genre),
		Year:     r.Year,
		Rating:   r.Rating,
		DueDate:  r.DueDate,
		Priority: r.Priority,
	}
}

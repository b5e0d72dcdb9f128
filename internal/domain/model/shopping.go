package model

// Defaults applied to new lists and items.
const (
	DefaultListType   = "simple"
	DefaultItemStatus = "pendiente"
)

// ShoppingList is a named list owned by a user.
type ShoppingList struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt string         `json:"created_at"`
	UserID    string         `json:"user_id"`
	Type      string         `json:"type"`
	Items     []ShoppingItem `json:"items"`
}

// ShoppingItem is one entry in a list.
type ShoppingItem struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Type   string `json:"type"`
}

// AddItemRequest describes an item to append to a list. Which optional
// fields matter depends on the list type; unset fields are omitted.
type AddItemRequest struct {
	Name     string
	ListType string
	Price    *float64
	Quantity *int
	URL      *string
	Store    *string
	Notes    *string
	Platform *string
	Genre    *string
	Year     *int
	Rating   *string
	DueDate  *string
	Priority *string
}

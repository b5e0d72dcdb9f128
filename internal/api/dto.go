package api

// Wire shapes of the shopping-list API. Field names follow the server,
// which mixes snake_case and camelCase.

type tokenDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type userDTO struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  userDTO  `json:"user"`
	Token tokenDTO `json:"token"`
}

type registerRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type registerResponse struct {
	ID       int     `json:"id"`
	Username *string `json:"username"`
}

type userCheckResponse struct {
	Code  string `json:"code"`
	Email string `json:"email"`
}

// Codes returned by validate-user.
const (
	codeUserRegistered    = "USER_REGISTERED"
	codeUserNotRegistered = "USER_NOT_REGISTERED"
)

type shoppingItemDTO struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Type   string `json:"type"`
}

type shoppingListDTO struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CreatedAt string            `json:"created_at"`
	UserID    string            `json:"user_id"`
	Type      string            `json:"type"`
	Items     []shoppingItemDTO `json:"items"`
}

type createListRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type addItemRequest struct {
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Type     string   `json:"type"`
	Price    *float64 `json:"price,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	URL      *string  `json:"url,omitempty"`
	Store    *string  `json:"store,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
	Platform *string  `json:"platform,omitempty"`
	Genre    *string  `json:"genre,omitempty"`
	Year     *int     `json:"year,omitempty"`
	Rating   *string  `json:"rating,omitempty"`
	DueDate  *string  `json:"due_date,omitempty"`
	Priority *string  `json:"priority,omitempty"`
}

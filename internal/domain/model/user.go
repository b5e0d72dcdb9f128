package model

// User is an account on the shopping-list service.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// AuthData is the signed-in user together with the session tokens.
type AuthData struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Registration holds the fields needed to create an account.
type Registration struct {
	Username    string `json:"username"`
	Password    string `json:"-"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

// RegistrationResult identifies the account created by a registration.
type RegistrationResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserCheckStatus is the outcome of asking whether an email is registered.
type UserCheckStatus string

const (
	UserRegistered    UserCheckStatus = "registered"
	UserNotRegistered UserCheckStatus = "not_registered"
	UserCheckError    UserCheckStatus = "error"
)

// UserCheck carries the status and, for errors, the server code and message.
type UserCheck struct {
	Status  UserCheckStatus `json:"status"`
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
}

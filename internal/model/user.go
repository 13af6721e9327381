package model

import "fmt"

// DefaultURLLimit is the number of mappings a new user may own
const DefaultURLLimit = 20

// User is a stored account. HashedPassword never leaves the server.
type User struct {
	Username       string `json:"username"`
	HashedPassword string `json:"-"`
	URLLimit       int    `json:"url_limit"`
	Admin          bool   `json:"admin"`
}

// Summary returns the caller-visible view of the user
func (u User) Summary() UserSummary {
	return UserSummary{
		Username: u.Username,
		URLLimit: u.URLLimit,
		Admin:    u.Admin,
	}
}

// UserSummary is what the API returns about a user
type UserSummary struct {
	Username string `json:"username"`
	URLLimit int    `json:"url_limit"`
	Admin    bool   `json:"admin"`
}

// UserField names a mutable column of the users table
type UserField string

const (
	FieldHashedPassword UserField = "hashed_password"
	FieldURLLimit       UserField = "url_limit"
	FieldAdmin          UserField = "admin"
)

// Apply sets the field on u. It fails when value has the wrong type
// for the field or when a limit is negative.
func (f UserField) Apply(u *User, value any) error {
	switch f {
	case FieldHashedPassword:
		v, ok := value.(string)
		if !ok || v == "" {
			return fmt.Errorf("field %s expects a non-empty string, got %T", f, value)
		}
		u.HashedPassword = v
	case FieldURLLimit:
		v, ok := value.(int)
		if !ok || v < 0 {
			return fmt.Errorf("field %s expects a non-negative int, got %v", f, value)
		}
		u.URLLimit = v
	case FieldAdmin:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %s expects a bool, got %T", f, value)
		}
		u.Admin = v
	default:
		return fmt.Errorf("unknown user field %q", f)
	}
	return nil
}

// TokenResponse is returned by POST /users/token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateUserResponse is returned by POST /users/create_user
type CreateUserResponse struct {
	Username string `json:"username"`
}

// ChangePasswordRequest is the body of POST /users/change_password
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// UpdateURLLimitRequest is the body of POST /users/update_url_limit
type UpdateURLLimitRequest struct {
	Username string `json:"username" validate:"required"`
	NewLimit *int   `json:"new_limit" validate:"required,gte=0"`
}

// Status is the uniform status record returned on failures and on
// successes that carry no payload
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

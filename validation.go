package allauth

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"
)

// LoginRequest is the POST /auth/login payload. One of Email or Username
// identifies the account.
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	if r.Email == "" && r.Username == "" {
		return errors.New("either email or username is required")
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// SignupRequest is the POST /auth/signup payload.
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// Validate will run validation rules
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&r.Phone, validation.By(optionalPhoneNumber)),
	)
}

// ReauthenticateRequest is the POST /auth/reauthenticate payload.
type ReauthenticateRequest struct {
	Password string `json:"password"`
}

// Validate will run validation rules
func (r ReauthenticateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required),
	)
}

// ChangePasswordRequest is the POST /account/password/change payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password"`
}

// Validate will run validation rules
func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NewPassword, validation.Required, validation.Length(8, 100)),
	)
}

// ProviderTokenRequest is the POST /auth/provider/token payload.
type ProviderTokenRequest struct {
	Provider string      `json:"provider"`
	Token    string      `json:"token"`
	Process  AuthProcess `json:"process"`
}

// Validate will run validation rules
func (r ProviderTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Provider, validation.Required),
		validation.Field(&r.Token, validation.Required),
	)
}

func validateEmail(email string) error {
	return validation.Validate(email, validation.Required, is.Email)
}

// validatePhoneNumber expects E.164 input since no region is assumed.
func validatePhoneNumber(value any) error {
	s, _ := value.(string)
	num, err := phonenumbers.Parse(s, "")
	if err != nil {
		return err
	}
	if !phonenumbers.IsValidNumber(num) {
		return errors.New("invalid phone number")
	}
	return nil
}

func optionalPhoneNumber(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	return validatePhoneNumber(value)
}

// Package forms defines the input shapes the web tier accepts and their
// validation rules. Validation is pure: a form either binds cleanly or yields
// a field-to-message map; control flow stays with the handlers.
package forms

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterForm is the sign-up input shape.
type RegisterForm struct {
	Email      string `form:"email" validate:"required,email"`
	Name       string `form:"name" validate:"required,min=5,max=64,displayname"`
	UserName   string `form:"user_name" validate:"required,min=3,max=50,username"`
	Password   string `form:"password" validate:"required,min=8,max=100,eqfield=RePassword"`
	RePassword string `form:"repassword" validate:"required,min=8,max=100"`
}

// LoginForm is the credentials input shape.
type LoginForm struct {
	UserName string `form:"user_name" validate:"required,min=5,max=50,username"`
	Password string `form:"password" validate:"required"`
}

// ConfirmationForm carries the free-text comment attached when an admin
// approves a prediction. The text is permitted to be empty.
type ConfirmationForm struct {
	ConfirmationText string `form:"confirmation_text"`
}

// FilterForm is the two-date range filter on the user predictions page.
type FilterForm struct {
	FirstDate  string `form:"first_date" validate:"required,datetime=2006-01-02"`
	SecondDate string `form:"second_date" validate:"required,datetime=2006-01-02"`
}

// AdminFilterForm is the single-date filter on the admin page.
type AdminFilterForm struct {
	Date string `form:"date" validate:"required,datetime=2006-01-02"`
}

var (
	userNameRe    = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	displayNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_ ]*$`)
)

// NewValidator builds the validator all forms share, with the custom name
// rules registered and field names taken from the form tags.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if tag := fld.Tag.Get("form"); tag != "" {
			return tag
		}
		return fld.Name
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return userNameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("displayname", func(fl validator.FieldLevel) bool {
		return displayNameRe.MatchString(fl.Field().String())
	})
	return v
}

// Errors maps a validation failure to human-readable messages keyed by form
// field name. A non-validation error maps to a single catch-all entry.
func Errors(err error) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["form"] = "Invalid form data"
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "eqfield":
		return "Passwords should match"
	case "username":
		return "Can only contain letters, numbers, or underscores"
	case "displayname":
		return "Can only contain letters, numbers, space or underscores"
	case "datetime":
		return "Not a valid date"
	default:
		return "Invalid value"
	}
}

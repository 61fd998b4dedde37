package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"eanmble/internal/errors"
)

const bcryptCost = 10

// User is the local mirror of an account registered with the Ghastly API.
// The plaintext password is hashed at construction and never kept.
type User struct {
	ID           uint                `json:"id" gorm:"primaryKey"`
	Name         string              `json:"name" gorm:"size:80;not null"`
	UserName     string              `json:"user_name" gorm:"size:40;not null"`
	Email        string              `json:"email" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string              `json:"-" gorm:"size:128;not null"` // Never expose in JSON
	PhoneNumber  *string             `json:"phone_number,omitempty"`
	Admin        bool                `json:"admin" gorm:"default:false"`
	Plan         *string             `json:"plan,omitempty" gorm:"size:10"`
	Bankroll     decimal.NullDecimal `json:"bankroll,omitempty" gorm:"type:decimal(12,2)"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// NewUser builds a user record, hashing and discarding the plaintext password.
func NewUser(name, userName, email, password string, admin bool) (*User, error) {
	u := &User{
		Name:     name,
		UserName: userName,
		Email:    email,
		Admin:    admin,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword replaces the stored hash with one derived from password.
func (u *User) SetPassword(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hashed)
	return nil
}

// Password always fails: the plaintext is discarded at construction.
func (u *User) Password() (string, error) {
	return "", errors.ErrPasswordWriteOnly
}

// VerifyPassword reports whether password matches the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetPlan records the subscription plan name.
func (u *User) SetPlan(plan string) {
	u.Plan = &plan
}

// SetBankroll is called once a user credits their account with cash.
func (u *User) SetBankroll(bankroll decimal.Decimal) {
	u.Bankroll = decimal.NullDecimal{Decimal: bankroll, Valid: true}
}

// SetPhoneNumber accepts the loosely typed value a profile form submits.
// A phone number is optional at registration, so this runs on later updates
// and rejects anything that is not a string before persistence is attempted.
func (u *User) SetPhoneNumber(phoneNumber any) error {
	s, ok := phoneNumber.(string)
	if !ok {
		return errors.ErrPhoneNumberNotString
	}
	u.PhoneNumber = &s
	return nil
}

func (u *User) String() string {
	return fmt.Sprintf("<user%d %s %s %t>", u.ID, u.UserName, u.Email, u.Admin)
}

package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterForm() RegisterForm {
	return RegisterForm{
		Email:      "jane@example.com",
		Name:       "Jane Analyst",
		UserName:   "jane_a",
		Password:   "correct horse",
		RePassword: "correct horse",
	}
}

func TestRegisterForm(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		mutate    func(*RegisterForm)
		wantField string
	}{
		{name: "valid form", mutate: func(f *RegisterForm) {}},
		{
			name:      "passwords must match",
			mutate:    func(f *RegisterForm) { f.RePassword = "battery staple" },
			wantField: "password",
		},
		{
			name:      "email syntax checked",
			mutate:    func(f *RegisterForm) { f.Email = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "name too short",
			mutate:    func(f *RegisterForm) { f.Name = "Jo" },
			wantField: "name",
		},
		{
			name:      "name must start with a letter",
			mutate:    func(f *RegisterForm) { f.Name = "1Jane Analyst" },
			wantField: "name",
		},
		{
			name:      "user name rejects spaces",
			mutate:    func(f *RegisterForm) { f.UserName = "jane a" },
			wantField: "user_name",
		},
		{
			name:      "user name too short",
			mutate:    func(f *RegisterForm) { f.UserName = "ja" },
			wantField: "user_name",
		},
		{
			name:      "password too short",
			mutate:    func(f *RegisterForm) { f.Password = "short"; f.RePassword = "short" },
			wantField: "password",
		},
		{
			name:      "email required",
			mutate:    func(f *RegisterForm) { f.Email = "" },
			wantField: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegisterForm()
			tt.mutate(&form)

			err := v.Struct(&form)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fieldErrors := Errors(err)
			assert.Contains(t, fieldErrors, tt.wantField)
		})
	}
}

func TestLoginForm(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		form      LoginForm
		wantField string
	}{
		{name: "valid form", form: LoginForm{UserName: "jane_a", Password: "pw"}},
		{name: "user name too short", form: LoginForm{UserName: "jane", Password: "pw"}, wantField: "user_name"},
		{name: "user name pattern enforced", form: LoginForm{UserName: "_jane_a", Password: "pw"}, wantField: "user_name"},
		{name: "password required but unbounded", form: LoginForm{UserName: "jane_a"}, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&tt.form)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, Errors(err), tt.wantField)
		})
	}
}

func TestConfirmationForm_EmptyTextAllowed(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Struct(&ConfirmationForm{}))
	assert.NoError(t, v.Struct(&ConfirmationForm{ConfirmationText: "solid pick"}))
}

func TestFilterForms(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(&FilterForm{FirstDate: "2026-08-01", SecondDate: "2026-08-31"}))
	assert.NoError(t, v.Struct(&AdminFilterForm{Date: "2026-08-15"}))

	err := v.Struct(&FilterForm{FirstDate: "yesterday", SecondDate: "2026-08-31"})
	require.Error(t, err)
	assert.Contains(t, Errors(err), "first_date")

	err = v.Struct(&FilterForm{SecondDate: "2026-08-31"})
	require.Error(t, err)
	assert.Contains(t, Errors(err), "first_date")

	err = v.Struct(&AdminFilterForm{})
	require.Error(t, err)
	assert.Contains(t, Errors(err), "date")
}

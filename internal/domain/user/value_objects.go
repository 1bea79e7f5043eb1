package user

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/password"
)

var (
	ErrInvalidEmail    = errs.Kind("invalid email format", errs.ErrInvalidInput)
	ErrInvalidName     = errs.Kind("name must be 2-50 characters and contain only letters and spaces", errs.ErrInvalidInput)
	ErrInvalidPhone    = errs.Kind("phone number must be exactly 10 digits", errs.ErrInvalidInput)
	ErrInvalidRole     = errs.Kind("invalid role", errs.ErrInvalidInput)
	ErrPasswordTooWeak = errs.Kind("password must be at least 8 characters long", errs.ErrInvalidInput)
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < 2 || n > 50 {
		return Name{}, ErrInvalidName
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return Name{}, ErrInvalidName
		}
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < password.MinLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

//go:build unit || e2e

package builder

import (
	reqdto "salon-booking/internal/handler/dto/request"
)

type AuthBuilder struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Asha Customer",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Password: "password123",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     a.Name,
		Email:    a.Email,
		Phone:    a.Phone,
		Password: a.Password,
	}
}

package user

import "errors"

type RegisterDTO struct {
	Email string `json:"email" binding:"required"`
}

type LoginDTO struct {
	Email string `json:"email" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

var (
	errUserNotFound = errors.New("user not found")
	errEmailTaken   = errors.New("email already registered")
)

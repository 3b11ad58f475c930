package dto

import "strings"

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignUpRequest) Validate() []string {
	var errors []string

	if r.Name == "" {
		errors = append(errors, "name is required")
	}

	if r.Email == "" {
		errors = append(errors, "email is required")
	} else if !strings.Contains(r.Email, "@") {
		errors = append(errors, "email is not valid")
	}

	if len(r.Password) < 8 {
		errors = append(errors, "password must be at least 8 characters")
	}

	return errors
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

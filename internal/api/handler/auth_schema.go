package handler

import "github.com/datalab/sample-tracker/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type loginRequest struct {
	UserID   string `json:"userId"   validate:"required,datalabid"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginResponse struct {
	User       *domain.Identity `json:"user"`
	RedirectTo string           `json:"redirectTo"`
}

type logoutResponse struct {
	Message    string `json:"message"`
	RedirectTo string `json:"redirectTo"`
}

type passwordResetRequest struct {
	UserID string `json:"userId"`
}

type passwordResetResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

type demoAccount struct {
	ID          string             `json:"id"`
	Role        string             `json:"role"`
	AccessLevel domain.AccessLevel `json:"accessLevel"`
}

type loginPageResponse struct {
	From         string        `json:"from,omitempty"`
	IDFormat     string        `json:"idFormat"`
	PasswordHint string        `json:"passwordHint"`
	DemoAccounts []demoAccount `json:"demoAccounts"`
}

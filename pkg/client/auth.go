package client

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a token and profile.
func (g *Gateway) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	err := g.do(ctx, http.MethodPost, "/api/auth/login", nil, loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns the issued token and profile.
func (g *Gateway) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	var out AuthResult
	if err := g.do(ctx, http.MethodPost, "/api/auth/register", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the server-side session behind the current token.
func (g *Gateway) Logout(ctx context.Context) error {
	return g.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}

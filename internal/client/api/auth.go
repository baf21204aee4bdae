package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/liuwf/chainmarket/internal/client/session"
	"github.com/liuwf/chainmarket/internal/common"
)

// SignInUser is the user record the sign-in endpoint may return alongside
// the token.
type SignInUser struct {
	Address     string `json:"address"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// SignInResult is the normalized outcome of a successful wallet sign-in.
type SignInResult struct {
	Token string
	Role  session.Role
	User  *SignInUser
}

// signInPayload covers the shapes the backend has been seen to produce:
// token/role at the top level, under alternate names, or nested one level
// down in a data object.
type signInPayload struct {
	Token       string          `json:"token"`
	JWTToken    string          `json:"jwtToken"`
	AccessToken string          `json:"accessToken"`
	Role        string          `json:"role"`
	UserRole    string          `json:"userRole"`
	User        *SignInUser     `json:"user"`
	Data        json.RawMessage `json:"data"`
}

func (p *signInPayload) token() string {
	switch {
	case p.Token != "":
		return p.Token
	case p.JWTToken != "":
		return p.JWTToken
	default:
		return p.AccessToken
	}
}

func (p *signInPayload) role() string {
	switch {
	case p.Role != "":
		return p.Role
	case p.UserRole != "":
		return p.UserRole
	case p.User != nil:
		return p.User.Role
	default:
		return ""
	}
}

// Nonce asks the backend for the one-time challenge the wallet must sign.
// The endpoint returns either a bare string or an object with a nonce field.
func (c *Client) Nonce(ctx context.Context, address string) (string, error) {
	payload, err := c.Call(ctx, Request{
		Path:   "/auth/nonce",
		Method: http.MethodPost,
		Body:   map[string]string{"address": address},
	})
	if err != nil {
		return "", err
	}

	var s string
	if json.Unmarshal(payload, &s) == nil && s != "" {
		return s, nil
	}

	var obj struct {
		Nonce string `json:"nonce"`
	}
	if json.Unmarshal(payload, &obj) == nil && obj.Nonce != "" {
		return obj.Nonce, nil
	}

	return "", fmt.Errorf("no nonce in response")
}

// SignIn exchanges a signed nonce for a session token. The wallet signature
// is produced by the caller; this client never touches key material.
func (c *Client) SignIn(ctx context.Context, address, signature, nonce string) (*SignInResult, error) {
	payload, err := c.Call(ctx, Request{
		Path:   "/auth/signin",
		Method: http.MethodPost,
		Body: map[string]string{
			"address":   address,
			"signature": signature,
			"nonce":     nonce,
		},
	})
	if err != nil {
		return nil, err
	}

	var p signInPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("malformed sign-in response: %w", err)
	}

	// Some deployments leave the interesting fields one level down.
	if p.token() == "" && len(p.Data) > 0 {
		var nested signInPayload
		if json.Unmarshal(p.Data, &nested) == nil && nested.token() != "" {
			p = nested
		}
	}

	token := p.token()
	if token == "" {
		return nil, common.ErrNoToken
	}

	return &SignInResult{
		Token: token,
		Role:  session.ParseRole(p.role()),
		User:  p.User,
	}, nil
}

package idp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-adoption-api/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier contra el servicio de identidad.
// Se instancia desde main cuando AUTH_BASE_URL está configurado.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("idp verify failed: %w", err)
	}

	if claims.UserID == "" {
		return auth.Claims{}, errors.New("idp claims missing user id")
	}
	if claims.Role == "" {
		// Sin rol asumimos el más restrictivo.
		claims.Role = auth.RoleUser
	}

	return claims, nil
}

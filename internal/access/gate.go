// Package access implements the admin gate: one process-wide shared
// secret, equality-compared. There is no per-user identity, lockout or
// server-side session; a successful check only tells the client to
// flip its locally persisted authenticated flag.
package access

import (
	"crypto/subtle"
	"fmt"
	"strings"
)

// GateConfig describes the gate's single dependency.
type GateConfig struct {
	Secret string
}

// Gate answers shared-secret checks.
type Gate struct {
	secret []byte
}

// NewGate constructs the gate. An empty secret is refused so a
// misconfigured deployment cannot accept empty passwords.
func NewGate(cfg GateConfig) (*Gate, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("access: secret is required")
	}
	return &Gate{secret: []byte(cfg.Secret)}, nil
}

// Authenticate reports whether the supplied password matches the
// configured secret.
func (g *Gate) Authenticate(password string) bool {
	return subtle.ConstantTimeCompare([]byte(password), g.secret) == 1
}

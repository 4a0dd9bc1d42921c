package auth

import (
	"context"
	"crypto/subtle"
	"os"

	"github.com/henriquewc/sistema-atividades/internal/usecase/interfaces"
)

// StaticVerifier checks credentials against a single operator account
// configured through AUTH_USERNAME / AUTH_PASSWORD. Comparison is
// constant-time.
type StaticVerifier struct {
	username string
	password string
}

var _ interfaces.ICredentialVerifier = (*StaticVerifier)(nil)

func NewStaticVerifierFromEnv() *StaticVerifier {
	return &StaticVerifier{
		username: getenvDefault("AUTH_USERNAME", "admin"),
		password: getenvDefault("AUTH_PASSWORD", "admin123"),
	}
}

func (v *StaticVerifier) Verify(_ context.Context, username, password string) (bool, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return userOK && passOK, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package interfaces

import "context"

// ICredentialVerifier abstracts credential checking for the login endpoint,
// so a real identity provider can replace the built-in static verifier
// without touching calling code.
type ICredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

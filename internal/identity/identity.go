// Package identity provisions the opaque token a client uses as its user id.
package identity

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

const (
	tokenPrefix = "user_"
	suffixLen   = 8
	alphabet    = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Token is the client identity. It never changes once provisioned.
type Token string

func (t Token) String() string { return string(t) }

// Provision returns the token stored at path, creating and persisting a new
// one when the file is missing or empty.
func Provision(path string) (Token, error) {
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if tok := strings.TrimSpace(string(raw)); tok != "" {
			return Token(tok), nil
		}
	case !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("read identity %q: %w", path, err)
	}

	tok, err := New()
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("create identity dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(tok+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write identity %q: %w", path, err)
	}
	return tok, nil
}

// New generates a fresh token of the form user_xxxxxxxx (base36).
func New() (Token, error) {
	var b strings.Builder
	b.WriteString(tokenPrefix)
	radix := big.NewInt(int64(len(alphabet)))
	for i := 0; i < suffixLen; i++ {
		n, err := rand.Int(rand.Reader, radix)
		if err != nil {
			return "", fmt.Errorf("generate identity: %w", err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return Token(b.String()), nil
}

// Forget removes the stored token so the next Provision starts a new identity.
func Forget(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove identity %q: %w", path, err)
	}
	return nil
}

// Package vault holds the single persisted secret of the application: the
// bearer token. Vault operations never fail loudly — secure-storage I/O
// errors are logged and degrade (Get reports absence, Save and Delete
// become no-ops), so callers must treat persistence as best-effort. The
// session held in memory is the copy of record.
package vault

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// TokenVault is a single named secret slot.
type TokenVault interface {
	// Get returns the stored token and whether one is present.
	Get(ctx context.Context) (string, bool)
	// Save stores the token, replacing any previous value.
	Save(ctx context.Context, token string)
	// Delete removes the token. Deleting an absent token is a no-op.
	Delete(ctx context.Context)
}

const tokenFileName = "jwt_token"

// FileVault persists the token as a 0600 file inside a directory the host
// platform considers private to the app.
type FileVault struct {
	mu   sync.Mutex
	path string
}

// NewFileVault creates the directory if needed and returns a vault backed
// by a token file inside it.
func NewFileVault(dir string) (*FileVault, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileVault{path: filepath.Join(dir, tokenFileName)}, nil
}

func (v *FileVault) Get(ctx context.Context) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	b, err := os.ReadFile(v.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("vault: token read failed")
		}
		return "", false
	}
	tok := strings.TrimSpace(string(b))
	if tok == "" {
		return "", false
	}
	return tok, true
}

func (v *FileVault) Save(ctx context.Context, token string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := os.WriteFile(v.path, []byte(token), 0o600); err != nil {
		log.Warn().Err(err).Msg("vault: token write failed")
	}
}

func (v *FileVault) Delete(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if err := os.Remove(v.path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("vault: token delete failed")
	}
}

// MemVault keeps the token in process memory only. Used by tests and by
// hosts that provide no durable secure storage.
type MemVault struct {
	mu  sync.Mutex
	tok string
	set bool
}

// NewMemVault returns an empty in-memory vault.
func NewMemVault() *MemVault { return &MemVault{} }

func (v *MemVault) Get(ctx context.Context) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.tok, v.set
}

func (v *MemVault) Save(ctx context.Context, token string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tok, v.set = token, true
}

func (v *MemVault) Delete(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tok, v.set = "", false
}

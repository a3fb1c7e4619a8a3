// Package directory provides the pluggable user directory backing the
// auth provider. The JSON implementation loads its record set lazily
// from a file on first lookup and reuses it for the process lifetime.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/go-sessiongate/sessiongate/internal/core"
	"github.com/go-sessiongate/sessiongate/internal/models"
	"github.com/go-sessiongate/sessiongate/internal/password"
)

// Fallback user injected when the source cannot be loaded and the
// dev fallback option is enabled.
const (
	FallbackEmail    = "test@example.com"
	fallbackPassword = "1234"
	fallbackID       = "1"
)

// Compile-time interface check.
var _ core.UserDirectory = (*JSONDirectory)(nil)

// JSONDirectory resolves accounts from a JSON file of user records.
// The file is read at most once per process; a load or decode failure
// degrades to an empty set (or the dev fallback) and is reported to
// callers as not-found, never as a process failure.
type JSONDirectory struct {
	path         string
	devFallback  bool
	loadOnce     sync.Once
	usersByEmail map[string]models.User
}

// Option configures a JSONDirectory at construction time.
type Option func(*JSONDirectory)

// WithDevFallback enables the single synthetic test user when the
// source file is missing, empty or malformed. Bootstrap applies this
// option only on its non-production branch; there is no configuration
// knob that can switch it on in production.
func WithDevFallback() Option {
	return func(d *JSONDirectory) {
		d.devFallback = true
	}
}

// NewJSONDirectory creates a directory reading records from path.
func NewJSONDirectory(path string, opts ...Option) *JSONDirectory {
	d := &JSONDirectory{path: path}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FindByEmail returns the account for the given email or
// ErrUserNotFound. Safe for concurrent use; the first call performs
// the one-time load, later calls are lock-free map reads.
func (d *JSONDirectory) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	d.loadOnce.Do(d.load)

	user, ok := d.usersByEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := user
	return &copied, nil
}

// Name returns the directory name for logging
func (d *JSONDirectory) Name() string {
	return "json"
}

func (d *JSONDirectory) load() {
	d.usersByEmail = make(map[string]models.User)

	users, err := readUsersFile(d.path)
	if err == nil {
		for _, u := range users {
			d.usersByEmail[u.Email] = u
		}
		log.Printf("[directory] Loaded %d users from %s", len(users), d.path)
		return
	}

	if !d.devFallback {
		// Fail closed: no records, every lookup reports not-found.
		log.Printf("[directory] Could not load %s and fallback user is disabled: %v", d.path, err)
		return
	}

	log.Printf("[directory] Could not load %s, using fallback test user: %v", d.path, err)
	hash, hashErr := password.Hash(fallbackPassword)
	if hashErr != nil {
		log.Printf("[directory] Failed to hash fallback password: %v", hashErr)
		return
	}
	d.usersByEmail[FallbackEmail] = models.User{
		ID:           fallbackID,
		Email:        FallbackEmail,
		PasswordHash: hash,
	}
}

func readUsersFile(path string) ([]models.User, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read user source: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceInvalid, err)
	}
	if len(users) == 0 {
		return nil, ErrSourceInvalid
	}
	return users, nil
}

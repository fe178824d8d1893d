package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Keys written by the stores. Each key has exactly one owning store.
const (
	KeyCart            = "cart"
	KeyIsLoggedIn      = "isLoggedIn"
	KeyUserData        = "userData"
	KeyRegisteredUsers = "registeredUsers"
)

var ErrKeyNotFound = errors.New("storage: key not found")

// Storage is the key/value port the stores persist through. Values are
// JSON documents. Get returns ErrKeyNotFound for absent keys and Remove
// of an absent key is not an error.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

type namespacedStorage struct {
	next   Storage
	prefix string
}

// WithNamespace prefixes every key with "namespace:". An empty namespace
// returns s unchanged.
func WithNamespace(s Storage, namespace string) Storage {
	if namespace == "" {
		return s
	}
	return &namespacedStorage{next: s, prefix: namespace + ":"}
}

func (n *namespacedStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return n.next.Get(ctx, n.prefix+key)
}

func (n *namespacedStorage) Set(ctx context.Context, key string, value []byte) error {
	return n.next.Set(ctx, n.prefix+key, value)
}

func (n *namespacedStorage) Remove(ctx context.Context, key string) error {
	return n.next.Remove(ctx, n.prefix+key)
}

// loadJSON decodes key into dst. It reports false when the key is absent
// or holds a value that does not decode; both load as the empty default.
func loadJSON(ctx context.Context, s Storage, key string, dst any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("ignoring undecodable stored value")
		return false, nil
	}
	return true, nil
}

func saveJSON(ctx context.Context, s Storage, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

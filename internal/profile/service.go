package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Key is the single storage key the profile lives under.
const Key = "fitcalc-hub-user-data"

// ErrNotFound is returned by a Store when nothing is stored under a key.
var ErrNotFound = errors.New("profile: not found")

// Store is a durable key/value medium. Put must be durable before it returns.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Service holds the one active profile. It is built once at startup and
// passed to whatever needs the profile; writes are last-writer-wins.
type Service struct {
	store Store

	mu      sync.RWMutex
	current *Profile
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Load reads the profile from the store and makes it the in-memory snapshot.
// A missing key, an unreachable store, or a value that does not decode as a
// Profile all leave the service without a profile; none of them is an error.
func (s *Service) Load(ctx context.Context) (Profile, bool) {
	p, ok := s.read(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !ok {
		s.current = nil
		return Profile{}, false
	}
	s.current = &p
	return p.Clone(), true
}

func (s *Service) read(ctx context.Context) (Profile, bool) {
	raw, err := s.store.Get(ctx, Key)
	if errors.Is(err, ErrNotFound) {
		return Profile{}, false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", Key).Msg("profile store unavailable")
		return Profile{}, false
	}
	p, err := decode(raw)
	if err != nil {
		log.Warn().Err(err).Str("key", Key).Msg("discarding malformed profile")
		return Profile{}, false
	}
	return p, true
}

// Profile returns the in-memory snapshot without touching the store.
func (s *Service) Profile() (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Profile{}, false
	}
	return s.current.Clone(), true
}

// Save replaces the stored profile. The snapshot only changes once the store
// has accepted the write.
func (s *Service) Save(ctx context.Context, p Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Put(ctx, Key, raw); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	saved := p.Clone()
	s.current = &saved
	log.Info().Str("name", p.Name).Msg("profile saved")
	return nil
}

// Clear removes the stored profile. Clearing an empty store is not an error.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Delete(ctx, Key); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("clear profile: %w", err)
	}
	s.current = nil
	log.Info().Msg("profile cleared")
	return nil
}

// requiredKeys must all be present in a stored value. An object without them
// would decode into a zero profile that looks saved.
var requiredKeys = []string{"name", "age", "weight", "height"}

func decode(raw []byte) (Profile, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Profile{}, errors.New("empty value")
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Profile{}, fmt.Errorf("unmarshal: %w", err)
	}
	for _, k := range requiredKeys {
		if v, ok := fields[k]; !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return Profile{}, fmt.Errorf("missing %q", k)
		}
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("unmarshal: %w", err)
	}
	return p, nil
}

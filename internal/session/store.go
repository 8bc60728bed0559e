package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ijwiryacu/report-service/internal/domain"
)

// ErrNotFound is returned when no usable session record exists for a token.
// Malformed records are discarded and reported the same way.
var ErrNotFound = errors.New("session not found")

const keyPrefix = "admin_session:"

// Record is the persisted admin session: the admin identity plus the UI
// state the original client kept alongside it.
type Record struct {
	TokenID  string           `json:"token_id"`
	Admin    domain.AdminUser `json:"admin"`
	View     ViewState        `json:"view"`
	IssuedAt time.Time        `json:"issued_at"`
}

// Store persists admin sessions in Redis keyed by token id.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore builds a session store with the given record lifetime.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Save writes the session record under its token id.
func (s *Store) Save(ctx context.Context, rec *Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+rec.TokenID, payload, s.ttl).Err()
}

// Get loads the session record for a token id. A missing or malformed
// record yields ErrNotFound; malformed data is deleted rather than surfaced.
func (s *Store) Get(ctx context.Context, tokenID string) (*Record, error) {
	payload, err := s.client.Get(ctx, keyPrefix+tokenID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rec, err := decodeRecord(payload)
	if err != nil {
		_ = s.client.Del(ctx, keyPrefix+tokenID).Err()
		return nil, ErrNotFound
	}
	return rec, nil
}

// Delete removes the session record. Deleting an absent session succeeds.
func (s *Store) Delete(ctx context.Context, tokenID string) error {
	return s.client.Del(ctx, keyPrefix+tokenID).Err()
}

// UpdateView replaces the UI state on an existing session.
func (s *Store) UpdateView(ctx context.Context, tokenID string, view ViewState) (*Record, error) {
	rec, err := s.Get(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	rec.View = view
	if err := s.Save(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func decodeRecord(payload []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, err
	}
	if rec.TokenID == "" || rec.Admin.ID == "" {
		return nil, errors.New("incomplete session record")
	}
	return &rec, nil
}

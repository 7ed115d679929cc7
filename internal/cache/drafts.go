// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"blackshop/internal/wizard"
)

const (
	// draftKeyPrefix is the Valkey key prefix for wizard drafts.
	draftKeyPrefix = "wizard:"

	// DefaultDraftTTL is how long an untouched draft survives.
	DefaultDraftTTL = 24 * time.Hour
)

// ErrDraftNotFound is returned when a draft is missing or has expired.
var ErrDraftNotFound = errors.New("cache: draft not found")

// DraftStore keeps product wizard drafts in Valkey as JSON. Every save
// refreshes the TTL, so a draft expires only after a quiet period.
type DraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDraftStore creates a draft store backed by the given Valkey client.
func NewDraftStore(client *redis.Client, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &DraftStore{client: client, ttl: ttl}
}

// DraftKey returns the Valkey key for a draft id.
func DraftKey(id string) string {
	return draftKeyPrefix + id
}

// Get loads a draft. It returns ErrDraftNotFound on a miss.
func (s *DraftStore) Get(ctx context.Context, id string) (*wizard.Draft, error) {
	val, err := s.client.Get(ctx, DraftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get draft %s: %w", id, err)
	}

	var d wizard.Draft
	if err := json.Unmarshal(val, &d); err != nil {
		// A draft we cannot read is as good as gone.
		slog.Warn("discarding corrupt wizard draft", "id", id, "error", err)
		s.Delete(ctx, id)
		return nil, ErrDraftNotFound
	}
	return &d, nil
}

// Save stores a draft and resets its TTL.
func (s *DraftStore) Save(ctx context.Context, d *wizard.Draft) error {
	val, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft %s: %w", d.ID, err)
	}
	if err := s.client.Set(ctx, DraftKey(d.ID), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft %s: %w", d.ID, err)
	}
	return nil
}

// Delete removes a draft. Missing drafts are not an error.
func (s *DraftStore) Delete(ctx context.Context, id string) {
	if err := s.client.Del(ctx, DraftKey(id)).Err(); err != nil {
		slog.Warn("wizard draft delete error", "id", id, "error", err)
	}
}

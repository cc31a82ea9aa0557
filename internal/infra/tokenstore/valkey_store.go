package tokenstore

import (
	"context"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/what-to-wear/internal/domain/auth"
)

// ValkeyStore records revoked token ids in a Valkey-compatible database so
// revocations survive restarts and are shared across instances.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "auth"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Revoke stores the token id with a TTL matching the token's remaining life.
func (s *ValkeyStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	if ttl < time.Second {
		ttl = time.Second
	}
	cmd := s.client.B().Set().Key(s.key(tokenID)).Value("1").Ex(ttl).Build()
	return s.client.Do(ctx, cmd).Error()
}

// IsRevoked reports whether the token id is present in the store.
func (s *ValkeyStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	cmd := s.client.B().Get().Key(s.key(tokenID)).Build()
	result := s.client.Do(ctx, cmd)
	if _, err := result.ToString(); err != nil {
		if valkey.IsValkeyNil(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *ValkeyStore) key(tokenID string) string {
	return s.prefix + ":revoked:" + tokenID
}

var _ auth.TokenStore = (*ValkeyStore)(nil)

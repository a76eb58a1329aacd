// Package session guarda los jti de tokens revocados por logout hasta su expiración.
package session

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const DefaultCleanupInterval = 10 * time.Minute

// RevocationStore lista de revocación en memoria. Un jti revocado deja de ser válido aunque
// el token no haya expirado; la entrada se descarta cuando el token expiraría de todos modos.
type RevocationStore struct {
	cache *gocache.Cache
}

// NewRevocationStore crea el store; cleanupInterval <= 0 usa DefaultCleanupInterval.
func NewRevocationStore(cleanupInterval time.Duration) *RevocationStore {
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &RevocationStore{cache: gocache.New(gocache.NoExpiration, cleanupInterval)}
}

// Revoke marca jti como revocado hasta until. Tokens ya expirados no se guardan.
func (s *RevocationStore) Revoke(jti string, until time.Time) {
	if jti == "" {
		return
	}
	ttl := time.Until(until)
	if ttl <= 0 {
		return
	}
	s.cache.Set(jti, struct{}{}, ttl)
}

// IsRevoked indica si jti fue revocado y sigue vigente.
func (s *RevocationStore) IsRevoked(jti string) bool {
	_, found := s.cache.Get(jti)
	return found
}

// Len número de revocaciones vigentes.
func (s *RevocationStore) Len() int {
	return s.cache.ItemCount()
}

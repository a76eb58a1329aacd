package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevocationStore(t *testing.T) {
	s := NewRevocationStore(0)

	s.Revoke("jti-1", time.Now().Add(time.Hour))
	s.Revoke("jti-expirado", time.Now().Add(-time.Minute))
	s.Revoke("", time.Now().Add(time.Hour))

	assert.True(t, s.IsRevoked("jti-1"))
	assert.False(t, s.IsRevoked("jti-expirado"))
	assert.False(t, s.IsRevoked("otro"))
	assert.Equal(t, 1, s.Len())
}

func TestRevocationStore_ExpiraConElToken(t *testing.T) {
	s := NewRevocationStore(time.Millisecond)
	s.Revoke("jti-corto", time.Now().Add(20*time.Millisecond))
	assert.True(t, s.IsRevoked("jti-corto"))

	assert.Eventually(t, func() bool { return !s.IsRevoked("jti-corto") }, time.Second, 5*time.Millisecond)
}

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Granja-api/internal/application/auth"
	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/infrastructure/memory"
	"github.com/jhoicas/Granja-api/internal/infrastructure/session"
	pkgjwt "github.com/jhoicas/Granja-api/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func newAuth() *auth.AuthUseCase {
	return auth.NewAuthUseCase(
		memory.NewStore().Users(),
		session.NewRevocationStore(0),
		auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "granja-test"},
		auth.SeedConfig{Email: "admin@goatfarm.com", Name: "Admin", Password: "admin123"},
	)
}

func TestSeedAdmin_DosVeces(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	u, err := uc.SeedAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.Equal(t, "admin@goatfarm.com", u.Email)

	_, err = uc.SeedAdmin(ctx)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestLogin_YRevocacion(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	_, err := uc.SeedAdmin(ctx)
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@goatfarm.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	claims, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.False(t, uc.IsRevoked(claims.ID))

	uc.Logout(claims.ID, claims.ExpiresAtTime())
	assert.True(t, uc.IsRevoked(claims.ID))

	me, err := uc.Me(ctx, claims.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Admin", me.Name)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	_, err := uc.SeedAdmin(ctx)
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@goatfarm.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@goatfarm.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	store := memory.NewStore()
	uc := auth.NewAuthUseCase(store.Users(), session.NewRevocationStore(0),
		auth.JWTConfig{Secret: secret, ExpMinutes: 60},
		auth.SeedConfig{Email: "admin@goatfarm.com", Password: "admin123"})
	ctx := context.Background()
	seeded, err := uc.SeedAdmin(ctx)
	require.NoError(t, err)

	u, err := store.Users().GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	u.Status = entity.UserStatusInactive
	u.UpdatedAt = time.Now()
	require.NoError(t, store.Users().Update(ctx, u))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@goatfarm.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

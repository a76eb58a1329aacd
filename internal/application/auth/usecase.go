package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/internal/domain"
	"github.com/jhoicas/Granja-api/internal/domain/entity"
	"github.com/jhoicas/Granja-api/internal/domain/repository"
	"github.com/jhoicas/Granja-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// SeedConfig cuenta administrativa creada por POST /api/seed.
type SeedConfig struct {
	Email    string
	Name     string
	Password string
}

// Revoker lista de revocación de sesiones (jti) usada por el logout.
type Revoker interface {
	Revoke(jti string, until time.Time)
	IsRevoked(jti string) bool
}

// AuthUseCase casos de uso de autenticación: login, logout, perfil y bootstrap del administrador.
type AuthUseCase struct {
	userRepo repository.UserRepository
	revoker  Revoker
	jwtCfg   JWTConfig
	seedCfg  SeedConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, revoker Revoker, jwtCfg JWTConfig, seedCfg SeedConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, revoker: revoker, jwtCfg: jwtCfg, seedCfg: seedCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Email desconocido y password incorrecto retornan el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
		User:      dto.FromUser(user),
	}, nil
}

// Logout revoca el token identificado por jti hasta su expiración.
func (uc *AuthUseCase) Logout(jti string, expiresAt time.Time) {
	uc.revoker.Revoke(jti, expiresAt)
}

// IsRevoked lo consulta el middleware en cada petición autenticada.
func (uc *AuthUseCase) IsRevoked(jti string) bool {
	return uc.revoker.IsRevoked(jti)
}

// Me devuelve el usuario de la sesión.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := dto.FromUser(user)
	return &out, nil
}

// SeedAdmin crea la cuenta administrativa fija si no existe. Si ya existe retorna ErrAlreadyExists
// sin crear un duplicado.
func (uc *AuthUseCase) SeedAdmin(ctx context.Context) (*dto.UserResponse, error) {
	if uc.seedCfg.Email == "" || uc.seedCfg.Password == "" {
		return nil, fmt.Errorf("%w: cuenta semilla sin email o password", domain.ErrInvalidInput)
	}
	existing, err := uc.userRepo.GetByEmail(ctx, uc.seedCfg.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: admin %s", domain.ErrAlreadyExists, uc.seedCfg.Email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(uc.seedCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := uc.seedCfg.Name
	if name == "" {
		name = "Admin"
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        uc.seedCfg.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Status:       entity.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Dos seeds concurrentes: el UNIQUE de email resuelve la carrera
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, fmt.Errorf("%w: admin %s", domain.ErrAlreadyExists, uc.seedCfg.Email)
		}
		return nil, err
	}
	out := dto.FromUser(user)
	return &out, nil
}

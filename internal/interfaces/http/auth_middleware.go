package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Granja-api/internal/application/dto"
	"github.com/jhoicas/Granja-api/pkg/jwt"
)

// Locals keys para los datos de la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
	LocalClaims = "claims"
)

// RevocationChecker consulta si un jti fue revocado por logout.
type RevocationChecker interface {
	IsRevoked(jti string) bool
}

// AuthConfig parámetros del middleware de sesión.
type AuthConfig struct {
	Secret     string
	CookieName string            // cookie de sesión; vacío = solo Authorization
	Revocation RevocationChecker // opcional
}

// AuthMiddleware valida el JWT (Authorization: Bearer o cookie de sesión) y carga UserID, Role y claims
// en c.Locals.
func AuthMiddleware(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, errCode, errMsg := extractToken(c, cfg.CookieName)
		if errCode != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: errCode, Error: errMsg})
		}
		claims, err := jwt.Parse(cfg.Secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "token inválido o expirado"})
		}
		if cfg.Revocation != nil && cfg.Revocation.IsRevoked(claims.ID) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "TOKEN_REVOKED", Error: "la sesión fue cerrada"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalClaims, claims)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx, cookieName string) (token, errCode, errMsg string) {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", "INVALID_TOKEN", "formato: Bearer <token>"
		}
		token = strings.TrimSpace(parts[1])
		if token == "" {
			return "", "MISSING_TOKEN", "token vacío"
		}
		return token, "", ""
	}
	if cookieName != "" {
		if token = c.Cookies(cookieName); token != "" {
			return token, "", ""
		}
	}
	return "", "MISSING_TOKEN", "sesión requerida"
}

// RequireRole autoriza solo a los roles indicados (sin distinguir mayúsculas). Debe ir después de
// AuthMiddleware. Token sin rol -> 401 MISSING_ROLE; rol no permitido -> 403 FORBIDDEN.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Error: "el token no incluye rol"})
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Error: "el rol " + role + " no tiene permiso para esta operación"})
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string { return localString(c, LocalRole) }

// GetClaims devuelve los claims completos (jti y expiración los usa el logout).
func GetClaims(c *fiber.Ctx) *jwt.Claims {
	claims, _ := c.Locals(LocalClaims).(*jwt.Claims)
	return claims
}

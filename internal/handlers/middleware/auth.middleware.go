package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const ClaimsKeyFiber = "Claims"

// UserClaims is the payload of the bearer tokens this API accepts.
type UserClaims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Authenticate stores valid bearer claims in locals. Requests without a
// token or with an invalid one continue anonymously; routes that need a
// user add EnsureCorrectUserOrAdmin.
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := m.log.TraceFromContext(c.UserContext()).Function("Authenticate")

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Next()
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
			log.Info("invalid authorization header format")
			return c.Next()
		}

		claims, err := ParseToken(m.Config.SecretKey, token)
		if err != nil {
			log.Info("token validation failed", "error", err.Error())
			return c.Next()
		}

		c.Locals(ClaimsKeyFiber, claims)
		return c.Next()
	}
}

// EnsureCorrectUserOrAdmin admits admins and the user named by :username.
func (m *Middleware) EnsureCorrectUserOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := m.log.TraceFromContext(c.UserContext()).Function("EnsureCorrectUserOrAdmin")

		claims := GetClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fiber.Map{"message": "Authentication required", "status": fiber.StatusUnauthorized},
			})
		}

		if !claims.IsAdmin && claims.Username != c.Params("username") {
			log.Info("user does not own resource", "username", claims.Username, "target", c.Params("username"))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": fiber.Map{"message": "Unauthorized", "status": fiber.StatusUnauthorized},
			})
		}

		return c.Next()
	}
}

func GetClaims(c *fiber.Ctx) *UserClaims {
	claims, ok := c.Locals(ClaimsKeyFiber).(*UserClaims)
	if !ok {
		return nil
	}
	return claims
}

func ParseToken(secret, raw string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(
		raw,
		&UserClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// NewToken signs an HS256 token for username. A zero ttl issues a token
// without expiry.
func NewToken(secret, username string, isAdmin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := UserClaims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

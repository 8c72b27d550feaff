// Package middleware provides HTTP middleware components for the
// application. Authentication is delegated to an external identity
// provider; the middleware only verifies the bearer tokens it issues.
package middleware

import (
	"log"
	"strings"

	"github.com/SagarP2/Billing-Software/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates JWT bearer tokens signed by the identity
// provider. When JWT_SECRET is unset the middleware is a no-op so the
// API can run without the provider in local setups.
type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{secret: config.GetEnv("JWT_SECRET", "")}
}

// Handler checks the Authorization header for a valid bearer token and
// stores its claims under c.Locals("claims").
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	if m.secret == "" {
		return c.Next()
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		log.Println("Missing Authorization header")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		log.Println("Invalid Authorization format")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(m.secret), nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}
	if !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
	}

	c.Locals("claims", claims)
	return c.Next()
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hazelview_backend/pkg/utils/jwt"
)

const adminLocal = "admin"

// AuthMiddleware admin rotalarını korur
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := claimsFromHeader(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or missing token",
			})
		}

		c.Locals(adminLocal, claims)
		return c.Next()
	}
}

// OptionalAuth geçerli token varsa admin context'i işaretler, yoksa public
// olarak devam eder. Tekil ilan lookup'ında çağıran rolünü çıkarsamak için.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, ok := claimsFromHeader(c); ok {
			c.Locals(adminLocal, claims)
		}
		return c.Next()
	}
}

// IsAdmin request'in doğrulanmış admin'den gelip gelmediğini döner
func IsAdmin(c *fiber.Ctx) bool {
	_, ok := c.Locals(adminLocal).(*jwt.Claims)
	return ok
}

func claimsFromHeader(c *fiber.Ctx) (*jwt.Claims, bool) {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}

	claims, err := jwt.ValidateToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}

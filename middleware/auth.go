package middleware

import (
	"fmt"
	"os"
	"strings"
	"time"

	userModel "github.com/kodraiti-design/eagles-transportes/models/user"
	"github.com/kodraiti-design/eagles-transportes/services"
	"github.com/kodraiti-design/eagles-transportes/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// CreateAccessToken signs an HS256 token carrying the user's identity,
// role and capability list.
func CreateAccessToken(u *userModel.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     u.ID,
		"username":    u.Username,
		"role":        string(u.Role),
		"permissions": u.PermissionList(),
		"exp":         time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// VerifyJWT parses and validates a token string, returning its claims.
func VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid JWT token")
	}
	return claims, nil
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}

// authenticate extracts and verifies the bearer token, storing claims,
// role and the parsed capability set in request locals.
func authenticate(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("authorization token required")
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, fmt.Errorf("invalid authorization header format")
	}

	claims, err := VerifyJWT(tokenParts[1])
	if err != nil {
		return nil, err
	}

	c.Locals("user", claims)
	c.Locals("role", claimRole(claims))
	c.Locals("capabilities", claimCapabilities(claims))
	return claims, nil
}

func claimRole(claims jwt.MapClaims) userModel.Role {
	if role, ok := claims["role"].(string); ok {
		return userModel.Role(role)
	}
	return ""
}

func claimCapabilities(claims jwt.MapClaims) services.CapabilitySet {
	set := make(services.CapabilitySet)
	perms, ok := claims["permissions"].([]interface{})
	if !ok {
		return set
	}
	for _, p := range perms {
		if s, ok := p.(string); ok {
			set[services.Capability(s)] = struct{}{}
		}
	}
	return set
}

// RequireAuthentication only requires a valid token.
func RequireAuthentication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := authenticate(c); err != nil {
			return unauthorized(c, err.Error())
		}
		return c.Next()
	}
}

// RequirePermission gates a route on a single capability. ADMIN passes
// every gate.
func RequirePermission(capability string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := authenticate(c); err != nil {
			return unauthorized(c, err.Error())
		}

		role, _ := c.Locals("role").(userModel.Role)
		caps, _ := c.Locals("capabilities").(services.CapabilitySet)
		if !services.HasCapability(role, caps, services.Capability(capability)) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Missing permission: " + capability,
				Status:  fiber.StatusForbidden,
			})
		}
		return c.Next()
	}
}

// CheckPermissionInController evaluates a capability inside a handler that
// is gated on a different capability.
func CheckPermissionInController(c *fiber.Ctx, capability string) bool {
	role, _ := c.Locals("role").(userModel.Role)
	caps, _ := c.Locals("capabilities").(services.CapabilitySet)
	return services.HasCapability(role, caps, services.Capability(capability))
}

// CurrentUsername returns the username claim of the authenticated user.
func CurrentUsername(c *fiber.Ctx) string {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return ""
	}
	username, _ := claims["username"].(string)
	return username
}

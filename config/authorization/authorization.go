package authorization

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"HealisPortal/util"
)

func secret() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "healis-secret-key"
	}
	return []byte(s)
}

// SignToken issues an HS256 token carrying the user id and flat role string,
// valid for 24 hours.
func SignToken(userId, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userId,
		"role":   role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(secret())
}

func parseToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New(util.INVALID_OR_EXPIRED_TOKEN)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New(util.INVALID_OR_EXPIRED_TOKEN)
	}
	return claims, nil
}

/*
* Read the bearer token from the Authorization header
* Verify signature and expiry
* Put userId and role on the gin context for downstream handlers
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": util.AUTH_TOKEN_REQUIRED})
			c.Abort()
			return
		}
		tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")

		claims, err := parseToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": util.INVALID_OR_EXPIRED_TOKEN})
			c.Abort()
			return
		}

		if userId, ok := claims["userId"].(string); ok {
			c.Set("userId", userId)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set("role", role)
		}
		c.Next()
	}
}

// RequireRole gates a route group to the given flat role strings.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")
		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}
		msg := util.ADMIN_ACCESS_REQUIRED
		if len(roles) == 1 && roles[0] == util.RolePharmacy {
			msg = util.PHARMACY_ACCESS_REQUIRED
		}
		c.JSON(http.StatusForbidden, gin.H{"message": msg})
		c.Abort()
	}
}

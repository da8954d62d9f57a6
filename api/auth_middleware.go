package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lighthouse-academy/lighthouse-backend/user"
	"github.com/patrickmn/go-cache"
)

type UserFinder interface {
	FindUserByID(ctx context.Context, id string) (user.User, error)
}

// AuthRequired authenticates the Bearer token and loads the account it
// names, so role changes take effect without reissuing tokens. Lookups
// are cached briefly to keep the users table off the hot path.
func AuthRequired(secret string, users UserFinder) gin.HandlerFunc {
	userCache := cache.New(1*time.Minute, 5*time.Minute)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		claims, err := ParseAccessToken(secret, strings.TrimPrefix(header, "Bearer "))

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		var account user.User

		if cached, found := userCache.Get(claims.Subject); found {
			account = cached.(user.User)
		} else {
			account, err = users.FindUserByID(c.Request.Context(), claims.Subject)

			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
				c.Abort()
				return
			}

			userCache.Set(claims.Subject, account, cache.DefaultExpiration)
		}

		c.Set("user", account)
	}
}

func currentUser(c *gin.Context) user.User {
	return c.MustGet("user").(user.User)
}

package apistub

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

func (s *Server) countHits() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.hits[c.FullPath()]++
		s.mu.Unlock()
		c.Next()
	}
}

// requireBearer rejects requests without a live access token.
func (s *Server) requireBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "missing bearer token"})
			return
		}

		s.mu.Lock()
		userID, valid := s.access[token]
		s.mu.Unlock()
		if !valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "token expired"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// Package admin wires the administrator API routes.
package admin

import (
	"net/http"
	"strings"

	"github.com/ecotrack-app/ecotrack/internal/config"
	"github.com/ecotrack-app/ecotrack/internal/http/api/admin/handlers"
	"github.com/ecotrack-app/ecotrack/internal/security"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAdminRoutes registers the admin login and review routes.
func RegisterAdminRoutes(r *gin.Engine, db *gorm.DB, jwtCfg config.JWTConfig, adminCfg config.AdminConfig) {
	if r == nil || db == nil {
		return
	}

	api := r.Group("/api/admin")

	authHandler := handlers.NewAuthHandler(jwtCfg, adminCfg)
	api.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(adminAuthMiddleware(jwtCfg))

	usersHandler := handlers.NewUsersHandler(db)
	authed.GET("/users", usersHandler.List)
	authed.GET("/user/:id", usersHandler.Detail)
	authed.DELETE("/user/:id", usersHandler.Delete)
	authed.PUT("/user/:id/suspend", usersHandler.Suspend)

	submissionsHandler := handlers.NewSubmissionsHandler(db)
	authed.GET("/submissions", submissionsHandler.List)
	authed.PUT("/submission/:id/approve", submissionsHandler.Approve)
	authed.PUT("/submission/:id/reject", submissionsHandler.Reject)

	claimsHandler := handlers.NewClaimsHandler(db)
	authed.GET("/reward-claims", claimsHandler.List)
	authed.PUT("/reward-claim/:id/approve", claimsHandler.Approve)
	authed.PUT("/reward-claim/:id/ship", claimsHandler.Ship)
	authed.PUT("/reward-claim/:id/reject", claimsHandler.Reject)

	catalogHandler := handlers.NewCatalogHandler(db)
	authed.GET("/rewards", catalogHandler.List)
	authed.POST("/rewards", catalogHandler.Create)
	authed.PUT("/rewards/:id", catalogHandler.Update)
}

// adminAuthMiddleware validates admin JWTs.
func adminAuthMiddleware(jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		if _, errJWT := security.ParseAdminToken(jwtCfg.Secret, strings.TrimSpace(token)); errJWT != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

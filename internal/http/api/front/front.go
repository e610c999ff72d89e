// Package front wires the public and user-facing API routes.
package front

import (
	"net/http"
	"strings"

	"github.com/ecotrack-app/ecotrack/internal/config"
	"github.com/ecotrack-app/ecotrack/internal/http/api/front/handlers"
	"github.com/ecotrack-app/ecotrack/internal/models"
	"github.com/ecotrack-app/ecotrack/internal/security"
	"github.com/ecotrack-app/ecotrack/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterFrontRoutes registers public and authenticated user routes.
func RegisterFrontRoutes(r *gin.Engine, db *gorm.DB, jwtCfg config.JWTConfig, store storage.ObjectStore, maxUpload int64) {
	if r == nil || db == nil {
		return
	}

	api := r.Group("/api")

	authHandler := handlers.NewAuthHandler(db, jwtCfg)
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/reset-account", authHandler.ResetAccount)

	leaderboardHandler := handlers.NewLeaderboardHandler(db)
	api.GET("/leaderboard", leaderboardHandler.List)

	authed := api.Group("")
	authed.Use(userAuthMiddleware(db, jwtCfg))

	profileHandler := handlers.NewProfileHandler(db)
	authed.GET("/profile", profileHandler.Get)

	quizHandler := handlers.NewQuizHandler(db)
	authed.POST("/quiz/submit", quizHandler.Submit)

	calculatorHandler := handlers.NewCalculatorHandler(db)
	authed.POST("/calculator/submit", calculatorHandler.Submit)

	rewardsHandler := handlers.NewRewardsHandler(db)
	authed.GET("/rewards", rewardsHandler.History)
	authed.GET("/rewards/catalog", rewardsHandler.Catalog)
	authed.POST("/rewards/claim", rewardsHandler.Claim)
	authed.GET("/rewards/claims", rewardsHandler.Claims)

	gamesHandler := handlers.NewGamesHandler(db)
	authed.POST("/game/complete", gamesHandler.Complete)

	submissionsHandler := handlers.NewSubmissionsHandler(db, store, maxUpload)
	authed.POST("/submit", submissionsHandler.Create)

	impactHandler := handlers.NewImpactHandler()
	authed.GET("/impact", impactHandler.Get)
}

// userAuthMiddleware validates user JWTs and loads the user into context.
func userAuthMiddleware(db *gorm.DB, jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		claims, errJWT := security.ParseToken(jwtCfg.Secret, token)
		if errJWT != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		var user models.User
		if errFind := db.WithContext(c.Request.Context()).First(&user, claims.UserID).Error; errFind != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}
		if user.Suspended {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account suspended"})
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}

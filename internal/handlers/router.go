package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"referral-service/internal/store"
)

// NewRouter builds the HTTP router with all routes and middleware attached
func NewRouter(st *store.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(recoverToJSON))
	router.Use(ErrorHandler())
	router.Use(cors.Default())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	userHandler := NewUserHandler(st)
	referralHandler := NewReferralHandler(st)

	router.GET("/users/:userId/referrals", userHandler.GetUserReferrals)
	router.POST("/users", userHandler.CreateUser)
	router.POST("/referrals", referralHandler.CreateReferral)

	return router
}

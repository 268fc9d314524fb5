package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"referral-service/internal/store"
)

// UserHandler handles user-related endpoints
type UserHandler struct {
	store *store.Store
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(st *store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// GetUserReferrals returns the referrals a user originated.
// GET /users/:userId/referrals
func (h *UserHandler) GetUserReferrals(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil || id == 0 {
		c.Error(NewHTTPError(http.StatusBadRequest, "Invalid user ID"))
		return
	}
	userID := uint(id)

	user, err := h.store.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if user == nil {
		c.Error(NewHTTPError(http.StatusNotFound, fmt.Sprintf("User with ID %d not found", userID)))
		return
	}

	referrals, err := h.store.GetReferralsBySourceID(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, referrals)
}

// CreateUser creates a user. Unauthenticated seeding/testing surface.
// POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required"`
		ReferralCode string `json:"referral_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(NewHTTPError(http.StatusBadRequest, "Invalid request: "+err.Error()))
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), req.Name, req.ReferralCode)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, user.Profile())
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"referral-service/internal/store"
)

// ReferralHandler handles referral-related endpoints
type ReferralHandler struct {
	store *store.Store
}

// NewReferralHandler creates a new ReferralHandler
func NewReferralHandler(st *store.Store) *ReferralHandler {
	return &ReferralHandler{store: st}
}

// CreateReferral records that the source user referred the target user.
// Unauthenticated seeding/testing surface.
// POST /referrals
func (h *ReferralHandler) CreateReferral(c *gin.Context) {
	var req struct {
		SourceUserID uint   `json:"source_user_id" binding:"required"`
		TargetUserID uint   `json:"target_user_id" binding:"required"`
		Status       string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(NewHTTPError(http.StatusBadRequest, "Invalid request: "+err.Error()))
		return
	}

	referral, err := h.store.CreateReferral(c.Request.Context(), req.SourceUserID, req.TargetUserID, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, referral)
}

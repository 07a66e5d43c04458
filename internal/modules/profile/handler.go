package profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scholarhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterProtectedRoutes: all profile routes sit behind the gate.
func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/profile")
	{
		group.GET("/me", h.GetMine)
		group.PUT("/me", h.UpsertMine)
		group.GET("/:id", h.GetByID)
	}
}

func (h *Handler) GetMine(c *gin.Context) {
	p, err := h.service.GetByUserID(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.fail(c, err, "Failed to fetch profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) UpsertMine(c *gin.Context) {
	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Upsert(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.fail(c, err, "Failed to save profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid profile ID")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to fetch profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
}

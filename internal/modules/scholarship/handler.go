package scholarship

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scholarhub/internal/domain"
	"scholarhub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	group := v1.Group("/scholarships")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}
}

// RegisterProtectedRoutes expects the gate and the admin role permit
// to already be applied on the group.
func (h *Handler) RegisterProtectedRoutes(admin *gin.RouterGroup) {
	group := admin.Group("/scholarships")
	{
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.POST("/:id/publish", h.Publish)
		group.POST("/:id/close", h.Close)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sch, err := h.service.Create(c.Request.Context(), req, c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create scholarship")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"scholarship": sch})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sch, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to fetch scholarship")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"scholarship": sch})
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	items, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list scholarships")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"scholarships": items,
		"total":        total,
		"page":         q.Page,
		"limit":        q.Limit,
	})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sch, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err, "Failed to update scholarship")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"scholarship": sch})
}

func (h *Handler) Publish(c *gin.Context) {
	h.setStatus(c, h.service.Publish)
}

func (h *Handler) Close(c *gin.Context) {
	h.setStatus(c, h.service.Close)
}

func (h *Handler) setStatus(c *gin.Context, transition func(ctx context.Context, id int64) (*domain.Scholarship, error)) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sch, err := transition(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to change scholarship status")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"scholarship": sch})
}

func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Scholarship not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid scholarship ID")
		return 0, false
	}
	return id, true
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dafa-music/backend/internal/dto"
	"dafa-music/backend/internal/service"
	"dafa-music/backend/pkg/response"
)

// EnrollmentHandler 报名排课模块 Handler
type EnrollmentHandler struct {
	svc service.EnrollmentService
}

// NewEnrollmentHandler 创建 EnrollmentHandler 实例
func NewEnrollmentHandler(svc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

// Create 报名并自动排课
// POST /api/enrollments
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			response.NotFound(c, "Course not found")
		case errors.Is(err, service.ErrInvalidStartPoint):
			response.BadRequest(c, "Invalid startDate or startTime")
		default:
			response.InternalError(c, "Failed to create enrollment")
		}
		return
	}

	response.Created(c, resp)
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dafa-music/backend/internal/dto"
	"dafa-music/backend/internal/service"
	"dafa-music/backend/pkg/response"
)

// LessonHandler 课堂模块 Handler
type LessonHandler struct {
	svc service.LessonService
}

// NewLessonHandler 创建 LessonHandler 实例
func NewLessonHandler(svc service.LessonService) *LessonHandler {
	return &LessonHandler{svc: svc}
}

// List 查询课堂（日历事件格式）
// GET /api/lessons?start=...&end=... 或 ?today=true
func (h *LessonHandler) List(c *gin.Context) {
	var req dto.LessonListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	events, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWindow) {
			response.BadRequest(c, "Invalid start or end time")
			return
		}
		response.InternalError(c, "Failed to fetch lessons")
		return
	}

	response.OK(c, events)
}

// Reschedule 调课
// PATCH /api/lessons/:id/reschedule
func (h *LessonHandler) Reschedule(c *gin.Context) {
	id := c.Param("id")

	var req dto.RescheduleLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Start time and end time are required")
		return
	}

	lesson, err := h.svc.Reschedule(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			response.NotFound(c, "Lesson not found")
			return
		}
		response.InternalError(c, "Failed to reschedule lesson")
		return
	}

	response.OK(c, lesson)
}

// UpdateStatus 更新课堂状态
// PATCH /api/lessons/:id/status
func (h *LessonHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateLessonStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Status is required")
		return
	}

	lesson, err := h.svc.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			response.NotFound(c, "Lesson not found")
			return
		}
		response.InternalError(c, "Failed to update lesson status")
		return
	}

	response.OK(c, lesson)
}

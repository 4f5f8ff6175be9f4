package handler

import (
	"github.com/gin-gonic/gin"

	"dafa-music/backend/internal/dto"
	"dafa-music/backend/internal/service"
	"dafa-music/backend/pkg/response"
)

// CourseHandler 课程模块 Handler
type CourseHandler struct {
	svc service.CourseService
}

// NewCourseHandler 创建 CourseHandler 实例
func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// List 课程列表
// GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch courses")
		return
	}

	response.OK(c, courses)
}

// Create 新建课程
// POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name is required")
		return
	}

	course, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Failed to create course")
		return
	}

	response.Created(c, course)
}

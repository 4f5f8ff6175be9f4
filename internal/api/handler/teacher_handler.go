package handler

import (
	"github.com/gin-gonic/gin"

	"dafa-music/backend/internal/dto"
	"dafa-music/backend/internal/service"
	"dafa-music/backend/pkg/response"
)

// TeacherHandler 老师模块 Handler
type TeacherHandler struct {
	svc service.TeacherService
}

// NewTeacherHandler 创建 TeacherHandler 实例
func NewTeacherHandler(svc service.TeacherService) *TeacherHandler {
	return &TeacherHandler{svc: svc}
}

// List 老师列表
// GET /api/teachers
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch teachers")
		return
	}

	response.OK(c, teachers)
}

// Create 新建老师
// POST /api/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name is required")
		return
	}

	teacher, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Failed to create teacher")
		return
	}

	response.Created(c, teacher)
}

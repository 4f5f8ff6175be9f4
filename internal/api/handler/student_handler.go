package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"dafa-music/backend/internal/dto"
	"dafa-music/backend/internal/service"
	"dafa-music/backend/pkg/response"
)

// StudentHandler 学生模块 Handler
type StudentHandler struct {
	svc service.StudentService
}

// NewStudentHandler 创建 StudentHandler 实例
func NewStudentHandler(svc service.StudentService) *StudentHandler {
	return &StudentHandler{svc: svc}
}

// List 学生列表（支持姓名/电话模糊搜索）
// GET /api/students?query=...
func (h *StudentHandler) List(c *gin.Context) {
	var req dto.StudentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	students, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, "Failed to fetch students")
		return
	}

	response.OK(c, students)
}

// Create 新建学生
// POST /api/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Name is required")
		return
	}

	student, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidBirthday) {
			response.BadRequest(c, "Invalid birthday")
			return
		}
		response.InternalError(c, "Failed to create student")
		return
	}

	response.Created(c, student)
}

// Get 学生详情（含报名记录）
// GET /api/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id := c.Param("id")

	student, err := h.svc.GetDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, "Student not found")
			return
		}
		response.InternalError(c, "Failed to fetch student")
		return
	}

	response.OK(c, student)
}

// Update 更新学生
// PUT /api/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	student, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, "Student not found")
		case errors.Is(err, service.ErrInvalidBirthday):
			response.BadRequest(c, "Invalid birthday")
		default:
			response.InternalError(c, "Failed to update student")
		}
		return
	}

	response.OK(c, student)
}

// Delete 删除学生
// DELETE /api/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, "Student not found")
			return
		}
		response.InternalError(c, "Failed to delete student")
		return
	}

	response.OK(c, gin.H{"message": "Student deleted"})
}

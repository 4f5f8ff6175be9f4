package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"dafa-music/backend/internal/dto"
	"dafa-music/backend/internal/service"
	"dafa-music/backend/pkg/response"
)

// ExportHandler 导出模块 Handler
type ExportHandler struct {
	svc service.ExportService
}

// NewExportHandler 创建 ExportHandler 实例
func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportXlsx 导出课堂表为 Excel
// GET /api/lessons/export/xlsx?start=...&end=...
func (h *ExportHandler) ExportXlsx(c *gin.Context) {
	var req dto.LessonListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	buf, filename, err := h.svc.ExportXlsx(c.Request.Context(), &req)
	if err != nil {
		handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// ExportICS 导出课堂为 iCalendar
// GET /api/lessons/export/ics?start=...&end=...
func (h *ExportHandler) ExportICS(c *gin.Context) {
	var req dto.LessonListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	content, err := h.svc.ExportICS(c.Request.Context(), &req)
	if err != nil {
		handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="lessons.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(content))
}

// handleExportError 统一导出模块错误映射
func handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidWindow):
		response.BadRequest(c, "Invalid start or end time")
	case errors.Is(err, service.ErrExportNoLessons):
		response.NotFound(c, "No lessons found")
	default:
		response.InternalError(c, "Failed to export lessons")
	}
}

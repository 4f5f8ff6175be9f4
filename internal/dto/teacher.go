package dto

// ── 老师模块 DTO ──

// CreateTeacherRequest 新建老师请求
type CreateTeacherRequest struct {
	Name  string  `json:"name" binding:"required"`
	Color *string `json:"color"` // 日历渲染颜色，缺省用 #3788d8
}

// TeacherResponse 老师信息响应
type TeacherResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

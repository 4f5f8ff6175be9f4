package dto

import "time"

// ── 学生模块 DTO ──

// CreateStudentRequest 新建学生请求
type CreateStudentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Gender      *string `json:"gender"      binding:"omitempty,oneof=M F"`
	Birthday    *string `json:"birthday"` // "2010-05-01"
	Phone       *string `json:"phone"`
	ParentPhone *string `json:"parentPhone"`
	LineID      *string `json:"lineId"`
	Address     *string `json:"address"`
}

// UpdateStudentRequest 更新学生请求（缺省字段保持不变）
type UpdateStudentRequest struct {
	Name        *string `json:"name"`
	Gender      *string `json:"gender" binding:"omitempty,oneof=M F"`
	Birthday    *string `json:"birthday"`
	Phone       *string `json:"phone"`
	ParentPhone *string `json:"parentPhone"`
	LineID      *string `json:"lineId"`
	Address     *string `json:"address"`
	Notes       *string `json:"notes"`
}

// StudentListRequest 学生列表查询参数
type StudentListRequest struct {
	Query string `form:"query"` // 姓名或电话模糊搜索
}

// StudentResponse 学生信息响应
type StudentResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Gender      *string    `json:"gender,omitempty"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	ParentPhone *string    `json:"parentPhone,omitempty"`
	LineID      *string    `json:"lineId,omitempty"`
	Address     *string    `json:"address,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// StudentDetailResponse 学生详情响应（含报名记录）
type StudentDetailResponse struct {
	StudentResponse
	Enrollments []EnrollmentWithCourse `json:"enrollments"`
}

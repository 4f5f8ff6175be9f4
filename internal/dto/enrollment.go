package dto

import "time"

// ── 报名排课模块 DTO ──

// CreateEnrollmentRequest 报名并自动排课请求
// totalLessons 必须为正整数：0 视为缺失（与既有前端约定一致），负数同样拒绝
type CreateEnrollmentRequest struct {
	StudentID    string  `json:"studentId"    binding:"required"`
	CourseID     string  `json:"courseId"     binding:"required"`
	TeacherID    string  `json:"teacherId"    binding:"required"`
	StartDate    string  `json:"startDate"    binding:"required"` // "2024-01-01"
	StartTime    string  `json:"startTime"    binding:"required"` // "10:00"
	TotalLessons int     `json:"totalLessons" binding:"required,gt=0"`
	PricePaid    float64 `json:"pricePaid"`
}

// EnrollmentResponse 报名记录响应
type EnrollmentResponse struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"studentId"`
	CourseID     string    `json:"courseId"`
	TotalLessons int       `json:"totalLessons"`
	PricePaid    float64   `json:"pricePaid"`
	PurchaseDate time.Time `json:"purchaseDate"`
}

// CreateEnrollmentResponse 报名排课结果
type CreateEnrollmentResponse struct {
	Enrollment     EnrollmentResponse `json:"enrollment"`
	LessonsCreated int                `json:"lessonsCreated"`
}

// EnrollmentWithCourse 学生详情中的报名记录（含课程）
type EnrollmentWithCourse struct {
	ID           string          `json:"id"`
	CourseID     string          `json:"courseId"`
	TotalLessons int             `json:"totalLessons"`
	PricePaid    float64         `json:"pricePaid"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	Course       *CourseResponse `json:"course,omitempty"`
}

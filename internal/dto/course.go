package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 新建课程请求
type CreateCourseRequest struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price"`
	TotalLessons    int     `json:"totalLessons"`
	DurationMinutes int     `json:"durationMinutes"` // 缺省 60 分钟
}

// CourseResponse 课程信息响应
type CourseResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	TotalLessons    int     `json:"totalLessons"`
	DurationMinutes int     `json:"durationMinutes"`
}

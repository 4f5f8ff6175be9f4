package dto

import "time"

// ── 课堂模块 DTO ──

// LessonListRequest 课堂列表查询参数
// start/end 与 today 互斥：优先区间过滤，其次 today=true，否则返回全部
type LessonListRequest struct {
	Start string `form:"start"`
	End   string `form:"end"`
	Today string `form:"today"`
}

// RescheduleLessonRequest 调课请求
// 起止时间由调用方整体给出，服务端原样覆盖，不按课程时长重算
type RescheduleLessonRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime"   binding:"required"`
}

// UpdateLessonStatusRequest 课堂状态更新请求
// 指针类型保证 0（待上课）是合法的显式取值而非缺失
type UpdateLessonStatusRequest struct {
	Status *int `json:"status" binding:"required"`
}

// LessonResponse 课堂记录响应
type LessonResponse struct {
	ID            string    `json:"id"`
	EnrollmentID  string    `json:"enrollmentId"`
	StudentID     string    `json:"studentId"`
	TeacherID     string    `json:"teacherId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        int       `json:"status"`
	IsRescheduled bool      `json:"isRescheduled"`
}

// ── 日历视图 ──

// CalendarEventProps 日历事件附加属性
type CalendarEventProps struct {
	StudentID   string `json:"studentId"`
	StudentName string `json:"studentName"`
	TeacherName string `json:"teacherName"`
	Status      int    `json:"status"`
}

// CalendarEventResponse 日历事件视图模型（FullCalendar 约定字段）
type CalendarEventResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Start           time.Time          `json:"start"`
	End             time.Time          `json:"end"`
	BackgroundColor string             `json:"backgroundColor"`
	BorderColor     string             `json:"borderColor"`
	ExtendedProps   CalendarEventProps `json:"extendedProps"`
}

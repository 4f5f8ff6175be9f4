package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
// JSON 字段名与前端约定保持 camelCase
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// 课堂状态枚举
// 状态仅通过显式更新变更，不会从时间推断；
// 与前端约定保留对任意整数的兼容（不做闭集校验）
const (
	LessonStatusPending   = 0 // 待上课
	LessonStatusCheckedIn = 1 // 已签到
	LessonStatusOnLeave   = 2 // 请假
)

// DefaultTeacherColor 日历渲染默认颜色（老师未设置 color 时使用）
const DefaultTeacherColor = "#3788d8"

// DefaultDurationMinutes 课程未设置时长时的默认课堂时长（分钟）
const DefaultDurationMinutes = 60

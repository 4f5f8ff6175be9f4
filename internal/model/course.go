package model

// Course 课程表，对应表 courses
// 报名排课时课堂时长会快照到每节课堂上，之后修改课程不影响已排课堂
type Course struct {
	CourseID        string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Price           float64 `gorm:"type:numeric(10,2);not null;default:0"          json:"price"`
	TotalLessons    int     `gorm:"not null;default:0"                             json:"totalLessons"`    // 该课程默认堂数
	DurationMinutes int     `gorm:"not null;default:60"                            json:"durationMinutes"` // 单堂时长（分钟）
	BaseModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

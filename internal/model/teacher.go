package model

// Teacher 老师表，对应表 teachers
type Teacher struct {
	TeacherID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Color     *string `gorm:"type:varchar(20)"                               json:"color,omitempty"` // 日历渲染用 hex 颜色
	BaseModel
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }

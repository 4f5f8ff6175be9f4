package model

import "time"

// Student 学生表，对应表 students
type Student struct {
	StudentID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:varchar(100);not null"                     json:"name"`
	Gender      *string    `gorm:"type:varchar(1)"                                json:"gender,omitempty"` // M | F
	Birthday    *time.Time `json:"birthday,omitempty"`
	Phone       *string    `gorm:"type:varchar(30)"  json:"phone,omitempty"`
	ParentPhone *string    `gorm:"type:varchar(30)"  json:"parentPhone,omitempty"`
	LineID      *string    `gorm:"type:varchar(100)" json:"lineId,omitempty"`
	Address     *string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	Notes       *string    `gorm:"type:text"         json:"notes,omitempty"`
	BaseModel

	// 关联
	Enrollments []Enrollment `gorm:"foreignKey:StudentID" json:"enrollments,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

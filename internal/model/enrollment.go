package model

import "time"

// Enrollment 报名表，对应表 enrollments
// 代表一次购课行为，创建后不可变；课堂在报名时一并生成
type Enrollment struct {
	EnrollmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID    string    `gorm:"type:uuid;not null"                             json:"studentId"`
	CourseID     string    `gorm:"type:uuid;not null"                             json:"courseId"`
	TotalLessons int       `gorm:"not null"                                       json:"totalLessons"` // 实际购买堂数，可与课程默认值不同
	PricePaid    float64   `gorm:"type:numeric(10,2);not null;default:0"          json:"pricePaid"`
	PurchaseDate time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"purchaseDate"`
	BaseModel

	// 关联
	Student *Student `gorm:"foreignKey:StudentID;references:StudentID" json:"student,omitempty"`
	Course  *Course  `gorm:"foreignKey:CourseID;references:CourseID"   json:"course,omitempty"`
	Lessons []Lesson `gorm:"foreignKey:EnrollmentID"                   json:"lessons,omitempty"`
}

// TableName 指定表名
func (Enrollment) TableName() string { return "enrollments" }

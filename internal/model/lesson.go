package model

import "time"

// Lesson 课堂表，对应表 lessons
// 学生、老师引用在报名时冗余拷贝到每节课堂（不再回查报名记录）
type Lesson struct {
	LessonID      string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	EnrollmentID  string    `gorm:"type:uuid;not null"                             json:"enrollmentId"`
	StudentID     string    `gorm:"type:uuid;not null"                             json:"studentId"`
	TeacherID     string    `gorm:"type:uuid;not null"                             json:"teacherId"`
	StartTime     time.Time `gorm:"not null"                                       json:"startTime"`
	EndTime       time.Time `gorm:"not null"                                       json:"endTime"`
	Status        int       `gorm:"type:smallint;not null;default:0"               json:"status"`        // 0=待上课 1=已签到 2=请假
	IsRescheduled bool      `gorm:"not null;default:false"                         json:"isRescheduled"` // 单向标记：一经调课不再复位
	BaseModel

	// 关联
	Enrollment *Enrollment `gorm:"foreignKey:EnrollmentID;references:EnrollmentID" json:"enrollment,omitempty"`
	Student    *Student    `gorm:"foreignKey:StudentID;references:StudentID"       json:"student,omitempty"`
	Teacher    *Teacher    `gorm:"foreignKey:TeacherID;references:TeacherID"       json:"teacher,omitempty"`
}

// TableName 指定表名
func (Lesson) TableName() string { return "lessons" }

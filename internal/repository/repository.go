package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Student    StudentRepository
	Teacher    TeacherRepository
	Course     CourseRepository
	Enrollment EnrollmentRepository
	Lesson     LessonRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Student:    NewStudentRepo(db),
		Teacher:    NewTeacherRepo(db),
		Course:     NewCourseRepo(db),
		Enrollment: NewEnrollmentRepo(db),
		Lesson:     NewLessonRepo(db),
	}
}

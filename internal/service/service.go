package service

import (
	"go.uber.org/zap"

	"dafa-music/backend/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Student    StudentService
	Teacher    TeacherService
	Course     CourseService
	Enrollment EnrollmentService
	Lesson     LessonService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Student:    NewStudentService(repo, logger),
		Teacher:    NewTeacherService(repo, logger),
		Course:     NewCourseService(repo, logger),
		Enrollment: NewEnrollmentService(repo, logger),
		Lesson:     NewLessonService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}

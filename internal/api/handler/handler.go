package handler

import "dafa-music/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Student    *StudentHandler
	Teacher    *TeacherHandler
	Course     *CourseHandler
	Enrollment *EnrollmentHandler
	Lesson     *LessonHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Student:    NewStudentHandler(svc.Student),
		Teacher:    NewTeacherHandler(svc.Teacher),
		Course:     NewCourseHandler(svc.Course),
		Enrollment: NewEnrollmentHandler(svc.Enrollment),
		Lesson:     NewLessonHandler(svc.Lesson),
		Export:     NewExportHandler(svc.Export),
	}
}

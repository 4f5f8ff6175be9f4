package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"dafa-music/backend/internal/model"
	"dafa-music/backend/internal/repository"
)

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student
	seq      int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.StudentID == "" {
		m.seq++
		student.StudentID = fmt.Sprintf("stu-%03d", m.seq)
	}
	student.CreatedAt = time.Now()
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetDetail(_ context.Context, id string) (*model.Student, error) {
	return m.GetByID(context.Background(), id)
}

func (m *mockStudentRepo) Search(_ context.Context, query string) ([]model.Student, error) {
	var result []model.Student
	for _, s := range m.students {
		if query != "" {
			name := strings.ToLower(s.Name)
			phone := ""
			if s.Phone != nil {
				phone = strings.ToLower(*s.Phone)
			}
			q := strings.ToLower(query)
			if !strings.Contains(name, q) && !strings.Contains(phone, q) {
				continue
			}
		}
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.StudentID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string) error {
	delete(m.students, id)
	return nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers map[string]*model.Teacher
	seq      int
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[string]*model.Teacher)}
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if teacher.TeacherID == "" {
		m.seq++
		teacher.TeacherID = fmt.Sprintf("tea-%03d", m.seq)
	}
	m.teachers[teacher.TeacherID] = teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	var result []model.Teacher
	for _, t := range m.teachers {
		result = append(result, *t)
	}
	return result, nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses map[string]*model.Course
	seq     int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course)}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	if course.CourseID == "" {
		m.seq++
		course.CourseID = fmt.Sprintf("crs-%03d", m.seq)
	}
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		result = append(result, *c)
	}
	return result, nil
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments    map[string]*model.Enrollment
	createdLessons []model.Lesson
	seq            int
	failErr        error // 非 nil 时 CreateWithLessons 直接失败（事务整体回滚语义）
}

func newMockEnrollmentRepo() *mockEnrollmentRepo {
	return &mockEnrollmentRepo{enrollments: make(map[string]*model.Enrollment)}
}

func (m *mockEnrollmentRepo) CreateWithLessons(_ context.Context, enrollment *model.Enrollment, lessons []model.Lesson) error {
	if m.failErr != nil {
		return m.failErr
	}
	if enrollment.EnrollmentID == "" {
		m.seq++
		enrollment.EnrollmentID = fmt.Sprintf("enr-%03d", m.seq)
	}
	m.enrollments[enrollment.EnrollmentID] = enrollment
	for i := range lessons {
		lessons[i].EnrollmentID = enrollment.EnrollmentID
	}
	m.createdLessons = append(m.createdLessons, lessons...)
	return nil
}

func (m *mockEnrollmentRepo) GetByID(_ context.Context, id string) (*model.Enrollment, error) {
	if e, ok := m.enrollments[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEnrollmentRepo) ListByStudent(_ context.Context, studentID string) ([]model.Enrollment, error) {
	var result []model.Enrollment
	for _, e := range m.enrollments {
		if e.StudentID == studentID {
			result = append(result, *e)
		}
	}
	return result, nil
}

// ── Mock LessonRepository ──

type mockLessonRepo struct {
	lessons map[string]*model.Lesson
	seq     int
}

func newMockLessonRepo() *mockLessonRepo {
	return &mockLessonRepo{lessons: make(map[string]*model.Lesson)}
}

func (m *mockLessonRepo) add(lesson *model.Lesson) {
	if lesson.LessonID == "" {
		m.seq++
		lesson.LessonID = fmt.Sprintf("les-%03d", m.seq)
	}
	m.lessons[lesson.LessonID] = lesson
}

func (m *mockLessonRepo) GetByID(_ context.Context, id string) (*model.Lesson, error) {
	if l, ok := m.lessons[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLessonRepo) ListWithRelations(_ context.Context, window *repository.LessonWindow) ([]model.Lesson, error) {
	var result []model.Lesson
	for _, l := range m.lessons {
		if window != nil {
			if l.StartTime.Before(window.Start) || l.StartTime.After(window.End) {
				continue
			}
		}
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

func (m *mockLessonRepo) UpdateTimes(_ context.Context, lesson *model.Lesson) error {
	m.lessons[lesson.LessonID] = lesson
	return nil
}

func (m *mockLessonRepo) UpdateStatus(_ context.Context, lesson *model.Lesson) error {
	m.lessons[lesson.LessonID] = lesson
	return nil
}

// ── 测试用 Repository 聚合 ──

type mockRepos struct {
	student    *mockStudentRepo
	teacher    *mockTeacherRepo
	course     *mockCourseRepo
	enrollment *mockEnrollmentRepo
	lesson     *mockLessonRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		student:    newMockStudentRepo(),
		teacher:    newMockTeacherRepo(),
		course:     newMockCourseRepo(),
		enrollment: newMockEnrollmentRepo(),
		lesson:     newMockLessonRepo(),
	}
	repo := &repository.Repository{
		Student:    m.student,
		Teacher:    m.teacher,
		Course:     m.course,
		Enrollment: m.enrollment,
		Lesson:     m.lesson,
	}
	return repo, m
}

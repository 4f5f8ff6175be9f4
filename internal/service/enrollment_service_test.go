package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"dafa-music/backend/internal/dto"
	"dafa-music/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestEnrollmentService() (EnrollmentService, *mockRepos) {
	repo, mocks := newMockRepos()
	svc := NewEnrollmentService(repo, zap.NewNop())
	return svc, mocks
}

// ── Create 测试 ──

func TestEnrollmentService_Create_Success(t *testing.T) {
	svc, mocks := setupTestEnrollmentService()
	mocks.course.courses["crs-001"] = &model.Course{
		CourseID:        "crs-001",
		Name:            "钢琴一对一",
		DurationMinutes: 45,
	}

	req := &dto.CreateEnrollmentRequest{
		StudentID:    "stu-001",
		CourseID:     "crs-001",
		TeacherID:    "tea-001",
		StartDate:    "2024-01-01",
		StartTime:    "10:00",
		TotalLessons: 3,
		PricePaid:    6000,
	}

	resp, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	if resp.LessonsCreated != 3 {
		t.Errorf("期望lessonsCreated=3，实际=%d", resp.LessonsCreated)
	}
	if resp.Enrollment.TotalLessons != 3 {
		t.Errorf("期望totalLessons=3，实际=%d", resp.Enrollment.TotalLessons)
	}
	if resp.Enrollment.PricePaid != 6000 {
		t.Errorf("期望pricePaid=6000，实际=%v", resp.Enrollment.PricePaid)
	}

	lessons := mocks.enrollment.createdLessons
	if len(lessons) != 3 {
		t.Fatalf("期望落库3节课堂，实际=%d", len(lessons))
	}

	wantStarts := []time.Time{
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
		time.Date(2024, 1, 8, 10, 0, 0, 0, time.Local),
		time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local),
	}
	for i, lesson := range lessons {
		if !lesson.StartTime.Equal(wantStarts[i]) {
			t.Errorf("第%d节开始时间期望=%v，实际=%v", i, wantStarts[i], lesson.StartTime)
		}
		if !lesson.EndTime.Equal(wantStarts[i].Add(45 * time.Minute)) {
			t.Errorf("第%d节结束时间应为开始+45分钟，实际=%v", i, lesson.EndTime)
		}
		if lesson.Status != model.LessonStatusPending {
			t.Errorf("第%d节状态期望待上课，实际=%d", i, lesson.Status)
		}
		if lesson.IsRescheduled {
			t.Errorf("第%d节isRescheduled应为false", i)
		}
		if lesson.StudentID != "stu-001" || lesson.TeacherID != "tea-001" {
			t.Errorf("第%d节学生/老师引用不正确", i)
		}
		if lesson.EnrollmentID == "" {
			t.Errorf("第%d节应关联报名记录", i)
		}
	}
}

func TestEnrollmentService_Create_CourseNotFound(t *testing.T) {
	svc, mocks := setupTestEnrollmentService()

	req := &dto.CreateEnrollmentRequest{
		StudentID:    "stu-001",
		CourseID:     "nonexistent",
		TeacherID:    "tea-001",
		StartDate:    "2024-01-01",
		StartTime:    "10:00",
		TotalLessons: 3,
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
	if len(mocks.enrollment.enrollments) != 0 {
		t.Error("课程不存在时不应写入报名记录")
	}
	if len(mocks.enrollment.createdLessons) != 0 {
		t.Error("课程不存在时不应写入课堂")
	}
}

func TestEnrollmentService_Create_DefaultDuration(t *testing.T) {
	svc, mocks := setupTestEnrollmentService()
	// durationMinutes 为零值（课程未设置），应回落到 60 分钟
	mocks.course.courses["crs-001"] = &model.Course{
		CourseID: "crs-001",
		Name:     "小提琴团体班",
	}

	req := &dto.CreateEnrollmentRequest{
		StudentID:    "stu-001",
		CourseID:     "crs-001",
		TeacherID:    "tea-001",
		StartDate:    "2024-06-01",
		StartTime:    "09:30",
		TotalLessons: 1,
	}

	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	lesson := mocks.enrollment.createdLessons[0]
	if got := lesson.EndTime.Sub(lesson.StartTime); got != 60*time.Minute {
		t.Errorf("期望课堂时长60分钟，实际=%v", got)
	}
}

func TestEnrollmentService_Create_InvalidStartPoint(t *testing.T) {
	svc, mocks := setupTestEnrollmentService()
	mocks.course.courses["crs-001"] = &model.Course{
		CourseID:        "crs-001",
		DurationMinutes: 60,
	}

	req := &dto.CreateEnrollmentRequest{
		StudentID:    "stu-001",
		CourseID:     "crs-001",
		TeacherID:    "tea-001",
		StartDate:    "not-a-date",
		StartTime:    "10:00",
		TotalLessons: 3,
	}

	_, err := svc.Create(context.Background(), req)
	if !errors.Is(err, ErrInvalidStartPoint) {
		t.Errorf("期望 ErrInvalidStartPoint，实际: %v", err)
	}
	if len(mocks.enrollment.enrollments) != 0 {
		t.Error("锚点非法时不应写入任何记录")
	}
}

func TestEnrollmentService_Create_NegativeLessonsNoPanic(t *testing.T) {
	svc, mocks := setupTestEnrollmentService()
	mocks.course.courses["crs-001"] = &model.Course{
		CourseID:        "crs-001",
		DurationMinutes: 60,
	}

	// 正数校验在绑定层；Service 对越过边界的负数也必须安全（不生成课堂）
	req := &dto.CreateEnrollmentRequest{
		StudentID:    "stu-001",
		CourseID:     "crs-001",
		TeacherID:    "tea-001",
		StartDate:    "2024-01-01",
		StartTime:    "10:00",
		TotalLessons: -3,
	}

	resp, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 不应失败: %v", err)
	}
	if resp.LessonsCreated != 0 {
		t.Errorf("负数堂数期望生成0节课堂，实际=%d", resp.LessonsCreated)
	}
	if len(mocks.enrollment.createdLessons) != 0 {
		t.Error("负数堂数不应写入任何课堂")
	}
}

func TestEnrollmentService_Create_WriteFailureNoPartialState(t *testing.T) {
	svc, mocks := setupTestEnrollmentService()
	mocks.course.courses["crs-001"] = &model.Course{
		CourseID:        "crs-001",
		DurationMinutes: 60,
	}
	mocks.enrollment.failErr = errors.New("db down")

	req := &dto.CreateEnrollmentRequest{
		StudentID:    "stu-001",
		CourseID:     "crs-001",
		TeacherID:    "tea-001",
		StartDate:    "2024-01-01",
		StartTime:    "10:00",
		TotalLessons: 3,
	}

	if _, err := svc.Create(context.Background(), req); err == nil {
		t.Fatal("写入失败应返回错误")
	}
	// 事务语义：失败后无报名也无课堂
	if len(mocks.enrollment.enrollments) != 0 || len(mocks.enrollment.createdLessons) != 0 {
		t.Error("写入失败后不应留下部分状态")
	}
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"dafa-music/backend/internal/dto"
	"dafa-music/backend/internal/model"
	"dafa-music/backend/internal/repository"
)

// ── 报名模块业务错误 ──

var (
	ErrCourseNotFound    = errors.New("课程不存在")
	ErrInvalidStartPoint = errors.New("开课日期或时间格式不正确")
)

// EnrollmentService 报名排课业务接口
type EnrollmentService interface {
	// Create 创建报名并自动生成整期课堂
	Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.CreateEnrollmentResponse, error)
}

type enrollmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEnrollmentService 创建 EnrollmentService 实例
func NewEnrollmentService(repo *repository.Repository, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, logger: logger}
}

// Create 报名排课主流程：
//  1. 查询课程（不存在直接失败，此前无任何写入）
//  2. 课堂时长取课程设置，未设置回落到 60 分钟
//  3. 组合开课日期时间为本地墙钟锚点
//  4. 按 7 天周期生成 totalLessons 节课堂（状态待上课，未调课）
//  5. 报名记录与课堂批量写入在同一事务内落库
func (s *enrollmentService) Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*dto.CreateEnrollmentResponse, error) {
	course, err := s.repo.Course.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.String("course_id", req.CourseID), zap.Error(err))
		return nil, err
	}

	durationMinutes := course.DurationMinutes
	if durationMinutes <= 0 {
		durationMinutes = model.DefaultDurationMinutes
	}

	anchor, err := parseLocalAnchor(req.StartDate, req.StartTime)
	if err != nil {
		return nil, ErrInvalidStartPoint
	}

	enrollment := &model.Enrollment{
		StudentID:    req.StudentID,
		CourseID:     req.CourseID,
		TotalLessons: req.TotalLessons,
		PricePaid:    req.PricePaid,
		PurchaseDate: time.Now(),
	}

	slots := generateWeeklySlots(anchor, req.TotalLessons, durationMinutes)
	lessons := make([]model.Lesson, 0, len(slots))
	for _, slot := range slots {
		lessons = append(lessons, model.Lesson{
			StudentID:     req.StudentID,
			TeacherID:     req.TeacherID,
			StartTime:     slot.Start,
			EndTime:       slot.End,
			Status:        model.LessonStatusPending,
			IsRescheduled: false,
		})
	}

	if err := s.repo.Enrollment.CreateWithLessons(ctx, enrollment, lessons); err != nil {
		s.logger.Error("报名排课写入失败",
			zap.String("student_id", req.StudentID),
			zap.String("course_id", req.CourseID),
			zap.Int("total_lessons", req.TotalLessons),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("报名排课完成",
		zap.String("enrollment_id", enrollment.EnrollmentID),
		zap.Int("lessons_created", len(lessons)),
	)

	return &dto.CreateEnrollmentResponse{
		Enrollment: dto.EnrollmentResponse{
			ID:           enrollment.EnrollmentID,
			StudentID:    enrollment.StudentID,
			CourseID:     enrollment.CourseID,
			TotalLessons: enrollment.TotalLessons,
			PricePaid:    enrollment.PricePaid,
			PurchaseDate: enrollment.PurchaseDate,
		},
		LessonsCreated: len(lessons),
	}, nil
}

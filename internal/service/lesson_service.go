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

// ── 课堂模块业务错误 ──

var (
	ErrLessonNotFound = errors.New("课堂不存在")
	ErrInvalidWindow  = errors.New("时间区间格式不正确")
)

// LessonService 课堂查询与变更业务接口
type LessonService interface {
	// List 按过滤条件查询课堂并投影为日历事件
	List(ctx context.Context, req *dto.LessonListRequest) ([]dto.CalendarEventResponse, error)
	// Reschedule 调课：起止时间原样覆盖并标记 isRescheduled
	Reschedule(ctx context.Context, id string, req *dto.RescheduleLessonRequest) (*dto.LessonResponse, error)
	// UpdateStatus 更新课堂状态（任意整数原样存储）
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateLessonStatusRequest) (*dto.LessonResponse, error)
}

type lessonService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time // 可注入当前时间，便于 today 过滤测试
}

// NewLessonService 创建 LessonService 实例
func NewLessonService(repo *repository.Repository, logger *zap.Logger) LessonService {
	return &lessonService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── List ──────────────────────

// 查询过滤的三种互斥形态，在入口一次性判定：
//   - start+end 同时给出 → 闭区间过滤
//   - today=true          → 本地当日 [00:00:00, 23:59:59.999]
//   - 否则                → 不过滤
func (s *lessonService) resolveWindow(req *dto.LessonListRequest) (*repository.LessonWindow, error) {
	switch {
	case req.Start != "" && req.End != "":
		start, err := parseInstant(req.Start)
		if err != nil {
			return nil, ErrInvalidWindow
		}
		end, err := parseInstant(req.End)
		if err != nil {
			return nil, ErrInvalidWindow
		}
		return &repository.LessonWindow{Start: start, End: end}, nil
	case req.Today == "true":
		now := s.now()
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		dayEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999e6, now.Location())
		return &repository.LessonWindow{Start: dayStart, End: dayEnd}, nil
	default:
		return nil, nil
	}
}

func (s *lessonService) List(ctx context.Context, req *dto.LessonListRequest) ([]dto.CalendarEventResponse, error) {
	window, err := s.resolveWindow(req)
	if err != nil {
		return nil, err
	}

	lessons, err := s.repo.Lesson.ListWithRelations(ctx, window)
	if err != nil {
		s.logger.Error("查询课堂失败", zap.Error(err))
		return nil, err
	}

	events := make([]dto.CalendarEventResponse, 0, len(lessons))
	for i := range lessons {
		events = append(events, toCalendarEvent(&lessons[i]))
	}
	return events, nil
}

// toCalendarEvent 将课堂行投影为日历事件视图模型
func toCalendarEvent(lesson *model.Lesson) dto.CalendarEventResponse {
	var studentName, teacherName, courseName string
	var studentID string
	if lesson.Student != nil {
		studentID = lesson.Student.StudentID
		studentName = lesson.Student.Name
	}
	if lesson.Teacher != nil {
		teacherName = lesson.Teacher.Name
	}
	if lesson.Enrollment != nil && lesson.Enrollment.Course != nil {
		courseName = lesson.Enrollment.Course.Name
	}

	color := model.DefaultTeacherColor
	if lesson.Teacher != nil && lesson.Teacher.Color != nil && *lesson.Teacher.Color != "" {
		color = *lesson.Teacher.Color
	}

	return dto.CalendarEventResponse{
		ID:              lesson.LessonID,
		Title:           studentName + " - " + courseName,
		Start:           lesson.StartTime,
		End:             lesson.EndTime,
		BackgroundColor: color,
		BorderColor:     color,
		ExtendedProps: dto.CalendarEventProps{
			StudentID:   studentID,
			StudentName: studentName,
			TeacherName: teacherName,
			Status:      lesson.Status,
		},
	}
}

// ────────────────────── Reschedule ──────────────────────

func (s *lessonService) Reschedule(ctx context.Context, id string, req *dto.RescheduleLessonRequest) (*dto.LessonResponse, error) {
	lesson, err := s.repo.Lesson.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		s.logger.Error("查询课堂失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 起止时间原样覆盖，不校验 end > start，也不做老师冲突检测
	lesson.StartTime = req.StartTime
	lesson.EndTime = req.EndTime
	lesson.IsRescheduled = true

	if err := s.repo.Lesson.UpdateTimes(ctx, lesson); err != nil {
		s.logger.Error("调课失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toLessonResponse(lesson), nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *lessonService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateLessonStatusRequest) (*dto.LessonResponse, error) {
	lesson, err := s.repo.Lesson.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		s.logger.Error("查询课堂失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	lesson.Status = *req.Status

	if err := s.repo.Lesson.UpdateStatus(ctx, lesson); err != nil {
		s.logger.Error("更新课堂状态失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toLessonResponse(lesson), nil
}

// ── 内部辅助方法 ──

func toLessonResponse(lesson *model.Lesson) *dto.LessonResponse {
	return &dto.LessonResponse{
		ID:            lesson.LessonID,
		EnrollmentID:  lesson.EnrollmentID,
		StudentID:     lesson.StudentID,
		TeacherID:     lesson.TeacherID,
		StartTime:     lesson.StartTime,
		EndTime:       lesson.EndTime,
		Status:        lesson.Status,
		IsRescheduled: lesson.IsRescheduled,
	}
}

// 查询参数支持的时刻格式
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseInstant 解析查询参数中的时刻，无时区标注时按本地时间处理
func parseInstant(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range instantLayouts {
		var t time.Time
		var err error
		if layout == time.RFC3339 {
			t, err = time.Parse(layout, value)
		} else {
			t, err = time.ParseInLocation(layout, value, time.Local)
		}
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

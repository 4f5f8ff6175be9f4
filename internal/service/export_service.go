package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"dafa-music/backend/internal/dto"
	"dafa-music/backend/internal/model"
	"dafa-music/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoLessons    = errors.New("该时间范围内没有课堂")
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - Excel 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
//   - ICS 导出返回序列化文本，供日历订阅或下载
//   - 两者共用课堂查询的时间窗语义（闭区间，缺省导出全部）
type ExportService interface {
	// ExportXlsx 导出课堂表为 Excel
	ExportXlsx(ctx context.Context, req *dto.LessonListRequest) (*bytes.Buffer, string, error)
	// ExportICS 导出课堂为 iCalendar (RFC 5545) 文本
	ExportICS(ctx context.Context, req *dto.LessonListRequest) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ════════════════════ ExportXlsx ════════════════════
//
// 输出格式：单 Sheet "课堂表"
//   - 列头：日期 / 开始 / 结束 / 学生 / 课程 / 老师 / 状态 / 是否调课
//   - 行按开始时间升序

func (s *exportService) ExportXlsx(ctx context.Context, req *dto.LessonListRequest) (*bytes.Buffer, string, error) {
	lessons, err := s.loadLessons(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "课堂表"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"日期", "开始", "结束", "学生", "课程", "老师", "状态", "是否调课"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			s.logger.Error("写入表头失败", zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	for row, lesson := range lessons {
		values := []interface{}{
			lesson.StartTime.Format("2006-01-02"),
			lesson.StartTime.Format("15:04"),
			lesson.EndTime.Format("15:04"),
			relatedStudentName(&lesson),
			relatedCourseName(&lesson),
			relatedTeacherName(&lesson),
			lessonStatusText(lesson.Status),
			rescheduledText(lesson.IsRescheduled),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				s.logger.Error("写入课堂行失败", zap.Error(err))
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("lessons_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ════════════════════ ExportICS ════════════════════

func (s *exportService) ExportICS(ctx context.Context, req *dto.LessonListRequest) (string, error) {
	lessons, err := s.loadLessons(ctx, req)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//dafa-music//lesson-calendar//ZH")

	now := time.Now()
	for i := range lessons {
		lesson := &lessons[i]
		event := cal.AddEvent(lesson.LessonID)
		event.SetDtStampTime(now)
		event.SetStartAt(lesson.StartTime)
		event.SetEndAt(lesson.EndTime)
		event.SetSummary(relatedStudentName(lesson) + " - " + relatedCourseName(lesson))
		event.SetDescription("老师: " + relatedTeacherName(lesson) + " / 状态: " + lessonStatusText(lesson.Status))
	}

	return cal.Serialize(), nil
}

// ── 内部辅助方法 ──

func (s *exportService) loadLessons(ctx context.Context, req *dto.LessonListRequest) ([]model.Lesson, error) {
	var window *repository.LessonWindow
	if req.Start != "" && req.End != "" {
		start, err := parseInstant(req.Start)
		if err != nil {
			return nil, ErrInvalidWindow
		}
		end, err := parseInstant(req.End)
		if err != nil {
			return nil, ErrInvalidWindow
		}
		window = &repository.LessonWindow{Start: start, End: end}
	}

	lessons, err := s.repo.Lesson.ListWithRelations(ctx, window)
	if err != nil {
		s.logger.Error("查询课堂失败", zap.Error(err))
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, ErrExportNoLessons
	}
	return lessons, nil
}

func relatedStudentName(lesson *model.Lesson) string {
	if lesson.Student != nil {
		return lesson.Student.Name
	}
	return ""
}

func relatedTeacherName(lesson *model.Lesson) string {
	if lesson.Teacher != nil {
		return lesson.Teacher.Name
	}
	return ""
}

func relatedCourseName(lesson *model.Lesson) string {
	if lesson.Enrollment != nil && lesson.Enrollment.Course != nil {
		return lesson.Enrollment.Course.Name
	}
	return ""
}

func lessonStatusText(status int) string {
	switch status {
	case model.LessonStatusPending:
		return "待上课"
	case model.LessonStatusCheckedIn:
		return "已签到"
	case model.LessonStatusOnLeave:
		return "请假"
	default:
		// 状态字段允许存任意整数，未知值原样展示
		return strconv.Itoa(status)
	}
}

func rescheduledText(rescheduled bool) string {
	if rescheduled {
		return "是"
	}
	return "否"
}

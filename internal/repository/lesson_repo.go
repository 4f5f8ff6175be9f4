package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"dafa-music/backend/internal/model"
)

// LessonWindow 课堂查询时间窗（闭区间，对 start_time 过滤）
// nil 窗口表示不过滤；窗口在查询入口一次性确定，不做增量拼接
type LessonWindow struct {
	Start time.Time
	End   time.Time
}

// LessonRepository 课堂数据访问接口
type LessonRepository interface {
	GetByID(ctx context.Context, id string) (*model.Lesson, error)
	// ListWithRelations 按窗口查询课堂，预加载学生/老师/报名→课程，按开始时间升序
	ListWithRelations(ctx context.Context, window *LessonWindow) ([]model.Lesson, error)
	// UpdateTimes 覆盖起止时间并置 is_rescheduled
	UpdateTimes(ctx context.Context, lesson *model.Lesson) error
	// UpdateStatus 覆盖课堂状态
	UpdateStatus(ctx context.Context, lesson *model.Lesson) error
}

type lessonRepo struct {
	db *gorm.DB
}

// NewLessonRepo 创建 LessonRepository 实例
func NewLessonRepo(db *gorm.DB) LessonRepository {
	return &lessonRepo{db: db}
}

func (r *lessonRepo) GetByID(ctx context.Context, id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.db.WithContext(ctx).
		Where("lesson_id = ?", id).
		First(&lesson).Error
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *lessonRepo) ListWithRelations(ctx context.Context, window *LessonWindow) ([]model.Lesson, error) {
	var lessons []model.Lesson
	db := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Teacher").
		Preload("Enrollment").
		Preload("Enrollment.Course")
	if window != nil {
		db = db.Where("start_time >= ? AND start_time <= ?", window.Start, window.End)
	}
	err := db.Order("start_time ASC").Find(&lessons).Error
	return lessons, err
}

func (r *lessonRepo) UpdateTimes(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).
		Model(lesson).
		Where("lesson_id = ?", lesson.LessonID).
		Updates(map[string]interface{}{
			"start_time":     lesson.StartTime,
			"end_time":       lesson.EndTime,
			"is_rescheduled": lesson.IsRescheduled,
		}).Error
}

func (r *lessonRepo) UpdateStatus(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).
		Model(lesson).
		Where("lesson_id = ?", lesson.LessonID).
		Updates(map[string]interface{}{
			"status": lesson.Status,
		}).Error
}

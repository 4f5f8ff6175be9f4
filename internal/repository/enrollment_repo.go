package repository

import (
	"context"

	"gorm.io/gorm"

	"dafa-music/backend/internal/model"
)

// EnrollmentRepository 报名数据访问接口
type EnrollmentRepository interface {
	// CreateWithLessons 在同一事务内写入报名记录与整批课堂，
	// 任一步失败则整体回滚，不会留下没有课堂的孤儿报名
	CreateWithLessons(ctx context.Context, enrollment *model.Enrollment, lessons []model.Lesson) error
	GetByID(ctx context.Context, id string) (*model.Enrollment, error)
	ListByStudent(ctx context.Context, studentID string) ([]model.Enrollment, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) CreateWithLessons(ctx context.Context, enrollment *model.Enrollment, lessons []model.Lesson) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(enrollment).Error; err != nil {
			return err
		}
		if len(lessons) == 0 {
			return nil
		}
		for i := range lessons {
			lessons[i].EnrollmentID = enrollment.EnrollmentID
		}
		return tx.Create(&lessons).Error
	})
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id string) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("enrollment_id = ?", id).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("student_id = ?", studentID).
		Order("purchase_date DESC").
		Find(&enrollments).Error
	return enrollments, err
}

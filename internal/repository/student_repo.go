package repository

import (
	"context"

	"gorm.io/gorm"

	"dafa-music/backend/internal/model"
)

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id string) (*model.Student, error)
	// GetDetail 查询学生及其报名记录（含课程），报名按购买时间倒序
	GetDetail(ctx context.Context, id string) (*model.Student, error)
	// Search 按姓名或电话模糊搜索，query 为空返回全部；按创建时间倒序
	Search(ctx context.Context, query string) ([]model.Student, error)
	Update(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id string) error
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetDetail(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Enrollments", func(db *gorm.DB) *gorm.DB {
			return db.Order("purchase_date DESC")
		}).
		Preload("Enrollments.Course").
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Search(ctx context.Context, query string) ([]model.Student, error) {
	var students []model.Student
	db := r.db.WithContext(ctx)
	if query != "" {
		pattern := "%" + query + "%"
		db = db.Where("name ILIKE ? OR phone ILIKE ?", pattern, pattern)
	}
	err := db.Order("created_at DESC").Find(&students).Error
	return students, err
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).
		Model(student).
		Where("student_id = ?", student.StudentID).
		Updates(map[string]interface{}{
			"name":         student.Name,
			"gender":       student.Gender,
			"birthday":     student.Birthday,
			"phone":        student.Phone,
			"parent_phone": student.ParentPhone,
			"line_id":      student.LineID,
			"address":      student.Address,
			"notes":        student.Notes,
		}).Error
}

func (r *studentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("student_id = ?", id).
		Delete(&model.Student{}).Error
}

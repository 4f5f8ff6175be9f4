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

// ── 学生模块业务错误 ──

var (
	ErrStudentNotFound = errors.New("学生不存在")
	ErrInvalidBirthday = errors.New("生日格式不正确")
)

// StudentService 学生业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	// GetDetail 查询学生详情，含报名记录（按购买时间倒序）
	GetDetail(ctx context.Context, id string) (*dto.StudentDetailResponse, error)
	// List 按姓名或电话模糊搜索，query 为空返回全部
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	birthday, err := parseBirthday(req.Birthday)
	if err != nil {
		return nil, ErrInvalidBirthday
	}

	student := &model.Student{
		Name:        req.Name,
		Gender:      req.Gender,
		Birthday:    birthday,
		Phone:       req.Phone,
		ParentPhone: req.ParentPhone,
		LineID:      req.LineID,
		Address:     req.Address,
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("创建学生失败", zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ────────────────────── GetDetail ──────────────────────

func (s *studentService) GetDetail(ctx context.Context, id string) (*dto.StudentDetailResponse, error) {
	student, err := s.repo.Student.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	enrollments := make([]dto.EnrollmentWithCourse, 0, len(student.Enrollments))
	for i := range student.Enrollments {
		e := &student.Enrollments[i]
		item := dto.EnrollmentWithCourse{
			ID:           e.EnrollmentID,
			CourseID:     e.CourseID,
			TotalLessons: e.TotalLessons,
			PricePaid:    e.PricePaid,
			PurchaseDate: e.PurchaseDate,
		}
		if e.Course != nil {
			item.Course = toCourseResponse(e.Course)
		}
		enrollments = append(enrollments, item)
	}

	return &dto.StudentDetailResponse{
		StudentResponse: *toStudentResponse(student),
		Enrollments:     enrollments,
	}, nil
}

// ────────────────────── List ──────────────────────

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, error) {
	students, err := s.repo.Student.Search(ctx, req.Query)
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, *toStudentResponse(&students[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Gender != nil {
		student.Gender = req.Gender
	}
	if req.Birthday != nil {
		birthday, err := parseBirthday(req.Birthday)
		if err != nil {
			return nil, ErrInvalidBirthday
		}
		student.Birthday = birthday
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.ParentPhone != nil {
		student.ParentPhone = req.ParentPhone
	}
	if req.LineID != nil {
		student.LineID = req.LineID
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.Notes != nil {
		student.Notes = req.Notes
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("更新学生失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

// ────────────────────── Delete ──────────────────────

func (s *studentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("删除学生失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func toStudentResponse(student *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:          student.StudentID,
		Name:        student.Name,
		Gender:      student.Gender,
		Birthday:    student.Birthday,
		Phone:       student.Phone,
		ParentPhone: student.ParentPhone,
		LineID:      student.LineID,
		Address:     student.Address,
		Notes:       student.Notes,
		CreatedAt:   student.CreatedAt,
	}
}

// 生日支持的日期格式
var birthdayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// parseBirthday 解析生日，nil 或空串返回 nil
func parseBirthday(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	var firstErr error
	for _, layout := range birthdayLayouts {
		t, err := time.ParseInLocation(layout, *value, time.Local)
		if err == nil {
			return &t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

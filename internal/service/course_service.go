package service

import (
	"context"

	"go.uber.org/zap"

	"dafa-music/backend/internal/dto"
	"dafa-music/backend/internal/model"
	"dafa-music/backend/internal/repository"
)

// CourseService 课程业务接口
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	durationMinutes := req.DurationMinutes
	if durationMinutes <= 0 {
		durationMinutes = model.DefaultDurationMinutes
	}

	course := &model.Course{
		Name:            req.Name,
		Price:           req.Price,
		TotalLessons:    req.TotalLessons,
		DurationMinutes: durationMinutes,
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, err
	}

	return toCourseResponse(course), nil
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *toCourseResponse(&courses[i]))
	}
	return result, nil
}

func toCourseResponse(course *model.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:              course.CourseID,
		Name:            course.Name,
		Price:           course.Price,
		TotalLessons:    course.TotalLessons,
		DurationMinutes: course.DurationMinutes,
	}
}

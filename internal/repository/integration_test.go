//go:build integration

package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dafa-music/backend/internal/model"
)

// 集成测试需要真实 Postgres，通过环境变量提供连接串：
//
//	DAFA_TEST_DSN="host=localhost user=postgres password=postgres dbname=dafa_music_test port=5432 sslmode=disable" \
//	  go test -tags integration ./internal/repository/
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("DAFA_TEST_DSN")
	if dsn == "" {
		t.Skip("未设置 DAFA_TEST_DSN，跳过集成测试")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		t.Fatalf("启用 pgcrypto 失败: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Student{}, &model.Teacher{}, &model.Course{},
		&model.Enrollment{}, &model.Lesson{},
	); err != nil {
		t.Fatalf("建表失败: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("TRUNCATE lessons, enrollments, courses, teachers, students CASCADE")
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedBase(t *testing.T, db *gorm.DB) (student model.Student, teacher model.Teacher, course model.Course) {
	t.Helper()

	student = model.Student{Name: "小明"}
	teacher = model.Teacher{Name: "王老师"}
	course = model.Course{Name: "钢琴一对一", DurationMinutes: 45}
	for _, m := range []interface{}{&student, &teacher, &course} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("写入基础数据失败: %v", err)
		}
	}
	return student, teacher, course
}

func TestEnrollmentRepo_CreateWithLessons_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	student, teacher, course := seedBase(t, db)

	enrollment := &model.Enrollment{
		StudentID:    student.StudentID,
		CourseID:     course.CourseID,
		TotalLessons: 3,
		PricePaid:    6000,
		PurchaseDate: time.Now(),
	}
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	lessons := make([]model.Lesson, 3)
	for i := range lessons {
		s := start.AddDate(0, 0, 7*i)
		lessons[i] = model.Lesson{
			StudentID: student.StudentID,
			TeacherID: teacher.TeacherID,
			StartTime: s,
			EndTime:   s.Add(45 * time.Minute),
			Status:    model.LessonStatusPending,
		}
	}

	if err := repo.Enrollment.CreateWithLessons(ctx, enrollment, lessons); err != nil {
		t.Fatalf("CreateWithLessons 应成功: %v", err)
	}
	if enrollment.EnrollmentID == "" {
		t.Fatal("应回填报名ID")
	}

	// 回读校验整批课堂落库且关联正确
	listed, err := repo.Lesson.ListWithRelations(ctx, nil)
	if err != nil {
		t.Fatalf("查询课堂失败: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("期望3节课堂，实际=%d", len(listed))
	}
	for i, lesson := range listed {
		if lesson.EnrollmentID != enrollment.EnrollmentID {
			t.Errorf("第%d节应关联报名%s", i, enrollment.EnrollmentID)
		}
		if lesson.Student == nil || lesson.Student.Name != "小明" {
			t.Errorf("第%d节应预加载学生", i)
		}
		if lesson.Enrollment == nil || lesson.Enrollment.Course == nil ||
			lesson.Enrollment.Course.Name != "钢琴一对一" {
			t.Errorf("第%d节应预加载报名与课程", i)
		}
	}
}

func TestEnrollmentRepo_CreateWithLessons_RollbackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	student, _, course := seedBase(t, db)

	enrollment := &model.Enrollment{
		StudentID:    student.StudentID,
		CourseID:     course.CourseID,
		TotalLessons: 1,
		PurchaseDate: time.Now(),
	}
	// teacher_id 留空违反 uuid 约束，整批写入应回滚
	lessons := []model.Lesson{{
		StudentID: student.StudentID,
		StartTime: time.Now(),
		EndTime:   time.Now().Add(time.Hour),
	}}

	if err := repo.Enrollment.CreateWithLessons(ctx, enrollment, lessons); err == nil {
		t.Fatal("非法课堂行应导致失败")
	}

	var count int64
	db.Model(&model.Enrollment{}).Count(&count)
	if count != 0 {
		t.Error("事务回滚后不应留下孤儿报名")
	}
}

func TestLessonRepo_Window(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	student, teacher, course := seedBase(t, db)

	enrollment := &model.Enrollment{
		StudentID:    student.StudentID,
		CourseID:     course.CourseID,
		TotalLessons: 3,
		PurchaseDate: time.Now(),
	}
	starts := []time.Time{
		time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local),
		time.Date(2024, 1, 8, 10, 0, 0, 0, time.Local),
		time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local),
	}
	lessons := make([]model.Lesson, len(starts))
	for i, s := range starts {
		lessons[i] = model.Lesson{
			StudentID: student.StudentID,
			TeacherID: teacher.TeacherID,
			StartTime: s,
			EndTime:   s.Add(time.Hour),
		}
	}
	if err := repo.Enrollment.CreateWithLessons(ctx, enrollment, lessons); err != nil {
		t.Fatalf("写入课堂失败: %v", err)
	}

	// 闭区间：两端均包含
	window := &LessonWindow{Start: starts[1], End: starts[2]}
	listed, err := repo.Lesson.ListWithRelations(ctx, window)
	if err != nil {
		t.Fatalf("查询课堂失败: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("闭区间期望2节，实际=%d", len(listed))
	}
	if !listed[0].StartTime.Before(listed[1].StartTime) {
		t.Error("结果应按开始时间升序")
	}
}

func TestLessonRepo_UpdateTimesAndStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	student, teacher, course := seedBase(t, db)

	enrollment := &model.Enrollment{
		StudentID:    student.StudentID,
		CourseID:     course.CourseID,
		TotalLessons: 1,
		PurchaseDate: time.Now(),
	}
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local)
	lessons := []model.Lesson{{
		StudentID: student.StudentID,
		TeacherID: teacher.TeacherID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}}
	if err := repo.Enrollment.CreateWithLessons(ctx, enrollment, lessons); err != nil {
		t.Fatalf("写入课堂失败: %v", err)
	}

	listed, _ := repo.Lesson.ListWithRelations(ctx, nil)
	lesson := &listed[0]

	lesson.StartTime = start.AddDate(0, 0, 2)
	lesson.EndTime = lesson.StartTime.Add(45 * time.Minute)
	lesson.IsRescheduled = true
	if err := repo.Lesson.UpdateTimes(ctx, lesson); err != nil {
		t.Fatalf("UpdateTimes 失败: %v", err)
	}

	lesson.Status = model.LessonStatusCheckedIn
	if err := repo.Lesson.UpdateStatus(ctx, lesson); err != nil {
		t.Fatalf("UpdateStatus 失败: %v", err)
	}

	got, err := repo.Lesson.GetByID(ctx, lesson.LessonID)
	if err != nil {
		t.Fatalf("回读课堂失败: %v", err)
	}
	if !got.IsRescheduled {
		t.Error("is_rescheduled 应已持久化")
	}
	if got.Status != model.LessonStatusCheckedIn {
		t.Errorf("状态期望已签到，实际=%d", got.Status)
	}
	if !got.StartTime.Equal(lesson.StartTime) {
		t.Errorf("开始时间期望%v，实际=%v", lesson.StartTime, got.StartTime)
	}
}

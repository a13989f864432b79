package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/miufukumura/edushift/internal/model"
)

// LessonRepository 授業記録データアクセスの抽象
type LessonRepository interface {
	Create(ctx context.Context, lesson *model.Lesson) error
	// ListRecentWithNames 生徒名・講師名付きの授業記録。日付降順で limit 件まで
	ListRecentWithNames(ctx context.Context, limit int) ([]model.LessonWithNames, error)
	// ListExceptions 欠席・振替のみ。日付降順で limit 件まで
	ListExceptions(ctx context.Context, limit int) ([]model.LessonWithNames, error)
	// DeleteByStudent 指定生徒の全授業記録を削除する
	DeleteByStudent(ctx context.Context, studentID uint) error
	// DeleteByTeacher 指定講師の全授業記録を削除する
	DeleteByTeacher(ctx context.Context, teacherID uint) error
}

type lessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository GORM 実装の授業記録リポジトリを生成する
func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &lessonRepository{db: db}
}

func (r *lessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.db.WithContext(ctx).Create(lesson).Error
}

func (r *lessonRepository) listWithNames(ctx context.Context, limit int, cond string, args ...interface{}) ([]model.LessonWithNames, error) {
	var rows []model.LessonWithNames
	q := r.db.WithContext(ctx).
		Table("lessons").
		Select("lessons.id, lessons.date, lessons.status, lessons.notes, students.name AS student_name, users.name AS teacher_name").
		Joins("JOIN students ON students.id = lessons.student_id").
		Joins("JOIN users ON users.id = lessons.teacher_id")
	if cond != "" {
		q = q.Where(cond, args...)
	}
	err := q.
		Order("lessons.date DESC").
		Order("lessons.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *lessonRepository) ListRecentWithNames(ctx context.Context, limit int) ([]model.LessonWithNames, error) {
	return r.listWithNames(ctx, limit, "")
}

func (r *lessonRepository) ListExceptions(ctx context.Context, limit int) ([]model.LessonWithNames, error) {
	return r.listWithNames(ctx, limit, "lessons.status IN ?",
		[]model.LessonStatus{model.LessonStatusAbsence, model.LessonStatusMakeup})
}

func (r *lessonRepository) DeleteByStudent(ctx context.Context, studentID uint) error {
	return r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Delete(&model.Lesson{}).Error
}

func (r *lessonRepository) DeleteByTeacher(ctx context.Context, teacherID uint) error {
	return r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Delete(&model.Lesson{}).Error
}

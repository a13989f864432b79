package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/miufukumura/edushift/internal/model"
)

// ShiftRepository シフトデータアクセスの抽象
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	Update(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, id uint) (*model.Shift, error)
	// ListByUser 日付の昇順、同日内は開始時刻の昇順
	ListByUser(ctx context.Context, userID uint) ([]model.Shift, error)
	// ListAllWithTeacher 講師名付き全シフト。日付昇順・開始時刻昇順。
	// limit が 0 以下なら全件
	ListAllWithTeacher(ctx context.Context, limit int) ([]model.ShiftWithTeacher, error)
	Delete(ctx context.Context, id uint) error
	// DeleteByUser 指定ユーザーの全シフトを削除する
	DeleteByUser(ctx context.Context, userID uint) error
}

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository GORM 実装のシフトリポジトリを生成する
func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepository) Update(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

func (r *shiftRepository) GetByID(ctx context.Context, id uint) (*model.Shift, error) {
	var shift model.Shift
	if err := r.db.WithContext(ctx).First(&shift, id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) ListByUser(ctx context.Context, userID uint) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Order("start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) ListAllWithTeacher(ctx context.Context, limit int) ([]model.ShiftWithTeacher, error) {
	var rows []model.ShiftWithTeacher
	q := r.db.WithContext(ctx).
		Table("shifts").
		Select("shifts.id, shifts.date, shifts.start_time, shifts.end_time, users.name AS teacher_name").
		Joins("JOIN users ON users.id = shifts.user_id").
		Order("shifts.date ASC").
		Order("shifts.start_time ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *shiftRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Shift{}, id).Error
}

func (r *shiftRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Shift{}).Error
}

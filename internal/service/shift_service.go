package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miufukumura/edushift/internal/authz"
	"github.com/miufukumura/edushift/internal/dto"
	"github.com/miufukumura/edushift/internal/model"
	"github.com/miufukumura/edushift/internal/repository"
	"github.com/miufukumura/edushift/internal/session"
)

// ShiftService シフトの登録・編集・削除・一覧
type ShiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService シフトサービスを生成する
func NewShiftService(repo *repository.Repository, logger *zap.Logger) *ShiftService {
	return &ShiftService{repo: repo, logger: logger}
}

// List シフト一覧。日付昇順・開始時刻昇順。
// targetUserID が 0 なら自分、指定ありなら管理者のみ他の講師を閲覧できる
func (s *ShiftService) List(ctx context.Context, identity session.Identity, targetUserID uint) ([]dto.ShiftResponse, error) {
	ownerID := identity.UserID
	if targetUserID != 0 {
		ownerID = targetUserID
	}

	if !authz.Allowed(identity.Role, authz.ActionViewOwnShifts, ownerID, identity.UserID) {
		return nil, ErrForbidden
	}

	shifts, err := s.repo.Shift.ListByUser(ctx, ownerID)
	if err != nil {
		s.logger.Error("シフト一覧の取得に失敗", zap.Error(err), zap.Uint("user_id", ownerID))
		return nil, ErrStorage
	}

	res := make([]dto.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		res = append(res, dto.ShiftResponse{
			ID:        sh.ID,
			Date:      sh.Date.Format(dateLayout),
			StartTime: sh.StartTime,
			EndTime:   sh.EndTime,
		})
	}
	return res, nil
}

// Upsert フォーム内容でシフトを登録または更新する。
// ShiftID が空なら新規登録、指定ありなら既存シフトの編集。
// 検証エラーはフォーム内容をそのままエコーバックする
func (s *ShiftService) Upsert(ctx context.Context, identity session.Identity, form dto.ShiftForm) error {
	// 登録先の講師。管理者のみ他人を指定できる（権限判定はガードに委ねる）
	ownerID := identity.UserID
	if form.TargetUserID != 0 {
		ownerID = form.TargetUserID
	}

	if form.Date == "" || form.StartTime == "" || form.EndTime == "" {
		return NewShiftValidationError("登録内容を確認してください。", form)
	}
	date, err := time.Parse(dateLayout, form.Date)
	if err != nil {
		return NewShiftValidationError("日付の形式が正しくありません。", form)
	}

	// ── 新規登録 ──
	if form.ShiftID == "" {
		if !authz.Allowed(identity.Role, authz.ActionCreateShift, ownerID, identity.UserID) {
			return ErrForbidden
		}
		shift := &model.Shift{
			UserID:    ownerID,
			Date:      date,
			StartTime: form.StartTime,
			EndTime:   form.EndTime,
		}
		if err := s.repo.Shift.Create(ctx, shift); err != nil {
			s.logger.Error("シフトの作成に失敗", zap.Error(err), zap.Uint("user_id", ownerID))
			return ErrStorage
		}
		return nil
	}

	// ── 編集 ──
	shiftID, err := strconv.ParseUint(form.ShiftID, 10, 32)
	if err != nil {
		return ErrShiftNotFound
	}

	shift, err := s.repo.Shift.GetByID(ctx, uint(shiftID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShiftNotFound
		}
		s.logger.Error("シフトの取得に失敗", zap.Error(err), zap.Uint64("shift_id", shiftID))
		return ErrStorage
	}

	if !authz.Allowed(identity.Role, authz.ActionEditShift, shift.UserID, identity.UserID) {
		return ErrForbidden
	}

	shift.Date = date
	shift.StartTime = form.StartTime
	shift.EndTime = form.EndTime
	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("シフトの更新に失敗", zap.Error(err), zap.Uint("shift_id", shift.ID))
		return ErrStorage
	}
	return nil
}

// Delete シフトを削除する。存在しない・他人のシフトは
// 何もせず成功扱いにする（冪等）
func (s *ShiftService) Delete(ctx context.Context, identity session.Identity, shiftID uint) error {
	shift, err := s.repo.Shift.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("シフトの取得に失敗", zap.Error(err), zap.Uint("shift_id", shiftID))
		return ErrStorage
	}

	if !authz.Allowed(identity.Role, authz.ActionDeleteShift, shift.UserID, identity.UserID) {
		return nil
	}

	if err := s.repo.Shift.Delete(ctx, shift.ID); err != nil {
		s.logger.Error("シフトの削除に失敗", zap.Error(err), zap.Uint("shift_id", shift.ID))
		return ErrStorage
	}
	return nil
}

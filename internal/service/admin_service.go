package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miufukumura/edushift/config"
	"github.com/miufukumura/edushift/internal/authz"
	"github.com/miufukumura/edushift/internal/dto"
	"github.com/miufukumura/edushift/internal/model"
	"github.com/miufukumura/edushift/internal/repository"
	"github.com/miufukumura/edushift/internal/session"
)

// AdminService アカウント・生徒の管理操作
type AdminService struct {
	repo   *repository.Repository
	auth   *AuthService
	logger *zap.Logger
}

// NewAdminService 管理サービスを生成する
func NewAdminService(repo *repository.Repository, auth *AuthService, logger *zap.Logger) *AdminService {
	return &AdminService{repo: repo, auth: auth, logger: logger}
}

// Apply 管理操作を適用する。バリアントごとに網羅的に分岐する
func (s *AdminService) Apply(ctx context.Context, identity session.Identity, action dto.ManageAction) error {
	if !authz.Allowed(identity.Role, authz.ActionManageAccounts, identity.UserID, identity.UserID) {
		return ErrForbidden
	}

	switch a := action.(type) {
	case dto.AddUserAction:
		return s.addUser(ctx, a)
	case dto.AddStudentAction:
		return s.addStudent(ctx, a)
	case dto.DeleteUserAction:
		return s.deleteUser(ctx, identity, a.UserID)
	case dto.DeleteStudentAction:
		return s.deleteStudent(ctx, a.StudentID)
	default:
		// ManageAction は閉じたバリアントなのでここには到達しない
		return fmt.Errorf("未知の管理操作: %T", action)
	}
}

func (s *AdminService) addUser(ctx context.Context, a dto.AddUserAction) error {
	role, err := model.ParseRole(a.Role)
	if err != nil {
		return NewValidationError("登録内容を確認してください。")
	}
	_, err = s.auth.Register(ctx, a.Name, a.Email, a.Password, role)
	return err
}

func (s *AdminService) addStudent(ctx context.Context, a dto.AddStudentAction) error {
	if a.Name == "" {
		return NewValidationError("登録内容を確認してください。")
	}

	var grade *string
	if a.Grade != "" {
		grade = &a.Grade
	}

	student := &model.Student{Name: a.Name, Grade: grade}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("生徒の作成に失敗", zap.Error(err), zap.String("name", a.Name))
		return ErrStorage
	}

	s.logger.Info("生徒を追加", zap.Uint("student_id", student.ID))
	return nil
}

// deleteUser アカウントと、そのアカウントが担当するシフト・授業記録を
// ひとつのトランザクションで削除する。途中で失敗したら全体を取り消す
func (s *AdminService) deleteUser(ctx context.Context, identity session.Identity, userID uint) error {
	if userID == identity.UserID {
		return NewValidationError("自分自身のアカウントは削除できません。")
	}

	if _, err := s.repo.User.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("ユーザーの取得に失敗", zap.Error(err), zap.Uint("user_id", userID))
		return ErrStorage
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Lesson.DeleteByTeacher(ctx, userID); err != nil {
			return err
		}
		if err := tx.Shift.DeleteByUser(ctx, userID); err != nil {
			return err
		}
		return tx.User.Delete(ctx, userID)
	})
	if err != nil {
		s.logger.Error("ユーザーの連鎖削除に失敗", zap.Error(err), zap.Uint("user_id", userID))
		return ErrStorage
	}

	s.logger.Info("ユーザーを削除", zap.Uint("user_id", userID), zap.Uint("operator_id", identity.UserID))
	return nil
}

// deleteStudent 生徒と、その生徒の授業記録をひとつのトランザクションで削除する
func (s *AdminService) deleteStudent(ctx context.Context, studentID uint) error {
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("生徒の取得に失敗", zap.Error(err), zap.Uint("student_id", studentID))
		return ErrStorage
	}

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Lesson.DeleteByStudent(ctx, studentID); err != nil {
			return err
		}
		return tx.Student.Delete(ctx, studentID)
	})
	if err != nil {
		s.logger.Error("生徒の連鎖削除に失敗", zap.Error(err), zap.Uint("student_id", studentID))
		return ErrStorage
	}

	s.logger.Info("生徒を削除", zap.Uint("student_id", studentID))
	return nil
}

// ListAccounts 全アカウント。役割の降順、同役割内は名前の昇順
func (s *AdminService) ListAccounts(ctx context.Context, identity session.Identity) ([]dto.UserInfo, error) {
	if !authz.Allowed(identity.Role, authz.ActionManageAccounts, identity.UserID, identity.UserID) {
		return nil, ErrForbidden
	}

	users, err := s.repo.User.ListAll(ctx)
	if err != nil {
		s.logger.Error("ユーザー一覧の取得に失敗", zap.Error(err))
		return nil, ErrStorage
	}
	return toUserInfos(users), nil
}

// EnsureDefaultAdmin 初期管理者アカウントが未作成なら作成する。起動時に呼ぶ
func (s *AdminService) EnsureDefaultAdmin(ctx context.Context, cfg *config.AdminConfig) error {
	_, err := s.repo.User.GetByEmail(ctx, cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("初期管理者の確認に失敗: %w", err)
	}

	if _, err := s.auth.Register(ctx, cfg.Name, cfg.Email, cfg.Password, model.RoleAdmin); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			// 並行起動との競合。既に存在するなら問題ない
			return nil
		}
		return fmt.Errorf("初期管理者の作成に失敗: %w", err)
	}

	s.logger.Info("初期管理者アカウントを作成", zap.String("email", cfg.Email))
	return nil
}

func toUserInfos(users []model.User) []dto.UserInfo {
	res := make([]dto.UserInfo, 0, len(users))
	for _, u := range users {
		res = append(res, dto.UserInfo{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  string(u.Role),
		})
	}
	return res
}

package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/miufukumura/edushift/internal/model"
	"github.com/miufukumura/edushift/internal/repository"
	"github.com/miufukumura/edushift/internal/session"
	"github.com/miufukumura/edushift/pkg/password"
)

// パスワードの最小文字数
const minPasswordLength = 6

// AuthService 認証・アカウント登録・セッション管理
type AuthService struct {
	repo     *repository.Repository
	sessions session.Store
	logger   *zap.Logger
}

// NewAuthService 認証サービスを生成する
func NewAuthService(repo *repository.Repository, sessions session.Store, logger *zap.Logger) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, logger: logger}
}

// Login 認証に成功したらセッションを確立し、トークンとユーザー情報を返す。
// メール未登録とパスワード不一致は区別せず ErrAuthFailed を返す
func (s *AuthService) Login(ctx context.Context, email, secret string) (string, *model.User, error) {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrAuthFailed
		}
		s.logger.Error("ログイン時のユーザー取得に失敗", zap.Error(err))
		return "", nil, ErrStorage
	}

	if !password.Verify(secret, user.PasswordHash) {
		return "", nil, ErrAuthFailed
	}

	token, err := s.sessions.Establish(ctx, session.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	})
	if err != nil {
		s.logger.Error("セッションの確立に失敗", zap.Error(err), zap.Uint("user_id", user.ID))
		return "", nil, ErrStorage
	}

	s.logger.Info("ログイン成功", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))

	return token, user, nil
}

// Logout セッションを破棄する。無効なトークンでもエラーにしない
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		s.logger.Error("セッションの破棄に失敗", zap.Error(err))
		return ErrStorage
	}
	return nil
}

// Register 新しいアカウントを作成する。
// パスワードは最低 6 文字、メールアドレスは一意
func (s *AuthService) Register(ctx context.Context, name, email, secret string, role model.Role) (*model.User, error) {
	if name == "" || email == "" {
		return nil, NewValidationError("登録内容を確認してください。")
	}
	if utf8.RuneCountInString(secret) < minPasswordLength {
		return nil, NewValidationError("パスワードは6文字以上で設定してください。")
	}
	if !role.Valid() {
		return nil, NewValidationError("登録内容を確認してください。")
	}

	digest, err := password.Hash(secret)
	if err != nil {
		s.logger.Error("パスワードのハッシュ化に失敗", zap.Error(err))
		return nil, ErrStorage
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		Role:         role,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("ユーザーの作成に失敗", zap.Error(err), zap.String("email", email))
		return nil, ErrStorage
	}

	s.logger.Info("アカウント作成", zap.Uint("user_id", user.ID), zap.String("role", string(role)))

	return user, nil
}

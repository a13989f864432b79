package service

import (
	"context"
	"errors"
	"testing"

	"github.com/miufukumura/edushift/internal/model"
	"github.com/miufukumura/edushift/internal/session"
)

func TestAuthLogin_Success(t *testing.T) {
	svc, _, sessions := newTestService(t)
	ctx := context.Background()

	seedUser(t, svc, "佐藤先生", "sato@example.com", model.RoleTeacher)

	token, user, err := svc.Auth.Login(ctx, "sato@example.com", "password1")
	if err != nil {
		t.Fatalf("ログインが失敗: %v", err)
	}
	if user.Name != "佐藤先生" {
		t.Errorf("ユーザー名: got %s", user.Name)
	}

	// トークンからスナップショットが復元できる
	identity, err := sessions.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("セッション解決が失敗: %v", err)
	}
	if identity.UserID != user.ID || identity.Role != model.RoleTeacher {
		t.Errorf("スナップショットが不正: %+v", identity)
	}
}

func TestAuthLogin_FailureIsIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	seedUser(t, svc, "佐藤先生", "sato@example.com", model.RoleTeacher)

	// 未登録メールとパスワード不一致で同じエラーが返る
	_, _, errUnknown := svc.Auth.Login(ctx, "nobody@example.com", "password1")
	_, _, errWrongPw := svc.Auth.Login(ctx, "sato@example.com", "wrong-password")

	if !errors.Is(errUnknown, ErrAuthFailed) {
		t.Errorf("未登録メール: got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrAuthFailed) {
		t.Errorf("パスワード不一致: got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Error("失敗理由がメッセージから区別できてしまう")
	}
}

func TestAuthLogout_RevokesSession(t *testing.T) {
	svc, _, sessions := newTestService(t)
	ctx := context.Background()

	seedUser(t, svc, "佐藤先生", "sato@example.com", model.RoleTeacher)
	token, _, err := svc.Auth.Login(ctx, "sato@example.com", "password1")
	if err != nil {
		t.Fatalf("ログインが失敗: %v", err)
	}

	if err := svc.Auth.Logout(ctx, token); err != nil {
		t.Fatalf("ログアウトが失敗: %v", err)
	}
	if _, err := sessions.Resolve(ctx, token); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("ログアウト後のトークンは無効のはず: got %v", err)
	}
}

func TestAuthRegister_ShortPassword(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Auth.Register(context.Background(), "田中", "tanaka@example.com", "12345", model.RoleTeacher)
	ve, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("ValidationError が返るべき: got %v", err)
	}
	if ve.Message != "パスワードは6文字以上で設定してください。" {
		t.Errorf("メッセージ: got %s", ve.Message)
	}
}

func TestAuthRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Auth.Register(ctx, "佐藤", "sato@example.com", "password1", model.RoleTeacher); err != nil {
		t.Fatalf("1 人目の登録が失敗: %v", err)
	}

	_, err := svc.Auth.Register(ctx, "別の佐藤", "sato@example.com", "password2", model.RoleTeacher)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("ErrDuplicateEmail が返るべき: got %v", err)
	}
}

func TestAuthRegister_InvalidInput(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name      string
		userName  string
		email     string
		role      model.Role
	}{
		{"名前が空", "", "a@example.com", model.RoleTeacher},
		{"メールが空", "佐藤", "", model.RoleTeacher},
		{"未知のロール", "佐藤", "a@example.com", model.Role("owner")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Auth.Register(ctx, tc.userName, tc.email, "password1", tc.role)
			if _, ok := AsValidationError(err); !ok {
				t.Errorf("ValidationError が返るべき: got %v", err)
			}
		})
	}
}

package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/miufukumura/edushift/internal/model"
	"github.com/miufukumura/edushift/internal/session"
)

// newTestService モックストアとメモリセッションで構成したサービス集約
func newTestService(t *testing.T) (*Service, *mockDB, session.Store) {
	t.Helper()
	db := newMockDB()
	sessions := session.NewMemoryStore(time.Hour)
	svc := NewService(db.repo(), sessions, zap.NewNop())
	return svc, db, sessions
}

// seedUser 検証済みアカウントを直接作成し、その Identity を返す
func seedUser(t *testing.T, svc *Service, name, email string, role model.Role) session.Identity {
	t.Helper()
	user, err := svc.Auth.Register(context.Background(), name, email, "password1", role)
	if err != nil {
		t.Fatalf("テストユーザーの作成に失敗: %v", err)
	}
	return session.Identity{UserID: user.ID, Name: user.Name, Role: user.Role}
}

// seedStudent テスト用の生徒を作成して ID を返す
func seedStudent(t *testing.T, db *mockDB, name string) uint {
	t.Helper()
	student := &model.Student{Name: name}
	if err := (&mockStudentRepo{db}).Create(context.Background(), student); err != nil {
		t.Fatalf("テスト生徒の作成に失敗: %v", err)
	}
	return student.ID
}

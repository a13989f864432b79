// Package service ビジネスロジック層。入力検証・権限判定・
// トランザクション境界の制御を担う
package service

import (
	"go.uber.org/zap"

	"github.com/miufukumura/edushift/internal/repository"
	"github.com/miufukumura/edushift/internal/session"
)

// Service 全サービスの集約。ハンドラー層へはこの単位で注入する
type Service struct {
	Auth      *AuthService
	Shift     *ShiftService
	Lesson    *LessonService
	Admin     *AdminService
	Dashboard *DashboardService
	Export    *ExportService
}

// NewService サービス集約を生成する
func NewService(repo *repository.Repository, sessions session.Store, logger *zap.Logger) *Service {
	auth := NewAuthService(repo, sessions, logger)
	return &Service{
		Auth:      auth,
		Shift:     NewShiftService(repo, logger),
		Lesson:    NewLessonService(repo, logger),
		Admin:     NewAdminService(repo, auth, logger),
		Dashboard: NewDashboardService(repo, logger),
		Export:    NewExportService(repo, logger),
	}
}

// 日付の入出力形式
const dateLayout = "2006-01-02"

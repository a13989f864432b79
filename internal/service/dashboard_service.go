package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/miufukumura/edushift/internal/authz"
	"github.com/miufukumura/edushift/internal/dto"
	"github.com/miufukumura/edushift/internal/repository"
	"github.com/miufukumura/edushift/internal/session"
)

// DashboardService 管理ダッシュボードの集約ビュー
type DashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService ダッシュボードサービスを生成する
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) *DashboardService {
	return &DashboardService{repo: repo, logger: logger}
}

// Overview 全講師のシフト・直近の授業記録・欠席/振替・アカウント・生徒を
// ひとつのビューに集約する。シフトと授業記録は 50 件、欠席/振替は 30 件まで。
// 上限超過はエラーではなく単なる切り捨て
func (s *DashboardService) Overview(ctx context.Context, identity session.Identity) (*dto.DashboardResponse, error) {
	if !authz.Allowed(identity.Role, authz.ActionViewAllShifts, identity.UserID, identity.UserID) {
		return nil, ErrForbidden
	}

	shifts, err := s.repo.Shift.ListAllWithTeacher(ctx, allShiftLimit)
	if err != nil {
		s.logger.Error("全シフトの取得に失敗", zap.Error(err))
		return nil, ErrStorage
	}

	lessons, err := s.repo.Lesson.ListRecentWithNames(ctx, recentLessonLimit)
	if err != nil {
		s.logger.Error("授業記録の取得に失敗", zap.Error(err))
		return nil, ErrStorage
	}

	exceptions, err := s.repo.Lesson.ListExceptions(ctx, exceptionLessonLimit)
	if err != nil {
		s.logger.Error("欠席・振替一覧の取得に失敗", zap.Error(err))
		return nil, ErrStorage
	}

	users, err := s.repo.User.ListAll(ctx)
	if err != nil {
		s.logger.Error("ユーザー一覧の取得に失敗", zap.Error(err))
		return nil, ErrStorage
	}

	students, err := s.repo.Student.ListAll(ctx)
	if err != nil {
		s.logger.Error("生徒一覧の取得に失敗", zap.Error(err))
		return nil, ErrStorage
	}

	shiftRows := make([]dto.ShiftWithTeacherResponse, 0, len(shifts))
	for _, sh := range shifts {
		shiftRows = append(shiftRows, dto.ShiftWithTeacherResponse{
			ID:          sh.ID,
			Date:        sh.Date.Format(dateLayout),
			StartTime:   sh.StartTime,
			EndTime:     sh.EndTime,
			TeacherName: sh.TeacherName,
		})
	}

	return &dto.DashboardResponse{
		Shifts:     shiftRows,
		Lessons:    toLessonResponses(lessons),
		Exceptions: toLessonResponses(exceptions),
		Users:      toUserInfos(users),
		Students:   toStudentInfos(students),
	}, nil
}

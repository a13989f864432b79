package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/miufukumura/edushift/internal/authz"
	"github.com/miufukumura/edushift/internal/dto"
	"github.com/miufukumura/edushift/internal/model"
	"github.com/miufukumura/edushift/internal/repository"
	"github.com/miufukumura/edushift/internal/session"
)

// 一覧の表示上限
const (
	recentLessonLimit    = 50
	allShiftLimit        = 50
	exceptionLessonLimit = 30
)

// LessonService 授業記録の登録・一覧
type LessonService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLessonService 授業記録サービスを生成する
func NewLessonService(repo *repository.Repository, logger *zap.Logger) *LessonService {
	return &LessonService{repo: repo, logger: logger}
}

// Create 授業記録を登録する。担当講師は自由に指定でき、
// 省略時は操作者自身になる。FK 違反を含むストレージ障害は
// 汎用の登録失敗として返す（部分書き込みは観測されない）
func (s *LessonService) Create(ctx context.Context, identity session.Identity, form dto.LessonForm) error {
	if !authz.Allowed(identity.Role, authz.ActionCreateLesson, identity.UserID, identity.UserID) {
		return ErrForbidden
	}

	if form.StudentID == 0 || form.Date == "" {
		return NewValidationError("登録内容を確認してください。")
	}
	date, err := time.Parse(dateLayout, form.Date)
	if err != nil {
		return NewValidationError("日付の形式が正しくありません。")
	}

	status := model.LessonStatusNormal
	if form.Status != "" {
		status, err = model.ParseLessonStatus(form.Status)
		if err != nil {
			return NewValidationError("登録内容を確認してください。")
		}
	}

	teacherID := form.TeacherID
	if teacherID == 0 {
		teacherID = identity.UserID
	}

	var notes *string
	if form.Notes != "" {
		notes = &form.Notes
	}

	lesson := &model.Lesson{
		StudentID: form.StudentID,
		TeacherID: teacherID,
		Date:      date,
		Status:    status,
		Notes:     notes,
	}
	if err := s.repo.Lesson.Create(ctx, lesson); err != nil {
		// 存在しない生徒・講師は FK 違反としてここに来る
		s.logger.Error("授業記録の作成に失敗", zap.Error(err),
			zap.Uint("student_id", form.StudentID),
			zap.Uint("teacher_id", teacherID),
		)
		return ErrLessonCreate
	}
	return nil
}

// ListRecent 生徒名・講師名付きの授業記録。日付降順で最大 50 件
func (s *LessonService) ListRecent(ctx context.Context, identity session.Identity) ([]dto.LessonResponse, error) {
	if !authz.Allowed(identity.Role, authz.ActionViewLessons, identity.UserID, identity.UserID) {
		return nil, ErrForbidden
	}

	rows, err := s.repo.Lesson.ListRecentWithNames(ctx, recentLessonLimit)
	if err != nil {
		s.logger.Error("授業記録一覧の取得に失敗", zap.Error(err))
		return nil, ErrStorage
	}
	return toLessonResponses(rows), nil
}

// Options 授業登録フォームの選択肢（生徒・担当講師・ステータスの一覧）
func (s *LessonService) Options(ctx context.Context, identity session.Identity) (*dto.LessonOptions, error) {
	if !authz.Allowed(identity.Role, authz.ActionCreateLesson, identity.UserID, identity.UserID) {
		return nil, ErrForbidden
	}

	students, err := s.repo.Student.ListAll(ctx)
	if err != nil {
		s.logger.Error("生徒一覧の取得に失敗", zap.Error(err))
		return nil, ErrStorage
	}
	teachers, err := s.repo.User.ListTeachers(ctx)
	if err != nil {
		s.logger.Error("講師一覧の取得に失敗", zap.Error(err))
		return nil, ErrStorage
	}

	return &dto.LessonOptions{
		Students: toStudentInfos(students),
		Teachers: toTeacherInfos(teachers),
		Statuses: []dto.StatusOption{
			{Value: string(model.LessonStatusNormal), Label: model.LessonStatusNormal.Label()},
			{Value: string(model.LessonStatusAbsence), Label: model.LessonStatusAbsence.Label()},
			{Value: string(model.LessonStatusMakeup), Label: model.LessonStatusMakeup.Label()},
		},
	}, nil
}

func toLessonResponses(rows []model.LessonWithNames) []dto.LessonResponse {
	res := make([]dto.LessonResponse, 0, len(rows))
	for _, row := range rows {
		notes := ""
		if row.Notes != nil {
			notes = *row.Notes
		}
		res = append(res, dto.LessonResponse{
			ID:          row.ID,
			Date:        row.Date.Format(dateLayout),
			Status:      string(row.Status),
			StatusLabel: row.Status.Label(),
			Notes:       notes,
			StudentName: row.StudentName,
			TeacherName: row.TeacherName,
		})
	}
	return res
}

func toTeacherInfos(teachers []model.User) []dto.TeacherInfo {
	res := make([]dto.TeacherInfo, 0, len(teachers))
	for _, u := range teachers {
		res = append(res, dto.TeacherInfo{ID: u.ID, Name: u.Name})
	}
	return res
}

func toStudentInfos(students []model.Student) []dto.StudentInfo {
	res := make([]dto.StudentInfo, 0, len(students))
	for _, st := range students {
		grade := ""
		if st.Grade != nil {
			grade = *st.Grade
		}
		res = append(res, dto.StudentInfo{ID: st.ID, Name: st.Name, Grade: grade})
	}
	return res
}

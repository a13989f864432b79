package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/miufukumura/edushift/internal/authz"
	"github.com/miufukumura/edushift/internal/repository"
	"github.com/miufukumura/edushift/internal/session"
)

// ExportService シフトの帳票出力（Excel / iCalendar）
type ExportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 帳票出力サービスを生成する
func NewExportService(repo *repository.Repository, logger *zap.Logger) *ExportService {
	return &ExportService{repo: repo, logger: logger}
}

// ExportShiftsXLSX 全講師のシフト一覧を Excel 帳票として出力する。
// 戻り値はファイル内容とダウンロード用ファイル名
func (s *ExportService) ExportShiftsXLSX(ctx context.Context, identity session.Identity) ([]byte, string, error) {
	if !authz.Allowed(identity.Role, authz.ActionExportShifts, identity.UserID, identity.UserID) {
		return nil, "", ErrForbidden
	}

	rows, err := s.repo.Shift.ListAllWithTeacher(ctx, 0)
	if err != nil {
		s.logger.Error("帳票用シフトの取得に失敗", zap.Error(err))
		return nil, "", ErrStorage
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "シフト一覧"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		s.logger.Error("シートの作成に失敗", zap.Error(err))
		return nil, "", ErrStorage
	}

	headers := []string{"日付", "開始", "終了", "担当講師"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			s.logger.Error("ヘッダーの書き込みに失敗", zap.Error(err))
			return nil, "", ErrStorage
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Date.Format(dateLayout),
			row.StartTime,
			row.EndTime,
			row.TeacherName,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				s.logger.Error("シフト行の書き込みに失敗", zap.Error(err))
				return nil, "", ErrStorage
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("Excel ファイルの生成に失敗", zap.Error(err))
		return nil, "", ErrStorage
	}

	filename := fmt.Sprintf("shifts_%s.xlsx", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

// ExportOwnShiftsICS 自分のシフトを iCalendar 形式で出力する。
// カレンダーアプリへの取り込みを想定
func (s *ExportService) ExportOwnShiftsICS(ctx context.Context, identity session.Identity) (string, error) {
	if !authz.Allowed(identity.Role, authz.ActionViewOwnShifts, identity.UserID, identity.UserID) {
		return "", ErrForbidden
	}

	shifts, err := s.repo.Shift.ListByUser(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("iCal 用シフトの取得に失敗", zap.Error(err), zap.Uint("user_id", identity.UserID))
		return "", ErrStorage
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	for _, sh := range shifts {
		event := cal.AddEvent(fmt.Sprintf("shift-%d@edushift", sh.ID))
		event.SetDtStampTime(now)
		event.SetStartAt(combineDateTime(sh.Date, sh.StartTime))
		event.SetEndAt(combineDateTime(sh.Date, sh.EndTime))
		event.SetSummary(fmt.Sprintf("出勤 %s-%s %s", sh.StartTime, sh.EndTime, identity.Name))
	}

	return cal.Serialize(), nil
}

// combineDateTime 日付と HH:MM 文字列を合成する。
// 時刻が解析できない場合は日付のみ（0 時）を返す
func combineDateTime(date time.Time, hhmm string) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

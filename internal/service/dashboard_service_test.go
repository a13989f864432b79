package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/miufukumura/edushift/internal/dto"
	"github.com/miufukumura/edushift/internal/model"
)

func TestDashboardOverview_ForbiddenForTeacher(t *testing.T) {
	svc, _, _ := newTestService(t)
	teacher := seedUser(t, svc, "佐藤", "sato@example.com", model.RoleTeacher)

	if _, err := svc.Dashboard.Overview(context.Background(), teacher); !errors.Is(err, ErrForbidden) {
		t.Errorf("講師のダッシュボード閲覧は ErrForbidden が返るべき: got %v", err)
	}
}

func TestDashboardOverview_Aggregates(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	admin := seedUser(t, svc, "管理者", "admin@example.com", model.RoleAdmin)
	sato := seedUser(t, svc, "佐藤", "sato@example.com", model.RoleTeacher)
	tanaka := seedUser(t, svc, "田中", "tanaka@example.com", model.RoleTeacher)
	studentID := seedStudent(t, db, "高橋")

	if err := svc.Shift.Upsert(ctx, sato, dto.ShiftForm{Date: "2026-09-02", StartTime: "16:00", EndTime: "20:00"}); err != nil {
		t.Fatalf("シフト登録が失敗: %v", err)
	}
	if err := svc.Shift.Upsert(ctx, tanaka, dto.ShiftForm{Date: "2026-09-01", StartTime: "17:00", EndTime: "21:00"}); err != nil {
		t.Fatalf("シフト登録が失敗: %v", err)
	}
	if err := svc.Lesson.Create(ctx, sato, dto.LessonForm{StudentID: studentID, Date: "2026-09-01", Status: "absence"}); err != nil {
		t.Fatalf("授業登録が失敗: %v", err)
	}
	if err := svc.Lesson.Create(ctx, sato, dto.LessonForm{StudentID: studentID, Date: "2026-09-02"}); err != nil {
		t.Fatalf("授業登録が失敗: %v", err)
	}

	view, err := svc.Dashboard.Overview(ctx, admin)
	if err != nil {
		t.Fatalf("ダッシュボードの取得が失敗: %v", err)
	}

	// 全講師のシフトが日付昇順で講師名付き
	if len(view.Shifts) != 2 {
		t.Fatalf("シフトは 2 件のはず: got %d", len(view.Shifts))
	}
	if view.Shifts[0].TeacherName != "田中" || view.Shifts[1].TeacherName != "佐藤" {
		t.Errorf("シフトの並び・講師名が不正: %+v", view.Shifts)
	}

	if len(view.Lessons) != 2 {
		t.Errorf("授業記録は 2 件のはず: got %d", len(view.Lessons))
	}
	// 欠席・振替のみが抽出される
	if len(view.Exceptions) != 1 || view.Exceptions[0].Status != "absence" {
		t.Errorf("欠席・振替の抽出が不正: %+v", view.Exceptions)
	}

	if len(view.Users) != 3 {
		t.Errorf("アカウントは 3 名のはず: got %d", len(view.Users))
	}
	if len(view.Students) != 1 {
		t.Errorf("生徒は 1 名のはず: got %d", len(view.Students))
	}
}

func TestDashboardOverview_Caps(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	admin := seedUser(t, svc, "管理者", "admin@example.com", model.RoleAdmin)
	teacher := seedUser(t, svc, "佐藤", "sato@example.com", model.RoleTeacher)
	studentID := seedStudent(t, db, "高橋")

	// 上限を超える授業 60 件（うち欠席 35 件）とシフト 60 件を投入する
	for i := 0; i < 60; i++ {
		status := ""
		if i < 35 {
			status = "absence"
		}
		date := fmt.Sprintf("2026-07-%02d", i%28+1)
		form := dto.LessonForm{StudentID: studentID, Date: date, Status: status}
		if err := svc.Lesson.Create(ctx, teacher, form); err != nil {
			t.Fatalf("授業登録が失敗: %v", err)
		}
		shift := dto.ShiftForm{Date: date, StartTime: fmt.Sprintf("%02d:00", i%24), EndTime: "22:00"}
		if err := svc.Shift.Upsert(ctx, teacher, shift); err != nil {
			t.Fatalf("シフト登録が失敗: %v", err)
		}
	}

	view, err := svc.Dashboard.Overview(ctx, admin)
	if err != nil {
		t.Fatalf("ダッシュボードの取得が失敗: %v", err)
	}
	if len(view.Shifts) != 50 {
		t.Errorf("シフトの上限は 50 件: got %d", len(view.Shifts))
	}
	if len(view.Lessons) != 50 {
		t.Errorf("授業記録の上限は 50 件: got %d", len(view.Lessons))
	}
	if len(view.Exceptions) != 30 {
		t.Errorf("欠席・振替の上限は 30 件: got %d", len(view.Exceptions))
	}
}

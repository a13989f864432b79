package authz

import (
	"testing"

	"github.com/miufukumura/edushift/internal/model"
)

// 権限表（§アクセス制御）の全組み合わせを検証する
func TestAllowed_DecisionTable(t *testing.T) {
	const (
		self  uint = 10
		other uint = 20
	)

	tests := []struct {
		name    string
		role    model.Role
		action  Action
		ownerID uint
		want    bool
	}{
		// ── 講師 ──
		{"講師_自分のシフト登録", model.RoleTeacher, ActionCreateShift, self, true},
		{"講師_他人のシフト登録", model.RoleTeacher, ActionCreateShift, other, false},
		{"講師_自分のシフト編集", model.RoleTeacher, ActionEditShift, self, true},
		{"講師_他人のシフト編集", model.RoleTeacher, ActionEditShift, other, false},
		{"講師_自分のシフト削除", model.RoleTeacher, ActionDeleteShift, self, true},
		{"講師_他人のシフト削除", model.RoleTeacher, ActionDeleteShift, other, false},
		{"講師_自分のシフト閲覧", model.RoleTeacher, ActionViewOwnShifts, self, true},
		{"講師_他人のシフト閲覧", model.RoleTeacher, ActionViewOwnShifts, other, false},
		{"講師_全シフト閲覧", model.RoleTeacher, ActionViewAllShifts, 0, false},
		{"講師_授業登録", model.RoleTeacher, ActionCreateLesson, other, true},
		{"講師_授業履歴閲覧", model.RoleTeacher, ActionViewLessons, 0, true},
		{"講師_アカウント管理", model.RoleTeacher, ActionManageAccounts, 0, false},
		{"講師_帳票出力", model.RoleTeacher, ActionExportShifts, 0, false},

		// ── 管理者 ──
		{"管理者_自分のシフト登録", model.RoleAdmin, ActionCreateShift, self, true},
		{"管理者_他人のシフト登録", model.RoleAdmin, ActionCreateShift, other, true},
		{"管理者_他人のシフト編集", model.RoleAdmin, ActionEditShift, other, true},
		{"管理者_他人のシフト削除", model.RoleAdmin, ActionDeleteShift, other, true},
		{"管理者_他人のシフト閲覧", model.RoleAdmin, ActionViewOwnShifts, other, true},
		{"管理者_全シフト閲覧", model.RoleAdmin, ActionViewAllShifts, 0, true},
		{"管理者_授業登録", model.RoleAdmin, ActionCreateLesson, other, true},
		{"管理者_アカウント管理", model.RoleAdmin, ActionManageAccounts, 0, true},
		{"管理者_帳票出力", model.RoleAdmin, ActionExportShifts, 0, true},

		// ── 匿名 ──
		{"匿名_シフト登録", model.Role(""), ActionCreateShift, self, false},
		{"匿名_シフト閲覧", model.Role(""), ActionViewOwnShifts, self, false},
		{"匿名_授業登録", model.Role(""), ActionCreateLesson, 0, false},
		{"匿名_アカウント管理", model.Role(""), ActionManageAccounts, 0, false},

		// ── 未知ロール ──
		{"未知ロール_拒否", model.Role("superuser"), ActionCreateShift, self, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allowed(tt.role, tt.action, tt.ownerID, self)
			if got != tt.want {
				t.Errorf("Allowed(%q, %d, owner=%d, actor=%d) = %v, 期待値 %v",
					tt.role, tt.action, tt.ownerID, self, got, tt.want)
			}
		})
	}
}

// 同一入力に対して常に同じ結果を返す（決定性）
func TestAllowed_Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if !Allowed(model.RoleTeacher, ActionEditShift, 5, 5) {
			t.Fatal("同一入力で結果が変化した")
		}
		if Allowed(model.RoleTeacher, ActionEditShift, 6, 5) {
			t.Fatal("同一入力で結果が変化した")
		}
	}
}

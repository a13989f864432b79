// Package authz 役割ベースのアクセス制御ガード。
// 純粋関数のみで構成し、DB・セッション等の外部状態には一切依存しない。
package authz

import "github.com/miufukumura/edushift/internal/model"

// Action ガードが判定する操作の閉じた列挙
type Action int

const (
	// ActionCreateShift シフト新規登録（owner = 登録先の講師）
	ActionCreateShift Action = iota
	// ActionEditShift シフト編集（owner = シフトの所有講師）
	ActionEditShift
	// ActionDeleteShift シフト削除（owner = シフトの所有講師）
	ActionDeleteShift
	// ActionViewOwnShifts シフト一覧閲覧（owner = 閲覧対象の講師）
	ActionViewOwnShifts
	// ActionViewAllShifts 全講師シフトの閲覧（管理ダッシュボード）
	ActionViewAllShifts
	// ActionCreateLesson 授業登録（生徒・講師の組み合わせは自由）
	ActionCreateLesson
	// ActionViewLessons 授業履歴の閲覧
	ActionViewLessons
	// ActionManageAccounts ユーザー・生徒アカウントの管理
	ActionManageAccounts
	// ActionExportShifts シフト一覧の帳票出力
	ActionExportShifts
)

// Allowed (role, action, resource_owner, actor) → 許可 / 拒否 を判定する。
// 匿名（role 空）は全操作拒否。判定は決定的で副作用を持たない。
func Allowed(role model.Role, action Action, ownerID, actorID uint) bool {
	switch role {
	case model.RoleAdmin:
		// 管理者は自他を問わず全操作可
		return true
	case model.RoleTeacher:
		switch action {
		case ActionCreateShift, ActionEditShift, ActionDeleteShift, ActionViewOwnShifts:
			// 講師は自分のシフトのみ
			return ownerID == actorID
		case ActionCreateLesson, ActionViewLessons:
			// 授業登録・閲覧は所有制限なし
			return true
		case ActionViewAllShifts, ActionManageAccounts, ActionExportShifts:
			return false
		}
		return false
	}
	// 匿名・未知ロールは拒否
	return false
}

package dto

import (
	"encoding/json"
	"fmt"
)

// ManageAction 管理操作の閉じたバリアント。
// 受信 JSON を境界で一度だけ解読し、以降は型で分岐する
type ManageAction interface {
	isManageAction()
}

// AddUserAction 講師・管理者アカウントの追加
type AddUserAction struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AddStudentAction 生徒の追加
type AddStudentAction struct {
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

// DeleteUserAction アカウントの削除（担当シフト・授業記録も同時削除）
type DeleteUserAction struct {
	UserID uint `json:"user_id"`
}

// DeleteStudentAction 生徒の削除（授業記録も同時削除）
type DeleteStudentAction struct {
	StudentID uint `json:"student_id"`
}

func (AddUserAction) isManageAction()       {}
func (AddStudentAction) isManageAction()    {}
func (DeleteUserAction) isManageAction()    {}
func (DeleteStudentAction) isManageAction() {}

// manageEnvelope 受信 JSON の外形。action で種別を判別する
type manageEnvelope struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// DecodeManageAction 受信 JSON を ManageAction バリアントへ解読する。
// 未知の action は即座にエラー
func DecodeManageAction(data []byte) (ManageAction, error) {
	var env manageEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("管理操作の解読に失敗: %w", err)
	}

	switch env.Action {
	case "add_user":
		var a AddUserAction
		if err := json.Unmarshal(env.Payload, &a); err != nil {
			return nil, fmt.Errorf("add_user の解読に失敗: %w", err)
		}
		return a, nil
	case "add_student":
		var a AddStudentAction
		if err := json.Unmarshal(env.Payload, &a); err != nil {
			return nil, fmt.Errorf("add_student の解読に失敗: %w", err)
		}
		return a, nil
	case "delete_user":
		var a DeleteUserAction
		if err := json.Unmarshal(env.Payload, &a); err != nil {
			return nil, fmt.Errorf("delete_user の解読に失敗: %w", err)
		}
		return a, nil
	case "delete_student":
		var a DeleteStudentAction
		if err := json.Unmarshal(env.Payload, &a); err != nil {
			return nil, fmt.Errorf("delete_student の解読に失敗: %w", err)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("未知の管理操作です: %q", env.Action)
	}
}

package service

import (
	"errors"

	"github.com/miufukumura/edushift/internal/dto"
)

// ユーザーに提示するエラーメッセージ。
// ストレージ障害の詳細はログへ出し、ここでは常に汎用文言を返す
var (
	// ErrAuthFailed 認証失敗。メール未登録とパスワード不一致を区別しない
	ErrAuthFailed = errors.New("メールアドレスまたはパスワードが違います。")
	// ErrForbidden 権限不足
	ErrForbidden = errors.New("この操作を行う権限がありません。")
	// ErrDuplicateEmail メールアドレスの重複
	ErrDuplicateEmail = errors.New("このメールアドレスは既に使用されています。")
	// ErrShiftNotFound 編集・削除対象のシフトが存在しない
	ErrShiftNotFound = errors.New("編集対象のシフトが見つかりません。")
	// ErrUserNotFound 対象ユーザーが存在しない
	ErrUserNotFound = errors.New("対象のユーザーが見つかりません。")
	// ErrStudentNotFound 対象生徒が存在しない
	ErrStudentNotFound = errors.New("対象の生徒が見つかりません。")
	// ErrLessonCreate 授業記録の保存失敗
	ErrLessonCreate = errors.New("授業登録中にエラーが発生しました。")
	// ErrStorage その他のストレージ障害
	ErrStorage = errors.New("サーバー側でエラーが発生しました。しばらくしてから再度お試しください。")
)

// ValidationError 入力検証エラー。
// シフトフォーム起因の場合は入力値を保持し、再入力のためエコーバックする
type ValidationError struct {
	Message string
	Form    *dto.ShiftForm
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError フォームのエコーバックを伴わない検証エラー
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NewShiftValidationError シフトフォームの内容を添えた検証エラー
func NewShiftValidationError(message string, form dto.ShiftForm) *ValidationError {
	return &ValidationError{Message: message, Form: &form}
}

// AsValidationError err が検証エラーならそれを取り出す
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

package dto

// ShiftForm シフト登録・編集フォーム。
// 検証失敗時はこの内容をそのままエコーバックして再入力に使う。
// 必須チェックはサービス層が行う（バインドで弾くとエコーバックできない）。
// ShiftID が空なら新規登録、指定ありなら編集
type ShiftForm struct {
	ShiftID      string `json:"shift_id"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TargetUserID uint   `json:"target_user_id"`
}

// ShiftResponse 自分のシフト一覧の 1 行
type ShiftResponse struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ShiftWithTeacherResponse 講師名付きシフトの 1 行（管理者向け一覧）
type ShiftWithTeacherResponse struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	TeacherName string `json:"teacher_name"`
}

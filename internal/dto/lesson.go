package dto

// LessonForm 授業記録の登録フォーム。
// TeacherID 省略時は操作者自身が担当講師になる
type LessonForm struct {
	StudentID uint   `json:"student_id" binding:"required"`
	TeacherID uint   `json:"teacher_id"`
	Date      string `json:"date" binding:"required"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

// LessonResponse 授業記録一覧の 1 行
type LessonResponse struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Notes       string `json:"notes,omitempty"`
	StudentName string `json:"student_name"`
	TeacherName string `json:"teacher_name"`
}

// LessonOptions 授業登録フォームの選択肢
type LessonOptions struct {
	Students []StudentInfo  `json:"students"`
	Teachers []TeacherInfo  `json:"teachers"`
	Statuses []StatusOption `json:"statuses"`
}

// TeacherInfo 担当講師の選択肢
type TeacherInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// StudentInfo 生徒の選択肢
type StudentInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Grade string `json:"grade,omitempty"`
}

// StatusOption 授業ステータスの選択肢（値と表示ラベル）
type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

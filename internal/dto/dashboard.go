package dto

// DashboardResponse 管理者ダッシュボードの集約ビュー
type DashboardResponse struct {
	Shifts     []ShiftWithTeacherResponse `json:"shifts"`
	Lessons    []LessonResponse           `json:"lessons"`
	Exceptions []LessonResponse           `json:"exceptions"`
	Users      []UserInfo                 `json:"users"`
	Students   []StudentInfo              `json:"students"`
}

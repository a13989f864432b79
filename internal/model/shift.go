package model

import "time"

// Shift 講師シフトテーブル — 対応 shifts
// start_time / end_time は HH:MM の自由形式文字列で、順序の検証は行わない
// （end_time < start_time も登録可。元アプリの仕様を踏襲）
type Shift struct {
	ID        uint      `gorm:"primaryKey"                json:"id"`
	UserID    uint      `gorm:"not null;index"            json:"user_id"`
	Date      time.Time `gorm:"type:date;not null"        json:"date"`
	StartTime string    `gorm:"type:varchar(10);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(10);not null" json:"end_time"`
	Timestamps

	// 関連
	Teacher *User `gorm:"foreignKey:UserID" json:"teacher,omitempty"`
}

// TableName テーブル名を指定
func (Shift) TableName() string { return "shifts" }

// ShiftWithTeacher 管理ダッシュボード用の結合ビュー行
type ShiftWithTeacher struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	TeacherName string    `json:"teacher_name"`
}

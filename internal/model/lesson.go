package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// LessonStatus 授業ステータス（通常 / 欠席 / 振替）の閉じた列挙型
type LessonStatus string

const (
	LessonStatusNormal  LessonStatus = "normal"
	LessonStatusAbsence LessonStatus = "absence"
	LessonStatusMakeup  LessonStatus = "makeup"
)

// ParseLessonStatus 文字列を LessonStatus に変換する。未知の値はエラー
func ParseLessonStatus(s string) (LessonStatus, error) {
	switch LessonStatus(s) {
	case LessonStatusNormal, LessonStatusAbsence, LessonStatusMakeup:
		return LessonStatus(s), nil
	}
	return "", fmt.Errorf("不正な status 値: %q", s)
}

// Valid 既知の値かどうか
func (s LessonStatus) Valid() bool {
	switch s {
	case LessonStatusNormal, LessonStatusAbsence, LessonStatusMakeup:
		return true
	}
	return false
}

// Label 画面・帳票表示用の日本語名
func (s LessonStatus) Label() string {
	switch s {
	case LessonStatusAbsence:
		return "欠席"
	case LessonStatusMakeup:
		return "振替"
	default:
		return "通常"
	}
}

// Scan DB から読み出した値を検証付きで取り込む
func (s *LessonStatus) Scan(src interface{}) error {
	var str string
	switch v := src.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("LessonStatus.Scan: 非対応の型 %T", src)
	}
	parsed, err := ParseLessonStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value 書き込み時に未知の値を拒否する
func (s LessonStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("LessonStatus.Value: 不正な status 値: %q", string(s))
	}
	return string(s), nil
}

// Lesson 授業記録テーブル — 対応 lessons
type Lesson struct {
	ID        uint         `gorm:"primaryKey"                json:"id"`
	StudentID uint         `gorm:"not null;index"            json:"student_id"`
	TeacherID uint         `gorm:"not null;index"            json:"teacher_id"`
	Date      time.Time    `gorm:"type:date;not null"        json:"date"`
	Status    LessonStatus `gorm:"type:varchar(20);not null" json:"status"`
	Notes     *string      `gorm:"type:text"                 json:"notes,omitempty"`
	Timestamps

	// 関連
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Teacher *User    `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

// TableName テーブル名を指定
func (Lesson) TableName() string { return "lessons" }

// LessonWithNames 一覧・ダッシュボード用の結合ビュー行
type LessonWithNames struct {
	ID          uint         `json:"id"`
	Date        time.Time    `json:"date"`
	Status      LessonStatus `json:"status"`
	Notes       *string      `json:"notes,omitempty"`
	StudentName string       `json:"student_name"`
	TeacherName string       `json:"teacher_name"`
}

package model

import (
	"database/sql/driver"
	"fmt"
)

// Role ユーザー区分（講師 / 管理者）の閉じた列挙型
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// ParseRole 文字列を Role に変換する。未知の値はエラー
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleTeacher, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("不正な role 値: %q", s)
}

// Valid 既知の値かどうか
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// Scan DB から読み出した値を検証付きで取り込む
func (r *Role) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("Role.Scan: 非対応の型 %T", src)
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value 書き込み時に未知の値を拒否する
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("Role.Value: 不正な role 値: %q", string(r))
	}
	return string(r), nil
}

// User ユーザーテーブル — 対応 users
type User struct {
	ID           uint   `gorm:"primaryKey"                 json:"id"`
	Name         string `gorm:"type:varchar(120);not null" json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null"  json:"role"`
	Timestamps
}

// TableName テーブル名を指定
func (User) TableName() string { return "users" }

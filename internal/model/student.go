package model

// Student 生徒テーブル — 対応 students
type Student struct {
	ID    uint    `gorm:"primaryKey"                 json:"id"`
	Name  string  `gorm:"type:varchar(120);not null" json:"name"`
	Grade *string `gorm:"type:varchar(50)"           json:"grade,omitempty"`
	Timestamps
}

// TableName テーブル名を指定
func (Student) TableName() string { return "students" }

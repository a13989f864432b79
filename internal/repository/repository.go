// Package repository データアクセス層。各エンティティのリポジトリと
// トランザクション境界を提供する
package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 全リポジトリの集約。サービス層へはこの単位で注入する
type Repository struct {
	db *gorm.DB

	User    UserRepository
	Student StudentRepository
	Shift   ShiftRepository
	Lesson  LessonRepository
}

// NewRepository GORM 実装のリポジトリ集約を生成する
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:      db,
		User:    NewUserRepository(db),
		Student: NewStudentRepository(db),
		Shift:   NewShiftRepository(db),
		Lesson:  NewLessonRepository(db),
	}
}

// NewRepositoryWithMocks テスト用。任意の実装を差し込んだ集約を生成する
func NewRepositoryWithMocks(user UserRepository, student StudentRepository, shift ShiftRepository, lesson LessonRepository) *Repository {
	return &Repository{
		User:    user,
		Student: student,
		Shift:   shift,
		Lesson:  lesson,
	}
}

// Transaction fn をひとつのトランザクション内で実行する。
// fn が error を返すと全操作がロールバックされる。
// fn にはトランザクション束縛のリポジトリ集約が渡される。
// db 未接続（モック構成）の場合は fn をそのまま実行する
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

package service

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/miufukumura/edushift/internal/model"
	"github.com/miufukumura/edushift/internal/repository"
)

// mockDB マップ実装のインメモリデータストア。
// failWrites を設定すると以降の全書き込みが失敗する
type mockDB struct {
	mu sync.Mutex

	users    map[uint]*model.User
	students map[uint]*model.Student
	shifts   map[uint]*model.Shift
	lessons  map[uint]*model.Lesson

	nextUserID    uint
	nextStudentID uint
	nextShiftID   uint
	nextLessonID  uint

	failWrites error
}

func newMockDB() *mockDB {
	return &mockDB{
		users:    make(map[uint]*model.User),
		students: make(map[uint]*model.Student),
		shifts:   make(map[uint]*model.Shift),
		lessons:  make(map[uint]*model.Lesson),
	}
}

func (d *mockDB) repo() *repository.Repository {
	return repository.NewRepositoryWithMocks(
		&mockUserRepo{d},
		&mockStudentRepo{d},
		&mockShiftRepo{d},
		&mockLessonRepo{d},
	)
}

// ── ユーザー ──

type mockUserRepo struct{ db *mockDB }

func (r *mockUserRepo) Create(_ context.Context, user *model.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	for _, u := range r.db.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.db.nextUserID++
	user.ID = r.db.nextUserID
	cp := *user
	r.db.users[user.ID] = &cp
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	users := make([]model.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Role != users[j].Role {
			return users[i].Role > users[j].Role
		}
		return users[i].Name < users[j].Name
	})
	return users, nil
}

func (r *mockUserRepo) ListTeachers(_ context.Context) ([]model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var teachers []model.User
	for _, u := range r.db.users {
		if u.Role == model.RoleTeacher {
			teachers = append(teachers, *u)
		}
	}
	sort.Slice(teachers, func(i, j int) bool { return teachers[i].Name < teachers[j].Name })
	return teachers, nil
}

func (r *mockUserRepo) Delete(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	delete(r.db.users, id)
	return nil
}

// ── 生徒 ──

type mockStudentRepo struct{ db *mockDB }

func (r *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	r.db.nextStudentID++
	student.ID = r.db.nextStudentID
	cp := *student
	r.db.students[student.ID] = &cp
	return nil
}

func (r *mockStudentRepo) GetByID(_ context.Context, id uint) (*model.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *mockStudentRepo) ListAll(_ context.Context) ([]model.Student, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	students := make([]model.Student, 0, len(r.db.students))
	for _, s := range r.db.students {
		students = append(students, *s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].Name < students[j].Name })
	return students, nil
}

func (r *mockStudentRepo) Delete(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	delete(r.db.students, id)
	return nil
}

// ── シフト ──

type mockShiftRepo struct{ db *mockDB }

func (r *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	r.db.nextShiftID++
	shift.ID = r.db.nextShiftID
	cp := *shift
	r.db.shifts[shift.ID] = &cp
	return nil
}

func (r *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	if _, ok := r.db.shifts[shift.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *shift
	r.db.shifts[shift.ID] = &cp
	return nil
}

func (r *mockShiftRepo) GetByID(_ context.Context, id uint) (*model.Shift, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	sh, ok := r.db.shifts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *sh
	return &cp, nil
}

func sortShifts(shifts []model.Shift) {
	sort.Slice(shifts, func(i, j int) bool {
		if !shifts[i].Date.Equal(shifts[j].Date) {
			return shifts[i].Date.Before(shifts[j].Date)
		}
		return shifts[i].StartTime < shifts[j].StartTime
	})
}

func (r *mockShiftRepo) ListByUser(_ context.Context, userID uint) ([]model.Shift, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var shifts []model.Shift
	for _, sh := range r.db.shifts {
		if sh.UserID == userID {
			shifts = append(shifts, *sh)
		}
	}
	sortShifts(shifts)
	return shifts, nil
}

func (r *mockShiftRepo) ListAllWithTeacher(_ context.Context, limit int) ([]model.ShiftWithTeacher, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var shifts []model.Shift
	for _, sh := range r.db.shifts {
		shifts = append(shifts, *sh)
	}
	sortShifts(shifts)
	rows := make([]model.ShiftWithTeacher, 0, len(shifts))
	for _, sh := range shifts {
		name := ""
		if u, ok := r.db.users[sh.UserID]; ok {
			name = u.Name
		}
		rows = append(rows, model.ShiftWithTeacher{
			ID:          sh.ID,
			Date:        sh.Date,
			StartTime:   sh.StartTime,
			EndTime:     sh.EndTime,
			TeacherName: name,
		})
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *mockShiftRepo) Delete(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	delete(r.db.shifts, id)
	return nil
}

func (r *mockShiftRepo) DeleteByUser(_ context.Context, userID uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	for id, sh := range r.db.shifts {
		if sh.UserID == userID {
			delete(r.db.shifts, id)
		}
	}
	return nil
}

// ── 授業記録 ──

type mockLessonRepo struct{ db *mockDB }

func (r *mockLessonRepo) Create(_ context.Context, lesson *model.Lesson) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	// 外部キー制約の模擬
	if _, ok := r.db.students[lesson.StudentID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if _, ok := r.db.users[lesson.TeacherID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	r.db.nextLessonID++
	lesson.ID = r.db.nextLessonID
	cp := *lesson
	r.db.lessons[lesson.ID] = &cp
	return nil
}

func (r *mockLessonRepo) listWithNames(limit int, filter func(*model.Lesson) bool) []model.LessonWithNames {
	var lessons []model.Lesson
	for _, l := range r.db.lessons {
		if filter == nil || filter(l) {
			lessons = append(lessons, *l)
		}
	}
	sort.Slice(lessons, func(i, j int) bool {
		if !lessons[i].Date.Equal(lessons[j].Date) {
			return lessons[i].Date.After(lessons[j].Date)
		}
		return lessons[i].ID > lessons[j].ID
	})
	if limit > 0 && len(lessons) > limit {
		lessons = lessons[:limit]
	}
	rows := make([]model.LessonWithNames, 0, len(lessons))
	for _, l := range lessons {
		studentName, teacherName := "", ""
		if s, ok := r.db.students[l.StudentID]; ok {
			studentName = s.Name
		}
		if u, ok := r.db.users[l.TeacherID]; ok {
			teacherName = u.Name
		}
		rows = append(rows, model.LessonWithNames{
			ID:          l.ID,
			Date:        l.Date,
			Status:      l.Status,
			Notes:       l.Notes,
			StudentName: studentName,
			TeacherName: teacherName,
		})
	}
	return rows
}

func (r *mockLessonRepo) ListRecentWithNames(_ context.Context, limit int) ([]model.LessonWithNames, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.listWithNames(limit, nil), nil
}

func (r *mockLessonRepo) ListExceptions(_ context.Context, limit int) ([]model.LessonWithNames, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.listWithNames(limit, func(l *model.Lesson) bool {
		return l.Status == model.LessonStatusAbsence || l.Status == model.LessonStatusMakeup
	}), nil
}

func (r *mockLessonRepo) DeleteByStudent(_ context.Context, studentID uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	for id, l := range r.db.lessons {
		if l.StudentID == studentID {
			delete(r.db.lessons, id)
		}
	}
	return nil
}

func (r *mockLessonRepo) DeleteByTeacher(_ context.Context, teacherID uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if r.db.failWrites != nil {
		return r.db.failWrites
	}
	for id, l := range r.db.lessons {
		if l.TeacherID == teacherID {
			delete(r.db.lessons, id)
		}
	}
	return nil
}

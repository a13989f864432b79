// Package password パスワードの一方向ハッシュ化と照合。
// bcrypt ダイジェストはアルゴリズム・コスト・ソルトを自己記述するため、
// 照合に外部状態を必要としない。
package password

import "golang.org/x/crypto/bcrypt"

// Hash 平文パスワードを bcrypt でハッシュ化する
func Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify 平文パスワードをダイジェストと照合する。
// 比較は定数時間で行われ、不正な形式のダイジェストでも panic せず false を返す。
func Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

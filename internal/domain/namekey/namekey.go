// Package namekey はプロジェクト名・メンバー名・タスク名を
// 大文字小文字を区別しないレジストリキーへ正規化する。
package namekey

import "golang.org/x/text/cases"

// Normalize は名前をケースフォールドしたキーを返す。
// cases.Caser は goroutine 間で共有できないため呼び出しごとに生成する。
func Normalize(name string) string {
	return cases.Fold().String(name)
}

// Equal は 2 つの名前が同じキーを持つかどうかを返す。
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

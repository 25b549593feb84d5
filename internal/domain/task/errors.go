package task

import "errors"

// --- Sentinel Errors ---
// これらは errors.Is で判定可能。HTTP 層でステータスコードに変換される。

var (
	// ErrNoResponsible は担当メンバーなしでタスクを生成しようとした場合のエラー。
	ErrNoResponsible = errors.New("task responsible must not be nil")

	// ErrInvalidStatus は status 文字列が既知の値でない場合のエラー。
	ErrInvalidStatus = errors.New("invalid task status")
)

// Query validation errors
var (
	// ErrInvalidSortKey は sort に未知のキーが含まれる場合のエラー。
	ErrInvalidSortKey = errors.New("invalid sort key")
)

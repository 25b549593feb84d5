package task

import "strings"

// ParseStatus は文字列を TaskStatus に変換する。
// in-progress / doing は in_progress、done は completed に正規化する。
func ParseStatus(s string) (TaskStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	switch normalized {
	case "in-progress", "doing":
		return StatusInProgress, nil
	case "done":
		return StatusCompleted, nil
	}

	status := TaskStatus(normalized)
	if !isValidStatus(status) {
		rejected := s
		return "", NewInvalidEnum("status", ErrInvalidStatus, &rejected)
	}
	return status, nil
}

// Label は表示用の大文字ラベルを返す。
func (s TaskStatus) Label() string {
	return strings.ToUpper(string(s))
}

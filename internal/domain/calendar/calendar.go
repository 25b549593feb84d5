package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DisplayLayout はレポート・テキスト表示用の日付書式（DD/MM/YYYY）。
	DisplayLayout = "02/01/2006"

	// ISOLayout は API 入力で受け付けるもう一つの書式（YYYY-MM-DD）。
	ISOLayout = "2006-01-02"
)

const secondsPerDay = 24 * 60 * 60

// ErrInvalidDate は日付文字列がどの書式にも一致しない場合のエラー。
var ErrInvalidDate = errors.New("invalid date (expected DD/MM/YYYY or YYYY-MM-DD)")

// Day は時刻を日付のみ（UTC の 00:00:00）に正規化する。
// 年月日は t 自身のロケーションで解釈する。
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween は from から to までの日数を返す（to が前なら負）。
func DaysBetween(from, to time.Time) int {
	// time.Duration は約 292 年で飽和するため Unix 秒で数える
	return int((Day(to).Unix() - Day(from).Unix()) / secondsPerDay)
}

// Format は日付を DD/MM/YYYY で返す。
func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}

// FormatPtr は nil を許容する Format。nil の場合は nil を返す。
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}

// Parse は DD/MM/YYYY または YYYY-MM-DD の日付を解釈する。
func Parse(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range []string{DisplayLayout, ISOLayout} {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ParseOptional は空文字を「期限なし」(nil) として扱う Parse。
func ParseOptional(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

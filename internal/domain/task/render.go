package task

import (
	"fmt"
	"strings"
	"time"

	"teamflow-tracker/internal/domain/calendar"
	"teamflow-tracker/internal/domain/member"
)

// Describe はタスクを複数行のテキストで表す。
//
//	Design Homepage - PENDING (OVERDUE)
//	Responsible: Ana Costa
//	Due: 24/10/2026
//	Priority: ★★
//
// responsible が nil の場合は担当者 ID を表示する。
func (t *Task) Describe(responsible *member.Member, today time.Time) string {
	status := t.Status.Label()
	if t.IsOverdue(today) {
		status += " (OVERDUE)"
	}

	who := t.ResponsibleID
	if responsible != nil {
		who = responsible.Name
	}

	due := "no due date"
	if t.DueDate != nil {
		due = calendar.Format(*t.DueDate)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", t.Title, status)
	fmt.Fprintf(&b, "Responsible: %s\n", who)
	fmt.Fprintf(&b, "Due: %s\n", due)
	fmt.Fprintf(&b, "Priority: %s", strings.Repeat("★", t.Priority))
	return b.String()
}

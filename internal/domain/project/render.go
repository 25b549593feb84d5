package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize/english"

	"teamflow-tracker/internal/domain/calendar"
)

// Describe はプロジェクトを複数行のテキストで表す。
//
//	Portal
//	Novo portal institucional
//	Due: 01/12/2026 (overdue: 3 days)
//	Members: 2, tasks: 5
func (p *Project) Describe(today time.Time) string {
	due := "no due date"
	if p.DueDate != nil {
		due = calendar.Format(*p.DueDate)
		if days := p.OverdueDays(today); days > 0 {
			due += fmt.Sprintf(" (overdue: %s)", english.Plural(days, "day", ""))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Name)
	fmt.Fprintf(&b, "%s\n", p.Description)
	fmt.Fprintf(&b, "Due: %s\n", due)
	fmt.Fprintf(&b, "Members: %d, tasks: %d", len(p.memberIDs), len(p.taskIDs))
	return b.String()
}

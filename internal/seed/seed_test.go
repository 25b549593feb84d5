package seed_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/multierr"

	"teamflow-tracker/internal/domain/calendar"
	"teamflow-tracker/internal/domain/project"
	"teamflow-tracker/internal/domain/task"
	memberinfra "teamflow-tracker/internal/infrastructure/member"
	projectinfra "teamflow-tracker/internal/infrastructure/project"
	taskinfra "teamflow-tracker/internal/infrastructure/task"
	"teamflow-tracker/internal/seed"
	"teamflow-tracker/internal/usecase/tracker"
)

func fixedNow() time.Time {
	return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
}

func newManager() *tracker.Manager {
	m := tracker.NewManager(
		projectinfra.NewMemoryProjectRepository(),
		memberinfra.NewMemoryMemberRepository(),
		taskinfra.NewMemoryTaskRepository(),
		nil,
	)
	m.Now = fixedNow
	return m
}

const portalYAML = `
members:
  - name: Carlos Silva
    role: Developer
  - name: Ana Costa
    role: Designer
    email: ana@empresa.com
projects:
  - name: Portal
    description: Novo portal institucional
    dueDate: 2026-10-14
    members: [Carlos Silva, Ana Costa]
    tasks:
      - title: Backend API
        responsible: Carlos Silva
        dueDate: 01/11/2026
        priority: 3
        status: doing
      - title: Design Homepage
        responsible: Ana Costa
        dueDate: 16/10/2026
        priority: 2
      - title: Docs
        responsible: Ana Costa
        status: done
`

func TestParseAndApply(t *testing.T) {
	doc, err := seed.Parse(strings.NewReader(portalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Members) != 2 || len(doc.Projects) != 1 || len(doc.Projects[0].Tasks) != 3 {
		t.Fatalf("unexpected document: %+v", doc)
	}

	m := newManager()
	ctx := context.Background()
	if err := seed.Apply(ctx, m, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report, err := m.ReportProject(ctx, "portal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Total != 3 || report.Pending != 1 || report.InProgress != 1 || report.Completed != 1 {
		t.Errorf("unexpected counts: %+v", report.Counts)
	}
	if report.Overdue != 1 {
		t.Errorf("expected 1 overdue task, got %d", report.Overdue)
	}
	if report.DaysOverdue != 3 {
		t.Errorf("expected daysOverdue 3, got %d", report.DaysOverdue)
	}
	if report.DueDate == nil || *report.DueDate != "14/10/2026" {
		t.Errorf("expected dueDate 14/10/2026, got %v", report.DueDate)
	}

	ana, err := m.ReportMember(ctx, "Ana Costa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ana.Email != "ana@empresa.com" || ana.Total != 2 || ana.Completed != 1 {
		t.Errorf("unexpected member report: %+v", ana)
	}
}

func TestApply_DuplicateTitlesKeepTheirOwnStatus(t *testing.T) {
	doc, err := seed.Parse(strings.NewReader(`
members:
  - name: Ana Costa
    role: Designer
projects:
  - name: Portal
    members: [Ana Costa]
    tasks:
      - title: Docs
        responsible: Ana Costa
      - title: docs
        responsible: Ana Costa
        status: done
      - title: DOCS
        responsible: Ana Costa
        status: doing
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := newManager()
	ctx := context.Background()
	if err := seed.Apply(ctx, m, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks, err := m.Tasks(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]task.TaskStatus{
		"Docs": task.StatusPending,
		"docs": task.StatusCompleted,
		"DOCS": task.StatusInProgress,
	}
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(tasks))
	}
	for _, tk := range tasks {
		if tk.Status != want[tk.Title] {
			t.Errorf("%s: expected %s, got %s", tk.Title, want[tk.Title], tk.Status)
		}
	}

	report, err := m.ReportProject(ctx, "Portal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Pending != 1 || report.InProgress != 1 || report.Completed != 1 {
		t.Errorf("unexpected counts: %+v", report.Counts)
	}
}

func TestParse_Empty(t *testing.T) {
	doc, err := seed.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Members) != 0 || len(doc.Projects) != 0 {
		t.Fatalf("expected empty document, got %+v", doc)
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := seed.Parse(strings.NewReader("members:\n  - name: Ana\n    age: 30\n"))
	if err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestApply_AggregatesErrors(t *testing.T) {
	doc, err := seed.Parse(strings.NewReader(`
members:
  - name: Ana Costa
    role: Designer
  - name: ana costa
    role: Duplicate
  - name: Outsider
    role: Ops
projects:
  - name: Portal
    dueDate: someday
  - name: Intranet
    members: [Ana Costa, Nobody]
    tasks:
      - title: Ok
        responsible: Ana Costa
      - title: Bad status
        responsible: Ana Costa
        status: urgent
      - title: Not a member
        responsible: Outsider
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := newManager()
	ctx := context.Background()
	err = seed.Apply(ctx, m, doc)

	errs := multierr.Errors(err)
	if len(errs) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(errs), err)
	}
	if !errors.Is(err, tracker.ErrMemberAlreadyExists) {
		t.Errorf("expected duplicate member error in %v", err)
	}
	if !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("expected invalid date error in %v", err)
	}
	if !errors.Is(err, tracker.ErrMemberNotFound) {
		t.Errorf("expected member not found error in %v", err)
	}
	if !errors.Is(err, project.ErrResponsibleNotMember) {
		t.Errorf("expected responsible not member error in %v", err)
	}

	// 成功したエントリは登録されている
	if _, ok := m.FindProject(ctx, "Portal"); ok {
		t.Errorf("expected Portal to be skipped")
	}
	report, err := m.ReportProject(ctx, "Intranet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Total != 1 || report.TotalMembers != 1 {
		t.Errorf("expected 1 task and 1 member, got %+v", report)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(portalYAML), 0o600); err != nil {
		t.Fatalf("failed to write seed: %v", err)
	}

	doc, err := seed.LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(doc.Projects))
	}

	if _, err := seed.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

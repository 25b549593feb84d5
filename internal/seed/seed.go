// Package seed は YAML で書かれた初期データを Manager 経由で登録する。
//
//	members:
//	  - name: Ana Costa
//	    role: Designer
//	projects:
//	  - name: Portal
//	    dueDate: 01/12/2026
//	    members: [Ana Costa]
//	    tasks:
//	      - title: Design Homepage
//	        responsible: Ana Costa
//	        priority: 2
//	        status: completed
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"teamflow-tracker/internal/domain/calendar"
	"teamflow-tracker/internal/domain/task"
	"teamflow-tracker/internal/usecase/tracker"
)

// Document は seed ファイル全体。
type Document struct {
	Members  []Member  `yaml:"members"`
	Projects []Project `yaml:"projects"`
}

// Member は登録するメンバー。
type Member struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Email string `yaml:"email"`
}

// Project は登録するプロジェクトと、その参加メンバー・タスク。
type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	DueDate     string   `yaml:"dueDate"`
	Members     []string `yaml:"members"`
	Tasks       []Task   `yaml:"tasks"`
}

// Task は登録するタスク。Status が空なら pending のまま。
type Task struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Responsible string `yaml:"responsible"`
	DueDate     string `yaml:"dueDate"`
	Priority    int    `yaml:"priority"`
	Status      string `yaml:"status"`
}

// Parse は YAML を読み込む。未知のキーはエラーにする。
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &doc, nil
}

// LoadFile はファイルから Document を読み込む。
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Apply は Document を Manager に登録する。
// 1 件の失敗で止めず、すべてのエントリを試したうえでエラーをまとめて返す。
// 作成に失敗したプロジェクトのメンバー・タスクはスキップする。
func Apply(ctx context.Context, m *tracker.Manager, doc *Document) error {
	var errs error

	for _, mem := range doc.Members {
		_, err := m.CreateMember(ctx, tracker.CreateMemberInput{
			Name:  mem.Name,
			Role:  mem.Role,
			Email: mem.Email,
		})
		errs = multierr.Append(errs, wrap("member", mem.Name, err))
	}

	for _, p := range doc.Projects {
		errs = multierr.Append(errs, applyProject(ctx, m, p))
	}

	return errs
}

func applyProject(ctx context.Context, m *tracker.Manager, p Project) error {
	dueDate, err := calendar.ParseOptional(p.DueDate)
	if err != nil {
		return wrap("project", p.Name, err)
	}

	if _, err := m.CreateProject(ctx, tracker.CreateProjectInput{
		Name:        p.Name,
		Description: p.Description,
		DueDate:     dueDate,
	}); err != nil {
		return wrap("project", p.Name, err)
	}

	var errs error
	for _, name := range p.Members {
		err := m.AddMemberToProject(ctx, p.Name, name)
		errs = multierr.Append(errs, wrap("project "+p.Name+" member", name, err))
	}
	for _, t := range p.Tasks {
		errs = multierr.Append(errs, wrap("project "+p.Name+" task", t.Title, applyTask(ctx, m, p.Name, t)))
	}
	return errs
}

func applyTask(ctx context.Context, m *tracker.Manager, projectName string, t Task) error {
	dueDate, err := calendar.ParseOptional(t.DueDate)
	if err != nil {
		return err
	}

	status := task.StatusPending
	if t.Status != "" {
		if status, err = task.ParseStatus(t.Status); err != nil {
			return err
		}
	}

	created, err := m.CreateTask(ctx, tracker.CreateTaskInput{
		ProjectName:     projectName,
		Title:           t.Title,
		Description:     t.Description,
		ResponsibleName: t.Responsible,
		DueDate:         dueDate,
		Priority:        t.Priority,
	})
	if err != nil {
		return err
	}

	if status == task.StatusPending {
		return nil
	}
	// タイトルは重複しうるので作成したタスクを ID で指定する
	return m.SetTaskStatus(ctx, created.ID, status)
}

func wrap(kind, name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %q: %w", kind, name, err)
}

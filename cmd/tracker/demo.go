package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"teamflow-tracker/internal/domain/member"
	"teamflow-tracker/internal/usecase/tracker"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in Portal scenario and print its reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			return runDemo(cmd.Context(), cmd.OutOrStdout(), a.manager)
		},
	}
}

// runDemo は 2 人のメンバーと 1 つのプロジェクトを登録し、
// Ana のタスクを完了させた後のレポートを出力する。
func runDemo(ctx context.Context, w io.Writer, m *tracker.Manager) error {
	carlos, err := m.CreateMember(ctx, tracker.CreateMemberInput{Name: "Carlos Silva", Role: "Developer", Email: "carlos@empresa.com"})
	if err != nil {
		return err
	}
	ana, err := m.CreateMember(ctx, tracker.CreateMemberInput{Name: "Ana Costa", Role: "Designer", Email: "ana@empresa.com"})
	if err != nil {
		return err
	}

	today := m.Now()
	projectDue := today.AddDate(0, 0, 30)
	portal, err := m.CreateProject(ctx, tracker.CreateProjectInput{
		Name:        "Portal",
		Description: "Novo portal institucional",
		DueDate:     &projectDue,
	})
	if err != nil {
		return err
	}

	for _, name := range []string{carlos.Name, ana.Name} {
		if err := m.AddMemberToProject(ctx, portal.Name, name); err != nil {
			return err
		}
	}

	backendDue := today.AddDate(0, 0, 15)
	designDue := today.AddDate(0, 0, 7)
	inputs := []tracker.CreateTaskInput{
		{ProjectName: portal.Name, Title: "Backend API", Description: "Endpoints REST do portal", ResponsibleName: carlos.Name, DueDate: &backendDue, Priority: 4},
		{ProjectName: portal.Name, Title: "Design Homepage", Description: "Layout da página principal", ResponsibleName: ana.Name, DueDate: &designDue, Priority: 3},
	}
	for _, in := range inputs {
		if _, err := m.CreateTask(ctx, in); err != nil {
			return err
		}
	}

	if err := m.CompleteTask(ctx, portal.Name, "Design Homepage"); err != nil {
		return err
	}

	fmt.Fprintln(w, portal.Describe(m.Now()))
	fmt.Fprintln(w)

	tasks, err := m.Tasks(ctx)
	if err != nil {
		return err
	}
	byID := map[string]*member.Member{carlos.ID: carlos, ana.ID: ana}
	for _, t := range tasks {
		fmt.Fprintln(w, t.Describe(byID[t.ResponsibleID], m.Now()))
		fmt.Fprintln(w)
	}

	projectReport, err := m.ReportProject(ctx, portal.Name)
	if err != nil {
		return err
	}
	memberReport, err := m.ReportMember(ctx, ana.Name)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "# project report")
	if err := writeReport(w, outputYAML, projectReport); err != nil {
		return err
	}
	fmt.Fprintln(w, "# member report")
	return writeReport(w, outputYAML, memberReport)
}

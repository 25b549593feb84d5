package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

func reportCmd() *cobra.Command {
	var (
		seedPath string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a project or member report from a seed file",
	}
	cmd.PersistentFlags().StringVar(&seedPath, "seed", "", "seed file (YAML)")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", outputYAML, "output format (yaml, json)")
	_ = cmd.MarkPersistentFlagRequired("seed")

	run := func(kind string) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if output != outputYAML && output != outputJSON {
				return fmt.Errorf("unsupported output format %q (yaml, json)", output)
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			if err := loadSeed(ctx, a.manager, seedPath); err != nil {
				return err
			}

			var report any
			switch kind {
			case "project":
				report, err = a.manager.ReportProject(ctx, args[0])
			default:
				report, err = a.manager.ReportMember(ctx, args[0])
			}
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), output, report)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "project NAME",
		Short: "Report task counts and overdue days of a project",
		Args:  cobra.ExactArgs(1),
		RunE:  run("project"),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "member NAME",
		Short: "Report task counts and projects of a member",
		Args:  cobra.ExactArgs(1),
		RunE:  run("member"),
	})

	return cmd
}

func writeReport(w io.Writer, format string, v any) error {
	if format == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

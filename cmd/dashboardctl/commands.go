package main

import (
	"github.com/spf13/cobra"

	"github.com/Axton-Industries/Nextgen-work/internal/layout"
	"github.com/Axton-Industries/Nextgen-work/internal/service"
)

func newWeeksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weeks",
		Short: "Resolve a time filter into the weeks a chart plots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := newFilterService().Weeks(filterQuery(cmd))
			if err != nil {
				return err
			}
			return render(cmd, resolved)
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func newMonthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "Print the month table of the 52-week school year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render(cmd, newFilterService().Calendar())
		},
	}
}

func newBubblesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bubbles",
		Short: "Pack the top error questions into the bubble chart layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadDataset(cmd)
			if err != nil {
				return err
			}
			return render(cmd, layout.QuestionBubbles(data.TopErrorQuestions(cmd.Context())))
		},
	}
}

func newStudentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student <name>",
		Short: "Compose one student's dashboard for a time filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := loadDataset(cmd)
			if err != nil {
				return err
			}
			state, err := newFilterService().Build(filterQuery(cmd))
			if err != nil {
				return err
			}
			dashboards := service.NewDashboardService(service.DashboardServiceParams{Dataset: data})
			view, _, err := dashboards.Student(cmd.Context(), args[0], state)
			if err != nil {
				return err
			}
			return render(cmd, view)
		},
	}
	addFilterFlags(cmd)
	return cmd
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Axton-Industries/Nextgen-work/internal/dto"
	"github.com/Axton-Industries/Nextgen-work/internal/repository"
	"github.com/Axton-Industries/Nextgen-work/internal/service"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dashboardctl",
		Short:         "Inspect classroom dashboard outputs offline",
		Long:          "dashboardctl resolves time filters and composes dashboard views from the dataset without running the API server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("dataset", "", "Path to a dataset YAML file (defaults to the embedded dataset)")
	root.PersistentFlags().StringP("output", "o", "json", "Output format: json or yaml")

	root.AddCommand(newWeeksCmd())
	root.AddCommand(newMonthsCmd())
	root.AddCommand(newBubblesCmd())
	root.AddCommand(newStudentCmd())
	return root
}

// loadDataset opens the --dataset file, or the embedded dataset when the flag is empty.
func loadDataset(cmd *cobra.Command) (*repository.DatasetRepository, error) {
	path, _ := cmd.Flags().GetString("dataset")
	return repository.NewDatasetRepository(path)
}

func newFilterService() *service.FilterService {
	return service.NewFilterService(service.FilterServiceConfig{}, zap.NewNop())
}

// addFilterFlags registers the time filter flags shared by several commands.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("filter", "", "Filter label, e.g. \"Last week\"")
	cmd.Flags().String("mode", "", "Filter mode: presets, months or weeks")
	cmd.Flags().Int("start-year", 0, "Range start year (-1 for a week of the current year)")
	cmd.Flags().Int("start-unit", 0, "Range start month (0-11) or week (1-52)")
	cmd.Flags().Int("end-year", 0, "Range end year")
	cmd.Flags().Int("end-unit", 0, "Range end month or week")
	cmd.Flags().Int("offset", 0, "Weeks pagination offset")
	cmd.Flags().Int("year", 0, "Year shown by the picker")
}

// filterQuery reads the filter flags. Range points are only set when their flags were given.
func filterQuery(cmd *cobra.Command) dto.FilterQuery {
	flags := cmd.Flags()
	var q dto.FilterQuery
	q.Filter, _ = flags.GetString("filter")
	q.Mode, _ = flags.GetString("mode")
	q.Offset, _ = flags.GetInt("offset")
	q.Year, _ = flags.GetInt("year")
	q.StartYear = optionalInt(cmd, "start-year")
	q.StartUnit = optionalInt(cmd, "start-unit")
	q.EndYear = optionalInt(cmd, "end-year")
	q.EndUnit = optionalInt(cmd, "end-unit")
	return q
}

func optionalInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

// render writes v in the --output format. YAML keeps the JSON field names.
func render(cmd *cobra.Command, v interface{}) error {
	format, _ := cmd.Flags().GetString("output")
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return writeJSON(out, v)
	case "yaml":
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic interface{}
		if err := json.Unmarshal(raw, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

func writeJSON(out io.Writer, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := out.Write(buf.Bytes())
	return err
}

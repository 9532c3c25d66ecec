package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
	"github.com/spektr-org/prototypes/helpers"
	"github.com/spektr-org/prototypes/prompts"
)

// listCmd prints every query name with its description.
func (a *app) listCmd() *cobra.Command {
	var dataset string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog()
			if err != nil {
				return err
			}
			queries := catalog.Queries()
			if dataset != "" {
				queries = catalog.Dataset(dataset)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, q := range queries {
				fmt.Fprintf(tw, "%s\t%s\n", q.FullName(), q.Description)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&dataset, "dataset", "", "only queries of this dataset")
	return cmd
}

// describeCmd prints the expected shape of every fixture file.
func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Describe the fixture file schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Encode(cmd.OutOrStdout(), datasets.Schemas, a.cfg.Format)
		},
	}
}

// runCmd executes queries and encodes their results.
func (a *app) runCmd() *cobra.Command {
	var (
		all     bool
		dataset string
	)
	cmd := &cobra.Command{
		Use:   "run [dataset.query...]",
		Short: "Run queries by name",
		Long: `Runs the named queries and prints one result per query, in the order given.

Examples:
  prototypes run cakes.totalInventory turing.curriculumPerTeacher
  prototypes run --dataset dinosaurs --format yaml
  prototypes run --all --format text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := a.catalog()
			if err != nil {
				return err
			}

			var queries []engine.Query
			switch {
			case all:
				queries = catalog.Queries()
			case dataset != "":
				queries = catalog.Dataset(dataset)
				if len(queries) == 0 {
					return fmt.Errorf("%w: no queries for dataset %q", engine.ErrUnknownQuery, dataset)
				}
			case len(args) > 0:
				if queries, err = catalog.Resolve(args...); err != nil {
					return err
				}
			default:
				return fmt.Errorf("name at least one query, or use --dataset or --all")
			}

			results, err := engine.ExecuteAll(cmd.Context(), queries,
				engine.WithLogger(a.logger),
				engine.WithParallelism(a.cfg.Parallelism))
			if err != nil {
				return err
			}
			return helpers.Encode(cmd.OutOrStdout(), results, a.cfg.Format)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "run every query")
	cmd.Flags().StringVar(&dataset, "dataset", "", "run every query of this dataset")
	return cmd
}

func (a *app) catalog() (*engine.Catalog, error) {
	set, err := a.loadSet()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("datasets loaded", zap.Any("records", set.Counts()))
	return prompts.New(set).Catalog(), nil
}

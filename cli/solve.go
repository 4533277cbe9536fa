package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"lp-solver/domain"
	"lp-solver/problemfile"
	"lp-solver/render"
	"lp-solver/service"
	"lp-solver/solver"
)

func solveCmd(root *rootFlags) *cobra.Command {
	var file string
	var asJSON bool
	var plain bool

	c := &cobra.Command{
		Use:   "solve",
		Short: "Solve a problem file and print the report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := root.load(cmd)
			if err != nil {
				return err
			}

			problem, err := problemfile.Load(file)
			if err != nil {
				return err
			}
			problem, err = service.Validate(problem)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			opts := solverOptions(cfg.Solver)
			report := solver.Solve(problem, opts)
			log.Debug("solve.done",
				"file", file,
				"status", report.Status,
				"vertices", len(report.Vertices),
			)

			theme := render.DefaultTheme()
			if plain {
				theme = render.PlainTheme()
			}
			return printReport(cmd.OutOrStdout(), report, asJSON, theme, opts.Precision)
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Problem file (YAML, required)")
	c.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	c.Flags().BoolVar(&plain, "plain", false, "Disable colors and borders")
	c.Flags().Bool("exclude-origin", false, "Drop (0,0) from the feasible vertices")

	_ = c.MarkFlagRequired("file")
	return c
}

func printReport(w io.Writer, r domain.Report, asJSON bool, theme render.Theme, precision int) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	_, err := io.WriteString(w, render.Report(r, theme, precision))
	return err
}

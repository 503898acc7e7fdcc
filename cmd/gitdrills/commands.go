package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/patrickwarner/gitdrills/internal/config"
	"github.com/patrickwarner/gitdrills/internal/fixtures"
	"github.com/patrickwarner/gitdrills/internal/sampleapp"
)

var (
	successColor     = color.New(color.FgGreen)
	clientErrorColor = color.New(color.FgYellow)
	serverErrorColor = color.New(color.FgRed)
)

func newRootCmd(cfg config.Config) *cobra.Command {
	var fixturesFile string

	root := &cobra.Command{
		Use:           "gitdrills",
		Short:         "Browse the canned responses used by the git practice drills",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&fixturesFile, "fixtures", cfg.FixturesFile, "fixtures file (default: embedded catalog)")

	load := func() (*fixtures.Catalog, error) {
		return fixtures.Load(fixturesFile)
	}

	root.AddCommand(
		newListCmd(load),
		newShowCmd(load),
		newCheckCmd(),
		newDivideCmd(),
	)
	return root
}

func newListCmd(load func() (*fixtures.Catalog, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list [drill]",
		Short: "List drills and their cases with status codes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := load()
			if err != nil {
				return err
			}
			drills := catalog.Drills()
			if len(args) == 1 {
				drills = args
			}
			out := cmd.OutOrStdout()
			for _, drill := range drills {
				cases, err := catalog.Cases(drill)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, drill)
				for _, name := range cases {
					resp, err := catalog.Lookup(drill, name)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "  %s  %s\n", statusColor(resp.Status).Sprint(resp.Status), name)
				}
			}
			return nil
		},
	}
}

func newShowCmd(load func() (*fixtures.Catalog, error)) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show <drill> <case>",
		Short: "Print one canned response",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := load()
			if err != nil {
				return err
			}
			resp, err := catalog.Lookup(args[0], args[1])
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), output, resp)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate fixtures files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				catalog, err := fixtures.Load(path)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", serverErrorColor.Sprint("FAIL"), err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d drills)\n", successColor.Sprint("ok"), path, len(catalog.Drills()))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d fixtures files invalid", failed, len(args))
			}
			return nil
		},
	}
}

func newDivideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divide <a> <b>",
		Short: "Divide two numbers with the sample app helper",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			b, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[1], err)
			}
			q, err := sampleapp.Divide(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(q, 'f', -1, 64))
			return nil
		},
	}
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		// Go through JSON so the flattened response shape is kept.
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func statusColor(status int) *color.Color {
	switch {
	case status >= 500:
		return serverErrorColor
	case status >= 400:
		return clientErrorColor
	default:
		return successColor
	}
}

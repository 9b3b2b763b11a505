package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	ae "github.com/KirkDiggler/arm5e-effects/internal/effects"
	effectsService "github.com/KirkDiggler/arm5e-effects/internal/services/effects"
)

func newSheetCmd(a *app) *cobra.Command {
	var (
		file       string
		actorsFile string
		privileged bool
	)

	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Show the owner's records grouped into temporary, passive and inactive effects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if file != "" {
				if err := a.loadRecords(ctx, file); err != nil {
					return err
				}
			}
			if actorsFile != "" {
				if _, err := a.loadActors(ctx, actorsFile); err != nil {
					return err
				}
			}

			out, err := a.provider.EffectsService.Sheet(ctx, &effectsService.SheetInput{
				OwnerID: a.owner,
				Viewer:  effectsService.Viewer{Privileged: privileged},
				Locale:  a.locale,
			})
			if err != nil {
				return err
			}
			printSheet(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file of records to load")
	cmd.Flags().StringVar(&actorsFile, "actors", "", "YAML file of entities records may come from")
	cmd.Flags().BoolVar(&privileged, "privileged", false, "view as a game master")
	return cmd
}

func newDescribeCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the description of every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if file != "" {
				if err := a.loadRecords(ctx, file); err != nil {
					return err
				}
			}

			recs, err := a.provider.RecordRepository.ListByOwner(ctx, a.owner)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, rec := range recs {
				fmt.Fprintf(w, "%s\n", rec.Name)
				printDescription(w, a.provider.EffectsService.Describe(rec, a.locale), "  ")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file of records to load")
	return cmd
}

func newFilterCmd(a *app) *cobra.Command {
	var (
		file  string
		input effectsService.FilterInput
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Select enabled records by type and subtype tags",
		Long: `Select enabled records by type and subtype tags and print them as JSON.

With both --type and --subtype only the changes carrying both tags are kept.
With one tag, --narrow keeps only the matching changes of each record.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if file != "" {
				if err := a.loadRecords(ctx, file); err != nil {
					return err
				}
			}

			input.OwnerID = a.owner
			recs, err := a.provider.EffectsService.Filter(ctx, &input)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(recs)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file of records to load")
	cmd.Flags().StringVar(&input.Type, "type", "", "effect type tag")
	cmd.Flags().StringVar(&input.Subtype, "subtype", "", "effect subtype tag")
	cmd.Flags().BoolVar(&input.Narrow, "narrow", false, "keep only the matching changes")
	return cmd
}

func printSheet(w io.Writer, out *effectsService.SheetOutput) {
	for i, cat := range out.Categories {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, cat.Label)
		for _, entry := range cat.Entries {
			fmt.Fprintf(w, "  %s", entry.DisplayName)
			if entry.Source != "" {
				fmt.Fprintf(w, " [%s]", entry.Source)
			}
			fmt.Fprintln(w)
			printDescription(w, entry.Description, "    ")
			for _, issue := range entry.Issues {
				fmt.Fprintf(w, "    ! %s\n", issue)
			}
		}
	}
}

func printDescription(w io.Writer, descr, indent string) {
	for _, line := range strings.Split(descr, ae.LineBreak) {
		if line != "" {
			fmt.Fprintf(w, "%s%s\n", indent, line)
		}
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLevelCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "level",
		Short: "Compute the level of a magical effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			effect, err := loadEffect(file)
			if err != nil {
				return err
			}

			lvl, err := a.provider.EffectsService.EffectLevel(effect)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if lvl.Ritual {
				fmt.Fprintf(w, "Level %d (ritual)\n", lvl.Level)
			} else {
				fmt.Fprintf(w, "Level %d\n", lvl.Level)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file of the effect")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newCastingCmd(a *app) *cobra.Command {
	var (
		file       string
		casterFile string
	)

	cmd := &cobra.Command{
		Use:   "casting",
		Short: "Compute the casting total of a magical effect for a caster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			effect, err := loadEffect(file)
			if err != nil {
				return err
			}
			casters, err := a.loadActors(ctx, casterFile)
			if err != nil {
				return err
			}
			caster := casters[0]

			total, err := a.provider.EffectsService.CastingTotal(ctx, caster.Ref().String(), effect)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", caster.Name, total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file of the effect")
	cmd.Flags().StringVar(&casterFile, "caster", "", "YAML file of the caster")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("caster")
	return cmd
}

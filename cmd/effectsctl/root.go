package main

import (
	"github.com/spf13/cobra"
)

const defaultOwner = "local"

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "effectsctl",
		Short: "Inspect Ars Magica active effects and magical effect levels",
		Long: `effectsctl classifies, filters and describes modifier records and computes
the level and casting total of magical effects.

Records are read from JSON files in the host document layout. When REDIS_URL
is set, loaded records are persisted and commands without --file read the
records already stored for --owner.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.locale, "locale", "", "display locale (defaults to EFFECTS_LOCALE)")
	root.PersistentFlags().StringVar(&a.owner, "owner", defaultOwner, "entity the records belong to")

	root.AddCommand(
		newSheetCmd(a),
		newDescribeCmd(a),
		newFilterCmd(a),
		newLevelCmd(a),
		newCastingCmd(a),
	)
	return root
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/oxidamotion/Tikauto/internal/config"
	"github.com/oxidamotion/Tikauto/internal/pipeline"
)

// Execute runs the tikauto root command: an interactive menu over the two
// run modes. There are no flags or subcommands; a run is driven entirely by
// typed input.
func Execute(version string) error {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	root := &cobra.Command{
		Use:   "tikauto",
		Short: "Stack pairs of videos vertically and split the result into chunks",
		Long: "Tikauto downloads pairs of videos, stacks each pair vertically\n" +
			"(top video's audio kept), and splits the composite into fixed-length\n" +
			"chunks inside a timestamped output directory.",
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner := pipeline.NewRunner(cfg)
			menu := NewMenu(cmd.InOrStdin(), cmd.OutOrStdout(), runner)
			return menu.Run(cmd.Context())
		},
	}

	return root.Execute()
}

package app

import (
	"github.com/spf13/cobra"

	"github.com/skumap/skumap/cmd/skumap/cmd/analyze"
	"github.com/skumap/skumap/cmd/skumap/cmd/genimport"
	"github.com/skumap/skumap/cmd/skumap/cmd/prep"
	"github.com/skumap/skumap/cmd/skumap/cmd/reconcile"
)

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Pipeline commands
	rootCmd.AddCommand(prep.NewCommand(a))
	rootCmd.AddCommand(reconcile.NewCommand(a))

	// Analysis commands
	rootCmd.AddCommand(analyze.NewCommand(a))
	rootCmd.AddCommand(genimport.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.newVersionCommand())
}

// newVersionCommand creates the version command.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("skumap %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/jamesbehr/relink/filesystem"
	"github.com/jamesbehr/relink/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbosity int

var rootCmd = &cobra.Command{
	Use:   "relink",
	Short: "Create and remove directory entries",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbosity)
		log.Debug().Str("command", cmd.Name()).Msg("command started")
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v info, -vv debug, -vvv trace)")
	rootCmd.AddCommand(lnCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(unlinkCmd)
}

// Execute runs the command selected by argv. When the binary is installed
// as ln, link or unlink (hard links to itself), argv[0] picks the
// subcommand directly.
func Execute() {
	switch name := filesystem.Path(os.Args[0]).Basename(); name {
	case "ln", "link", "unlink":
		rootCmd.SetArgs(append([]string{name}, os.Args[1:]...))
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

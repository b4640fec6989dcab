package cmd

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/jamesbehr/relink/filesystem"
	"github.com/jamesbehr/relink/linker"
	"github.com/spf13/cobra"
)

var lnFlags struct {
	force       bool
	interactive bool
	symbolic    bool
	logical     bool
	physical    bool
}

func confirmReplace(prompt string) (bool, error) {
	var ok bool
	err := survey.AskOne(&survey.Confirm{Message: prompt}, &ok)
	if err != nil {
		return false, err
	}

	return ok, nil
}

var lnCmd = &cobra.Command{
	Use:   "ln [-f | -i] [-L | -P] [-s] source... target",
	Short: "Create hard or symbolic links",
	Long: `Create hard or symbolic links. With two operands, target is the link to
create. When the final operand is a directory, a link to every other
operand is created inside it, named after the operand's basename. Every
operand is attempted even when an earlier one fails; the exit status is
nonzero if any of them failed.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := linker.Options{
			RemoveDestination: lnFlags.force,
			Interactive:       lnFlags.interactive && !lnFlags.force,
			FollowSource:      lnFlags.logical && !lnFlags.physical,
			Symbolic:          lnFlags.symbolic,
		}

		l := linker.New(filesystem.NewOS(), opts, confirmReplace)
		return l.Run(args)
	},
}

func init() {
	lnCmd.Flags().BoolVarP(&lnFlags.force, "force", "f", false, "remove an existing destination (overrides -i)")
	lnCmd.Flags().BoolVarP(&lnFlags.interactive, "interactive", "i", false, "prompt before removing an existing destination")
	lnCmd.Flags().BoolVarP(&lnFlags.symbolic, "symbolic", "s", false, "create symbolic links instead of hard links")
	lnCmd.Flags().BoolVarP(&lnFlags.logical, "logical", "L", false, "hard-link to the file a symlink source points to")
	lnCmd.Flags().BoolVarP(&lnFlags.physical, "physical", "P", false, "hard-link to a symlink source itself (default, overrides -L)")
}

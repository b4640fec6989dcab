package cmd

import (
	"errors"
	"fmt"

	"github.com/jamesbehr/relink/filesystem"
	"github.com/spf13/cobra"
)

var unlinkCmd = &cobra.Command{
	Use:   "unlink path",
	Short: "Remove a single directory entry",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("must have exactly one file operand")
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := filesystem.NewOS().Remove(args[0]); err != nil {
			return fmt.Errorf("failed to unlink: %s: %w", args[0], err)
		}

		return nil
	},
}

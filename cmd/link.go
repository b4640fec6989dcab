package cmd

import (
	"errors"
	"fmt"

	"github.com/jamesbehr/relink/filesystem"
	"github.com/spf13/cobra"
)

var linkCmd = &cobra.Command{
	Use:   "link source destination",
	Short: "Create a single hard link",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("must have exactly two file operands")
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := filesystem.NewOS().Link(args[0], args[1]); err != nil {
			return fmt.Errorf("failed to create link: '%s' - '%s': %w", args[0], args[1], err)
		}

		return nil
	},
}

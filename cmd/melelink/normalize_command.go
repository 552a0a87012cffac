package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"melelink/internal/hawaiian"
)

func newNormalizeCommand() *cobra.Command {
	var composer bool

	cmd := &cobra.Command{
		Use:   "normalize <text>...",
		Short: "Print the normalized comparison form of a title or name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalizer := hawaiian.New()
			text := strings.Join(args, " ")
			if composer {
				fmt.Println(normalizer.NormalizeComposer(text))
			} else {
				fmt.Println(normalizer.NormalizeText(text))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&composer, "composer", false, "Apply composer-name alias expansion")
	return cmd
}

func newVariantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variants <text>...",
		Short: "Print the search variants of a title for index population",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			normalizer := hawaiian.New()
			for _, variant := range normalizer.SearchVariants(strings.Join(args, " ")) {
				fmt.Println(variant)
			}
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

func newBitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bits [flags] value",
		Short: "Show the bytes, nibbles and bits of a value.",
		Long: `Parse a value in the --from base and print its little-endian bytes,
its nibbles (most significant first) and its two's complement bits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			it, err := lookupType(cfg.Type)
			if err != nil {
				return err
			}
			return it.bits(cmd.OutOrStdout(), args[0], cfg.From)
		},
	}
}

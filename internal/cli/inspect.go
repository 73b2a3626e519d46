package cli

import (
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	inspectCmd := &cobra.Command{
		Use:   "inspect [flags] value",
		Short: "Show a value in every prefixed base.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			it, err := lookupType(cfg.Type)
			if err != nil {
				return err
			}
			return it.inspect(cmd.OutOrStdout(), args[0], cfg.From, getFlag(cmd, "dump"))
		},
	}
	inspectCmd.Flags().Bool("dump", false, "dump the internal structure of the value")
	return inspectCmd
}

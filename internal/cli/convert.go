package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newConvertCmd() *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert [flags] [value...]",
		Short: "Convert values from one base to another.",
		Long: `Parse each value in the --from base and print it in the --to base.
If no values are given and stdin is not a terminal, values are read from
stdin, one per line. Values that fail to parse are reported, and the command
fails once every value has been processed.`,
		RunE: runConvert,
	}

	convertCmd.Flags().Int("to", 16, "base of the output values")
	convertCmd.Flags().Int("pad", 0, "left-pad digits with zeros to this width")
	convertCmd.Flags().Int("pad-every", 0, "left-pad digits with zeros to a multiple of this width")
	convertCmd.Flags().Int("split", 0, "group digits from the right into chunks of this size")
	convertCmd.Flags().Bool("prefix", false, "include the 0b, 0o or 0x prefix where the base has one")
	convertCmd.Flags().Bool("lower", false, "use lowercase letter digits")
	convertCmd.Flags().String("sep", "", "print all results on one line, joined by this separator")

	return convertCmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	it, err := lookupType(cfg.Type)
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		in := cmd.InOrStdin()
		if isTerminal(in) {
			return errors.New("no values given")
		}
		if inputs, err = readLines(in); err != nil {
			return err
		}
	}

	var (
		w       = cmd.OutOrStdout()
		st      = cfg.RadixStyle()
		joined  = cmd.Flags().Changed("sep")
		outputs []string
		failed  int
	)

	for _, in := range inputs {
		out, err := it.convert(in, cfg.From, cfg.To, st)
		if err != nil {
			log.Error(err)
			failed++
			continue
		}
		log.Debugf("%s (base %d) -> %s (base %d)", in, cfg.From, out, cfg.To)

		if joined {
			outputs = append(outputs, out)
		} else {
			fmt.Fprintln(w, out)
		}
	}
	if joined {
		fmt.Fprintln(w, strings.Join(outputs, getString(cmd, "sep")))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d values could not be converted", failed, len(inputs))
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readLines returns the non-blank lines of r with surrounding whitespace
// removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scn := bufio.NewScanner(r)
	for scn.Scan() {
		if line := strings.TrimSpace(scn.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scn.Err()
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clarete/parsec"
)

// checkOne tries a single demo grammar against source, reporting
// whether it consumed the whole input.
func checkOne[A any](name string, p parsec.Parser[rune, A], source string, opts parsec.Options) (bool, parsec.ParseError) {
	reply := parsec.Parse(p, parsec.FromString(source), opts)
	return reply.IsOk(), reply.Err()
}

func newCheckCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a file (or stdin) against the built-in demo grammars",
		Long: `Try every built-in demo grammar (arith, strings, list) against a file
(or stdin, when no file argument is given, in the same style as
"sai fmt"), printing which ones parsed it and failing with a
non-zero exit status if none did.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			var file string
			if len(args) == 1 {
				file = args[0]
			}
			source, err := readSource(file)
			if err != nil {
				return err
			}
			opts := cfg.ToOptions(file)

			okArith, errArith := checkOne("arith", ArithGrammar(), source, opts)
			okStrings, errStrings := checkOne("strings", StringListGrammar(), source, opts)
			okList, errList := checkOne("list", ListGrammar(), source, opts)

			if okArith || okStrings || okList {
				if okArith {
					fmt.Println("ok: arith")
				}
				if okStrings {
					fmt.Println("ok: strings")
				}
				if okList {
					fmt.Println("ok: list")
				}
				return nil
			}

			fmt.Fprintln(os.Stderr, "arith:", errArith.Render())
			fmt.Fprintln(os.Stderr, "strings:", errStrings.Render())
			fmt.Fprintln(os.Stderr, "list:", errList.Render())
			return fmt.Errorf("check: no demo grammar matched")
		},
	}

	cmd.Flags().StringVar(&configPath, "config", ".parsec.toml", "path to a config file")

	return cmd
}

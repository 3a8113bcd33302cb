package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/clarete/parsec"
)

func readSource(file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

func newEvalCmd() *cobra.Command {
	var file string
	var configPath string

	cmd := &cobra.Command{
		Use:   "eval <grammar>",
		Short: "Evaluate stdin (or a file) against a built-in demo grammar",
		Long: `Evaluate stdin, or a file given with -f, against one of the built-in
demo grammars and print the parsed result.

Grammars: arith (an arithmetic expression), strings (a bracketed list
of quoted strings), list (a parenthesized list of atoms).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			source, err := readSource(file)
			if err != nil {
				return err
			}
			opts := cfg.ToOptions(file)

			switch grammar := args[0]; grammar {
			case "arith":
				reply := parsec.Parse(ArithGrammar(), parsec.FromString(source), opts)
				if !reply.IsOk() {
					return fmt.Errorf("eval: %w", reply.Err())
				}
				fmt.Println(reply.Value())
			case "strings":
				reply := parsec.Parse(StringListGrammar(), parsec.FromString(source), opts)
				if !reply.IsOk() {
					return fmt.Errorf("eval: %w", reply.Err())
				}
				fmt.Println(reply.Value())
			case "list":
				reply := parsec.Parse(ListGrammar(), parsec.FromString(source), opts)
				if !reply.IsOk() {
					return fmt.Errorf("eval: %w", reply.Err())
				}
				fmt.Println(reply.Value())
			default:
				return fmt.Errorf("eval: unknown grammar %q (want arith, strings or list)", grammar)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from file instead of stdin")
	cmd.Flags().StringVar(&configPath, "config", ".parsec.toml", "path to a config file")

	return cmd
}

// Command vertexdb runs a single statement against a Badger-backed
// store and prints the result as a table with space-aligned columns.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/krotik/vertexdb/config"
	"github.com/krotik/vertexdb/kvstore"
	"github.com/krotik/vertexdb/parser"
	"github.com/krotik/vertexdb/query"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "vertexdb <statement>",
		Short: "Run one statement against a vertexdb store",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	rootCmd.Flags().StringVar(&configFile, "data", "vertexdb.config.json", "path to the config file (created with defaults if absent)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := config.LoadConfigFile(configFile); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	kv, err := kvstore.OpenBadgerStore(kvstore.BadgerOptions{
		DataDir:  config.Str(config.DataDir),
		ReadOnly: config.Bool(config.ReadOnly),
	})
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer kv.Close()

	exec := query.New(kv)

	stmt, err := parser.ParseOne(args[0])
	if err != nil {
		return err
	}

	res, err := exec.Execute(stmt)
	if err != nil {
		return err
	}

	return printResult(res)
}

func printResult(res *query.Result) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	for i, col := range res.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)

	for {
		row, ok, err := res.Rows()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"edascope/internal/analysis"
	"edascope/internal/dataset"
	"edascope/internal/render"
)

var (
	ovSep      string
	ovEncoding string
)

var overviewCmd = &cobra.Command{
	Use:   "overview <file>",
	Short: "Print dataset shape and per-column summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		sepFlag := ovSep
		if !cmd.Flags().Changed("sep") {
			sepFlag = c.Separator
		}
		sep, err := parseSeparator(sepFlag)
		if err != nil {
			return err
		}
		enc := ovEncoding
		if !cmd.Flags().Changed("encoding") {
			enc = c.Encoding
		}

		ds, err := dataset.Load(args[0], dataset.LoadOptions{Separator: sep, Encoding: enc})
		if err != nil {
			return err
		}
		sum := analysis.Summarize(ds)
		fmt.Printf("Rows: %d\n", sum.NRows)
		fmt.Printf("Columns: %d\n\n", sum.NCols)
		fmt.Print(render.OverviewTable(sum))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(overviewCmd)
	overviewCmd.Flags().StringVar(&ovSep, "sep", ",", "field separator: ','|';'|'tab'|'|'")
	overviewCmd.Flags().StringVar(&ovEncoding, "encoding", "utf-8", "text encoding (IANA name)")
}

package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/rockstardevs/goofx/v2"
)

func NewHeaderCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "header <file>",
		Short: "Show the dialect and header fields of an OFX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(args[0], cfg.Input.Charset)
			if err != nil {
				return err
			}
			header, err := goofx.InspectHeader(text)
			if err != nil {
				return err
			}
			pterm.Info.Printf("%s: %s dialect\n", args[0], header.Dialect)
			if len(header.Fields) == 0 {
				return nil
			}
			tableData := pterm.TableData{{"Field", "Value"}}
			for _, f := range header.Fields {
				tableData = append(tableData, []string{f.Key, f.Value})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
		},
	}
}

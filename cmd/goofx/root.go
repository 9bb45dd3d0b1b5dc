package main

import (
	"flag"
	"os"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the goofx command and exits non-zero on failure.
func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := NewRootCmd().Execute(); err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

// NewRootCmd returns the goofx command tree.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		cfg     = NewDefaultConfig()
	)

	rootCmd := &cobra.Command{
		Use:           "goofx",
		Short:         "goofx parses OFX statement files",
		Long:          `goofx parses OFX statement files in either the legacy SGML or the XML dialect.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its flags from the standard flag set.
			if err := flag.CommandLine.Parse(nil); err != nil {
				return err
			}
			loaded, err := loadConfig(viper.New(), cfgFile)
			if err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(NewShowCmd(cfg))
	rootCmd.AddCommand(NewHeaderCmd(cfg))
	return rootCmd
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

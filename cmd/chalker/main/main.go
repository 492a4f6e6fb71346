package main

import (
	"os"

	"github.com/arthur-debert/chalker/cmd/chalker"
	"github.com/pterm/pterm"
)

func main() {
	rootCmd := chalker.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err.Error())
		if hint := chalker.ErrorHint(err); hint != "" {
			pterm.Info.WithWriter(os.Stderr).Println(hint)
		}
		os.Exit(1)
	}
}

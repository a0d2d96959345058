package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/constraint"
)

var translateMemo string

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Show the constraints translated from a client memo",
	RunE: func(cmd *cobra.Command, _ []string) error {
		memoPath := firstNonEmpty(translateMemo, cfg.Input.Memo)

		memoText, err := readText(memoPath)
		if err != nil {
			return eris.Wrap(err, "translate: load memo")
		}

		cs := constraint.Translate(memoText)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cs)
	},
}

func init() {
	translateCmd.Flags().StringVar(&translateMemo, "memo", "", "client memo path (default from config)")
	rootCmd.AddCommand(translateCmd)
}

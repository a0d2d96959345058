package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/lexicon"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/loader"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/sentiment"
)

var (
	sentimentCompanies string
	sentimentNews      string
	sentimentLexicon   string
)

var sentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Show per-company news sentiment",
	RunE: func(cmd *cobra.Command, _ []string) error {
		companiesPath := firstNonEmpty(sentimentCompanies, cfg.Input.Companies)
		newsPath := firstNonEmpty(sentimentNews, cfg.Input.News)
		lexiconPath := firstNonEmpty(sentimentLexicon, cfg.Input.Lexicon)

		rows, err := loader.ReadRows(companiesPath)
		if err != nil {
			return eris.Wrap(err, "sentiment: load companies")
		}
		cleaned, err := loader.Clean(rows)
		if err != nil {
			return eris.Wrap(err, "sentiment: clean companies")
		}

		newsText, err := readText(newsPath)
		if err != nil {
			return eris.Wrap(err, "sentiment: load news")
		}

		lex, err := lexicon.Load(lexiconPath)
		if err != nil {
			return eris.Wrap(err, "sentiment: load lexicon")
		}

		results := sentiment.NewExtractor(lex).Extract(newsText, cleaned.Names())

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	},
}

func init() {
	f := sentimentCmd.Flags()
	f.StringVar(&sentimentCompanies, "companies", "", "company table path (default from config)")
	f.StringVar(&sentimentNews, "news", "", "news text path (default from config)")
	f.StringVar(&sentimentLexicon, "lexicon", "", "keyword lexicon path (default from config)")
	rootCmd.AddCommand(sentimentCmd)
}

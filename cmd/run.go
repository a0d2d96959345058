package main

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/lexicon"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/loader"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/pipeline"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/report"
	"github.com/lembzg/Infrastructure-Allocation-Agent/internal/scorer"
)

var (
	runCompanies string
	runNews      string
	runMemo      string
	runLexicon   string
	runOutput    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full allocation pipeline",
	Long: `Runs the scoring pipeline over one input set and emits a JSON report.

Inputs:
  - a company table (CSV or XLSX) with financial/risk fields
  - a news file with blank-line-separated blocks per company
  - a free-text client memo
  - a keyword lexicon (YAML or JSON) with positive/negative/uncertainty sets

Examples:
  # Default paths from config
  allocation-agent run

  # Explicit inputs, report to file
  allocation-agent run --companies data/companies.csv --news data/news.txt \
    --memo data/client_memo.txt --lexicon keywords.yaml --output report.json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		start := time.Now()

		companiesPath := firstNonEmpty(runCompanies, cfg.Input.Companies)
		newsPath := firstNonEmpty(runNews, cfg.Input.News)
		memoPath := firstNonEmpty(runMemo, cfg.Input.Memo)
		lexiconPath := firstNonEmpty(runLexicon, cfg.Input.Lexicon)
		outputPath := firstNonEmpty(runOutput, cfg.Output.Path)

		// The three inputs plus the lexicon are independent files; load them
		// concurrently. All are fully materialized before scoring begins.
		var (
			rows     []loader.Row
			newsText string
			memoText string
			lex      lexicon.Lexicon
		)

		var g errgroup.Group
		g.Go(func() error {
			var err error
			rows, err = loader.ReadRows(companiesPath)
			return eris.Wrap(err, "run: load companies")
		})
		g.Go(func() error {
			var err error
			newsText, err = readText(newsPath)
			return eris.Wrap(err, "run: load news")
		})
		g.Go(func() error {
			var err error
			memoText, err = readText(memoPath)
			return eris.Wrap(err, "run: load memo")
		})
		g.Go(func() error {
			var err error
			lex, err = lexicon.Load(lexiconPath)
			return eris.Wrap(err, "run: load lexicon")
		})
		if err := g.Wait(); err != nil {
			return err
		}

		zap.L().Info("run: inputs loaded",
			zap.Int("rows", len(rows)),
			zap.Int("news_bytes", len(newsText)),
			zap.Int("memo_bytes", len(memoText)),
		)

		res, err := pipeline.Run(pipeline.Inputs{
			Rows:    rows,
			News:    newsText,
			Memo:    memoText,
			Lexicon: lex,
		}, scorer.DefaultParams())
		if err != nil {
			return eris.Wrap(err, "run: pipeline")
		}

		rep := report.Build(res, scorer.DefaultParams(), time.Since(start))

		if err := writeReport(rep, outputPath); err != nil {
			return err
		}

		names := make([]string, len(rep.FinalRanking))
		for i, rc := range rep.FinalRanking {
			names[i] = rc.Name
		}
		zap.L().Info("run: complete",
			zap.String("recommended", rep.RecommendedCompany),
			zap.Float64("confidence", rep.ConfidenceScore),
			zap.String("ranking", strings.Join(names, " > ")),
		)

		return nil
	},
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runCompanies, "companies", "", "company table path, CSV or XLSX (default from config)")
	f.StringVar(&runNews, "news", "", "news text path (default from config)")
	f.StringVar(&runMemo, "memo", "", "client memo path (default from config)")
	f.StringVar(&runLexicon, "lexicon", "", "keyword lexicon path (default from config)")
	f.StringVar(&runOutput, "output", "", "report output path (default: stdout)")
	rootCmd.AddCommand(runCmd)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeReport(rep *report.Report, path string) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrap(err, "run: create output file")
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	if cfg.Output.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rep); err != nil {
		return eris.Wrap(err, "run: encode report")
	}
	return nil
}

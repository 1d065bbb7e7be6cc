// Command report generates a financial report offline: it reads a classified
// transaction list from a JSON file and writes the report JSON to stdout.
package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/NIgan1989/finsights-engine/pkg/core/category"
	"github.com/NIgan1989/finsights-engine/pkg/core/report"
	"github.com/NIgan1989/finsights-engine/pkg/core/validate"
	"github.com/NIgan1989/finsights-engine/pkg/logger"
	"github.com/NIgan1989/finsights-engine/pkg/models"
)

func main() {
	godotenv.Load()
	log := logger.New()

	input := flag.String("input", "", "path to a JSON file containing a classified transaction array")
	tablePath := flag.String("categories", "", "optional category table YAML override")
	assumptionsPath := flag.String("assumptions", "", "optional engine assumptions HJSON override")
	check := flag.Bool("check", false, "run linkage checks and report them on stderr")
	flag.Parse()

	if *input == "" {
		log.Fatal().Msg("missing -input path")
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		log.Fatal().Err(err).Str("path", *input).Msg("failed to read input")
	}

	var txs []models.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		log.Fatal().Err(err).Msg("failed to parse transactions")
	}

	table := category.Default()
	if *tablePath != "" {
		if table, err = category.LoadFile(*tablePath); err != nil {
			log.Fatal().Err(err).Msg("failed to load category table")
		}
	}

	assumptions := report.DefaultAssumptions()
	if *assumptionsPath != "" {
		if assumptions, err = report.LoadAssumptions(*assumptionsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load assumptions")
		}
	}

	engine := report.NewEngineWith(table, assumptions)
	result := engine.Generate(txs)

	if *check {
		linkage := validate.CheckReport(&result, 0.01)
		if linkage.AllPassed {
			log.Info().Msg("linkage checks passed")
		} else {
			log.Warn().Strs("failed", linkage.FailedChecks).Msg("linkage checks failed")
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("failed to encode report")
	}
}

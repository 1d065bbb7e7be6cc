package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	apireport "github.com/NIgan1989/finsights-engine/pkg/api/report"
	"github.com/NIgan1989/finsights-engine/pkg/core/category"
	"github.com/NIgan1989/finsights-engine/pkg/core/classify"
	"github.com/NIgan1989/finsights-engine/pkg/core/report"
	"github.com/NIgan1989/finsights-engine/pkg/core/store"
	"github.com/NIgan1989/finsights-engine/pkg/logger"
)

func main() {
	godotenv.Load()
	log := logger.New()

	// Category table: compiled-in defaults unless a YAML override is given.
	table := category.Default()
	if path := os.Getenv("CATEGORY_TABLE_PATH"); path != "" {
		loaded, err := category.LoadFile(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to load category table")
		}
		table = loaded
		log.Info().Str("path", path).Msg("category table loaded")
	}

	// Engine assumptions: named proxy ratios, overridable from HJSON.
	assumptions := report.DefaultAssumptions()
	if path := os.Getenv("ASSUMPTIONS_PATH"); path != "" {
		loaded, err := report.LoadAssumptions(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to load assumptions")
		}
		assumptions = loaded
		log.Info().Str("path", path).Msg("engine assumptions loaded")
	}

	engine := report.NewEngineWith(table, assumptions)

	// Persistence is optional: without DATABASE_URL the API still serves
	// generation, it just cannot store results.
	var repo *store.ReportRepo
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database")
		}
		defer store.Close()
		repo = store.NewReportRepo()
		log.Info().Msg("report persistence enabled")
	} else {
		log.Warn().Msg("DATABASE_URL not set, report persistence disabled")
	}

	// Classifier: rules file when configured, Gemini when an API key exists.
	var classifier classify.Classifier
	if path := os.Getenv("CLASSIFIER_RULES_PATH"); path != "" {
		rules, err := classify.LoadRulesClassifier(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to load classifier rules")
		}
		classifier = rules
		log.Info().Str("path", path).Msg("rules classifier loaded")
	} else if os.Getenv("GEMINI_API_KEY") != "" {
		classifier = &classify.GeminiClassifier{Model: os.Getenv("GEMINI_MODEL")}
		log.Info().Msg("gemini classifier enabled")
	}

	handler := apireport.NewHandler(engine, repo, classifier, log)
	http.HandleFunc("/api/reports", handler.HandleGenerate)
	http.HandleFunc("/api/reports/get", handler.HandleGet)
	http.HandleFunc("/api/classify", handler.HandleClassify)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	log.Info().Str("addr", addr).Msg("API server starting")
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}

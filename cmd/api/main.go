package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"basket-insights-go/internal/basket"
	"basket-insights-go/internal/dataset"
	"basket-insights-go/internal/logger"
	"basket-insights-go/internal/store"
	"basket-insights-go/internal/taxonomy"
	"basket-insights-go/internal/types"
)

const maxBodyBytes = 16 << 20

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "basket-insights-go").Info("starting service")

	engine := basket.New(basket.DefaultConfig(), taxonomy.Keyword())

	// demo dataset: remote transactions API wins over a local export
	demoRecords := loadDemoRecords(log)

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// analyze endpoint: POST a transaction set, get the full analysis back
	mux.HandleFunc("/analyze", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "analyze")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			reqLog.WithError(err).Warn("failed to read body")
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}
		raw, err := store.DecodeTransactions(body)
		if err != nil {
			reqLog.WithError(err).Warn("invalid transactions payload")
			http.Error(w, "invalid transactions payload", http.StatusBadRequest)
			return
		}
		start := time.Now()
		analysis := engine.Analyze(basket.Normalize(raw))
		reqLog.WithFields(logrus.Fields{
			"duration_ms":     time.Since(start).Milliseconds(),
			"transactions":    analysis.TotalTransactions,
			"recommendations": len(analysis.Recommendations),
		}).Info("analysis served")
		writeJSON(w, analysis, reqLog)
	})

	// demo endpoint (analyze the dataset loaded at startup)
	mux.HandleFunc("/demo", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "demo")
		reqLog.Info("demo invoked")
		if len(demoRecords) == 0 {
			http.Error(w, "no demo dataset loaded", http.StatusNotFound)
			return
		}
		analysis := engine.Analyze(basket.Normalize(demoRecords))
		writeJSON(w, analysis, reqLog)
	})

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func loadDemoRecords(log *logger.Logger) []types.RawTransaction {
	if url := os.Getenv("TRANSACTIONS_URL"); url != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		records, err := store.FetchTransactions(ctx, url)
		if err != nil {
			log.WithError(err).Warn("remote transactions unavailable, demo disabled")
			return nil
		}
		log.WithField("records", len(records)).Info("demo transactions fetched")
		return records
	}
	dataPath := envOr("DATASET_PATH", "transactions.xlsx")
	records, err := dataset.Load(dataPath)
	if err != nil {
		log.WithError(err).WithField("dataset_path", dataPath).Warn("no demo dataset loaded")
		return nil
	}
	log.WithField("records", len(records)).Info("demo dataset loaded")
	return records
}

func writeJSON(w http.ResponseWriter, v any, log *logrus.Entry) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

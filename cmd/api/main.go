package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"call-retrieval-go/internal/dataset"
	"call-retrieval-go/internal/logger"
	"call-retrieval-go/internal/resolver"
	"call-retrieval-go/internal/server"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "call-retrieval-go").Info("starting service")

	dataPath := envOr("DATASET_PATH", "call_data.csv")
	log.WithField("dataset_path", dataPath).Info("loading call dataset")
	ds, err := dataset.LoadWithRetry(dataPath, 10*time.Second)
	if err != nil {
		// serve 503 per request instead of refusing to start
		log.WithError(err).Warn("dataset load failed, starting with empty snapshot")
	}
	log.WithField("total_calls", ds.Len()).Info("dataset snapshot ready")

	stats := resolver.Summarize(ds)
	log.WithField("sentiments", len(stats.BySentiment)).
		WithField("top_themes", stats.TopThemes).
		Info("dataset summary")

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		log.Warn("API_KEY not set, authentication disabled")
	}

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.New(ds, stats, apiKey),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

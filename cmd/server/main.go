package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plantsight/plantsight-api/internal/archive"
	"github.com/plantsight/plantsight-api/internal/catalog"
	"github.com/plantsight/plantsight-api/internal/config"
	"github.com/plantsight/plantsight-api/internal/gate"
	"github.com/plantsight/plantsight-api/internal/handlers"
	"github.com/plantsight/plantsight-api/internal/logger"
	"github.com/plantsight/plantsight-api/internal/model"
)

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	cat := catalog.Load(cfg.Catalog.Path)
	if cat.IsBuiltin() {
		log.Warn("catalog resource unavailable, using builtin table", map[string]interface{}{
			"path":    cfg.Catalog.Path,
			"entries": cat.Len(),
		})
	} else {
		log.Info("catalog loaded", map[string]interface{}{
			"path":    cfg.Catalog.Path,
			"entries": cat.Len(),
		})
	}

	// An absent model artifact is the one fatal startup condition.
	classifier, err := model.NewServer(cfg.Model.Path, cfg.Model.MetadataPath, cfg.Model.TopK)
	if err != nil {
		log.WithError(err).Error("failed to initialize model server", map[string]interface{}{
			"modelPath": cfg.Model.Path,
		})
		os.Exit(1)
	}
	defer classifier.Close()

	g := gate.New(cat, gate.Options{
		Threshold: cfg.Gate.Threshold,
		Keywords:  cfg.Gate.CropKeywords,
	})

	store := archive.NewStore(cfg.Archive.Dir)

	handler := handlers.NewHandler(classifier, g, store, cat.Len(), log)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", enableCORS(handler.Health))
	mux.HandleFunc("/predict", enableCORS(handler.Predict))
	mux.HandleFunc("/predict/image", enableCORS(handler.PredictFromImage))
	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("server starting", map[string]interface{}{
		"addr":      addr,
		"model":     cfg.Model.Path,
		"topK":      cfg.Model.TopK,
		"threshold": cfg.Gate.Threshold,
	})

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.WithError(err).Error("server failed", nil)
		os.Exit(1)
	}
}

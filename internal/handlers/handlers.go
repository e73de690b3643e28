package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/plantsight/plantsight-api/internal/archive"
	"github.com/plantsight/plantsight-api/internal/gate"
	"github.com/plantsight/plantsight-api/internal/logger"
	"github.com/plantsight/plantsight-api/internal/metrics"
	"github.com/plantsight/plantsight-api/internal/model"
	"github.com/plantsight/plantsight-api/internal/report"
)

const maxUploadBytes = 10 << 20 // 10MB

const retakeTips = "Crop the disease patch, avoid humans/animals/food/objects, use natural light and fill the frame with the affected area."

type Handler struct {
	classifier model.Classifier
	gate       *gate.Gate
	store      *archive.Store
	log        logger.Logger
	catalogLen int
}

func NewHandler(classifier model.Classifier, g *gate.Gate, store *archive.Store, catalogLen int, log logger.Logger) *Handler {
	return &Handler{
		classifier: classifier,
		gate:       g,
		store:      store,
		log:        log,
		catalogLen: catalogLen,
	}
}

// verdictResponse is the JSON body for both accepted and rejected verdicts.
type verdictResponse struct {
	Accepted   bool         `json:"accepted"`
	Prediction *gate.Top    `json:"prediction,omitempty"`
	Remedy     *gate.Remedy `json:"remedy,omitempty"`
	Reason     gate.Reason  `json:"reason,omitempty"`
	Message    string       `json:"message,omitempty"`
	Tips       string       `json:"tips,omitempty"`
	ArchivedTo string       `json:"archived_to,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "healthy",
		"catalog_entries": h.catalogLen,
	})
}

// PredictFromImage accepts a multipart upload (field "image"), classifies
// it, and returns the gated verdict. Rejected uploads are archived to the
// review directory first; accepted verdicts can be fetched as a text report
// with ?format=report.
func (h *Handler) PredictFromImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	log := h.log.WithFields(map[string]interface{}{"requestId": uuid.NewString()})

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no image file provided; use 'image' as the form field name")
		return
	}
	defer file.Close()

	uploaded, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read uploaded file")
		return
	}

	img, format, err := image.Decode(bytes.NewReader(uploaded))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image format; supported: JPEG, PNG")
		return
	}

	log.Info("received upload", map[string]interface{}{
		"filename": header.Filename,
		"size":     header.Size,
		"format":   format,
	})

	start := time.Now()
	ranked, err := h.classifier.ClassifyImage(img)
	metrics.InferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		log.WithError(err).Error("inference failed", nil)
		writeError(w, http.StatusInternalServerError, "prediction failed")
		return
	}

	verdict := h.gate.Decide(ranked)
	h.count(verdict)

	if !verdict.Accepted {
		resp := verdictResponse{
			Accepted: false,
			Reason:   verdict.Reason,
			Message:  gate.Message(verdict.Reason),
			Tips:     retakeTips,
		}
		if path := h.store.Save(uploaded, verdict.Reason); path != "" {
			resp.ArchivedTo = path
		} else {
			metrics.ArchiveFailures.Inc()
			log.Warn("failed to archive rejected upload", map[string]interface{}{"reason": verdict.Reason})
		}
		log.Info("prediction rejected", map[string]interface{}{
			"reason":     verdict.Reason,
			"classId":    verdict.Top.ClassID,
			"confidence": verdict.Top.Confidence,
		})
		writeJSON(w, http.StatusOK, resp)
		return
	}

	log.Info("prediction accepted", map[string]interface{}{
		"name":       verdict.Top.Name,
		"classId":    verdict.Top.ClassID,
		"confidence": verdict.Top.Confidence,
	})

	if r.URL.Query().Get("format") == "report" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="plantsight_result.txt"`)
		fmt.Fprint(w, report.Render(verdict))
		return
	}

	writeJSON(w, http.StatusOK, verdictResponse{
		Accepted:   true,
		Prediction: &verdict.Top,
		Remedy:     &verdict.Remedy,
		Reason:     verdict.Reason,
	})
}

// Predict accepts a pre-vectorized input and runs the same gate pipeline.
// No original image exists here, so rejections are not archived.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	var req model.VectorRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if expected := h.classifier.InputLen(); len(req.Image) != expected {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("expected %d values, got %d", expected, len(req.Image)))
		return
	}

	start := time.Now()
	ranked, err := h.classifier.Classify(req.Image)
	metrics.InferenceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		h.log.WithError(err).Error("inference failed", nil)
		writeError(w, http.StatusInternalServerError, "prediction failed")
		return
	}

	verdict := h.gate.Decide(ranked)
	h.count(verdict)

	resp := verdictResponse{Accepted: verdict.Accepted, Reason: verdict.Reason}
	if verdict.Accepted {
		resp.Prediction = &verdict.Top
		resp.Remedy = &verdict.Remedy
	} else {
		resp.Message = gate.Message(verdict.Reason)
		resp.Tips = retakeTips
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) count(v gate.Verdict) {
	outcome := "rejected"
	if v.Accepted {
		outcome = "accepted"
	}
	metrics.Verdicts.WithLabelValues(outcome, string(v.Reason)).Inc()
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantsight/plantsight-api/internal/archive"
	"github.com/plantsight/plantsight-api/internal/catalog"
	"github.com/plantsight/plantsight-api/internal/gate"
	"github.com/plantsight/plantsight-api/internal/logger"
)

type fakeClassifier struct {
	ranked   []gate.RawPrediction
	err      error
	inputLen int
}

func (f *fakeClassifier) Classify(input []float32) ([]gate.RawPrediction, error) {
	return f.ranked, f.err
}

func (f *fakeClassifier) ClassifyImage(img image.Image) ([]gate.RawPrediction, error) {
	return f.ranked, f.err
}

func (f *fakeClassifier) InputLen() int { return f.inputLen }

func newTestHandler(t *testing.T, fc *fakeClassifier, archiveDir string) *Handler {
	t.Helper()
	cat := catalog.Builtin()
	g := gate.New(cat, gate.DefaultOptions())
	store := archive.NewStore(archiveDir)
	return NewHandler(fc, g, store, cat.Len(), logger.NewTestLogger(t))
}

func uploadRequest(t *testing.T, url string) *http.Request {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var encoded bytes.Buffer
	require.NoError(t, png.Encode(&encoded, img))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "leaf.png")
	require.NoError(t, err)
	_, err = fw.Write(encoded.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeVerdict(t *testing.T, rec *httptest.ResponseRecorder) verdictResponse {
	t.Helper()
	var resp verdictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, &fakeClassifier{}, t.TempDir())

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestPredictFromImageAccepted(t *testing.T) {
	fc := &fakeClassifier{ranked: []gate.RawPrediction{{ClassID: 11, Score: 0.95}}}
	h := newTestHandler(t, fc, t.TempDir())

	rec := httptest.NewRecorder()
	h.PredictFromImage(rec, uploadRequest(t, "/predict/image"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeVerdict(t, rec)
	require.True(t, resp.Accepted)
	require.NotNil(t, resp.Prediction)
	assert.Equal(t, "Healthy Wheat", resp.Prediction.Name)
	assert.InDelta(t, 0.95, resp.Prediction.Confidence, 1e-9)
	require.NotNil(t, resp.Remedy)
	assert.NotEmpty(t, resp.Remedy.Summary)
	assert.Empty(t, resp.ArchivedTo)
}

func TestPredictFromImageRejectedArchivesUpload(t *testing.T) {
	dir := t.TempDir()
	fc := &fakeClassifier{ranked: []gate.RawPrediction{{ClassID: 11, Score: 0.40}}}
	h := newTestHandler(t, fc, dir)

	rec := httptest.NewRecorder()
	h.PredictFromImage(rec, uploadRequest(t, "/predict/image"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeVerdict(t, rec)
	require.False(t, resp.Accepted)
	assert.Equal(t, gate.ReasonLowConfidence, resp.Reason)
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.Tips)
	require.NotEmpty(t, resp.ArchivedTo)
	assert.True(t, strings.HasPrefix(filepath.Base(resp.ArchivedTo), "low_confidence_"))

	_, err := os.Stat(resp.ArchivedTo)
	assert.NoError(t, err)
}

func TestPredictFromImageEmptyRankedList(t *testing.T) {
	fc := &fakeClassifier{ranked: nil}
	h := newTestHandler(t, fc, t.TempDir())

	rec := httptest.NewRecorder()
	h.PredictFromImage(rec, uploadRequest(t, "/predict/image"))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeVerdict(t, rec)
	require.False(t, resp.Accepted)
	assert.Equal(t, gate.ReasonNoPrediction, resp.Reason)
}

func TestPredictFromImageReportFormat(t *testing.T) {
	fc := &fakeClassifier{ranked: []gate.RawPrediction{{ClassID: 11, Score: 0.95}}}
	h := newTestHandler(t, fc, t.TempDir())

	rec := httptest.NewRecorder()
	h.PredictFromImage(rec, uploadRequest(t, "/predict/image?format=report"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "plantsight_result.txt")
	assert.Contains(t, rec.Body.String(), "Healthy Wheat")
}

func TestPredictFromImageRejectedReportFormatStaysJSON(t *testing.T) {
	fc := &fakeClassifier{ranked: []gate.RawPrediction{{ClassID: 2, Score: 0.95}}}
	h := newTestHandler(t, fc, t.TempDir())

	rec := httptest.NewRecorder()
	h.PredictFromImage(rec, uploadRequest(t, "/predict/image?format=report"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	resp := decodeVerdict(t, rec)
	assert.Equal(t, gate.ReasonNotCropLike, resp.Reason)
}

func TestPredictFromImageInvalidUpload(t *testing.T) {
	h := newTestHandler(t, &fakeClassifier{}, t.TempDir())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("image", "notes.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/predict/image", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	h.PredictFromImage(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid image format")
}

func TestPredictFromImageMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, &fakeClassifier{}, t.TempDir())

	rec := httptest.NewRecorder()
	h.PredictFromImage(rec, httptest.NewRequest(http.MethodGet, "/predict/image", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestPredictFromImageInferenceError(t *testing.T) {
	fc := &fakeClassifier{err: errors.New("session exploded")}
	h := newTestHandler(t, fc, t.TempDir())

	rec := httptest.NewRecorder()
	h.PredictFromImage(rec, uploadRequest(t, "/predict/image"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal detail never reaches the client.
	assert.NotContains(t, rec.Body.String(), "session exploded")
}

func TestPredictVector(t *testing.T) {
	fc := &fakeClassifier{
		ranked:   []gate.RawPrediction{{ClassID: 11, Score: 0.95}},
		inputLen: 4,
	}
	h := newTestHandler(t, fc, t.TempDir())

	payload, err := json.Marshal(map[string][]float32{"image": {0.1, 0.2, 0.3, 0.4}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Predict(rec, httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(payload)))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeVerdict(t, rec)
	assert.True(t, resp.Accepted)
}

func TestPredictVectorWrongLength(t *testing.T) {
	fc := &fakeClassifier{inputLen: 4}
	h := newTestHandler(t, fc, t.TempDir())

	payload, err := json.Marshal(map[string][]float32{"image": {0.1}})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.Predict(rec, httptest.NewRequest(http.MethodPost, "/predict", bytes.NewReader(payload)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "expected 4 values")
}

func TestPredictVectorInvalidJSON(t *testing.T) {
	h := newTestHandler(t, &fakeClassifier{inputLen: 4}, t.TempDir())

	rec := httptest.NewRecorder()
	h.Predict(rec, httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

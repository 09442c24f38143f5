package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mathieu/cv-analyzer/internal/config"
)

const (
	testCV = `Développeur junior motivé avec expérience en Python, SQL et Excel.
Analyse de données, reporting et tableaux de bord pour la direction.`
	testJob = `Nous recherchons un analyste de données maîtrisant Python, SQL, Excel,
PowerBI et Tableau. Analyse de données, reporting quotidien, reporting mensuel.`
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Defaults()
	srv, err := New(&cfg, zap.NewNop())
	require.NoError(t, err)
	return srv
}

func multipartBody(t *testing.T, cvName, cvContent string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if cvName != "" {
		part, err := writer.CreateFormFile("cv", cvName)
		require.NoError(t, err)
		_, err = part.Write([]byte(cvContent))
		require.NoError(t, err)
	}
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func doAnalyze(t *testing.T, srv *Server, cvName, cvContent string, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, cvName, cvContent, fields)
	req := httptest.NewRequest(http.MethodPost, "/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze_Success(t *testing.T) {
	srv := newTestServer(t)

	rec := doAnalyze(t, srv, "cv.txt", testCV, map[string]string{"job": testJob})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Result)
	assert.Greater(t, resp.Result.Score, 0.0)
	require.NotNil(t, resp.Result.Interpretation)

	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, srv.store.Len())
}

func TestHandleAnalyze_MissingCV(t *testing.T) {
	srv := newTestServer(t)

	rec := doAnalyze(t, srv, "", "", map[string]string{"job": testJob})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing document")
}

func TestHandleAnalyze_MissingJob(t *testing.T) {
	srv := newTestServer(t)

	rec := doAnalyze(t, srv, "cv.txt", testCV, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_UnsupportedExtension(t *testing.T) {
	srv := newTestServer(t)

	rec := doAnalyze(t, srv, "cv.odt", testCV, map[string]string{"job": testJob})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestHandleAnalyze_CVTooShort(t *testing.T) {
	srv := newTestServer(t)

	rec := doAnalyze(t, srv, "cv.txt", "trop court", map[string]string{"job": testJob})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too short")
}

func TestHandleAnalyze_JobTooShort(t *testing.T) {
	srv := newTestServer(t)

	rec := doAnalyze(t, srv, "cv.txt", testCV, map[string]string{"job": "python"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_SeniorProfile(t *testing.T) {
	srv := newTestServer(t)

	rec := doAnalyze(t, srv, "cv.txt", testCV, map[string]string{"job": testJob, "profile": "senior"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Result.Interpretation)
}

func TestHandleGetResult_Roundtrip(t *testing.T) {
	srv := newTestServer(t)

	rec := doAnalyze(t, srv, "cv.txt", testCV, map[string]string{"job": testJob})
	require.Equal(t, http.StatusOK, rec.Code)

	var created AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/results/"+created.ID, nil)
	getRec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(getRec, req)

	require.Equal(t, http.StatusOK, getRec.Code)

	var fetched AnalyzeResponse
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &fetched))
	assert.Equal(t, created.Result.Score, fetched.Result.Score)
}

func TestHandleGetResult_NotFound(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/results/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetResult_InvalidID(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/results/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "rapport_analyse_cv.pdf", reportFilename("cv.pdf"))
	assert.Equal(t, "rapport_analyse_mon_cv.pdf", reportFilename("mon_cv.docx"))
	assert.Equal(t, "rapport_analyse_cv.pdf", reportFilename("cv"))
}

func TestHandleAnalyze_ResponseIsJSON(t *testing.T) {
	srv := newTestServer(t)

	rec := doAnalyze(t, srv, "cv.txt", testCV, map[string]string{"job": testJob})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{"))
}

package handler

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docmind-ai/docmind-be/database"
	"github.com/docmind-ai/docmind-be/service"
	"github.com/docmind-ai/docmind-be/types"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := database.NewDocumentStore()
	chunker := service.NewTextChunker(service.DefaultDocumentServiceConfig)
	summarizer := service.NewSummarizer(types.DocumentServiceConfig{ChunkSize: 1024}, service.NewFrequencySummaryModel(5))
	extractor := service.NewAnswerExtractor(service.NewLexicalSpanModel(), service.DefaultExtractorConfig)
	generator := service.NewChallengeGenerator(store, extractor, rand.New(rand.NewSource(1)), service.ChallengeConfig{})
	qaService := service.NewQAService(
		store,
		chunker,
		service.NewPDFService(),
		summarizer,
		extractor,
		generator,
		service.NewAnswerScorer(0.8),
		func() database.Embedder { return service.NewTFIDFEmbedder() },
	)

	corsHandler := NewCorsHandler("*")
	uploadHandler := NewUploadHandler(qaService)
	qaHandler := NewQAHandler(qaService)

	router := gin.New()
	router.Use(corsHandler.CorsMiddleware)
	router.POST("/upload", uploadHandler.HandleUpload)
	router.POST("/ask", qaHandler.HandleAsk)
	router.POST("/challenge", qaHandler.HandleChallenge)
	router.POST("/evaluate", qaHandler.HandleEvaluate)
	return router
}

func uploadText(t *testing.T, router *gin.Engine, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postJSON(router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const uploadedText = "The Eiffel Tower was built in 1889 in Paris. It is 330 meters tall."

func TestUploadHandler_TextFile(t *testing.T) {
	router := newTestRouter()

	rec := uploadText(t, router, "doc.txt", uploadedText)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Status string                 `json:"status"`
		Data   types.DocumentResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "doc.txt", resp.Data.Filename)
	assert.True(t, resp.Data.Success)
	assert.NotEmpty(t, resp.Data.Summary)
}

func TestUploadHandler_RejectsUnsupportedExtension(t *testing.T) {
	router := newTestRouter()

	rec := uploadText(t, router, "doc.docx", "content")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQAHandler_AskBeforeUpload(t *testing.T) {
	router := newTestRouter()

	rec := postJSON(router, "/ask", types.QuestionRequest{Question: "Where is it?"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQAHandler_AskAfterUpload(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusOK, uploadText(t, router, "doc.txt", uploadedText).Code)

	rec := postJSON(router, "/ask", types.QuestionRequest{Question: "Where is the Eiffel Tower?"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data types.QuestionResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Data.Answer, "Paris")
	assert.True(t, strings.Contains(uploadedText, resp.Data.Answer))
}

func TestQAHandler_ChallengeAndEvaluate(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusOK, uploadText(t, router, "doc.txt", uploadedText).Code)

	rec := postJSON(router, "/challenge", types.ChallengeRequest{NumQuestions: 2})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var challengeResp struct {
		Data []types.ChallengeQuestion `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &challengeResp))
	require.NotEmpty(t, challengeResp.Data)

	q := challengeResp.Data[0]
	rec = postJSON(router, "/evaluate", types.EvaluateRequest{Question: q.Question, UserAnswer: "some attempt"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var evalResp struct {
		Data types.EvaluationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &evalResp))
	assert.NotEmpty(t, evalResp.Data.Feedback)
	assert.NotEmpty(t, evalResp.Data.Reference)
}

func TestQAHandler_EvaluateBlankArguments(t *testing.T) {
	router := newTestRouter()
	require.Equal(t, http.StatusOK, uploadText(t, router, "doc.txt", uploadedText).Code)

	rec := postJSON(router, "/evaluate", types.EvaluateRequest{Question: "", UserAnswer: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(router, "/evaluate", types.EvaluateRequest{Question: "x", UserAnswer: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCorsMiddleware_Preflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/ask", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

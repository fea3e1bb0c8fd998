package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxprep/voxprep/internal/services"
	"github.com/voxprep/voxprep/internal/utils"
)

type fakeInterviewService struct {
	startRes  *services.StartResult
	startErr  error
	turnRes   *services.TurnResult
	turnErr   error
	gotAnswer string
	gotAudio  []byte
}

func (f *fakeInterviewService) Start(context.Context, string, services.StartParams) (*services.StartResult, error) {
	return f.startRes, f.startErr
}

func (f *fakeInterviewService) ProcessAnswer(_ context.Context, _ string, audio []byte, text string) (*services.TurnResult, error) {
	f.gotAudio = audio
	f.gotAnswer = text
	return f.turnRes, f.turnErr
}

func newRouter(svc services.InterviewService, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if authed {
		r.Use(func(c *gin.Context) { c.Set("user_id", "u-1") })
	}
	h := NewInterviewHandler(svc)
	r.POST("/interview/start", h.Start)
	r.POST("/interview/answer", h.Answer)
	return r
}

func TestStartHandler(t *testing.T) {
	fake := &fakeInterviewService{startRes: &services.StartResult{
		SessionID: "s-1", Text: "welcome", QuestionIndex: 0, TotalQuestions: 10,
	}}
	r := newRouter(fake, true)

	body := `{"interview_type": "technical", "topic": "realtime"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/start", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got services.StartResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "s-1", got.SessionID)
	assert.Equal(t, "welcome", got.Text)
}

func TestStartHandlerRejectsBadBody(t *testing.T) {
	r := newRouter(&fakeInterviewService{}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/start", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartHandlerRequiresAuth(t *testing.T) {
	r := newRouter(&fakeInterviewService{}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/start", strings.NewReader(`{"interview_type":"hr"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAnswerHandlerTextForm(t *testing.T) {
	fake := &fakeInterviewService{turnRes: &services.TurnResult{Text: "next question"}}
	r := newRouter(fake, true)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("session_id", "s-1"))
	require.NoError(t, mw.WriteField("text_answer", "my answer"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/answer", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "my answer", fake.gotAnswer)
	assert.Nil(t, fake.gotAudio)
}

func TestAnswerHandlerAudioForm(t *testing.T) {
	fake := &fakeInterviewService{turnRes: &services.TurnResult{Text: "next question"}}
	r := newRouter(fake, true)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("session_id", "s-1"))
	fw, err := mw.CreateFormFile("audio", "answer.wav")
	require.NoError(t, err)
	_, err = fw.Write([]byte{0x52, 0x49, 0x46, 0x46})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/answer", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []byte{0x52, 0x49, 0x46, 0x46}, fake.gotAudio)
	assert.Empty(t, fake.gotAnswer)
}

func TestAnswerHandlerMissingSession(t *testing.T) {
	r := newRouter(&fakeInterviewService{}, true)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("text_answer", "hello"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/answer", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnswerHandlerPropagatesServiceErrors(t *testing.T) {
	fake := &fakeInterviewService{
		turnErr: utils.E(utils.CodeNotFound, "InterviewService.ProcessAnswer", "session not found", nil),
	}
	r := newRouter(fake, true)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("session_id", "gone"))
	require.NoError(t, mw.WriteField("text_answer", "hello"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interview/answer", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, utils.CodeNotFound, apiErr.Code)
	assert.Equal(t, "session not found", apiErr.Message)
}

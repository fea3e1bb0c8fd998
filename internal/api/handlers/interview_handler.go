package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voxprep/voxprep/internal/models"
	"github.com/voxprep/voxprep/internal/services"
	"github.com/voxprep/voxprep/internal/utils"
)

const maxAudioBytes = 10 << 20

type InterviewHandler struct {
	svc services.InterviewService
}

func NewInterviewHandler(svc services.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

type StartInterviewRequest struct {
	InterviewType string `json:"interview_type" binding:"required"` // technical|hr|project|video-practice
	Topic         string `json:"topic"`
	Resume        string `json:"resume"`
	JD            string `json:"jd"`
	ProjectText   string `json:"project_text"`
}

func (h *InterviewHandler) Start(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Start", "invalid request body", err))
		return
	}

	res, err := h.svc.Start(c.Request.Context(), userID, services.StartParams{
		Type:        models.InterviewType(req.InterviewType),
		Topic:       req.Topic,
		Resume:      req.Resume,
		JD:          req.JD,
		ProjectText: req.ProjectText,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// Answer accepts a multipart form with session_id plus either a text_answer
// field or an audio file. The audio bytes live only for this request.
func (h *InterviewHandler) Answer(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Answer", "session_id is required", nil))
		return
	}

	textAnswer := c.PostForm("text_answer")

	var audio []byte
	if textAnswer == "" {
		b, err := readAudioUpload(c, "audio", maxAudioBytes)
		if err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "InterviewHandler.Answer", "either text_answer or an audio file is required", err))
			return
		}
		audio = b
	}

	res, err := h.svc.ProcessAnswer(c.Request.Context(), sessionID, audio, textAnswer)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

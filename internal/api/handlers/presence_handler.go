package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voxprep/voxprep/internal/services"
	"github.com/voxprep/voxprep/internal/utils"
)

type PresenceHandler struct {
	svc services.PresenceService
}

func NewPresenceHandler(svc services.PresenceService) *PresenceHandler {
	return &PresenceHandler{svc: svc}
}

// Analyze runs the hesitation analyzer on one uploaded clip. The analysis
// never errors toward the client; provider failures come back inside the
// report envelope.
func (h *PresenceHandler) Analyze(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	audio, err := readAudioUpload(c, "audio", maxAudioBytes)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PresenceHandler.Analyze", "missing multipart field 'audio'", err))
		return
	}

	c.JSON(http.StatusOK, h.svc.Analyze(c.Request.Context(), audio))
}

package handlers

import (
	"net/http"

	"calendai/models"
	"calendai/services/agent"
	"calendai/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatHandler exposes the dialogue manager over HTTP.
type ChatHandler struct {
	Chat agent.ChatService
}

func NewChatHandler(chat agent.ChatService) *ChatHandler {
	return &ChatHandler{Chat: chat}
}

// SubmitTurn handles POST /api/chat: one message in, one reply out. Clients
// that omit a session id get one minted for them and returned in the
// response so follow-up turns can continue the conversation.
func (h *ChatHandler) SubmitTurn(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid chat request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	reply := h.Chat.ProcessTurn(c.Request.Context(), req.Message, req.SessionID)
	c.JSON(http.StatusOK, models.ChatResponse{
		Response:  reply,
		SessionID: req.SessionID,
	})
}

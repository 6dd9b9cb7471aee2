package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"docqa/internal/service"
	"docqa/internal/transport/http/response"
)

// Asker answers questions about the indexed document.
type Asker interface {
	Ask(ctx context.Context, question string, k int) (*service.Answer, error)
}

type ChatHandler struct {
	asker Asker
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	TopK    int    `json:"top_k" binding:"min=0,max=50"`
}

func NewChatHandler(asker Asker) *ChatHandler {
	return &ChatHandler{asker: asker}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid request payload")
		return
	}

	answer, err := h.asker.Ask(c.Request.Context(), req.Message, req.TopK)
	if err != nil {
		writeError(c, "chat", err)
		return
	}
	response.OK(c, answer)
}

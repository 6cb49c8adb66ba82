package handler

import (
	"group-wager-ledger/internal/adapter/http/dto"
	"group-wager-ledger/internal/adapter/http/middleware"
	"group-wager-ledger/internal/core/domain"
	"group-wager-ledger/internal/core/ports"
	"group-wager-ledger/pkg/apperror"
	"group-wager-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// IngestHandler receives raw chat events from the observation channels.
type IngestHandler struct {
	resolver ports.Resolver
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(resolver ports.Resolver) *IngestHandler {
	return &IngestHandler{resolver: resolver}
}

// PostMessage handles POST /api/v1/ingest/messages.
func (h *IngestHandler) PostMessage(c *gin.Context) {
	ev, ok := bindMessageEvent(c)
	if !ok {
		return
	}

	if err := h.resolver.HandleMessageCreated(c.Request.Context(), ev); err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, gin.H{"status": "processed"})
}

// PostEdit handles POST /api/v1/ingest/edits.
func (h *IngestHandler) PostEdit(c *gin.Context) {
	ev, ok := bindMessageEvent(c)
	if !ok {
		return
	}

	if err := h.resolver.HandleMessageEdited(c.Request.Context(), ev); err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, gin.H{"status": "processed"})
}

func bindMessageEvent(c *gin.Context) (ports.MessageEvent, bool) {
	var req dto.MessageEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return ports.MessageEvent{}, false
	}

	return ports.MessageEvent{
		Text:             req.Text,
		Source:           domain.SourceRef{ChatID: req.ChatID, MessageID: req.MessageID},
		SenderAuthorized: req.SenderAuthorized,
		Channel:          c.GetHeader(middleware.HeaderChannel),
	}, true
}

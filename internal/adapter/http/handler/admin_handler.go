package handler

import (
	"context"
	"strconv"

	"group-wager-ledger/internal/adapter/http/dto"
	"group-wager-ledger/internal/core/domain"
	"group-wager-ledger/internal/core/ports"
	"group-wager-ledger/pkg/apperror"
	"group-wager-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultListLimit = 50

// SweepFunc runs one expiry sweep pass and returns how many wagers it
// expired.
type SweepFunc func(ctx context.Context) (int, error)

// AdminHandler exposes the operations API: wager cancellation, balance
// corrections, commission overrides and ledger inspection.
type AdminHandler struct {
	resolver ports.Resolver
	ledger   ports.Ledger
	games    ports.GameStore
	sweep    SweepFunc
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(resolver ports.Resolver, ledger ports.Ledger, games ports.GameStore, sweep SweepFunc) *AdminHandler {
	return &AdminHandler{
		resolver: resolver,
		ledger:   ledger,
		games:    games,
		sweep:    sweep,
	}
}

// CancelWager handles POST /api/v1/admin/wagers/cancel.
func (h *AdminHandler) CancelWager(c *gin.Context) {
	var req dto.CancelWagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wager, err := h.resolver.CancelBySourceRef(c.Request.Context(), domain.SourceRef{
		ChatID:    req.ChatID,
		MessageID: req.MessageID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWager(wager))
}

// ListWagers handles GET /api/v1/admin/wagers?status=ACTIVE&limit=50.
func (h *AdminHandler) ListWagers(c *gin.Context) {
	var status *domain.WagerStatus
	if s := c.Query("status"); s != "" {
		ws := domain.WagerStatus(s)
		status = &ws
	}
	limit := queryInt(c, "limit", defaultListLimit)

	wagers, err := h.games.ListWagers(c.Request.Context(), status, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromWagers(wagers))
}

// CreateUser handles POST /api/v1/admin/users. Onboarding is
// idempotent: posting an existing user returns it unchanged.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	user, err := h.ledger.GetOrCreateUser(c.Request.Context(), req.ID, req.Handle)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.FromUser(user))
}

// GetUser handles GET /api/v1/admin/users/:id.
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid user id"))
		return
	}

	user, err := h.ledger.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromUser(user))
}

// SetCommission handles PUT /api/v1/admin/users/:id/commission.
func (h *AdminHandler) SetCommission(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid user id"))
		return
	}

	var req dto.CommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledger.SetCommissionRate(c.Request.Context(), id, *req.Bps); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.ledger.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromUser(user))
}

// Adjust handles POST /api/v1/admin/users/:id/adjust.
func (h *AdminHandler) Adjust(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid user id"))
		return
	}

	var req dto.AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txn, err := h.ledger.ManualAdjust(c.Request.Context(), id, req.Amount, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.FromTransaction(txn))
}

// ListTransactions handles GET /api/v1/admin/users/:id/transactions.
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid user id"))
		return
	}
	limit := queryInt(c, "limit", defaultListLimit)

	txns, err := h.ledger.ListTransactions(c.Request.Context(), id, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromTransactions(txns))
}

// GetWagerTransactions handles GET /api/v1/admin/wagers/:id/transactions.
// It returns every ledger entry the wager produced, across all users.
func (h *AdminHandler) GetWagerTransactions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid wager id"))
		return
	}

	txns, err := h.ledger.ListWagerTransactions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.FromTransactions(txns))
}

// VerifyUser handles POST /api/v1/admin/users/:id/verify. It checks the
// balance invariant for one user; SYS_002 means the books do not add up.
func (h *AdminHandler) VerifyUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid user id"))
		return
	}

	if err := h.ledger.VerifyBalance(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"status": "verified"})
}

// SweepExpiry handles POST /api/v1/admin/expiry/sweep.
func (h *AdminHandler) SweepExpiry(c *gin.Context) {
	n, err := h.sweep(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SweepResponse{Expired: n})
}

func queryInt(c *gin.Context, key string, def int) int {
	if raw := c.Query(key); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return def
}

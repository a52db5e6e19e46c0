package session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"PokerCoach/internal/game/engine"
	"PokerCoach/internal/game/evaluator"
	"PokerCoach/internal/utils"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// POST /evaluate body: {hand, community, round}
func (h *Handler) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := h.svc.Evaluate(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// POST /sessions
func (h *Handler) Create(c *gin.Context) {
	t, report, err := h.svc.Create(c.Request.Context(), c.GetString("player"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newSessionResponse(t, report))
}

// GET /sessions/:id
func (h *Handler) Get(c *gin.Context) {
	t, report, err := h.svc.Get(c.Request.Context(), c.Param("id"), c.GetString("player"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(t, report))
}

// POST /sessions/:id/next
func (h *Handler) Next(c *gin.Context) {
	t, report, err := h.svc.Next(c.Request.Context(), c.Param("id"), c.GetString("player"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSessionResponse(t, report))
}

// DELETE /sessions/:id
func (h *Handler) Close(c *gin.Context) {
	if err := h.svc.Close(c.Request.Context(), c.Param("id"), c.GetString("player")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /sessions/:id/history
func (h *Handler) History(c *gin.Context) {
	entries, err := h.svc.History(c.Request.Context(), c.Param("id"), c.GetString("player"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GET /history?limit=20  当前玩家所有 session 的记录
func (h *Handler) PlayerHistory(c *gin.Context) {
	limit := 0
	if q := c.Query("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	entries, err := h.svc.PlayerHistory(c.Request.Context(), c.GetString("player"), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func writeError(c *gin.Context, err error) {
	var invalid evaluator.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrHandFinished):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.Log.Error("session request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

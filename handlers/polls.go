package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"market-pulse/poll"
)

const voterCookie = "mp_voter"

type PollHandler struct {
	Store  *poll.Store
	Logger *zap.Logger
}

type VoteRequest struct {
	Option string `json:"option" binding:"required"`
}

func (h *PollHandler) Register(r gin.IRouter) {
	r.GET("/polls/:symbol", h.GetPoll)
	r.POST("/polls/:symbol/vote", h.Vote)
}

func (h *PollHandler) GetPoll(c *gin.Context) {
	symbol, err := poll.NormalizeSymbol(c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	voterID, _ := c.Cookie(voterCookie)

	result, err := h.Store.Result(c.Request.Context(), symbol, voterID)
	if err != nil {
		h.Logger.Error("poll result failed", zap.String("symbol", symbol), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PollHandler) Vote(c *gin.Context) {
	symbol, err := poll.NormalizeSymbol(c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var request VoteRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	option, err := poll.ParseOption(request.Option)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voterID, _ := c.Cookie(voterCookie)
	if voterID == "" {
		voterID = uuid.NewString()
		c.SetCookie(voterCookie, voterID, 365*24*60*60, "/", "", false, true)
	}

	ctx := c.Request.Context()
	if err := h.Store.Vote(ctx, symbol, voterID, option); err != nil {
		if errors.Is(err, poll.ErrAlreadyVoted) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("vote failed", zap.String("symbol", symbol), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	result, err := h.Store.Result(ctx, symbol, voterID)
	if err != nil {
		h.Logger.Error("poll result failed", zap.String("symbol", symbol), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, result)
}

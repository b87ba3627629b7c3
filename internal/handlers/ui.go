package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"lottery-miniapp-client/internal/logger"
	"lottery-miniapp-client/internal/models"
	"lottery-miniapp-client/internal/services"
	"lottery-miniapp-client/internal/ui"
)

// Workflows is the part of the interaction engine the bridge drives.
type Workflows interface {
	Login(ctx context.Context, req models.LoginRequest) services.Result
	Register(ctx context.Context, req *models.RegisterRequest) services.Result
	BuyTicket(ctx context.Context, form models.TicketForm) services.Result
	Draw(ctx context.Context) services.Result
	Recharge(ctx context.Context, rawAmount string) services.Result
	Logout(ctx context.Context) services.Result
	FillRandomNumbers() services.Result
	OnNumberInput(field, raw string) services.Result
	Session(ctx context.Context) (*models.Session, error)
}

type RechargeForm struct {
	Amount string `json:"amount"`
}

type NumberInputEvent struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// UIHandler turns page events into workflow runs. It never renders; results
// reach the page through the surface.
type UIHandler struct {
	workflows Workflows
	log       *log.Logger
}

func NewUIHandler(workflows Workflows, l *log.Logger) *UIHandler {
	if l == nil {
		l = logger.Discard()
	}
	return &UIHandler{workflows: workflows, log: l}
}

func (h *UIHandler) badRequest(c *gin.Context, err error) {
	h.log.Debug().Err(err).Str("path", c.FullPath()).Msg("malformed ui event")
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request",
		"details": err.Error(),
	})
}

func (h *UIHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, h.workflows.Login(c.Request.Context(), req))
}

func (h *UIHandler) Register(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, h.workflows.Register(c.Request.Context(), models.NewRegisterRequest(fields)))
}

func (h *UIHandler) BuyTicket(c *gin.Context) {
	var form models.TicketForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, h.workflows.BuyTicket(c.Request.Context(), form))
}

func (h *UIHandler) Draw(c *gin.Context) {
	c.JSON(http.StatusOK, h.workflows.Draw(c.Request.Context()))
}

func (h *UIHandler) Recharge(c *gin.Context) {
	var form RechargeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, h.workflows.Recharge(c.Request.Context(), form.Amount))
}

func (h *UIHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, h.workflows.Logout(c.Request.Context()))
}

func (h *UIHandler) RandomNumbers(c *gin.Context) {
	c.JSON(http.StatusOK, h.workflows.FillRandomNumbers())
}

func (h *UIHandler) NumberInput(c *gin.Context) {
	var event NumberInputEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		h.badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, h.workflows.OnNumberInput(event.Field, event.Value))
}

// Session reports who is signed in. The token never leaves the client.
func (h *UIHandler) Session(c *gin.Context) {
	session, err := h.workflows.Session(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read session"})
		return
	}

	if session == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          session.User,
		"menu":          ui.RenderUserMenu(session.User),
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

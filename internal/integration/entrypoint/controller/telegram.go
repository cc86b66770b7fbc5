package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	domainerror "github.com/goalflow/backend/internal/domain/error"
	"github.com/goalflow/backend/internal/integration/entrypoint/dto"
	"github.com/goalflow/backend/internal/integration/telegram"
)

// TelegramController handles telegram webhook endpoints.
type TelegramController struct {
	bot           *telegram.Bot
	webhookSecret string
}

// NewTelegramController creates a new telegram controller instance.
func NewTelegramController(bot *telegram.Bot, webhookSecret string) *TelegramController {
	return &TelegramController{
		bot:           bot,
		webhookSecret: webhookSecret,
	}
}

// Webhook handles POST /telegram/webhook requests. Telegram expects a fast
// 200; updates are processed off the request goroutine.
func (c *TelegramController) Webhook(ctx *gin.Context) {
	if c.webhookSecret != "" {
		if ctx.GetHeader("X-Telegram-Bot-Api-Secret-Token") != c.webhookSecret {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid webhook secret",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			return
		}
	}

	var update tgbotapi.Update
	if err := ctx.ShouldBindJSON(&update); err != nil {
		// Malformed payloads are acknowledged so telegram does not retry.
		ctx.Status(http.StatusOK)
		return
	}

	go c.bot.HandleUpdate(context.Background(), update)

	ctx.Status(http.StatusOK)
}

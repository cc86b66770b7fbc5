package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/goalflow/backend/internal/application/adapter"
	"github.com/goalflow/backend/internal/application/usecase/notification"
	"github.com/goalflow/backend/internal/domain/entity"
	domainerror "github.com/goalflow/backend/internal/domain/error"
)

const helpText = `Available commands:
/link <code> - connect this chat to your GoalFlow account
/goals - list your goals in your default workspace
/report - goal summary for your default workspace
/help - show this message`

// Bot handles incoming Telegram webhook updates. Replies go out through the
// same sender the outbox worker uses.
type Bot struct {
	sender        adapter.TelegramSender
	completeLink  *notification.CompleteLinkUseCase
	userRepo      adapter.UserRepository
	workspaceRepo adapter.WorkspaceRepository
	goalRepo      adapter.GoalRepository
}

// NewBot creates a new Bot instance.
func NewBot(
	sender adapter.TelegramSender,
	completeLink *notification.CompleteLinkUseCase,
	userRepo adapter.UserRepository,
	workspaceRepo adapter.WorkspaceRepository,
	goalRepo adapter.GoalRepository,
) *Bot {
	return &Bot{
		sender:        sender,
		completeLink:  completeLink,
		userRepo:      userRepo,
		workspaceRepo: workspaceRepo,
		goalRepo:      goalRepo,
	}
}

// HandleUpdate processes one webhook update. Called asynchronously after the
// webhook endpoint has already answered 200.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	chatID := strconv.FormatInt(update.Message.Chat.ID, 10)
	text := strings.TrimSpace(update.Message.Text)

	var reply string
	switch {
	case text == "/start":
		reply = "Welcome to GoalFlow! Use /link <code> to connect your account.\n\n" + helpText
	case text == "/help":
		reply = helpText
	case strings.HasPrefix(text, "/link"):
		reply = b.handleLink(ctx, chatID, text)
	case text == "/goals":
		reply = b.handleGoals(ctx, chatID)
	case text == "/report":
		reply = b.handleReport(ctx, chatID)
	default:
		reply = "Unknown command. Use /help to see what I can do."
	}

	if _, err := b.sender.Send(ctx, adapter.SendTelegramInput{ChatID: chatID, Text: reply}); err != nil {
		slog.Error("Failed to send telegram reply", "error", err, "chat_id", chatID)
	}
}

func (b *Bot) handleLink(ctx context.Context, chatID, text string) string {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return "Usage: /link <code>. Get a code from your GoalFlow notification settings."
	}

	out, err := b.completeLink.Execute(ctx, notification.CompleteLinkInput{
		Code:   parts[1],
		ChatID: chatID,
	})
	if err != nil {
		var ntfErr *domainerror.NotificationError
		if errors.As(err, &ntfErr) {
			switch ntfErr.Code {
			case domainerror.ErrCodeInvalidLinkCode:
				return "That code is invalid or expired. Request a new one from your notification settings."
			case domainerror.ErrCodeTelegramLinkTaken:
				return "This chat is already linked to another GoalFlow account."
			}
		}
		slog.Error("Failed to complete telegram link", "error", err, "chat_id", chatID)
		return "Something went wrong linking your account. Please try again."
	}
	return fmt.Sprintf("Linked! Hi %s, you will now receive goal notifications here.", out.User.Name)
}

func (b *Bot) handleGoals(ctx context.Context, chatID string) string {
	user, workspace, msg := b.resolveContext(ctx, chatID)
	if msg != "" {
		return msg
	}

	goals, err := b.goalRepo.FindByOwnerAndWorkspace(ctx, user.ID, workspace.ID)
	if err != nil {
		slog.Error("Failed to list goals for bot", "error", err, "user_id", user.ID)
		return "Could not load your goals right now. Please try again."
	}
	if len(goals) == 0 {
		return fmt.Sprintf("You have no goals in *%s* yet.", workspace.Name)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Your goals in *%s*:\n", workspace.Name)
	for _, g := range goals {
		fmt.Fprintf(&sb, "- %s (%s, %d%%)\n", g.Title, g.Status, g.Progress)
	}
	return sb.String()
}

func (b *Bot) handleReport(ctx context.Context, chatID string) string {
	user, workspace, msg := b.resolveContext(ctx, chatID)
	if msg != "" {
		return msg
	}

	goals, err := b.goalRepo.FindByOwnerAndWorkspace(ctx, user.ID, workspace.ID)
	if err != nil {
		slog.Error("Failed to load goals for bot report", "error", err, "user_id", user.ID)
		return "Could not build your report right now. Please try again."
	}

	var active, completed, progressSum int
	for _, g := range goals {
		progressSum += g.Progress
		switch g.Status {
		case entity.GoalStatusActive:
			active++
		case entity.GoalStatusCompleted:
			completed++
		}
	}
	avgProgress := 0
	if len(goals) > 0 {
		avgProgress = progressSum / len(goals)
	}

	return fmt.Sprintf("Report for *%s*:\nTotal goals: %d\nActive: %d\nCompleted: %d\nAverage progress: %d%%",
		workspace.Name, len(goals), active, completed, avgProgress)
}

// resolveContext maps the chat to its linked user and default workspace.
// Returns a user-facing message when the chat cannot be resolved.
func (b *Bot) resolveContext(ctx context.Context, chatID string) (*entity.User, *entity.Workspace, string) {
	user, err := b.userRepo.FindByTelegramChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, nil, "This chat is not linked to a GoalFlow account yet. Use /link <code> first."
		}
		slog.Error("Failed to resolve telegram chat", "error", err, "chat_id", chatID)
		return nil, nil, "Something went wrong. Please try again."
	}

	workspaces, err := b.workspaceRepo.FindByUser(ctx, user.ID)
	if err != nil {
		slog.Error("Failed to load workspaces for bot", "error", err, "user_id", user.ID)
		return nil, nil, "Something went wrong. Please try again."
	}
	if len(workspaces) == 0 {
		return nil, nil, "You have no workspaces yet. Create one in the GoalFlow app first."
	}
	// FindByUser returns newest first; the last entry is the user's oldest
	// workspace, which acts as the default.
	return user, workspaces[len(workspaces)-1], ""
}

package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"regexp"
	"strings"

	"chatdesk-be/internal/dto"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	ErrBotNotConfigured = errors.New("Telegram bot token is not configured")

	uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

type ITelegramService interface {
	HandleUpdate(ctx context.Context, update *tgbotapi.Update) error
	SetWebhook(ctx context.Context, url string) error
	WebhookInfo(ctx context.Context) (*dto.WebhookInfoResponse, error)
}

type telegramService struct {
	bot                 *tgbotapi.BotAPI // nil when unconfigured
	conversationService IConversationService
}

func NewTelegramService(bot *tgbotapi.BotAPI, conversationService IConversationService) ITelegramService {
	return &telegramService{
		bot:                 bot,
		conversationService: conversationService,
	}
}

// HandleUpdate processes an inbound webhook update. Only callback queries
// carrying a session id trigger work; plain messages are acknowledged.
func (s *telegramService) HandleUpdate(ctx context.Context, update *tgbotapi.Update) error {
	if update.CallbackQuery != nil {
		return s.handleCallback(ctx, update.CallbackQuery)
	}
	// Plain or unrecognized updates are acknowledged without action.
	return nil
}

func (s *telegramService) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.Message == nil {
		return nil
	}
	chatID := cb.Message.Chat.ID
	replyTo := cb.Message.MessageID

	sessionId := strings.TrimPrefix(cb.Data, "summary:")
	if !uuidPattern.MatchString(sessionId) {
		s.send(chatID, replyTo, "❌ Invalid session id.")
		return fmt.Errorf("invalid session id in callback: %q", cb.Data)
	}

	summary, err := s.conversationService.GenerateSummary(ctx, sessionId)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			s.send(chatID, replyTo, "❌ Session not found.")
		} else {
			s.send(chatID, replyTo, "❌ Failed to generate summary, please try again later.")
		}
		return err
	}

	s.send(chatID, replyTo, FormatSummaryHTML(summary))
	return nil
}

// FormatSummaryHTML renders a summary for Telegram's HTML parse mode.
func FormatSummaryHTML(summary *dto.SummaryResponse) string {
	var b strings.Builder
	b.WriteString("📋 <b>Conversation Summary</b>\n\n")
	fmt.Fprintf(&b, "👤 <b>Customer:</b> %s\n", html.EscapeString(summary.CustomerName))
	if summary.PhoneNumber != nil && *summary.PhoneNumber != "" {
		fmt.Fprintf(&b, "📞 <b>Phone:</b> %s\n", html.EscapeString(*summary.PhoneNumber))
	}
	fmt.Fprintf(&b, "\n%s\n", html.EscapeString(summary.Summary))
	fmt.Fprintf(&b, "\n➡️ <b>Next action:</b> %s\n", html.EscapeString(summary.NextAction))
	if summary.Cached {
		b.WriteString("\n<i>(cached summary)</i>")
	}
	return b.String()
}

func (s *telegramService) send(chatID int64, replyTo int, text string) {
	if s.bot == nil {
		log.Printf("[WARN] Telegram bot not configured, dropping message to chat %d", chatID)
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyToMessageID = replyTo
	if _, err := s.bot.Send(msg); err != nil {
		log.Printf("[ERROR] Failed to send Telegram message to chat %d: %v", chatID, err)
	}
}

func (s *telegramService) SetWebhook(ctx context.Context, url string) error {
	if s.bot == nil {
		return ErrBotNotConfigured
	}
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return err
	}
	wh.AllowedUpdates = []string{"message", "callback_query"}
	_, err = s.bot.Request(wh)
	return err
}

func (s *telegramService) WebhookInfo(ctx context.Context) (*dto.WebhookInfoResponse, error) {
	if s.bot == nil {
		return nil, ErrBotNotConfigured
	}
	info, err := s.bot.GetWebhookInfo()
	if err != nil {
		return nil, err
	}
	return &dto.WebhookInfoResponse{
		URL:                  info.URL,
		PendingUpdateCount:   info.PendingUpdateCount,
		LastErrorMessage:     info.LastErrorMessage,
		MaxConnections:       info.MaxConnections,
		IPAddress:            info.IPAddress,
		HasCustomCertificate: info.HasCustomCertificate,
	}, nil
}

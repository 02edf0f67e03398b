package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const maxDigestLines = 20

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts booking events to the operators' chat.
type TelegramNotifier struct {
	bot         sender
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking* `%s`\n\n"+"Destination: %s\n"+"Guest: %s (%s)\n"+"Dates: %s → %s, %d night(s)\n"+"Travelers: %d\n"+"Total: %s",
		b.ID, esc(b.DestinationName), esc(b.Name), esc(b.Email),
		esc(b.StartDate), esc(b.EndDate), b.Nights,
		b.Travelers, formatAmount(b.Total),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyDigest(ctx context.Context, bookings []*domain.Booking) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*Bookings digest*: %d new\n\n", len(bookings))

	var total float64
	for i, b := range bookings {
		total += b.Total
		if i < maxDigestLines {
			fmt.Fprintf(&sb, "• %s, %s, %d×%d, %s\n", esc(b.DestinationName), esc(b.Name), b.Travelers, b.Nights, formatAmount(b.Total))
		}
	}
	if len(bookings) > maxDigestLines {
		fmt.Fprintf(&sb, "…and %d more\n", len(bookings)-maxDigestLines)
	}
	fmt.Fprintf(&sb, "\nTotal: %s", formatAmount(total))

	n.send(ctx, sb.String())
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.adminChatID == 0 {
		n.logger.Debug("notification skipped (no admin chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.adminChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.adminChatID),
			logger.String("error", err.Error()),
		)
	}
}

// esc neutralises Markdown markers in guest-supplied text.
func esc(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, f.err
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func sampleBooking(id string, total float64) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		Name:            "Asha",
		Email:           "asha@example.com",
		DestinationID:   "1",
		DestinationName: "Goa",
		Travelers:       2,
		StartDate:       "2024-01-01",
		EndDate:         "2024-01-04",
		Nights:          3,
		PricePerNight:   2000,
		Total:           total,
	}
}

func TestNewTelegramNotifier_EmptyTokenDisables(t *testing.T) {
	n, err := NewTelegramNotifier("", 42, newTestLogger(t))
	require.NoError(t, err)
	assert.Nil(t, n.bot)

	// must not panic
	n.NotifyBookingCreated(context.Background(), sampleBooking("b1", 12000))
}

func TestNotifyBookingCreated(t *testing.T) {
	fake := &fakeSender{}
	n := &TelegramNotifier{bot: fake, adminChatID: 42, logger: newTestLogger(t)}

	n.NotifyBookingCreated(context.Background(), sampleBooking("b1", 12000))

	require.Len(t, fake.sent, 1)
	msg := fake.sent[0]
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "Markdown", msg.ParseMode)
	assert.Contains(t, msg.Text, "`b1`")
	assert.Contains(t, msg.Text, "Goa")
	assert.Contains(t, msg.Text, "3 night(s)")
	assert.Contains(t, msg.Text, "12000.00")
}

func TestNotifyBookingCreated_EscapesGuestInput(t *testing.T) {
	fake := &fakeSender{}
	n := &TelegramNotifier{bot: fake, adminChatID: 42, logger: newTestLogger(t)}

	b := sampleBooking("b1", 12000)
	b.Name = "*Asha*"
	b.Email = "john_doe@example.com"
	b.DestinationName = "Goa [north]"

	n.NotifyBookingCreated(context.Background(), b)

	require.Len(t, fake.sent, 1)
	text := fake.sent[0].Text
	assert.Contains(t, text, `john\_doe@example.com`)
	assert.Contains(t, text, `\*Asha\*`)
	assert.Contains(t, text, `Goa \[north]`)
	assert.NotContains(t, text, "john_doe")
}

func TestNotifyDigest_EscapesGuestInput(t *testing.T) {
	fake := &fakeSender{}
	n := &TelegramNotifier{bot: fake, adminChatID: 42, logger: newTestLogger(t)}

	b := sampleBooking("b1", 100)
	b.Name = "snake_case_name"

	n.NotifyDigest(context.Background(), []*domain.Booking{b})

	require.Len(t, fake.sent, 1)
	assert.Contains(t, fake.sent[0].Text, `snake\_case\_name`)
}

func TestNotifyDigest_TruncatesLongLists(t *testing.T) {
	fake := &fakeSender{}
	n := &TelegramNotifier{bot: fake, adminChatID: 42, logger: newTestLogger(t)}

	bookings := make([]*domain.Booking, maxDigestLines+5)
	for i := range bookings {
		bookings[i] = sampleBooking("b", 100)
	}

	n.NotifyDigest(context.Background(), bookings)

	require.Len(t, fake.sent, 1)
	text := fake.sent[0].Text
	assert.Contains(t, text, "25 new")
	assert.Contains(t, text, "and 5 more")
	assert.Contains(t, text, "Total: 2500.00")
}

func TestSend_SkipsWithoutChat(t *testing.T) {
	fake := &fakeSender{}
	n := &TelegramNotifier{bot: fake, logger: newTestLogger(t)}

	n.NotifyBookingCreated(context.Background(), sampleBooking("b1", 1))

	assert.Empty(t, fake.sent)
}

func TestSend_SkipsCancelledContext(t *testing.T) {
	fake := &fakeSender{}
	n := &TelegramNotifier{bot: fake, adminChatID: 42, logger: newTestLogger(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.NotifyBookingCreated(ctx, sampleBooking("b1", 1))

	assert.Empty(t, fake.sent)
}

func TestSend_ErrorIsLoggedNotReturned(t *testing.T) {
	fake := &fakeSender{err: errors.New("telegram down")}
	n := &TelegramNotifier{bot: fake, adminChatID: 42, logger: newTestLogger(t)}

	n.NotifyDigest(context.Background(), []*domain.Booking{sampleBooking("b1", 1)})

	assert.Len(t, fake.sent, 1)
}

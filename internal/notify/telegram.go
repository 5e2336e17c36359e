// internal/notify/telegram.go
package notify

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"salon-manager/internal/domain"
)

// Notifier announces ledger writes to an external channel. Delivery is
// best-effort: a failed send never fails the request that triggered it.
type Notifier interface {
	TransactionRecorded(tx domain.CustomerTransaction)
	ExpenseRecorded(e domain.ExpenseRecord)
}

// Noop is used when no Telegram bot is configured.
type Noop struct{}

func (Noop) TransactionRecorded(domain.CustomerTransaction) {}
func (Noop) ExpenseRecorded(domain.ExpenseRecord)           {}

type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

func (t *Telegram) TransactionRecorded(tx domain.CustomerTransaction) {
	text := fmt.Sprintf("💇 *New transaction*\n%s — %s\n%s %s (%s)",
		tx.Date, tx.Time, tx.Amount.String(), tx.PaymentMode, tx.StaffName)
	t.send(text)
}

func (t *Telegram) ExpenseRecorded(e domain.ExpenseRecord) {
	text := fmt.Sprintf("💸 *New expense*\n%s — %s\n%d item(s), total %s",
		e.Date, e.Time, len(e.Items), e.TotalAmount.String())
	t.send(text)
}

func (t *Telegram) send(text string) {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := t.bot.Send(msg); err != nil {
		slog.Warn("telegram notification failed", "error", err)
	}
}

// Package shell defines how ledger operations interact with the user.
package shell

import (
	"sync"

	"github.com/Rhymond/go-money"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Shell asks the user for confirmation and reports results.
type Shell interface {
	// Confirm asks the user to confirm the operation described by message.
	Confirm(title, message string) bool
	NotifySuccess(title, message string)
	NotifyError(title, message string)
}

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Message is a notification shown to the user.
type Message struct {
	Level   Level  `json:"level" example:"success"`
	Title   string `json:"title" example:"Withdrawal Recorded"`
	Message string `json:"message" example:"Withdrew €150.00"`
}

// Recorder is a Shell for a single request. It answers confirmations with
// a fixed decision and collects all notifications.
type Recorder struct {
	confirmed bool

	mu       sync.Mutex
	prompts  []string
	messages []Message
}

// NewRecorder returns a Recorder that answers every confirmation with confirmed.
func NewRecorder(confirmed bool) *Recorder {
	return &Recorder{confirmed: confirmed}
}

func (r *Recorder) Confirm(title, message string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prompts = append(r.prompts, title+": "+message)
	return r.confirmed
}

func (r *Recorder) NotifySuccess(title, message string) {
	r.notify(LevelSuccess, title, message)
}

func (r *Recorder) NotifyError(title, message string) {
	r.notify(LevelError, title, message)
}

func (r *Recorder) notify(level Level, title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, Message{Level: level, Title: title, Message: message})
}

// Prompts returns the confirmations that were requested.
func (r *Recorder) Prompts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.prompts...)
}

// Messages returns all notifications in the order they were sent.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append(make([]Message, 0, len(r.messages)), r.messages...)
}

// Logged decorates a Shell and logs every interaction.
type Logged struct {
	Shell Shell
}

func (l Logged) Confirm(title, message string) bool {
	confirmed := l.Shell.Confirm(title, message)
	log.Debug().Str("title", title).Str("message", message).Bool("confirmed", confirmed).Msg("Shell")
	return confirmed
}

func (l Logged) NotifySuccess(title, message string) {
	log.Info().Str("title", title).Str("message", message).Msg("Shell")
	l.Shell.NotifySuccess(title, message)
}

func (l Logged) NotifyError(title, message string) {
	log.Warn().Str("title", title).Str("message", message).Msg("Shell")
	l.Shell.NotifyError(title, message)
}

// Format renders amount in the given ISO 4217 currency, e.g. "€150.00".
//
// The amount is rounded to the currency's minor unit.
func Format(amount decimal.Decimal, currency string) string {
	c := money.GetCurrency(currency)
	if c == nil {
		return amount.StringFixed(2) + " " + currency
	}

	minor := amount.Shift(int32(c.Fraction)).Round(0).IntPart()
	return money.New(minor, c.Code).Display()
}

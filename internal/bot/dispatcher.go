package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kursbot/internal/convert"
	"kursbot/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Status int

const (
	StatusHandled Status = iota
	StatusNotMatched
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusHandled:
		return "handled"
	case StatusNotMatched:
		return "not_matched"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result is the explicit tri-state outcome of handling one message. A
// NotMatched result tells the messaging boundary to continue to other
// handlers; Handled and Failed both carry a reply to send.
type Result struct {
	Status Status
	Reply  string
}

type RateProvider interface {
	GetRates(ctx context.Context) *domain.RateTable
}

// Dispatcher is the core message handler: menu commands first, then the
// conversion pipeline (parse, convert, format).
type Dispatcher struct {
	parser *convert.Parser
	rates  RateProvider
	now    func() time.Time
}

func NewDispatcher(rates RateProvider) *Dispatcher {
	return &Dispatcher{
		parser: convert.NewParser(MenuLabels()),
		rates:  rates,
		now:    time.Now,
	}
}

func (d *Dispatcher) Handle(ctx context.Context, text string) Result {
	msgID := uuid.NewString()
	trimmed := strings.TrimSpace(text)

	if reply, ok := d.handleMenu(ctx, trimmed); ok {
		logrus.WithFields(logrus.Fields{"message_id": msgID, "label": trimmed}).Info("Menu command handled")
		return Result{Status: StatusHandled, Reply: reply}
	}

	req, ok := d.parser.Parse(trimmed)
	if !ok {
		return Result{Status: StatusNotMatched}
	}

	table := d.rates.GetRates(ctx)
	res, err := convert.Convert(req.Amount, req.From, req.To, table)
	if err != nil {
		if errors.Is(err, domain.ErrCurrencyNotFound) {
			logrus.WithFields(logrus.Fields{"message_id": msgID, "from": req.From, "to": req.To}).
				Info("Requested currency missing from rate table")
			return Result{Status: StatusHandled, Reply: unknownCurrencyReply()}
		}
		logrus.WithError(err).WithField("message_id", msgID).Error("Conversion failed")
		return Result{Status: StatusFailed, Reply: "❌ Ошибка при конвертации. Попробуйте позже."}
	}
	res.Request.OriginalText = req.OriginalText

	logrus.WithFields(logrus.Fields{
		"message_id": msgID,
		"from":       req.From,
		"to":         req.To,
		"amount":     req.Amount,
	}).Info("Conversion handled")
	return Result{Status: StatusHandled, Reply: convert.FormatConversion(res)}
}

func (d *Dispatcher) handleMenu(ctx context.Context, label string) (string, bool) {
	switch label {
	case LabelRates:
		return mainMenuText, true
	case LabelFiat:
		return convert.FormatFiatRates(d.rates.GetRates(ctx), d.now()), true
	case LabelAllRates:
		return convert.FormatAllRates(d.rates.GetRates(ctx), d.now()), true
	case LabelChanges:
		return convert.FormatChanges(d.rates.GetRates(ctx), d.now()), true
	case LabelConverter:
		return converterHelpText, true
	case LabelBack:
		return backText, true
	}
	return "", false
}

func unknownCurrencyReply() string {
	codes := domain.SupportedCodes()
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = string(c)
	}
	return fmt.Sprintf("❌ Не удалось найти курсы для указанных валют.\nДоступные валюты: %s",
		strings.Join(names, ", "))
}

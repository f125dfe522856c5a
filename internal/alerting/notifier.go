package alerting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Notification carries a maneuver recommendation for one conjunction.
type Notification struct {
	ConjunctionID        string
	Satellite            string
	Debris               string
	TCA                  time.Time
	RiskLevel            string
	CollisionProbability decimal.Decimal
	RiskTolerance        decimal.Decimal
	ManeuverCost         decimal.Decimal
	ExpectedLoss         decimal.Decimal
	ShouldManeuver       bool
	AdditionalMsg        string
}

// Notifier delivers recommendations to an operator channel.
type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

// TelegramNotifier pushes messages through the Telegram Bot API.
type TelegramNotifier struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
	logger   zerolog.Logger
}

// NewTelegramNotifier constructs a Telegram notifier.
func NewTelegramNotifier(botToken, chatID, baseURL string, timeout time.Duration, logger zerolog.Logger) *TelegramNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if baseURL == "" {
		baseURL = "https://api.telegram.org"
	}

	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		logger:   logger.With().Str("component", "alert_telegram").Logger(),
	}
}

type sendMessageRequest struct {
	ChatID              string `json:"chat_id"`
	Text                string `json:"text"`
	DisableNotification bool   `json:"disable_notification,omitempty"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Notify sends the rendered recommendation via sendMessage. Accept-risk
// outcomes are delivered silently.
func (n *TelegramNotifier) Notify(ctx context.Context, note Notification) error {
	err := n.sendMessage(ctx, sendMessageRequest{
		ChatID:              n.chatID,
		Text:                renderMessage(note),
		DisableNotification: !note.ShouldManeuver,
	})
	if err != nil {
		return err
	}

	n.logger.Info().
		Str("conjunction", note.ConjunctionID).
		Bool("should_maneuver", note.ShouldManeuver).
		Msg("recommendation sent")
	return nil
}

func (n *TelegramNotifier) sendMessage(ctx context.Context, msg sendMessageRequest) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	endpoint := n.baseURL + "/bot" + n.botToken + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram request: %w", err)
	}
	defer resp.Body.Close()

	var result sendMessageResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&result)

	switch {
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		if result.Description != "" {
			return fmt.Errorf("telegram returned status %d: %s", resp.StatusCode, result.Description)
		}
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	case decodeErr != nil:
		return fmt.Errorf("decode telegram response: %w", decodeErr)
	case !result.OK:
		return fmt.Errorf("telegram rejected message: %s", result.Description)
	}
	return nil
}

func renderMessage(note Notification) string {
	recommendation := "ACCEPT RISK"
	if note.ShouldManeuver {
		recommendation = "PERFORM MANEUVER"
	}

	builder := strings.Builder{}
	builder.WriteString(fmt.Sprintf("[Conjunction %s] %s\n", note.ConjunctionID, recommendation))
	builder.WriteString(fmt.Sprintf("Satellite: %s\n", note.Satellite))
	builder.WriteString(fmt.Sprintf("Debris: %s\n", note.Debris))
	if !note.TCA.IsZero() {
		builder.WriteString(fmt.Sprintf("TCA: %s UTC\n", note.TCA.UTC().Format(time.RFC3339)))
	}
	if note.RiskLevel != "" {
		builder.WriteString(fmt.Sprintf("Risk level: %s\n", note.RiskLevel))
	}
	builder.WriteString(fmt.Sprintf("Collision probability: %s%% (tolerance %s%%)\n",
		note.CollisionProbability.Shift(2).StringFixed(4), note.RiskTolerance.Shift(2).StringFixed(4)))
	builder.WriteString(fmt.Sprintf("Maneuver cost: $%s\n", note.ManeuverCost.StringFixed(2)))
	builder.WriteString(fmt.Sprintf("Expected loss: $%s\n", note.ExpectedLoss.StringFixed(2)))
	if note.AdditionalMsg != "" {
		builder.WriteString(note.AdditionalMsg)
	}
	return builder.String()
}

var _ Notifier = (*TelegramNotifier)(nil)

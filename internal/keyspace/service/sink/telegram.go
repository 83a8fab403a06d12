package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/keyspace/model"
)

const (
	defaultTelegramURL     = "https://api.telegram.org"
	defaultTelegramTimeout = 10 * time.Second
)

type TelegramConfig struct {
	BotToken string
	ChatID   string
	// BaseURL overrides the Bot API host.
	BaseURL string
	Timeout time.Duration
}

// TelegramNotifier sends the match message to a chat through the Bot API.
type TelegramNotifier struct {
	endpoint string
	chatID   string
	http     *http.Client
}

func NewTelegramNotifier(cfg TelegramConfig) (*TelegramNotifier, error) {
	if cfg.BotToken == "" || cfg.ChatID == "" {
		return nil, errors.New("telegram bot token and chat id are required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultTelegramURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTelegramTimeout
	}
	return &TelegramNotifier{
		endpoint: fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(base, "/"), cfg.BotToken),
		chatID:   cfg.ChatID,
		http:     &http.Client{Timeout: timeout},
	}, nil
}

func (n *TelegramNotifier) Name() string { return "telegram" }

func (n *TelegramNotifier) Notify(ctx context.Context, item model.PrivateKeyItem) error {
	form := url.Values{
		"chat_id": {n.chatID},
		"text":    {FormatMatchMessage(item)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("send telegram message: http %d", resp.StatusCode)
	}
	return nil
}

package linenotify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultAPIURL = "https://notify-api.line.me/api/notify"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки уведомлений через LINE Notify
// Отправка best-effort: при пустом токене превращается в no-op
type Client struct {
	apiURL     string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента LINE Notify
func NewClient(token string, timeout time.Duration, log Logger) *Client {
	return &Client{
		apiURL: defaultAPIURL,
		token:  token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет сообщение в LINE Notify
// Пустой токен считается успешным no-op, чтобы уведомления можно было отключить конфигурацией
func (c *Client) Send(ctx context.Context, message string) error {
	if c.token == "" {
		return nil
	}

	form := url.Values{}
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	return nil
}

package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/assist-by/aegis/internal/notification"
)

// Client는 Discord 웹훅 기반 알림 클라이언트를 구현합니다
type Client struct {
	tradeWebhook string
	errorWebhook string
	httpClient   *http.Client
}

// ClientOption은 클라이언트 생성 옵션을 정의합니다
type ClientOption func(*Client)

// WithTimeout은 HTTP 클라이언트의 타임아웃을 설정합니다
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient는 새로운 Discord 알림 클라이언트를 생성합니다
// errorWebhook이 비어 있으면 에러 알림도 tradeWebhook으로 전송됩니다
func NewClient(tradeWebhook, errorWebhook string, opts ...ClientOption) *Client {
	if errorWebhook == "" {
		errorWebhook = tradeWebhook
	}

	c := &Client{
		tradeWebhook: tradeWebhook,
		errorWebhook: errorWebhook,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}

	// 옵션 적용
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SendNotification은 제목과 본문으로 구성된 알림을 전송합니다
func (c *Client) SendNotification(subject, message string) error {
	embed := NewEmbed().
		SetTitle(subject).
		SetDescription(message).
		SetColor(notification.ColorSuccess).
		SetFooter("Aegis Trading Bot 🤖").
		SetTimestamp(time.Now())

	return c.sendToWebhook(c.tradeWebhook, WebhookMessage{
		Embeds: []Embed{*embed},
	})
}

// SendError는 에러 알림을 전송합니다
func (c *Client) SendError(err error) error {
	embed := NewEmbed().
		SetTitle("에러 발생").
		SetDescription(fmt.Sprintf("```%v```", err)).
		SetColor(notification.ColorError).
		SetFooter("Aegis Trading Bot 🤖").
		SetTimestamp(time.Now())

	return c.sendToWebhook(c.errorWebhook, WebhookMessage{
		Embeds: []Embed{*embed},
	})
}

// SendInfo는 일반 정보 알림을 전송합니다
func (c *Client) SendInfo(message string) error {
	embed := NewEmbed().
		SetDescription(message).
		SetColor(notification.ColorInfo).
		SetFooter("Aegis Trading Bot 🤖").
		SetTimestamp(time.Now())

	return c.sendToWebhook(c.tradeWebhook, WebhookMessage{
		Embeds: []Embed{*embed},
	})
}

// sendToWebhook은 웹훅 URL로 메시지를 전송합니다
func (c *Client) sendToWebhook(webhookURL string, msg WebhookMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("메시지 직렬화 실패: %w", err)
	}

	resp, err := c.httpClient.Post(webhookURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("웹훅 전송 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("웹훅 응답 에러: HTTP %d", resp.StatusCode)
	}

	return nil
}

// internal/risk/alphasquared/client.go
package alphasquared

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
)

// Client는 AlphaSquared 리스크 API 클라이언트를 구현합니다
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// ClientOption은 클라이언트 생성 옵션을 정의합니다
type ClientOption func(*Client)

// WithTimeout은 HTTP 클라이언트의 타임아웃을 설정합니다
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithBaseURL은 기본 URL을 설정합니다
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient는 새로운 AlphaSquared API 클라이언트를 생성합니다
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    "https://alphasquared.io/wp-json/as/v1",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	// 옵션 적용
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// doRequest는 HTTP 요청을 실행하고 결과를 반환합니다
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("URL 파싱 실패: %w", err)
	}
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP 에러(%d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// GetCurrentRisk는 자산의 현재 리스크 점수를 조회합니다
func (c *Client) GetCurrentRisk(ctx context.Context, asset string) (float64, error) {
	params := url.Values{}
	params.Add("symbol", asset)

	resp, err := c.doRequest(ctx, "/asset-info", params)
	if err != nil {
		return 0, fmt.Errorf("리스크 조회 실패: %w", err)
	}

	var result struct {
		Symbol      string          `json:"symbol"`
		CurrentRisk json.RawMessage `json:"current_risk"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return 0, fmt.Errorf("리스크 응답 파싱 실패: %w", err)
	}

	// current_risk는 숫자 또는 문자열로 내려올 수 있습니다
	riskValue, err := parseNumeric(result.CurrentRisk)
	if err != nil {
		return 0, fmt.Errorf("리스크 값 파싱 실패 (%s): %w", string(result.CurrentRisk), err)
	}

	return riskValue, nil
}

// GetStrategyDirective는 전략 이름과 리스크 점수에 대한 지시를 조회합니다
func (c *Client) GetStrategyDirective(ctx context.Context, strategyName string, currentRisk float64) (domain.StrategyDirective, error) {
	params := url.Values{}
	params.Add("strategy_name", strategyName)
	params.Add("risk", strconv.FormatFloat(currentRisk, 'f', -1, 64))

	resp, err := c.doRequest(ctx, "/strategy-values", params)
	if err != nil {
		return domain.StrategyDirective{}, fmt.Errorf("전략 지시 조회 실패: %w", err)
	}

	var result struct {
		StrategyName string `json:"strategy_name"`
		Action       string `json:"action"`
		Value        string `json:"value"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return domain.StrategyDirective{}, fmt.Errorf("전략 지시 파싱 실패: %w", err)
	}

	value, err := decimal.NewFromString(result.Value)
	if err != nil {
		return domain.StrategyDirective{}, fmt.Errorf("전략 값 파싱 실패 (%s): %w", result.Value, err)
	}

	return domain.StrategyDirective{
		Action: result.Action,
		Value:  value,
	}, nil
}

// parseNumeric은 숫자 또는 따옴표로 감싼 숫자 문자열을 float64로 변환합니다
func parseNumeric(raw json.RawMessage) (float64, error) {
	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(asString, 64)
}

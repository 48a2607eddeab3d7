package coinbase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// GetCryptoBalance는 특정 자산의 사용 가능한 잔고를 조회합니다
// 동일 통화의 계정이 여러 개인 경우 잔고를 합산합니다
func (c *Client) GetCryptoBalance(ctx context.Context, asset string) (decimal.Decimal, error) {
	balance := decimal.Zero
	cursor := ""

	for {
		params := url.Values{}
		params.Add("limit", "250")
		if cursor != "" {
			params.Add("cursor", cursor)
		}

		resp, err := c.doRequest(ctx, http.MethodGet, "/api/v3/brokerage/accounts", params, nil)
		if err != nil {
			return decimal.Zero, fmt.Errorf("계정 목록 조회 실패: %w", err)
		}

		var result struct {
			Accounts []struct {
				Currency         string `json:"currency"`
				AvailableBalance struct {
					Value    string `json:"value"`
					Currency string `json:"currency"`
				} `json:"available_balance"`
			} `json:"accounts"`
			HasNext bool   `json:"has_next"`
			Cursor  string `json:"cursor"`
		}
		if err := json.Unmarshal(resp, &result); err != nil {
			return decimal.Zero, fmt.Errorf("계정 응답 파싱 실패: %w", err)
		}

		for _, account := range result.Accounts {
			if account.Currency != asset {
				continue
			}
			value, err := decimal.NewFromString(account.AvailableBalance.Value)
			if err != nil {
				return decimal.Zero, fmt.Errorf("잔고 값 파싱 실패 (%s): %w", account.AvailableBalance.Value, err)
			}
			balance = balance.Add(value)
		}

		if !result.HasNext {
			break
		}
		cursor = result.Cursor
	}

	return balance, nil
}

package coinbase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
)

// GetProduct는 거래쌍의 상품 메타데이터를 조회합니다
func (c *Client) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v3/brokerage/products/"+productID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("상품 정보 조회 실패: %w", err)
	}

	var result struct {
		ProductID      string `json:"product_id"`
		Price          string `json:"price"`
		BaseIncrement  string `json:"base_increment"`
		QuoteIncrement string `json:"quote_increment"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("상품 정보 파싱 실패: %w", err)
	}

	// 가격/단위 문자열을 정확한 고정소수점 값으로 변환
	price, err := decimal.NewFromString(result.Price)
	if err != nil {
		return nil, fmt.Errorf("가격 파싱 실패 (%s): %w", result.Price, err)
	}
	baseIncrement, err := decimal.NewFromString(result.BaseIncrement)
	if err != nil {
		return nil, fmt.Errorf("수량 단위 파싱 실패 (%s): %w", result.BaseIncrement, err)
	}
	quoteIncrement, err := decimal.NewFromString(result.QuoteIncrement)
	if err != nil {
		return nil, fmt.Errorf("가격 단위 파싱 실패 (%s): %w", result.QuoteIncrement, err)
	}

	return &domain.Product{
		ProductID:      result.ProductID,
		Price:          price,
		BaseIncrement:  baseIncrement,
		QuoteIncrement: quoteIncrement,
	}, nil
}

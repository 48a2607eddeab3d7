package coinbase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
)

// orderRequest는 주문 생성 요청 본문을 정의합니다
type orderRequest struct {
	ClientOrderID      string             `json:"client_order_id"`
	ProductID          string             `json:"product_id"`
	Side               string             `json:"side"`
	OrderConfiguration orderConfiguration `json:"order_configuration"`
}

// orderConfiguration은 주문 유형별 설정을 정의합니다
type orderConfiguration struct {
	LimitLimitGTC *limitLimitGTC `json:"limit_limit_gtc,omitempty"`
}

// limitLimitGTC는 GTC 지정가 주문 설정입니다
type limitLimitGTC struct {
	BaseSize   string `json:"base_size"`
	LimitPrice string `json:"limit_price"`
}

// orderResponse는 주문 생성 응답을 정의합니다
type orderResponse struct {
	Success         bool `json:"success"`
	SuccessResponse struct {
		OrderID       string `json:"order_id"`
		ProductID     string `json:"product_id"`
		Side          string `json:"side"`
		ClientOrderID string `json:"client_order_id"`
	} `json:"success_response"`
	ErrorResponse struct {
		Error        string `json:"error"`
		Message      string `json:"message"`
		ErrorDetails string `json:"error_details"`
	} `json:"error_response"`
}

// GenerateClientOrderID는 멱등한 주문 제출을 위한 고유 ID를 생성합니다
func (c *Client) GenerateClientOrderID() string {
	return uuid.NewString()
}

// FiatLimitBuy는 호가 통화 지출 금액 기준으로 지정가 매수 주문을 생성합니다
// 지정가는 현재 시장가에 priceMultiplier를 곱한 뒤 가격 단위로 내림하고,
// 수량은 지출 금액을 지정가로 나눈 뒤 수량 단위로 내림해 계산합니다.
// 거래소가 주문 접수를 거부하면 (nil, nil)을 반환합니다.
func (c *Client) FiatLimitBuy(ctx context.Context, productID string, spendAmount, priceMultiplier decimal.Decimal) (*domain.Order, error) {
	product, err := c.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	limitPrice := domain.FloorToIncrement(product.Price.Mul(priceMultiplier), product.QuoteIncrement)
	if limitPrice.Sign() <= 0 {
		return nil, fmt.Errorf("유효하지 않은 지정가: %s", limitPrice)
	}

	baseSize := domain.FloorToIncrement(spendAmount.Div(limitPrice), product.BaseIncrement)
	if baseSize.Sign() <= 0 {
		return nil, fmt.Errorf("지출 금액 %s %s로는 최소 수량 단위 %s를 채울 수 없습니다",
			spendAmount, productID, product.BaseIncrement)
	}

	// 접수 거부는 에러가 아닌 nil 주문으로 전달됩니다
	return c.createLimitOrder(ctx, c.GenerateClientOrderID(), productID, domain.Buy, baseSize, limitPrice)
}

// LimitOrderGTCSell은 GTC 지정가 매도 주문을 생성합니다
func (c *Client) LimitOrderGTCSell(ctx context.Context, clientOrderID, productID string, baseSize, limitPrice decimal.Decimal) (*domain.Order, error) {
	order, err := c.createLimitOrder(ctx, clientOrderID, productID, domain.Sell, baseSize, limitPrice)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("매도 주문이 거부되었습니다 [심볼: %s, 수량: %s, 가격: %s]",
			productID, baseSize, limitPrice)
	}
	return order, nil
}

// createLimitOrder는 지정가 주문을 생성하고 응답을 도메인 모델로 변환합니다
// 거래소가 success=false로 응답하면 (nil, nil)을 반환합니다
func (c *Client) createLimitOrder(ctx context.Context, clientOrderID, productID string, side domain.OrderSide, baseSize, limitPrice decimal.Decimal) (*domain.Order, error) {
	req := orderRequest{
		ClientOrderID: clientOrderID,
		ProductID:     productID,
		Side:          string(side),
		OrderConfiguration: orderConfiguration{
			LimitLimitGTC: &limitLimitGTC{
				BaseSize:   baseSize.String(),
				LimitPrice: limitPrice.String(),
			},
		},
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/v3/brokerage/orders", nil, req)
	if err != nil {
		return nil, fmt.Errorf("주문 실행 실패 [심볼: %s, 방향: %s, 수량: %s]: %w",
			productID, side, baseSize, err)
	}

	var result orderResponse
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("주문 응답 파싱 실패: %w", err)
	}

	if !result.Success {
		return nil, nil
	}

	return &domain.Order{
		OrderID:       result.SuccessResponse.OrderID,
		ClientOrderID: result.SuccessResponse.ClientOrderID,
		ProductID:     result.SuccessResponse.ProductID,
		Side:          side,
		Size:          baseSize,
		Price:         limitPrice,
		CreateTime:    time.Now(),
	}, nil
}

// internal/exchange/exchange.go
package exchange

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
)

// Exchange는 거래소와의 상호작용을 위한 인터페이스입니다.
type Exchange interface {
	// 계정 데이터 조회
	GetCryptoBalance(ctx context.Context, asset string) (decimal.Decimal, error)

	// 상품 메타데이터 조회
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// 거래 기능
	// FiatLimitBuy는 호가 통화 지출 금액 기준으로 지정가 매수 주문을 생성합니다.
	// priceMultiplier는 현재 시장가에 곱해지는 지정가 배율입니다 (예: 0.995 = 0.5% 할인).
	// 거래소가 주문 접수를 거부하면 (nil, nil)을 반환합니다.
	FiatLimitBuy(ctx context.Context, productID string, spendAmount, priceMultiplier decimal.Decimal) (*domain.Order, error)

	// LimitOrderGTCSell은 GTC 지정가 매도 주문을 생성합니다.
	LimitOrderGTCSell(ctx context.Context, clientOrderID, productID string, baseSize, limitPrice decimal.Decimal) (*domain.Order, error)

	// GenerateClientOrderID는 멱등한 주문 제출을 위한 고유 ID를 생성합니다.
	GenerateClientOrderID() string
}

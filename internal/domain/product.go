package domain

import "github.com/shopspring/decimal"

// Product는 거래소가 제공하는 상품 메타데이터를 표현합니다
type Product struct {
	ProductID      string          // 거래쌍 (예: BTC-USD)
	BaseIncrement  decimal.Decimal // 수량 최소 단위 (예: 0.00000001 BTC)
	QuoteIncrement decimal.Decimal // 가격 최소 단위 (예: 0.01 USD)
	Price          decimal.Decimal // 현재 시장 가격
}

// FloorToIncrement는 값을 주어진 단위의 배수로 내림합니다
// 거래소가 허용하는 수량/가격으로 정규화할 때 사용합니다
func FloorToIncrement(value, increment decimal.Decimal) decimal.Decimal {
	if increment.Sign() <= 0 {
		return value
	}
	return value.Div(increment).Floor().Mul(increment)
}

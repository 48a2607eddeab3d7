package trader

import (
	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
)

var (
	// BuyPriceMultiplier는 매수 지정가 배율입니다 (시장가 대비 0.5% 할인)
	BuyPriceMultiplier = decimal.RequireFromString("0.995")

	// SellPriceMultiplier는 매도 지정가 배율입니다 (시장가 대비 0.5% 할증)
	SellPriceMultiplier = decimal.RequireFromString("1.005")

	oneHundred = decimal.NewFromInt(100)
)

// ComputeSellSize는 보유 잔고와 매도 비율로 매도 수량을 계산합니다
// 잔고 * 비율 / 100을 수량 최소 단위로 내림합니다
func ComputeSellSize(balance, percent, baseIncrement decimal.Decimal) decimal.Decimal {
	return domain.FloorToIncrement(balance.Mul(percent).Div(oneHundred), baseIncrement)
}

// ComputeLimitPrice는 현재 가격에 배율을 적용한 지정가를 계산합니다
// 결과는 가격 최소 단위로 내림합니다
func ComputeLimitPrice(currentPrice, multiplier, quoteIncrement decimal.Decimal) decimal.Decimal {
	return domain.FloorToIncrement(currentPrice.Mul(multiplier), quoteIncrement)
}

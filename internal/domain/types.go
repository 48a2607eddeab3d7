package domain

import "strings"

// TradeAction은 전략이 지시하는 매매 방향을 정의합니다
type TradeAction string

const (
	ActionBuy     TradeAction = "BUY"
	ActionSell    TradeAction = "SELL"
	ActionUnknown TradeAction = "UNKNOWN"
)

// ParseTradeAction은 외부 서비스가 반환한 액션 문자열을 해석합니다
// 대소문자를 구분하지 않으며, buy/sell 이외의 값은 ActionUnknown으로 처리합니다
func ParseTradeAction(s string) TradeAction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return ActionBuy
	case "sell":
		return ActionSell
	default:
		return ActionUnknown
	}
}

// String은 TradeAction의 문자열 표현을 반환합니다
func (a TradeAction) String() string {
	return string(a)
}

// OrderSide는 주문 방향을 정의합니다
type OrderSide string

const (
	Buy  OrderSide = "BUY"
	Sell OrderSide = "SELL"
)

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order는 주문 접수 결과를 표현합니다
type Order struct {
	OrderID       string          // 거래소 측 주문 ID
	ClientOrderID string          // 클라이언트 측 주문 ID
	ProductID     string          // 거래쌍
	Side          OrderSide       // 매수/매도
	Size          decimal.Decimal // 기초 자산 수량
	Price         decimal.Decimal // 지정가
	CreateTime    time.Time       // 주문 생성 시간
}

// StrategyDirective는 리스크 점수에 대해 전략이 지시한 (액션, 크기) 쌍입니다
// Action은 외부 서비스가 반환한 원본 문자열을 그대로 담습니다.
// Value의 의미는 액션에 따라 다릅니다:
//   - 매수: 호가 통화 기준 지출 금액
//   - 매도: 보유 잔고 대비 백분율
type StrategyDirective struct {
	Action string
	Value  decimal.Decimal
}

package trader

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
)

// fakeExchange는 테스트용 거래소 구현입니다
type fakeExchange struct {
	balance    decimal.Decimal
	balanceErr error
	product    *domain.Product
	productErr error
	buyOrder   *domain.Order
	buyErr     error
	sellOrder  *domain.Order
	sellErr    error

	buyCalls          int
	sellCalls         int
	lastBuySpend      decimal.Decimal
	lastBuyMultiplier decimal.Decimal
	lastClientOrderID string
	lastSellSize      decimal.Decimal
	lastSellPrice     decimal.Decimal
}

func (f *fakeExchange) GetCryptoBalance(ctx context.Context, asset string) (decimal.Decimal, error) {
	return f.balance, f.balanceErr
}

func (f *fakeExchange) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return f.product, f.productErr
}

func (f *fakeExchange) FiatLimitBuy(ctx context.Context, productID string, spendAmount, priceMultiplier decimal.Decimal) (*domain.Order, error) {
	f.buyCalls++
	f.lastBuySpend = spendAmount
	f.lastBuyMultiplier = priceMultiplier
	return f.buyOrder, f.buyErr
}

func (f *fakeExchange) LimitOrderGTCSell(ctx context.Context, clientOrderID, productID string, baseSize, limitPrice decimal.Decimal) (*domain.Order, error) {
	f.sellCalls++
	f.lastClientOrderID = clientOrderID
	f.lastSellSize = baseSize
	f.lastSellPrice = limitPrice
	return f.sellOrder, f.sellErr
}

func (f *fakeExchange) GenerateClientOrderID() string {
	return "test-client-order-id"
}

// fakeRiskClient는 테스트용 리스크 서비스 구현입니다
type fakeRiskClient struct {
	risk         float64
	riskErr      error
	directive    domain.StrategyDirective
	directiveErr error

	riskCalls      int
	directiveCalls int
}

func (f *fakeRiskClient) GetCurrentRisk(ctx context.Context, asset string) (float64, error) {
	f.riskCalls++
	return f.risk, f.riskErr
}

func (f *fakeRiskClient) GetStrategyDirective(ctx context.Context, strategyName string, currentRisk float64) (domain.StrategyDirective, error) {
	f.directiveCalls++
	return f.directive, f.directiveErr
}

// fakeNotifier는 테스트용 알림 구현입니다
type fakeNotifier struct {
	subjects []string
	messages []string
	sendErr  error
}

func (f *fakeNotifier) SendNotification(subject, message string) error {
	f.subjects = append(f.subjects, subject)
	f.messages = append(f.messages, message)
	return f.sendErr
}

func (f *fakeNotifier) SendError(err error) error { return nil }

func (f *fakeNotifier) SendInfo(message string) error { return nil }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProduct() *domain.Product {
	return &domain.Product{
		ProductID:      "BTC-USD",
		BaseIncrement:  dec("0.01"),
		QuoteIncrement: dec("0.01"),
		Price:          dec("100"),
	}
}

func TestExecuteStrategy_InputError(t *testing.T) {
	riskClient := &fakeRiskClient{}
	executor := NewExecutor(&fakeExchange{}, riskClient, nil)

	result := executor.ExecuteStrategy(context.Background(), "BTCUSD", "default")

	if result.Status != StatusInputError {
		t.Errorf("Status = %v, want %v", result.Status, StatusInputError)
	}
	if result.Err == nil {
		t.Error("잘못된 거래쌍에 대해 Err가 설정되어야 합니다")
	}
	if riskClient.riskCalls != 0 {
		t.Errorf("리스크 조회 횟수 = %d, want 0", riskClient.riskCalls)
	}
}

func TestExecuteStrategy_NoAction(t *testing.T) {
	tests := []struct {
		name      string
		directive domain.StrategyDirective
	}{
		{
			name:      "값이 0이면 주문하지 않음",
			directive: domain.StrategyDirective{Action: "buy", Value: dec("0")},
		},
		{
			name:      "값이 음수이면 주문하지 않음",
			directive: domain.StrategyDirective{Action: "sell", Value: dec("-10")},
		},
		{
			name:      "알 수 없는 액션이면 주문하지 않음",
			directive: domain.StrategyDirective{Action: "hold", Value: dec("25")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exchange := &fakeExchange{}
			riskClient := &fakeRiskClient{risk: 50, directive: tt.directive}
			executor := NewExecutor(exchange, riskClient, nil)

			result := executor.ExecuteStrategy(context.Background(), "BTC-USD", "default")

			if result.Status != StatusNoAction {
				t.Errorf("Status = %v, want %v", result.Status, StatusNoAction)
			}
			if exchange.buyCalls != 0 || exchange.sellCalls != 0 {
				t.Errorf("거래소 주문 호출이 없어야 합니다 (매수: %d, 매도: %d)",
					exchange.buyCalls, exchange.sellCalls)
			}
		})
	}
}

func TestExecuteStrategy_Buy(t *testing.T) {
	order := &domain.Order{
		OrderID:   "order-1",
		ProductID: "BTC-USD",
		Side:      domain.Buy,
		Size:      dec("0.05"),
		Price:     dec("99.5"),
	}

	exchange := &fakeExchange{buyOrder: order}
	riskClient := &fakeRiskClient{
		risk:      30,
		directive: domain.StrategyDirective{Action: "BUY", Value: dec("250")},
	}
	notifier := &fakeNotifier{}
	executor := NewExecutor(exchange, riskClient, notifier)

	result := executor.ExecuteStrategy(context.Background(), "BTC-USD", "default")

	if result.Status != StatusSuccess {
		t.Fatalf("Status = %v, want %v", result.Status, StatusSuccess)
	}
	if result.Order != order {
		t.Error("결과에 접수된 주문이 포함되어야 합니다")
	}
	if !exchange.lastBuySpend.Equal(dec("250")) {
		t.Errorf("지출 금액 = %s, want 250", exchange.lastBuySpend)
	}
	// 매수 지정가는 시장가 대비 0.5% 할인
	if !exchange.lastBuyMultiplier.Equal(dec("0.995")) {
		t.Errorf("가격 배율 = %s, want 0.995", exchange.lastBuyMultiplier)
	}
	if len(notifier.subjects) != 1 || notifier.subjects[0] != "Trade Executed - Buy Order" {
		t.Errorf("알림 제목 = %v, want [Trade Executed - Buy Order]", notifier.subjects)
	}
	if notifier.messages[0] != "Buy 0.05 BTC at $99.5" {
		t.Errorf("알림 본문 = %q", notifier.messages[0])
	}
}

func TestExecuteStrategy_BuyNilOrder(t *testing.T) {
	// 거래소가 nil 주문을 반환하면 알림 없이 중단합니다
	exchange := &fakeExchange{buyOrder: nil}
	riskClient := &fakeRiskClient{
		risk:      30,
		directive: domain.StrategyDirective{Action: "buy", Value: dec("100")},
	}
	notifier := &fakeNotifier{}
	executor := NewExecutor(exchange, riskClient, notifier)

	result := executor.ExecuteStrategy(context.Background(), "BTC-USD", "default")

	if result.Status != StatusExternalError {
		t.Errorf("Status = %v, want %v", result.Status, StatusExternalError)
	}
	if len(notifier.subjects) != 0 {
		t.Errorf("알림이 전송되지 않아야 합니다: %v", notifier.subjects)
	}
}

func TestExecuteStrategy_Sell(t *testing.T) {
	sellOrder := &domain.Order{
		OrderID:       "order-2",
		ClientOrderID: "test-client-order-id",
		ProductID:     "BTC-USD",
		Side:          domain.Sell,
		Size:          dec("5"),
		Price:         dec("100.5"),
	}

	exchange := &fakeExchange{
		balance:   dec("10"),
		product:   testProduct(),
		sellOrder: sellOrder,
	}
	riskClient := &fakeRiskClient{
		risk:      80,
		directive: domain.StrategyDirective{Action: "sell", Value: dec("50")},
	}
	notifier := &fakeNotifier{}
	executor := NewExecutor(exchange, riskClient, notifier)

	result := executor.ExecuteStrategy(context.Background(), "BTC-USD", "default")

	if result.Status != StatusSuccess {
		t.Fatalf("Status = %v, want %v", result.Status, StatusSuccess)
	}
	// sell_amount = floor(10 * 50 / 100, 0.01) = 5.00
	if !exchange.lastSellSize.Equal(dec("5")) {
		t.Errorf("매도 수량 = %s, want 5", exchange.lastSellSize)
	}
	// limit_price = floor(100 * 1.005, 0.01) = 100.50
	if !exchange.lastSellPrice.Equal(dec("100.5")) {
		t.Errorf("지정가 = %s, want 100.5", exchange.lastSellPrice)
	}
	if exchange.lastClientOrderID != "test-client-order-id" {
		t.Errorf("클라이언트 주문 ID = %q", exchange.lastClientOrderID)
	}
	if len(notifier.subjects) != 1 || notifier.subjects[0] != "Trade Executed - Sell Order" {
		t.Errorf("알림 제목 = %v, want [Trade Executed - Sell Order]", notifier.subjects)
	}
}

func TestExecuteStrategy_SellBelowMinimum(t *testing.T) {
	// sell_amount = floor(0.001 * 10 / 100, 0.01) = 0 -> 주문 없음
	exchange := &fakeExchange{
		balance: dec("0.001"),
		product: testProduct(),
	}
	riskClient := &fakeRiskClient{
		risk:      80,
		directive: domain.StrategyDirective{Action: "sell", Value: dec("10")},
	}
	executor := NewExecutor(exchange, riskClient, nil)

	result := executor.ExecuteStrategy(context.Background(), "BTC-USD", "default")

	if result.Status != StatusNoAction {
		t.Errorf("Status = %v, want %v", result.Status, StatusNoAction)
	}
	if exchange.sellCalls != 0 {
		t.Errorf("매도 주문 호출 횟수 = %d, want 0", exchange.sellCalls)
	}
}

func TestExecuteStrategy_ExternalErrors(t *testing.T) {
	boom := fmt.Errorf("연결 실패")

	tests := []struct {
		name     string
		exchange *fakeExchange
		risk     *fakeRiskClient
	}{
		{
			name:     "리스크 조회 실패",
			exchange: &fakeExchange{},
			risk:     &fakeRiskClient{riskErr: boom},
		},
		{
			name:     "전략 지시 조회 실패",
			exchange: &fakeExchange{},
			risk:     &fakeRiskClient{directiveErr: boom},
		},
		{
			name:     "매수 주문 실패",
			exchange: &fakeExchange{buyErr: boom},
			risk:     &fakeRiskClient{directive: domain.StrategyDirective{Action: "buy", Value: dec("100")}},
		},
		{
			name:     "잔고 조회 실패",
			exchange: &fakeExchange{balanceErr: boom},
			risk:     &fakeRiskClient{directive: domain.StrategyDirective{Action: "sell", Value: dec("50")}},
		},
		{
			name:     "상품 조회 실패",
			exchange: &fakeExchange{balance: dec("10"), productErr: boom},
			risk:     &fakeRiskClient{directive: domain.StrategyDirective{Action: "sell", Value: dec("50")}},
		},
		{
			name: "매도 주문 실패",
			exchange: &fakeExchange{
				balance: dec("10"),
				product: testProduct(),
				sellErr: boom,
			},
			risk: &fakeRiskClient{directive: domain.StrategyDirective{Action: "sell", Value: dec("50")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := NewExecutor(tt.exchange, tt.risk, nil)

			result := executor.ExecuteStrategy(context.Background(), "BTC-USD", "default")

			if result.Status != StatusExternalError {
				t.Errorf("Status = %v, want %v", result.Status, StatusExternalError)
			}
			if result.Err == nil {
				t.Error("외부 호출 실패 시 Err가 설정되어야 합니다")
			}
		})
	}
}

func TestExecuteStrategy_NilNotifier(t *testing.T) {
	// 알림 채널이 없어도 거래는 정상 수행되어야 합니다
	exchange := &fakeExchange{
		buyOrder: &domain.Order{OrderID: "order-3", Size: dec("1"), Price: dec("99.5")},
	}
	riskClient := &fakeRiskClient{
		directive: domain.StrategyDirective{Action: "buy", Value: dec("100")},
	}
	executor := NewExecutor(exchange, riskClient, nil)

	result := executor.ExecuteStrategy(context.Background(), "BTC-USD", "default")

	if result.Status != StatusSuccess {
		t.Errorf("Status = %v, want %v", result.Status, StatusSuccess)
	}
}

func TestExecuteStrategy_NotificationFailure(t *testing.T) {
	// 알림 실패는 거래 결과에 영향을 주지 않습니다
	exchange := &fakeExchange{
		buyOrder: &domain.Order{OrderID: "order-4", Size: dec("1"), Price: dec("99.5")},
	}
	riskClient := &fakeRiskClient{
		directive: domain.StrategyDirective{Action: "buy", Value: dec("100")},
	}
	notifier := &fakeNotifier{sendErr: fmt.Errorf("웹훅 에러")}
	executor := NewExecutor(exchange, riskClient, notifier)

	result := executor.ExecuteStrategy(context.Background(), "BTC-USD", "default")

	if result.Status != StatusSuccess {
		t.Errorf("Status = %v, want %v", result.Status, StatusSuccess)
	}
}

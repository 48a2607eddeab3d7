package trader

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/assist-by/aegis/internal/domain"
	"github.com/assist-by/aegis/internal/exchange"
	"github.com/assist-by/aegis/internal/notification"
	"github.com/assist-by/aegis/internal/risk"
)

// Executor는 리스크 기반 전략 실행기를 구현합니다
// 외부 리스크 서비스의 판단을 주문으로 변환하는 것이 유일한 책임이며,
// 모든 실패는 내부에서 로깅되고 Result로만 호출자에게 전달됩니다.
type Executor struct {
	exchange exchange.Exchange
	risk     risk.Client
	notifier notification.Notifier // 알림 채널 미설정 시 nil
}

// NewExecutor는 새로운 전략 실행기를 생성합니다
// notifier는 nil일 수 있으며, 이 경우 모든 알림은 건너뜁니다
func NewExecutor(exchange exchange.Exchange, riskClient risk.Client, notifier notification.Notifier) *Executor {
	return &Executor{
		exchange: exchange,
		risk:     riskClient,
		notifier: notifier,
	}
}

// ExecuteStrategy는 거래쌍에 대해 전략을 1회 평가하고 필요 시 주문을 접수합니다
// 1. 거래쌍 분해
// 2. 현재 리스크 조회
// 3. 전략 지시 조회
// 4. 크기가 0 이하이면 무행동
// 5. 액션에 따라 매수/매도 경로 실행
func (e *Executor) ExecuteStrategy(ctx context.Context, productID, strategyName string) Result {
	result := Result{Pair: productID, Strategy: strategyName}

	pair, err := domain.ParsePair(productID)
	if err != nil {
		return e.fail(result, StatusInputError, NewExecError(productID, "parse_pair", err))
	}

	currentRisk, err := e.risk.GetCurrentRisk(ctx, pair.Asset)
	if err != nil {
		return e.fail(result, StatusExternalError, NewExecError(productID, "get_current_risk", err))
	}
	log.Printf("[%s] 현재 리스크: %.2f", pair.Asset, currentRisk)

	directive, err := e.risk.GetStrategyDirective(ctx, strategyName, currentRisk)
	if err != nil {
		return e.fail(result, StatusExternalError, NewExecError(productID, "get_strategy_directive", err))
	}
	log.Printf("[%s] 전략 지시: 액션=%s, 값=%s", productID, directive.Action, directive.Value)

	if directive.Value.Sign() <= 0 {
		log.Printf("[%s] 현재 리스크와 전략 기준으로 실행할 작업이 없습니다", productID)
		result.Status = StatusNoAction
		return result
	}

	switch domain.ParseTradeAction(directive.Action) {
	case domain.ActionBuy:
		result.Action = domain.ActionBuy
		return e.executeBuy(ctx, result, pair, directive.Value)
	case domain.ActionSell:
		result.Action = domain.ActionSell
		return e.executeSell(ctx, result, pair, directive.Value)
	default:
		log.Printf("[%s] 알 수 없는 액션: %s. 거래를 실행하지 않습니다", productID, directive.Action)
		result.Action = domain.ActionUnknown
		result.Status = StatusNoAction
		return result
	}
}

// executeBuy는 매수 경로를 실행합니다
// spendAmount는 호가 통화 기준 지출 금액입니다. 지정가는 시장가 대비 0.5% 할인되어
// 즉시 체결에 가까우면서 소폭의 가격 이점을 노립니다.
func (e *Executor) executeBuy(ctx context.Context, result Result, pair domain.Pair, spendAmount decimal.Decimal) Result {
	productID := pair.String()

	order, err := e.exchange.FiatLimitBuy(ctx, productID, spendAmount, BuyPriceMultiplier)
	if err != nil {
		return e.fail(result, StatusExternalError, NewExecError(productID, "fiat_limit_buy", err))
	}
	if order == nil {
		// 거래소의 접수 거부 신호입니다. 알림 없이 중단합니다
		return e.fail(result, StatusExternalError,
			NewExecError(productID, "fiat_limit_buy", fmt.Errorf("거래소가 매수 주문에 nil을 반환했습니다")))
	}

	e.notifyTrade("Buy", pair.Asset, order.Size.String(), order.Price.String())
	log.Printf("[%s] 매수 지정가 주문 접수: ID=%s, 수량=%s, 가격=%s",
		productID, order.OrderID, order.Size, order.Price)

	result.Status = StatusSuccess
	result.Order = order
	return result
}

// executeSell은 매도 경로를 실행합니다
// percent는 보유 잔고 대비 매도 비율입니다. 계산된 수량이 수량 최소 단위 이하이면
// 거래소 최소 주문 조건을 채울 수 없으므로 주문하지 않습니다.
func (e *Executor) executeSell(ctx context.Context, result Result, pair domain.Pair, percent decimal.Decimal) Result {
	productID := pair.String()

	balance, err := e.exchange.GetCryptoBalance(ctx, pair.Asset)
	if err != nil {
		return e.fail(result, StatusExternalError, NewExecError(productID, "get_crypto_balance", err))
	}
	log.Printf("[%s] 현재 잔고: %s", pair.Asset, balance)

	product, err := e.exchange.GetProduct(ctx, productID)
	if err != nil {
		return e.fail(result, StatusExternalError, NewExecError(productID, "get_product", err))
	}
	log.Printf("[%s] 현재 가격: %s %s", pair.Asset, product.Price, pair.Quote)

	sellSize := ComputeSellSize(balance, percent, product.BaseIncrement)
	log.Printf("[%s] 매도 수량: %s", pair.Asset, sellSize)

	if !sellSize.GreaterThan(product.BaseIncrement) {
		log.Printf("[%s] 매도 수량 %s가 최소 단위 %s 이하입니다. 주문하지 않습니다",
			pair.Asset, sellSize, product.BaseIncrement)
		result.Status = StatusNoAction
		return result
	}

	limitPrice := ComputeLimitPrice(product.Price, SellPriceMultiplier, product.QuoteIncrement)

	order, err := e.exchange.LimitOrderGTCSell(ctx, e.exchange.GenerateClientOrderID(), productID, sellSize, limitPrice)
	if err != nil {
		return e.fail(result, StatusExternalError, NewExecError(productID, "limit_order_gtc_sell", err))
	}

	e.notifyTrade("Sell", pair.Asset, sellSize.String(), order.Price.String())
	log.Printf("[%s] 매도 지정가 주문 접수: 수량=%s, 가격=%s %s, ID=%s",
		productID, sellSize, limitPrice, pair.Quote, order.OrderID)

	result.Status = StatusSuccess
	result.Order = order
	return result
}

// notifyTrade는 거래 실행 알림을 전송합니다
// 알림 실패는 로깅만 하며 거래 결과에 영향을 주지 않습니다
func (e *Executor) notifyTrade(tradeType, asset, amount, price string) {
	if e.notifier == nil {
		return
	}

	subject := fmt.Sprintf("Trade Executed - %s Order", tradeType)
	message := fmt.Sprintf("%s %s %s at $%s", tradeType, amount, asset, price)

	if err := e.notifier.SendNotification(subject, message); err != nil {
		log.Printf("%s 주문 알림 전송 실패: %v", tradeType, err)
	}
}

// fail은 실패를 로깅하고 해당 상태의 Result를 반환합니다
func (e *Executor) fail(result Result, status Status, err *ExecError) Result {
	log.Printf("%v", err)
	result.Status = status
	result.Err = err
	return result
}

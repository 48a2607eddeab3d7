package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/assist-by/aegis/internal/config"
	"github.com/assist-by/aegis/internal/exchange/coinbase"
	"github.com/assist-by/aegis/internal/notification"
	"github.com/assist-by/aegis/internal/notification/discord"
	"github.com/assist-by/aegis/internal/risk/alphasquared"
	"github.com/assist-by/aegis/internal/trader"
)

func main() {
	// 명령줄 플래그 정의
	pairFlag := flag.String("pair", "", "단일 거래쌍만 평가 (예: BTC-USD)")
	strategyFlag := flag.String("strategy", "", "사용할 전략 이름 (설정값 대신)")

	// 플래그 파싱
	flag.Parse()

	// 컨텍스트 생성
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 로그 설정
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("전략 실행기 시작...")

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("설정 로드 실패: %v", err)
	}

	// Discord 알림 클라이언트 생성 (웹훅이 설정된 경우에만)
	var notifier notification.Notifier
	if cfg.Discord.TradeWebhook != "" {
		notifier = discord.NewClient(
			cfg.Discord.TradeWebhook,
			cfg.Discord.ErrorWebhook,
			discord.WithTimeout(cfg.App.RequestTimeout),
		)
	} else {
		log.Println("알림 웹훅이 설정되지 않았습니다. 알림 없이 실행합니다")
	}

	// 코인베이스 클라이언트 생성
	coinbaseClient := coinbase.NewClient(
		cfg.Coinbase.APIKey,
		cfg.Coinbase.APISecret,
		coinbase.WithTimeout(cfg.App.RequestTimeout),
	)

	// AlphaSquared 클라이언트 생성
	riskClient := alphasquared.NewClient(
		cfg.AlphaSquared.APIKey,
		alphasquared.WithBaseURL(cfg.AlphaSquared.BaseURL),
		alphasquared.WithTimeout(cfg.App.RequestTimeout),
	)

	// 전략 실행기 생성
	executor := trader.NewExecutor(coinbaseClient, riskClient, notifier)

	// 평가할 거래쌍과 전략 결정
	pairs := cfg.Trading.Pairs
	if *pairFlag != "" {
		pairs = []string{*pairFlag}
	}

	strategyName := cfg.Trading.Strategy
	if *strategyFlag != "" {
		strategyName = *strategyFlag
	}

	// 거래쌍별로 전략을 1회 평가 (반복 실행 스케줄링은 호출자 몫)
	exitCode := 0
	for _, pair := range pairs {
		result := executor.ExecuteStrategy(ctx, pair, strategyName)

		switch result.Status {
		case trader.StatusSuccess:
			log.Printf("[%s] 실행 완료: 액션=%s, 주문 ID=%s",
				result.Pair, result.Action, result.Order.OrderID)
		case trader.StatusNoAction:
			log.Printf("[%s] 실행 완료: 주문 없음", result.Pair)
		default:
			log.Printf("[%s] 실행 실패 (%s): %v", result.Pair, result.Status, result.Err)
			if notifier != nil {
				if err := notifier.SendError(result.Err); err != nil {
					log.Printf("에러 알림 전송 실패: %v", err)
				}
			}
			exitCode = 1
		}
	}

	log.Println("프로그램을 종료합니다.")
	os.Exit(exitCode)
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// 코인베이스 API 설정
	Coinbase struct {
		APIKey    string `envconfig:"COINBASE_API_KEY" required:"true"`
		APISecret string `envconfig:"COINBASE_API_SECRET" required:"true"`
	}

	// AlphaSquared 리스크 API 설정
	AlphaSquared struct {
		APIKey  string `envconfig:"ALPHASQUARED_API_KEY" required:"true"`
		BaseURL string `envconfig:"ALPHASQUARED_BASE_URL" default:"https://alphasquared.io/wp-json/as/v1"`
	}

	// 디스코드 웹훅 설정 (선택)
	Discord struct {
		TradeWebhook string `envconfig:"DISCORD_TRADE_WEBHOOK"`
		ErrorWebhook string `envconfig:"DISCORD_ERROR_WEBHOOK"`
	}

	// 거래 설정
	Trading struct {
		Pairs    []string `envconfig:"TRADING_PAIRS" default:"BTC-USD"`
		Strategy string   `envconfig:"TRADING_STRATEGY" default:"default"`
	}

	// 애플리케이션 설정
	App struct {
		RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
	}
}

// ValidateConfig는 설정이 유효한지 확인합니다.
func ValidateConfig(cfg *Config) error {
	if len(cfg.Trading.Pairs) == 0 {
		return fmt.Errorf("거래쌍이 하나 이상 필요합니다")
	}

	for _, pair := range cfg.Trading.Pairs {
		if !strings.Contains(pair, "-") {
			return fmt.Errorf("잘못된 거래쌍 형식: %q (ASSET-QUOTE 형식이어야 합니다)", pair)
		}
	}

	if cfg.App.RequestTimeout < 1*time.Second {
		return fmt.Errorf("REQUEST_TIMEOUT은 1초 이상이어야 합니다")
	}

	return nil
}

// LoadConfig는 환경변수에서 설정을 로드합니다.
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (없으면 환경변수만 사용)
	_ = godotenv.Load()

	var cfg Config
	// 환경변수를 구조체로 파싱
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("환경변수 처리 실패: %w", err)
	}

	// 설정값 검증
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("설정값 검증 실패: %w", err)
	}

	return &cfg, nil
}

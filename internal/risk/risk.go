// internal/risk/risk.go
package risk

import (
	"context"

	"github.com/assist-by/aegis/internal/domain"
)

// Client는 외부 리스크 평가 서비스와의 상호작용을 위한 인터페이스입니다.
// 리스크 점수의 의미와 전략별 매핑은 전적으로 외부 서비스가 정의합니다.
type Client interface {
	// GetCurrentRisk는 자산의 현재 리스크 점수를 조회합니다
	GetCurrentRisk(ctx context.Context, asset string) (float64, error)

	// GetStrategyDirective는 전략 이름과 리스크 점수에 대한 (액션, 크기) 지시를 조회합니다
	GetStrategyDirective(ctx context.Context, strategyName string, currentRisk float64) (domain.StrategyDirective, error)
}

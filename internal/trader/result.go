package trader

import "github.com/assist-by/aegis/internal/domain"

// Status는 전략 실행 결과의 종류를 정의합니다
type Status int

const (
	// StatusSuccess는 주문이 정상적으로 접수된 상태입니다
	StatusSuccess Status = iota
	// StatusNoAction은 전략 판단에 따라 주문 없이 종료된 상태입니다
	StatusNoAction
	// StatusInputError는 잘못된 입력(거래쌍 형식 등)으로 종료된 상태입니다
	StatusInputError
	// StatusExternalError는 외부 서비스 호출 실패로 종료된 상태입니다
	StatusExternalError
)

// String은 Status의 문자열 표현을 반환합니다
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusNoAction:
		return "NoAction"
	case StatusInputError:
		return "InputError"
	case StatusExternalError:
		return "ExternalError"
	default:
		return "Unknown"
	}
}

// Result는 전략 실행 한 회의 결과를 표현합니다
// 실행기는 에러를 호출자에게 전파하지 않고 내부에서 로깅하며,
// Result는 호출자에게 결과를 알리는 용도로만 사용됩니다.
type Result struct {
	Status   Status             // 실행 결과 종류
	Pair     string             // 평가한 거래쌍
	Strategy string             // 사용한 전략 이름
	Action   domain.TradeAction // 전략이 지시한 액션
	Order    *domain.Order      // 접수된 주문 (없으면 nil)
	Err      error              // 실패 시 원인 (로깅 완료됨)
}

package trader

import "fmt"

// ExecError는 전략 실행 중 발생한 에러를 실패 지점과 함께 표현합니다
type ExecError struct {
	Pair string
	Op   string
	Err  error
}

// Error는 error 인터페이스를 구현합니다
func (e *ExecError) Error() string {
	if e.Pair != "" {
		return fmt.Sprintf("전략 실행 에러 [%s, 작업: %s]: %v", e.Pair, e.Op, e.Err)
	}
	return fmt.Sprintf("전략 실행 에러 [작업: %s]: %v", e.Op, e.Err)
}

// Unwrap은 내부 에러를 반환합니다 (errors.Is/As 지원을 위함)
func (e *ExecError) Unwrap() error {
	return e.Err
}

// NewExecError는 새로운 ExecError를 생성합니다
func NewExecError(pair, op string, err error) *ExecError {
	return &ExecError{
		Pair: pair,
		Op:   op,
		Err:  err,
	}
}

package notification

const (
	ColorSuccess = 0x00FF00 // 녹색
	ColorError   = 0xFF0000 // 빨간색
	ColorInfo    = 0x0000FF // 파란색
)

// Notifier는 알림 전송 인터페이스를 정의합니다
// 알림 채널이 설정되지 않은 경우 실행기는 nil Notifier로 동작하며
// 모든 알림 호출은 건너뜁니다.
type Notifier interface {
	// SendNotification은 제목과 본문으로 구성된 알림을 전송합니다
	SendNotification(subject, message string) error

	// SendError는 에러 알림을 전송합니다
	SendError(err error) error

	// SendInfo는 일반 정보 알림을 전송합니다
	SendInfo(message string) error
}

package domain

import (
	"fmt"
	"strings"
)

// Pair는 거래쌍을 자산/호가 통화로 분해한 결과를 표현합니다
type Pair struct {
	Asset string // 기초 자산 (예: BTC)
	Quote string // 호가 통화 (예: USD)
}

// ParsePair는 "ASSET-QUOTE" 형식의 거래쌍 문자열을 분해합니다
// 구분자가 없거나 한쪽이 비어 있으면 에러를 반환합니다
func ParsePair(productID string) (Pair, error) {
	asset, quote, found := strings.Cut(productID, "-")
	if !found || asset == "" || quote == "" {
		return Pair{}, fmt.Errorf("잘못된 거래쌍 형식: %q (ASSET-QUOTE 형식이어야 합니다)", productID)
	}
	return Pair{Asset: asset, Quote: quote}, nil
}

// String은 거래쌍의 문자열 표현을 반환합니다
func (p Pair) String() string {
	return p.Asset + "-" + p.Quote
}

package voiceoversvc

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const (
	tokenRandomMinBytes = 24
	tokenRandomMaxBytes = 32

	// Số lần thử lại khi token sinh ra trùng với token đã tồn tại.
	tokenMaxAttempts = 5
)

// GenerateEditPackToken sinh token truy cập cho gói bàn giao: uuid + "-" + chuỗi
// ngẫu nhiên base64url. Độ dài phần ngẫu nhiên dao động 24..32 byte.
func GenerateEditPackToken() (string, error) {
	span := int64(tokenRandomMaxBytes - tokenRandomMinBytes + 1)
	n, err := rand.Int(rand.Reader, big.NewInt(span))
	if err != nil {
		return "", fmt.Errorf("sinh độ dài token: %w", err)
	}
	size := tokenRandomMinBytes + int(n.Int64())

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("sinh token ngẫu nhiên: %w", err)
	}

	return uuid.NewString() + "-" + base64.RawURLEncoding.EncodeToString(buf), nil
}

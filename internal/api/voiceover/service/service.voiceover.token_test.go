// Package voiceoversvc - Test sinh token gói bàn giao.
package voiceoversvc

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateEditPackToken_DinhDang(t *testing.T) {
	token, err := GenerateEditPackToken()
	if err != nil {
		t.Fatalf("GenerateEditPackToken lỗi: %v", err)
	}

	// uuid chuẩn có 4 dấu gạch, phần ngẫu nhiên nối sau dấu gạch thứ 5
	parts := strings.SplitN(token, "-", 6)
	if len(parts) != 6 {
		t.Fatalf("token không đúng định dạng uuid-random: %s", token)
	}
	uuidPart := strings.Join(parts[:5], "-")
	if _, err := uuid.Parse(uuidPart); err != nil {
		t.Errorf("phần đầu token không phải uuid hợp lệ: %s", uuidPart)
	}

	randomPart := parts[5]
	raw, err := base64.RawURLEncoding.DecodeString(randomPart)
	if err != nil {
		t.Fatalf("phần ngẫu nhiên không phải base64url: %s", randomPart)
	}
	if len(raw) < tokenRandomMinBytes || len(raw) > tokenRandomMaxBytes {
		t.Errorf("độ dài phần ngẫu nhiên %d nằm ngoài [%d, %d]", len(raw), tokenRandomMinBytes, tokenRandomMaxBytes)
	}
}

func TestGenerateEditPackToken_KhongTrungLap(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		token, err := GenerateEditPackToken()
		if err != nil {
			t.Fatalf("GenerateEditPackToken lỗi: %v", err)
		}
		if seen[token] {
			t.Fatalf("token trùng lặp sau %d lần sinh: %s", i, token)
		}
		seen[token] = true
	}
}

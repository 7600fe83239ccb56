package utility

import (
	"encoding/json"
	"strconv"
)

// P2Float64 chuyển đổi interface thành float64.
// Hỗ trợ json.Number (body đã decode với UseNumber) và string (query param).
func P2Float64(input interface{}) float64 {
	switch v := input.(type) {
	case json.Number:
		number, err := v.Float64()
		if err != nil {
			return 0
		}
		return number
	case string:
		number, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return number
	case float64:
		return v
	default:
		return 0
	}
}

// P2Int64 chuyển đổi interface thành int64.
// Hỗ trợ json.Number (body đã decode với UseNumber) và string (query param).
func P2Int64(input interface{}) int64 {
	switch v := input.(type) {
	case json.Number:
		result, err := v.Int64()
		if err != nil {
			return 0
		}
		return result
	case string:
		result, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return result
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}

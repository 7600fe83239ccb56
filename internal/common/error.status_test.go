package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestErrorIs kiểm tra so khớp lỗi qua errors.Is
func TestErrorIs(t *testing.T) {
	err := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	assert.True(t, errors.Is(err, ErrNotFound), "Lỗi cùng mã và message phải khớp ErrNotFound")

	other := NewError(ErrCodeDatabaseQuery, "Dữ liệu đã tồn tại", StatusConflict, nil)
	assert.False(t, errors.Is(other, ErrNotFound), "Lỗi khác message không được khớp ErrNotFound")
	assert.False(t, errors.Is(err, nil), "So khớp với nil phải trả về false")
}

// TestNewInvalidTransitionError kiểm tra cấu trúc lỗi chuyển trạng thái
func TestNewInvalidTransitionError(t *testing.T) {
	err := NewInvalidTransitionError("DRAFT", "PUBLISHED", []string{"SCRIPT_READY", "ARCHIVED"})

	var appErr *Error
	assert.True(t, errors.As(err, &appErr), "Phải là *common.Error")
	assert.Equal(t, ErrCodeWorkflowTransition.Code, appErr.Code.Code, "Mã lỗi phải là mã chuyển trạng thái workflow")
	assert.Equal(t, StatusBadRequest, appErr.StatusCode, "Status code phải là 400")

	details, ok := appErr.Details.(map[string]interface{})
	assert.True(t, ok, "Details phải là map")
	assert.Equal(t, "DRAFT", details["currentStatus"], "currentStatus phải là trạng thái hiện tại")
	assert.Equal(t, "PUBLISHED", details["requestedStatus"], "requestedStatus phải là trạng thái đích")
	assert.ElementsMatch(t, []string{"SCRIPT_READY", "ARCHIVED"}, details["allowedTransitions"], "allowedTransitions phải chứa các trạng thái kế tiếp hợp lệ")
}

// TestConvertMongoError kiểm tra chuyển đổi lỗi MongoDB sang lỗi hệ thống
func TestConvertMongoError(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil), "Lỗi nil phải trả về nil")

	// ErrNotFound phải được giữ nguyên để caller phân biệt 404 với lỗi DB
	converted := ConvertMongoError(ErrNotFound)
	assert.True(t, errors.Is(converted, ErrNotFound), "ErrNotFound không được convert sang lỗi khác")

	// Driver báo không match document nào là 404, không phải lỗi DB; các lệnh
	// FindOneAndUpdate có filter điều kiện dựa vào mapping này để phát hiện no-match
	noDoc := ConvertMongoError(mongo.ErrNoDocuments)
	assert.True(t, errors.Is(noDoc, ErrNotFound), "ErrNoDocuments phải map sang ErrNotFound")

	// Lỗi command theo dải mã
	connErr := ConvertMongoError(mongo.CommandError{Code: 150, Message: "host unreachable"})
	assert.True(t, errors.Is(connErr, ErrMongoConnection), "Mã 1xx phải map sang lỗi kết nối")

	// Lỗi không xác định phải về lỗi hệ thống chung, không bị nuốt
	generic := ConvertMongoError(errors.New("boom"))
	var appErr *Error
	assert.True(t, errors.As(generic, &appErr), "Lỗi không xác định phải được bọc thành *common.Error")
	assert.Equal(t, StatusInternalServerError, appErr.StatusCode, "Lỗi không xác định phải có status 500")
}

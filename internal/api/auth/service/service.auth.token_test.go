package authsvc

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	models "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	"github.com/Ujju04/smartjharkhand/internal/common"
)

const testSecret = "test-secret"

func testWorker() *models.AdminUser {
	return &models.AdminUser{
		WorkerID: "worker001",
		Username: "worker1",
		Role:     models.RoleLowerAdmin,
		IsActive: true,
	}
}

// TestCreateAndParseAccessToken kiểm tra token ký ra parse lại đúng claims
func TestCreateAndParseAccessToken(t *testing.T) {
	token, err := CreateAccessToken(testWorker(), testSecret, 24*time.Hour)
	assert.NoError(t, err, "Ký token không được lỗi")
	assert.NotEmpty(t, token)

	claims, err := ParseAccessToken(token, testSecret)
	assert.NoError(t, err, "Parse token hợp lệ không được lỗi")
	assert.Equal(t, "worker001", claims.UserID)
	assert.Equal(t, "worker1", claims.Username)
	assert.Equal(t, models.RoleLowerAdmin, claims.Role)

	// Hạn token xấp xỉ 24 giờ kể từ lúc ký
	ttl := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (24 * time.Hour).Seconds(), ttl.Seconds(), 60, "Token phải có hạn 24 giờ")
}

// TestParseAccessTokenExpired kiểm tra token hết hạn trả về ErrTokenExpired
func TestParseAccessTokenExpired(t *testing.T) {
	token, err := CreateAccessToken(testWorker(), testSecret, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseAccessToken(token, testSecret)
	assert.True(t, errors.Is(err, common.ErrTokenExpired), "Token hết hạn phải trả về ErrTokenExpired, nhận: %v", err)
}

// TestParseAccessTokenWrongSecret kiểm tra token ký bằng secret khác bị từ chối
func TestParseAccessTokenWrongSecret(t *testing.T) {
	token, err := CreateAccessToken(testWorker(), "other-secret", 24*time.Hour)
	assert.NoError(t, err)

	_, err = ParseAccessToken(token, testSecret)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid), "Token sai chữ ký phải trả về ErrTokenInvalid, nhận: %v", err)
}

// TestParseAccessTokenGarbage kiểm tra chuỗi không phải JWT bị từ chối
func TestParseAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken("not-a-jwt", testSecret)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

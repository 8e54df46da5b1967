// Package authsvc - service xác thực tài khoản quản trị.
package authsvc

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	models "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	"github.com/Ujju04/smartjharkhand/internal/common"
)

// AccessClaims là payload của access token
type AccessClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// CreateAccessToken ký một access token HS256 cho worker, hết hạn sau ttl
func CreateAccessToken(worker *models.AdminUser, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		UserID:   worker.WorkerID,
		Username: worker.Username,
		Role:     worker.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken kiểm tra chữ ký và hạn của token, trả về claims.
// Token hết hạn trả về ErrTokenExpired, các lỗi khác trả về ErrTokenInvalid.
func ParseAccessToken(tokenString string, secret string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// File: internal/service/authorize.go
package service

import (
	"errors"

	"dawah-qa/internal/model"
)

// ErrInsufficientRole 身份有效但權限不足
var ErrInsufficientRole = errors.New("insufficient role")

// Authorize 檢查已驗證身份是否具備要求的角色
// admin 可通過任何角色要求
func Authorize(claims *CustomClaims, required model.Role) error {
	if claims == nil {
		return errors.New("missing identity")
	}
	if claims.Role == model.RoleAdmin || claims.Role == required {
		return nil
	}
	return ErrInsufficientRole
}

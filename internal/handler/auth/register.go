package auth

import (
	"net/http"
	"strings"

	"dawah-qa/internal/api"
	"dawah-qa/internal/database"
	"dawah-qa/internal/model"
	"dawah-qa/internal/service"
	"dawah-qa/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser       = store.CreateUser
	getUserByEmail   = store.GetUserByEmail
)

// RegisterHandler 註冊新使用者
// @Summary     註冊
// @Description 建立新帳號 (Email 會自動轉小寫)，角色固定為 user
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterRequest true "註冊資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse "欄位缺漏或 Email 重複"
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// Email 轉為小寫以確保唯一性比對一致
		req.Email = strings.ToLower(req.Email)

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: hash,
			Role:         model.RoleUser,
		})
		if err != nil {
			if store.IsUniqueViolation(err) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

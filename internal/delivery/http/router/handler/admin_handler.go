package handler

import (
	"log/slog"
	"net/http"
	"time"

	"petmart/internal/delivery/http/response"
	"petmart/internal/domain/entity"
	"petmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for admin account handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// adminView is the admin account representation returned to clients. The
// password hash never leaves the server.
type adminView struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	Avatar     string     `json:"avatar"`
	CreateTime time.Time  `json:"create_time"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

func toAdminView(admin *entity.AdminUser) *adminView {
	if admin == nil {
		return nil
	}

	return &adminView{
		ID:         admin.ID,
		Username:   admin.Username,
		Email:      admin.Email,
		Avatar:     admin.Avatar,
		CreateTime: admin.CreateTime,
		LastLogin:  admin.LastLogin,
	}
}

// Register handles creating an admin account.
func (h *AdminHandler) Register(c echo.Context) error {
	var input usecase.RegisterAdminInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	admin, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAdminView(admin), "Admin registered")
}

// Login handles admin authentication by username or email.
func (h *AdminHandler) Login(c echo.Context) error {
	var input usecase.AdminLoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token": output.AccessToken,
		"admin":        toAdminView(output.Admin),
	}, "Login successful")
}

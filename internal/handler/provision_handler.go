package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veridia/user-provisioning/api/internal/dto"
	"github.com/veridia/user-provisioning/api/internal/middleware"
	"github.com/veridia/user-provisioning/api/internal/service"
	"github.com/veridia/user-provisioning/api/internal/status"
)

// ProvisionHandler exposes the createUser operation.
type ProvisionHandler struct {
	provisioner *service.Provisioner
}

// NewProvisionHandler constructs a handler instance.
func NewProvisionHandler(provisioner *service.Provisioner) *ProvisionHandler {
	return &ProvisionHandler{provisioner: provisioner}
}

// CreateUser handles POST /createUser requests.
func (h *ProvisionHandler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return Fail(c, status.New(status.InvalidArgument, service.MsgIncompleteData))
	}

	resp, serr := h.provisioner.CreateUser(c.Request().Context(), middleware.CallerUID(c), req)
	if serr != nil {
		return Fail(c, serr)
	}

	return c.JSON(http.StatusOK, resp)
}

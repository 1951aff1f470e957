package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/clinica/appointments-api/internal/domain/user"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/httpresp"
	"github.com/clinica/appointments-api/internal/middleware"
)

type MeHandler struct {
	users user.Repository
}

func NewMeHandler(users user.Repository) *MeHandler {
	return &MeHandler{users: users}
}

// GetMe returns the caller's profile. The password hash never leaves the
// model's JSON form.
func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.users.GetByUsername(c.Request.Context(), middleware.Username(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, u)
}

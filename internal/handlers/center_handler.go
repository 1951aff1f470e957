package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/clinica/appointments-api/internal/domain/center"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/httpresp"
)

type CenterHandler struct {
	centers center.Repository
}

func NewCenterHandler(centers center.Repository) *CenterHandler {
	return &CenterHandler{centers: centers}
}

func (h *CenterHandler) List(c *gin.Context) {
	centers, err := h.centers.ListCenters(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, centers)
}

package venue

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ListVenues godoc
// @Summary      List venues
// @Description  Returns the fixed catalog of bookable venues.
// @Tags         venues
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  string
// @Router       /venues [get]
func (h *Handler) ListVenues(c *gin.Context) {
	c.JSON(http.StatusOK, All())
}

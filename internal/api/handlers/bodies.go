package handlers

import (
	"net/http"

	"planet-weather/internal/api/models"
	"planet-weather/internal/model"

	"github.com/gin-gonic/gin"
)

// BodyHandler lists the simulated system
type BodyHandler struct {
	bodies [3]model.Body
}

// NewBodyHandler creates a new body handler
func NewBodyHandler(bodies [3]model.Body) *BodyHandler {
	return &BodyHandler{bodies: bodies}
}

// ListBodies handles GET /api/v1/bodies
func (h *BodyHandler) ListBodies(c *gin.Context) {
	bodies := make([]models.BodyInfo, 0, len(h.bodies)+1)
	for _, b := range h.bodies {
		bodies = append(bodies, models.BodyInfo{
			Name:      b.Name,
			Radius:    b.Radius,
			Speed:     b.Speed,
			Direction: string(b.Direction),
		})
	}
	center := model.Center()
	bodies = append(bodies, models.BodyInfo{Name: center.Name, Radius: center.Radius, Center: true})

	c.JSON(http.StatusOK, gin.H{"bodies": bodies})
}

package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrlokans/vaultport/internal/importers"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

type HealthController struct {
	version string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{version: version}
}

func (h *HealthController) Status(c *gin.Context) {
	providers := make([]string, 0, len(importers.Providers))
	for _, p := range importers.Providers {
		providers = append(providers, string(p))
	}

	c.IndentedJSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks: map[string]string{
			"providers": strings.Join(providers, ","),
		},
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucabarone/trattoria-pos/repository"
	"github.com/lucabarone/trattoria-pos/utils"
)

type AnalyticsController struct {
	Repo repository.Repository
}

func NewAnalyticsController(repo repository.Repository) *AnalyticsController {
	return &AnalyticsController{Repo: repo}
}

// GetDailyStats -> today's report: revenue, per-dish sales, cash/pos split
func (ac *AnalyticsController) GetDailyStats(c *gin.Context) {
	stats, err := ac.Repo.GetDailyStats()
	if err != nil {
		utils.RespondInternalError(c, "Errore nel recupero delle statistiche", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

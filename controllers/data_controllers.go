package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucabarone/trattoria-pos/realtime"
	"github.com/lucabarone/trattoria-pos/repository"
	"github.com/lucabarone/trattoria-pos/utils"
)

type DataController struct {
	Repo repository.Repository
	Hub  *realtime.Hub
}

func NewDataController(repo repository.Repository, hub *realtime.Hub) *DataController {
	return &DataController{Repo: repo, Hub: hub}
}

// ClearAllData -> purge every order and order item, keep the menu.
// Registers are told to drop their cached state via DATA_CLEARED.
func (dc *DataController) ClearAllData(c *gin.Context) {
	if err := dc.Repo.ClearAllDataExceptMenu(); err != nil {
		utils.RespondInternalError(c, "Errore nella cancellazione dei dati", err)
		return
	}

	dc.Hub.Broadcast(realtime.Message{
		Type: realtime.EventDataCleared,
		Data: gin.H{},
	})

	utils.RespondMessage(c, http.StatusOK, "Tutti i dati sono stati cancellati tranne il menù")
}

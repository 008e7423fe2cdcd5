package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucabarone/trattoria-pos/models"
	"github.com/lucabarone/trattoria-pos/repository"
	"github.com/lucabarone/trattoria-pos/utils"
)

type DishController struct {
	Repo repository.Repository
}

func NewDishController(repo repository.Repository) *DishController {
	return &DishController{Repo: repo}
}

// GetAllDishes -> full menu, in fixed category display order
func (dc *DishController) GetAllDishes(c *gin.Context) {
	dishes, err := dc.Repo.GetDishes()
	if err != nil {
		utils.RespondInternalError(c, "Errore nel recupero dei piatti", err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}

func (dc *DishController) CreateDish(c *gin.Context) {
	var body models.InsertDish
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondInvalidData(c, "Dati non validi", err)
		return
	}

	dish, err := dc.Repo.CreateDish(body)
	if err != nil {
		utils.RespondInternalError(c, "Errore nella creazione del piatto", err)
		return
	}
	c.JSON(http.StatusOK, dish)
}

// UpdateDish -> partial update; fields left out of the body keep their
// current value
func (dc *DishController) UpdateDish(c *gin.Context) {
	id := c.Param("id")

	var body models.UpdateDish
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondInvalidData(c, "Dati non validi", err)
		return
	}

	dish, err := dc.Repo.UpdateDish(id, body)
	if err != nil {
		utils.RespondInternalError(c, "Errore nell'aggiornamento del piatto", err)
		return
	}
	if dish == nil {
		utils.RespondMessage(c, http.StatusNotFound, "Piatto non trovato")
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (dc *DishController) DeleteDish(c *gin.Context) {
	id := c.Param("id")

	deleted, err := dc.Repo.DeleteDish(id)
	if err != nil {
		utils.RespondInternalError(c, "Errore nell'eliminazione del piatto", err)
		return
	}
	if !deleted {
		utils.RespondMessage(c, http.StatusNotFound, "Piatto non trovato")
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Piatto eliminato con successo")
}

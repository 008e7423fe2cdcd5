package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucabarone/trattoria-pos/models"
	"github.com/lucabarone/trattoria-pos/realtime"
	"github.com/lucabarone/trattoria-pos/repository"
	"github.com/lucabarone/trattoria-pos/utils"
)

type OrderController struct {
	Repo repository.Repository
	Hub  *realtime.Hub
}

func NewOrderController(repo repository.Repository, hub *realtime.Hub) *OrderController {
	return &OrderController{Repo: repo, Hub: hub}
}

// GetAllOrders -> every order regardless of status, items not joined
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Repo.GetOrders()
	if err != nil {
		utils.RespondInternalError(c, "Errore nel recupero degli ordini", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetActiveOrders -> the live order board, most recent first
func (oc *OrderController) GetActiveOrders(c *gin.Context) {
	orders, err := oc.Repo.GetActiveOrders()
	if err != nil {
		utils.RespondInternalError(c, "Errore nel recupero degli ordini attivi", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id := c.Param("id")

	order, err := oc.Repo.GetOrder(id)
	if err != nil {
		utils.RespondInternalError(c, "Errore nel recupero dell'ordine", err)
		return
	}
	if order == nil {
		utils.RespondMessage(c, http.StatusNotFound, "Ordine non trovato")
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder -> order plus items in one atomic call; on success the
// new order is fanned out to every connected register before replying.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body models.CreateOrderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondInvalidData(c, "Dati non validi", err)
		return
	}

	order, err := oc.Repo.CreateOrder(body.Order, body.Items)
	if err != nil {
		utils.RespondInternalError(c, "Errore nella creazione dell'ordine", err)
		return
	}

	oc.Hub.Broadcast(realtime.Message{
		Type: realtime.EventOrderCreated,
		Data: order,
	})

	c.JSON(http.StatusOK, order)
}

// CompleteOrder -> one-way active => completed; idempotent
func (oc *OrderController) CompleteOrder(c *gin.Context) {
	id := c.Param("id")

	ok, err := oc.Repo.CompleteOrder(id)
	if err != nil {
		utils.RespondInternalError(c, "Errore nel completamento dell'ordine", err)
		return
	}
	if !ok {
		utils.RespondMessage(c, http.StatusNotFound, "Ordine non trovato")
		return
	}

	oc.Hub.Broadcast(realtime.Message{
		Type: realtime.EventOrderCompleted,
		Data: gin.H{"orderId": id},
	})

	utils.RespondMessage(c, http.StatusOK, "Ordine completato con successo")
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/database/models"
	"github.com/DavidTranLe/Dinner-and-a-Movie/internal/service"
)

type ItemHandler struct {
	svc *service.ItemService
}

func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) ListByOrder(c *gin.Context) {
	orderid, ok := parseID(c, "orderid")
	if !ok {
		return
	}

	items, err := h.svc.ListByOrder(c.Request.Context(), orderid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// BulkCreate accepts a JSON array of items and attaches every one of them to
// the order named in the path, ignoring any orderid in the payload.
func (h *ItemHandler) BulkCreate(c *gin.Context) {
	orderid, ok := parseID(c, "orderid")
	if !ok {
		return
	}

	var items []models.Item
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.svc.BulkCreate(c.Request.Context(), orderid, items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var upd service.ItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteByOrder always answers 204, even when the order had no items.
func (h *ItemHandler) DeleteByOrder(c *gin.Context) {
	orderid, ok := parseID(c, "orderid")
	if !ok {
		return
	}

	if err := h.svc.DeleteByOrder(c.Request.Context(), orderid); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

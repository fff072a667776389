package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	items, subtotal, err := h.Svc.Get(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "subtotal": subtotal})
}

// POST /api/cart
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Add(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// PUT /api/cart/:itemId
func (h *CartController) UpdateQuantity(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}

	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateQuantity(uid, uint(itemID), body.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "quantity updated")
}

// DELETE /api/cart/:itemId
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid cart item id")
		return
	}
	if err := h.Svc.Remove(uid, uint(itemID)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "item removed")
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	if err := h.Svc.Clear(uid); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "cart cleared")
}

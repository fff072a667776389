package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /api/orders/place
func (h *OrderController) Place(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Place(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /api/orders/myorders
func (h *OrderController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	out, err := h.Svc.ListForUser(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/orders/restaurant/:id
func (h *OrderController) ListByRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	// restaurant accounts may only read their own orders
	if utils.CurrentRole(c) == entity.RoleRestaurant && utils.CurrentRestaurantID(c) != uint(id) {
		resp.Forbidden(c, "forbidden")
		return
	}

	out, err := h.Svc.ListForRestaurant(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /api/orders/status/:id
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.UpdateStatus(uint(id), body.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "order status updated")
}

// DELETE /api/orders/:id
func (h *OrderController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	var restaurantID *uint
	if utils.CurrentRole(c) == entity.RoleRestaurant {
		restID := utils.CurrentRestaurantID(c)
		if restID == 0 {
			resp.Unauthorized(c, "restaurantId missing in token")
			return
		}
		restaurantID = &restID
	}

	if err := h.Svc.Delete(uint(id), restaurantID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "order deleted")
}

package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ Svc *services.AdminService }

func NewAdminController(s *services.AdminService) *AdminController {
	return &AdminController{Svc: s}
}

// GET /api/admin/users
func (h *AdminController) ListUsers(c *gin.Context) {
	out, err := h.Svc.ListUsers()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/admin/restaurants
func (h *AdminController) ListRestaurants(c *gin.Context) {
	out, err := h.Svc.ListRestaurants()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /api/admin/restaurants/:id
func (h *AdminController) DeleteRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	if err := h.Svc.DeleteRestaurant(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "restaurant deleted")
}

// GET /api/admin/menus
func (h *AdminController) ListMenus(c *gin.Context) {
	out, err := h.Svc.ListMenus()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/admin/orders
func (h *AdminController) ListOrders(c *gin.Context) {
	out, err := h.Svc.ListOrders()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

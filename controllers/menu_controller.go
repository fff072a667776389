package controllers

import (
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Svc       *services.MenuService
	UploadDir string
}

func NewMenuController(s *services.MenuService, uploadDir string) *MenuController {
	return &MenuController{Svc: s, UploadDir: uploadDir}
}

// ownRestaurantScope returns the ownership filter for the caller: admins get
// nil (unrestricted), restaurant accounts their own id.
func ownRestaurantScope(c *gin.Context) (*uint, bool) {
	if utils.CurrentRole(c) == entity.RoleAdmin {
		return nil, true
	}
	restID := utils.CurrentRestaurantID(c)
	if restID == 0 {
		return nil, false
	}
	return &restID, true
}

// POST /api/menus (multipart)
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	restID := utils.CurrentRestaurantID(c)
	if utils.CurrentRole(c) == entity.RoleAdmin {
		id, err := strconv.ParseUint(c.PostForm("restaurantId"), 10, 32)
		if err != nil {
			resp.BadRequest(c, "restaurantId is required for admin callers")
			return
		}
		restID = uint(id)
	}
	if restID == 0 {
		resp.Unauthorized(c, "restaurantId missing in token")
		return
	}

	var imageURL string
	if fh, err := c.FormFile("image"); err == nil {
		var uerr error
		imageURL, uerr = utils.SaveUploadedImage(fh, h.UploadDir, "menuImages")
		if uerr != nil {
			resp.Error(c, uerr)
			return
		}
	}

	menu, err := h.Svc.Create(&req, restID, imageURL)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, menu)
}

// POST /api/menus/update/:id (multipart)
func (h *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}

	var req services.MenuIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	scope, ok := ownRestaurantScope(c)
	if !ok {
		resp.Unauthorized(c, "restaurantId missing in token")
		return
	}

	var imageURL string
	if fh, err := c.FormFile("image"); err == nil {
		var uerr error
		imageURL, uerr = utils.SaveUploadedImage(fh, h.UploadDir, "menuImages")
		if uerr != nil {
			resp.Error(c, uerr)
			return
		}
	}

	if err := h.Svc.Update(uint(id), &req, scope, imageURL); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "menu updated")
}

// DELETE /api/menus/by-name/:name
func (h *MenuController) DeleteByName(c *gin.Context) {
	scope, ok := ownRestaurantScope(c)
	if !ok {
		resp.Unauthorized(c, "restaurantId missing in token")
		return
	}
	if err := h.Svc.DeleteByName(c.Param("name"), scope); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "menu soft-deleted")
}

// GET /api/menus
func (h *MenuController) List(c *gin.Context) {
	out, err := h.Svc.ListAllGrouped()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/menus/search?name=
func (h *MenuController) Search(c *gin.Context) {
	out, err := h.Svc.Search(c.Query("name"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/menus/dietary?type=
func (h *MenuController) FilterByDietary(c *gin.Context) {
	out, err := h.Svc.FilterByDietary(c.Query("type"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/menus/by-restaurant/:id
func (h *MenuController) ListByRestaurant(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	out, err := h.Svc.ListByRestaurant(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

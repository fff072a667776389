package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Svc       *services.CategoryService
	MenuSvc   *services.MenuService
	UploadDir string
}

func NewCategoryController(s *services.CategoryService, ms *services.MenuService, uploadDir string) *CategoryController {
	return &CategoryController{Svc: s, MenuSvc: ms, UploadDir: uploadDir}
}

// POST /api/categories (multipart)
func (h *CategoryController) Create(c *gin.Context) {
	name := c.PostForm("name")

	var imageURL string
	if fh, err := c.FormFile("image"); err == nil {
		var uerr error
		imageURL, uerr = utils.SaveUploadedImage(fh, h.UploadDir, "categoryImages")
		if uerr != nil {
			resp.Error(c, uerr)
			return
		}
	}

	cat, err := h.Svc.Create(name, imageURL)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"categoryId": cat.ID, "name": cat.Name, "imageUrl": cat.ImageURL})
}

// GET /api/categories
func (h *CategoryController) List(c *gin.Context) {
	out, err := h.MenuSvc.ListAllGrouped()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/categories/names
func (h *CategoryController) ListNames(c *gin.Context) {
	out, err := h.Svc.ListNames()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/categories/:name/menus
func (h *CategoryController) MenusByCategory(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		resp.BadRequest(c, "category name is required")
		return
	}
	out, err := h.Svc.MenusByCategory(name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /api/categories/:name
func (h *CategoryController) Delete(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		resp.BadRequest(c, "category name is required")
		return
	}
	if err := h.Svc.DeleteByName(name); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "category and its menus soft-deleted")
}

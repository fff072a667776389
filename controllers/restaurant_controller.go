package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc       *services.RestaurantService
	UploadDir string
}

func NewRestaurantController(s *services.RestaurantService, uploadDir string) *RestaurantController {
	return &RestaurantController{Svc: s, UploadDir: uploadDir}
}

// GET /api/restaurants
func (h *RestaurantController) List(c *gin.Context) {
	out, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/restaurants/search?name=
func (h *RestaurantController) Search(c *gin.Context) {
	out, err := h.Svc.Search(c.Query("name"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/restaurants/:id
func (h *RestaurantController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	out, err := h.Svc.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /api/restaurants/update (multipart)
func (h *RestaurantController) Update(c *gin.Context) {
	restID := utils.CurrentRestaurantID(c)
	if restID == 0 {
		resp.Unauthorized(c, "restaurantId missing in token")
		return
	}

	var req services.RestaurantUpdateIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var imageURL string
	if fh, err := c.FormFile("image"); err == nil {
		imageURL, err = utils.SaveUploadedImage(fh, h.UploadDir, "restaurantImages")
		if err != nil {
			resp.Error(c, err)
			return
		}
	}

	if err := h.Svc.UpdateOwn(restID, &req, imageURL); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "restaurant updated")
}

// DELETE /api/restaurants
func (h *RestaurantController) Delete(c *gin.Context) {
	restID := utils.CurrentRestaurantID(c)
	if restID == 0 {
		resp.Unauthorized(c, "restaurantId missing in token")
		return
	}
	if err := h.Svc.Delete(restID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "restaurant and associated user deleted")
}

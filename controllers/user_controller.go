package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc       *services.UserService
	UploadDir string
}

func NewUserController(s *services.UserService, uploadDir string) *UserController {
	return &UserController{Svc: s, UploadDir: uploadDir}
}

// GET /api/user
func (h *UserController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	out, err := h.Svc.Get(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PUT /api/user
func (h *UserController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.UpdateUserIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Update(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /api/user/image (multipart)
func (h *UserController) UploadImage(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "image file is required")
		return
	}
	path, err := utils.SaveUploadedImage(fh, h.UploadDir, "userImages")
	if err != nil {
		resp.Error(c, err)
		return
	}
	if err := h.Svc.SetImage(uid, path); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"imageUrl": path})
}

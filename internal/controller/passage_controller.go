package controller

import (
	"testbank_backend/internal/service"
	"testbank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PassageController struct {
	Service *service.PassageService
}

func NewPassageController(svc *service.PassageService) *PassageController {
	return &PassageController{Service: svc}
}

// @Summary 为测评挂接文章
// @Description 仅 Reading 测评可挂接，且与测评 1:1
// @Tags 文章
// @Accept json
// @Produce plain
// @Param body body service.PassageRequest true "文章信息"
// @Success 200
// @Failure 400 {string} string
// @Router /passage [post]
func (c *PassageController) Create(ctx *gin.Context) {
	var req service.PassageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.Create(req); err != nil {
		util.Fail(ctx, err)
		return
	}

	util.OK(ctx)
}

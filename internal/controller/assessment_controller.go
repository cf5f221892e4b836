package controller

import (
	"errors"
	"strconv"

	"testbank_backend/internal/service"
	"testbank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary 查询测评 / 按类型列出测评名
// @Description 路径参数为整数时按类型编码列出测评名（0=Reading 1=Writing），否则按名称查询单个测评
// @Tags 测评
// @Produce json
// @Param name path string true "测评名或类型编码"
// @Success 200 {object} model.Assessment
// @Failure 400 {string} string
// @Failure 404 {string} string
// @Router /assessment/{name} [get]
func (c *AssessmentController) Get(ctx *gin.Context) {
	key := ctx.Param("name")

	// 与客户端的路由约定：单资源查询和类型列表共用一段路径，
	// 整数一律按类型编码处理
	if code, err := strconv.Atoi(key); err == nil {
		names, err := c.Service.List(code)
		if err != nil {
			util.Fail(ctx, err)
			return
		}
		util.JSON(ctx, names)
		return
	}

	a, err := c.Service.Get(key)
	if err != nil {
		var nf *util.NotFoundError
		if errors.As(err, &nf) {
			util.NotFound(ctx, nf.Message)
			return
		}
		util.Fail(ctx, err)
		return
	}

	util.JSON(ctx, a)
}

// @Summary 创建测评
// @Description Reading 类型同时创建占位文章
// @Tags 测评
// @Accept json
// @Produce plain
// @Param body body service.AssessmentRequest true "测评信息"
// @Success 200
// @Failure 400 {string} string
// @Router /assessment [post]
func (c *AssessmentController) Create(ctx *gin.Context) {
	var req service.AssessmentRequest
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

// @Summary 删除测评
// @Description 级联删除其题目、选项和文章
// @Tags 测评
// @Produce plain
// @Param name path string true "测评名"
// @Success 204
// @Failure 400 {string} string
// @Router /assessment/{name} [delete]
func (c *AssessmentController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("name")); err != nil {
		util.Fail(ctx, err)
		return
	}

	util.NoContent(ctx)
}

package controller

import (
	"testbank_backend/internal/service"
	"testbank_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary 创建题目
// @Description 题目固定 4 个选项，answerIndex 指向正确答案，整体一个事务写入
// @Tags 题目
// @Accept json
// @Produce plain
// @Param body body service.QuestionRequest true "题目信息"
// @Success 200
// @Failure 400 {string} string
// @Router /question [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuestionRequest
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

// @Summary 删除题目
// @Description 按测评名和题干定位，级联删除其选项
// @Tags 题目
// @Accept json
// @Produce plain
// @Param body body service.QuestionDeleteRequest true "定位信息"
// @Success 204
// @Failure 400 {string} string
// @Router /question [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	var req service.QuestionDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.Delete(req); err != nil {
		util.Fail(ctx, err)
		return
	}

	util.NoContent(ctx)
}

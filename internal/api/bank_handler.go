package api

import (
	"Radiation-Safety-Question-Bank/internal/model"
	"Radiation-Safety-Question-Bank/internal/repository"
	"Radiation-Safety-Question-Bank/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListQuestionsRequest struct {
	Type string `form:"type" binding:"omitempty,oneof=single multiple"`
}

type BankHandler struct {
	bankService *service.BankService
	bankRepo    *repository.BankRepository
}

func NewBankHandler(bankService *service.BankService, bankRepo *repository.BankRepository) *BankHandler {
	return &BankHandler{bankService: bankService, bankRepo: bankRepo}
}

func (h *BankHandler) SummaryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.bankRepo.Summary())
}

func (h *BankHandler) ListQuestionsHandler(c *gin.Context) {
	var req ListQuestionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数无效: " + err.Error()})
		return
	}
	questions := h.bankRepo.List(model.QuestionType(req.Type))
	c.JSON(http.StatusOK, gin.H{"total": len(questions), "questions": questions})
}

func (h *BankHandler) GetQuestionHandler(c *gin.Context) {
	q, err := h.bankRepo.Query(c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "题目不存在", "id": c.Param("id")})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询题目失败", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *BankHandler) ReloadHandler(c *gin.Context) {
	bank, err := h.bankService.Convert()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "重新转换题库失败",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "题库已重新转换", "summary": bank.Summary()})
}

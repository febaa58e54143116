package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docmind-ai/docmind-be/service"
	"github.com/docmind-ai/docmind-be/types"
)

type QAHandler struct {
	qaService *service.QAService
}

func NewQAHandler(qaService *service.QAService) *QAHandler {
	return &QAHandler{
		qaService: qaService,
	}
}

// HandleAsk answers a free-form question about the uploaded document.
func (h *QAHandler) HandleAsk(c *gin.Context) {
	var req types.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	answer, err := h.qaService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		h.sendError(c, statusFromError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data: types.QuestionResponse{
			Question: req.Question,
			Answer:   answer.Answer,
			Context:  answer.Context,
		},
	})
}

// HandleChallenge generates challenge questions from the uploaded document.
func (h *QAHandler) HandleChallenge(c *gin.Context) {
	var req types.ChallengeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.sendError(c, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	if req.NumQuestions <= 0 {
		req.NumQuestions = 3
	}

	questions, err := h.qaService.Challenge(c.Request.Context(), req.NumQuestions)
	if err != nil {
		h.sendError(c, statusFromError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   questions,
	})
}

// HandleEvaluate grades a user's answer to a challenge question.
func (h *QAHandler) HandleEvaluate(c *gin.Context) {
	var req types.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.qaService.Evaluate(c.Request.Context(), req.Question, req.UserAnswer)
	if err != nil {
		h.sendError(c, statusFromError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   result,
	})
}

func (h *QAHandler) sendError(c *gin.Context, status int, message string) {
	c.JSON(status, types.DataResponse{
		Status:  "error",
		Message: message,
	})
}

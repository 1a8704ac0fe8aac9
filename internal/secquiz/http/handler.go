package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secquiz/secquiz/internal/errors"
)

func (s *Service) handleGenerateQuestion(c *gin.Context) {
	q := struct {
		Topic  string `json:"topic" binding:"required"`
		Type   string `json:"type"`
		Level  string `json:"level"`
		Amount int    `json:"amount"`
	}{}

	if err := c.ShouldBindJSON(&q); err != nil {
		errors.Err(c, errors.Validation("invalid request body", err))
		return
	}

	question, err := s.exec.GenerateQuestions(c.Request.Context(), q.Topic, q.Type, q.Level, q.Amount)
	if err != nil {
		errors.Err(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

func (s *Service) handleRedact(c *gin.Context) {
	q := struct {
		TextToClean string `json:"text_to_clean" binding:"required"`
	}{}

	if err := c.ShouldBindJSON(&q); err != nil {
		errors.Err(c, errors.Validation("invalid request body", err))
		return
	}

	cleaned, err := s.exec.RedactText(c.Request.Context(), q.TextToClean)
	if err != nil {
		errors.Err(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"original_text": q.TextToClean,
		"cleaned_text":  cleaned,
	})
}

func (s *Service) handlePageLink(c *gin.Context) {
	q := struct {
		PageNumber int `form:"page_number"`
	}{}

	if err := c.ShouldBindQuery(&q); err != nil {
		errors.Err(c, errors.InvalidArg("page_number"))
		return
	}

	link, err := s.exec.PageLink(q.PageNumber)
	if err != nil {
		errors.Err(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"link": link})
}

package contact

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	contactService "github.com/samirwankhede/contact-relay/internal/service/contact"
)

const (
	msgInvalidBody    = "Invalid request body."
	msgFieldsRequired = "All fields are required."
	msgSent           = "Email sent successfully!"
	msgSendFailed     = "Failed to send email. Please try again later."
)

type Submitter interface {
	Submit(ctx context.Context, sub contactService.Submission) error
}

type ContactHandler struct {
	log *zap.Logger
	svc Submitter
}

func NewContactHandler(log *zap.Logger, svc Submitter) *ContactHandler {
	return &ContactHandler{log: log, svc: svc}
}

func (h *ContactHandler) Register(r *gin.Engine) {
	r.POST("/api/contact", h.submit)
}

func (h *ContactHandler) submit(c *gin.Context) {
	var req contactService.Submission
	// Bodies that are not JSON are left empty and fail validation below.
	if c.ContentType() == binding.MIMEJSON {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			h.log.Debug("invalid contact body", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidBody})
			return
		}
	}

	err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, contactService.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": msgFieldsRequired})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgSendFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgSent})
}

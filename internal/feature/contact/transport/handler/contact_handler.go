// Package handler はお問い合わせフォームのHTTPハンドラーを提供します。
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/contact/transport/http/dto"
)

// ContactHandler はお問い合わせフォームを処理します。
// 送信内容は保存も配送もせず、受領のみを応答します。
type ContactHandler struct{}

// NewContactHandler はContactHandlerの新しいインスタンスを生成します。
func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

// Submit はお問い合わせ送信APIです。
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	slog.Info("contact message received",
		"subject", req.Subject,
		"newsletter", req.Newsletter,
	)
	c.JSON(http.StatusOK, api.MessageResponse{
		Message: fmt.Sprintf("Thank you %s! Your message has been sent successfully. We will get back to you soon.", req.Name),
	})
}

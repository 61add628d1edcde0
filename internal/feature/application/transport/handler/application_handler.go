// Package handler はapplicationフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/application/domain/entity"
	"jobboard_backend/internal/feature/application/transport/http/dto"
	"jobboard_backend/internal/feature/application/usecase"
	jwtmw "jobboard_backend/internal/platform/jwt"
)

// ApplicationUsecase は応募操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID, applicantID uint, input usecase.ApplyInput) (*entity.Application, error)
	Get(ctx context.Context, applicationID, userID uint) (*entity.Application, error)
	UpdateStatus(ctx context.Context, applicationID, userID uint, update usecase.StatusUpdate) (*entity.Application, error)
	ListByJob(ctx context.Context, jobID, userID uint) ([]entity.Application, error)
}

// ApplicationHandler は応募のHTTPリクエストを処理します。
type ApplicationHandler struct {
	applications ApplicationUsecase
}

// NewApplicationHandler はApplicationHandlerの新しいインスタンスを生成します。
func NewApplicationHandler(applications ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// parseID はURLパラメータからIDを取り出します。
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// writeApplicationError はユースケースのエラーをHTTPステータスへ変換します。
func writeApplicationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "job not found"})
	case errors.Is(err, usecase.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "application not found"})
	case errors.Is(err, usecase.ErrAlreadyApplied):
		// 二重応募はエラーではなく、何も書き込まない注意付きの成功として扱う
		c.JSON(http.StatusOK, api.WarningResponse{Warning: "You have already applied for this job!"})
	case errors.Is(err, usecase.ErrJobClosed):
		// 募集終了した求人は存在しないものとして扱う
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "job not found"})
	case errors.Is(err, usecase.ErrResumeTooLarge),
		errors.Is(err, usecase.ErrResumeType),
		errors.Is(err, usecase.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrNotJobPoster),
		errors.Is(err, usecase.ErrAccessDenied):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied."})
	default:
		slog.Error("application operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// Apply は応募APIです。multipart/form-dataで履歴書（resume）と
// カバーレター（cover_letter）を受け取ります。
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "resume file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("failed to open uploaded resume", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	defer file.Close()

	application, err := h.applications.Apply(c.Request.Context(), jobID, userID, usecase.ApplyInput{
		CoverLetter: c.PostForm("cover_letter"),
		Resume: usecase.ResumeUpload{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Reader:   file,
		},
	})
	if err != nil {
		writeApplicationError(c, err)
		return
	}

	slog.Info("application submitted", "application_id", application.ID, "job_id", jobID, "applicant_id", userID)
	c.JSON(http.StatusCreated, dto.ApplyRes{
		Message:     "Your application has been submitted successfully!",
		Application: dto.FromApplication(application),
	})
}

// Get は応募詳細APIです。応募者本人と求人の投稿者のみ参照できます。
func (h *ApplicationHandler) Get(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	application, err := h.applications.Get(c.Request.Context(), id, userID)
	if err != nil {
		writeApplicationError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromApplication(application))
}

// UpdateStatus は選考ステータス更新APIです。求人の投稿者のみ許可されます。
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	application, err := h.applications.UpdateStatus(c.Request.Context(), id, userID, usecase.StatusUpdate{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		writeApplicationError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromApplication(application))
}

// ListByJob は求人への応募一覧APIです。求人の投稿者のみ参照できます。
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	jobID, ok := parseID(c, "id")
	if !ok {
		return
	}

	applications, err := h.applications.ListByJob(c.Request.Context(), jobID, userID)
	if err != nil {
		writeApplicationError(c, err)
		return
	}

	items := make([]dto.ApplicationRes, 0, len(applications))
	for i := range applications {
		items = append(items, dto.FromApplication(&applications[i]))
	}
	c.JSON(http.StatusOK, dto.ApplicationListRes{Applications: items, Total: len(items)})
}

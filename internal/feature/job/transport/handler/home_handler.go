package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/job/domain/entity"
	"jobboard_backend/internal/feature/job/transport/http/dto"
	"jobboard_backend/internal/feature/job/usecase"
)

// FeaturedSource はトップページ向けの求人データソースを定義します。
type FeaturedSource interface {
	FeaturedActive(ctx context.Context, limit int) ([]entity.Job, error)
	CountActive(ctx context.Context) (int64, error)
}

// Counter は件数のみを提供するデータソースです。
// 応募・会社それぞれのリポジトリがこれを満たします。
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// HomeHandler はトップページの統計と注目求人を返します。
type HomeHandler struct {
	jobs         FeaturedSource
	applications Counter
	companies    Counter
}

// NewHomeHandler はHomeHandlerの新しいインスタンスを生成します。
func NewHomeHandler(jobs FeaturedSource, applications, companies Counter) *HomeHandler {
	return &HomeHandler{jobs: jobs, applications: applications, companies: companies}
}

// Home はトップページAPIです。最新の有効求人6件と全体の統計を返します。
func (h *HomeHandler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	featured, err := h.jobs.FeaturedActive(ctx, usecase.FeaturedLimit)
	if err != nil {
		slog.Error("failed to load featured jobs", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	totalJobs, err := h.jobs.CountActive(ctx)
	if err != nil {
		slog.Error("failed to count jobs", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	totalApplications, err := h.applications.Count(ctx)
	if err != nil {
		slog.Error("failed to count applications", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	totalCompanies, err := h.companies.Count(ctx)
	if err != nil {
		slog.Error("failed to count companies", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	jobs := make([]dto.JobRes, 0, len(featured))
	for i := range featured {
		jobs = append(jobs, dto.FromJob(&featured[i]))
	}
	c.JSON(http.StatusOK, dto.HomeRes{
		FeaturedJobs:      jobs,
		TotalJobs:         totalJobs,
		TotalApplications: totalApplications,
		TotalCompanies:    totalCompanies,
	})
}

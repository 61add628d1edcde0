// Package handler はjobフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/job/domain/entity"
	"jobboard_backend/internal/feature/job/transport/http/dto"
	"jobboard_backend/internal/feature/job/usecase"
	jwtmw "jobboard_backend/internal/platform/jwt"
)

// JobUsecase は求人カタログのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type JobUsecase interface {
	Create(ctx context.Context, posterID uint, input usecase.JobInput) (*entity.Job, error)
	Update(ctx context.Context, jobID, userID uint, input usecase.JobInput) (*entity.Job, error)
	Delete(ctx context.Context, jobID, userID uint) error
	List(ctx context.Context, filter usecase.ListFilter) (*usecase.JobPage, error)
	Get(ctx context.Context, jobID uint, viewerID *uint) (*usecase.JobDetail, error)
	Search(ctx context.Context, query string) ([]entity.Job, error)
}

// JobHandler は求人カタログのHTTPリクエストを処理します。
type JobHandler struct {
	jobs JobUsecase
}

// NewJobHandler はJobHandlerの新しいインスタンスを生成します。
func NewJobHandler(jobs JobUsecase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// viewerID は任意認証コンテキストから閲覧者IDを取り出します（匿名はnil）。
func viewerID(c *gin.Context) *uint {
	if v, ok := c.Get(jwtmw.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
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

// toInput はリクエストDTOをユースケース入力へ変換します。
func toInput(req dto.JobReq) usecase.JobInput {
	return usecase.JobInput{
		Title:           req.Title,
		CompanyID:       req.CompanyID,
		CompanyName:     req.CompanyName,
		Location:        req.Location,
		Description:     req.Description,
		Requirements:    req.Requirements,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
	}
}

// writeJobError はユースケースのエラーをHTTPステータスへ変換します。
// 権限エラーは403と拒否メッセージを返します（元のフローのリダイレクト相当）。
func writeJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "job not found"})
	case errors.Is(err, usecase.ErrEmployerRequired):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied. Employer account required."})
	case errors.Is(err, usecase.ErrNotJobOwner):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Access denied."})
	case errors.Is(err, usecase.ErrSalaryRange),
		errors.Is(err, usecase.ErrInvalidJobType),
		errors.Is(err, usecase.ErrInvalidExperienceLevel):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("job operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// List は公開求人一覧APIです。有効な求人のみを返し、フィルタは組み合わせ可能です。
func (h *JobHandler) List(c *gin.Context) {
	filter := usecase.ListFilter{
		Query:           c.Query("query"),
		JobType:         c.Query("job_type"),
		ExperienceLevel: c.Query("experience_level"),
		Location:        c.Query("location"),
	}
	if raw := c.Query("company"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			cid := uint(id)
			filter.CompanyID = &cid
		}
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}

	result, err := h.jobs.List(c.Request.Context(), filter)
	if err != nil {
		writeJobError(c, err)
		return
	}

	jobs := make([]dto.JobRes, 0, len(result.Jobs))
	for i := range result.Jobs {
		jobs = append(jobs, dto.FromJob(&result.Jobs[i]))
	}
	c.JSON(http.StatusOK, dto.JobListRes{
		Jobs:    jobs,
		Total:   result.Total,
		Page:    result.Page,
		PerPage: result.PerPage,
	})
}

// Get は公開求人詳細APIです。認証済み閲覧者には応募済みかどうかを含めます。
func (h *JobHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	detail, err := h.jobs.Get(c.Request.Context(), id, viewerID(c))
	if err != nil {
		writeJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.JobDetailRes{
		Job:               dto.FromJob(detail.Job),
		HasApplied:        detail.HasApplied,
		ApplicationsCount: detail.ApplicationsCount,
	})
}

// Create は求人投稿APIです。employer種別のユーザーのみ許可されます。
func (h *JobHandler) Create(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.JobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), userID, toInput(req))
	if err != nil {
		writeJobError(c, err)
		return
	}
	slog.Info("job posted", "job_id", job.ID, "poster_id", userID)
	c.JSON(http.StatusCreated, dto.FromJob(job))
}

// Update は求人更新APIです。元の投稿者のみ許可されます。
func (h *JobHandler) Update(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.JobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), id, userID, toInput(req))
	if err != nil {
		writeJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromJob(job))
}

// Delete は求人削除APIです。元の投稿者のみ許可されます。
func (h *JobHandler) Delete(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id, userID); err != nil {
		writeJobError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Job deleted successfully!"})
}

// Search は検索エンドポイントです。タイトル・会社名・勤務地の部分一致で
// 有効な求人を最大10件返します。
func (h *JobHandler) Search(c *gin.Context) {
	jobs, err := h.jobs.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeJobError(c, err)
		return
	}

	items := make([]dto.SearchItem, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, dto.SearchItem{
			ID:       j.ID,
			Title:    j.Title,
			Company:  j.CompanyName,
			Location: j.Location,
			URL:      fmt.Sprintf("/jobs/%d", j.ID),
		})
	}
	c.JSON(http.StatusOK, dto.SearchRes{Jobs: items})
}

// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	appentity "jobboard_backend/internal/feature/application/domain/entity"
	jobentity "jobboard_backend/internal/feature/job/domain/entity"
	"jobboard_backend/internal/feature/profile/domain/entity"
	"jobboard_backend/internal/feature/profile/transport/http/dto"
	"jobboard_backend/internal/feature/profile/usecase"
	jwtmw "jobboard_backend/internal/platform/jwt"
)

// ProfileUsecase はプロフィール操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type ProfileUsecase interface {
	// GetOrCreate はプロフィールを取得し、存在しない場合はapplicant種別で遅延作成します。
	GetOrCreate(ctx context.Context, userID uint) (*entity.Profile, error)
	// UpdateContact は連絡先フィールドを更新します。
	UpdateContact(ctx context.Context, userID uint, update usecase.ContactUpdate) (*entity.Profile, error)
	// ChangeKind はアカウント種別を切り替えます。不正な値は黙って無視されます。
	ChangeKind(ctx context.Context, userID uint, raw string) (entity.AccountKind, error)
}

// PostedJobsSource は雇用者ダッシュボード用の求人データを提供します。
// jobフィーチャーのリポジトリが実装します。
type PostedJobsSource interface {
	ListByPoster(ctx context.Context, posterID uint) ([]jobentity.Job, error)
}

// ApplicationsSource はダッシュボード用の応募データを提供します。
// applicationフィーチャーのユースケースが実装します。
type ApplicationsSource interface {
	ListByApplicant(ctx context.Context, applicantID uint) ([]appentity.Application, error)
	CountForPoster(ctx context.Context, posterID uint) (int64, error)
}

// ProfileHandler はプロフィールとダッシュボードのHTTPリクエストを処理します。
type ProfileHandler struct {
	profiles     ProfileUsecase
	jobs         PostedJobsSource
	applications ApplicationsSource
}

// NewProfileHandler はProfileHandlerの新しいインスタンスを生成します。
func NewProfileHandler(profiles ProfileUsecase, jobs PostedJobsSource, applications ApplicationsSource) *ProfileHandler {
	return &ProfileHandler{
		profiles:     profiles,
		jobs:         jobs,
		applications: applications,
	}
}

// toProfileRes converts the entity to its response shape.
func toProfileRes(p *entity.Profile) dto.ProfileRes {
	return dto.ProfileRes{
		UserID:      p.UserID,
		AccountKind: string(p.AccountKind),
		Phone:       p.Phone,
		Address:     p.Address,
		Bio:         p.Bio,
		PicturePath: p.PicturePath,
		CreatedAt:   p.CreatedAt,
	}
}

// Get はプロフィール参照APIです。プロフィールがない場合は遅延作成します。
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	profile, err := h.profiles.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to load profile", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, toProfileRes(profile))
}

// Update はプロフィール編集APIです。multipart/form-dataで連絡先と
// 任意のプロフィール画像（profile_picture）を受け取ります。
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.UpdateProfileReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	update := usecase.ContactUpdate{
		Phone:   req.Phone,
		Address: req.Address,
		Bio:     req.Bio,
	}

	if fileHeader, err := c.FormFile("profile_picture"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			slog.Error("failed to open uploaded picture", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
			return
		}
		defer file.Close()
		update.Picture = &usecase.ImageUpload{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Reader:   file,
		}
	}

	profile, err := h.profiles.UpdateContact(c.Request.Context(), userID, update)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPictureTooLarge), errors.Is(err, usecase.ErrPictureType):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			slog.Error("failed to update profile", "error", err, "user_id", userID)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update profile"})
		}
		return
	}
	c.JSON(http.StatusOK, toProfileRes(profile))
}

// ChangeKind はアカウント種別変更APIです。
// employer/applicant以外の値はエラーにせず無視し、いずれの場合も
// ダッシュボードへの導線を返します。
func (h *ProfileHandler) ChangeKind(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)

	var req dto.ChangeKindReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	kind, err := h.profiles.ChangeKind(c.Request.Context(), userID, req.AccountKind)
	if err != nil {
		slog.Error("failed to change account kind", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to change account type"})
		return
	}
	c.JSON(http.StatusOK, dto.ChangeKindRes{
		AccountKind: string(kind),
		Dashboard:   "/account/dashboard",
	})
}

// Dashboard は保存された種別に応じたダッシュボードを返します。
// プロフィールがないユーザーはapplicantとして遅延作成されます。
func (h *ProfileHandler) Dashboard(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	ctx := c.Request.Context()

	profile, err := h.profiles.GetOrCreate(ctx, userID)
	if err != nil {
		slog.Error("failed to load profile", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load dashboard"})
		return
	}

	switch profile.AccountKind {
	case entity.AccountKindEmployer:
		h.employerDashboard(c, userID)
	default:
		h.applicantDashboard(c, userID)
	}
}

// employerDashboard は投稿求人と応募総数を集計します。
func (h *ProfileHandler) employerDashboard(c *gin.Context, userID uint) {
	ctx := c.Request.Context()

	jobs, err := h.jobs.ListByPoster(ctx, userID)
	if err != nil {
		slog.Error("failed to list posted jobs", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load dashboard"})
		return
	}
	totalApplications, err := h.applications.CountForPoster(ctx, userID)
	if err != nil {
		slog.Error("failed to count applications", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load dashboard"})
		return
	}

	posted := make([]dto.DashboardJob, 0, len(jobs))
	for _, j := range jobs {
		posted = append(posted, dto.DashboardJob{
			ID:        j.ID,
			Title:     j.Title,
			Company:   j.CompanyName,
			Location:  j.Location,
			JobType:   string(j.JobType),
			IsActive:  j.IsActive,
			CreatedAt: j.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, dto.DashboardRes{
		AccountKind:       string(entity.AccountKindEmployer),
		PostedJobs:        posted,
		TotalJobs:         len(posted),
		TotalApplications: totalApplications,
	})
}

// applicantDashboard は自身の応募一覧を返します。
func (h *ProfileHandler) applicantDashboard(c *gin.Context, userID uint) {
	applications, err := h.applications.ListByApplicant(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list applications", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load dashboard"})
		return
	}

	items := make([]dto.DashboardApplication, 0, len(applications))
	for _, a := range applications {
		item := dto.DashboardApplication{
			ID:        a.ID,
			JobID:     a.JobID,
			Status:    string(a.Status),
			AppliedAt: a.AppliedAt,
		}
		if a.Job != nil {
			item.JobTitle = a.Job.Title
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, dto.DashboardRes{
		AccountKind:       string(entity.AccountKindApplicant),
		Applications:      items,
		TotalApplications: int64(len(items)),
	})
}

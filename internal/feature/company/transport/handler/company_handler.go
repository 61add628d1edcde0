// Package handler はcompanyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/company/domain/entity"
	"jobboard_backend/internal/feature/company/transport/http/dto"
	"jobboard_backend/internal/feature/company/usecase"
	jobdto "jobboard_backend/internal/feature/job/transport/http/dto"
)

// CompanyUsecase は会社ディレクトリのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type CompanyUsecase interface {
	Create(ctx context.Context, input usecase.CompanyInput) (*entity.Company, error)
	Update(ctx context.Context, slug string, input usecase.CompanyInput) (*entity.Company, error)
	Get(ctx context.Context, slug string) (*usecase.CompanyDetail, error)
	List(ctx context.Context, q string, page int) (*usecase.CompanyPage, error)
	UploadGalleryImage(ctx context.Context, slug string, input usecase.GalleryInput) (*entity.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id uint) error
}

// CompanyHandler は会社ディレクトリのHTTPリクエストを処理します。
type CompanyHandler struct {
	companies CompanyUsecase
}

// NewCompanyHandler はCompanyHandlerの新しいインスタンスを生成します。
func NewCompanyHandler(companies CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// writeCompanyError はユースケースのエラーをHTTPステータスへ変換します。
func writeCompanyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "company not found"})
	case errors.Is(err, usecase.ErrImageNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "gallery image not found"})
	case errors.Is(err, usecase.ErrCompanyExists):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidIndustry),
		errors.Is(err, usecase.ErrEmptySlug),
		errors.Is(err, usecase.ErrImageTooLarge),
		errors.Is(err, usecase.ErrImageType):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("company operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// toInput はフォームDTOをユースケース入力へ変換します。
// ロゴファイルは任意で、無い場合はnilのまま渡します。
func toInput(c *gin.Context, req dto.CompanyReq) (usecase.CompanyInput, io.Closer, error) {
	input := usecase.CompanyInput{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Industry:      req.Industry,
		Website:       req.Website,
		FoundedYear:   req.FoundedYear,
		EmployeeCount: req.EmployeeCount,
		Headquarters:  req.Headquarters,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
	}

	if req.SocialMedia != "" {
		if err := json.Unmarshal([]byte(req.SocialMedia), &input.SocialMedia); err != nil {
			return input, nil, errors.New("social_media must be a JSON object")
		}
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		// ロゴなしは正常系
		return input, nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return input, nil, err
	}
	input.Logo = &usecase.ImageUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Reader:   file,
	}
	return input, file, nil
}

// List は公開の会社一覧APIです。qは名前・説明・業種への部分一致です。
func (h *CompanyHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	result, err := h.companies.List(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		writeCompanyError(c, err)
		return
	}

	companies := make([]dto.CompanyRes, 0, len(result.Companies))
	for i := range result.Companies {
		companies = append(companies, dto.FromCompany(&result.Companies[i]))
	}
	c.JSON(http.StatusOK, dto.CompanyListRes{
		Companies: companies,
		Total:     result.Total,
		Page:      result.Page,
		PerPage:   result.PerPage,
	})
}

// Get は公開の会社詳細APIです。募集中の求人とギャラリーを含みます。
func (h *CompanyHandler) Get(c *gin.Context) {
	detail, err := h.companies.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeCompanyError(c, err)
		return
	}

	jobs := make([]jobdto.JobRes, 0, len(detail.Jobs))
	for i := range detail.Jobs {
		jobs = append(jobs, jobdto.FromJob(&detail.Jobs[i]))
	}
	gallery := make([]dto.GalleryImageRes, 0, len(detail.Gallery))
	for i := range detail.Gallery {
		gallery = append(gallery, dto.FromGalleryImage(&detail.Gallery[i]))
	}
	c.JSON(http.StatusOK, dto.CompanyDetailRes{
		Company: dto.FromCompany(detail.Company),
		Jobs:    jobs,
		Gallery: gallery,
	})
}

// Create は会社登録APIです。認証済みであれば誰でも作成できます。
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CompanyReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	input, file, err := toInput(c, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if file != nil {
		defer file.Close()
	}

	company, err := h.companies.Create(c.Request.Context(), input)
	if err != nil {
		writeCompanyError(c, err)
		return
	}
	slog.Info("company created", "company_id", company.ID, "slug", company.Slug)
	c.JSON(http.StatusCreated, dto.MutationRes{
		Message: "Company created successfully!",
		Company: dto.FromCompany(company),
	})
}

// Update は会社更新APIです。所有者の概念はなく、認証済みであれば
// 誰でもどの会社でも編集できます。
func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.CompanyReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	input, file, err := toInput(c, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if file != nil {
		defer file.Close()
	}

	company, err := h.companies.Update(c.Request.Context(), c.Param("slug"), input)
	if err != nil {
		writeCompanyError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MutationRes{
		Message: "Company updated successfully!",
		Company: dto.FromCompany(company),
	})
}

// UploadGallery はギャラリー投稿APIです。multipart/form-dataで画像（image）、
// キャプション（caption）、注目フラグ（is_featured）を受け取ります。
func (h *CompanyHandler) UploadGallery(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "image file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		slog.Error("failed to open uploaded image", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	defer file.Close()

	isFeatured, _ := strconv.ParseBool(c.PostForm("is_featured"))
	image, err := h.companies.UploadGalleryImage(c.Request.Context(), c.Param("slug"), usecase.GalleryInput{
		Caption:    c.PostForm("caption"),
		IsFeatured: isFeatured,
		Image: usecase.ImageUpload{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Reader:   file,
		},
	})
	if err != nil {
		writeCompanyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.GalleryUploadRes{
		Message: "Image uploaded successfully!",
		Image:   dto.FromGalleryImage(image),
	})
}

// DeleteGallery はギャラリー画像削除APIです。認証済みであれば誰でも削除できます。
func (h *CompanyHandler) DeleteGallery(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.companies.DeleteGalleryImage(c.Request.Context(), uint(id)); err != nil {
		writeCompanyError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Image deleted successfully!"})
}

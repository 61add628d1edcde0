// Package usecase はjobフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"jobboard_backend/internal/feature/job/domain/entity"
)

// ProfileSource は投稿権限の判定に必要なプロフィール情報を提供します。
// profileフィーチャーのユースケースが実装します。
type ProfileSource interface {
	// IsEmployer は指定ユーザーがemployer種別かどうかを返します。
	// プロフィールがない場合はapplicantとして遅延作成されます。
	IsEmployer(ctx context.Context, userID uint) (bool, error)
}

// CompanyNameSource は会社名の逆正規化バックフィルに使用します。
// companyフィーチャーのリポジトリが実装します。
type CompanyNameSource interface {
	NameByID(ctx context.Context, id uint) (string, error)
}

// ApplicationStats は求人詳細に表示する応募情報を提供します。
// applicationフィーチャーのリポジトリが実装します。
type ApplicationStats interface {
	// Exists は指定の(求人, 応募者)ペアの応募が存在するかを返します。
	Exists(ctx context.Context, jobID, applicantID uint) (bool, error)
	// CountByJob は求人への応募総数を返します。
	CountByJob(ctx context.Context, jobID uint) (int64, error)
}

// JobInput は求人の作成・更新フォームの内容です。
type JobInput struct {
	Title           string
	CompanyID       *uint
	CompanyName     string
	Location        string
	Description     string
	Requirements    string
	SalaryMin       *float64
	SalaryMax       *float64
	JobType         string
	ExperienceLevel string
}

// JobDetail は公開詳細ページの内容です。
type JobDetail struct {
	Job *entity.Job
	// HasApplied は認証済み閲覧者が既に応募しているかどうか（匿名はfalse）。
	HasApplied bool
	// ApplicationsCount は応募総数。
	ApplicationsCount int64
}

// JobPage は一覧の1ページ分です。
type JobPage struct {
	Jobs    []entity.Job
	Total   int64
	Page    int
	PerPage int
}

// jobUsecase は求人カタログのビジネスロジックを実装します。
type jobUsecase struct {
	jobs         JobRepository
	profiles     ProfileSource
	companies    CompanyNameSource
	applications ApplicationStats
}

// NewJobUsecase はjobUsecaseの新しいインスタンスを生成します。
func NewJobUsecase(jobs JobRepository, profiles ProfileSource, companies CompanyNameSource, applications ApplicationStats) *jobUsecase {
	return &jobUsecase{
		jobs:         jobs,
		profiles:     profiles,
		companies:    companies,
		applications: applications,
	}
}

// validateInput は求人フォームを検証し、エンティティに反映する値を整えます。
// 給与範囲違反は単一の集約エラーとして返します。
func validateInput(input *JobInput) error {
	if input.SalaryMin != nil && input.SalaryMax != nil && *input.SalaryMin > *input.SalaryMax {
		return ErrSalaryRange
	}

	// 空値はデフォルトを適用、既知の値以外は拒否
	if input.JobType == "" {
		input.JobType = string(entity.JobTypeFullTime)
	} else if !entity.JobType(input.JobType).Valid() {
		return ErrInvalidJobType
	}
	if input.ExperienceLevel == "" {
		input.ExperienceLevel = string(entity.ExperienceEntry)
	} else if !entity.ExperienceLevel(input.ExperienceLevel).Valid() {
		return ErrInvalidExperienceLevel
	}
	return nil
}

// backfillCompanyName は会社参照があり会社名が空の場合、会社名を補完します。
func (u *jobUsecase) backfillCompanyName(ctx context.Context, job *entity.Job) error {
	if job.CompanyName != "" || job.CompanyID == nil {
		return nil
	}
	name, err := u.companies.NameByID(ctx, *job.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to resolve company name: %w", err)
	}
	job.CompanyName = name
	return nil
}

// Create は新しい求人を登録します。employer種別のユーザーのみ許可され、
// 作成者が不変の投稿者になります。
func (u *jobUsecase) Create(ctx context.Context, posterID uint, input JobInput) (*entity.Job, error) {
	isEmployer, err := u.profiles.IsEmployer(ctx, posterID)
	if err != nil {
		return nil, err
	}
	if !isEmployer {
		return nil, ErrEmployerRequired
	}

	if err := validateInput(&input); err != nil {
		return nil, err
	}

	job := &entity.Job{
		Title:           input.Title,
		CompanyID:       input.CompanyID,
		CompanyName:     input.CompanyName,
		Location:        input.Location,
		Description:     input.Description,
		Requirements:    input.Requirements,
		SalaryMin:       input.SalaryMin,
		SalaryMax:       input.SalaryMax,
		JobType:         entity.JobType(input.JobType),
		ExperienceLevel: entity.ExperienceLevel(input.ExperienceLevel),
		PostedByID:      posterID,
		IsActive:        true,
	}
	if err := u.backfillCompanyName(ctx, job); err != nil {
		return nil, err
	}

	if err := u.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// Update は既存の求人を更新します。元の投稿者のみ許可されます
// （employer種別であっても他者の求人は更新できません）。
func (u *jobUsecase) Update(ctx context.Context, jobID, userID uint, input JobInput) (*entity.Job, error) {
	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.PostedByID != userID {
		return nil, ErrNotJobOwner
	}

	if err := validateInput(&input); err != nil {
		return nil, err
	}

	job.Title = input.Title
	job.CompanyID = input.CompanyID
	job.CompanyName = input.CompanyName
	job.Location = input.Location
	job.Description = input.Description
	job.Requirements = input.Requirements
	job.SalaryMin = input.SalaryMin
	job.SalaryMax = input.SalaryMax
	job.JobType = entity.JobType(input.JobType)
	job.ExperienceLevel = entity.ExperienceLevel(input.ExperienceLevel)

	if err := u.backfillCompanyName(ctx, job); err != nil {
		return nil, err
	}

	if err := u.jobs.Update(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// Delete は求人を削除します。元の投稿者のみ許可されます。
func (u *jobUsecase) Delete(ctx context.Context, jobID, userID uint) error {
	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.PostedByID != userID {
		return ErrNotJobOwner
	}
	return u.jobs.Delete(ctx, jobID)
}

// List は有効な求人の1ページ分を返します。フィルタは組み合わせ可能で、
// 空値は「制約なし」を意味します。
func (u *jobUsecase) List(ctx context.Context, filter ListFilter) (*JobPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	jobs, total, err := u.jobs.ListActive(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &JobPage{Jobs: jobs, Total: total, Page: filter.Page, PerPage: PageSize}, nil
}

// Get は公開の求人詳細を返します。認証済み閲覧者には応募済みかどうかも返します。
func (u *jobUsecase) Get(ctx context.Context, jobID uint, viewerID *uint) (*JobDetail, error) {
	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	detail := &JobDetail{Job: job}

	if viewerID != nil {
		applied, err := u.applications.Exists(ctx, jobID, *viewerID)
		if err != nil {
			return nil, err
		}
		detail.HasApplied = applied
	}

	count, err := u.applications.CountByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	detail.ApplicationsCount = count

	return detail, nil
}

// Search は検索エンドポイント用に有効な求人を最大10件返します。
func (u *jobUsecase) Search(ctx context.Context, query string) ([]entity.Job, error) {
	return u.jobs.SearchActive(ctx, query, SearchLimit)
}

// IsOwner は指定ユーザーが求人の投稿者かどうかを返します。
// 求人が存在しない場合はErrJobNotFoundを返します。
func (u *jobUsecase) IsOwner(ctx context.Context, jobID, userID uint) (bool, error) {
	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return false, ErrJobNotFound
		}
		return false, err
	}
	return job.PostedByID == userID, nil
}

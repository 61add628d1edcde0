// Package usecase はapplicationフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"jobboard_backend/internal/feature/application/domain/entity"
	jobentity "jobboard_backend/internal/feature/job/domain/entity"
)

// 履歴書アップロードの制約。超過・不正な形式はエラーにします。
const maxResumeSize = 5 << 20 // 5MB

// 許可する履歴書の拡張子（小文字、ドットなし）
var allowedResumeExts = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
}

// JobSource は応募対象の求人情報を提供します。
// jobフィーチャーのリポジトリが実装します。
type JobSource interface {
	// FindByID はIDで求人を取得します。
	FindByID(ctx context.Context, id uint) (*jobentity.Job, error)
}

// FileStore は履歴書ファイルの保存先を抽象化します。
// platform/storageのローカルストアが実装します。
type FileStore interface {
	// Save はReaderの内容を保存し、保存先の相対パスを返します。
	Save(dir, filename string, r io.Reader) (string, error)
}

// ResumeUpload はアップロードされた履歴書ファイルです。
type ResumeUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// ApplyInput は応募フォームの内容です。
type ApplyInput struct {
	CoverLetter string
	Resume      ResumeUpload
}

// StatusUpdate は選考ステータス更新の内容です。Notesがnilの場合は変更しません。
type StatusUpdate struct {
	Status string
	Notes  *string
}

// applicationUsecase は応募のビジネスロジックを実装します。
type applicationUsecase struct {
	applications ApplicationRepository
	jobs         JobSource
	files        FileStore
}

// NewApplicationUsecase はapplicationUsecaseの新しいインスタンスを生成します。
func NewApplicationUsecase(applications ApplicationRepository, jobs JobSource, files FileStore) *applicationUsecase {
	return &applicationUsecase{
		applications: applications,
		jobs:         jobs,
		files:        files,
	}
}

// validateResume は履歴書の形式とサイズを検証します。
func validateResume(resume ResumeUpload) error {
	if resume.Size > maxResumeSize {
		return ErrResumeTooLarge
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(resume.Filename), "."))
	if _, ok := allowedResumeExts[ext]; !ok {
		return ErrResumeType
	}
	return nil
}

// Apply は求人への応募を登録します。募集中の求人にのみ応募でき、
// 同じ求人への応募は1回までです（同時リクエストは一意制約で防ぎます）。
func (u *applicationUsecase) Apply(ctx context.Context, jobID, applicantID uint, input ApplyInput) (*entity.Application, error) {
	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	if !job.IsActive {
		return nil, ErrJobClosed
	}

	applied, err := u.applications.Exists(ctx, jobID, applicantID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, ErrAlreadyApplied
	}

	if err := validateResume(input.Resume); err != nil {
		return nil, err
	}

	resumePath, err := u.files.Save("resumes", input.Resume.Filename, input.Resume.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to store resume: %w", err)
	}

	application := &entity.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		ResumePath:  resumePath,
		CoverLetter: input.CoverLetter,
		Status:      entity.StatusPending,
	}
	if err := u.applications.Create(ctx, application); err != nil {
		if errors.Is(err, ErrAlreadyApplied) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return application, nil
}

// Get は応募の詳細を返します。応募者本人と求人の投稿者のみ参照できます。
func (u *applicationUsecase) Get(ctx context.Context, applicationID, userID uint) (*entity.Application, error) {
	application, err := u.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.ApplicantID != userID && !u.postedBy(application, userID) {
		return nil, ErrAccessDenied
	}
	return application, nil
}

// UpdateStatus は選考ステータスを更新します。求人の投稿者のみ許可され、
// 既知のステータス値以外は保存せず拒否します。
func (u *applicationUsecase) UpdateStatus(ctx context.Context, applicationID, userID uint, update StatusUpdate) (*entity.Application, error) {
	application, err := u.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !u.postedBy(application, userID) {
		return nil, ErrNotJobPoster
	}

	status := entity.Status(update.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	application.Status = status
	if update.Notes != nil {
		application.Notes = *update.Notes
	}
	if err := u.applications.Update(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}
	return application, nil
}

// ListByJob は求人への応募一覧を返します。求人の投稿者のみ参照できます。
func (u *applicationUsecase) ListByJob(ctx context.Context, jobID, userID uint) ([]entity.Application, error) {
	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	if job.PostedByID != userID {
		return nil, ErrNotJobPoster
	}
	return u.applications.ListByJob(ctx, jobID)
}

// ListByApplicant は応募者自身の応募一覧を返します（求人付き）。
func (u *applicationUsecase) ListByApplicant(ctx context.Context, applicantID uint) ([]entity.Application, error) {
	return u.applications.ListByApplicant(ctx, applicantID)
}

// CountForPoster は投稿者の全求人への応募総数を返します。
func (u *applicationUsecase) CountForPoster(ctx context.Context, posterID uint) (int64, error) {
	return u.applications.CountForPoster(ctx, posterID)
}

// postedBy は応募先の求人がuserIDの投稿かどうかを返します。
func (u *applicationUsecase) postedBy(application *entity.Application, userID uint) bool {
	return application.Job != nil && application.Job.PostedByID == userID
}

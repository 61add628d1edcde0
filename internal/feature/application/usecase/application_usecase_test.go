package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/feature/application/domain/entity"
	jobentity "jobboard_backend/internal/feature/job/domain/entity"
)

// mockApplicationRepository はApplicationRepositoryのテスト用モックです。
type mockApplicationRepository struct {
	CreateFunc          func(ctx context.Context, a *entity.Application) error
	UpdateFunc          func(ctx context.Context, a *entity.Application) error
	FindByIDFunc        func(ctx context.Context, id uint) (*entity.Application, error)
	ListByJobFunc       func(ctx context.Context, jobID uint) ([]entity.Application, error)
	ListByApplicantFunc func(ctx context.Context, applicantID uint) ([]entity.Application, error)
	ExistsFunc          func(ctx context.Context, jobID, applicantID uint) (bool, error)
	CountByJobFunc      func(ctx context.Context, jobID uint) (int64, error)
	CountForPosterFunc  func(ctx context.Context, posterID uint) (int64, error)
	CountFunc           func(ctx context.Context) (int64, error)
}

func (m *mockApplicationRepository) Create(ctx context.Context, a *entity.Application) error {
	return m.CreateFunc(ctx, a)
}

func (m *mockApplicationRepository) Update(ctx context.Context, a *entity.Application) error {
	return m.UpdateFunc(ctx, a)
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, id uint) (*entity.Application, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockApplicationRepository) ListByJob(ctx context.Context, jobID uint) ([]entity.Application, error) {
	return m.ListByJobFunc(ctx, jobID)
}

func (m *mockApplicationRepository) ListByApplicant(ctx context.Context, applicantID uint) ([]entity.Application, error) {
	return m.ListByApplicantFunc(ctx, applicantID)
}

func (m *mockApplicationRepository) Exists(ctx context.Context, jobID, applicantID uint) (bool, error) {
	return m.ExistsFunc(ctx, jobID, applicantID)
}

func (m *mockApplicationRepository) CountByJob(ctx context.Context, jobID uint) (int64, error) {
	return m.CountByJobFunc(ctx, jobID)
}

func (m *mockApplicationRepository) CountForPoster(ctx context.Context, posterID uint) (int64, error) {
	return m.CountForPosterFunc(ctx, posterID)
}

func (m *mockApplicationRepository) Count(ctx context.Context) (int64, error) {
	return m.CountFunc(ctx)
}

// mockJobSource はJobSourceのテスト用モックです。
type mockJobSource struct {
	FindByIDFunc func(ctx context.Context, id uint) (*jobentity.Job, error)
}

func (m *mockJobSource) FindByID(ctx context.Context, id uint) (*jobentity.Job, error) {
	return m.FindByIDFunc(ctx, id)
}

// mockFileStore はFileStoreのテスト用モックです。
type mockFileStore struct {
	SaveFunc func(dir, filename string, r io.Reader) (string, error)
}

func (m *mockFileStore) Save(dir, filename string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(dir, filename, r)
	}
	return "resumes/stored.pdf", nil
}

func activeJob(posterID uint) *mockJobSource {
	return &mockJobSource{
		FindByIDFunc: func(ctx context.Context, id uint) (*jobentity.Job, error) {
			return &jobentity.Job{ID: id, PostedByID: posterID, IsActive: true}, nil
		},
	}
}

func notApplied() *mockApplicationRepository {
	return &mockApplicationRepository{
		ExistsFunc: func(ctx context.Context, jobID, applicantID uint) (bool, error) {
			return false, nil
		},
		CreateFunc: func(ctx context.Context, a *entity.Application) error {
			a.ID = 1
			return nil
		},
	}
}

func resume(name string, size int64) ResumeUpload {
	return ResumeUpload{Filename: name, Size: size, Reader: strings.NewReader("content")}
}

func TestApplicationUsecase_Apply_Success(t *testing.T) {
	repo := notApplied()
	files := &mockFileStore{
		SaveFunc: func(dir, filename string, r io.Reader) (string, error) {
			assert.Equal(t, "resumes", dir)
			assert.Equal(t, "cv.pdf", filename)
			return "resumes/abc.pdf", nil
		},
	}
	uc := NewApplicationUsecase(repo, activeJob(10), files)

	application, err := uc.Apply(context.Background(), 1, 55, ApplyInput{
		CoverLetter: "Hello",
		Resume:      resume("cv.pdf", 4<<20),
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), application.ID)
	assert.Equal(t, entity.StatusPending, application.Status)
	assert.Equal(t, "resumes/abc.pdf", application.ResumePath)
}

func TestApplicationUsecase_Apply_JobNotFound(t *testing.T) {
	jobs := &mockJobSource{
		FindByIDFunc: func(ctx context.Context, id uint) (*jobentity.Job, error) {
			return nil, errors.New("record not found")
		},
	}
	uc := NewApplicationUsecase(notApplied(), jobs, &mockFileStore{})

	_, err := uc.Apply(context.Background(), 42, 55, ApplyInput{Resume: resume("cv.pdf", 100)})

	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestApplicationUsecase_Apply_ClosedJob(t *testing.T) {
	jobs := &mockJobSource{
		FindByIDFunc: func(ctx context.Context, id uint) (*jobentity.Job, error) {
			return &jobentity.Job{ID: id, IsActive: false}, nil
		},
	}
	uc := NewApplicationUsecase(notApplied(), jobs, &mockFileStore{})

	_, err := uc.Apply(context.Background(), 1, 55, ApplyInput{Resume: resume("cv.pdf", 100)})

	assert.ErrorIs(t, err, ErrJobClosed)
}

func TestApplicationUsecase_Apply_Duplicate(t *testing.T) {
	repo := &mockApplicationRepository{
		ExistsFunc: func(ctx context.Context, jobID, applicantID uint) (bool, error) {
			return true, nil
		},
		CreateFunc: func(ctx context.Context, a *entity.Application) error {
			t.Fatal("Create should not be called")
			return nil
		},
	}
	uc := NewApplicationUsecase(repo, activeJob(10), &mockFileStore{})

	_, err := uc.Apply(context.Background(), 1, 55, ApplyInput{Resume: resume("cv.pdf", 100)})

	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestApplicationUsecase_Apply_DuplicateRace(t *testing.T) {
	// Existsのチェックをすり抜けた同時応募は一意制約で弾かれる
	repo := &mockApplicationRepository{
		ExistsFunc: func(ctx context.Context, jobID, applicantID uint) (bool, error) {
			return false, nil
		},
		CreateFunc: func(ctx context.Context, a *entity.Application) error {
			return ErrAlreadyApplied
		},
	}
	uc := NewApplicationUsecase(repo, activeJob(10), &mockFileStore{})

	_, err := uc.Apply(context.Background(), 1, 55, ApplyInput{Resume: resume("cv.pdf", 100)})

	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestApplicationUsecase_Apply_ResumeValidation(t *testing.T) {
	tests := []struct {
		name     string
		resume   ResumeUpload
		expected error
	}{
		{
			name:     "6MB file rejected",
			resume:   resume("cv.pdf", 6<<20),
			expected: ErrResumeTooLarge,
		},
		{
			name:     "4MB file accepted",
			resume:   resume("cv.pdf", 4<<20),
			expected: nil,
		},
		{
			name:     "executable rejected",
			resume:   resume("cv.exe", 100),
			expected: ErrResumeType,
		},
		{
			name:     "docx accepted",
			resume:   resume("CV.DOCX", 100),
			expected: nil,
		},
		{
			name:     "no extension rejected",
			resume:   resume("resume", 100),
			expected: ErrResumeType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewApplicationUsecase(notApplied(), activeJob(10), &mockFileStore{})

			_, err := uc.Apply(context.Background(), 1, 55, ApplyInput{Resume: tt.resume})

			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestApplicationUsecase_Get_AccessControl(t *testing.T) {
	repo := &mockApplicationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Application, error) {
			return &entity.Application{
				ID:          id,
				JobID:       1,
				ApplicantID: 55,
				Job:         &jobentity.Job{ID: 1, PostedByID: 10},
			}, nil
		},
	}
	uc := NewApplicationUsecase(repo, activeJob(10), &mockFileStore{})

	// 応募者本人
	_, err := uc.Get(context.Background(), 1, 55)
	assert.NoError(t, err)

	// 求人の投稿者
	_, err = uc.Get(context.Background(), 1, 10)
	assert.NoError(t, err)

	// 無関係の第三者
	_, err = uc.Get(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestApplicationUsecase_UpdateStatus(t *testing.T) {
	var updated *entity.Application
	repo := &mockApplicationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Application, error) {
			return &entity.Application{
				ID:          id,
				ApplicantID: 55,
				Status:      entity.StatusPending,
				Notes:       "keep",
				Job:         &jobentity.Job{ID: 1, PostedByID: 10},
			}, nil
		},
		UpdateFunc: func(ctx context.Context, a *entity.Application) error {
			updated = a
			return nil
		},
	}
	uc := NewApplicationUsecase(repo, activeJob(10), &mockFileStore{})

	application, err := uc.UpdateStatus(context.Background(), 1, 10, StatusUpdate{Status: "shortlisted"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusShortlisted, application.Status)
	// Notesがnilなら既存の値を維持する
	assert.Equal(t, "keep", updated.Notes)

	notes := "strong candidate"
	_, err = uc.UpdateStatus(context.Background(), 1, 10, StatusUpdate{Status: "accepted", Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "strong candidate", updated.Notes)
}

func TestApplicationUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	repo := &mockApplicationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Application, error) {
			return &entity.Application{ID: id, Job: &jobentity.Job{ID: 1, PostedByID: 10}}, nil
		},
		UpdateFunc: func(ctx context.Context, a *entity.Application) error {
			t.Fatal("Update should not be called")
			return nil
		},
	}
	uc := NewApplicationUsecase(repo, activeJob(10), &mockFileStore{})

	_, err := uc.UpdateStatus(context.Background(), 1, 10, StatusUpdate{Status: "hired"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestApplicationUsecase_UpdateStatus_OnlyPoster(t *testing.T) {
	repo := &mockApplicationRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Application, error) {
			return &entity.Application{ID: id, ApplicantID: 55, Job: &jobentity.Job{ID: 1, PostedByID: 10}}, nil
		},
	}
	uc := NewApplicationUsecase(repo, activeJob(10), &mockFileStore{})

	// 応募者本人でもステータスは変更できない
	_, err := uc.UpdateStatus(context.Background(), 1, 55, StatusUpdate{Status: "accepted"})

	assert.ErrorIs(t, err, ErrNotJobPoster)
}

func TestApplicationUsecase_ListByJob_OnlyPoster(t *testing.T) {
	repo := &mockApplicationRepository{
		ListByJobFunc: func(ctx context.Context, jobID uint) ([]entity.Application, error) {
			return []entity.Application{{ID: 1}, {ID: 2}}, nil
		},
	}
	uc := NewApplicationUsecase(repo, activeJob(10), &mockFileStore{})

	applications, err := uc.ListByJob(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, applications, 2)

	_, err = uc.ListByJob(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrNotJobPoster)
}

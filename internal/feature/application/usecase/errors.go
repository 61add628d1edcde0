package usecase

import "errors"

var (
	// ErrApplicationNotFound は応募が見つからない場合に返されます。
	ErrApplicationNotFound = errors.New("application not found")
	// ErrJobNotFound は応募先の求人が見つからない場合に返されます。
	ErrJobNotFound = errors.New("job not found")
	// ErrJobClosed は募集を終了した求人への応募時に返されます。
	ErrJobClosed = errors.New("this job is no longer accepting applications")
	// ErrAlreadyApplied は同じ求人への二重応募時に返されます。
	ErrAlreadyApplied = errors.New("you have already applied for this job")
	// ErrResumeTooLarge は履歴書が上限サイズを超える場合に返されます。
	ErrResumeTooLarge = errors.New("resume file size must be under 5MB")
	// ErrResumeType は許可されていない履歴書の形式の場合に返されます。
	ErrResumeType = errors.New("resume must be a PDF, DOC, or DOCX file")
	// ErrInvalidStatus は不正な選考ステータス値の場合に返されます。
	ErrInvalidStatus = errors.New("invalid application status")
	// ErrNotJobPoster は求人の投稿者以外が選考操作を行った場合に返されます。
	ErrNotJobPoster = errors.New("only the job poster may manage applications")
	// ErrAccessDenied は応募者・投稿者以外が応募を参照した場合に返されます。
	ErrAccessDenied = errors.New("access denied")
)

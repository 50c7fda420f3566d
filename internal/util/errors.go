package util

import "errors"

var (
	ErrUnauthorized          = errors.New("unauthorized")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailRegistered       = errors.New("email already registered")
	ErrSectionNotFound       = errors.New("section not found")
	ErrTopicNotFound         = errors.New("topic not found")
	ErrLessonNotFound        = errors.New("lesson not found")
	ErrMediaNotFound         = errors.New("media item not found")
	ErrDocumentNotFound      = errors.New("document not found")
	ErrVideoNotFound         = errors.New("video not found")
	ErrQuestionNotFound      = errors.New("question not found")
	ErrProjectNotFound       = errors.New("mini project not found")
	ErrGameNotFound          = errors.New("game not found")
	ErrEmptyFilePath         = errors.New("file path must not be empty")
	ErrInvalidMediaType      = errors.New("invalid media type")
	ErrInvalidLottiePayload  = errors.New("lottie payload must be JSON with v and layers")
	ErrCodeLanguageRequired  = errors.New("code media requires a language tag")
	ErrNotEnoughChoices      = errors.New("multiple choice question needs at least 2 unique choices")
	ErrAnswerNotInChoices    = errors.New("correct answer must be one of the choices")
	ErrInvalidTrueFalse      = errors.New("true/false answer must be true or false")
	ErrInvalidDifficulty     = errors.New("invalid difficulty level")
	ErrInvalidQuestionType   = errors.New("invalid question type")
	ErrReorderSetMismatch    = errors.New("reorder id list does not match the sibling group")
	ErrTitleRequired         = errors.New("title must not be empty")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrCalendarUnavailable   = errors.New("calendar unavailable and no cached copy exists")
	ErrInvalidDocumentUpload = errors.New("invalid document upload")
	ErrInvalidVideoUpload    = errors.New("invalid video upload")
)

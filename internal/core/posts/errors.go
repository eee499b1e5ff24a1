package posts

import "errors"

var (
	// ErrPostNotFound indicates the requested post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrTypeRequired indicates the post type was not supplied
	ErrTypeRequired = errors.New("post type is required")

	// ErrInvalidType indicates the post type is not text, image or video
	ErrInvalidType = errors.New("post type must be text, image or video")

	// ErrMediaRequired indicates a non-text post was created without a media buffer
	ErrMediaRequired = errors.New("media file is required for image/video post")

	// ErrTitleTooLong indicates the title exceeds the allowed length
	ErrTitleTooLong = errors.New("post title exceeds 150 characters")

	// ErrCaptionTooLong indicates the caption exceeds the allowed length
	ErrCaptionTooLong = errors.New("post caption exceeds 2000 characters")

	// ErrInvalidReaction indicates an unknown reaction kind
	ErrInvalidReaction = errors.New("reaction must be like or dislike")

	// ErrNotAuthorized indicates the acting user does not own the post
	ErrNotAuthorized = errors.New("not authorized")
)

// IsValidationError checks if an error is a client input error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTypeRequired) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrMediaRequired) ||
		errors.Is(err, ErrTitleTooLong) ||
		errors.Is(err, ErrCaptionTooLong) ||
		errors.Is(err, ErrInvalidReaction)
}

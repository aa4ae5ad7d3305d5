package video

import "errors"

var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrForbidden       = errors.New("you do not own this video")
	ErrSourceMissing   = errors.New("source file missing from storage")
	ErrNotReady        = errors.New("transcoded rendition not ready")
	ErrOutputMissing   = errors.New("transcoded file missing from storage")
	ErrTranscodeFailed = errors.New("transcode failed")
)

package article

import "fmt"

// ImageStatus tracks the asynchronous image conversion of an article.
// Transitions are Pending → Processing → {Ok, Error}; Ok implies the stored
// asset is in the normalized WebP encoding.
type ImageStatus string

const (
	ImagePending    ImageStatus = "pending"
	ImageProcessing ImageStatus = "processing"
	ImageOk         ImageStatus = "ok"
	ImageError      ImageStatus = "error"
)

var imageStatusLabels = map[ImageStatus]string{
	ImagePending:    "Pending",
	ImageProcessing: "Processing",
	ImageOk:         "OK",
	ImageError:      "Error",
}

// IsValid reports whether the status belongs to the closed set.
func (s ImageStatus) IsValid() bool {
	_, ok := imageStatusLabels[s]
	return ok
}

// Label returns the display label of the image status.
func (s ImageStatus) Label() string {
	return imageStatusLabels[s]
}

func (s ImageStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the transition is allowed.
func (s ImageStatus) CanTransitionTo(next ImageStatus) bool {
	switch s {
	case ImagePending:
		return next == ImageProcessing
	case ImageProcessing:
		return next == ImageOk || next == ImageError
	case ImageOk, ImageError:
		// A new upload resets to Pending before reprocessing.
		return next == ImagePending
	}
	return false
}

// ParseImageStatus converts a storage value into an ImageStatus.
func ParseImageStatus(raw string) (ImageStatus, error) {
	s := ImageStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown image status: %q", raw)
	}
	return s, nil
}

// Package article defines the article aggregate and its publication lifecycle.
package article

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/gazette-press/gazette/internal/domain/vertical"
)

const (
	maxTitleLen    = 50
	maxSubtitleLen = 100

	// NormalizedExtension is the target encoding of the image pipeline.
	NormalizedExtension = "webp"
)

// AcceptedImageExtensions lists the upload formats the image pipeline accepts.
var AcceptedImageExtensions = []string{"jpg", "jpeg", "png"}

// Article is the aggregate root for a news article.
type Article struct {
	id          uint
	uuid        string
	title       string
	subtitle    string
	content     string
	publishAt   time.Time
	status      Status
	imageKey    string
	imageStatus ImageStatus
	restricted  bool
	authorID    uint
	verticals   []vertical.Code
	createdAt   time.Time
	updatedAt   time.Time
}

// NewArticle creates a draft article. A past publish timestamp does not
// publish synchronously; the article waits for the next scheduler pass.
func NewArticle(title, subtitle, content string, publishAt time.Time, restricted bool, authorID uint, verticals []vertical.Code) (*Article, error) {
	a := &Article{
		status:      StatusDraft,
		imageStatus: ImagePending,
		restricted:  restricted,
		authorID:    authorID,
	}

	if authorID == 0 {
		return nil, fmt.Errorf("author is required")
	}
	if err := a.SetTitle(title); err != nil {
		return nil, err
	}
	if err := a.SetSubtitle(subtitle); err != nil {
		return nil, err
	}
	if err := a.SetContent(content); err != nil {
		return nil, err
	}
	if publishAt.IsZero() {
		return nil, fmt.Errorf("publish timestamp is required")
	}
	a.publishAt = publishAt.UTC()
	if err := a.SetVerticals(verticals); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a.createdAt = now
	a.updatedAt = now
	return a, nil
}

// Reconstruct rebuilds an article from persistence.
func Reconstruct(id uint, uuid, title, subtitle, content string, publishAt time.Time, status Status, imageKey string, imageStatus ImageStatus, restricted bool, authorID uint, verticals []vertical.Code, createdAt, updatedAt time.Time) (*Article, error) {
	if id == 0 {
		return nil, fmt.Errorf("article ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %q", status)
	}
	if !imageStatus.IsValid() {
		return nil, fmt.Errorf("invalid image status: %q", imageStatus)
	}
	return &Article{
		id:          id,
		uuid:        uuid,
		title:       title,
		subtitle:    subtitle,
		content:     content,
		publishAt:   publishAt,
		status:      status,
		imageKey:    imageKey,
		imageStatus: imageStatus,
		restricted:  restricted,
		authorID:    authorID,
		verticals:   verticals,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (a *Article) ID() uint                    { return a.id }
func (a *Article) UUID() string                { return a.uuid }
func (a *Article) Title() string               { return a.title }
func (a *Article) Subtitle() string            { return a.subtitle }
func (a *Article) Content() string             { return a.content }
func (a *Article) PublishAt() time.Time        { return a.publishAt }
func (a *Article) Status() Status              { return a.status }
func (a *Article) ImageKey() string            { return a.imageKey }
func (a *Article) ImageStatus() ImageStatus    { return a.imageStatus }
func (a *Article) Restricted() bool            { return a.restricted }
func (a *Article) AuthorID() uint              { return a.authorID }
func (a *Article) Verticals() []vertical.Code  { return a.verticals }
func (a *Article) CreatedAt() time.Time        { return a.createdAt }
func (a *Article) UpdatedAt() time.Time        { return a.updatedAt }

// SetID sets the article ID (only for persistence layer use).
func (a *Article) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("article ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("article ID cannot be zero")
	}
	a.id = id
	return nil
}

// SetUUID sets the public identifier (only for persistence layer use).
func (a *Article) SetUUID(uuid string) {
	if a.uuid == "" {
		a.uuid = uuid
	}
}

func (a *Article) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLen {
		return fmt.Errorf("title must be at most %d characters", maxTitleLen)
	}
	a.title = title
	a.touch()
	return nil
}

func (a *Article) SetSubtitle(subtitle string) error {
	subtitle = strings.TrimSpace(subtitle)
	if subtitle == "" {
		return fmt.Errorf("subtitle is required")
	}
	if len(subtitle) > maxSubtitleLen {
		return fmt.Errorf("subtitle must be at most %d characters", maxSubtitleLen)
	}
	a.subtitle = subtitle
	a.touch()
	return nil
}

func (a *Article) SetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	a.content = content
	a.touch()
	return nil
}

func (a *Article) SetRestricted(restricted bool) {
	a.restricted = restricted
	a.touch()
}

func (a *Article) SetVerticals(verticals []vertical.Code) error {
	if len(verticals) == 0 {
		return fmt.Errorf("at least one vertical is required")
	}
	for _, c := range verticals {
		if !c.IsValid() {
			return fmt.Errorf("unknown vertical code: %q", c)
		}
	}
	a.verticals = verticals
	a.touch()
	return nil
}

// Publish promotes a due draft. The scheduler only selects drafts whose
// publish timestamp has passed; the guard here keeps the invariant explicit.
func (a *Article) Publish(now time.Time) error {
	if a.status == StatusPublished {
		return fmt.Errorf("article is already published")
	}
	if a.publishAt.After(now) {
		return fmt.Errorf("publish timestamp %s is still in the future", a.publishAt.Format(time.RFC3339))
	}
	a.status = StatusPublished
	a.touch()
	return nil
}

// RevertToDraft demotes a published article back to draft.
func (a *Article) RevertToDraft() error {
	if a.status != StatusPublished {
		return fmt.Errorf("article is not published")
	}
	a.status = StatusDraft
	a.touch()
	return nil
}

// Reschedule moves the publish timestamp without touching status. Whether
// a demotion is needed afterwards is decided by ShouldDemote.
func (a *Article) Reschedule(publishAt time.Time) error {
	if publishAt.IsZero() {
		return fmt.Errorf("publish timestamp is required")
	}
	a.publishAt = publishAt.UTC()
	a.touch()
	return nil
}

// ShouldDemote reports whether the article is published with a publish
// timestamp strictly in the future, i.e. a reschedule pushed it forward.
func (a *Article) ShouldDemote(now time.Time) bool {
	return a.status == StatusPublished && a.publishAt.After(now)
}

// HasImage reports whether an image asset is attached.
func (a *Article) HasImage() bool {
	return a.imageKey != ""
}

// ImageIsNormalized reports whether the stored asset already carries the
// normalized encoding, which makes reprocessing a no-op.
func (a *Article) ImageIsNormalized() bool {
	return ImageExtension(a.imageKey) == NormalizedExtension
}

// AttachImage stores a new asset key and resets the processing status.
func (a *Article) AttachImage(key string) error {
	if key == "" {
		return fmt.Errorf("image key is required")
	}
	if err := ValidateImageExtension(key); err != nil {
		return err
	}
	a.imageKey = key
	a.imageStatus = ImagePending
	a.touch()
	return nil
}

// BeginImageProcessing marks the conversion as started.
func (a *Article) BeginImageProcessing() error {
	if !a.imageStatus.CanTransitionTo(ImageProcessing) {
		return fmt.Errorf("cannot start processing from image status %s", a.imageStatus)
	}
	a.imageStatus = ImageProcessing
	a.touch()
	return nil
}

// CompleteImageProcessing records the normalized asset key and marks the
// conversion as successful.
func (a *Article) CompleteImageProcessing(normalizedKey string) error {
	if !a.imageStatus.CanTransitionTo(ImageOk) {
		return fmt.Errorf("cannot complete processing from image status %s", a.imageStatus)
	}
	a.imageKey = normalizedKey
	a.imageStatus = ImageOk
	a.touch()
	return nil
}

// FailImageProcessing marks the conversion as failed.
func (a *Article) FailImageProcessing() error {
	if !a.imageStatus.CanTransitionTo(ImageError) {
		return fmt.Errorf("cannot fail processing from image status %s", a.imageStatus)
	}
	a.imageStatus = ImageError
	a.touch()
	return nil
}

func (a *Article) touch() {
	a.updatedAt = time.Now().UTC()
}

// ImageExtension returns the lowercase extension of an asset key without the dot.
func ImageExtension(key string) string {
	ext := strings.ToLower(path.Ext(key))
	return strings.TrimPrefix(ext, ".")
}

// ValidateImageExtension rejects uploads outside the accepted formats.
// The returned error message enumerates the accepted extensions.
func ValidateImageExtension(filename string) error {
	ext := ImageExtension(filename)
	for _, accepted := range AcceptedImageExtensions {
		if ext == accepted {
			return nil
		}
	}
	return fmt.Errorf("incompatible image type %q: must be one of %s", ext, strings.Join(AcceptedImageExtensions, ", "))
}

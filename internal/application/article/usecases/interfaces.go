package usecases

import (
	"context"
	"io"

	"github.com/gazette-press/gazette/internal/application/notification"
)

// TaskEnqueuer queues asynchronous work. Image conversion is queued after
// the write that created or replaced the image has been committed.
type TaskEnqueuer interface {
	EnqueueConvertImage(ctx context.Context, articleID uint) error
	EnqueueNotification(ctx context.Context, n notification.Notice) error
}

// ImageStore persists original and converted article images.
type ImageStore interface {
	Save(key string, r io.Reader) error
	Open(key string) (io.ReadCloser, error)
	Delete(key string) error
	URL(key string) string
}

// ImageConverter normalizes an uploaded image into the canonical format.
type ImageConverter interface {
	Convert(r io.Reader) (io.Reader, error)
}

// ContentRenderer turns stored article markdown into sanitized HTML.
type ContentRenderer interface {
	Render(content string) (string, error)
}

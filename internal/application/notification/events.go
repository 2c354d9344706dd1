// Package notification routes domain events to transactional emails.
package notification

// Event identifies a notification trigger.
type Event string

const (
	EventAccountWelcome        Event = "account_welcome"
	EventArticlePublished      Event = "article_published"
	EventArticleUnpublished    Event = "article_unpublished"
	EventImageProcessed        Event = "image_processed"
	EventImageProcessingFailed Event = "image_processing_failed"
)

func (e Event) String() string {
	return string(e)
}

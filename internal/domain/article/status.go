package article

import "fmt"

// Status is the publication lifecycle state of an article.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

var statusLabels = map[Status]string{
	StatusDraft:     "Draft",
	StatusPublished: "Published",
}

// IsValid reports whether the status belongs to the closed set.
func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label of the status.
func (s Status) Label() string {
	return statusLabels[s]
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a storage value into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown article status: %q", raw)
	}
	return s, nil
}

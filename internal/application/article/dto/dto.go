// Package dto defines the request and response shapes of the article context.
package dto

import (
	"io"
	"time"

	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/shared/mapper"
)

// ImageUpload carries one multipart image upload into the use case.
type ImageUpload struct {
	Filename string
	Data     io.Reader
}

type CreateArticleRequest struct {
	Title      string
	Subtitle   string
	Content    string
	PublishAt  time.Time
	Restricted bool
	Verticals  []string
	Image      *ImageUpload
}

// UpdateArticleRequest carries partial updates. Status and author are not
// accepted here: status moves only through scheduling and author never moves.
type UpdateArticleRequest struct {
	Title      *string
	Subtitle   *string
	Content    *string
	PublishAt  *time.Time
	Restricted *bool
	Verticals  []string
	Image      *ImageUpload
}

type ListArticlesRequest struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ArticleResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Subtitle         string    `json:"subtitle"`
	Content          string    `json:"content"`
	ContentHTML      string    `json:"content_html,omitempty"`
	PublishAt        time.Time `json:"publish_at"`
	Status           string    `json:"status"`
	StatusLabel      string    `json:"status_label"`
	Restricted       bool      `json:"restricted"`
	Verticals        []string  `json:"verticals"`
	VerticalNames    []string  `json:"vertical_names"`
	AuthorID         string    `json:"author_id"`
	AuthorName       string    `json:"author_name,omitempty"`
	ImageURL         string    `json:"image_url,omitempty"`
	ImageStatus      string    `json:"image_status"`
	ImageStatusLabel string    `json:"image_status_label"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// AssetURLResolver turns a stored image key into a public URL.
type AssetURLResolver interface {
	URL(key string) string
}

// ToArticleResponse maps an article entity to its response shape. The image
// URL is exposed only once processing has succeeded, so clients never link
// to an asset that is still being converted or failed conversion.
func ToArticleResponse(a *article.Article, authorUUID, authorName string, assets AssetURLResolver) ArticleResponse {
	resp := ArticleResponse{
		ID:               a.UUID(),
		Title:            a.Title(),
		Subtitle:         a.Subtitle(),
		Content:          a.Content(),
		PublishAt:        a.PublishAt(),
		Status:           a.Status().String(),
		StatusLabel:      a.Status().Label(),
		Restricted:       a.Restricted(),
		Verticals:        mapper.MapSlice(a.Verticals(), func(c vertical.Code) string { return c.String() }),
		VerticalNames:    vertical.NamesOf(a.Verticals()),
		AuthorID:         authorUUID,
		AuthorName:       authorName,
		ImageStatus:      a.ImageStatus().String(),
		ImageStatusLabel: a.ImageStatus().Label(),
		CreatedAt:        a.CreatedAt(),
		UpdatedAt:        a.UpdatedAt(),
	}

	if a.HasImage() && a.ImageStatus() == article.ImageOk && assets != nil {
		resp.ImageURL = assets.URL(a.ImageKey())
	}

	return resp
}

package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gazette-press/gazette/internal/application/article/dto"
	"github.com/gazette-press/gazette/internal/application/article/usecases"
	"github.com/gazette-press/gazette/internal/shared/logger"
	"github.com/gazette-press/gazette/internal/shared/utils"
)

// ArticleHandler exposes the article lifecycle. Create and update accept
// multipart forms so the image upload rides the same request as the fields.
type ArticleHandler struct {
	createArticleUC *usecases.CreateArticleUseCase
	getArticleUC    *usecases.GetArticleUseCase
	listArticlesUC  *usecases.ListArticlesUseCase
	updateArticleUC *usecases.UpdateArticleUseCase
	deleteArticleUC *usecases.DeleteArticleUseCase
	logger          logger.Interface
}

func NewArticleHandler(
	createArticleUC *usecases.CreateArticleUseCase,
	getArticleUC *usecases.GetArticleUseCase,
	listArticlesUC *usecases.ListArticlesUseCase,
	updateArticleUC *usecases.UpdateArticleUseCase,
	deleteArticleUC *usecases.DeleteArticleUseCase,
	logger logger.Interface,
) *ArticleHandler {
	return &ArticleHandler{
		createArticleUC: createArticleUC,
		getArticleUC:    getArticleUC,
		listArticlesUC:  listArticlesUC,
		updateArticleUC: updateArticleUC,
		deleteArticleUC: deleteArticleUC,
		logger:          logger,
	}
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	publishAt, err := parsePublishAt(c.PostForm("publish_at"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid publish_at: "+err.Error())
		return
	}

	req := dto.CreateArticleRequest{
		Title:      c.PostForm("title"),
		Subtitle:   c.PostForm("subtitle"),
		Content:    c.PostForm("content"),
		PublishAt:  publishAt,
		Restricted: parseBool(c.PostForm("restricted")),
		Verticals:  parseVerticalsParam(c.PostForm("verticals")),
	}

	upload, file, err := openUpload(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid image upload: "+err.Error())
		return
	}
	if file != nil {
		defer file.Close()
		req.Image = upload
	}

	result, err := h.createArticleUC.Execute(c.Request.Context(), caller, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Article created successfully")
}

// Get handles GET /articles/:id.
func (h *ArticleHandler) Get(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	result, err := h.getArticleUC.Execute(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /articles.
func (h *ArticleHandler) List(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req dto.ListArticlesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters: "+err.Error())
		return
	}

	result, err := h.listArticlesUC.Execute(c.Request.Context(), caller, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Articles, result.Total, result.Page, result.PageSize)
}

// Update handles PUT /articles/:id. Only the submitted form fields change.
func (h *ArticleHandler) Update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if v, ok := formValue(c, "title"); ok {
		req.Title = &v
	}
	if v, ok := formValue(c, "subtitle"); ok {
		req.Subtitle = &v
	}
	if v, ok := formValue(c, "content"); ok {
		req.Content = &v
	}
	if v, ok := formValue(c, "publish_at"); ok {
		publishAt, err := parsePublishAt(v)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid publish_at: "+err.Error())
			return
		}
		req.PublishAt = &publishAt
	}
	if v, ok := formValue(c, "restricted"); ok {
		restricted := parseBool(v)
		req.Restricted = &restricted
	}
	if v, ok := formValue(c, "verticals"); ok {
		req.Verticals = parseVerticalsParam(v)
		if req.Verticals == nil {
			req.Verticals = []string{}
		}
	}

	upload, file, err := openUpload(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid image upload: "+err.Error())
		return
	}
	if file != nil {
		defer file.Close()
		req.Image = upload
	}

	result, err := h.updateArticleUC.Execute(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Article updated successfully", result)
}

// Delete handles DELETE /articles/:id.
func (h *ArticleHandler) Delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	if err := h.deleteArticleUC.Execute(c.Request.Context(), caller, c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// openUpload returns the optional image part of a multipart request. The
// caller owns the returned file handle.
func openUpload(c *gin.Context) (*dto.ImageUpload, multipart.File, error) {
	header, err := c.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}

	return &dto.ImageUpload{Filename: header.Filename, Data: file}, file, nil
}

// formValue distinguishes a missing form field from an empty one.
func formValue(c *gin.Context, key string) (string, bool) {
	return c.GetPostForm(key)
}

// parsePublishAt accepts a plain date or a full RFC 3339 timestamp.
func parsePublishAt(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func parseBool(raw string) bool {
	value, err := strconv.ParseBool(raw)
	return err == nil && value
}

// parseVerticalsParam splits a comma separated vertical code list.
func parseVerticalsParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			codes = append(codes, trimmed)
		}
	}
	return codes
}

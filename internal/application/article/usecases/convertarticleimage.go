package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// ConvertArticleImageUseCase runs on the worker and converts an uploaded
// original into the normalized encoding. Status moves pending to processing
// to ok, or to error when decoding or encoding fails; a later re-upload
// resets the cycle.
type ConvertArticleImageUseCase struct {
	articleRepo article.Repository
	store       ImageStore
	converter   ImageConverter
	tasks       TaskEnqueuer
	logger      logger.Interface
}

func NewConvertArticleImageUseCase(
	articleRepo article.Repository,
	store ImageStore,
	converter ImageConverter,
	tasks TaskEnqueuer,
	logger logger.Interface,
) *ConvertArticleImageUseCase {
	return &ConvertArticleImageUseCase{
		articleRepo: articleRepo,
		store:       store,
		converter:   converter,
		tasks:       tasks,
		logger:      logger,
	}
}

// Execute converts the article's pending image.
func (uc *ConvertArticleImageUseCase) Execute(ctx context.Context, articleID uint) error {
	art, err := uc.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		if stderrors.Is(err, article.ErrNotFound) {
			// The article was deleted between enqueue and pickup.
			uc.logger.Warnw("skipping conversion for missing article", "article_id", articleID)
			return nil
		}
		return fmt.Errorf("failed to load article: %w", err)
	}

	if !art.HasImage() {
		uc.logger.Warnw("skipping conversion for article without image", "id", art.UUID())
		return nil
	}
	if err := art.BeginImageProcessing(); err != nil {
		// Another worker already picked it up, or a re-upload superseded
		// this task. Either way the current state wins.
		uc.logger.Warnw("skipping conversion", "id", art.UUID(), "error", err)
		return nil
	}
	if err := uc.articleRepo.UpdateImage(ctx, art.ID(), art.ImageKey(), article.ImageProcessing); err != nil {
		return fmt.Errorf("failed to mark image processing: %w", err)
	}

	originalKey := art.ImageKey()
	normalizedKey, err := uc.convert(originalKey)
	if err != nil {
		uc.logger.Errorw("image conversion failed", "id", art.UUID(), "key", originalKey, "error", err)
		if failErr := art.FailImageProcessing(); failErr != nil {
			return fmt.Errorf("failed to record conversion failure: %w", failErr)
		}
		if updErr := uc.articleRepo.UpdateImage(ctx, art.ID(), originalKey, article.ImageError); updErr != nil {
			return fmt.Errorf("failed to record conversion failure: %w", updErr)
		}
		uc.notify(ctx, notification.EventImageProcessingFailed, art.ID())
		return nil
	}

	if err := art.CompleteImageProcessing(normalizedKey); err != nil {
		return fmt.Errorf("failed to record conversion success: %w", err)
	}
	if err := uc.articleRepo.UpdateImage(ctx, art.ID(), normalizedKey, article.ImageOk); err != nil {
		return fmt.Errorf("failed to record conversion success: %w", err)
	}

	if normalizedKey != originalKey {
		if err := uc.store.Delete(originalKey); err != nil {
			uc.logger.Warnw("failed to delete original image", "key", originalKey, "error", err)
		}
	}

	uc.notify(ctx, notification.EventImageProcessed, art.ID())
	uc.logger.Infow("image converted", "id", art.UUID(), "key", normalizedKey)
	return nil
}

// convert reads the original, re-encodes it, and stores the result under the
// same key with the normalized extension.
func (uc *ConvertArticleImageUseCase) convert(originalKey string) (string, error) {
	original, err := uc.store.Open(originalKey)
	if err != nil {
		return "", fmt.Errorf("failed to open original: %w", err)
	}
	defer original.Close()

	converted, err := uc.converter.Convert(original)
	if err != nil {
		return "", fmt.Errorf("failed to convert image: %w", err)
	}

	normalizedKey := normalizedImageKey(originalKey)
	if err := uc.store.Save(normalizedKey, converted); err != nil {
		return "", fmt.Errorf("failed to store converted image: %w", err)
	}
	return normalizedKey, nil
}

func (uc *ConvertArticleImageUseCase) notify(ctx context.Context, event notification.Event, articleID uint) {
	if err := uc.tasks.EnqueueNotification(ctx, notification.Notice{Event: event, ArticleID: articleID}); err != nil {
		uc.logger.Warnw("failed to enqueue image notification", "article_id", articleID, "error", err)
	}
}

// normalizedImageKey swaps the original extension for the normalized one.
func normalizedImageKey(key string) string {
	ext := article.ImageExtension(key)
	if ext == "" {
		return key + "." + article.NormalizedExtension
	}
	return strings.TrimSuffix(key, ext) + article.NormalizedExtension
}

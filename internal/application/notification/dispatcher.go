package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/gazette-press/gazette/internal/domain/account"
	"github.com/gazette-press/gazette/internal/domain/article"
	"github.com/gazette-press/gazette/internal/domain/vertical"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// Mailer is the outbound mail transport port.
type Mailer interface {
	Send(to, subject, htmlBody, plainBody string) error
}

// Notice is a queued notification request.
type Notice struct {
	Event     Event `json:"event"`
	ArticleID uint  `json:"article_id,omitempty"`
	AccountID uint  `json:"account_id,omitempty"`
}

// Dispatcher resolves an event to its recipients and message and hands the
// result to the mail transport. Each recipient gets an individual message.
type Dispatcher struct {
	accounts account.Repository
	articles article.Repository
	mailer   Mailer
	logger   logger.Interface
}

func NewDispatcher(
	accounts account.Repository,
	articles article.Repository,
	mailer Mailer,
	logger logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		accounts: accounts,
		articles: articles,
		mailer:   mailer,
		logger:   logger,
	}
}

type handler func(d *Dispatcher, ctx context.Context, n Notice) error

// rules is the event routing table. Events absent from it are dropped with
// a log line instead of failing the queue job.
var rules = map[Event]handler{
	EventAccountWelcome:        (*Dispatcher).accountWelcome,
	EventArticlePublished:      (*Dispatcher).articlePublished,
	EventArticleUnpublished:    (*Dispatcher).articleAuthorNotice,
	EventImageProcessed:        (*Dispatcher).articleAuthorNotice,
	EventImageProcessingFailed: (*Dispatcher).articleAuthorNotice,
}

// Dispatch routes a notice through the rule table.
func (d *Dispatcher) Dispatch(ctx context.Context, n Notice) error {
	h, ok := rules[n.Event]
	if !ok {
		d.logger.Warnw("unknown notification event, dropping",
			"event", n.Event, "article_id", n.ArticleID, "account_id", n.AccountID)
		return nil
	}
	return h(d, ctx, n)
}

func (d *Dispatcher) accountWelcome(ctx context.Context, n Notice) error {
	acc, err := d.accounts.GetByID(ctx, n.AccountID)
	if err != nil {
		return fmt.Errorf("failed to load account %d: %w", n.AccountID, err)
	}

	subject, html, plain := welcomeMessage(acc.Username())
	return d.send(n.Event, []string{acc.Email()}, subject, html, plain)
}

func (d *Dispatcher) articlePublished(ctx context.Context, n Notice) error {
	art, author, err := d.loadArticle(ctx, n.ArticleID)
	if err != nil {
		return err
	}

	// Restricted articles go to Pro readers with a matching vertical;
	// open articles go to every reader.
	var audience []vertical.Code
	if art.Restricted() {
		audience = art.Verticals()
	}
	readers, err := d.accounts.ReaderEmails(ctx, audience)
	if err != nil {
		return fmt.Errorf("failed to resolve reader audience: %w", err)
	}

	recipients := append([]string{author.Email()}, readers...)
	subject, html, plain := articleMessage(n.Event, art.Title())
	return d.send(n.Event, recipients, subject, html, plain)
}

func (d *Dispatcher) articleAuthorNotice(ctx context.Context, n Notice) error {
	art, author, err := d.loadArticle(ctx, n.ArticleID)
	if err != nil {
		return err
	}

	subject, html, plain := articleMessage(n.Event, art.Title())
	return d.send(n.Event, []string{author.Email()}, subject, html, plain)
}

func (d *Dispatcher) loadArticle(ctx context.Context, id uint) (*article.Article, *account.Account, error) {
	art, err := d.articles.GetByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load article %d: %w", id, err)
	}

	author, err := d.accounts.GetByID(ctx, art.AuthorID())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load author %d: %w", art.AuthorID(), err)
	}

	return art, author, nil
}

func (d *Dispatcher) send(event Event, recipients []string, subject, html, plain string) error {
	var errs []error
	for _, to := range recipients {
		if err := d.mailer.Send(to, subject, html, plain); err != nil {
			d.logger.Errorw("failed to send notification email",
				"event", event, "to", to, "error", err)
			errs = append(errs, err)
			continue
		}
		d.logger.Debugw("notification email sent", "event", event, "to", to)
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to deliver %d of %d notifications: %w",
			len(errs), len(recipients), errors.Join(errs...))
	}

	d.logger.Infow("notification dispatched", "event", event, "recipients", len(recipients))
	return nil
}

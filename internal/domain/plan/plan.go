// Package plan defines the subscription plan owned one-to-one by each reader account.
package plan

import (
	"fmt"
	"time"

	"github.com/gazette-press/gazette/internal/domain/vertical"
)

// Plan is the subscription plan aggregate. A plan exists iff its owning
// account has the reader role; it is created automatically at reader
// registration and mutated only by admins.
type Plan struct {
	id        uint
	uuid      string
	accountID uint
	tier      Tier
	verticals []vertical.Code
	createdAt time.Time
	updatedAt time.Time
}

// NewPlan creates the default plan for a freshly registered reader:
// Info tier, no subscribed verticals.
func NewPlan(accountID uint) (*Plan, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("account ID is required")
	}
	now := time.Now().UTC()
	return &Plan{
		accountID: accountID,
		tier:      TierInfo,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a plan from persistence.
func Reconstruct(id uint, uuid string, accountID uint, tier Tier, verticals []vertical.Code, createdAt, updatedAt time.Time) (*Plan, error) {
	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid tier: %q", tier)
	}
	return &Plan{
		id:        id,
		uuid:      uuid,
		accountID: accountID,
		tier:      tier,
		verticals: verticals,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Plan) ID() uint                    { return p.id }
func (p *Plan) UUID() string                { return p.uuid }
func (p *Plan) AccountID() uint             { return p.accountID }
func (p *Plan) Tier() Tier                  { return p.tier }
func (p *Plan) Verticals() []vertical.Code  { return p.verticals }
func (p *Plan) CreatedAt() time.Time        { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time        { return p.updatedAt }

// SetID sets the plan ID (only for persistence layer use).
func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

// SetUUID sets the public identifier (only for persistence layer use).
func (p *Plan) SetUUID(uuid string) {
	if p.uuid == "" {
		p.uuid = uuid
	}
}

// Change updates tier and subscribed verticals together. Verticals are
// meaningful only on the Pro tier: Pro requires at least one, Info clears them.
func (p *Plan) Change(tier Tier, verticals []vertical.Code) error {
	if !tier.IsValid() {
		return fmt.Errorf("invalid tier: %q", tier)
	}
	for _, c := range verticals {
		if !c.IsValid() {
			return fmt.Errorf("unknown vertical code: %q", c)
		}
	}

	switch tier {
	case TierPro:
		if len(verticals) == 0 {
			return fmt.Errorf("pro tier requires at least one subscribed vertical")
		}
		p.verticals = verticals
	case TierInfo:
		p.verticals = nil
	}

	p.tier = tier
	p.updatedAt = time.Now().UTC()
	return nil
}

// QualifiesFor reports whether this plan grants access to an article with
// the given restriction flag and vertical set.
func (p *Plan) QualifiesFor(restricted bool, articleVerticals []vertical.Code) bool {
	if !restricted {
		return true
	}
	if !p.tier.IsPro() {
		return false
	}
	return vertical.Intersects(p.verticals, articleVerticals)
}

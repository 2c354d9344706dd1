package plan

import "fmt"

// Tier is the subscription level gating restricted content.
type Tier string

const (
	// TierInfo is the free tier: non-restricted published articles only.
	TierInfo Tier = "info"
	// TierPro is the paid tier: adds restricted articles in subscribed verticals.
	TierPro Tier = "pro"
)

var tierLabels = map[Tier]string{
	TierInfo: "Info",
	TierPro:  "Pro",
}

// IsValid reports whether the tier belongs to the closed set.
func (t Tier) IsValid() bool {
	_, ok := tierLabels[t]
	return ok
}

// Label returns the display label of the tier.
func (t Tier) Label() string {
	return tierLabels[t]
}

func (t Tier) String() string {
	return string(t)
}

// IsPro reports whether the tier grants restricted content access.
func (t Tier) IsPro() bool {
	return t == TierPro
}

// ParseTier converts a storage value into a Tier.
func ParseTier(raw string) (Tier, error) {
	t := Tier(raw)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown plan tier: %q", raw)
	}
	return t, nil
}

package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gazette-press/gazette/internal/domain/vertical"
)

func reconstructedPlan(t *testing.T, tier Tier, verticals []vertical.Code) *Plan {
	t.Helper()
	now := time.Now().UTC()
	p, err := Reconstruct(1, "plan-uuid", 10, tier, verticals, now, now)
	require.NoError(t, err)
	return p
}

func TestNewPlan_Defaults(t *testing.T) {
	p, err := NewPlan(10)
	require.NoError(t, err)

	assert.Equal(t, uint(10), p.AccountID())
	assert.Equal(t, TierInfo, p.Tier())
	assert.Empty(t, p.Verticals())
	assert.False(t, p.CreatedAt().IsZero())
}

func TestNewPlan_RequiresAccount(t *testing.T) {
	p, err := NewPlan(0)
	require.Error(t, err)
	assert.Nil(t, p)
}

func TestReconstruct_RejectsInvalidTier(t *testing.T) {
	now := time.Now().UTC()
	_, err := Reconstruct(1, "plan-uuid", 10, Tier("gold"), nil, now, now)
	require.Error(t, err)
}

func TestChange(t *testing.T) {
	tests := []struct {
		name          string
		tier          Tier
		verticals     []vertical.Code
		wantErr       string
		wantVerticals []vertical.Code
	}{
		{
			name:          "upgrade to pro with verticals",
			tier:          TierPro,
			verticals:     []vertical.Code{vertical.CodePolitics, vertical.CodeTaxes},
			wantVerticals: []vertical.Code{vertical.CodePolitics, vertical.CodeTaxes},
		},
		{
			name:      "pro without verticals is rejected",
			tier:      TierPro,
			verticals: nil,
			wantErr:   "at least one subscribed vertical",
		},
		{
			name:          "downgrade to info clears verticals",
			tier:          TierInfo,
			verticals:     nil,
			wantVerticals: nil,
		},
		{
			name:      "unknown tier",
			tier:      Tier("gold"),
			verticals: []vertical.Code{vertical.CodePolitics},
			wantErr:   "invalid tier",
		},
		{
			name:      "unknown vertical code",
			tier:      TierPro,
			verticals: []vertical.Code{vertical.Code("X")},
			wantErr:   "unknown vertical code",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := reconstructedPlan(t, TierPro, []vertical.Code{vertical.CodeHealth})

			err := p.Change(tc.tier, tc.verticals)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				// A rejected change leaves the plan untouched.
				assert.Equal(t, TierPro, p.Tier())
				assert.Equal(t, []vertical.Code{vertical.CodeHealth}, p.Verticals())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.tier, p.Tier())
			assert.Equal(t, tc.wantVerticals, p.Verticals())
		})
	}
}

func TestQualifiesFor(t *testing.T) {
	tests := []struct {
		name             string
		tier             Tier
		planVerticals    []vertical.Code
		restricted       bool
		articleVerticals []vertical.Code
		want             bool
	}{
		{
			name: "open article qualifies on info tier",
			tier: TierInfo, restricted: false,
			articleVerticals: []vertical.Code{vertical.CodePolitics},
			want:             true,
		},
		{
			name: "restricted article denied on info tier",
			tier: TierInfo, restricted: true,
			articleVerticals: []vertical.Code{vertical.CodePolitics},
			want:             false,
		},
		{
			name: "restricted article with matching vertical on pro",
			tier: TierPro, planVerticals: []vertical.Code{vertical.CodePolitics},
			restricted:       true,
			articleVerticals: []vertical.Code{vertical.CodePolitics, vertical.CodeHealth},
			want:             true,
		},
		{
			name: "restricted article without matching vertical on pro",
			tier: TierPro, planVerticals: []vertical.Code{vertical.CodeTaxes},
			restricted:       true,
			articleVerticals: []vertical.Code{vertical.CodePolitics},
			want:             false,
		},
		{
			name: "open article qualifies on pro regardless of verticals",
			tier: TierPro, planVerticals: []vertical.Code{vertical.CodeTaxes},
			restricted:       false,
			articleVerticals: []vertical.Code{vertical.CodePolitics},
			want:             true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := reconstructedPlan(t, tc.tier, tc.planVerticals)
			assert.Equal(t, tc.want, p.QualifiesFor(tc.restricted, tc.articleVerticals))
		})
	}
}

func TestParseTier(t *testing.T) {
	tier, err := ParseTier("pro")
	require.NoError(t, err)
	assert.Equal(t, TierPro, tier)
	assert.True(t, tier.IsPro())
	assert.Equal(t, "Pro", tier.Label())

	_, err = ParseTier("premium")
	require.Error(t, err)
}

package parser

import (
	"testing"

	"github.com/helmcode/leadscore/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.LeadProfile
	}{
		{
			name:  "yaml",
			input: "username: studio_cuts\nbio: Master barber in Manhattan\nfollowers: 12000\navg_likes: 600\nis_verified: true\n",
			want: model.LeadProfile{
				Username:   "studio_cuts",
				Bio:        "Master barber in Manhattan",
				Followers:  12000,
				AvgLikes:   600,
				IsVerified: true,
			},
		},
		{
			name:  "json",
			input: `{"username": "chef_ana", "bio": "Executive chef", "posts": 42, "screenshot": "shots/ana.png"}`,
			want: model.LeadProfile{
				Username:   "chef_ana",
				Bio:        "Executive chef",
				Posts:      42,
				Screenshot: "shots/ana.png",
			},
		},
		{
			name:  "fenced yaml",
			input: "```yaml\nusername: fenced\nbio: hi there\n```",
			want:  model.LeadProfile{Username: "fenced", Bio: "hi there"},
		},
		{
			name:  "plain bio",
			input: "Certified barber, book now\n",
			want:  model.LeadProfile{Bio: "Certified barber, book now"},
		},
		{
			name:  "bio with a colon",
			input: "Book now: 555-123-4567",
			want:  model.LeadProfile{Bio: "Book now: 555-123-4567"},
		},
		{
			name:  "invalid yaml",
			input: "bio: [unclosed",
			want:  model.LeadProfile{Bio: "bio: [unclosed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProfile([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseProfileErrors(t *testing.T) {
	_, err := ParseProfile([]byte("  \n "))
	assert.EqualError(t, err, "empty profile")

	_, err = ParseProfile([]byte("username: x\nfollowers: lots\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding profile")
}

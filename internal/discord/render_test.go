package discord

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ScoreBot_Go/internal/domain"
)

func TestColloquialList(t *testing.T) {
	assert.Equal(t, "", ColloquialList(nil))
	assert.Equal(t, "a", ColloquialList([]string{"a"}))
	assert.Equal(t, "a and b", ColloquialList([]string{"a", "b"}))
	assert.Equal(t, "a, b, and c", ColloquialList([]string{"a", "b", "c"}))
}

func TestColloquialRanges(t *testing.T) {
	tests := []struct {
		ids      []int64
		expected string
	}{
		{nil, ""},
		{[]int64{4}, "#4"},
		{[]int64{1, 2, 3, 5}, "#1-3 and #5"},
		{[]int64{1, 3, 5}, "#1, #3, and #5"},
		{[]int64{7, 8, 2, 3}, "#7-8 and #2-3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ColloquialRanges(tt.ids))
	}
}

func TestRenderLeaderboard(t *testing.T) {
	out := RenderLeaderboard([]domain.Standing{
		{Handle: "a", Rating: 1540.2, Wins: 3, Streak: 3},
		{Handle: "b", Rating: 1500, Wins: 2, Losses: 1, Streak: 2},
		{Handle: "c", Rating: 1459.8, Losses: 4},
	}, plainNames, 3)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"Name", "ELO", "Wins", "Losses", "Streak"}, strings.Fields(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "----"))
	assert.Equal(t, []string{"usera", "1540", "3", "0", "Won", "3", "in", "a", "row"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"userb", "1500", "2", "1", "-"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"userc", "1460", "0", "4", "-"}, strings.Fields(lines[4]))

	// Columns line up
	assert.Equal(t, strings.Index(lines[0], "ELO"), strings.Index(lines[2], "1540"))
}

func TestRenderUnconfirmed(t *testing.T) {
	pst := time.FixedZone("PST", -8*60*60)

	out := RenderUnconfirmed([]domain.Match{
		{
			ID: 12, WinnersScore: 11, LosersScore: 9,
			CreatedAt: time.Date(2024, 3, 1, 20, 5, 0, 0, time.UTC),
			Participations: []domain.Participation{
				{Handle: "a", Won: true},
				{Handle: "b", Won: true, Pending: true},
				{Handle: "c", Pending: true},
			},
		},
	}, plainNames, pst)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, MsgUnconfirmedLegend, lines[0])
	assert.Contains(t, lines[3], "usera *userb")
	assert.Contains(t, lines[3], "*userc")
	assert.Contains(t, lines[3], "11 - 9")
	assert.Contains(t, lines[3], "03/01/24 12:05 PM")
}

func TestCodeBlocks(t *testing.T) {
	t.Run("fits in one", func(t *testing.T) {
		assert.Equal(t, []string{"```\na\nb\n```"}, codeBlocks("a\nb", 100))
	})

	t.Run("splits on lines", func(t *testing.T) {
		line := strings.Repeat("x", 10)
		text := strings.Join([]string{line, line, line}, "\n")

		// 8 bytes of fences and newlines leave room for two lines
		blocks := codeBlocks(text, 8+21)
		require.Len(t, blocks, 2)
		assert.Equal(t, "```\n"+line+"\n"+line+"\n```", blocks[0])
		assert.Equal(t, "```\n"+line+"\n```", blocks[1])
		for _, b := range blocks {
			assert.LessOrEqual(t, len(b), 8+21)
		}
	})

	t.Run("cuts an overlong line", func(t *testing.T) {
		blocks := codeBlocks(strings.Repeat("y", 25), 8+10)
		require.Len(t, blocks, 3)
		assert.Equal(t, "```\n"+strings.Repeat("y", 5)+"\n```", blocks[2])
	})
}

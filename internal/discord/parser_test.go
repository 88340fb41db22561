package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ScoreBot_Go/internal/domain"
)

func TestParser_Parse(t *testing.T) {
	const author = "100"

	tests := []struct {
		name   string
		text   string
		want   Command
		wantOK bool
	}{
		{
			name:   "single game",
			text:   "I beat <@200> 11-5",
			want:   Command{Kind: CommandReport, Author: author, Team1: []string{author}, Team2: []string{"200"}, Scores: []domain.Score{{Team1: 11, Team2: 5}}},
			wantOK: true,
		},
		{
			name: "teams and a series",
			text: "me and <@!201> crushed <@202>, <@203> 11 - 3 9-11, 11-7",
			want: Command{
				Kind: CommandReport, Author: author,
				Team1:  []string{author, "201"},
				Team2:  []string{"202", "203"},
				Scores: []domain.Score{{Team1: 11, Team2: 3}, {Team1: 9, Team2: 11}, {Team1: 11, Team2: 7}},
			},
			wantOK: true,
		},
		{
			name:   "played term with a space",
			text:   "<@300> LOSS TO i 2-11",
			want:   Command{Kind: CommandReport, Author: author, Team1: []string{"300"}, Team2: []string{author}, Scores: []domain.Score{{Team1: 2, Team2: 11}}},
			wantOK: true,
		},
		{
			name:   "report keeps repeats for the caller to reject",
			text:   "I beat me 11-0",
			want:   Command{Kind: CommandReport, Author: author, Team1: []string{author}, Team2: []string{author}, Scores: []domain.Score{{Team1: 11, Team2: 0}}},
			wantOK: true,
		},
		{name: "confirm", text: "Confirm 12", want: Command{Kind: CommandConfirm, Author: author, MatchID: 12}, wantOK: true},
		{name: "confirm with hash", text: "confirm #7 please", want: Command{Kind: CommandConfirm, Author: author, MatchID: 7}, wantOK: true},
		{name: "confirm range", text: "confirm 5-8", want: Command{Kind: CommandConfirmRange, Author: author, From: 5, To: 8}, wantOK: true},
		{name: "confirm range spaced", text: "CONFIRM #5 - #8", want: Command{Kind: CommandConfirmRange, Author: author, From: 5, To: 8}, wantOK: true},
		{name: "confirm all", text: "confirm all", want: Command{Kind: CommandConfirmAll, Author: author}, wantOK: true},
		{name: "leaderboard", text: "Print leaderboard", want: Command{Kind: CommandLeaderboard, Author: author}, wantOK: true},
		{name: "unconfirmed", text: "  print UNCONFIRMED ", want: Command{Kind: CommandUnconfirmed, Author: author}, wantOK: true},
		{name: "chatter", text: "good game everyone", wantOK: false},
		{name: "report without score", text: "I beat <@200>", wantOK: false},
		{name: "unknown verb", text: "I tickled <@200> 11-5", wantOK: false},
		{name: "confirm overflow", text: "confirm 99999999999999999999", wantOK: false},
		{name: "impersonation disabled", text: "As <@200>: confirm 3", wantOK: false},
	}

	p := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Parse(author, tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParser_Impersonation(t *testing.T) {
	p := NewParser(WithImpersonation(true))

	got, ok := p.Parse("100", "As <@200>: confirm 3")
	assert.True(t, ok)
	assert.Equal(t, Command{Kind: CommandConfirm, Author: "200", MatchID: 3}, got)

	got, ok = p.Parse("100", "as <@200> I beat <@300> 11-2")
	assert.True(t, ok)
	assert.Equal(t, "200", got.Author)
	assert.Equal(t, []string{"200"}, got.Team1)
	assert.Equal(t, []string{"300"}, got.Team2)
}

func TestCommandKind_String(t *testing.T) {
	assert.Equal(t, "report", CommandReport.String())
	assert.Equal(t, "confirm_range", CommandConfirmRange.String())
	assert.Equal(t, "unknown", CommandKind(0).String())
}

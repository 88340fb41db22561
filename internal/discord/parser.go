package discord

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/osse101/ScoreBot_Go/internal/domain"
)

// CommandKind identifies a chat command
type CommandKind int

const (
	CommandReport CommandKind = iota + 1
	CommandConfirm
	CommandConfirmRange
	CommandConfirmAll
	CommandLeaderboard
	CommandUnconfirmed
)

func (k CommandKind) String() string {
	switch k {
	case CommandReport:
		return "report"
	case CommandConfirm:
		return "confirm"
	case CommandConfirmRange:
		return "confirm_range"
	case CommandConfirmAll:
		return "confirm_all"
	case CommandLeaderboard:
		return "leaderboard"
	case CommandUnconfirmed:
		return "unconfirmed"
	default:
		return "unknown"
	}
}

// Command is a parsed chat message. Author is the handle the command runs as.
type Command struct {
	Kind   CommandKind
	Author string

	// CommandReport
	Team1  []string
	Team2  []string
	Scores []domain.Score

	// CommandConfirm
	MatchID int64

	// CommandConfirmRange, inclusive
	From int64
	To   int64
}

// PlayedTerms are the verbs accepted between two teams in a game report
var PlayedTerms = []string{
	"crushed", "rekt", "beat", "whooped", "destroyed", "smashed", "demolished",
	"decapitated", "smothered", "creamed", "loss to", "lost to", "tied", "played",
}

const (
	mentionPattern = `<@!?\d+>`
	playerPattern  = `(?:I|me|` + mentionPattern + `)`
	teamPattern    = playerPattern + `(?:,? (?:and )?` + playerPattern + `)*`
	scorePattern   = `\d+ ?- ?\d+`
)

var (
	gameRegex = regexp.MustCompile(`(?i)^(` + teamPattern + `) (?:` + strings.Join(PlayedTerms, "|") + `) (` +
		teamPattern + `) (` + scorePattern + `(?:,? (?:and )?` + scorePattern + `)*)`)
	playerRegex       = regexp.MustCompile(`(?i)<@!?(\d+)>|\b(?:I|me)\b`)
	scoreRegex        = regexp.MustCompile(`(\d+) ?- ?(\d+)`)
	confirmRangeRegex = regexp.MustCompile(`(?i)^confirm #?(\d+) ?- ?#?(\d+)\b`)
	confirmAllRegex   = regexp.MustCompile(`(?i)^confirm all\b`)
	confirmRegex      = regexp.MustCompile(`(?i)^confirm #?(\d+)\b`)
	leaderboardRegex  = regexp.MustCompile(`(?i)^print leaderboard\b`)
	unconfirmedRegex  = regexp.MustCompile(`(?i)^print unconfirmed\b`)
	impersonateRegex  = regexp.MustCompile(`(?i)^As <@!?(\d+)>:? (.*)$`)
)

// Parser turns channel messages into commands
type Parser struct {
	impersonation bool
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithImpersonation lets "As @user: <command>" run a command as another
// player. Meant for local testing only.
func WithImpersonation(enabled bool) ParserOption {
	return func(p *Parser) {
		p.impersonation = enabled
	}
}

// NewParser creates a parser. Impersonation is off unless enabled with an option.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns the command in text sent by author, or false if text is not a command
func (p *Parser) Parse(author, text string) (Command, bool) {
	text = strings.TrimSpace(text)

	if p.impersonation {
		if m := impersonateRegex.FindStringSubmatch(text); m != nil {
			return p.Parse(m[1], m[2])
		}
	}

	if m := gameRegex.FindStringSubmatch(text); m != nil {
		return parseGame(author, m[1], m[2], m[3])
	}

	if m := confirmRangeRegex.FindStringSubmatch(text); m != nil {
		from, err1 := strconv.ParseInt(m[1], 10, 64)
		to, err2 := strconv.ParseInt(m[2], 10, 64)
		if err1 != nil || err2 != nil {
			return Command{}, false
		}
		return Command{Kind: CommandConfirmRange, Author: author, From: from, To: to}, true
	}

	if confirmAllRegex.MatchString(text) {
		return Command{Kind: CommandConfirmAll, Author: author}, true
	}

	if m := confirmRegex.FindStringSubmatch(text); m != nil {
		id, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return Command{}, false
		}
		return Command{Kind: CommandConfirm, Author: author, MatchID: id}, true
	}

	if leaderboardRegex.MatchString(text) {
		return Command{Kind: CommandLeaderboard, Author: author}, true
	}
	if unconfirmedRegex.MatchString(text) {
		return Command{Kind: CommandUnconfirmed, Author: author}, true
	}

	return Command{}, false
}

func parseGame(author, team1Text, team2Text, scoresText string) (Command, bool) {
	cmd := Command{
		Kind:   CommandReport,
		Author: author,
		Team1:  parseTeam(author, team1Text),
		Team2:  parseTeam(author, team2Text),
	}

	for _, m := range scoreRegex.FindAllStringSubmatch(scoresText, -1) {
		team1, err1 := strconv.Atoi(m[1])
		team2, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return Command{}, false
		}
		cmd.Scores = append(cmd.Scores, domain.Score{Team1: team1, Team2: team2})
	}
	return cmd, true
}

// parseTeam resolves "I"/"me" to author and mentions to user IDs, in order
func parseTeam(author, text string) []string {
	var team []string
	for _, m := range playerRegex.FindAllStringSubmatch(text, -1) {
		if m[1] != "" {
			team = append(team, m[1])
		} else {
			team = append(team, author)
		}
	}
	return team
}

package discord

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/ScoreBot_Go/internal/domain"
	"github.com/osse101/ScoreBot_Go/internal/handler"
	"github.com/osse101/ScoreBot_Go/internal/logger"
)

func (b *Bot) handleReport(ctx context.Context, cmd Command) error {
	// The store would accept repeats; the chat surface does not
	if dup, ok := domain.FirstDuplicate(cmd.Team1, cmd.Team2); ok {
		b.talkTo(ctx, []string{dup}, MsgDuplicatePlayer)
		return nil
	}

	resp, err := b.Client.ReportMatch(ctx, handler.ReportMatchRequest{
		Reporter:        cmd.Author,
		Team1:           cmd.Team1,
		Team2:           cmd.Team2,
		Scores:          cmd.Scores,
		ConfirmReporter: true,
	})
	if err != nil {
		return err
	}

	others := otherPlayers(cmd.Author, cmd.Team1, cmd.Team2)
	if len(others) == 0 || len(resp.MatchIDs) == 0 {
		return nil
	}

	msg := fmt.Sprintf(MsgPleaseConfirmOne, resp.MatchIDs[0])
	if len(resp.MatchIDs) > 1 {
		msg = fmt.Sprintf(MsgPleaseConfirmMany, ColloquialRanges(resp.MatchIDs))
	}
	b.talkTo(ctx, others, msg)
	return nil
}

// handleConfirm confirms a single match. When verbose, every outcome is
// answered and completed matches announce the rating changes.
func (b *Bot) handleConfirm(ctx context.Context, cmd Command, verbose bool) error {
	res, err := b.Client.Confirm(ctx, cmd.Author, cmd.MatchID)
	if err != nil {
		return err
	}
	if !verbose {
		return nil
	}

	switch res.Status {
	case domain.ConfirmStatusNotFound:
		b.talk(ctx, fmt.Sprintf(MsgNoSuchMatch, cmd.MatchID))
	case domain.ConfirmStatusNotParticipant:
		b.talkTo(ctx, []string{cmd.Author}, fmt.Sprintf(MsgNotInMatch, cmd.MatchID))
	case domain.ConfirmStatusAlreadyConfirmed:
		b.talkTo(ctx, []string{cmd.Author}, fmt.Sprintf(MsgAlreadyConfirmed, cmd.MatchID))
	case domain.ConfirmStatusConfirmed:
		b.talkTo(ctx, []string{cmd.Author}, fmt.Sprintf(MsgConfirmedMatch, cmd.MatchID))
		if res.BecameFullyConfirmed {
			b.announceRatingChanges(ctx, res.Deltas)
		}
	}
	return nil
}

func (b *Bot) handleConfirmRange(ctx context.Context, cmd Command) error {
	if cmd.From > cmd.To {
		b.talkTo(ctx, []string{cmd.Author}, MsgNothingInRange)
		return nil
	}

	resp, err := b.Client.ConfirmRange(ctx, cmd.Author, cmd.From, cmd.To)
	if err != nil {
		return err
	}

	switch len(resp.Confirmed) {
	case 0:
		b.talkTo(ctx, []string{cmd.Author}, MsgNothingInRange)
	case 1:
		b.talkTo(ctx, []string{cmd.Author}, fmt.Sprintf(MsgConfirmedOne, resp.Confirmed[0]))
	default:
		b.talkTo(ctx, []string{cmd.Author}, fmt.Sprintf(MsgConfirmedRange, ColloquialRanges(resp.Confirmed)))
	}

	b.announceRatingChanges(ctx, sumDeltas(resp.Results))
	return nil
}

func (b *Bot) handleConfirmAll(ctx context.Context, cmd Command) error {
	resp, err := b.Client.ConfirmAll(ctx, cmd.Author)
	if err != nil {
		return err
	}

	switch len(resp.Confirmed) {
	case 0:
		b.talkTo(ctx, []string{cmd.Author}, MsgNoUnconfirmed)
		return nil
	case 1:
		b.talkTo(ctx, []string{cmd.Author}, fmt.Sprintf(MsgConfirmedOne, resp.Confirmed[0]))
	default:
		b.talkTo(ctx, []string{cmd.Author},
			fmt.Sprintf(MsgConfirmedAll, len(resp.Confirmed), ColloquialRanges(resp.Confirmed)))
	}

	b.announceRatingChanges(ctx, sumDeltas(resp.Results))
	return nil
}

func (b *Bot) handleLeaderboard(ctx context.Context) error {
	standings, err := b.Client.Leaderboard(ctx)
	if err != nil {
		return err
	}
	if len(standings) == 0 {
		b.talk(ctx, MsgLeaderboardEmpty)
		return nil
	}
	b.talkBlock(ctx, RenderLeaderboard(standings, b.names, b.cfg.MinStreakLength))
	return nil
}

func (b *Bot) handleUnconfirmed(ctx context.Context) error {
	matches, err := b.Client.Unconfirmed(ctx, DefaultUnconfirmedLimit)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		b.talk(ctx, MsgUnconfirmedEmpty)
		return nil
	}
	b.talkBlock(ctx, RenderUnconfirmed(matches, b.names, b.cfg.TimeZone))
	return nil
}

// announceRatingChanges tells every player with a non-zero change their new rating
func (b *Bot) announceRatingChanges(ctx context.Context, deltas map[string]int) {
	handles := make([]string, 0, len(deltas))
	for h, d := range deltas {
		if d != 0 {
			handles = append(handles, h)
		}
	}
	sort.Strings(handles)

	for _, h := range handles {
		standing, err := b.Client.Player(ctx, h)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgStandingFailed, "handle", h, "error", err)
			continue
		}
		b.talkTo(ctx, []string{h}, fmt.Sprintf(MsgEloChange, standing.Rating, deltas[h]))
	}
}

// sumDeltas adds up the rating changes of every match a batch completed
func sumDeltas(results []domain.ConfirmResult) map[string]int {
	total := make(map[string]int)
	for _, r := range results {
		for h, d := range r.Deltas {
			total[h] += d
		}
	}
	return total
}

// otherPlayers lists the distinct players of both teams except author, in order
func otherPlayers(author string, teams ...[]string) []string {
	seen := map[string]bool{author: true}
	var out []string
	for _, team := range teams {
		for _, h := range team {
			if !seen[h] {
				seen[h] = true
				out = append(out, h)
			}
		}
	}
	return out
}

// talk sends a message to the channel
func (b *Bot) talk(ctx context.Context, message string) {
	if err := b.sender.Send(ctx, message); err != nil {
		logger.FromContext(ctx).Error(LogMsgSendFailed, "error", err)
	}
}

// talkTo addresses message to one or more players: "<@a>, message" or
// "<@a> and <@b>: message"
func (b *Bot) talkTo(ctx context.Context, handles []string, message string) {
	message = lowerFirst(message)

	if len(handles) == 1 {
		b.talk(ctx, mention(handles[0])+", "+message)
		return
	}

	mentions := make([]string, 0, len(handles))
	for _, h := range handles {
		mentions = append(mentions, mention(h))
	}
	b.talk(ctx, ColloquialList(mentions)+": "+message)
}

// talkBlock sends text as one or more code blocks
func (b *Bot) talkBlock(ctx context.Context, text string) {
	for _, block := range codeBlocks(text, MaxMessageLength) {
		b.talk(ctx, block)
	}
}

func mention(handle string) string {
	return "<@" + handle + ">"
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	// Casers are stateful, so each call gets its own
	return cases.Lower(language.English).String(string(r)) + s[size:]
}

// formatFriendlyError turns API failures into chat replies
func formatFriendlyError(err error) string {
	if isServerUnavailable(err) {
		return MsgServerUnavailable
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message == "" {
		return MsgGenericError
	}

	switch {
	case strings.Contains(apiErr.Message, handler.ErrMsgInvalidScoreError):
		return MsgInvalidScore
	case strings.Contains(apiErr.Message, handler.ErrMsgInvalidTeamError):
		return MsgInvalidTeam
	case strings.Contains(apiErr.Message, handler.ErrMsgDuplicatePlayerError):
		return MsgDuplicatePlayer
	default:
		return MsgErrorPrefix + apiErr.Message
	}
}

package discord

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/osse101/ScoreBot_Go/internal/domain"
)

// NameFunc maps a player handle to a display name
type NameFunc func(handle string) string

var (
	leaderboardHeaders = []string{"Name", "ELO", "Wins", "Losses", "Streak"}
	unconfirmedHeaders = []string{"Match", "Winning team", "Losing team", "Score", "Date"}
)

// ColloquialList joins items as "a", "a and b" or "a, b, and c"
func ColloquialList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}

// ColloquialRanges renders match ids, collapsing runs of consecutive ids:
// [1 2 3 5] becomes "#1-3 and #5". Ids are kept in the given order.
func ColloquialRanges(ids []int64) string {
	if len(ids) == 0 {
		return ""
	}

	var parts []string
	start, prev := ids[0], ids[0]
	flush := func() {
		if start == prev {
			parts = append(parts, fmt.Sprintf("#%d", start))
		} else {
			parts = append(parts, fmt.Sprintf("#%d-%d", start, prev))
		}
	}
	for _, id := range ids[1:] {
		if id == prev+1 {
			prev = id
			continue
		}
		flush()
		start, prev = id, id
	}
	flush()

	return ColloquialList(parts)
}

// RenderLeaderboard renders standings, already sorted, as a plain-text table.
// Streaks shorter than minStreak are shown as "-".
func RenderLeaderboard(standings []domain.Standing, names NameFunc, minStreak int) string {
	rows := make([][]string, 0, len(standings))
	for _, s := range standings {
		streak := MsgNoStreak
		if s.Streak >= minStreak {
			streak = fmt.Sprintf(MsgStreak, s.Streak)
		}
		rows = append(rows, []string{
			names(s.Handle),
			fmt.Sprintf("%.0f", s.Rating),
			fmt.Sprint(s.Wins),
			fmt.Sprint(s.Losses),
			streak,
		})
	}
	return renderTable(leaderboardHeaders, rows)
}

// RenderUnconfirmed renders pending matches as a plain-text table. Players
// who still have to confirm are prefixed with "*"; times are shown in loc.
func RenderUnconfirmed(matches []domain.Match, names NameFunc, loc *time.Location) string {
	renderSide := func(ps []domain.Participation) string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			name := names(p.Handle)
			if p.Pending {
				name = "*" + name
			}
			out = append(out, name)
		}
		return strings.Join(out, " ")
	}

	rows := make([][]string, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		rows = append(rows, []string{
			fmt.Sprint(m.ID),
			renderSide(m.Winners()),
			renderSide(m.Losers()),
			fmt.Sprintf("%d - %d", m.WinnersScore, m.LosersScore),
			m.CreatedAt.In(loc).Format(UnconfirmedDateFormat),
		})
	}
	return MsgUnconfirmedLegend + "\n" + renderTable(unconfirmedHeaders, rows)
}

func renderTable(headers []string, rows [][]string) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	rules := make([]string, len(headers))
	for i, h := range headers {
		rules[i] = strings.Repeat("-", len(h))
	}

	writeRow := func(cells []string) {
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	writeRow(headers)
	writeRow(rules)
	for _, r := range rows {
		writeRow(r)
	}
	_ = tw.Flush()

	return strings.TrimRight(sb.String(), "\n")
}

// codeBlocks splits text on line boundaries into fenced code blocks that
// each fit in one Discord message. A single overlong line is cut.
func codeBlocks(text string, limit int) []string {
	const fence = "```"
	budget := limit - 2*len(fence) - 2

	var blocks []string
	var cur strings.Builder
	emit := func() {
		if cur.Len() == 0 {
			return
		}
		blocks = append(blocks, fence+"\n"+cur.String()+"\n"+fence)
		cur.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		for len(line) > budget {
			emit()
			cur.WriteString(line[:budget])
			emit()
			line = line[budget:]
		}
		if cur.Len() > 0 && cur.Len()+1+len(line) > budget {
			emit()
		}
		if cur.Len() > 0 {
			cur.WriteByte('\n')
		}
		cur.WriteString(line)
	}
	emit()

	return blocks
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/danielhkuo/quickly-vote/session"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/pterm/pterm"
)

// Standings orders proposals the way the tally resolves them: most votes
// first, then smallest momentum, then lowest ID.
func Standings(proposals []session.Proposal) []session.Proposal {
	out := append([]session.Proposal(nil), proposals...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.VoteCount != b.VoteCount {
			return a.VoteCount > b.VoteCount
		}
		if a.Momentum != b.Momentum {
			return a.Momentum < b.Momentum
		}
		return a.ID < b.ID
	})
	return out
}

// Results renders the proposal standings of s as a table, followed by the
// winner once votes are tallied.
func Results(s *session.Session) (string, error) {
	proposals := Standings(s.Proposals())

	header := pterm.Sprintfln("Session %s: %s", s.ID(), pterm.LightCyan(s.Status().String()))
	if len(proposals) == 0 {
		return header + pterm.Sprintln("No proposals registered"), nil
	}

	data := pterm.TableData{{"Rank", "ID", "Proposal", "Proposer", "Votes", "Momentum"}}
	for i, p := range proposals {
		data = append(data, []string{
			humanize.Ordinal(i + 1),
			strconv.Itoa(p.ID),
			p.Description,
			p.Proposer,
			humanize.Comma(int64(p.VoteCount)),
			humanize.Comma(int64(p.Momentum)),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", fmt.Errorf("failed to render standings: %w", err)
	}

	out := header + table + "\n"
	winner, err := s.WinningProposal()
	switch {
	case errors.Is(err, session.ErrWinnerNotFound):
		out += pterm.Sprintln("Votes have not been tallied yet")
	case err != nil:
		return "", err
	default:
		out += pterm.Sprintfln("Winner: %s (%s)",
			pterm.LightGreen(winner.Description),
			english.Plural(int(winner.VoteCount), "vote", "votes"))
	}
	return out, nil
}

// AdminToken renders the administrator credentials in a box.
func AdminToken(identity, token string) string {
	box := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return box.WithTitle(pterm.LightYellow("|ADMINISTRATOR|")).WithTitleTopCenter().
		Sprintf("X-Identity: %s\nX-Identity-Token: %s", identity, token)
}

package discord

// Chat replies. Messages sent through talkTo get their first letter lowercased.
const (
	MsgDuplicatePlayer   = "Hey! You can't be in this game more than once!"
	MsgPleaseConfirmOne  = "Please confirm match #%d."
	MsgPleaseConfirmMany = "Matches %s need confirmation."
	MsgNoSuchMatch       = "No match #%d!"
	MsgNotInMatch        = "Cannot confirm match #%d! You're not in it!"
	MsgAlreadyConfirmed  = "You have already confirmed match #%d!"
	MsgConfirmedMatch    = "Confirmed match #%d!"
	MsgConfirmedOne      = "Confirmed match #%d"
	MsgConfirmedRange    = "Confirmed matches %s."
	MsgConfirmedAll      = "Confirmed %d matches: %s!"
	MsgNothingInRange    = "No given matches needed confirmation."
	MsgNoUnconfirmed     = "No unconfirmed matches!"
	MsgEloChange         = "Your ELO is %.0f (%+d)"
	MsgLeaderboardEmpty  = "Nobody is on the leaderboard yet."
	MsgUnconfirmedEmpty  = "Every match is confirmed!"
	MsgUnconfirmedLegend = "* Needs to confirm"
	MsgStreak            = "Won %d in a row"
	MsgNoStreak          = "-"
	MsgGenericError      = "❌ Something went wrong."
	MsgErrorPrefix       = "❌ "
	MsgServerUnavailable = "The scoreboard can't be reached right now. Try again in a bit."
	MsgInvalidScore      = "Scores can't be negative."
	MsgInvalidTeam       = "Both teams need at least one player."
)

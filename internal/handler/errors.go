package handler

// Client-facing request errors. Internal details never reach the response.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidHandle         = "Invalid player handle"
	ErrMsgInvalidMatchID        = "Invalid match ID"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
)

const MsgLedgerRebuilt = "Ledger rebuilt successfully"

// Log messages
const (
	LogMsgDecodeFailed        = "Failed to decode %s request"
	LogMsgRequestDecoded      = "%s request decoded"
	LogMsgServiceError        = "%s failed"
	LogMsgMatchReported       = "Match report handled"
	LogMsgConfirmHandled      = "Confirmation handled"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgLedgerRebuildManual = "Manual ledger rebuild requested"
)

// Action names used in log lines
const (
	ActionReportMatch  = "Report match"
	ActionConfirm      = "Confirm match"
	ActionConfirmAll   = "Confirm all"
	ActionConfirmRange = "Confirm range"
	ActionGetMatch     = "Get match"
	ActionUnconfirmed  = "List unconfirmed"
	ActionHistory      = "Player history"
	ActionRebuild      = "Rebuild ledger"
	ActionAudit        = "Audit ledger"
)

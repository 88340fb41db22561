package event

// EventSchemaVersion is stamped on every published event
const EventSchemaVersion = "1.0"

const (
	ErrMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
	ErrMsgEmptyPayload       = "event has no payload to decode into %T"
	ErrMsgDecodePayload      = "failed to decode payload into %T: %w"
)

package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload of evt as T. Events published on the
// MemoryBus carry the struct itself; anything else (a map decoded from a
// log line or a webhook body) is converted through JSON.
func DecodePayload[T any](payload interface{}) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}
	if p, ok := payload.(*T); ok && p != nil {
		return *p, nil
	}

	var out T
	if payload == nil {
		return out, fmt.Errorf(ErrMsgEmptyPayload, out)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf(ErrMsgDecodePayload, out, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf(ErrMsgDecodePayload, out, err)
	}
	return out, nil
}

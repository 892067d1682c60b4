package models

import (
	"encoding/json"
	"fmt"
)

// Event is one append-only mutation record in a database's history. Tick is
// assigned by the writer and must be strictly increasing within a scope; the
// store does not validate monotonicity. Args holds the event's payload
// fields, which the store never interprets.
type Event struct {
	Type string         `json:"event_type"`
	Tick int64          `json:"-"`
	Args map[string]any `json:"-"`
}

// EncodeEventV1 serializes an event's type and payload fields to the JSON
// object stored in the dict column. The tick is excluded; it lives in its
// own column.
func EncodeEventV1(event *Event) ([]byte, error) {
	dct := make(map[string]any, len(event.Args)+1)
	for key, val := range event.Args {
		dct[key] = val
	}
	dct["event_type"] = event.Type
	return json.Marshal(dct)
}

// DecodeEventV1 rebuilds an event from a stored payload, populating its tick
// from the column value.
func DecodeEventV1(data []byte, tick int64) (*Event, error) {
	var dct map[string]any
	if err := json.Unmarshal(data, &dct); err != nil {
		return nil, fmt.Errorf("failed to decode event payload: %w", err)
	}
	event := &Event{Tick: tick, Args: dct}
	if typ, ok := dct["event_type"].(string); ok {
		event.Type = typ
		delete(dct, "event_type")
	}
	return event, nil
}

package broadcast

import "encoding/json"

// Event types exchanged with live sessions.
const (
	TypeUpdate  = "update"
	TypeError   = "error"
	TypeMessage = "message"
)

// Event is the JSON envelope sent to live sessions. Type is always set;
// the other fields depend on it.
type Event struct {
	Type    string         `json:"type"`
	Key     string         `json:"key,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
	Detail  string         `json:"detail,omitempty"`
	Data    any            `json:"data,omitempty"`
}

// MarshalJSON encodes exactly the fields of the event's type. They are
// written even when empty: an update always carries key and payload, a
// message always carries data (null included).
func (e Event) MarshalJSON() ([]byte, error) {
	switch e.Type {
	case TypeUpdate:
		payload := e.Payload
		if payload == nil {
			payload = map[string]any{}
		}
		return json.Marshal(struct {
			Type    string         `json:"type"`
			Key     string         `json:"key"`
			Payload map[string]any `json:"payload"`
		}{e.Type, e.Key, payload})
	case TypeError:
		return json.Marshal(struct {
			Type   string `json:"type"`
			Detail string `json:"detail"`
		}{e.Type, e.Detail})
	case TypeMessage:
		return json.Marshal(struct {
			Type string `json:"type"`
			Data any    `json:"data"`
		}{e.Type, e.Data})
	default:
		type plain Event
		return json.Marshal(plain(e))
	}
}

// UpdateEvent announces changed fields of one drone config.
func UpdateEvent(key string, payload map[string]any) Event {
	return Event{Type: TypeUpdate, Key: key, Payload: payload}
}

// ErrorEvent reports a failure to the session that caused it.
func ErrorEvent(detail string) Event {
	return Event{Type: TypeError, Detail: detail}
}

// MessageEvent relays arbitrary decoded content.
func MessageEvent(data any) Event {
	return Event{Type: TypeMessage, Data: data}
}

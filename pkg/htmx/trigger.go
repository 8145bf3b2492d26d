package htmx

import (
	"encoding/json"
	"maps"
	"net/http"
)

// ToastEvent is the client event name that shows a notification.
const ToastEvent = "toast"

// Toast levels.
const (
	LevelSuccess = "success"
	LevelError   = "error"
	LevelInfo    = "info"
)

// Toast is the detail of a ToastEvent.
type Toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Events maps client event names to their detail. A nil detail fires the
// event without payload.
type Events map[string]any

// SetTrigger writes events into the HX-Trigger header, merging with any
// events already set on the response.
//
//	HX-Trigger: {"toast":{"level":"success","message":"..."}}
func SetTrigger(h http.Header, events Events) error {
	if len(events) == 0 {
		return nil
	}
	merged := Events{}
	if cur := h.Get(HeaderHXTrigger); cur != "" {
		// Non-JSON values are plain event names.
		if err := json.Unmarshal([]byte(cur), &merged); err != nil {
			merged = Events{cur: nil}
		}
	}
	maps.Copy(merged, events)

	data, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	h.Set(HeaderHXTrigger, string(data))
	return nil
}

// TriggerToast sets a toast event on the response headers.
func TriggerToast(w http.ResponseWriter, level, message string) error {
	return SetTrigger(w.Header(), Events{ToastEvent: Toast{Level: level, Message: message}})
}

// Package normalize maps raw whiteboard entries into the closed set of
// typed domain events, rejecting anything
// outside that taxonomy.
package normalize

import (
	"errors"
	"fmt"

	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// ErrUnknownType is returned for any `type` outside the closed taxonomy.
var ErrUnknownType = errors.New("normalize: unknown whiteboard event type")

// Source identifies which subsystem produced a typed event.
type Source string

const (
	SourceCalendar Source = "calendar"
	SourceProd     Source = "prod"
	SourceEmail    Source = "email"
	SourceManager  Source = "manager"
)

// kindBySource maps each closed-set `type` to its (source, kind) pair.
var kindBySource = map[string]struct {
	source Source
	kind   string
}{
	"calendar.plan.proposed":     {SourceCalendar, "plan.proposed"},
	"calendar.plan.new_version":  {SourceCalendar, "plan.new_version"},
	"prod.underrun":              {SourceProd, "underrun"},
	"prod.overrun":               {SourceProd, "overrun"},
	"prod.nudge":                 {SourceProd, "nudge"},
	"email.reply_needed":         {SourceEmail, "reply_needed"},
	"manager.user_action":        {SourceManager, "user_action"},
	"manager.prompt":             {SourceManager, "prompt"},
}

// requiredPayloadKeys lists the payload keys each type must carry. Missing
// keys are not fatal (the normalizer projects what it has: see Normalize's
// doc comment) but are recorded so callers can log a structured warning.
var requiredPayloadKeys = map[string][]string{
	"calendar.plan.proposed":    {"delta_id", "summary", "impact"},
	"calendar.plan.new_version": {"plan_id", "version"},
	"prod.underrun":             {"block_id", "activity_label"},
	"prod.overrun":              {"block_id", "activity_label"},
	"prod.nudge":                {"block_id", "activity_label"},
	"email.reply_needed":        {"message_id", "sender", "summary", "draft"},
	"manager.user_action":       {"action_id", "choice"},
	"manager.prompt":            {"content", "options", "action_id", "wb_parent_id"},
}

// TypedEvent is the post-normalization tagged union: a {source, kind,
// payload} triple plus the originating whiteboard identity.
type TypedEvent struct {
	WBID     string
	UserID   string
	ThreadID string
	Source   Source
	Kind     string
	Payload  map[string]any
	// MissingKeys lists required payload keys this entry did not
	// carry. Non-empty MissingKeys is not itself an error: callers may
	// still choose to process a degraded event: but should be logged.
	MissingKeys []string
}

// Normalize converts a raw whiteboard.Event into a TypedEvent. It reads
// `type` (falling back to `kind`), rejects anything outside the closed
// taxonomy, and copies the remaining values into Payload, leaving out
// `type`/`kind`/`thread_id`/`user_id`/`ts`, which are carried on the envelope
// instead. Keys outside the type's required list are kept in Payload, not
// dropped.
func Normalize(evt whiteboard.Event) (TypedEvent, error) {
	typ := stringValue(evt.Values["type"])
	if typ == "" {
		typ = stringValue(evt.Values["kind"])
	}
	mapping, ok := kindBySource[typ]
	if !ok {
		return TypedEvent{}, fmt.Errorf("%w: %q (wb_id=%s)", ErrUnknownType, typ, evt.ID)
	}

	userID := evt.UserID
	if userID == "" {
		userID = stringValue(evt.Values["user_id"])
	}
	threadID := evt.ThreadID
	if threadID == "" {
		threadID = stringValue(evt.Values["thread_id"])
	}

	payload := make(map[string]any, len(evt.Values))
	for k, v := range evt.Values {
		switch k {
		case "type", "kind", "thread_id", "user_id", "ts":
			continue
		default:
			payload[k] = coerce(v)
		}
	}

	var missing []string
	for _, key := range requiredPayloadKeys[typ] {
		if _, ok := payload[key]; !ok {
			missing = append(missing, key)
		}
	}

	return TypedEvent{
		WBID:        evt.ID,
		UserID:      userID,
		ThreadID:    threadID,
		Source:      mapping.source,
		Kind:        mapping.kind,
		Payload:     payload,
		MissingKeys: missing,
	}, nil
}

// stringValue coerces a dynamic JSON-ish value to a string, covering the
// variants a dynamic JSON payload may arrive as: string, []byte and
// fmt.Stringer. Anything else yields "".
func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return ""
	}
}

// coerce normalizes scalar representations (string/byte/stringer) that may
// arrive from a Redis Streams round-trip, where every field value transits
// as a string. It leaves maps, slices, numbers and bools untouched.
func coerce(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return v
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CalendarSyncState holds the incremental-sync cursor for a user's shadow
// calendar. One row per (user_id, calendar_id).
type CalendarSyncState struct {
	ent.Schema
}

// Fields of the CalendarSyncState.
func (CalendarSyncState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("user_id + \":\" + calendar_id"),
		field.String("user_id").
			Immutable(),
		field.String("calendar_id").
			Immutable(),

		field.String("sync_token").
			Optional().
			Comment("opaque token passed to the external collaborator for the next incremental pull"),
		field.String("last_delta_id").
			Optional().
			Comment("dedupe marker: last applied (stream_id, delta_id) pair, stream_id omitted here"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CalendarSyncState.
func (CalendarSyncState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "calendar_id").
			Unique(),
	}
}

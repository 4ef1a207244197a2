package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ShadowCalendarEvent holds the schema definition for a single event in a
// user's shadow calendar: the local mirror of an external calendar used
// for planning without writing through.
type ShadowCalendarEvent struct {
	ent.Schema
}

// Fields of the ShadowCalendarEvent.
func (ShadowCalendarEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("user_id + \":\" + calendar_id + \":\" + event_id"),
		field.String("user_id").
			Immutable(),
		field.String("calendar_id").
			Immutable(),
		field.String("event_id").
			Immutable(),

		field.String("summary").
			Optional(),
		field.Time("start_time"),
		field.Time("end_time"),
		field.String("raw_json").
			Optional().
			Comment("last-observed external representation, opaque to the planner"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ShadowCalendarEvent.
func (ShadowCalendarEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "calendar_id", "event_id").
			Unique(),
		index.Fields("user_id", "calendar_id", "start_time"),
	}
}

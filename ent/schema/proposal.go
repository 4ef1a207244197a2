package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Proposal holds the schema definition for a pending calendar change
// awaiting user confirmation.
type Proposal struct {
	ent.Schema
}

// Fields of the Proposal.
func (Proposal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("proposal_id"),
		field.String("user_id").
			Immutable(),
		field.String("thread_id").
			Immutable(),

		field.String("primary_event_id"),
		field.String("conflicting_event_id").
			Optional(),
		field.String("plan_json").
			Comment("serialized {events[], rationale}"),
		field.String("delta_id").
			Optional().
			Comment("dedupe marker from the calendar delta that produced this proposal"),

		field.Enum("status").
			Values("pending", "applied", "stale").
			Default("pending"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Proposal.
func (Proposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
		index.Fields("user_id", "delta_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Checkpoint holds the schema definition for the Checkpoint entity.
// One row per (user_id, thread_id): durable Manager Graph resume state.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("user_id + \":\" + thread_id"),
		field.String("user_id").
			Immutable(),
		field.String("thread_id").
			Immutable(),

		field.String("last_wb_id_processed").
			Optional().
			Default("").
			Comment("monotone-increasing under the stream-ID total order"),
		field.String("last_plan_id").
			Optional(),
		field.String("last_plan_version").
			Optional(),
		field.String("pending_prompt_id").
			Optional().
			Comment("non-empty iff a manager.prompt awaits resolution"),

		field.Strings("side_effects_log").
			Optional().
			Comment("idempotency keys (user, thread, wb_id, node_name); compacted periodically"),
		field.Int("side_effects_compacted_count").
			Default(0).
			Comment("count of side-effect keys folded into the compaction summary"),
		field.String("side_effects_compacted_last_id").
			Optional().
			Comment("highest wb_id among compacted keys"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Checkpoint.
func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "thread_id").
			Unique(),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records that a lesson was generated and shown. Write-only
// telemetry for the stats subcommand; the session never reads it back.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("sub_topic").Default(""),
		field.String("learning_style").NotEmpty(),
		field.String("knowledge_level").NotEmpty(),
		field.Bool("retry").
			Comment("True when this was a simplified retry lesson"),
		field.String("lesson_title").Default(""),
		field.Int("section_count").Default(0),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/shreyescodes/doc-parser-updated/constants"
	"github.com/shreyescodes/doc-parser-updated/db/ent/schema/utils"
)

// ProcessingLog rows are append-only; there is no update path in the
// repository layer.
type ProcessingLog struct{ ent.Schema }

func (ProcessingLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_logs"},
	}
}

func (ProcessingLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("log_level").NotEmpty().
			Validate(utils.EnumValidator(
				string(constants.LogInfo),
				string(constants.LogWarning),
				string(constants.LogError),
			)),
		field.String("message").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("step").Optional().Nillable(),
		field.Float("processing_time").Optional().Nillable(), // seconds
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ProcessingLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("logs").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ProcessingLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "created_at"),
	}
}

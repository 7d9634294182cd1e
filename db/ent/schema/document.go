package schema

import (
	"encoding/json"
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

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("original_filename").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.Int("file_size").NonNegative(),
		field.String("mime_type").NotEmpty(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("status").Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(
				string(constants.StatusPending),
				string(constants.StatusProcessing),
				string(constants.StatusCompleted),
				string(constants.StatusFailed),
			)),
		field.String("category").Optional().Nillable(),
		field.String("fund_name").Optional().Nillable(),
		field.String("fund_id").Optional().Nillable(),
		field.String("normalized_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("structured_tree", json.RawMessage{}).
			Optional(),
		field.Float32("extraction_confidence").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> AT MOST ONE capital call detail
		edge.To("capital_call_detail", CapitalCallDetail.Type).
			Unique().
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
		// ONE document -> AT MOST ONE distribution detail
		edge.To("distribution_detail", DistributionDetail.Type).
			Unique().
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
		// ONE document -> MANY log entries
		edge.To("logs", ProcessingLog.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("category"),
	}
}

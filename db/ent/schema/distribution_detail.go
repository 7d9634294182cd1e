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
)

type DistributionDetail struct{ ent.Schema }

func (DistributionDetail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "distribution_details"},
	}
}

func (DistributionDetail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}).Unique(),
		field.Time("distribution_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("record_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("distribution_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(16,2)"}),
		field.String("currency").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Float("distribution_per_unit").Optional().Nillable(),
		field.String("fund_name").Optional().Nillable(),
		field.Float("fund_nav").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.Float("total_distributions").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.String("lp_name").Optional().Nillable(),
		field.Float("lp_units").Optional().Nillable(),
		field.Float("lp_distribution_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(16,2)"}),
		field.Float("irr").Optional().Nillable(),
		field.Float("multiple").Optional().Nillable(),
		field.String("payment_method").Optional().Nillable(),
		field.String("payment_instructions").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// raw extracted field set, kept for audit
		field.JSON("extracted_data", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DistributionDetail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("distribution_detail").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (DistributionDetail) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id").Unique(),
	}
}

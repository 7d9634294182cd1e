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

type CapitalCallDetail struct{ ent.Schema }

func (CapitalCallDetail) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "capital_call_details"},
	}
}

func (CapitalCallDetail) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}).Unique(),
		field.Time("call_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("call_amount").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(16,2)"}),
		field.String("currency").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Float("call_percentage").Optional().Nillable(),
		field.String("fund_name").Optional().Nillable(),
		field.Float("fund_size").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(18,2)"}),
		field.String("lp_name").Optional().Nillable(),
		field.Float("lp_commitment").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(16,2)"}),
		field.Float("remaining_commitment").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(16,2)"}),
		field.String("payment_instructions").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("wire_transfer_info", map[string]string{}).Optional(),
		field.String("notes").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// raw extracted field set, kept for audit
		field.JSON("extracted_data", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CapitalCallDetail) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("capital_call_detail").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (CapitalCallDetail) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id").Unique(),
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/distributiondetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/document"
)

// DistributionDetail is the model entity for the DistributionDetail schema.
type DistributionDetail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// DistributionDate holds the value of the "distribution_date" field.
	DistributionDate *time.Time `json:"distribution_date,omitempty"`
	// RecordDate holds the value of the "record_date" field.
	RecordDate *time.Time `json:"record_date,omitempty"`
	// DistributionAmount holds the value of the "distribution_amount" field.
	DistributionAmount *float64 `json:"distribution_amount,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency *string `json:"currency,omitempty"`
	// DistributionPerUnit holds the value of the "distribution_per_unit" field.
	DistributionPerUnit *float64 `json:"distribution_per_unit,omitempty"`
	// FundName holds the value of the "fund_name" field.
	FundName *string `json:"fund_name,omitempty"`
	// FundNav holds the value of the "fund_nav" field.
	FundNav *float64 `json:"fund_nav,omitempty"`
	// TotalDistributions holds the value of the "total_distributions" field.
	TotalDistributions *float64 `json:"total_distributions,omitempty"`
	// LpName holds the value of the "lp_name" field.
	LpName *string `json:"lp_name,omitempty"`
	// LpUnits holds the value of the "lp_units" field.
	LpUnits *float64 `json:"lp_units,omitempty"`
	// LpDistributionAmount holds the value of the "lp_distribution_amount" field.
	LpDistributionAmount *float64 `json:"lp_distribution_amount,omitempty"`
	// Irr holds the value of the "irr" field.
	Irr *float64 `json:"irr,omitempty"`
	// Multiple holds the value of the "multiple" field.
	Multiple *float64 `json:"multiple,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod *string `json:"payment_method,omitempty"`
	// PaymentInstructions holds the value of the "payment_instructions" field.
	PaymentInstructions *string `json:"payment_instructions,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// ExtractedData holds the value of the "extracted_data" field.
	ExtractedData json.RawMessage `json:"extracted_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DistributionDetailQuery when eager-loading is set.
	Edges        DistributionDetailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DistributionDetailEdges holds the relations/edges for other nodes in the graph.
type DistributionDetailEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DistributionDetailEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DistributionDetail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case distributiondetail.FieldExtractedData:
			values[i] = new([]byte)
		case distributiondetail.FieldDistributionAmount, distributiondetail.FieldDistributionPerUnit, distributiondetail.FieldFundNav, distributiondetail.FieldTotalDistributions, distributiondetail.FieldLpUnits, distributiondetail.FieldLpDistributionAmount, distributiondetail.FieldIrr, distributiondetail.FieldMultiple:
			values[i] = new(sql.NullFloat64)
		case distributiondetail.FieldCurrency, distributiondetail.FieldFundName, distributiondetail.FieldLpName, distributiondetail.FieldPaymentMethod, distributiondetail.FieldPaymentInstructions, distributiondetail.FieldNotes:
			values[i] = new(sql.NullString)
		case distributiondetail.FieldDistributionDate, distributiondetail.FieldRecordDate, distributiondetail.FieldCreatedAt, distributiondetail.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case distributiondetail.FieldID, distributiondetail.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DistributionDetail fields.
func (_m *DistributionDetail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case distributiondetail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case distributiondetail.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case distributiondetail.FieldDistributionDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field distribution_date", values[i])
			} else if value.Valid {
				_m.DistributionDate = new(time.Time)
				*_m.DistributionDate = value.Time
			}
		case distributiondetail.FieldRecordDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field record_date", values[i])
			} else if value.Valid {
				_m.RecordDate = new(time.Time)
				*_m.RecordDate = value.Time
			}
		case distributiondetail.FieldDistributionAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distribution_amount", values[i])
			} else if value.Valid {
				_m.DistributionAmount = new(float64)
				*_m.DistributionAmount = value.Float64
			}
		case distributiondetail.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = new(string)
				*_m.Currency = value.String
			}
		case distributiondetail.FieldDistributionPerUnit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field distribution_per_unit", values[i])
			} else if value.Valid {
				_m.DistributionPerUnit = new(float64)
				*_m.DistributionPerUnit = value.Float64
			}
		case distributiondetail.FieldFundName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fund_name", values[i])
			} else if value.Valid {
				_m.FundName = new(string)
				*_m.FundName = value.String
			}
		case distributiondetail.FieldFundNav:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fund_nav", values[i])
			} else if value.Valid {
				_m.FundNav = new(float64)
				*_m.FundNav = value.Float64
			}
		case distributiondetail.FieldTotalDistributions:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_distributions", values[i])
			} else if value.Valid {
				_m.TotalDistributions = new(float64)
				*_m.TotalDistributions = value.Float64
			}
		case distributiondetail.FieldLpName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lp_name", values[i])
			} else if value.Valid {
				_m.LpName = new(string)
				*_m.LpName = value.String
			}
		case distributiondetail.FieldLpUnits:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lp_units", values[i])
			} else if value.Valid {
				_m.LpUnits = new(float64)
				*_m.LpUnits = value.Float64
			}
		case distributiondetail.FieldLpDistributionAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lp_distribution_amount", values[i])
			} else if value.Valid {
				_m.LpDistributionAmount = new(float64)
				*_m.LpDistributionAmount = value.Float64
			}
		case distributiondetail.FieldIrr:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field irr", values[i])
			} else if value.Valid {
				_m.Irr = new(float64)
				*_m.Irr = value.Float64
			}
		case distributiondetail.FieldMultiple:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field multiple", values[i])
			} else if value.Valid {
				_m.Multiple = new(float64)
				*_m.Multiple = value.Float64
			}
		case distributiondetail.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = new(string)
				*_m.PaymentMethod = value.String
			}
		case distributiondetail.FieldPaymentInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_instructions", values[i])
			} else if value.Valid {
				_m.PaymentInstructions = new(string)
				*_m.PaymentInstructions = value.String
			}
		case distributiondetail.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case distributiondetail.FieldExtractedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedData); err != nil {
					return fmt.Errorf("unmarshal field extracted_data: %w", err)
				}
			}
		case distributiondetail.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case distributiondetail.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DistributionDetail.
// This includes values selected through modifiers, order, etc.
func (_m *DistributionDetail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DistributionDetail entity.
func (_m *DistributionDetail) QueryDocument() *DocumentQuery {
	return NewDistributionDetailClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this DistributionDetail.
// Note that you need to call DistributionDetail.Unwrap() before calling this method if this DistributionDetail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DistributionDetail) Update() *DistributionDetailUpdateOne {
	return NewDistributionDetailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DistributionDetail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DistributionDetail) Unwrap() *DistributionDetail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DistributionDetail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DistributionDetail) String() string {
	var builder strings.Builder
	builder.WriteString("DistributionDetail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	if v := _m.DistributionDate; v != nil {
		builder.WriteString("distribution_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RecordDate; v != nil {
		builder.WriteString("record_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DistributionAmount; v != nil {
		builder.WriteString("distribution_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Currency; v != nil {
		builder.WriteString("currency=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.DistributionPerUnit; v != nil {
		builder.WriteString("distribution_per_unit=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FundName; v != nil {
		builder.WriteString("fund_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FundNav; v != nil {
		builder.WriteString("fund_nav=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalDistributions; v != nil {
		builder.WriteString("total_distributions=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LpName; v != nil {
		builder.WriteString("lp_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LpUnits; v != nil {
		builder.WriteString("lp_units=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LpDistributionAmount; v != nil {
		builder.WriteString("lp_distribution_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Irr; v != nil {
		builder.WriteString("irr=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Multiple; v != nil {
		builder.WriteString("multiple=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PaymentMethod; v != nil {
		builder.WriteString("payment_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PaymentInstructions; v != nil {
		builder.WriteString("payment_instructions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("extracted_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractedData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DistributionDetails is a parsable slice of DistributionDetail.
type DistributionDetails []*DistributionDetail

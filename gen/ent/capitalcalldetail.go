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
	"github.com/shreyescodes/doc-parser-updated/gen/ent/capitalcalldetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/document"
)

// CapitalCallDetail is the model entity for the CapitalCallDetail schema.
type CapitalCallDetail struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// CallDate holds the value of the "call_date" field.
	CallDate *time.Time `json:"call_date,omitempty"`
	// DueDate holds the value of the "due_date" field.
	DueDate *time.Time `json:"due_date,omitempty"`
	// CallAmount holds the value of the "call_amount" field.
	CallAmount *float64 `json:"call_amount,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency *string `json:"currency,omitempty"`
	// CallPercentage holds the value of the "call_percentage" field.
	CallPercentage *float64 `json:"call_percentage,omitempty"`
	// FundName holds the value of the "fund_name" field.
	FundName *string `json:"fund_name,omitempty"`
	// FundSize holds the value of the "fund_size" field.
	FundSize *float64 `json:"fund_size,omitempty"`
	// LpName holds the value of the "lp_name" field.
	LpName *string `json:"lp_name,omitempty"`
	// LpCommitment holds the value of the "lp_commitment" field.
	LpCommitment *float64 `json:"lp_commitment,omitempty"`
	// RemainingCommitment holds the value of the "remaining_commitment" field.
	RemainingCommitment *float64 `json:"remaining_commitment,omitempty"`
	// PaymentInstructions holds the value of the "payment_instructions" field.
	PaymentInstructions *string `json:"payment_instructions,omitempty"`
	// WireTransferInfo holds the value of the "wire_transfer_info" field.
	WireTransferInfo map[string]string `json:"wire_transfer_info,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// ExtractedData holds the value of the "extracted_data" field.
	ExtractedData json.RawMessage `json:"extracted_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CapitalCallDetailQuery when eager-loading is set.
	Edges        CapitalCallDetailEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CapitalCallDetailEdges holds the relations/edges for other nodes in the graph.
type CapitalCallDetailEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CapitalCallDetailEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CapitalCallDetail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case capitalcalldetail.FieldWireTransferInfo, capitalcalldetail.FieldExtractedData:
			values[i] = new([]byte)
		case capitalcalldetail.FieldCallAmount, capitalcalldetail.FieldCallPercentage, capitalcalldetail.FieldFundSize, capitalcalldetail.FieldLpCommitment, capitalcalldetail.FieldRemainingCommitment:
			values[i] = new(sql.NullFloat64)
		case capitalcalldetail.FieldCurrency, capitalcalldetail.FieldFundName, capitalcalldetail.FieldLpName, capitalcalldetail.FieldPaymentInstructions, capitalcalldetail.FieldNotes:
			values[i] = new(sql.NullString)
		case capitalcalldetail.FieldCallDate, capitalcalldetail.FieldDueDate, capitalcalldetail.FieldCreatedAt, capitalcalldetail.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case capitalcalldetail.FieldID, capitalcalldetail.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CapitalCallDetail fields.
func (_m *CapitalCallDetail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case capitalcalldetail.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case capitalcalldetail.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case capitalcalldetail.FieldCallDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field call_date", values[i])
			} else if value.Valid {
				_m.CallDate = new(time.Time)
				*_m.CallDate = value.Time
			}
		case capitalcalldetail.FieldDueDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_date", values[i])
			} else if value.Valid {
				_m.DueDate = new(time.Time)
				*_m.DueDate = value.Time
			}
		case capitalcalldetail.FieldCallAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field call_amount", values[i])
			} else if value.Valid {
				_m.CallAmount = new(float64)
				*_m.CallAmount = value.Float64
			}
		case capitalcalldetail.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = new(string)
				*_m.Currency = value.String
			}
		case capitalcalldetail.FieldCallPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field call_percentage", values[i])
			} else if value.Valid {
				_m.CallPercentage = new(float64)
				*_m.CallPercentage = value.Float64
			}
		case capitalcalldetail.FieldFundName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fund_name", values[i])
			} else if value.Valid {
				_m.FundName = new(string)
				*_m.FundName = value.String
			}
		case capitalcalldetail.FieldFundSize:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fund_size", values[i])
			} else if value.Valid {
				_m.FundSize = new(float64)
				*_m.FundSize = value.Float64
			}
		case capitalcalldetail.FieldLpName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lp_name", values[i])
			} else if value.Valid {
				_m.LpName = new(string)
				*_m.LpName = value.String
			}
		case capitalcalldetail.FieldLpCommitment:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lp_commitment", values[i])
			} else if value.Valid {
				_m.LpCommitment = new(float64)
				*_m.LpCommitment = value.Float64
			}
		case capitalcalldetail.FieldRemainingCommitment:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field remaining_commitment", values[i])
			} else if value.Valid {
				_m.RemainingCommitment = new(float64)
				*_m.RemainingCommitment = value.Float64
			}
		case capitalcalldetail.FieldPaymentInstructions:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_instructions", values[i])
			} else if value.Valid {
				_m.PaymentInstructions = new(string)
				*_m.PaymentInstructions = value.String
			}
		case capitalcalldetail.FieldWireTransferInfo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field wire_transfer_info", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WireTransferInfo); err != nil {
					return fmt.Errorf("unmarshal field wire_transfer_info: %w", err)
				}
			}
		case capitalcalldetail.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case capitalcalldetail.FieldExtractedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExtractedData); err != nil {
					return fmt.Errorf("unmarshal field extracted_data: %w", err)
				}
			}
		case capitalcalldetail.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case capitalcalldetail.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CapitalCallDetail.
// This includes values selected through modifiers, order, etc.
func (_m *CapitalCallDetail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the CapitalCallDetail entity.
func (_m *CapitalCallDetail) QueryDocument() *DocumentQuery {
	return NewCapitalCallDetailClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this CapitalCallDetail.
// Note that you need to call CapitalCallDetail.Unwrap() before calling this method if this CapitalCallDetail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CapitalCallDetail) Update() *CapitalCallDetailUpdateOne {
	return NewCapitalCallDetailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CapitalCallDetail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CapitalCallDetail) Unwrap() *CapitalCallDetail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CapitalCallDetail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CapitalCallDetail) String() string {
	var builder strings.Builder
	builder.WriteString("CapitalCallDetail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	if v := _m.CallDate; v != nil {
		builder.WriteString("call_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DueDate; v != nil {
		builder.WriteString("due_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CallAmount; v != nil {
		builder.WriteString("call_amount=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Currency; v != nil {
		builder.WriteString("currency=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CallPercentage; v != nil {
		builder.WriteString("call_percentage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FundName; v != nil {
		builder.WriteString("fund_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FundSize; v != nil {
		builder.WriteString("fund_size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LpName; v != nil {
		builder.WriteString("lp_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LpCommitment; v != nil {
		builder.WriteString("lp_commitment=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RemainingCommitment; v != nil {
		builder.WriteString("remaining_commitment=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PaymentInstructions; v != nil {
		builder.WriteString("payment_instructions=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("wire_transfer_info=")
	builder.WriteString(fmt.Sprintf("%v", _m.WireTransferInfo))
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

// CapitalCallDetails is a parsable slice of CapitalCallDetail.
type CapitalCallDetails []*CapitalCallDetail

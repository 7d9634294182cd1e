// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/capitalcalldetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/distributiondetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/document"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/predicate"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/processinglog"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCapitalCallDetail  = "CapitalCallDetail"
	TypeDistributionDetail = "DistributionDetail"
	TypeDocument           = "Document"
	TypeProcessingLog      = "ProcessingLog"
)

// CapitalCallDetailMutation represents an operation that mutates the CapitalCallDetail nodes in the graph.
type CapitalCallDetailMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	call_date               *time.Time
	due_date                *time.Time
	call_amount             *float64
	addcall_amount          *float64
	currency                *string
	call_percentage         *float64
	addcall_percentage      *float64
	fund_name               *string
	fund_size               *float64
	addfund_size            *float64
	lp_name                 *string
	lp_commitment           *float64
	addlp_commitment        *float64
	remaining_commitment    *float64
	addremaining_commitment *float64
	payment_instructions    *string
	wire_transfer_info      *map[string]string
	notes                   *string
	extracted_data          *json.RawMessage
	appendextracted_data    json.RawMessage
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	document                *uuid.UUID
	cleareddocument         bool
	done                    bool
	oldValue                func(context.Context) (*CapitalCallDetail, error)
	predicates              []predicate.CapitalCallDetail
}

var _ ent.Mutation = (*CapitalCallDetailMutation)(nil)

// capitalcalldetailOption allows management of the mutation configuration using functional options.
type capitalcalldetailOption func(*CapitalCallDetailMutation)

// newCapitalCallDetailMutation creates new mutation for the CapitalCallDetail entity.
func newCapitalCallDetailMutation(c config, op Op, opts ...capitalcalldetailOption) *CapitalCallDetailMutation {
	m := &CapitalCallDetailMutation{
		config:        c,
		op:            op,
		typ:           TypeCapitalCallDetail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCapitalCallDetailID sets the ID field of the mutation.
func withCapitalCallDetailID(id uuid.UUID) capitalcalldetailOption {
	return func(m *CapitalCallDetailMutation) {
		var (
			err   error
			once  sync.Once
			value *CapitalCallDetail
		)
		m.oldValue = func(ctx context.Context) (*CapitalCallDetail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CapitalCallDetail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCapitalCallDetail sets the old CapitalCallDetail of the mutation.
func withCapitalCallDetail(node *CapitalCallDetail) capitalcalldetailOption {
	return func(m *CapitalCallDetailMutation) {
		m.oldValue = func(context.Context) (*CapitalCallDetail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CapitalCallDetailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CapitalCallDetailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CapitalCallDetail entities.
func (m *CapitalCallDetailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CapitalCallDetailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CapitalCallDetailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CapitalCallDetail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *CapitalCallDetailMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *CapitalCallDetailMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *CapitalCallDetailMutation) ResetDocumentID() {
	m.document = nil
}

// SetCallDate sets the "call_date" field.
func (m *CapitalCallDetailMutation) SetCallDate(t time.Time) {
	m.call_date = &t
}

// CallDate returns the value of the "call_date" field in the mutation.
func (m *CapitalCallDetailMutation) CallDate() (r time.Time, exists bool) {
	v := m.call_date
	if v == nil {
		return
	}
	return *v, true
}

// OldCallDate returns the old "call_date" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldCallDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallDate: %w", err)
	}
	return oldValue.CallDate, nil
}

// ClearCallDate clears the value of the "call_date" field.
func (m *CapitalCallDetailMutation) ClearCallDate() {
	m.call_date = nil
	m.clearedFields[capitalcalldetail.FieldCallDate] = struct{}{}
}

// CallDateCleared returns if the "call_date" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) CallDateCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldCallDate]
	return ok
}

// ResetCallDate resets all changes to the "call_date" field.
func (m *CapitalCallDetailMutation) ResetCallDate() {
	m.call_date = nil
	delete(m.clearedFields, capitalcalldetail.FieldCallDate)
}

// SetDueDate sets the "due_date" field.
func (m *CapitalCallDetailMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *CapitalCallDetailMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldDueDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ClearDueDate clears the value of the "due_date" field.
func (m *CapitalCallDetailMutation) ClearDueDate() {
	m.due_date = nil
	m.clearedFields[capitalcalldetail.FieldDueDate] = struct{}{}
}

// DueDateCleared returns if the "due_date" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) DueDateCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldDueDate]
	return ok
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *CapitalCallDetailMutation) ResetDueDate() {
	m.due_date = nil
	delete(m.clearedFields, capitalcalldetail.FieldDueDate)
}

// SetCallAmount sets the "call_amount" field.
func (m *CapitalCallDetailMutation) SetCallAmount(f float64) {
	m.call_amount = &f
	m.addcall_amount = nil
}

// CallAmount returns the value of the "call_amount" field in the mutation.
func (m *CapitalCallDetailMutation) CallAmount() (r float64, exists bool) {
	v := m.call_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldCallAmount returns the old "call_amount" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldCallAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallAmount: %w", err)
	}
	return oldValue.CallAmount, nil
}

// AddCallAmount adds f to the "call_amount" field.
func (m *CapitalCallDetailMutation) AddCallAmount(f float64) {
	if m.addcall_amount != nil {
		*m.addcall_amount += f
	} else {
		m.addcall_amount = &f
	}
}

// AddedCallAmount returns the value that was added to the "call_amount" field in this mutation.
func (m *CapitalCallDetailMutation) AddedCallAmount() (r float64, exists bool) {
	v := m.addcall_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearCallAmount clears the value of the "call_amount" field.
func (m *CapitalCallDetailMutation) ClearCallAmount() {
	m.call_amount = nil
	m.addcall_amount = nil
	m.clearedFields[capitalcalldetail.FieldCallAmount] = struct{}{}
}

// CallAmountCleared returns if the "call_amount" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) CallAmountCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldCallAmount]
	return ok
}

// ResetCallAmount resets all changes to the "call_amount" field.
func (m *CapitalCallDetailMutation) ResetCallAmount() {
	m.call_amount = nil
	m.addcall_amount = nil
	delete(m.clearedFields, capitalcalldetail.FieldCallAmount)
}

// SetCurrency sets the "currency" field.
func (m *CapitalCallDetailMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *CapitalCallDetailMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldCurrency(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ClearCurrency clears the value of the "currency" field.
func (m *CapitalCallDetailMutation) ClearCurrency() {
	m.currency = nil
	m.clearedFields[capitalcalldetail.FieldCurrency] = struct{}{}
}

// CurrencyCleared returns if the "currency" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) CurrencyCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldCurrency]
	return ok
}

// ResetCurrency resets all changes to the "currency" field.
func (m *CapitalCallDetailMutation) ResetCurrency() {
	m.currency = nil
	delete(m.clearedFields, capitalcalldetail.FieldCurrency)
}

// SetCallPercentage sets the "call_percentage" field.
func (m *CapitalCallDetailMutation) SetCallPercentage(f float64) {
	m.call_percentage = &f
	m.addcall_percentage = nil
}

// CallPercentage returns the value of the "call_percentage" field in the mutation.
func (m *CapitalCallDetailMutation) CallPercentage() (r float64, exists bool) {
	v := m.call_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldCallPercentage returns the old "call_percentage" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldCallPercentage(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallPercentage: %w", err)
	}
	return oldValue.CallPercentage, nil
}

// AddCallPercentage adds f to the "call_percentage" field.
func (m *CapitalCallDetailMutation) AddCallPercentage(f float64) {
	if m.addcall_percentage != nil {
		*m.addcall_percentage += f
	} else {
		m.addcall_percentage = &f
	}
}

// AddedCallPercentage returns the value that was added to the "call_percentage" field in this mutation.
func (m *CapitalCallDetailMutation) AddedCallPercentage() (r float64, exists bool) {
	v := m.addcall_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ClearCallPercentage clears the value of the "call_percentage" field.
func (m *CapitalCallDetailMutation) ClearCallPercentage() {
	m.call_percentage = nil
	m.addcall_percentage = nil
	m.clearedFields[capitalcalldetail.FieldCallPercentage] = struct{}{}
}

// CallPercentageCleared returns if the "call_percentage" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) CallPercentageCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldCallPercentage]
	return ok
}

// ResetCallPercentage resets all changes to the "call_percentage" field.
func (m *CapitalCallDetailMutation) ResetCallPercentage() {
	m.call_percentage = nil
	m.addcall_percentage = nil
	delete(m.clearedFields, capitalcalldetail.FieldCallPercentage)
}

// SetFundName sets the "fund_name" field.
func (m *CapitalCallDetailMutation) SetFundName(s string) {
	m.fund_name = &s
}

// FundName returns the value of the "fund_name" field in the mutation.
func (m *CapitalCallDetailMutation) FundName() (r string, exists bool) {
	v := m.fund_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFundName returns the old "fund_name" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldFundName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFundName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFundName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFundName: %w", err)
	}
	return oldValue.FundName, nil
}

// ClearFundName clears the value of the "fund_name" field.
func (m *CapitalCallDetailMutation) ClearFundName() {
	m.fund_name = nil
	m.clearedFields[capitalcalldetail.FieldFundName] = struct{}{}
}

// FundNameCleared returns if the "fund_name" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) FundNameCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldFundName]
	return ok
}

// ResetFundName resets all changes to the "fund_name" field.
func (m *CapitalCallDetailMutation) ResetFundName() {
	m.fund_name = nil
	delete(m.clearedFields, capitalcalldetail.FieldFundName)
}

// SetFundSize sets the "fund_size" field.
func (m *CapitalCallDetailMutation) SetFundSize(f float64) {
	m.fund_size = &f
	m.addfund_size = nil
}

// FundSize returns the value of the "fund_size" field in the mutation.
func (m *CapitalCallDetailMutation) FundSize() (r float64, exists bool) {
	v := m.fund_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFundSize returns the old "fund_size" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldFundSize(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFundSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFundSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFundSize: %w", err)
	}
	return oldValue.FundSize, nil
}

// AddFundSize adds f to the "fund_size" field.
func (m *CapitalCallDetailMutation) AddFundSize(f float64) {
	if m.addfund_size != nil {
		*m.addfund_size += f
	} else {
		m.addfund_size = &f
	}
}

// AddedFundSize returns the value that was added to the "fund_size" field in this mutation.
func (m *CapitalCallDetailMutation) AddedFundSize() (r float64, exists bool) {
	v := m.addfund_size
	if v == nil {
		return
	}
	return *v, true
}

// ClearFundSize clears the value of the "fund_size" field.
func (m *CapitalCallDetailMutation) ClearFundSize() {
	m.fund_size = nil
	m.addfund_size = nil
	m.clearedFields[capitalcalldetail.FieldFundSize] = struct{}{}
}

// FundSizeCleared returns if the "fund_size" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) FundSizeCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldFundSize]
	return ok
}

// ResetFundSize resets all changes to the "fund_size" field.
func (m *CapitalCallDetailMutation) ResetFundSize() {
	m.fund_size = nil
	m.addfund_size = nil
	delete(m.clearedFields, capitalcalldetail.FieldFundSize)
}

// SetLpName sets the "lp_name" field.
func (m *CapitalCallDetailMutation) SetLpName(s string) {
	m.lp_name = &s
}

// LpName returns the value of the "lp_name" field in the mutation.
func (m *CapitalCallDetailMutation) LpName() (r string, exists bool) {
	v := m.lp_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLpName returns the old "lp_name" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldLpName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLpName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLpName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLpName: %w", err)
	}
	return oldValue.LpName, nil
}

// ClearLpName clears the value of the "lp_name" field.
func (m *CapitalCallDetailMutation) ClearLpName() {
	m.lp_name = nil
	m.clearedFields[capitalcalldetail.FieldLpName] = struct{}{}
}

// LpNameCleared returns if the "lp_name" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) LpNameCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldLpName]
	return ok
}

// ResetLpName resets all changes to the "lp_name" field.
func (m *CapitalCallDetailMutation) ResetLpName() {
	m.lp_name = nil
	delete(m.clearedFields, capitalcalldetail.FieldLpName)
}

// SetLpCommitment sets the "lp_commitment" field.
func (m *CapitalCallDetailMutation) SetLpCommitment(f float64) {
	m.lp_commitment = &f
	m.addlp_commitment = nil
}

// LpCommitment returns the value of the "lp_commitment" field in the mutation.
func (m *CapitalCallDetailMutation) LpCommitment() (r float64, exists bool) {
	v := m.lp_commitment
	if v == nil {
		return
	}
	return *v, true
}

// OldLpCommitment returns the old "lp_commitment" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldLpCommitment(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLpCommitment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLpCommitment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLpCommitment: %w", err)
	}
	return oldValue.LpCommitment, nil
}

// AddLpCommitment adds f to the "lp_commitment" field.
func (m *CapitalCallDetailMutation) AddLpCommitment(f float64) {
	if m.addlp_commitment != nil {
		*m.addlp_commitment += f
	} else {
		m.addlp_commitment = &f
	}
}

// AddedLpCommitment returns the value that was added to the "lp_commitment" field in this mutation.
func (m *CapitalCallDetailMutation) AddedLpCommitment() (r float64, exists bool) {
	v := m.addlp_commitment
	if v == nil {
		return
	}
	return *v, true
}

// ClearLpCommitment clears the value of the "lp_commitment" field.
func (m *CapitalCallDetailMutation) ClearLpCommitment() {
	m.lp_commitment = nil
	m.addlp_commitment = nil
	m.clearedFields[capitalcalldetail.FieldLpCommitment] = struct{}{}
}

// LpCommitmentCleared returns if the "lp_commitment" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) LpCommitmentCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldLpCommitment]
	return ok
}

// ResetLpCommitment resets all changes to the "lp_commitment" field.
func (m *CapitalCallDetailMutation) ResetLpCommitment() {
	m.lp_commitment = nil
	m.addlp_commitment = nil
	delete(m.clearedFields, capitalcalldetail.FieldLpCommitment)
}

// SetRemainingCommitment sets the "remaining_commitment" field.
func (m *CapitalCallDetailMutation) SetRemainingCommitment(f float64) {
	m.remaining_commitment = &f
	m.addremaining_commitment = nil
}

// RemainingCommitment returns the value of the "remaining_commitment" field in the mutation.
func (m *CapitalCallDetailMutation) RemainingCommitment() (r float64, exists bool) {
	v := m.remaining_commitment
	if v == nil {
		return
	}
	return *v, true
}

// OldRemainingCommitment returns the old "remaining_commitment" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldRemainingCommitment(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemainingCommitment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemainingCommitment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemainingCommitment: %w", err)
	}
	return oldValue.RemainingCommitment, nil
}

// AddRemainingCommitment adds f to the "remaining_commitment" field.
func (m *CapitalCallDetailMutation) AddRemainingCommitment(f float64) {
	if m.addremaining_commitment != nil {
		*m.addremaining_commitment += f
	} else {
		m.addremaining_commitment = &f
	}
}

// AddedRemainingCommitment returns the value that was added to the "remaining_commitment" field in this mutation.
func (m *CapitalCallDetailMutation) AddedRemainingCommitment() (r float64, exists bool) {
	v := m.addremaining_commitment
	if v == nil {
		return
	}
	return *v, true
}

// ClearRemainingCommitment clears the value of the "remaining_commitment" field.
func (m *CapitalCallDetailMutation) ClearRemainingCommitment() {
	m.remaining_commitment = nil
	m.addremaining_commitment = nil
	m.clearedFields[capitalcalldetail.FieldRemainingCommitment] = struct{}{}
}

// RemainingCommitmentCleared returns if the "remaining_commitment" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) RemainingCommitmentCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldRemainingCommitment]
	return ok
}

// ResetRemainingCommitment resets all changes to the "remaining_commitment" field.
func (m *CapitalCallDetailMutation) ResetRemainingCommitment() {
	m.remaining_commitment = nil
	m.addremaining_commitment = nil
	delete(m.clearedFields, capitalcalldetail.FieldRemainingCommitment)
}

// SetPaymentInstructions sets the "payment_instructions" field.
func (m *CapitalCallDetailMutation) SetPaymentInstructions(s string) {
	m.payment_instructions = &s
}

// PaymentInstructions returns the value of the "payment_instructions" field in the mutation.
func (m *CapitalCallDetailMutation) PaymentInstructions() (r string, exists bool) {
	v := m.payment_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentInstructions returns the old "payment_instructions" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldPaymentInstructions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentInstructions: %w", err)
	}
	return oldValue.PaymentInstructions, nil
}

// ClearPaymentInstructions clears the value of the "payment_instructions" field.
func (m *CapitalCallDetailMutation) ClearPaymentInstructions() {
	m.payment_instructions = nil
	m.clearedFields[capitalcalldetail.FieldPaymentInstructions] = struct{}{}
}

// PaymentInstructionsCleared returns if the "payment_instructions" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) PaymentInstructionsCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldPaymentInstructions]
	return ok
}

// ResetPaymentInstructions resets all changes to the "payment_instructions" field.
func (m *CapitalCallDetailMutation) ResetPaymentInstructions() {
	m.payment_instructions = nil
	delete(m.clearedFields, capitalcalldetail.FieldPaymentInstructions)
}

// SetWireTransferInfo sets the "wire_transfer_info" field.
func (m *CapitalCallDetailMutation) SetWireTransferInfo(value map[string]string) {
	m.wire_transfer_info = &value
}

// WireTransferInfo returns the value of the "wire_transfer_info" field in the mutation.
func (m *CapitalCallDetailMutation) WireTransferInfo() (r map[string]string, exists bool) {
	v := m.wire_transfer_info
	if v == nil {
		return
	}
	return *v, true
}

// OldWireTransferInfo returns the old "wire_transfer_info" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldWireTransferInfo(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWireTransferInfo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWireTransferInfo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWireTransferInfo: %w", err)
	}
	return oldValue.WireTransferInfo, nil
}

// ClearWireTransferInfo clears the value of the "wire_transfer_info" field.
func (m *CapitalCallDetailMutation) ClearWireTransferInfo() {
	m.wire_transfer_info = nil
	m.clearedFields[capitalcalldetail.FieldWireTransferInfo] = struct{}{}
}

// WireTransferInfoCleared returns if the "wire_transfer_info" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) WireTransferInfoCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldWireTransferInfo]
	return ok
}

// ResetWireTransferInfo resets all changes to the "wire_transfer_info" field.
func (m *CapitalCallDetailMutation) ResetWireTransferInfo() {
	m.wire_transfer_info = nil
	delete(m.clearedFields, capitalcalldetail.FieldWireTransferInfo)
}

// SetNotes sets the "notes" field.
func (m *CapitalCallDetailMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *CapitalCallDetailMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *CapitalCallDetailMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[capitalcalldetail.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) NotesCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *CapitalCallDetailMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, capitalcalldetail.FieldNotes)
}

// SetExtractedData sets the "extracted_data" field.
func (m *CapitalCallDetailMutation) SetExtractedData(jm json.RawMessage) {
	m.extracted_data = &jm
	m.appendextracted_data = nil
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *CapitalCallDetailMutation) ExtractedData() (r json.RawMessage, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldExtractedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// AppendExtractedData adds jm to the "extracted_data" field.
func (m *CapitalCallDetailMutation) AppendExtractedData(jm json.RawMessage) {
	m.appendextracted_data = append(m.appendextracted_data, jm...)
}

// AppendedExtractedData returns the list of values that were appended to the "extracted_data" field in this mutation.
func (m *CapitalCallDetailMutation) AppendedExtractedData() (json.RawMessage, bool) {
	if len(m.appendextracted_data) == 0 {
		return nil, false
	}
	return m.appendextracted_data, true
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *CapitalCallDetailMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	m.clearedFields[capitalcalldetail.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *CapitalCallDetailMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[capitalcalldetail.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *CapitalCallDetailMutation) ResetExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	delete(m.clearedFields, capitalcalldetail.FieldExtractedData)
}

// SetCreatedAt sets the "created_at" field.
func (m *CapitalCallDetailMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CapitalCallDetailMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CapitalCallDetailMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CapitalCallDetailMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CapitalCallDetailMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CapitalCallDetail entity.
// If the CapitalCallDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CapitalCallDetailMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CapitalCallDetailMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *CapitalCallDetailMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[capitalcalldetail.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *CapitalCallDetailMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *CapitalCallDetailMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *CapitalCallDetailMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the CapitalCallDetailMutation builder.
func (m *CapitalCallDetailMutation) Where(ps ...predicate.CapitalCallDetail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CapitalCallDetailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CapitalCallDetailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CapitalCallDetail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CapitalCallDetailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CapitalCallDetailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CapitalCallDetail).
func (m *CapitalCallDetailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CapitalCallDetailMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.document != nil {
		fields = append(fields, capitalcalldetail.FieldDocumentID)
	}
	if m.call_date != nil {
		fields = append(fields, capitalcalldetail.FieldCallDate)
	}
	if m.due_date != nil {
		fields = append(fields, capitalcalldetail.FieldDueDate)
	}
	if m.call_amount != nil {
		fields = append(fields, capitalcalldetail.FieldCallAmount)
	}
	if m.currency != nil {
		fields = append(fields, capitalcalldetail.FieldCurrency)
	}
	if m.call_percentage != nil {
		fields = append(fields, capitalcalldetail.FieldCallPercentage)
	}
	if m.fund_name != nil {
		fields = append(fields, capitalcalldetail.FieldFundName)
	}
	if m.fund_size != nil {
		fields = append(fields, capitalcalldetail.FieldFundSize)
	}
	if m.lp_name != nil {
		fields = append(fields, capitalcalldetail.FieldLpName)
	}
	if m.lp_commitment != nil {
		fields = append(fields, capitalcalldetail.FieldLpCommitment)
	}
	if m.remaining_commitment != nil {
		fields = append(fields, capitalcalldetail.FieldRemainingCommitment)
	}
	if m.payment_instructions != nil {
		fields = append(fields, capitalcalldetail.FieldPaymentInstructions)
	}
	if m.wire_transfer_info != nil {
		fields = append(fields, capitalcalldetail.FieldWireTransferInfo)
	}
	if m.notes != nil {
		fields = append(fields, capitalcalldetail.FieldNotes)
	}
	if m.extracted_data != nil {
		fields = append(fields, capitalcalldetail.FieldExtractedData)
	}
	if m.created_at != nil {
		fields = append(fields, capitalcalldetail.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, capitalcalldetail.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CapitalCallDetailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case capitalcalldetail.FieldDocumentID:
		return m.DocumentID()
	case capitalcalldetail.FieldCallDate:
		return m.CallDate()
	case capitalcalldetail.FieldDueDate:
		return m.DueDate()
	case capitalcalldetail.FieldCallAmount:
		return m.CallAmount()
	case capitalcalldetail.FieldCurrency:
		return m.Currency()
	case capitalcalldetail.FieldCallPercentage:
		return m.CallPercentage()
	case capitalcalldetail.FieldFundName:
		return m.FundName()
	case capitalcalldetail.FieldFundSize:
		return m.FundSize()
	case capitalcalldetail.FieldLpName:
		return m.LpName()
	case capitalcalldetail.FieldLpCommitment:
		return m.LpCommitment()
	case capitalcalldetail.FieldRemainingCommitment:
		return m.RemainingCommitment()
	case capitalcalldetail.FieldPaymentInstructions:
		return m.PaymentInstructions()
	case capitalcalldetail.FieldWireTransferInfo:
		return m.WireTransferInfo()
	case capitalcalldetail.FieldNotes:
		return m.Notes()
	case capitalcalldetail.FieldExtractedData:
		return m.ExtractedData()
	case capitalcalldetail.FieldCreatedAt:
		return m.CreatedAt()
	case capitalcalldetail.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CapitalCallDetailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case capitalcalldetail.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case capitalcalldetail.FieldCallDate:
		return m.OldCallDate(ctx)
	case capitalcalldetail.FieldDueDate:
		return m.OldDueDate(ctx)
	case capitalcalldetail.FieldCallAmount:
		return m.OldCallAmount(ctx)
	case capitalcalldetail.FieldCurrency:
		return m.OldCurrency(ctx)
	case capitalcalldetail.FieldCallPercentage:
		return m.OldCallPercentage(ctx)
	case capitalcalldetail.FieldFundName:
		return m.OldFundName(ctx)
	case capitalcalldetail.FieldFundSize:
		return m.OldFundSize(ctx)
	case capitalcalldetail.FieldLpName:
		return m.OldLpName(ctx)
	case capitalcalldetail.FieldLpCommitment:
		return m.OldLpCommitment(ctx)
	case capitalcalldetail.FieldRemainingCommitment:
		return m.OldRemainingCommitment(ctx)
	case capitalcalldetail.FieldPaymentInstructions:
		return m.OldPaymentInstructions(ctx)
	case capitalcalldetail.FieldWireTransferInfo:
		return m.OldWireTransferInfo(ctx)
	case capitalcalldetail.FieldNotes:
		return m.OldNotes(ctx)
	case capitalcalldetail.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case capitalcalldetail.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case capitalcalldetail.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CapitalCallDetail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CapitalCallDetailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case capitalcalldetail.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case capitalcalldetail.FieldCallDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallDate(v)
		return nil
	case capitalcalldetail.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case capitalcalldetail.FieldCallAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallAmount(v)
		return nil
	case capitalcalldetail.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case capitalcalldetail.FieldCallPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallPercentage(v)
		return nil
	case capitalcalldetail.FieldFundName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFundName(v)
		return nil
	case capitalcalldetail.FieldFundSize:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFundSize(v)
		return nil
	case capitalcalldetail.FieldLpName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLpName(v)
		return nil
	case capitalcalldetail.FieldLpCommitment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLpCommitment(v)
		return nil
	case capitalcalldetail.FieldRemainingCommitment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemainingCommitment(v)
		return nil
	case capitalcalldetail.FieldPaymentInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentInstructions(v)
		return nil
	case capitalcalldetail.FieldWireTransferInfo:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWireTransferInfo(v)
		return nil
	case capitalcalldetail.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case capitalcalldetail.FieldExtractedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case capitalcalldetail.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case capitalcalldetail.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CapitalCallDetail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CapitalCallDetailMutation) AddedFields() []string {
	var fields []string
	if m.addcall_amount != nil {
		fields = append(fields, capitalcalldetail.FieldCallAmount)
	}
	if m.addcall_percentage != nil {
		fields = append(fields, capitalcalldetail.FieldCallPercentage)
	}
	if m.addfund_size != nil {
		fields = append(fields, capitalcalldetail.FieldFundSize)
	}
	if m.addlp_commitment != nil {
		fields = append(fields, capitalcalldetail.FieldLpCommitment)
	}
	if m.addremaining_commitment != nil {
		fields = append(fields, capitalcalldetail.FieldRemainingCommitment)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CapitalCallDetailMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case capitalcalldetail.FieldCallAmount:
		return m.AddedCallAmount()
	case capitalcalldetail.FieldCallPercentage:
		return m.AddedCallPercentage()
	case capitalcalldetail.FieldFundSize:
		return m.AddedFundSize()
	case capitalcalldetail.FieldLpCommitment:
		return m.AddedLpCommitment()
	case capitalcalldetail.FieldRemainingCommitment:
		return m.AddedRemainingCommitment()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CapitalCallDetailMutation) AddField(name string, value ent.Value) error {
	switch name {
	case capitalcalldetail.FieldCallAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCallAmount(v)
		return nil
	case capitalcalldetail.FieldCallPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCallPercentage(v)
		return nil
	case capitalcalldetail.FieldFundSize:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFundSize(v)
		return nil
	case capitalcalldetail.FieldLpCommitment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLpCommitment(v)
		return nil
	case capitalcalldetail.FieldRemainingCommitment:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRemainingCommitment(v)
		return nil
	}
	return fmt.Errorf("unknown CapitalCallDetail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CapitalCallDetailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(capitalcalldetail.FieldCallDate) {
		fields = append(fields, capitalcalldetail.FieldCallDate)
	}
	if m.FieldCleared(capitalcalldetail.FieldDueDate) {
		fields = append(fields, capitalcalldetail.FieldDueDate)
	}
	if m.FieldCleared(capitalcalldetail.FieldCallAmount) {
		fields = append(fields, capitalcalldetail.FieldCallAmount)
	}
	if m.FieldCleared(capitalcalldetail.FieldCurrency) {
		fields = append(fields, capitalcalldetail.FieldCurrency)
	}
	if m.FieldCleared(capitalcalldetail.FieldCallPercentage) {
		fields = append(fields, capitalcalldetail.FieldCallPercentage)
	}
	if m.FieldCleared(capitalcalldetail.FieldFundName) {
		fields = append(fields, capitalcalldetail.FieldFundName)
	}
	if m.FieldCleared(capitalcalldetail.FieldFundSize) {
		fields = append(fields, capitalcalldetail.FieldFundSize)
	}
	if m.FieldCleared(capitalcalldetail.FieldLpName) {
		fields = append(fields, capitalcalldetail.FieldLpName)
	}
	if m.FieldCleared(capitalcalldetail.FieldLpCommitment) {
		fields = append(fields, capitalcalldetail.FieldLpCommitment)
	}
	if m.FieldCleared(capitalcalldetail.FieldRemainingCommitment) {
		fields = append(fields, capitalcalldetail.FieldRemainingCommitment)
	}
	if m.FieldCleared(capitalcalldetail.FieldPaymentInstructions) {
		fields = append(fields, capitalcalldetail.FieldPaymentInstructions)
	}
	if m.FieldCleared(capitalcalldetail.FieldWireTransferInfo) {
		fields = append(fields, capitalcalldetail.FieldWireTransferInfo)
	}
	if m.FieldCleared(capitalcalldetail.FieldNotes) {
		fields = append(fields, capitalcalldetail.FieldNotes)
	}
	if m.FieldCleared(capitalcalldetail.FieldExtractedData) {
		fields = append(fields, capitalcalldetail.FieldExtractedData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CapitalCallDetailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CapitalCallDetailMutation) ClearField(name string) error {
	switch name {
	case capitalcalldetail.FieldCallDate:
		m.ClearCallDate()
		return nil
	case capitalcalldetail.FieldDueDate:
		m.ClearDueDate()
		return nil
	case capitalcalldetail.FieldCallAmount:
		m.ClearCallAmount()
		return nil
	case capitalcalldetail.FieldCurrency:
		m.ClearCurrency()
		return nil
	case capitalcalldetail.FieldCallPercentage:
		m.ClearCallPercentage()
		return nil
	case capitalcalldetail.FieldFundName:
		m.ClearFundName()
		return nil
	case capitalcalldetail.FieldFundSize:
		m.ClearFundSize()
		return nil
	case capitalcalldetail.FieldLpName:
		m.ClearLpName()
		return nil
	case capitalcalldetail.FieldLpCommitment:
		m.ClearLpCommitment()
		return nil
	case capitalcalldetail.FieldRemainingCommitment:
		m.ClearRemainingCommitment()
		return nil
	case capitalcalldetail.FieldPaymentInstructions:
		m.ClearPaymentInstructions()
		return nil
	case capitalcalldetail.FieldWireTransferInfo:
		m.ClearWireTransferInfo()
		return nil
	case capitalcalldetail.FieldNotes:
		m.ClearNotes()
		return nil
	case capitalcalldetail.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	}
	return fmt.Errorf("unknown CapitalCallDetail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CapitalCallDetailMutation) ResetField(name string) error {
	switch name {
	case capitalcalldetail.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case capitalcalldetail.FieldCallDate:
		m.ResetCallDate()
		return nil
	case capitalcalldetail.FieldDueDate:
		m.ResetDueDate()
		return nil
	case capitalcalldetail.FieldCallAmount:
		m.ResetCallAmount()
		return nil
	case capitalcalldetail.FieldCurrency:
		m.ResetCurrency()
		return nil
	case capitalcalldetail.FieldCallPercentage:
		m.ResetCallPercentage()
		return nil
	case capitalcalldetail.FieldFundName:
		m.ResetFundName()
		return nil
	case capitalcalldetail.FieldFundSize:
		m.ResetFundSize()
		return nil
	case capitalcalldetail.FieldLpName:
		m.ResetLpName()
		return nil
	case capitalcalldetail.FieldLpCommitment:
		m.ResetLpCommitment()
		return nil
	case capitalcalldetail.FieldRemainingCommitment:
		m.ResetRemainingCommitment()
		return nil
	case capitalcalldetail.FieldPaymentInstructions:
		m.ResetPaymentInstructions()
		return nil
	case capitalcalldetail.FieldWireTransferInfo:
		m.ResetWireTransferInfo()
		return nil
	case capitalcalldetail.FieldNotes:
		m.ResetNotes()
		return nil
	case capitalcalldetail.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case capitalcalldetail.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case capitalcalldetail.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CapitalCallDetail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CapitalCallDetailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, capitalcalldetail.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CapitalCallDetailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case capitalcalldetail.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CapitalCallDetailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CapitalCallDetailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CapitalCallDetailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, capitalcalldetail.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CapitalCallDetailMutation) EdgeCleared(name string) bool {
	switch name {
	case capitalcalldetail.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CapitalCallDetailMutation) ClearEdge(name string) error {
	switch name {
	case capitalcalldetail.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown CapitalCallDetail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CapitalCallDetailMutation) ResetEdge(name string) error {
	switch name {
	case capitalcalldetail.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown CapitalCallDetail edge %s", name)
}

// DistributionDetailMutation represents an operation that mutates the DistributionDetail nodes in the graph.
type DistributionDetailMutation struct {
	config
	op                        Op
	typ                       string
	id                        *uuid.UUID
	distribution_date         *time.Time
	record_date               *time.Time
	distribution_amount       *float64
	adddistribution_amount    *float64
	currency                  *string
	distribution_per_unit     *float64
	adddistribution_per_unit  *float64
	fund_name                 *string
	fund_nav                  *float64
	addfund_nav               *float64
	total_distributions       *float64
	addtotal_distributions    *float64
	lp_name                   *string
	lp_units                  *float64
	addlp_units               *float64
	lp_distribution_amount    *float64
	addlp_distribution_amount *float64
	irr                       *float64
	addirr                    *float64
	multiple                  *float64
	addmultiple               *float64
	payment_method            *string
	payment_instructions      *string
	notes                     *string
	extracted_data            *json.RawMessage
	appendextracted_data      json.RawMessage
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	document                  *uuid.UUID
	cleareddocument           bool
	done                      bool
	oldValue                  func(context.Context) (*DistributionDetail, error)
	predicates                []predicate.DistributionDetail
}

var _ ent.Mutation = (*DistributionDetailMutation)(nil)

// distributiondetailOption allows management of the mutation configuration using functional options.
type distributiondetailOption func(*DistributionDetailMutation)

// newDistributionDetailMutation creates new mutation for the DistributionDetail entity.
func newDistributionDetailMutation(c config, op Op, opts ...distributiondetailOption) *DistributionDetailMutation {
	m := &DistributionDetailMutation{
		config:        c,
		op:            op,
		typ:           TypeDistributionDetail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDistributionDetailID sets the ID field of the mutation.
func withDistributionDetailID(id uuid.UUID) distributiondetailOption {
	return func(m *DistributionDetailMutation) {
		var (
			err   error
			once  sync.Once
			value *DistributionDetail
		)
		m.oldValue = func(ctx context.Context) (*DistributionDetail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DistributionDetail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDistributionDetail sets the old DistributionDetail of the mutation.
func withDistributionDetail(node *DistributionDetail) distributiondetailOption {
	return func(m *DistributionDetailMutation) {
		m.oldValue = func(context.Context) (*DistributionDetail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DistributionDetailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DistributionDetailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DistributionDetail entities.
func (m *DistributionDetailMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DistributionDetailMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DistributionDetailMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DistributionDetail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DistributionDetailMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DistributionDetailMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DistributionDetailMutation) ResetDocumentID() {
	m.document = nil
}

// SetDistributionDate sets the "distribution_date" field.
func (m *DistributionDetailMutation) SetDistributionDate(t time.Time) {
	m.distribution_date = &t
}

// DistributionDate returns the value of the "distribution_date" field in the mutation.
func (m *DistributionDetailMutation) DistributionDate() (r time.Time, exists bool) {
	v := m.distribution_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDistributionDate returns the old "distribution_date" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldDistributionDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistributionDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistributionDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistributionDate: %w", err)
	}
	return oldValue.DistributionDate, nil
}

// ClearDistributionDate clears the value of the "distribution_date" field.
func (m *DistributionDetailMutation) ClearDistributionDate() {
	m.distribution_date = nil
	m.clearedFields[distributiondetail.FieldDistributionDate] = struct{}{}
}

// DistributionDateCleared returns if the "distribution_date" field was cleared in this mutation.
func (m *DistributionDetailMutation) DistributionDateCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldDistributionDate]
	return ok
}

// ResetDistributionDate resets all changes to the "distribution_date" field.
func (m *DistributionDetailMutation) ResetDistributionDate() {
	m.distribution_date = nil
	delete(m.clearedFields, distributiondetail.FieldDistributionDate)
}

// SetRecordDate sets the "record_date" field.
func (m *DistributionDetailMutation) SetRecordDate(t time.Time) {
	m.record_date = &t
}

// RecordDate returns the value of the "record_date" field in the mutation.
func (m *DistributionDetailMutation) RecordDate() (r time.Time, exists bool) {
	v := m.record_date
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordDate returns the old "record_date" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldRecordDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordDate: %w", err)
	}
	return oldValue.RecordDate, nil
}

// ClearRecordDate clears the value of the "record_date" field.
func (m *DistributionDetailMutation) ClearRecordDate() {
	m.record_date = nil
	m.clearedFields[distributiondetail.FieldRecordDate] = struct{}{}
}

// RecordDateCleared returns if the "record_date" field was cleared in this mutation.
func (m *DistributionDetailMutation) RecordDateCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldRecordDate]
	return ok
}

// ResetRecordDate resets all changes to the "record_date" field.
func (m *DistributionDetailMutation) ResetRecordDate() {
	m.record_date = nil
	delete(m.clearedFields, distributiondetail.FieldRecordDate)
}

// SetDistributionAmount sets the "distribution_amount" field.
func (m *DistributionDetailMutation) SetDistributionAmount(f float64) {
	m.distribution_amount = &f
	m.adddistribution_amount = nil
}

// DistributionAmount returns the value of the "distribution_amount" field in the mutation.
func (m *DistributionDetailMutation) DistributionAmount() (r float64, exists bool) {
	v := m.distribution_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldDistributionAmount returns the old "distribution_amount" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldDistributionAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistributionAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistributionAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistributionAmount: %w", err)
	}
	return oldValue.DistributionAmount, nil
}

// AddDistributionAmount adds f to the "distribution_amount" field.
func (m *DistributionDetailMutation) AddDistributionAmount(f float64) {
	if m.adddistribution_amount != nil {
		*m.adddistribution_amount += f
	} else {
		m.adddistribution_amount = &f
	}
}

// AddedDistributionAmount returns the value that was added to the "distribution_amount" field in this mutation.
func (m *DistributionDetailMutation) AddedDistributionAmount() (r float64, exists bool) {
	v := m.adddistribution_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearDistributionAmount clears the value of the "distribution_amount" field.
func (m *DistributionDetailMutation) ClearDistributionAmount() {
	m.distribution_amount = nil
	m.adddistribution_amount = nil
	m.clearedFields[distributiondetail.FieldDistributionAmount] = struct{}{}
}

// DistributionAmountCleared returns if the "distribution_amount" field was cleared in this mutation.
func (m *DistributionDetailMutation) DistributionAmountCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldDistributionAmount]
	return ok
}

// ResetDistributionAmount resets all changes to the "distribution_amount" field.
func (m *DistributionDetailMutation) ResetDistributionAmount() {
	m.distribution_amount = nil
	m.adddistribution_amount = nil
	delete(m.clearedFields, distributiondetail.FieldDistributionAmount)
}

// SetCurrency sets the "currency" field.
func (m *DistributionDetailMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *DistributionDetailMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldCurrency(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ClearCurrency clears the value of the "currency" field.
func (m *DistributionDetailMutation) ClearCurrency() {
	m.currency = nil
	m.clearedFields[distributiondetail.FieldCurrency] = struct{}{}
}

// CurrencyCleared returns if the "currency" field was cleared in this mutation.
func (m *DistributionDetailMutation) CurrencyCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldCurrency]
	return ok
}

// ResetCurrency resets all changes to the "currency" field.
func (m *DistributionDetailMutation) ResetCurrency() {
	m.currency = nil
	delete(m.clearedFields, distributiondetail.FieldCurrency)
}

// SetDistributionPerUnit sets the "distribution_per_unit" field.
func (m *DistributionDetailMutation) SetDistributionPerUnit(f float64) {
	m.distribution_per_unit = &f
	m.adddistribution_per_unit = nil
}

// DistributionPerUnit returns the value of the "distribution_per_unit" field in the mutation.
func (m *DistributionDetailMutation) DistributionPerUnit() (r float64, exists bool) {
	v := m.distribution_per_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldDistributionPerUnit returns the old "distribution_per_unit" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldDistributionPerUnit(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistributionPerUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistributionPerUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistributionPerUnit: %w", err)
	}
	return oldValue.DistributionPerUnit, nil
}

// AddDistributionPerUnit adds f to the "distribution_per_unit" field.
func (m *DistributionDetailMutation) AddDistributionPerUnit(f float64) {
	if m.adddistribution_per_unit != nil {
		*m.adddistribution_per_unit += f
	} else {
		m.adddistribution_per_unit = &f
	}
}

// AddedDistributionPerUnit returns the value that was added to the "distribution_per_unit" field in this mutation.
func (m *DistributionDetailMutation) AddedDistributionPerUnit() (r float64, exists bool) {
	v := m.adddistribution_per_unit
	if v == nil {
		return
	}
	return *v, true
}

// ClearDistributionPerUnit clears the value of the "distribution_per_unit" field.
func (m *DistributionDetailMutation) ClearDistributionPerUnit() {
	m.distribution_per_unit = nil
	m.adddistribution_per_unit = nil
	m.clearedFields[distributiondetail.FieldDistributionPerUnit] = struct{}{}
}

// DistributionPerUnitCleared returns if the "distribution_per_unit" field was cleared in this mutation.
func (m *DistributionDetailMutation) DistributionPerUnitCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldDistributionPerUnit]
	return ok
}

// ResetDistributionPerUnit resets all changes to the "distribution_per_unit" field.
func (m *DistributionDetailMutation) ResetDistributionPerUnit() {
	m.distribution_per_unit = nil
	m.adddistribution_per_unit = nil
	delete(m.clearedFields, distributiondetail.FieldDistributionPerUnit)
}

// SetFundName sets the "fund_name" field.
func (m *DistributionDetailMutation) SetFundName(s string) {
	m.fund_name = &s
}

// FundName returns the value of the "fund_name" field in the mutation.
func (m *DistributionDetailMutation) FundName() (r string, exists bool) {
	v := m.fund_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFundName returns the old "fund_name" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldFundName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFundName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFundName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFundName: %w", err)
	}
	return oldValue.FundName, nil
}

// ClearFundName clears the value of the "fund_name" field.
func (m *DistributionDetailMutation) ClearFundName() {
	m.fund_name = nil
	m.clearedFields[distributiondetail.FieldFundName] = struct{}{}
}

// FundNameCleared returns if the "fund_name" field was cleared in this mutation.
func (m *DistributionDetailMutation) FundNameCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldFundName]
	return ok
}

// ResetFundName resets all changes to the "fund_name" field.
func (m *DistributionDetailMutation) ResetFundName() {
	m.fund_name = nil
	delete(m.clearedFields, distributiondetail.FieldFundName)
}

// SetFundNav sets the "fund_nav" field.
func (m *DistributionDetailMutation) SetFundNav(f float64) {
	m.fund_nav = &f
	m.addfund_nav = nil
}

// FundNav returns the value of the "fund_nav" field in the mutation.
func (m *DistributionDetailMutation) FundNav() (r float64, exists bool) {
	v := m.fund_nav
	if v == nil {
		return
	}
	return *v, true
}

// OldFundNav returns the old "fund_nav" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldFundNav(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFundNav is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFundNav requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFundNav: %w", err)
	}
	return oldValue.FundNav, nil
}

// AddFundNav adds f to the "fund_nav" field.
func (m *DistributionDetailMutation) AddFundNav(f float64) {
	if m.addfund_nav != nil {
		*m.addfund_nav += f
	} else {
		m.addfund_nav = &f
	}
}

// AddedFundNav returns the value that was added to the "fund_nav" field in this mutation.
func (m *DistributionDetailMutation) AddedFundNav() (r float64, exists bool) {
	v := m.addfund_nav
	if v == nil {
		return
	}
	return *v, true
}

// ClearFundNav clears the value of the "fund_nav" field.
func (m *DistributionDetailMutation) ClearFundNav() {
	m.fund_nav = nil
	m.addfund_nav = nil
	m.clearedFields[distributiondetail.FieldFundNav] = struct{}{}
}

// FundNavCleared returns if the "fund_nav" field was cleared in this mutation.
func (m *DistributionDetailMutation) FundNavCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldFundNav]
	return ok
}

// ResetFundNav resets all changes to the "fund_nav" field.
func (m *DistributionDetailMutation) ResetFundNav() {
	m.fund_nav = nil
	m.addfund_nav = nil
	delete(m.clearedFields, distributiondetail.FieldFundNav)
}

// SetTotalDistributions sets the "total_distributions" field.
func (m *DistributionDetailMutation) SetTotalDistributions(f float64) {
	m.total_distributions = &f
	m.addtotal_distributions = nil
}

// TotalDistributions returns the value of the "total_distributions" field in the mutation.
func (m *DistributionDetailMutation) TotalDistributions() (r float64, exists bool) {
	v := m.total_distributions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalDistributions returns the old "total_distributions" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldTotalDistributions(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalDistributions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalDistributions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalDistributions: %w", err)
	}
	return oldValue.TotalDistributions, nil
}

// AddTotalDistributions adds f to the "total_distributions" field.
func (m *DistributionDetailMutation) AddTotalDistributions(f float64) {
	if m.addtotal_distributions != nil {
		*m.addtotal_distributions += f
	} else {
		m.addtotal_distributions = &f
	}
}

// AddedTotalDistributions returns the value that was added to the "total_distributions" field in this mutation.
func (m *DistributionDetailMutation) AddedTotalDistributions() (r float64, exists bool) {
	v := m.addtotal_distributions
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalDistributions clears the value of the "total_distributions" field.
func (m *DistributionDetailMutation) ClearTotalDistributions() {
	m.total_distributions = nil
	m.addtotal_distributions = nil
	m.clearedFields[distributiondetail.FieldTotalDistributions] = struct{}{}
}

// TotalDistributionsCleared returns if the "total_distributions" field was cleared in this mutation.
func (m *DistributionDetailMutation) TotalDistributionsCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldTotalDistributions]
	return ok
}

// ResetTotalDistributions resets all changes to the "total_distributions" field.
func (m *DistributionDetailMutation) ResetTotalDistributions() {
	m.total_distributions = nil
	m.addtotal_distributions = nil
	delete(m.clearedFields, distributiondetail.FieldTotalDistributions)
}

// SetLpName sets the "lp_name" field.
func (m *DistributionDetailMutation) SetLpName(s string) {
	m.lp_name = &s
}

// LpName returns the value of the "lp_name" field in the mutation.
func (m *DistributionDetailMutation) LpName() (r string, exists bool) {
	v := m.lp_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLpName returns the old "lp_name" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldLpName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLpName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLpName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLpName: %w", err)
	}
	return oldValue.LpName, nil
}

// ClearLpName clears the value of the "lp_name" field.
func (m *DistributionDetailMutation) ClearLpName() {
	m.lp_name = nil
	m.clearedFields[distributiondetail.FieldLpName] = struct{}{}
}

// LpNameCleared returns if the "lp_name" field was cleared in this mutation.
func (m *DistributionDetailMutation) LpNameCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldLpName]
	return ok
}

// ResetLpName resets all changes to the "lp_name" field.
func (m *DistributionDetailMutation) ResetLpName() {
	m.lp_name = nil
	delete(m.clearedFields, distributiondetail.FieldLpName)
}

// SetLpUnits sets the "lp_units" field.
func (m *DistributionDetailMutation) SetLpUnits(f float64) {
	m.lp_units = &f
	m.addlp_units = nil
}

// LpUnits returns the value of the "lp_units" field in the mutation.
func (m *DistributionDetailMutation) LpUnits() (r float64, exists bool) {
	v := m.lp_units
	if v == nil {
		return
	}
	return *v, true
}

// OldLpUnits returns the old "lp_units" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldLpUnits(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLpUnits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLpUnits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLpUnits: %w", err)
	}
	return oldValue.LpUnits, nil
}

// AddLpUnits adds f to the "lp_units" field.
func (m *DistributionDetailMutation) AddLpUnits(f float64) {
	if m.addlp_units != nil {
		*m.addlp_units += f
	} else {
		m.addlp_units = &f
	}
}

// AddedLpUnits returns the value that was added to the "lp_units" field in this mutation.
func (m *DistributionDetailMutation) AddedLpUnits() (r float64, exists bool) {
	v := m.addlp_units
	if v == nil {
		return
	}
	return *v, true
}

// ClearLpUnits clears the value of the "lp_units" field.
func (m *DistributionDetailMutation) ClearLpUnits() {
	m.lp_units = nil
	m.addlp_units = nil
	m.clearedFields[distributiondetail.FieldLpUnits] = struct{}{}
}

// LpUnitsCleared returns if the "lp_units" field was cleared in this mutation.
func (m *DistributionDetailMutation) LpUnitsCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldLpUnits]
	return ok
}

// ResetLpUnits resets all changes to the "lp_units" field.
func (m *DistributionDetailMutation) ResetLpUnits() {
	m.lp_units = nil
	m.addlp_units = nil
	delete(m.clearedFields, distributiondetail.FieldLpUnits)
}

// SetLpDistributionAmount sets the "lp_distribution_amount" field.
func (m *DistributionDetailMutation) SetLpDistributionAmount(f float64) {
	m.lp_distribution_amount = &f
	m.addlp_distribution_amount = nil
}

// LpDistributionAmount returns the value of the "lp_distribution_amount" field in the mutation.
func (m *DistributionDetailMutation) LpDistributionAmount() (r float64, exists bool) {
	v := m.lp_distribution_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldLpDistributionAmount returns the old "lp_distribution_amount" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldLpDistributionAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLpDistributionAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLpDistributionAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLpDistributionAmount: %w", err)
	}
	return oldValue.LpDistributionAmount, nil
}

// AddLpDistributionAmount adds f to the "lp_distribution_amount" field.
func (m *DistributionDetailMutation) AddLpDistributionAmount(f float64) {
	if m.addlp_distribution_amount != nil {
		*m.addlp_distribution_amount += f
	} else {
		m.addlp_distribution_amount = &f
	}
}

// AddedLpDistributionAmount returns the value that was added to the "lp_distribution_amount" field in this mutation.
func (m *DistributionDetailMutation) AddedLpDistributionAmount() (r float64, exists bool) {
	v := m.addlp_distribution_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearLpDistributionAmount clears the value of the "lp_distribution_amount" field.
func (m *DistributionDetailMutation) ClearLpDistributionAmount() {
	m.lp_distribution_amount = nil
	m.addlp_distribution_amount = nil
	m.clearedFields[distributiondetail.FieldLpDistributionAmount] = struct{}{}
}

// LpDistributionAmountCleared returns if the "lp_distribution_amount" field was cleared in this mutation.
func (m *DistributionDetailMutation) LpDistributionAmountCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldLpDistributionAmount]
	return ok
}

// ResetLpDistributionAmount resets all changes to the "lp_distribution_amount" field.
func (m *DistributionDetailMutation) ResetLpDistributionAmount() {
	m.lp_distribution_amount = nil
	m.addlp_distribution_amount = nil
	delete(m.clearedFields, distributiondetail.FieldLpDistributionAmount)
}

// SetIrr sets the "irr" field.
func (m *DistributionDetailMutation) SetIrr(f float64) {
	m.irr = &f
	m.addirr = nil
}

// Irr returns the value of the "irr" field in the mutation.
func (m *DistributionDetailMutation) Irr() (r float64, exists bool) {
	v := m.irr
	if v == nil {
		return
	}
	return *v, true
}

// OldIrr returns the old "irr" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldIrr(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIrr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIrr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIrr: %w", err)
	}
	return oldValue.Irr, nil
}

// AddIrr adds f to the "irr" field.
func (m *DistributionDetailMutation) AddIrr(f float64) {
	if m.addirr != nil {
		*m.addirr += f
	} else {
		m.addirr = &f
	}
}

// AddedIrr returns the value that was added to the "irr" field in this mutation.
func (m *DistributionDetailMutation) AddedIrr() (r float64, exists bool) {
	v := m.addirr
	if v == nil {
		return
	}
	return *v, true
}

// ClearIrr clears the value of the "irr" field.
func (m *DistributionDetailMutation) ClearIrr() {
	m.irr = nil
	m.addirr = nil
	m.clearedFields[distributiondetail.FieldIrr] = struct{}{}
}

// IrrCleared returns if the "irr" field was cleared in this mutation.
func (m *DistributionDetailMutation) IrrCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldIrr]
	return ok
}

// ResetIrr resets all changes to the "irr" field.
func (m *DistributionDetailMutation) ResetIrr() {
	m.irr = nil
	m.addirr = nil
	delete(m.clearedFields, distributiondetail.FieldIrr)
}

// SetMultiple sets the "multiple" field.
func (m *DistributionDetailMutation) SetMultiple(f float64) {
	m.multiple = &f
	m.addmultiple = nil
}

// Multiple returns the value of the "multiple" field in the mutation.
func (m *DistributionDetailMutation) Multiple() (r float64, exists bool) {
	v := m.multiple
	if v == nil {
		return
	}
	return *v, true
}

// OldMultiple returns the old "multiple" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldMultiple(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMultiple is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMultiple requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMultiple: %w", err)
	}
	return oldValue.Multiple, nil
}

// AddMultiple adds f to the "multiple" field.
func (m *DistributionDetailMutation) AddMultiple(f float64) {
	if m.addmultiple != nil {
		*m.addmultiple += f
	} else {
		m.addmultiple = &f
	}
}

// AddedMultiple returns the value that was added to the "multiple" field in this mutation.
func (m *DistributionDetailMutation) AddedMultiple() (r float64, exists bool) {
	v := m.addmultiple
	if v == nil {
		return
	}
	return *v, true
}

// ClearMultiple clears the value of the "multiple" field.
func (m *DistributionDetailMutation) ClearMultiple() {
	m.multiple = nil
	m.addmultiple = nil
	m.clearedFields[distributiondetail.FieldMultiple] = struct{}{}
}

// MultipleCleared returns if the "multiple" field was cleared in this mutation.
func (m *DistributionDetailMutation) MultipleCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldMultiple]
	return ok
}

// ResetMultiple resets all changes to the "multiple" field.
func (m *DistributionDetailMutation) ResetMultiple() {
	m.multiple = nil
	m.addmultiple = nil
	delete(m.clearedFields, distributiondetail.FieldMultiple)
}

// SetPaymentMethod sets the "payment_method" field.
func (m *DistributionDetailMutation) SetPaymentMethod(s string) {
	m.payment_method = &s
}

// PaymentMethod returns the value of the "payment_method" field in the mutation.
func (m *DistributionDetailMutation) PaymentMethod() (r string, exists bool) {
	v := m.payment_method
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentMethod returns the old "payment_method" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldPaymentMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentMethod: %w", err)
	}
	return oldValue.PaymentMethod, nil
}

// ClearPaymentMethod clears the value of the "payment_method" field.
func (m *DistributionDetailMutation) ClearPaymentMethod() {
	m.payment_method = nil
	m.clearedFields[distributiondetail.FieldPaymentMethod] = struct{}{}
}

// PaymentMethodCleared returns if the "payment_method" field was cleared in this mutation.
func (m *DistributionDetailMutation) PaymentMethodCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldPaymentMethod]
	return ok
}

// ResetPaymentMethod resets all changes to the "payment_method" field.
func (m *DistributionDetailMutation) ResetPaymentMethod() {
	m.payment_method = nil
	delete(m.clearedFields, distributiondetail.FieldPaymentMethod)
}

// SetPaymentInstructions sets the "payment_instructions" field.
func (m *DistributionDetailMutation) SetPaymentInstructions(s string) {
	m.payment_instructions = &s
}

// PaymentInstructions returns the value of the "payment_instructions" field in the mutation.
func (m *DistributionDetailMutation) PaymentInstructions() (r string, exists bool) {
	v := m.payment_instructions
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentInstructions returns the old "payment_instructions" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldPaymentInstructions(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentInstructions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentInstructions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentInstructions: %w", err)
	}
	return oldValue.PaymentInstructions, nil
}

// ClearPaymentInstructions clears the value of the "payment_instructions" field.
func (m *DistributionDetailMutation) ClearPaymentInstructions() {
	m.payment_instructions = nil
	m.clearedFields[distributiondetail.FieldPaymentInstructions] = struct{}{}
}

// PaymentInstructionsCleared returns if the "payment_instructions" field was cleared in this mutation.
func (m *DistributionDetailMutation) PaymentInstructionsCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldPaymentInstructions]
	return ok
}

// ResetPaymentInstructions resets all changes to the "payment_instructions" field.
func (m *DistributionDetailMutation) ResetPaymentInstructions() {
	m.payment_instructions = nil
	delete(m.clearedFields, distributiondetail.FieldPaymentInstructions)
}

// SetNotes sets the "notes" field.
func (m *DistributionDetailMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *DistributionDetailMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *DistributionDetailMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[distributiondetail.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *DistributionDetailMutation) NotesCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *DistributionDetailMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, distributiondetail.FieldNotes)
}

// SetExtractedData sets the "extracted_data" field.
func (m *DistributionDetailMutation) SetExtractedData(jm json.RawMessage) {
	m.extracted_data = &jm
	m.appendextracted_data = nil
}

// ExtractedData returns the value of the "extracted_data" field in the mutation.
func (m *DistributionDetailMutation) ExtractedData() (r json.RawMessage, exists bool) {
	v := m.extracted_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedData returns the old "extracted_data" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldExtractedData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedData: %w", err)
	}
	return oldValue.ExtractedData, nil
}

// AppendExtractedData adds jm to the "extracted_data" field.
func (m *DistributionDetailMutation) AppendExtractedData(jm json.RawMessage) {
	m.appendextracted_data = append(m.appendextracted_data, jm...)
}

// AppendedExtractedData returns the list of values that were appended to the "extracted_data" field in this mutation.
func (m *DistributionDetailMutation) AppendedExtractedData() (json.RawMessage, bool) {
	if len(m.appendextracted_data) == 0 {
		return nil, false
	}
	return m.appendextracted_data, true
}

// ClearExtractedData clears the value of the "extracted_data" field.
func (m *DistributionDetailMutation) ClearExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	m.clearedFields[distributiondetail.FieldExtractedData] = struct{}{}
}

// ExtractedDataCleared returns if the "extracted_data" field was cleared in this mutation.
func (m *DistributionDetailMutation) ExtractedDataCleared() bool {
	_, ok := m.clearedFields[distributiondetail.FieldExtractedData]
	return ok
}

// ResetExtractedData resets all changes to the "extracted_data" field.
func (m *DistributionDetailMutation) ResetExtractedData() {
	m.extracted_data = nil
	m.appendextracted_data = nil
	delete(m.clearedFields, distributiondetail.FieldExtractedData)
}

// SetCreatedAt sets the "created_at" field.
func (m *DistributionDetailMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DistributionDetailMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DistributionDetailMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DistributionDetailMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DistributionDetailMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DistributionDetail entity.
// If the DistributionDetail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DistributionDetailMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DistributionDetailMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DistributionDetailMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[distributiondetail.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DistributionDetailMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DistributionDetailMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DistributionDetailMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the DistributionDetailMutation builder.
func (m *DistributionDetailMutation) Where(ps ...predicate.DistributionDetail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DistributionDetailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DistributionDetailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DistributionDetail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DistributionDetailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DistributionDetailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DistributionDetail).
func (m *DistributionDetailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DistributionDetailMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.document != nil {
		fields = append(fields, distributiondetail.FieldDocumentID)
	}
	if m.distribution_date != nil {
		fields = append(fields, distributiondetail.FieldDistributionDate)
	}
	if m.record_date != nil {
		fields = append(fields, distributiondetail.FieldRecordDate)
	}
	if m.distribution_amount != nil {
		fields = append(fields, distributiondetail.FieldDistributionAmount)
	}
	if m.currency != nil {
		fields = append(fields, distributiondetail.FieldCurrency)
	}
	if m.distribution_per_unit != nil {
		fields = append(fields, distributiondetail.FieldDistributionPerUnit)
	}
	if m.fund_name != nil {
		fields = append(fields, distributiondetail.FieldFundName)
	}
	if m.fund_nav != nil {
		fields = append(fields, distributiondetail.FieldFundNav)
	}
	if m.total_distributions != nil {
		fields = append(fields, distributiondetail.FieldTotalDistributions)
	}
	if m.lp_name != nil {
		fields = append(fields, distributiondetail.FieldLpName)
	}
	if m.lp_units != nil {
		fields = append(fields, distributiondetail.FieldLpUnits)
	}
	if m.lp_distribution_amount != nil {
		fields = append(fields, distributiondetail.FieldLpDistributionAmount)
	}
	if m.irr != nil {
		fields = append(fields, distributiondetail.FieldIrr)
	}
	if m.multiple != nil {
		fields = append(fields, distributiondetail.FieldMultiple)
	}
	if m.payment_method != nil {
		fields = append(fields, distributiondetail.FieldPaymentMethod)
	}
	if m.payment_instructions != nil {
		fields = append(fields, distributiondetail.FieldPaymentInstructions)
	}
	if m.notes != nil {
		fields = append(fields, distributiondetail.FieldNotes)
	}
	if m.extracted_data != nil {
		fields = append(fields, distributiondetail.FieldExtractedData)
	}
	if m.created_at != nil {
		fields = append(fields, distributiondetail.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, distributiondetail.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DistributionDetailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case distributiondetail.FieldDocumentID:
		return m.DocumentID()
	case distributiondetail.FieldDistributionDate:
		return m.DistributionDate()
	case distributiondetail.FieldRecordDate:
		return m.RecordDate()
	case distributiondetail.FieldDistributionAmount:
		return m.DistributionAmount()
	case distributiondetail.FieldCurrency:
		return m.Currency()
	case distributiondetail.FieldDistributionPerUnit:
		return m.DistributionPerUnit()
	case distributiondetail.FieldFundName:
		return m.FundName()
	case distributiondetail.FieldFundNav:
		return m.FundNav()
	case distributiondetail.FieldTotalDistributions:
		return m.TotalDistributions()
	case distributiondetail.FieldLpName:
		return m.LpName()
	case distributiondetail.FieldLpUnits:
		return m.LpUnits()
	case distributiondetail.FieldLpDistributionAmount:
		return m.LpDistributionAmount()
	case distributiondetail.FieldIrr:
		return m.Irr()
	case distributiondetail.FieldMultiple:
		return m.Multiple()
	case distributiondetail.FieldPaymentMethod:
		return m.PaymentMethod()
	case distributiondetail.FieldPaymentInstructions:
		return m.PaymentInstructions()
	case distributiondetail.FieldNotes:
		return m.Notes()
	case distributiondetail.FieldExtractedData:
		return m.ExtractedData()
	case distributiondetail.FieldCreatedAt:
		return m.CreatedAt()
	case distributiondetail.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DistributionDetailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case distributiondetail.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case distributiondetail.FieldDistributionDate:
		return m.OldDistributionDate(ctx)
	case distributiondetail.FieldRecordDate:
		return m.OldRecordDate(ctx)
	case distributiondetail.FieldDistributionAmount:
		return m.OldDistributionAmount(ctx)
	case distributiondetail.FieldCurrency:
		return m.OldCurrency(ctx)
	case distributiondetail.FieldDistributionPerUnit:
		return m.OldDistributionPerUnit(ctx)
	case distributiondetail.FieldFundName:
		return m.OldFundName(ctx)
	case distributiondetail.FieldFundNav:
		return m.OldFundNav(ctx)
	case distributiondetail.FieldTotalDistributions:
		return m.OldTotalDistributions(ctx)
	case distributiondetail.FieldLpName:
		return m.OldLpName(ctx)
	case distributiondetail.FieldLpUnits:
		return m.OldLpUnits(ctx)
	case distributiondetail.FieldLpDistributionAmount:
		return m.OldLpDistributionAmount(ctx)
	case distributiondetail.FieldIrr:
		return m.OldIrr(ctx)
	case distributiondetail.FieldMultiple:
		return m.OldMultiple(ctx)
	case distributiondetail.FieldPaymentMethod:
		return m.OldPaymentMethod(ctx)
	case distributiondetail.FieldPaymentInstructions:
		return m.OldPaymentInstructions(ctx)
	case distributiondetail.FieldNotes:
		return m.OldNotes(ctx)
	case distributiondetail.FieldExtractedData:
		return m.OldExtractedData(ctx)
	case distributiondetail.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case distributiondetail.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DistributionDetail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributionDetailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case distributiondetail.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case distributiondetail.FieldDistributionDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistributionDate(v)
		return nil
	case distributiondetail.FieldRecordDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordDate(v)
		return nil
	case distributiondetail.FieldDistributionAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistributionAmount(v)
		return nil
	case distributiondetail.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case distributiondetail.FieldDistributionPerUnit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistributionPerUnit(v)
		return nil
	case distributiondetail.FieldFundName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFundName(v)
		return nil
	case distributiondetail.FieldFundNav:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFundNav(v)
		return nil
	case distributiondetail.FieldTotalDistributions:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalDistributions(v)
		return nil
	case distributiondetail.FieldLpName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLpName(v)
		return nil
	case distributiondetail.FieldLpUnits:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLpUnits(v)
		return nil
	case distributiondetail.FieldLpDistributionAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLpDistributionAmount(v)
		return nil
	case distributiondetail.FieldIrr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIrr(v)
		return nil
	case distributiondetail.FieldMultiple:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMultiple(v)
		return nil
	case distributiondetail.FieldPaymentMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentMethod(v)
		return nil
	case distributiondetail.FieldPaymentInstructions:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentInstructions(v)
		return nil
	case distributiondetail.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case distributiondetail.FieldExtractedData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedData(v)
		return nil
	case distributiondetail.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case distributiondetail.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DistributionDetail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DistributionDetailMutation) AddedFields() []string {
	var fields []string
	if m.adddistribution_amount != nil {
		fields = append(fields, distributiondetail.FieldDistributionAmount)
	}
	if m.adddistribution_per_unit != nil {
		fields = append(fields, distributiondetail.FieldDistributionPerUnit)
	}
	if m.addfund_nav != nil {
		fields = append(fields, distributiondetail.FieldFundNav)
	}
	if m.addtotal_distributions != nil {
		fields = append(fields, distributiondetail.FieldTotalDistributions)
	}
	if m.addlp_units != nil {
		fields = append(fields, distributiondetail.FieldLpUnits)
	}
	if m.addlp_distribution_amount != nil {
		fields = append(fields, distributiondetail.FieldLpDistributionAmount)
	}
	if m.addirr != nil {
		fields = append(fields, distributiondetail.FieldIrr)
	}
	if m.addmultiple != nil {
		fields = append(fields, distributiondetail.FieldMultiple)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DistributionDetailMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case distributiondetail.FieldDistributionAmount:
		return m.AddedDistributionAmount()
	case distributiondetail.FieldDistributionPerUnit:
		return m.AddedDistributionPerUnit()
	case distributiondetail.FieldFundNav:
		return m.AddedFundNav()
	case distributiondetail.FieldTotalDistributions:
		return m.AddedTotalDistributions()
	case distributiondetail.FieldLpUnits:
		return m.AddedLpUnits()
	case distributiondetail.FieldLpDistributionAmount:
		return m.AddedLpDistributionAmount()
	case distributiondetail.FieldIrr:
		return m.AddedIrr()
	case distributiondetail.FieldMultiple:
		return m.AddedMultiple()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DistributionDetailMutation) AddField(name string, value ent.Value) error {
	switch name {
	case distributiondetail.FieldDistributionAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistributionAmount(v)
		return nil
	case distributiondetail.FieldDistributionPerUnit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistributionPerUnit(v)
		return nil
	case distributiondetail.FieldFundNav:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFundNav(v)
		return nil
	case distributiondetail.FieldTotalDistributions:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalDistributions(v)
		return nil
	case distributiondetail.FieldLpUnits:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLpUnits(v)
		return nil
	case distributiondetail.FieldLpDistributionAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLpDistributionAmount(v)
		return nil
	case distributiondetail.FieldIrr:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIrr(v)
		return nil
	case distributiondetail.FieldMultiple:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMultiple(v)
		return nil
	}
	return fmt.Errorf("unknown DistributionDetail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DistributionDetailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(distributiondetail.FieldDistributionDate) {
		fields = append(fields, distributiondetail.FieldDistributionDate)
	}
	if m.FieldCleared(distributiondetail.FieldRecordDate) {
		fields = append(fields, distributiondetail.FieldRecordDate)
	}
	if m.FieldCleared(distributiondetail.FieldDistributionAmount) {
		fields = append(fields, distributiondetail.FieldDistributionAmount)
	}
	if m.FieldCleared(distributiondetail.FieldCurrency) {
		fields = append(fields, distributiondetail.FieldCurrency)
	}
	if m.FieldCleared(distributiondetail.FieldDistributionPerUnit) {
		fields = append(fields, distributiondetail.FieldDistributionPerUnit)
	}
	if m.FieldCleared(distributiondetail.FieldFundName) {
		fields = append(fields, distributiondetail.FieldFundName)
	}
	if m.FieldCleared(distributiondetail.FieldFundNav) {
		fields = append(fields, distributiondetail.FieldFundNav)
	}
	if m.FieldCleared(distributiondetail.FieldTotalDistributions) {
		fields = append(fields, distributiondetail.FieldTotalDistributions)
	}
	if m.FieldCleared(distributiondetail.FieldLpName) {
		fields = append(fields, distributiondetail.FieldLpName)
	}
	if m.FieldCleared(distributiondetail.FieldLpUnits) {
		fields = append(fields, distributiondetail.FieldLpUnits)
	}
	if m.FieldCleared(distributiondetail.FieldLpDistributionAmount) {
		fields = append(fields, distributiondetail.FieldLpDistributionAmount)
	}
	if m.FieldCleared(distributiondetail.FieldIrr) {
		fields = append(fields, distributiondetail.FieldIrr)
	}
	if m.FieldCleared(distributiondetail.FieldMultiple) {
		fields = append(fields, distributiondetail.FieldMultiple)
	}
	if m.FieldCleared(distributiondetail.FieldPaymentMethod) {
		fields = append(fields, distributiondetail.FieldPaymentMethod)
	}
	if m.FieldCleared(distributiondetail.FieldPaymentInstructions) {
		fields = append(fields, distributiondetail.FieldPaymentInstructions)
	}
	if m.FieldCleared(distributiondetail.FieldNotes) {
		fields = append(fields, distributiondetail.FieldNotes)
	}
	if m.FieldCleared(distributiondetail.FieldExtractedData) {
		fields = append(fields, distributiondetail.FieldExtractedData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DistributionDetailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DistributionDetailMutation) ClearField(name string) error {
	switch name {
	case distributiondetail.FieldDistributionDate:
		m.ClearDistributionDate()
		return nil
	case distributiondetail.FieldRecordDate:
		m.ClearRecordDate()
		return nil
	case distributiondetail.FieldDistributionAmount:
		m.ClearDistributionAmount()
		return nil
	case distributiondetail.FieldCurrency:
		m.ClearCurrency()
		return nil
	case distributiondetail.FieldDistributionPerUnit:
		m.ClearDistributionPerUnit()
		return nil
	case distributiondetail.FieldFundName:
		m.ClearFundName()
		return nil
	case distributiondetail.FieldFundNav:
		m.ClearFundNav()
		return nil
	case distributiondetail.FieldTotalDistributions:
		m.ClearTotalDistributions()
		return nil
	case distributiondetail.FieldLpName:
		m.ClearLpName()
		return nil
	case distributiondetail.FieldLpUnits:
		m.ClearLpUnits()
		return nil
	case distributiondetail.FieldLpDistributionAmount:
		m.ClearLpDistributionAmount()
		return nil
	case distributiondetail.FieldIrr:
		m.ClearIrr()
		return nil
	case distributiondetail.FieldMultiple:
		m.ClearMultiple()
		return nil
	case distributiondetail.FieldPaymentMethod:
		m.ClearPaymentMethod()
		return nil
	case distributiondetail.FieldPaymentInstructions:
		m.ClearPaymentInstructions()
		return nil
	case distributiondetail.FieldNotes:
		m.ClearNotes()
		return nil
	case distributiondetail.FieldExtractedData:
		m.ClearExtractedData()
		return nil
	}
	return fmt.Errorf("unknown DistributionDetail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DistributionDetailMutation) ResetField(name string) error {
	switch name {
	case distributiondetail.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case distributiondetail.FieldDistributionDate:
		m.ResetDistributionDate()
		return nil
	case distributiondetail.FieldRecordDate:
		m.ResetRecordDate()
		return nil
	case distributiondetail.FieldDistributionAmount:
		m.ResetDistributionAmount()
		return nil
	case distributiondetail.FieldCurrency:
		m.ResetCurrency()
		return nil
	case distributiondetail.FieldDistributionPerUnit:
		m.ResetDistributionPerUnit()
		return nil
	case distributiondetail.FieldFundName:
		m.ResetFundName()
		return nil
	case distributiondetail.FieldFundNav:
		m.ResetFundNav()
		return nil
	case distributiondetail.FieldTotalDistributions:
		m.ResetTotalDistributions()
		return nil
	case distributiondetail.FieldLpName:
		m.ResetLpName()
		return nil
	case distributiondetail.FieldLpUnits:
		m.ResetLpUnits()
		return nil
	case distributiondetail.FieldLpDistributionAmount:
		m.ResetLpDistributionAmount()
		return nil
	case distributiondetail.FieldIrr:
		m.ResetIrr()
		return nil
	case distributiondetail.FieldMultiple:
		m.ResetMultiple()
		return nil
	case distributiondetail.FieldPaymentMethod:
		m.ResetPaymentMethod()
		return nil
	case distributiondetail.FieldPaymentInstructions:
		m.ResetPaymentInstructions()
		return nil
	case distributiondetail.FieldNotes:
		m.ResetNotes()
		return nil
	case distributiondetail.FieldExtractedData:
		m.ResetExtractedData()
		return nil
	case distributiondetail.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case distributiondetail.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DistributionDetail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DistributionDetailMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, distributiondetail.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DistributionDetailMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case distributiondetail.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DistributionDetailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DistributionDetailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DistributionDetailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, distributiondetail.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DistributionDetailMutation) EdgeCleared(name string) bool {
	switch name {
	case distributiondetail.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DistributionDetailMutation) ClearEdge(name string) error {
	switch name {
	case distributiondetail.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown DistributionDetail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DistributionDetailMutation) ResetEdge(name string) error {
	switch name {
	case distributiondetail.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown DistributionDetail edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	filename                   *string
	original_filename          *string
	file_path                  *string
	file_size                  *int
	addfile_size               *int
	mime_type                  *string
	format                     *string
	status                     *string
	category                   *string
	fund_name                  *string
	fund_id                    *string
	normalized_text            *string
	ocr_text                   *string
	structured_tree            *json.RawMessage
	appendstructured_tree      json.RawMessage
	extraction_confidence      *float32
	addextraction_confidence   *float32
	created_at                 *time.Time
	updated_at                 *time.Time
	processed_at               *time.Time
	clearedFields              map[string]struct{}
	capital_call_detail        *uuid.UUID
	clearedcapital_call_detail bool
	distribution_detail        *uuid.UUID
	cleareddistribution_detail bool
	logs                       map[uuid.UUID]struct{}
	removedlogs                map[uuid.UUID]struct{}
	clearedlogs                bool
	done                       bool
	oldValue                   func(context.Context) (*Document, error)
	predicates                 []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetOriginalFilename sets the "original_filename" field.
func (m *DocumentMutation) SetOriginalFilename(s string) {
	m.original_filename = &s
}

// OriginalFilename returns the value of the "original_filename" field in the mutation.
func (m *DocumentMutation) OriginalFilename() (r string, exists bool) {
	v := m.original_filename
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalFilename returns the old "original_filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOriginalFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalFilename: %w", err)
	}
	return oldValue.OriginalFilename, nil
}

// ResetOriginalFilename resets all changes to the "original_filename" field.
func (m *DocumentMutation) ResetOriginalFilename() {
	m.original_filename = nil
}

// SetFilePath sets the "file_path" field.
func (m *DocumentMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *DocumentMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *DocumentMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetMimeType sets the "mime_type" field.
func (m *DocumentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *DocumentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *DocumentMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetFormat sets the "format" field.
func (m *DocumentMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *DocumentMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *DocumentMutation) ResetFormat() {
	m.format = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetCategory sets the "category" field.
func (m *DocumentMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *DocumentMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *DocumentMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[document.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *DocumentMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[document.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *DocumentMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, document.FieldCategory)
}

// SetFundName sets the "fund_name" field.
func (m *DocumentMutation) SetFundName(s string) {
	m.fund_name = &s
}

// FundName returns the value of the "fund_name" field in the mutation.
func (m *DocumentMutation) FundName() (r string, exists bool) {
	v := m.fund_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFundName returns the old "fund_name" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFundName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFundName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFundName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFundName: %w", err)
	}
	return oldValue.FundName, nil
}

// ClearFundName clears the value of the "fund_name" field.
func (m *DocumentMutation) ClearFundName() {
	m.fund_name = nil
	m.clearedFields[document.FieldFundName] = struct{}{}
}

// FundNameCleared returns if the "fund_name" field was cleared in this mutation.
func (m *DocumentMutation) FundNameCleared() bool {
	_, ok := m.clearedFields[document.FieldFundName]
	return ok
}

// ResetFundName resets all changes to the "fund_name" field.
func (m *DocumentMutation) ResetFundName() {
	m.fund_name = nil
	delete(m.clearedFields, document.FieldFundName)
}

// SetFundID sets the "fund_id" field.
func (m *DocumentMutation) SetFundID(s string) {
	m.fund_id = &s
}

// FundID returns the value of the "fund_id" field in the mutation.
func (m *DocumentMutation) FundID() (r string, exists bool) {
	v := m.fund_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFundID returns the old "fund_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFundID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFundID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFundID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFundID: %w", err)
	}
	return oldValue.FundID, nil
}

// ClearFundID clears the value of the "fund_id" field.
func (m *DocumentMutation) ClearFundID() {
	m.fund_id = nil
	m.clearedFields[document.FieldFundID] = struct{}{}
}

// FundIDCleared returns if the "fund_id" field was cleared in this mutation.
func (m *DocumentMutation) FundIDCleared() bool {
	_, ok := m.clearedFields[document.FieldFundID]
	return ok
}

// ResetFundID resets all changes to the "fund_id" field.
func (m *DocumentMutation) ResetFundID() {
	m.fund_id = nil
	delete(m.clearedFields, document.FieldFundID)
}

// SetNormalizedText sets the "normalized_text" field.
func (m *DocumentMutation) SetNormalizedText(s string) {
	m.normalized_text = &s
}

// NormalizedText returns the value of the "normalized_text" field in the mutation.
func (m *DocumentMutation) NormalizedText() (r string, exists bool) {
	v := m.normalized_text
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedText returns the old "normalized_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldNormalizedText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedText: %w", err)
	}
	return oldValue.NormalizedText, nil
}

// ClearNormalizedText clears the value of the "normalized_text" field.
func (m *DocumentMutation) ClearNormalizedText() {
	m.normalized_text = nil
	m.clearedFields[document.FieldNormalizedText] = struct{}{}
}

// NormalizedTextCleared returns if the "normalized_text" field was cleared in this mutation.
func (m *DocumentMutation) NormalizedTextCleared() bool {
	_, ok := m.clearedFields[document.FieldNormalizedText]
	return ok
}

// ResetNormalizedText resets all changes to the "normalized_text" field.
func (m *DocumentMutation) ResetNormalizedText() {
	m.normalized_text = nil
	delete(m.clearedFields, document.FieldNormalizedText)
}

// SetOcrText sets the "ocr_text" field.
func (m *DocumentMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *DocumentMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *DocumentMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[document.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *DocumentMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[document.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *DocumentMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, document.FieldOcrText)
}

// SetStructuredTree sets the "structured_tree" field.
func (m *DocumentMutation) SetStructuredTree(jm json.RawMessage) {
	m.structured_tree = &jm
	m.appendstructured_tree = nil
}

// StructuredTree returns the value of the "structured_tree" field in the mutation.
func (m *DocumentMutation) StructuredTree() (r json.RawMessage, exists bool) {
	v := m.structured_tree
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredTree returns the old "structured_tree" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStructuredTree(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredTree is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredTree requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredTree: %w", err)
	}
	return oldValue.StructuredTree, nil
}

// AppendStructuredTree adds jm to the "structured_tree" field.
func (m *DocumentMutation) AppendStructuredTree(jm json.RawMessage) {
	m.appendstructured_tree = append(m.appendstructured_tree, jm...)
}

// AppendedStructuredTree returns the list of values that were appended to the "structured_tree" field in this mutation.
func (m *DocumentMutation) AppendedStructuredTree() (json.RawMessage, bool) {
	if len(m.appendstructured_tree) == 0 {
		return nil, false
	}
	return m.appendstructured_tree, true
}

// ClearStructuredTree clears the value of the "structured_tree" field.
func (m *DocumentMutation) ClearStructuredTree() {
	m.structured_tree = nil
	m.appendstructured_tree = nil
	m.clearedFields[document.FieldStructuredTree] = struct{}{}
}

// StructuredTreeCleared returns if the "structured_tree" field was cleared in this mutation.
func (m *DocumentMutation) StructuredTreeCleared() bool {
	_, ok := m.clearedFields[document.FieldStructuredTree]
	return ok
}

// ResetStructuredTree resets all changes to the "structured_tree" field.
func (m *DocumentMutation) ResetStructuredTree() {
	m.structured_tree = nil
	m.appendstructured_tree = nil
	delete(m.clearedFields, document.FieldStructuredTree)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *DocumentMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *DocumentMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *DocumentMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *DocumentMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *DocumentMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[document.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *DocumentMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[document.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *DocumentMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, document.FieldExtractionConfidence)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[document.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, document.FieldProcessedAt)
}

// SetCapitalCallDetailID sets the "capital_call_detail" edge to the CapitalCallDetail entity by id.
func (m *DocumentMutation) SetCapitalCallDetailID(id uuid.UUID) {
	m.capital_call_detail = &id
}

// ClearCapitalCallDetail clears the "capital_call_detail" edge to the CapitalCallDetail entity.
func (m *DocumentMutation) ClearCapitalCallDetail() {
	m.clearedcapital_call_detail = true
}

// CapitalCallDetailCleared reports if the "capital_call_detail" edge to the CapitalCallDetail entity was cleared.
func (m *DocumentMutation) CapitalCallDetailCleared() bool {
	return m.clearedcapital_call_detail
}

// CapitalCallDetailID returns the "capital_call_detail" edge ID in the mutation.
func (m *DocumentMutation) CapitalCallDetailID() (id uuid.UUID, exists bool) {
	if m.capital_call_detail != nil {
		return *m.capital_call_detail, true
	}
	return
}

// CapitalCallDetailIDs returns the "capital_call_detail" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CapitalCallDetailID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) CapitalCallDetailIDs() (ids []uuid.UUID) {
	if id := m.capital_call_detail; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCapitalCallDetail resets all changes to the "capital_call_detail" edge.
func (m *DocumentMutation) ResetCapitalCallDetail() {
	m.capital_call_detail = nil
	m.clearedcapital_call_detail = false
}

// SetDistributionDetailID sets the "distribution_detail" edge to the DistributionDetail entity by id.
func (m *DocumentMutation) SetDistributionDetailID(id uuid.UUID) {
	m.distribution_detail = &id
}

// ClearDistributionDetail clears the "distribution_detail" edge to the DistributionDetail entity.
func (m *DocumentMutation) ClearDistributionDetail() {
	m.cleareddistribution_detail = true
}

// DistributionDetailCleared reports if the "distribution_detail" edge to the DistributionDetail entity was cleared.
func (m *DocumentMutation) DistributionDetailCleared() bool {
	return m.cleareddistribution_detail
}

// DistributionDetailID returns the "distribution_detail" edge ID in the mutation.
func (m *DocumentMutation) DistributionDetailID() (id uuid.UUID, exists bool) {
	if m.distribution_detail != nil {
		return *m.distribution_detail, true
	}
	return
}

// DistributionDetailIDs returns the "distribution_detail" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DistributionDetailID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) DistributionDetailIDs() (ids []uuid.UUID) {
	if id := m.distribution_detail; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDistributionDetail resets all changes to the "distribution_detail" edge.
func (m *DocumentMutation) ResetDistributionDetail() {
	m.distribution_detail = nil
	m.cleareddistribution_detail = false
}

// AddLogIDs adds the "logs" edge to the ProcessingLog entity by ids.
func (m *DocumentMutation) AddLogIDs(ids ...uuid.UUID) {
	if m.logs == nil {
		m.logs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.logs[ids[i]] = struct{}{}
	}
}

// ClearLogs clears the "logs" edge to the ProcessingLog entity.
func (m *DocumentMutation) ClearLogs() {
	m.clearedlogs = true
}

// LogsCleared reports if the "logs" edge to the ProcessingLog entity was cleared.
func (m *DocumentMutation) LogsCleared() bool {
	return m.clearedlogs
}

// RemoveLogIDs removes the "logs" edge to the ProcessingLog entity by IDs.
func (m *DocumentMutation) RemoveLogIDs(ids ...uuid.UUID) {
	if m.removedlogs == nil {
		m.removedlogs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.logs, ids[i])
		m.removedlogs[ids[i]] = struct{}{}
	}
}

// RemovedLogs returns the removed IDs of the "logs" edge to the ProcessingLog entity.
func (m *DocumentMutation) RemovedLogsIDs() (ids []uuid.UUID) {
	for id := range m.removedlogs {
		ids = append(ids, id)
	}
	return
}

// LogsIDs returns the "logs" edge IDs in the mutation.
func (m *DocumentMutation) LogsIDs() (ids []uuid.UUID) {
	for id := range m.logs {
		ids = append(ids, id)
	}
	return
}

// ResetLogs resets all changes to the "logs" edge.
func (m *DocumentMutation) ResetLogs() {
	m.logs = nil
	m.clearedlogs = false
	m.removedlogs = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.original_filename != nil {
		fields = append(fields, document.FieldOriginalFilename)
	}
	if m.file_path != nil {
		fields = append(fields, document.FieldFilePath)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.mime_type != nil {
		fields = append(fields, document.FieldMimeType)
	}
	if m.format != nil {
		fields = append(fields, document.FieldFormat)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.category != nil {
		fields = append(fields, document.FieldCategory)
	}
	if m.fund_name != nil {
		fields = append(fields, document.FieldFundName)
	}
	if m.fund_id != nil {
		fields = append(fields, document.FieldFundID)
	}
	if m.normalized_text != nil {
		fields = append(fields, document.FieldNormalizedText)
	}
	if m.ocr_text != nil {
		fields = append(fields, document.FieldOcrText)
	}
	if m.structured_tree != nil {
		fields = append(fields, document.FieldStructuredTree)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, document.FieldExtractionConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilename:
		return m.Filename()
	case document.FieldOriginalFilename:
		return m.OriginalFilename()
	case document.FieldFilePath:
		return m.FilePath()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldMimeType:
		return m.MimeType()
	case document.FieldFormat:
		return m.Format()
	case document.FieldStatus:
		return m.Status()
	case document.FieldCategory:
		return m.Category()
	case document.FieldFundName:
		return m.FundName()
	case document.FieldFundID:
		return m.FundID()
	case document.FieldNormalizedText:
		return m.NormalizedText()
	case document.FieldOcrText:
		return m.OcrText()
	case document.FieldStructuredTree:
		return m.StructuredTree()
	case document.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldOriginalFilename:
		return m.OldOriginalFilename(ctx)
	case document.FieldFilePath:
		return m.OldFilePath(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldMimeType:
		return m.OldMimeType(ctx)
	case document.FieldFormat:
		return m.OldFormat(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldCategory:
		return m.OldCategory(ctx)
	case document.FieldFundName:
		return m.OldFundName(ctx)
	case document.FieldFundID:
		return m.OldFundID(ctx)
	case document.FieldNormalizedText:
		return m.OldNormalizedText(ctx)
	case document.FieldOcrText:
		return m.OldOcrText(ctx)
	case document.FieldStructuredTree:
		return m.OldStructuredTree(ctx)
	case document.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldOriginalFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalFilename(v)
		return nil
	case document.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case document.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case document.FieldFundName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFundName(v)
		return nil
	case document.FieldFundID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFundID(v)
		return nil
	case document.FieldNormalizedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedText(v)
		return nil
	case document.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case document.FieldStructuredTree:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredTree(v)
		return nil
	case document.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.addextraction_confidence != nil {
		fields = append(fields, document.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	case document.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case document.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldCategory) {
		fields = append(fields, document.FieldCategory)
	}
	if m.FieldCleared(document.FieldFundName) {
		fields = append(fields, document.FieldFundName)
	}
	if m.FieldCleared(document.FieldFundID) {
		fields = append(fields, document.FieldFundID)
	}
	if m.FieldCleared(document.FieldNormalizedText) {
		fields = append(fields, document.FieldNormalizedText)
	}
	if m.FieldCleared(document.FieldOcrText) {
		fields = append(fields, document.FieldOcrText)
	}
	if m.FieldCleared(document.FieldStructuredTree) {
		fields = append(fields, document.FieldStructuredTree)
	}
	if m.FieldCleared(document.FieldExtractionConfidence) {
		fields = append(fields, document.FieldExtractionConfidence)
	}
	if m.FieldCleared(document.FieldProcessedAt) {
		fields = append(fields, document.FieldProcessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldCategory:
		m.ClearCategory()
		return nil
	case document.FieldFundName:
		m.ClearFundName()
		return nil
	case document.FieldFundID:
		m.ClearFundID()
		return nil
	case document.FieldNormalizedText:
		m.ClearNormalizedText()
		return nil
	case document.FieldOcrText:
		m.ClearOcrText()
		return nil
	case document.FieldStructuredTree:
		m.ClearStructuredTree()
		return nil
	case document.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case document.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldOriginalFilename:
		m.ResetOriginalFilename()
		return nil
	case document.FieldFilePath:
		m.ResetFilePath()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldMimeType:
		m.ResetMimeType()
		return nil
	case document.FieldFormat:
		m.ResetFormat()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldCategory:
		m.ResetCategory()
		return nil
	case document.FieldFundName:
		m.ResetFundName()
		return nil
	case document.FieldFundID:
		m.ResetFundID()
		return nil
	case document.FieldNormalizedText:
		m.ResetNormalizedText()
		return nil
	case document.FieldOcrText:
		m.ResetOcrText()
		return nil
	case document.FieldStructuredTree:
		m.ResetStructuredTree()
		return nil
	case document.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.capital_call_detail != nil {
		edges = append(edges, document.EdgeCapitalCallDetail)
	}
	if m.distribution_detail != nil {
		edges = append(edges, document.EdgeDistributionDetail)
	}
	if m.logs != nil {
		edges = append(edges, document.EdgeLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeCapitalCallDetail:
		if id := m.capital_call_detail; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeDistributionDetail:
		if id := m.distribution_detail; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.logs))
		for id := range m.logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedlogs != nil {
		edges = append(edges, document.EdgeLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.removedlogs))
		for id := range m.removedlogs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcapital_call_detail {
		edges = append(edges, document.EdgeCapitalCallDetail)
	}
	if m.cleareddistribution_detail {
		edges = append(edges, document.EdgeDistributionDetail)
	}
	if m.clearedlogs {
		edges = append(edges, document.EdgeLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeCapitalCallDetail:
		return m.clearedcapital_call_detail
	case document.EdgeDistributionDetail:
		return m.cleareddistribution_detail
	case document.EdgeLogs:
		return m.clearedlogs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeCapitalCallDetail:
		m.ClearCapitalCallDetail()
		return nil
	case document.EdgeDistributionDetail:
		m.ClearDistributionDetail()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeCapitalCallDetail:
		m.ResetCapitalCallDetail()
		return nil
	case document.EdgeDistributionDetail:
		m.ResetDistributionDetail()
		return nil
	case document.EdgeLogs:
		m.ResetLogs()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ProcessingLogMutation represents an operation that mutates the ProcessingLog nodes in the graph.
type ProcessingLogMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	log_level          *string
	message            *string
	step               *string
	processing_time    *float64
	addprocessing_time *float64
	created_at         *time.Time
	clearedFields      map[string]struct{}
	document           *uuid.UUID
	cleareddocument    bool
	done               bool
	oldValue           func(context.Context) (*ProcessingLog, error)
	predicates         []predicate.ProcessingLog
}

var _ ent.Mutation = (*ProcessingLogMutation)(nil)

// processinglogOption allows management of the mutation configuration using functional options.
type processinglogOption func(*ProcessingLogMutation)

// newProcessingLogMutation creates new mutation for the ProcessingLog entity.
func newProcessingLogMutation(c config, op Op, opts ...processinglogOption) *ProcessingLogMutation {
	m := &ProcessingLogMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingLogID sets the ID field of the mutation.
func withProcessingLogID(id uuid.UUID) processinglogOption {
	return func(m *ProcessingLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingLog
		)
		m.oldValue = func(ctx context.Context) (*ProcessingLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingLog sets the old ProcessingLog of the mutation.
func withProcessingLog(node *ProcessingLog) processinglogOption {
	return func(m *ProcessingLogMutation) {
		m.oldValue = func(context.Context) (*ProcessingLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingLog entities.
func (m *ProcessingLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ProcessingLogMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ProcessingLogMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ProcessingLogMutation) ResetDocumentID() {
	m.document = nil
}

// SetLogLevel sets the "log_level" field.
func (m *ProcessingLogMutation) SetLogLevel(s string) {
	m.log_level = &s
}

// LogLevel returns the value of the "log_level" field in the mutation.
func (m *ProcessingLogMutation) LogLevel() (r string, exists bool) {
	v := m.log_level
	if v == nil {
		return
	}
	return *v, true
}

// OldLogLevel returns the old "log_level" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldLogLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogLevel: %w", err)
	}
	return oldValue.LogLevel, nil
}

// ResetLogLevel resets all changes to the "log_level" field.
func (m *ProcessingLogMutation) ResetLogLevel() {
	m.log_level = nil
}

// SetMessage sets the "message" field.
func (m *ProcessingLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ProcessingLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ProcessingLogMutation) ResetMessage() {
	m.message = nil
}

// SetStep sets the "step" field.
func (m *ProcessingLogMutation) SetStep(s string) {
	m.step = &s
}

// Step returns the value of the "step" field in the mutation.
func (m *ProcessingLogMutation) Step() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStep returns the old "step" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldStep(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStep: %w", err)
	}
	return oldValue.Step, nil
}

// ClearStep clears the value of the "step" field.
func (m *ProcessingLogMutation) ClearStep() {
	m.step = nil
	m.clearedFields[processinglog.FieldStep] = struct{}{}
}

// StepCleared returns if the "step" field was cleared in this mutation.
func (m *ProcessingLogMutation) StepCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldStep]
	return ok
}

// ResetStep resets all changes to the "step" field.
func (m *ProcessingLogMutation) ResetStep() {
	m.step = nil
	delete(m.clearedFields, processinglog.FieldStep)
}

// SetProcessingTime sets the "processing_time" field.
func (m *ProcessingLogMutation) SetProcessingTime(f float64) {
	m.processing_time = &f
	m.addprocessing_time = nil
}

// ProcessingTime returns the value of the "processing_time" field in the mutation.
func (m *ProcessingLogMutation) ProcessingTime() (r float64, exists bool) {
	v := m.processing_time
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTime returns the old "processing_time" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldProcessingTime(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTime: %w", err)
	}
	return oldValue.ProcessingTime, nil
}

// AddProcessingTime adds f to the "processing_time" field.
func (m *ProcessingLogMutation) AddProcessingTime(f float64) {
	if m.addprocessing_time != nil {
		*m.addprocessing_time += f
	} else {
		m.addprocessing_time = &f
	}
}

// AddedProcessingTime returns the value that was added to the "processing_time" field in this mutation.
func (m *ProcessingLogMutation) AddedProcessingTime() (r float64, exists bool) {
	v := m.addprocessing_time
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingTime clears the value of the "processing_time" field.
func (m *ProcessingLogMutation) ClearProcessingTime() {
	m.processing_time = nil
	m.addprocessing_time = nil
	m.clearedFields[processinglog.FieldProcessingTime] = struct{}{}
}

// ProcessingTimeCleared returns if the "processing_time" field was cleared in this mutation.
func (m *ProcessingLogMutation) ProcessingTimeCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldProcessingTime]
	return ok
}

// ResetProcessingTime resets all changes to the "processing_time" field.
func (m *ProcessingLogMutation) ResetProcessingTime() {
	m.processing_time = nil
	m.addprocessing_time = nil
	delete(m.clearedFields, processinglog.FieldProcessingTime)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessingLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessingLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessingLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ProcessingLogMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[processinglog.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ProcessingLogMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ProcessingLogMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ProcessingLogMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ProcessingLogMutation builder.
func (m *ProcessingLogMutation) Where(ps ...predicate.ProcessingLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingLog).
func (m *ProcessingLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.document != nil {
		fields = append(fields, processinglog.FieldDocumentID)
	}
	if m.log_level != nil {
		fields = append(fields, processinglog.FieldLogLevel)
	}
	if m.message != nil {
		fields = append(fields, processinglog.FieldMessage)
	}
	if m.step != nil {
		fields = append(fields, processinglog.FieldStep)
	}
	if m.processing_time != nil {
		fields = append(fields, processinglog.FieldProcessingTime)
	}
	if m.created_at != nil {
		fields = append(fields, processinglog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldDocumentID:
		return m.DocumentID()
	case processinglog.FieldLogLevel:
		return m.LogLevel()
	case processinglog.FieldMessage:
		return m.Message()
	case processinglog.FieldStep:
		return m.Step()
	case processinglog.FieldProcessingTime:
		return m.ProcessingTime()
	case processinglog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processinglog.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case processinglog.FieldLogLevel:
		return m.OldLogLevel(ctx)
	case processinglog.FieldMessage:
		return m.OldMessage(ctx)
	case processinglog.FieldStep:
		return m.OldStep(ctx)
	case processinglog.FieldProcessingTime:
		return m.OldProcessingTime(ctx)
	case processinglog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case processinglog.FieldLogLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogLevel(v)
		return nil
	case processinglog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case processinglog.FieldStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStep(v)
		return nil
	case processinglog.FieldProcessingTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTime(v)
		return nil
	case processinglog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingLogMutation) AddedFields() []string {
	var fields []string
	if m.addprocessing_time != nil {
		fields = append(fields, processinglog.FieldProcessingTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldProcessingTime:
		return m.AddedProcessingTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldProcessingTime:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTime(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processinglog.FieldStep) {
		fields = append(fields, processinglog.FieldStep)
	}
	if m.FieldCleared(processinglog.FieldProcessingTime) {
		fields = append(fields, processinglog.FieldProcessingTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ClearField(name string) error {
	switch name {
	case processinglog.FieldStep:
		m.ClearStep()
		return nil
	case processinglog.FieldProcessingTime:
		m.ClearProcessingTime()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ResetField(name string) error {
	switch name {
	case processinglog.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case processinglog.FieldLogLevel:
		m.ResetLogLevel()
		return nil
	case processinglog.FieldMessage:
		m.ResetMessage()
		return nil
	case processinglog.FieldStep:
		m.ResetStep()
		return nil
	case processinglog.FieldProcessingTime:
		m.ResetProcessingTime()
		return nil
	case processinglog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, processinglog.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processinglog.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, processinglog.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingLogMutation) EdgeCleared(name string) bool {
	switch name {
	case processinglog.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingLogMutation) ClearEdge(name string) error {
	switch name {
	case processinglog.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingLogMutation) ResetEdge(name string) error {
	switch name {
	case processinglog.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog edge %s", name)
}

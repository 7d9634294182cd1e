// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/capitalcalldetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/distributiondetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/document"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/predicate"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/processinglog"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *DocumentUpdate) SetOriginalFilename(v string) *DocumentUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOriginalFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdate) SetFilePath(v string) *DocumentUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdate) SetFileSize(v int) *DocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileSize(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdate) AddFileSize(v int) *DocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *DocumentUpdate) SetMimeType(v string) *DocumentUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableMimeType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *DocumentUpdate) SetFormat(v string) *DocumentUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFormat(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DocumentUpdate) SetCategory(v string) *DocumentUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCategory(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DocumentUpdate) ClearCategory() *DocumentUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetFundName sets the "fund_name" field.
func (_u *DocumentUpdate) SetFundName(v string) *DocumentUpdate {
	_u.mutation.SetFundName(v)
	return _u
}

// SetNillableFundName sets the "fund_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFundName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFundName(*v)
	}
	return _u
}

// ClearFundName clears the value of the "fund_name" field.
func (_u *DocumentUpdate) ClearFundName() *DocumentUpdate {
	_u.mutation.ClearFundName()
	return _u
}

// SetFundID sets the "fund_id" field.
func (_u *DocumentUpdate) SetFundID(v string) *DocumentUpdate {
	_u.mutation.SetFundID(v)
	return _u
}

// SetNillableFundID sets the "fund_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFundID(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFundID(*v)
	}
	return _u
}

// ClearFundID clears the value of the "fund_id" field.
func (_u *DocumentUpdate) ClearFundID() *DocumentUpdate {
	_u.mutation.ClearFundID()
	return _u
}

// SetNormalizedText sets the "normalized_text" field.
func (_u *DocumentUpdate) SetNormalizedText(v string) *DocumentUpdate {
	_u.mutation.SetNormalizedText(v)
	return _u
}

// SetNillableNormalizedText sets the "normalized_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableNormalizedText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetNormalizedText(*v)
	}
	return _u
}

// ClearNormalizedText clears the value of the "normalized_text" field.
func (_u *DocumentUpdate) ClearNormalizedText() *DocumentUpdate {
	_u.mutation.ClearNormalizedText()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdate) SetOcrText(v string) *DocumentUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdate) ClearOcrText() *DocumentUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetStructuredTree sets the "structured_tree" field.
func (_u *DocumentUpdate) SetStructuredTree(v json.RawMessage) *DocumentUpdate {
	_u.mutation.SetStructuredTree(v)
	return _u
}

// AppendStructuredTree appends value to the "structured_tree" field.
func (_u *DocumentUpdate) AppendStructuredTree(v json.RawMessage) *DocumentUpdate {
	_u.mutation.AppendStructuredTree(v)
	return _u
}

// ClearStructuredTree clears the value of the "structured_tree" field.
func (_u *DocumentUpdate) ClearStructuredTree() *DocumentUpdate {
	_u.mutation.ClearStructuredTree()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *DocumentUpdate) SetExtractionConfidence(v float32) *DocumentUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableExtractionConfidence(v *float32) *DocumentUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *DocumentUpdate) AddExtractionConfidence(v float32) *DocumentUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *DocumentUpdate) ClearExtractionConfidence() *DocumentUpdate {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdate) SetProcessedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DocumentUpdate) ClearProcessedAt() *DocumentUpdate {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCapitalCallDetailID sets the "capital_call_detail" edge to the CapitalCallDetail entity by ID.
func (_u *DocumentUpdate) SetCapitalCallDetailID(id uuid.UUID) *DocumentUpdate {
	_u.mutation.SetCapitalCallDetailID(id)
	return _u
}

// SetNillableCapitalCallDetailID sets the "capital_call_detail" edge to the CapitalCallDetail entity by ID if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCapitalCallDetailID(id *uuid.UUID) *DocumentUpdate {
	if id != nil {
		_u = _u.SetCapitalCallDetailID(*id)
	}
	return _u
}

// SetCapitalCallDetail sets the "capital_call_detail" edge to the CapitalCallDetail entity.
func (_u *DocumentUpdate) SetCapitalCallDetail(v *CapitalCallDetail) *DocumentUpdate {
	return _u.SetCapitalCallDetailID(v.ID)
}

// SetDistributionDetailID sets the "distribution_detail" edge to the DistributionDetail entity by ID.
func (_u *DocumentUpdate) SetDistributionDetailID(id uuid.UUID) *DocumentUpdate {
	_u.mutation.SetDistributionDetailID(id)
	return _u
}

// SetNillableDistributionDetailID sets the "distribution_detail" edge to the DistributionDetail entity by ID if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDistributionDetailID(id *uuid.UUID) *DocumentUpdate {
	if id != nil {
		_u = _u.SetDistributionDetailID(*id)
	}
	return _u
}

// SetDistributionDetail sets the "distribution_detail" edge to the DistributionDetail entity.
func (_u *DocumentUpdate) SetDistributionDetail(v *DistributionDetail) *DocumentUpdate {
	return _u.SetDistributionDetailID(v.ID)
}

// AddLogIDs adds the "logs" edge to the ProcessingLog entity by IDs.
func (_u *DocumentUpdate) AddLogIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ProcessingLog entity.
func (_u *DocumentUpdate) AddLogs(v ...*ProcessingLog) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearCapitalCallDetail clears the "capital_call_detail" edge to the CapitalCallDetail entity.
func (_u *DocumentUpdate) ClearCapitalCallDetail() *DocumentUpdate {
	_u.mutation.ClearCapitalCallDetail()
	return _u
}

// ClearDistributionDetail clears the "distribution_detail" edge to the DistributionDetail entity.
func (_u *DocumentUpdate) ClearDistributionDetail() *DocumentUpdate {
	_u.mutation.ClearDistributionDetail()
	return _u
}

// ClearLogs clears all "logs" edges to the ProcessingLog entity.
func (_u *DocumentUpdate) ClearLogs() *DocumentUpdate {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ProcessingLog entities by IDs.
func (_u *DocumentUpdate) RemoveLogIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ProcessingLog entities.
func (_u *DocumentUpdate) RemoveLogs(v ...*ProcessingLog) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := document.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Document.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := document.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "Document.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := document.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Document.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(document.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(document.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(document.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(document.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.FundName(); ok {
		_spec.SetField(document.FieldFundName, field.TypeString, value)
	}
	if _u.mutation.FundNameCleared() {
		_spec.ClearField(document.FieldFundName, field.TypeString)
	}
	if value, ok := _u.mutation.FundID(); ok {
		_spec.SetField(document.FieldFundID, field.TypeString, value)
	}
	if _u.mutation.FundIDCleared() {
		_spec.ClearField(document.FieldFundID, field.TypeString)
	}
	if value, ok := _u.mutation.NormalizedText(); ok {
		_spec.SetField(document.FieldNormalizedText, field.TypeString, value)
	}
	if _u.mutation.NormalizedTextCleared() {
		_spec.ClearField(document.FieldNormalizedText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredTree(); ok {
		_spec.SetField(document.FieldStructuredTree, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuredTree(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldStructuredTree, value)
		})
	}
	if _u.mutation.StructuredTreeCleared() {
		_spec.ClearField(document.FieldStructuredTree, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(document.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(document.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(document.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(document.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.CapitalCallDetailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.CapitalCallDetailTable,
			Columns: []string{document.CapitalCallDetailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capitalcalldetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CapitalCallDetailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.CapitalCallDetailTable,
			Columns: []string{document.CapitalCallDetailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capitalcalldetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DistributionDetailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.DistributionDetailTable,
			Columns: []string{document.DistributionDetailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributiondetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DistributionDetailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.DistributionDetailTable,
			Columns: []string{document.DistributionDetailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributiondetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.LogsTable,
			Columns: []string{document.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.LogsTable,
			Columns: []string{document.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.LogsTable,
			Columns: []string{document.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *DocumentUpdateOne) SetOriginalFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOriginalFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentUpdateOne) SetFilePath(v string) *DocumentUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdateOne) SetFileSize(v int) *DocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileSize(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdateOne) AddFileSize(v int) *DocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *DocumentUpdateOne) SetMimeType(v string) *DocumentUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableMimeType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *DocumentUpdateOne) SetFormat(v string) *DocumentUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFormat(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *DocumentUpdateOne) SetCategory(v string) *DocumentUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCategory(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *DocumentUpdateOne) ClearCategory() *DocumentUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetFundName sets the "fund_name" field.
func (_u *DocumentUpdateOne) SetFundName(v string) *DocumentUpdateOne {
	_u.mutation.SetFundName(v)
	return _u
}

// SetNillableFundName sets the "fund_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFundName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFundName(*v)
	}
	return _u
}

// ClearFundName clears the value of the "fund_name" field.
func (_u *DocumentUpdateOne) ClearFundName() *DocumentUpdateOne {
	_u.mutation.ClearFundName()
	return _u
}

// SetFundID sets the "fund_id" field.
func (_u *DocumentUpdateOne) SetFundID(v string) *DocumentUpdateOne {
	_u.mutation.SetFundID(v)
	return _u
}

// SetNillableFundID sets the "fund_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFundID(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFundID(*v)
	}
	return _u
}

// ClearFundID clears the value of the "fund_id" field.
func (_u *DocumentUpdateOne) ClearFundID() *DocumentUpdateOne {
	_u.mutation.ClearFundID()
	return _u
}

// SetNormalizedText sets the "normalized_text" field.
func (_u *DocumentUpdateOne) SetNormalizedText(v string) *DocumentUpdateOne {
	_u.mutation.SetNormalizedText(v)
	return _u
}

// SetNillableNormalizedText sets the "normalized_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableNormalizedText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetNormalizedText(*v)
	}
	return _u
}

// ClearNormalizedText clears the value of the "normalized_text" field.
func (_u *DocumentUpdateOne) ClearNormalizedText() *DocumentUpdateOne {
	_u.mutation.ClearNormalizedText()
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdateOne) SetOcrText(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdateOne) ClearOcrText() *DocumentUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetStructuredTree sets the "structured_tree" field.
func (_u *DocumentUpdateOne) SetStructuredTree(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.SetStructuredTree(v)
	return _u
}

// AppendStructuredTree appends value to the "structured_tree" field.
func (_u *DocumentUpdateOne) AppendStructuredTree(v json.RawMessage) *DocumentUpdateOne {
	_u.mutation.AppendStructuredTree(v)
	return _u
}

// ClearStructuredTree clears the value of the "structured_tree" field.
func (_u *DocumentUpdateOne) ClearStructuredTree() *DocumentUpdateOne {
	_u.mutation.ClearStructuredTree()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *DocumentUpdateOne) SetExtractionConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableExtractionConfidence(v *float32) *DocumentUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *DocumentUpdateOne) AddExtractionConfidence(v float32) *DocumentUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *DocumentUpdateOne) ClearExtractionConfidence() *DocumentUpdateOne {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *DocumentUpdateOne) SetProcessedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (_u *DocumentUpdateOne) ClearProcessedAt() *DocumentUpdateOne {
	_u.mutation.ClearProcessedAt()
	return _u
}

// SetCapitalCallDetailID sets the "capital_call_detail" edge to the CapitalCallDetail entity by ID.
func (_u *DocumentUpdateOne) SetCapitalCallDetailID(id uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetCapitalCallDetailID(id)
	return _u
}

// SetNillableCapitalCallDetailID sets the "capital_call_detail" edge to the CapitalCallDetail entity by ID if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCapitalCallDetailID(id *uuid.UUID) *DocumentUpdateOne {
	if id != nil {
		_u = _u.SetCapitalCallDetailID(*id)
	}
	return _u
}

// SetCapitalCallDetail sets the "capital_call_detail" edge to the CapitalCallDetail entity.
func (_u *DocumentUpdateOne) SetCapitalCallDetail(v *CapitalCallDetail) *DocumentUpdateOne {
	return _u.SetCapitalCallDetailID(v.ID)
}

// SetDistributionDetailID sets the "distribution_detail" edge to the DistributionDetail entity by ID.
func (_u *DocumentUpdateOne) SetDistributionDetailID(id uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetDistributionDetailID(id)
	return _u
}

// SetNillableDistributionDetailID sets the "distribution_detail" edge to the DistributionDetail entity by ID if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDistributionDetailID(id *uuid.UUID) *DocumentUpdateOne {
	if id != nil {
		_u = _u.SetDistributionDetailID(*id)
	}
	return _u
}

// SetDistributionDetail sets the "distribution_detail" edge to the DistributionDetail entity.
func (_u *DocumentUpdateOne) SetDistributionDetail(v *DistributionDetail) *DocumentUpdateOne {
	return _u.SetDistributionDetailID(v.ID)
}

// AddLogIDs adds the "logs" edge to the ProcessingLog entity by IDs.
func (_u *DocumentUpdateOne) AddLogIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddLogIDs(ids...)
	return _u
}

// AddLogs adds the "logs" edges to the ProcessingLog entity.
func (_u *DocumentUpdateOne) AddLogs(v ...*ProcessingLog) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLogIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearCapitalCallDetail clears the "capital_call_detail" edge to the CapitalCallDetail entity.
func (_u *DocumentUpdateOne) ClearCapitalCallDetail() *DocumentUpdateOne {
	_u.mutation.ClearCapitalCallDetail()
	return _u
}

// ClearDistributionDetail clears the "distribution_detail" edge to the DistributionDetail entity.
func (_u *DocumentUpdateOne) ClearDistributionDetail() *DocumentUpdateOne {
	_u.mutation.ClearDistributionDetail()
	return _u
}

// ClearLogs clears all "logs" edges to the ProcessingLog entity.
func (_u *DocumentUpdateOne) ClearLogs() *DocumentUpdateOne {
	_u.mutation.ClearLogs()
	return _u
}

// RemoveLogIDs removes the "logs" edge to ProcessingLog entities by IDs.
func (_u *DocumentUpdateOne) RemoveLogIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveLogIDs(ids...)
	return _u
}

// RemoveLogs removes "logs" edges to ProcessingLog entities.
func (_u *DocumentUpdateOne) RemoveLogs(v ...*ProcessingLog) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLogIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := document.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "Document.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := document.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Document.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := document.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "Document.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := document.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "Document.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(document.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(document.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(document.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(document.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(document.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.FundName(); ok {
		_spec.SetField(document.FieldFundName, field.TypeString, value)
	}
	if _u.mutation.FundNameCleared() {
		_spec.ClearField(document.FieldFundName, field.TypeString)
	}
	if value, ok := _u.mutation.FundID(); ok {
		_spec.SetField(document.FieldFundID, field.TypeString, value)
	}
	if _u.mutation.FundIDCleared() {
		_spec.ClearField(document.FieldFundID, field.TypeString)
	}
	if value, ok := _u.mutation.NormalizedText(); ok {
		_spec.SetField(document.FieldNormalizedText, field.TypeString, value)
	}
	if _u.mutation.NormalizedTextCleared() {
		_spec.ClearField(document.FieldNormalizedText, field.TypeString)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.StructuredTree(); ok {
		_spec.SetField(document.FieldStructuredTree, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStructuredTree(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldStructuredTree, value)
		})
	}
	if _u.mutation.StructuredTreeCleared() {
		_spec.ClearField(document.FieldStructuredTree, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(document.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(document.FieldExtractionConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(document.FieldExtractionConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessedAtCleared() {
		_spec.ClearField(document.FieldProcessedAt, field.TypeTime)
	}
	if _u.mutation.CapitalCallDetailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.CapitalCallDetailTable,
			Columns: []string{document.CapitalCallDetailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capitalcalldetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CapitalCallDetailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.CapitalCallDetailTable,
			Columns: []string{document.CapitalCallDetailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(capitalcalldetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DistributionDetailCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.DistributionDetailTable,
			Columns: []string{document.DistributionDetailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributiondetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DistributionDetailIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.DistributionDetailTable,
			Columns: []string{document.DistributionDetailColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(distributiondetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.LogsTable,
			Columns: []string{document.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLogsIDs(); len(nodes) > 0 && !_u.mutation.LogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.LogsTable,
			Columns: []string{document.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.LogsTable,
			Columns: []string{document.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/shreyescodes/doc-parser-updated/db/ent/schema"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/capitalcalldetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/distributiondetail"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/document"
	"github.com/shreyescodes/doc-parser-updated/gen/ent/processinglog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	capitalcalldetailFields := schema.CapitalCallDetail{}.Fields()
	_ = capitalcalldetailFields
	// capitalcalldetailDescCreatedAt is the schema descriptor for created_at field.
	capitalcalldetailDescCreatedAt := capitalcalldetailFields[16].Descriptor()
	// capitalcalldetail.DefaultCreatedAt holds the default value on creation for the created_at field.
	capitalcalldetail.DefaultCreatedAt = capitalcalldetailDescCreatedAt.Default.(func() time.Time)
	// capitalcalldetailDescUpdatedAt is the schema descriptor for updated_at field.
	capitalcalldetailDescUpdatedAt := capitalcalldetailFields[17].Descriptor()
	// capitalcalldetail.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	capitalcalldetail.DefaultUpdatedAt = capitalcalldetailDescUpdatedAt.Default.(func() time.Time)
	// capitalcalldetail.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	capitalcalldetail.UpdateDefaultUpdatedAt = capitalcalldetailDescUpdatedAt.UpdateDefault.(func() time.Time)
	// capitalcalldetailDescID is the schema descriptor for id field.
	capitalcalldetailDescID := capitalcalldetailFields[0].Descriptor()
	// capitalcalldetail.DefaultID holds the default value on creation for the id field.
	capitalcalldetail.DefaultID = capitalcalldetailDescID.Default.(func() uuid.UUID)
	distributiondetailFields := schema.DistributionDetail{}.Fields()
	_ = distributiondetailFields
	// distributiondetailDescCreatedAt is the schema descriptor for created_at field.
	distributiondetailDescCreatedAt := distributiondetailFields[19].Descriptor()
	// distributiondetail.DefaultCreatedAt holds the default value on creation for the created_at field.
	distributiondetail.DefaultCreatedAt = distributiondetailDescCreatedAt.Default.(func() time.Time)
	// distributiondetailDescUpdatedAt is the schema descriptor for updated_at field.
	distributiondetailDescUpdatedAt := distributiondetailFields[20].Descriptor()
	// distributiondetail.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	distributiondetail.DefaultUpdatedAt = distributiondetailDescUpdatedAt.Default.(func() time.Time)
	// distributiondetail.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	distributiondetail.UpdateDefaultUpdatedAt = distributiondetailDescUpdatedAt.UpdateDefault.(func() time.Time)
	// distributiondetailDescID is the schema descriptor for id field.
	distributiondetailDescID := distributiondetailFields[0].Descriptor()
	// distributiondetail.DefaultID holds the default value on creation for the id field.
	distributiondetail.DefaultID = distributiondetailDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescOriginalFilename is the schema descriptor for original_filename field.
	documentDescOriginalFilename := documentFields[2].Descriptor()
	// document.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	document.OriginalFilenameValidator = documentDescOriginalFilename.Validators[0].(func(string) error)
	// documentDescFilePath is the schema descriptor for file_path field.
	documentDescFilePath := documentFields[3].Descriptor()
	// document.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	document.FilePathValidator = documentDescFilePath.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[4].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescMimeType is the schema descriptor for mime_type field.
	documentDescMimeType := documentFields[5].Descriptor()
	// document.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	document.MimeTypeValidator = documentDescMimeType.Validators[0].(func(string) error)
	// documentDescFormat is the schema descriptor for format field.
	documentDescFormat := documentFields[6].Descriptor()
	// document.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	document.FormatValidator = func() func(string) error {
		validators := documentDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[7].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[15].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[16].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	processinglogFields := schema.ProcessingLog{}.Fields()
	_ = processinglogFields
	// processinglogDescLogLevel is the schema descriptor for log_level field.
	processinglogDescLogLevel := processinglogFields[2].Descriptor()
	// processinglog.LogLevelValidator is a validator for the "log_level" field. It is called by the builders before save.
	processinglog.LogLevelValidator = func() func(string) error {
		validators := processinglogDescLogLevel.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(log_level string) error {
			for _, fn := range fns {
				if err := fn(log_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processinglogDescMessage is the schema descriptor for message field.
	processinglogDescMessage := processinglogFields[3].Descriptor()
	// processinglog.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	processinglog.MessageValidator = processinglogDescMessage.Validators[0].(func(string) error)
	// processinglogDescCreatedAt is the schema descriptor for created_at field.
	processinglogDescCreatedAt := processinglogFields[6].Descriptor()
	// processinglog.DefaultCreatedAt holds the default value on creation for the created_at field.
	processinglog.DefaultCreatedAt = processinglogDescCreatedAt.Default.(func() time.Time)
	// processinglogDescID is the schema descriptor for id field.
	processinglogDescID := processinglogFields[0].Descriptor()
	// processinglog.DefaultID holds the default value on creation for the id field.
	processinglog.DefaultID = processinglogDescID.Default.(func() uuid.UUID)
}

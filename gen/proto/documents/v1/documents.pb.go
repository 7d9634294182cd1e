// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: documents/v1/documents.proto

package documentsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Document struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename             string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	OriginalFilename     string                 `protobuf:"bytes,3,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	Status               string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Category             string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	FundName             string                 `protobuf:"bytes,6,opt,name=fund_name,json=fundName,proto3" json:"fund_name,omitempty"`
	FundId               string                 `protobuf:"bytes,7,opt,name=fund_id,json=fundId,proto3" json:"fund_id,omitempty"`
	Format               string                 `protobuf:"bytes,8,opt,name=format,proto3" json:"format,omitempty"`
	FileSize             int64                  `protobuf:"varint,9,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	MimeType             string                 `protobuf:"bytes,10,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	ExtractionConfidence float32                `protobuf:"fixed32,11,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	HasConfidence        bool                   `protobuf:"varint,12,opt,name=has_confidence,json=hasConfidence,proto3" json:"has_confidence,omitempty"`
	CreatedAt            string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`       // RFC3339
	UpdatedAt            string                 `protobuf:"bytes,14,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`       // RFC3339
	ProcessedAt          string                 `protobuf:"bytes,15,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"` // RFC3339, empty until completed
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_documents_v1_documents_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Document) GetFundName() string {
	if x != nil {
		return x.FundName
	}
	return ""
}

func (x *Document) GetFundId() string {
	if x != nil {
		return x.FundId
	}
	return ""
}

func (x *Document) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *Document) GetExtractionConfidence() float32 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *Document) GetHasConfidence() bool {
	if x != nil {
		return x.HasConfidence
	}
	return false
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *Document) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Filename string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content  []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	MimeType string                 `protobuf:"bytes,3,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	// enqueue for processing immediately after upload
	Process       bool `protobuf:"varint,4,opt,name=process,proto3" json:"process,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadDocumentRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *UploadDocumentRequest) GetProcess() bool {
	if x != nil {
		return x.Process
	}
	return false
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{2}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ProcessDocumentRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// run the attempt inline and return its outcome instead of enqueueing
	Wait          bool `protobuf:"varint,2,opt,name=wait,proto3" json:"wait,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{3}
}

func (x *ProcessDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessDocumentRequest) GetWait() bool {
	if x != nil {
		return x.Wait
	}
	return false
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Confidence    float32                `protobuf:"fixed32,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	HasConfidence bool                   `protobuf:"varint,4,opt,name=has_confidence,json=hasConfidence,proto3" json:"has_confidence,omitempty"`
	Error         string                 `protobuf:"bytes,5,opt,name=error,proto3" json:"error,omitempty"`
	Retryable     bool                   `protobuf:"varint,6,opt,name=retryable,proto3" json:"retryable,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{4}
}

func (x *ProcessDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ProcessDocumentResponse) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ProcessDocumentResponse) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ProcessDocumentResponse) GetHasConfidence() bool {
	if x != nil {
		return x.HasConfidence
	}
	return false
}

func (x *ProcessDocumentResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

func (x *ProcessDocumentResponse) GetRetryable() bool {
	if x != nil {
		return x.Retryable
	}
	return false
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{5}
}

func (x *GetDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// empty means all statuses
	Status        string `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Limit         int32  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{7}
}

func (x *ListDocumentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{9}
}

func (x *DeleteDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{10}
}

type ProcessingTrailEntry struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	LogLevel       string                 `protobuf:"bytes,1,opt,name=log_level,json=logLevel,proto3" json:"log_level,omitempty"`
	Message        string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Step           string                 `protobuf:"bytes,3,opt,name=step,proto3" json:"step,omitempty"`
	ProcessingTime float64                `protobuf:"fixed64,4,opt,name=processing_time,json=processingTime,proto3" json:"processing_time,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ProcessingTrailEntry) Reset() {
	*x = ProcessingTrailEntry{}
	mi := &file_documents_v1_documents_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessingTrailEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessingTrailEntry) ProtoMessage() {}

func (x *ProcessingTrailEntry) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessingTrailEntry.ProtoReflect.Descriptor instead.
func (*ProcessingTrailEntry) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{11}
}

func (x *ProcessingTrailEntry) GetLogLevel() string {
	if x != nil {
		return x.LogLevel
	}
	return ""
}

func (x *ProcessingTrailEntry) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *ProcessingTrailEntry) GetStep() string {
	if x != nil {
		return x.Step
	}
	return ""
}

func (x *ProcessingTrailEntry) GetProcessingTime() float64 {
	if x != nil {
		return x.ProcessingTime
	}
	return 0
}

func (x *ProcessingTrailEntry) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type GetProcessingTrailRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProcessingTrailRequest) Reset() {
	*x = GetProcessingTrailRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProcessingTrailRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProcessingTrailRequest) ProtoMessage() {}

func (x *GetProcessingTrailRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProcessingTrailRequest.ProtoReflect.Descriptor instead.
func (*GetProcessingTrailRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{12}
}

func (x *GetProcessingTrailRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetProcessingTrailResponse struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Entries       []*ProcessingTrailEntry `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProcessingTrailResponse) Reset() {
	*x = GetProcessingTrailResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProcessingTrailResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProcessingTrailResponse) ProtoMessage() {}

func (x *GetProcessingTrailResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProcessingTrailResponse.ProtoReflect.Descriptor instead.
func (*GetProcessingTrailResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{13}
}

func (x *GetProcessingTrailResponse) GetEntries() []*ProcessingTrailEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type ExportCapitalCallsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCapitalCallsRequest) Reset() {
	*x = ExportCapitalCallsRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCapitalCallsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCapitalCallsRequest) ProtoMessage() {}

func (x *ExportCapitalCallsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCapitalCallsRequest.ProtoReflect.Descriptor instead.
func (*ExportCapitalCallsRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{14}
}

type ExportCapitalCallsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCapitalCallsResponse) Reset() {
	*x = ExportCapitalCallsResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCapitalCallsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCapitalCallsResponse) ProtoMessage() {}

func (x *ExportCapitalCallsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCapitalCallsResponse.ProtoReflect.Descriptor instead.
func (*ExportCapitalCallsResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{15}
}

func (x *ExportCapitalCallsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportDistributionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDistributionsRequest) Reset() {
	*x = ExportDistributionsRequest{}
	mi := &file_documents_v1_documents_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDistributionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDistributionsRequest) ProtoMessage() {}

func (x *ExportDistributionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDistributionsRequest.ProtoReflect.Descriptor instead.
func (*ExportDistributionsRequest) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{16}
}

type ExportDistributionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDistributionsResponse) Reset() {
	*x = ExportDistributionsResponse{}
	mi := &file_documents_v1_documents_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDistributionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDistributionsResponse) ProtoMessage() {}

func (x *ExportDistributionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_documents_v1_documents_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDistributionsResponse.ProtoReflect.Descriptor instead.
func (*ExportDistributionsResponse) Descriptor() ([]byte, []int) {
	return file_documents_v1_documents_proto_rawDescGZIP(), []int{17}
}

func (x *ExportDistributionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_documents_v1_documents_proto protoreflect.FileDescriptor

const file_documents_v1_documents_proto_rawDesc = "" +
	"\n" +
	"\x1cdocuments/v1/documents.proto\x12\fdocuments.v1\"\xdc\x03\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12+\n" +
	"\x11original_filename\x18\x03 \x01(\tR\x10originalFilename\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\x12\x1b\n" +
	"\tfund_name\x18\x06 \x01(\tR\bfundName\x12\x17\n" +
	"\afund_id\x18\a \x01(\tR\x06fundId\x12\x16\n" +
	"\x06format\x18\b \x01(\tR\x06format\x12\x1b\n" +
	"\tfile_size\x18\t \x01(\x03R\bfileSize\x12\x1b\n" +
	"\tmime_type\x18\n" +
	" \x01(\tR\bmimeType\x123\n" +
	"\x15extraction_confidence\x18\v \x01(\x02R\x14extractionConfidence\x12%\n" +
	"\x0ehas_confidence\x18\f \x01(\bR\rhasConfidence\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0e \x01(\tR\tupdatedAt\x12!\n" +
	"\fprocessed_at\x18\x0f \x01(\tR\vprocessedAt\"\x84\x01\n" +
	"\x15UploadDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\x12\x1b\n" +
	"\tmime_type\x18\x03 \x01(\tR\bmimeType\x12\x18\n" +
	"\aprocess\x18\x04 \x01(\bR\aprocess\"L\n" +
	"\x16UploadDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.documents.v1.DocumentR\bdocument\"M\n" +
	"\x16ProcessDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x12\n" +
	"\x04wait\x18\x02 \x01(\bR\x04wait\"\xc8\x01\n" +
	"\x17ProcessDocumentResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x02R\n" +
	"confidence\x12%\n" +
	"\x0ehas_confidence\x18\x04 \x01(\bR\rhasConfidence\x12\x14\n" +
	"\x05error\x18\x05 \x01(\tR\x05error\x12\x1c\n" +
	"\tretryable\x18\x06 \x01(\bR\tretryable\"5\n" +
	"\x12GetDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"I\n" +
	"\x13GetDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.documents.v1.DocumentR\bdocument\"D\n" +
	"\x14ListDocumentsRequest\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.documents.v1.DocumentR\tdocuments\"8\n" +
	"\x15DeleteDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x18\n" +
	"\x16DeleteDocumentResponse\"\xa9\x01\n" +
	"\x14ProcessingTrailEntry\x12\x1b\n" +
	"\tlog_level\x18\x01 \x01(\tR\blogLevel\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12\x12\n" +
	"\x04step\x18\x03 \x01(\tR\x04step\x12'\n" +
	"\x0fprocessing_time\x18\x04 \x01(\x01R\x0eprocessingTime\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\"<\n" +
	"\x19GetProcessingTrailRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"Z\n" +
	"\x1aGetProcessingTrailResponse\x12<\n" +
	"\aentries\x18\x01 \x03(\v2\".documents.v1.ProcessingTrailEntryR\aentries\"\x1b\n" +
	"\x19ExportCapitalCallsRequest\"0\n" +
	"\x1aExportCapitalCallsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x1c\n" +
	"\x1aExportDistributionsRequest\"1\n" +
	"\x1bExportDistributionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc3\x04\n" +
	"\x10DocumentsService\x12[\n" +
	"\x0eUploadDocument\x12#.documents.v1.UploadDocumentRequest\x1a$.documents.v1.UploadDocumentResponse\x12^\n" +
	"\x0fProcessDocument\x12$.documents.v1.ProcessDocumentRequest\x1a%.documents.v1.ProcessDocumentResponse\x12R\n" +
	"\vGetDocument\x12 .documents.v1.GetDocumentRequest\x1a!.documents.v1.GetDocumentResponse\x12X\n" +
	"\rListDocuments\x12\".documents.v1.ListDocumentsRequest\x1a#.documents.v1.ListDocumentsResponse\x12[\n" +
	"\x0eDeleteDocument\x12#.documents.v1.DeleteDocumentRequest\x1a$.documents.v1.DeleteDocumentResponse\x12g\n" +
	"\x12GetProcessingTrail\x12'.documents.v1.GetProcessingTrailRequest\x1a(.documents.v1.GetProcessingTrailResponse2\xe4\x01\n" +
	"\rExportService\x12g\n" +
	"\x12ExportCapitalCalls\x12'.documents.v1.ExportCapitalCallsRequest\x1a(.documents.v1.ExportCapitalCallsResponse\x12j\n" +
	"\x13ExportDistributions\x12(.documents.v1.ExportDistributionsRequest\x1a).documents.v1.ExportDistributionsResponseBOZMgithub.com/shreyescodes/doc-parser-updated/gen/proto/documents/v1;documentsv1b\x06proto3"

var (
	file_documents_v1_documents_proto_rawDescOnce sync.Once
	file_documents_v1_documents_proto_rawDescData []byte
)

func file_documents_v1_documents_proto_rawDescGZIP() []byte {
	file_documents_v1_documents_proto_rawDescOnce.Do(func() {
		file_documents_v1_documents_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_documents_v1_documents_proto_rawDesc), len(file_documents_v1_documents_proto_rawDesc)))
	})
	return file_documents_v1_documents_proto_rawDescData
}

var file_documents_v1_documents_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_documents_v1_documents_proto_goTypes = []any{
	(*Document)(nil),                    // 0: documents.v1.Document
	(*UploadDocumentRequest)(nil),       // 1: documents.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),      // 2: documents.v1.UploadDocumentResponse
	(*ProcessDocumentRequest)(nil),      // 3: documents.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),     // 4: documents.v1.ProcessDocumentResponse
	(*GetDocumentRequest)(nil),          // 5: documents.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),         // 6: documents.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),        // 7: documents.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),       // 8: documents.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),       // 9: documents.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),      // 10: documents.v1.DeleteDocumentResponse
	(*ProcessingTrailEntry)(nil),        // 11: documents.v1.ProcessingTrailEntry
	(*GetProcessingTrailRequest)(nil),   // 12: documents.v1.GetProcessingTrailRequest
	(*GetProcessingTrailResponse)(nil),  // 13: documents.v1.GetProcessingTrailResponse
	(*ExportCapitalCallsRequest)(nil),   // 14: documents.v1.ExportCapitalCallsRequest
	(*ExportCapitalCallsResponse)(nil),  // 15: documents.v1.ExportCapitalCallsResponse
	(*ExportDistributionsRequest)(nil),  // 16: documents.v1.ExportDistributionsRequest
	(*ExportDistributionsResponse)(nil), // 17: documents.v1.ExportDistributionsResponse
}
var file_documents_v1_documents_proto_depIdxs = []int32{
	0,  // 0: documents.v1.UploadDocumentResponse.document:type_name -> documents.v1.Document
	0,  // 1: documents.v1.GetDocumentResponse.document:type_name -> documents.v1.Document
	0,  // 2: documents.v1.ListDocumentsResponse.documents:type_name -> documents.v1.Document
	11, // 3: documents.v1.GetProcessingTrailResponse.entries:type_name -> documents.v1.ProcessingTrailEntry
	1,  // 4: documents.v1.DocumentsService.UploadDocument:input_type -> documents.v1.UploadDocumentRequest
	3,  // 5: documents.v1.DocumentsService.ProcessDocument:input_type -> documents.v1.ProcessDocumentRequest
	5,  // 6: documents.v1.DocumentsService.GetDocument:input_type -> documents.v1.GetDocumentRequest
	7,  // 7: documents.v1.DocumentsService.ListDocuments:input_type -> documents.v1.ListDocumentsRequest
	9,  // 8: documents.v1.DocumentsService.DeleteDocument:input_type -> documents.v1.DeleteDocumentRequest
	12, // 9: documents.v1.DocumentsService.GetProcessingTrail:input_type -> documents.v1.GetProcessingTrailRequest
	14, // 10: documents.v1.ExportService.ExportCapitalCalls:input_type -> documents.v1.ExportCapitalCallsRequest
	16, // 11: documents.v1.ExportService.ExportDistributions:input_type -> documents.v1.ExportDistributionsRequest
	2,  // 12: documents.v1.DocumentsService.UploadDocument:output_type -> documents.v1.UploadDocumentResponse
	4,  // 13: documents.v1.DocumentsService.ProcessDocument:output_type -> documents.v1.ProcessDocumentResponse
	6,  // 14: documents.v1.DocumentsService.GetDocument:output_type -> documents.v1.GetDocumentResponse
	8,  // 15: documents.v1.DocumentsService.ListDocuments:output_type -> documents.v1.ListDocumentsResponse
	10, // 16: documents.v1.DocumentsService.DeleteDocument:output_type -> documents.v1.DeleteDocumentResponse
	13, // 17: documents.v1.DocumentsService.GetProcessingTrail:output_type -> documents.v1.GetProcessingTrailResponse
	15, // 18: documents.v1.ExportService.ExportCapitalCalls:output_type -> documents.v1.ExportCapitalCallsResponse
	17, // 19: documents.v1.ExportService.ExportDistributions:output_type -> documents.v1.ExportDistributionsResponse
	12, // [12:20] is the sub-list for method output_type
	4,  // [4:12] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_documents_v1_documents_proto_init() }
func file_documents_v1_documents_proto_init() {
	if File_documents_v1_documents_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_documents_v1_documents_proto_rawDesc), len(file_documents_v1_documents_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_documents_v1_documents_proto_goTypes,
		DependencyIndexes: file_documents_v1_documents_proto_depIdxs,
		MessageInfos:      file_documents_v1_documents_proto_msgTypes,
	}.Build()
	File_documents_v1_documents_proto = out.File
	file_documents_v1_documents_proto_goTypes = nil
	file_documents_v1_documents_proto_depIdxs = nil
}

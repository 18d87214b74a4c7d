// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.0
// 	protoc        (unknown)
// source: api/proto/touchline.proto

package proto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Event struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CustomerOrgId string                 `protobuf:"bytes,1,opt,name=customer_org_id,json=customerOrgId,proto3" json:"customer_org_id,omitempty"`
	AccountId     string                 `protobuf:"bytes,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	TouchpointId  string                 `protobuf:"bytes,3,opt,name=touchpoint_id,json=touchpointId,proto3" json:"touchpoint_id,omitempty"`
	// Unix epoch milliseconds, UTC.
	TimestampMs      int64  `protobuf:"varint,4,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	Activity         string `protobuf:"bytes,5,opt,name=activity,proto3" json:"activity,omitempty"`
	Channel          string `protobuf:"bytes,6,opt,name=channel,proto3" json:"channel,omitempty"`
	Status           string `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	RecordType       string `protobuf:"bytes,8,opt,name=record_type,json=recordType,proto3" json:"record_type,omitempty"`
	SourceRecordType string `protobuf:"bytes,9,opt,name=source_record_type,json=sourceRecordType,proto3" json:"source_record_type,omitempty"`
	SourceRecordId   string `protobuf:"bytes,10,opt,name=source_record_id,json=sourceRecordId,proto3" json:"source_record_id,omitempty"`
	CampaignId       string `protobuf:"bytes,11,opt,name=campaign_id,json=campaignId,proto3" json:"campaign_id,omitempty"`
	CampaignName     string `protobuf:"bytes,12,opt,name=campaign_name,json=campaignName,proto3" json:"campaign_name,omitempty"`
	// "IN" or "OUT".
	Direction string `protobuf:"bytes,13,opt,name=direction,proto3" json:"direction,omitempty"`
	// JSON array of person refs: [{"id", "first_name", "last_name",
	// "email_address", "role_in_touchpoint"}, ...].
	People                []byte   `protobuf:"bytes,14,opt,name=people,proto3" json:"people,omitempty"`
	InvolvedTeamIds       []string `protobuf:"bytes,15,rep,name=involved_team_ids,json=involvedTeamIds,proto3" json:"involved_team_ids,omitempty"`
	RelatedOpportunityIds []string `protobuf:"bytes,16,rep,name=related_opportunity_ids,json=relatedOpportunityIds,proto3" json:"related_opportunity_ids,omitempty"`
	ActivityGroupingId    string   `protobuf:"bytes,17,opt,name=activity_grouping_id,json=activityGroupingId,proto3" json:"activity_grouping_id,omitempty"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *Event) Reset() {
	*x = Event{}
	mi := &file_api_proto_touchline_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Event) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Event) ProtoMessage() {}

func (x *Event) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_touchline_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Event.ProtoReflect.Descriptor instead.
func (*Event) Descriptor() ([]byte, []int) {
	return file_api_proto_touchline_proto_rawDescGZIP(), []int{0}
}

func (x *Event) GetCustomerOrgId() string {
	if x != nil {
		return x.CustomerOrgId
	}
	return ""
}

func (x *Event) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *Event) GetTouchpointId() string {
	if x != nil {
		return x.TouchpointId
	}
	return ""
}

func (x *Event) GetTimestampMs() int64 {
	if x != nil {
		return x.TimestampMs
	}
	return 0
}

func (x *Event) GetActivity() string {
	if x != nil {
		return x.Activity
	}
	return ""
}

func (x *Event) GetChannel() string {
	if x != nil {
		return x.Channel
	}
	return ""
}

func (x *Event) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Event) GetRecordType() string {
	if x != nil {
		return x.RecordType
	}
	return ""
}

func (x *Event) GetSourceRecordType() string {
	if x != nil {
		return x.SourceRecordType
	}
	return ""
}

func (x *Event) GetSourceRecordId() string {
	if x != nil {
		return x.SourceRecordId
	}
	return ""
}

func (x *Event) GetCampaignId() string {
	if x != nil {
		return x.CampaignId
	}
	return ""
}

func (x *Event) GetCampaignName() string {
	if x != nil {
		return x.CampaignName
	}
	return ""
}

func (x *Event) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *Event) GetPeople() []byte {
	if x != nil {
		return x.People
	}
	return nil
}

func (x *Event) GetInvolvedTeamIds() []string {
	if x != nil {
		return x.InvolvedTeamIds
	}
	return nil
}

func (x *Event) GetRelatedOpportunityIds() []string {
	if x != nil {
		return x.RelatedOpportunityIds
	}
	return nil
}

func (x *Event) GetActivityGroupingId() string {
	if x != nil {
		return x.ActivityGroupingId
	}
	return ""
}

type BulkIngestRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Events        []*Event               `protobuf:"bytes,1,rep,name=events,proto3" json:"events,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkIngestRequest) Reset() {
	*x = BulkIngestRequest{}
	mi := &file_api_proto_touchline_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkIngestRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkIngestRequest) ProtoMessage() {}

func (x *BulkIngestRequest) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_touchline_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkIngestRequest.ProtoReflect.Descriptor instead.
func (*BulkIngestRequest) Descriptor() ([]byte, []int) {
	return file_api_proto_touchline_proto_rawDescGZIP(), []int{1}
}

func (x *BulkIngestRequest) GetEvents() []*Event {
	if x != nil {
		return x.Events
	}
	return nil
}

type BulkIngestResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Inserted      int64                  `protobuf:"varint,1,opt,name=inserted,proto3" json:"inserted,omitempty"`
	Skipped       int64                  `protobuf:"varint,2,opt,name=skipped,proto3" json:"skipped,omitempty"`
	RequestId     string                 `protobuf:"bytes,3,opt,name=request_id,json=requestId,proto3" json:"request_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BulkIngestResponse) Reset() {
	*x = BulkIngestResponse{}
	mi := &file_api_proto_touchline_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BulkIngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BulkIngestResponse) ProtoMessage() {}

func (x *BulkIngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_api_proto_touchline_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BulkIngestResponse.ProtoReflect.Descriptor instead.
func (*BulkIngestResponse) Descriptor() ([]byte, []int) {
	return file_api_proto_touchline_proto_rawDescGZIP(), []int{2}
}

func (x *BulkIngestResponse) GetInserted() int64 {
	if x != nil {
		return x.Inserted
	}
	return 0
}

func (x *BulkIngestResponse) GetSkipped() int64 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *BulkIngestResponse) GetRequestId() string {
	if x != nil {
		return x.RequestId
	}
	return ""
}

var File_api_proto_touchline_proto protoreflect.FileDescriptor

var file_api_proto_touchline_proto_rawDesc = []byte{
	0x0a, 0x19, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f, 0x74, 0x6f, 0x75, 0x63,
	0x68, 0x6c, 0x69, 0x6e, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x09, 0x74, 0x6f, 0x75,
	0x63, 0x68, 0x6c, 0x69, 0x6e, 0x65, 0x22, 0xef, 0x04, 0x0a, 0x05, 0x45, 0x76, 0x65, 0x6e, 0x74,
	0x12, 0x26, 0x0a, 0x0f, 0x63, 0x75, 0x73, 0x74, 0x6f, 0x6d, 0x65, 0x72, 0x5f, 0x6f, 0x72, 0x67,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x63, 0x75, 0x73, 0x74, 0x6f,
	0x6d, 0x65, 0x72, 0x4f, 0x72, 0x67, 0x49, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x61, 0x63, 0x63, 0x6f,
	0x75, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x61, 0x63,
	0x63, 0x6f, 0x75, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x23, 0x0a, 0x0d, 0x74, 0x6f, 0x75, 0x63, 0x68,
	0x70, 0x6f, 0x69, 0x6e, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c,
	0x74, 0x6f, 0x75, 0x63, 0x68, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x49, 0x64, 0x12, 0x21, 0x0a, 0x0c,
	0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x5f, 0x6d, 0x73, 0x18, 0x04, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x0b, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x4d, 0x73, 0x12,
	0x1a, 0x0a, 0x08, 0x61, 0x63, 0x74, 0x69, 0x76, 0x69, 0x74, 0x79, 0x18, 0x05, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x61, 0x63, 0x74, 0x69, 0x76, 0x69, 0x74, 0x79, 0x12, 0x18, 0x0a, 0x07, 0x63,
	0x68, 0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x63, 0x68,
	0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x12, 0x16, 0x0a, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x18,
	0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x1f, 0x0a,
	0x0b, 0x72, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x5f, 0x74, 0x79, 0x70, 0x65, 0x18, 0x08, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0a, 0x72, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x54, 0x79, 0x70, 0x65, 0x12, 0x2c,
	0x0a, 0x12, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x5f, 0x72, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x5f,
	0x74, 0x79, 0x70, 0x65, 0x18, 0x09, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x73, 0x6f, 0x75, 0x72,
	0x63, 0x65, 0x52, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x54, 0x79, 0x70, 0x65, 0x12, 0x28, 0x0a, 0x10,
	0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x5f, 0x72, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x5f, 0x69, 0x64,
	0x18, 0x0a, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x73, 0x6f, 0x75, 0x72, 0x63, 0x65, 0x52, 0x65,
	0x63, 0x6f, 0x72, 0x64, 0x49, 0x64, 0x12, 0x1f, 0x0a, 0x0b, 0x63, 0x61, 0x6d, 0x70, 0x61, 0x69,
	0x67, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x0b, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x63, 0x61, 0x6d,
	0x70, 0x61, 0x69, 0x67, 0x6e, 0x49, 0x64, 0x12, 0x23, 0x0a, 0x0d, 0x63, 0x61, 0x6d, 0x70, 0x61,
	0x69, 0x67, 0x6e, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x0c, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c,
	0x63, 0x61, 0x6d, 0x70, 0x61, 0x69, 0x67, 0x6e, 0x4e, 0x61, 0x6d, 0x65, 0x12, 0x1c, 0x0a, 0x09,
	0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x0d, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x09, 0x64, 0x69, 0x72, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x16, 0x0a, 0x06, 0x70, 0x65,
	0x6f, 0x70, 0x6c, 0x65, 0x18, 0x0e, 0x20, 0x01, 0x28, 0x0c, 0x52, 0x06, 0x70, 0x65, 0x6f, 0x70,
	0x6c, 0x65, 0x12, 0x2a, 0x0a, 0x11, 0x69, 0x6e, 0x76, 0x6f, 0x6c, 0x76, 0x65, 0x64, 0x5f, 0x74,
	0x65, 0x61, 0x6d, 0x5f, 0x69, 0x64, 0x73, 0x18, 0x0f, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0f, 0x69,
	0x6e, 0x76, 0x6f, 0x6c, 0x76, 0x65, 0x64, 0x54, 0x65, 0x61, 0x6d, 0x49, 0x64, 0x73, 0x12, 0x36,
	0x0a, 0x17, 0x72, 0x65, 0x6c, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x6f, 0x70, 0x70, 0x6f, 0x72, 0x74,
	0x75, 0x6e, 0x69, 0x74, 0x79, 0x5f, 0x69, 0x64, 0x73, 0x18, 0x10, 0x20, 0x03, 0x28, 0x09, 0x52,
	0x15, 0x72, 0x65, 0x6c, 0x61, 0x74, 0x65, 0x64, 0x4f, 0x70, 0x70, 0x6f, 0x72, 0x74, 0x75, 0x6e,
	0x69, 0x74, 0x79, 0x49, 0x64, 0x73, 0x12, 0x30, 0x0a, 0x14, 0x61, 0x63, 0x74, 0x69, 0x76, 0x69,
	0x74, 0x79, 0x5f, 0x67, 0x72, 0x6f, 0x75, 0x70, 0x69, 0x6e, 0x67, 0x5f, 0x69, 0x64, 0x18, 0x11,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x12, 0x61, 0x63, 0x74, 0x69, 0x76, 0x69, 0x74, 0x79, 0x47, 0x72,
	0x6f, 0x75, 0x70, 0x69, 0x6e, 0x67, 0x49, 0x64, 0x22, 0x3d, 0x0a, 0x11, 0x42, 0x75, 0x6c, 0x6b,
	0x49, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x28, 0x0a,
	0x06, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x10, 0x2e,
	0x74, 0x6f, 0x75, 0x63, 0x68, 0x6c, 0x69, 0x6e, 0x65, 0x2e, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x52,
	0x06, 0x65, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x22, 0x69, 0x0a, 0x12, 0x42, 0x75, 0x6c, 0x6b, 0x49,
	0x6e, 0x67, 0x65, 0x73, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1a, 0x0a,
	0x08, 0x69, 0x6e, 0x73, 0x65, 0x72, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52,
	0x08, 0x69, 0x6e, 0x73, 0x65, 0x72, 0x74, 0x65, 0x64, 0x12, 0x18, 0x0a, 0x07, 0x73, 0x6b, 0x69,
	0x70, 0x70, 0x65, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x07, 0x73, 0x6b, 0x69, 0x70,
	0x70, 0x65, 0x64, 0x12, 0x1d, 0x0a, 0x0a, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x5f, 0x69,
	0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x72, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x49, 0x64, 0x32, 0x60, 0x0a, 0x0d, 0x49, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x53, 0x65, 0x72, 0x76,
	0x69, 0x63, 0x65, 0x12, 0x4f, 0x0a, 0x10, 0x42, 0x75, 0x6c, 0x6b, 0x49, 0x6e, 0x67, 0x65, 0x73,
	0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x12, 0x1c, 0x2e, 0x74, 0x6f, 0x75, 0x63, 0x68, 0x6c,
	0x69, 0x6e, 0x65, 0x2e, 0x42, 0x75, 0x6c, 0x6b, 0x49, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1d, 0x2e, 0x74, 0x6f, 0x75, 0x63, 0x68, 0x6c, 0x69, 0x6e,
	0x65, 0x2e, 0x42, 0x75, 0x6c, 0x6b, 0x49, 0x6e, 0x67, 0x65, 0x73, 0x74, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x42, 0x2a, 0x5a, 0x28, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63,
	0x6f, 0x6d, 0x2f, 0x74, 0x6f, 0x75, 0x63, 0x68, 0x6c, 0x69, 0x6e, 0x65, 0x2f, 0x74, 0x6f, 0x75,
	0x63, 0x68, 0x6c, 0x69, 0x6e, 0x65, 0x2f, 0x61, 0x70, 0x69, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_api_proto_touchline_proto_rawDescOnce sync.Once
	file_api_proto_touchline_proto_rawDescData = file_api_proto_touchline_proto_rawDesc
)

func file_api_proto_touchline_proto_rawDescGZIP() []byte {
	file_api_proto_touchline_proto_rawDescOnce.Do(func() {
		file_api_proto_touchline_proto_rawDescData = protoimpl.X.CompressGZIP(file_api_proto_touchline_proto_rawDescData)
	})
	return file_api_proto_touchline_proto_rawDescData
}

var file_api_proto_touchline_proto_msgTypes = make([]protoimpl.MessageInfo, 3)
var file_api_proto_touchline_proto_goTypes = []any{
	(*Event)(nil),              // 0: touchline.Event
	(*BulkIngestRequest)(nil),  // 1: touchline.BulkIngestRequest
	(*BulkIngestResponse)(nil), // 2: touchline.BulkIngestResponse
}
var file_api_proto_touchline_proto_depIdxs = []int32{
	0, // 0: touchline.BulkIngestRequest.events:type_name -> touchline.Event
	1, // 1: touchline.IngestService.BulkIngestEvents:input_type -> touchline.BulkIngestRequest
	2, // 2: touchline.IngestService.BulkIngestEvents:output_type -> touchline.BulkIngestResponse
	2, // [2:3] is the sub-list for method output_type
	1, // [1:2] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_api_proto_touchline_proto_init() }
func file_api_proto_touchline_proto_init() {
	if File_api_proto_touchline_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_api_proto_touchline_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   3,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_api_proto_touchline_proto_goTypes,
		DependencyIndexes: file_api_proto_touchline_proto_depIdxs,
		MessageInfos:      file_api_proto_touchline_proto_msgTypes,
	}.Build()
	File_api_proto_touchline_proto = out.File
	file_api_proto_touchline_proto_rawDesc = nil
	file_api_proto_touchline_proto_goTypes = nil
	file_api_proto_touchline_proto_depIdxs = nil
}

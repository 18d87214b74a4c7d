// Package grpc provides the gRPC ingest API for the Touchline backend.
package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/touchline/touchline/api/proto"
	"github.com/touchline/touchline/internal/router"
	"github.com/touchline/touchline/internal/store"
	"github.com/touchline/touchline/pkg/types"
)

// maxBatchEvents bounds a single BulkIngestEvents request.
const maxBatchEvents = 10000

// IngestServer implements the IngestService gRPC server.
type IngestServer struct {
	proto.UnimplementedIngestServiceServer
	store    *store.Store
	notifier *router.Notifier
}

// NewIngestServer creates a new gRPC ingest server. The notifier may be
// nil when no read path needs ingest visibility.
func NewIngestServer(st *store.Store, notifier *router.Notifier) *IngestServer {
	return &IngestServer{store: st, notifier: notifier}
}

// BulkIngestEvents handles batch event ingestion via gRPC.
func (s *IngestServer) BulkIngestEvents(ctx context.Context, req *proto.BulkIngestRequest) (*proto.BulkIngestResponse, error) {
	requestID := extractRequestID(ctx)

	if len(req.Events) == 0 {
		return nil, status.Error(codes.InvalidArgument, "events must not be empty")
	}
	if len(req.Events) > maxBatchEvents {
		return nil, status.Errorf(codes.InvalidArgument, "batch exceeds %d events", maxBatchEvents)
	}

	events, err := convertProtoEvents(req.Events)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid event data: %v", err)
	}

	inserted, skipped, err := s.store.InsertEvents(ctx, events)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to insert events: %v", err)
	}

	if s.notifier != nil && inserted > 0 {
		s.publishIngested(events, inserted)
	}

	return &proto.BulkIngestResponse{
		Inserted:  int64(inserted),
		Skipped:   int64(skipped),
		RequestId: requestID,
	}, nil
}

// publishIngested announces one notification per distinct account in
// the batch so cached views covering those accounts reload.
func (s *IngestServer) publishIngested(events []types.ActivityEvent, inserted int) {
	now := time.Now().UnixMilli()
	seen := make(map[string]bool)
	for _, ev := range events {
		key := ev.CustomerOrgID + "\x00" + ev.AccountID
		if seen[key] {
			continue
		}
		seen[key] = true
		s.notifier.Publish(router.Notification{
			Type:          router.EventsIngested,
			CustomerOrgID: ev.CustomerOrgID,
			AccountID:     ev.AccountID,
			Inserted:      inserted,
			TimestampMs:   now,
		})
	}
}

// convertProtoEvents converts proto Event messages to typed events.
func convertProtoEvents(protoEvents []*proto.Event) ([]types.ActivityEvent, error) {
	events := make([]types.ActivityEvent, 0, len(protoEvents))

	for i, pe := range protoEvents {
		if pe.CustomerOrgId == "" {
			return nil, fmt.Errorf("event %d: customer_org_id is required", i)
		}
		if pe.AccountId == "" {
			return nil, fmt.Errorf("event %d: account_id is required", i)
		}
		if pe.TouchpointId == "" {
			return nil, fmt.Errorf("event %d: touchpoint_id is required", i)
		}
		if pe.TimestampMs <= 0 {
			return nil, fmt.Errorf("event %d: timestamp_ms is required", i)
		}

		ev := types.ActivityEvent{
			CustomerOrgID:         pe.CustomerOrgId,
			AccountID:             pe.AccountId,
			TouchpointID:          pe.TouchpointId,
			Timestamp:             time.UnixMilli(pe.TimestampMs).UTC(),
			Activity:              pe.Activity,
			Channel:               pe.Channel,
			Status:                pe.Status,
			RecordType:            pe.RecordType,
			SourceRecordType:      pe.SourceRecordType,
			SourceRecordID:        pe.SourceRecordId,
			CampaignID:            pe.CampaignId,
			CampaignName:          pe.CampaignName,
			Direction:             pe.Direction,
			InvolvedTeamIDs:       pe.InvolvedTeamIds,
			RelatedOpportunityIDs: pe.RelatedOpportunityIds,
			ActivityGroupingID:    pe.ActivityGroupingId,
		}

		if len(pe.People) > 0 {
			var people []types.PersonRef
			if err := json.Unmarshal(pe.People, &people); err != nil {
				return nil, fmt.Errorf("event %d: invalid people JSON: %v", i, err)
			}
			ev.People = people
		}

		events = append(events, ev)
	}

	return events, nil
}

// extractRequestID extracts or generates a request ID from the gRPC context.
func extractRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get("x-request-id"); len(ids) > 0 {
			return ids[0]
		}
	}
	return uuid.New().String()
}

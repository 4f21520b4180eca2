// Package ritual implements the ritual.RitualService gRPC handlers.
package ritual

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	ritualpb "github.com/withmystar/ritual/api/gen/go/ritual"
	grpcmeta "github.com/withmystar/ritual/internal/api/grpc/metadata"
	apperrors "github.com/withmystar/ritual/internal/platform/errors"
	"github.com/withmystar/ritual/internal/platform/logging"
)

const (
	// MilestoneInterval is how many rituals separate two milestones.
	MilestoneInterval = 5
	// MaxRitualNameBytes caps the size of a ritual name.
	MaxRitualNameBytes = 1024

	syncTraitsMessage = "Successfully synchronized traits."
)

// Recorder receives ritual service events for metrics.
type Recorder interface {
	ObserveRitual()
	ObserveMilestone()
	ObserveTraitSync()
}

type noopRecorder struct{}

func (noopRecorder) ObserveRitual()    {}
func (noopRecorder) ObserveMilestone() {}
func (noopRecorder) ObserveTraitSync() {}

// Service exposes ritual gRPC operations and owns the ritual count.
type Service struct {
	ritualpb.UnimplementedRitualServiceServer
	rituals  atomic.Uint64
	logger   *slog.Logger
	recorder Recorder
}

// NewService creates a ritual service with a zero ritual count.
func NewService(logger *slog.Logger, recorder Recorder) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		logger:   logging.OrDiscard(logger),
		recorder: recorder,
	}
}

// RitualCount returns the number of rituals performed so far.
func (s *Service) RitualCount() uint64 {
	return s.rituals.Load()
}

// PerformRitual performs one named ritual and advances the ritual count.
func (s *Service) PerformRitual(ctx context.Context, in *ritualpb.RitualRequest) (*ritualpb.RitualResponse, error) {
	if in == nil {
		return nil, apperrors.New(apperrors.CodeRequestMissing, "perform ritual request is required").
			GRPCStatus(apperrors.LocaleFromContext(ctx))
	}
	requestID := grpcmeta.RequestIDFromContext(ctx)
	name := in.GetName()
	s.logger.InfoContext(ctx, "received ritual request", "name", name, "request_id", requestID)

	if len(name) > MaxRitualNameBytes {
		return nil, apperrors.WithMetadata(
			apperrors.CodeRitualNameTooLong,
			fmt.Sprintf("ritual name is %d bytes, limit is %d", len(name), MaxRitualNameBytes),
			map[string]string{"max_bytes": strconv.Itoa(MaxRitualNameBytes)},
		).GRPCStatus(apperrors.LocaleFromContext(ctx))
	}

	count := s.rituals.Add(1)
	if count%MilestoneInterval == 0 {
		s.logger.InfoContext(ctx, "milestone reached", "rituals", count, "request_id", requestID)
		s.recorder.ObserveMilestone()
	}
	s.recorder.ObserveRitual()

	resp := &ritualpb.RitualResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully performed ritual: %s.", name),
	}
	s.logger.DebugContext(ctx, "sending ritual response",
		"success", resp.GetSuccess(),
		"message", resp.GetMessage(),
		"count", count,
		"request_id", requestID,
	)
	return resp, nil
}

// SyncTraits acknowledges a trait synchronization request without changing
// any state.
func (s *Service) SyncTraits(ctx context.Context, in *ritualpb.SyncTraitsRequest) (*ritualpb.RitualResponse, error) {
	requestID := grpcmeta.RequestIDFromContext(ctx)
	s.logger.InfoContext(ctx, "received trait synchronization request",
		"traits", len(in.GetTraits()),
		"request_id", requestID,
	)
	s.recorder.ObserveTraitSync()

	resp := &ritualpb.RitualResponse{
		Success: true,
		Message: syncTraitsMessage,
	}
	s.logger.DebugContext(ctx, "sending trait synchronization response",
		"success", resp.GetSuccess(),
		"message", resp.GetMessage(),
		"request_id", requestID,
	)
	return resp, nil
}

package calendarplanner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thegaltinator/alfred-fabric/ent"
	"github.com/thegaltinator/alfred-fabric/ent/proposal"
)

// Proposal is a pending calendar change awaiting user confirmation.
type Proposal struct {
	ID                 string
	UserID             string
	ThreadID           string
	PrimaryEventID     string
	ConflictingEventID string
	PlanJSON           string
	DeltaID            string
	Status             string
}

// ProposalStore persists proposals via Ent.
type ProposalStore struct {
	client *ent.Client
}

// NewProposalStore constructs a ProposalStore backed by the given Ent client.
func NewProposalStore(client *ent.Client) *ProposalStore {
	return &ProposalStore{client: client}
}

// Create persists a new pending proposal, assigning its ID.
func (s *ProposalStore) Create(ctx context.Context, p Proposal) (Proposal, error) {
	p.ID = uuid.New().String()
	builder := s.client.Proposal.Create().
		SetID(p.ID).
		SetUserID(p.UserID).
		SetThreadID(p.ThreadID).
		SetPrimaryEventID(p.PrimaryEventID).
		SetPlanJSON(p.PlanJSON).
		SetStatus(proposal.StatusPending)
	if p.ConflictingEventID != "" {
		builder = builder.SetConflictingEventID(p.ConflictingEventID)
	}
	if p.DeltaID != "" {
		builder = builder.SetDeltaID(p.DeltaID)
	}
	if err := builder.Exec(ctx); err != nil {
		return Proposal{}, fmt.Errorf("calendarplanner: create proposal: %w", err)
	}
	p.Status = string(proposal.StatusPending)
	return p, nil
}

// FindByDelta returns an existing proposal for (userID, deltaID) if one was
// already created, so a retried calendar delta does not produce a second
// proposal: retried deltas are deduplicated by delta_id.
func (s *ProposalStore) FindByDelta(ctx context.Context, userID, deltaID string) (Proposal, bool, error) {
	row, err := s.client.Proposal.Query().
		Where(proposal.UserID(userID), proposal.DeltaID(deltaID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return Proposal{}, false, nil
	}
	if err != nil {
		return Proposal{}, false, fmt.Errorf("calendarplanner: find proposal by delta %s: %w", deltaID, err)
	}
	return fromRow(row), true, nil
}

// FindPendingByEvent returns an existing pending proposal already made for
// primaryEventID, if any: used to distinguish an event's first proposal
// (calendar.plan.proposed) from a later revision (calendar.plan.new_version).
func (s *ProposalStore) FindPendingByEvent(ctx context.Context, userID, primaryEventID string) (Proposal, bool, error) {
	row, err := s.client.Proposal.Query().
		Where(
			proposal.UserID(userID),
			proposal.PrimaryEventID(primaryEventID),
			proposal.StatusEQ(proposal.StatusPending),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return Proposal{}, false, nil
	}
	if err != nil {
		return Proposal{}, false, fmt.Errorf("calendarplanner: find pending proposal for event %s: %w", primaryEventID, err)
	}
	return fromRow(row), true, nil
}

// FindByID loads a proposal by its ID.
func (s *ProposalStore) FindByID(ctx context.Context, id string) (Proposal, error) {
	row, err := s.client.Proposal.Get(ctx, id)
	if err != nil {
		return Proposal{}, fmt.Errorf("calendarplanner: find proposal %s: %w", id, err)
	}
	return fromRow(row), nil
}

// MarkStale flags a proposal stale after a confirm-path drift check:
// the proposed plan must not be applied once drifted.
func (s *ProposalStore) MarkStale(ctx context.Context, id string) error {
	err := s.client.Proposal.UpdateOneID(id).
		SetStatus(proposal.StatusStale).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("calendarplanner: mark proposal %s stale: %w", id, err)
	}
	return nil
}

// MarkApplied flags a proposal applied once the user confirms and no drift
// was detected.
func (s *ProposalStore) MarkApplied(ctx context.Context, id string) error {
	err := s.client.Proposal.UpdateOneID(id).
		SetStatus(proposal.StatusApplied).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("calendarplanner: mark proposal %s applied: %w", id, err)
	}
	return nil
}

func fromRow(row *ent.Proposal) Proposal {
	return Proposal{
		ID:                 row.ID,
		UserID:             row.UserID,
		ThreadID:           row.ThreadID,
		PrimaryEventID:     row.PrimaryEventID,
		ConflictingEventID: row.ConflictingEventID,
		PlanJSON:           row.PlanJSON,
		DeltaID:            row.DeltaID,
		Status:             string(row.Status),
	}
}

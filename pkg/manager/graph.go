// Package manager implements the Manager graph and checkpoint store: the
// directed workflow that reacts to typed whiteboard events by
// calling collaborators, signalling the productivity control channel, and
// emitting prompts back to the whiteboard.
package manager

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/thegaltinator/alfred-fabric/pkg/planner"
	"github.com/thegaltinator/alfred-fabric/pkg/streams"
	"github.com/thegaltinator/alfred-fabric/pkg/whiteboard"
)

// Event is the {source, kind, payload} triple the graph dispatches on,
// matching normalize.TypedEvent's shape without importing that package:
// the graph only depends on the closed taxonomy, not on how it got typed.
type Event struct {
	Source  string
	Kind    string
	Payload map[string]any
}

// NormalizedEvent is one typed whiteboard entry routed through the graph.
type NormalizedEvent struct {
	WBID     string
	UserID   string
	ThreadID string
	Event    Event
}

// Bus is the whiteboard append contract the graph's emit_prompt node needs.
type Bus interface {
	AppendWithThread(ctx context.Context, userID, threadID string, values map[string]any) (string, error)
}

// ProposalConfirmer applies a user-confirmed calendar proposal behind a
// drift check. Implemented by the Calendar-Planner subagent's Confirm.
type ProposalConfirmer interface {
	Confirm(ctx context.Context, proposalID, threadID string) error
}

// PlannerClient is the Planner collaborator contract.
type PlannerClient interface {
	Run(ctx context.Context, req planner.RunRequest) (planner.RunResponse, error)
}

// GraphConfig wires the Manager Graph's collaborators. Checkpoints is
// optional: a nil store disables per-node idempotency tracking (useful for
// the graph's own unit tests, which assert routing rather than dedup).
type GraphConfig struct {
	PlannerURL     string
	ProdControlURL string
	Bus            Bus
	Planner        PlannerClient
	ControlStreams *streams.Client
	Checkpoints    CheckpointStore
	Confirmer      ProposalConfirmer
	Logger         *slog.Logger
}

// ManagerGraph is the compiled ingest → route → branch workflow.
type ManagerGraph struct {
	bus         Bus
	planner     PlannerClient
	control     *streams.Client
	checkpoints CheckpointStore
	confirmer   ProposalConfirmer
	logger      *slog.Logger
}

// NewManagerGraph compiles a ManagerGraph from cfg. A Bus is required;
// Planner and ControlStreams may be nil only if the caller never routes an
// event that needs them (production wiring always supplies both).
func NewManagerGraph(cfg GraphConfig) (*ManagerGraph, error) {
	if cfg.Bus == nil {
		return nil, fmt.Errorf("manager: GraphConfig.Bus is required")
	}
	plannerClient := cfg.Planner
	if plannerClient == nil && cfg.PlannerURL != "" {
		plannerClient = planner.New(cfg.PlannerURL)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ManagerGraph{
		bus:         cfg.Bus,
		planner:     plannerClient,
		control:     cfg.ControlStreams,
		checkpoints: cfg.Checkpoints,
		confirmer:   cfg.Confirmer,
		logger:      logger.With("component", "manager_graph"),
	}, nil
}

// Run routes evt from ingest_wb through router into the appropriate branch.
// Idempotency for planner_call/prod_recalc_signal is enforced here via
// Checkpoints when configured; whole-event dedup (skip events already at or
// before last_wb_id_processed) is the Runtime Worker's responsibility, not
// the graph's: see ShouldSkip.
func (g *ManagerGraph) Run(ctx context.Context, evt NormalizedEvent) error {
	g.logger.Debug("ingest_wb", "wb_id", evt.WBID, "user_id", evt.UserID, "source", evt.Event.Source, "kind", evt.Event.Kind)
	return g.router(ctx, evt)
}

// router dispatches by source. An unmatched source is dropped: observable
// via the log line, not an error.
func (g *ManagerGraph) router(ctx context.Context, evt NormalizedEvent) error {
	switch evt.Event.Source {
	case "calendar":
		return g.calendarBranch(ctx, evt)
	case "prod":
		return g.prodBranch(ctx, evt)
	case "email":
		return g.emailBranch(ctx, evt)
	case "manager":
		if evt.Event.Kind == "user_action" {
			return g.userActionBranch(ctx, evt)
		}
		g.logger.Debug("router: dropped", "wb_id", evt.WBID, "source", evt.Event.Source, "kind", evt.Event.Kind)
		return nil
	default:
		g.logger.Debug("router: dropped", "wb_id", evt.WBID, "source", evt.Event.Source, "kind", evt.Event.Kind)
		return nil
	}
}

// calendarBranch handles calendar deltas: always planner_call + a
// control-channel recompute signal, plus a prompt when today is impacted.
func (g *ManagerGraph) calendarBranch(ctx context.Context, evt NormalizedEvent) error {
	switch evt.Event.Kind {
	case "plan.proposed", "plan.new_version":
		plan, err := g.plannerCall(ctx, evt)
		if err != nil {
			return err
		}
		if err := g.prodRecalcSignal(ctx, evt, plan); err != nil {
			return err
		}
		if todayImpacted(evt.Event.Payload) {
			return g.emitPrompt(ctx, evt, promptSpec{
				content: fmt.Sprintf("Your calendar changed: %s", stringPayload(evt.Event.Payload, "summary")),
				options: []string{"apply", "defer", "dismiss"},
			})
		}
		return nil
	default:
		g.logger.Debug("calendar_branch: unhandled kind", "wb_id", evt.WBID, "kind", evt.Event.Kind)
		return nil
	}
}

// todayImpacted reports whether a calendar delta's "impact" payload field
// marks it as affecting today's schedule.
func todayImpacted(payload map[string]any) bool {
	impact, _ := payload["impact"].(string)
	return impact == "today" || impact == "immediate"
}

// prodBranch composes a prompt from the activity label for underrun,
// overrun and nudge alike.
func (g *ManagerGraph) prodBranch(ctx context.Context, evt NormalizedEvent) error {
	label := stringPayload(evt.Event.Payload, "activity_label")
	var content string
	switch evt.Event.Kind {
	case "overrun":
		content = fmt.Sprintf("You are still in %s. Do you want to refocus?", label)
	case "underrun":
		content = fmt.Sprintf("You finished %s early.", label)
	case "nudge":
		content = fmt.Sprintf("Reminder: %s.", label)
	default:
		g.logger.Debug("prod_branch: unhandled kind", "wb_id", evt.WBID, "kind", evt.Event.Kind)
		return nil
	}
	return g.emitPrompt(ctx, evt, promptSpec{
		content: content,
		options: []string{"refocus", "update_plan", "dismiss"},
	})
}

// emailBranch always prompts: reply decisions are never auto-applied.
func (g *ManagerGraph) emailBranch(ctx context.Context, evt NormalizedEvent) error {
	if evt.Event.Kind != "reply_needed" {
		g.logger.Debug("email_branch: unhandled kind", "wb_id", evt.WBID, "kind", evt.Event.Kind)
		return nil
	}
	summary := stringPayload(evt.Event.Payload, "summary")
	return g.emitPrompt(ctx, evt, promptSpec{
		content: fmt.Sprintf("Email needs a reply: %s", summary),
		options: []string{"read_aloud", "send", "dismiss"},
	})
}

// userActionBranch resolves a previously emitted prompt. Every recognized
// choice clears the pending prompt; update_plan re-enters
// planner_call/prod_recalc_signal and summarizes, send hands the draft off
// to the mailer's control channel, apply runs the drift-checked calendar
// confirm, and refocus/defer/dismiss/read_aloud resolve with no further
// collaborator calls.
func (g *ManagerGraph) userActionBranch(ctx context.Context, evt NormalizedEvent) error {
	// A re-appended action (same action_id, fresh wb_id) must not re-run
	// the branch: the per-node keys are wb_id-scoped, so dedup here is
	// keyed on the action itself.
	actionKey := ""
	if actionID := stringPayload(evt.Event.Payload, "action_id"); actionID != "" {
		actionKey = SideEffectKey(evt.UserID, evt.ThreadID, "action:"+actionID, "user_action")
		_, skip, err := g.checkSideEffect(ctx, evt, actionKey)
		if err != nil {
			return err
		}
		if skip {
			g.logger.Debug("user_action_branch: action already resolved", "wb_id", evt.WBID, "action_id", actionID)
			return nil
		}
	}

	if err := g.resolveUserAction(ctx, evt); err != nil {
		return err
	}
	if actionKey == "" {
		return nil
	}
	return g.recordSideEffect(ctx, evt, actionKey, nil)
}

func (g *ManagerGraph) resolveUserAction(ctx context.Context, evt NormalizedEvent) error {
	choice := stringPayload(evt.Event.Payload, "choice")
	switch choice {
	case "update_plan":
		if err := g.clearPendingPrompt(ctx, evt); err != nil {
			return err
		}
		plan, err := g.plannerCall(ctx, evt)
		if err != nil {
			return err
		}
		if err := g.prodRecalcSignal(ctx, evt, plan); err != nil {
			return err
		}
		return g.emitPrompt(ctx, evt, promptSpec{
			content: fmt.Sprintf("Plan updated to version %s.", plan.Version),
			options: []string{"dismiss"},
		})
	case "send":
		if err := g.mailSendSignal(ctx, evt); err != nil {
			return err
		}
		return g.clearPendingPrompt(ctx, evt)
	case "apply":
		if err := g.calendarConfirm(ctx, evt); err != nil {
			return err
		}
		return g.clearPendingPrompt(ctx, evt)
	case "refocus", "defer", "dismiss", "read_aloud":
		return g.clearPendingPrompt(ctx, evt)
	default:
		g.logger.Warn("user_action_branch: unrecognized choice", "wb_id", evt.WBID, "choice", choice)
		return nil
	}
}

// mailSendSignal writes email.send.confirmed {message_id, draft_hash} to
// the internal mail control channel for the Mailer Worker to pick up. The
// draft hash pins the exact text the user approved, so a draft revised
// after approval cannot be sent under the old confirmation.
func (g *ManagerGraph) mailSendSignal(ctx context.Context, evt NormalizedEvent) error {
	key := SideEffectKey(evt.UserID, evt.ThreadID, evt.WBID, "mail_send_signal")
	_, skip, err := g.checkSideEffect(ctx, evt, key)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	if g.control != nil {
		messageID := metadataString(evt.Event.Payload, "message_id")
		draftHash := metadataString(evt.Event.Payload, "draft_hash")
		if draftHash == "" {
			if draft := metadataString(evt.Event.Payload, "draft"); draft != "" {
				sum := sha256.Sum256([]byte(draft))
				draftHash = hex.EncodeToString(sum[:])
			}
		}
		controlKey := whiteboard.ControlKey(evt.UserID, whiteboard.ControlMail)
		values := map[string]any{
			"type":       "email.send.confirmed",
			"message_id": messageID,
			"draft_hash": draftHash,
			"thread_id":  evt.ThreadID,
		}
		if _, err := g.control.Append(ctx, controlKey, values, whiteboard.DefaultMaxLenApprox); err != nil {
			return fmt.Errorf("manager: mail_send_signal: %w", err)
		}
	}

	return g.recordSideEffect(ctx, evt, key, nil)
}

// calendarConfirm hands a confirmed proposal to the Calendar-Planner's
// drift-checked writer. The confirmer itself decides whether to apply or
// mark the proposal stale; the graph only guards against re-running the
// confirm for a replayed user action.
func (g *ManagerGraph) calendarConfirm(ctx context.Context, evt NormalizedEvent) error {
	key := SideEffectKey(evt.UserID, evt.ThreadID, evt.WBID, "calendar_confirm")
	_, skip, err := g.checkSideEffect(ctx, evt, key)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	if g.confirmer != nil {
		proposalID := metadataString(evt.Event.Payload, "proposal_id")
		if proposalID == "" {
			g.logger.Warn("calendar_confirm: user action carries no proposal_id", "wb_id", evt.WBID)
		} else if err := g.confirmer.Confirm(ctx, proposalID, evt.ThreadID); err != nil {
			return fmt.Errorf("manager: calendar_confirm: %w", err)
		}
	}

	return g.recordSideEffect(ctx, evt, key, nil)
}

// metadataString reads key from the action's metadata mapping, falling back
// to a flattened top-level payload field (stream round-trips flatten nested
// values to strings).
func metadataString(payload map[string]any, key string) string {
	if md, ok := payload["metadata"].(map[string]any); ok {
		if v, ok := md[key].(string); ok && v != "" {
			return v
		}
	}
	return stringPayload(payload, key)
}

// plannedResult carries just enough of a Planner response for
// prod_recalc_signal and downstream checkpoint bookkeeping.
type plannedResult struct {
	PlanID  string
	Version string
}

// plannerCall invokes the Planner collaborator, guarded by the
// (user, thread, wb_id, "planner_call") idempotency key.
func (g *ManagerGraph) plannerCall(ctx context.Context, evt NormalizedEvent) (plannedResult, error) {
	key := SideEffectKey(evt.UserID, evt.ThreadID, evt.WBID, "planner_call")
	cp, skip, err := g.checkSideEffect(ctx, evt, key)
	if err != nil {
		return plannedResult{}, err
	}
	if skip {
		return plannedResult{PlanID: cp.LastPlanID, Version: cp.LastPlanVersion}, nil
	}

	if g.planner == nil {
		return plannedResult{}, fmt.Errorf("manager: planner_call requires a configured PlannerClient")
	}
	resp, err := g.planner.Run(ctx, planner.RunRequest{
		UserID:       evt.UserID,
		ThreadID:     evt.ThreadID,
		PlanDate:     stringPayload(evt.Event.Payload, "plan_date"),
		TimeBlock:    stringPayload(evt.Event.Payload, "time_block"),
		ActivityType: stringPayload(evt.Event.Payload, "activity_type"),
	})
	if err != nil {
		return plannedResult{}, fmt.Errorf("manager: planner_call: %w", err)
	}

	if err := g.recordSideEffect(ctx, evt, key, func(cp *Checkpoint) {
		cp.LastPlanID = resp.PlanID
		cp.LastPlanVersion = resp.Version
	}); err != nil {
		return plannedResult{}, err
	}
	return plannedResult{PlanID: resp.PlanID, Version: resp.Version}, nil
}

// prodRecalcSignal writes the recompute signal to the internal
// productivity control channel, never to the whiteboard.
func (g *ManagerGraph) prodRecalcSignal(ctx context.Context, evt NormalizedEvent, plan plannedResult) error {
	key := SideEffectKey(evt.UserID, evt.ThreadID, evt.WBID, "prod_recalc_signal")
	_, skip, err := g.checkSideEffect(ctx, evt, key)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	if g.control != nil {
		controlKey := whiteboard.ControlKey(evt.UserID, whiteboard.ControlProd)
		values := map[string]any{
			"plan_id":  plan.PlanID,
			"version":  plan.Version,
			"block_id": stringPayload(evt.Event.Payload, "block_id"),
		}
		if _, err := g.control.Append(ctx, controlKey, values, whiteboard.DefaultMaxLenApprox); err != nil {
			return fmt.Errorf("manager: prod_recalc_signal: %w", err)
		}
	}

	return g.recordSideEffect(ctx, evt, key, nil)
}

// promptSpec is emit_prompt's input: the rendered content and the choice
// set a human can resolve it with.
type promptSpec struct {
	content string
	options []string
}

// emitPrompt appends a single manager.prompt entry and records
// pending_prompt_id, guarded by its own idempotency key.
func (g *ManagerGraph) emitPrompt(ctx context.Context, evt NormalizedEvent, spec promptSpec) error {
	key := SideEffectKey(evt.UserID, evt.ThreadID, evt.WBID, "emit_prompt")
	_, skip, err := g.checkSideEffect(ctx, evt, key)
	if err != nil {
		return err
	}
	if skip {
		return nil
	}

	actionID := evt.WBID + ":prompt"
	values := map[string]any{
		"type":         "manager.prompt",
		"content":      spec.content,
		"options":      spec.options,
		"action_id":    actionID,
		"wb_parent_id": evt.WBID,
		"source":       evt.Event.Source,
		"kind":         evt.Event.Kind,
	}
	if _, err := g.bus.AppendWithThread(ctx, evt.UserID, evt.ThreadID, values); err != nil {
		return fmt.Errorf("manager: emit_prompt: %w", err)
	}

	return g.recordSideEffect(ctx, evt, key, func(cp *Checkpoint) {
		cp.PendingPromptID = actionID
	})
}

func (g *ManagerGraph) clearPendingPrompt(ctx context.Context, evt NormalizedEvent) error {
	if g.checkpoints == nil {
		return nil
	}
	cp, err := g.checkpoints.Get(ctx, evt.UserID, evt.ThreadID)
	if err != nil {
		return fmt.Errorf("manager: clear pending prompt: %w", err)
	}
	cp.PendingPromptID = ""
	if err := g.checkpoints.Save(ctx, cp); err != nil {
		return fmt.Errorf("manager: clear pending prompt: %w", err)
	}
	return nil
}

// checkSideEffect reports whether key is already recorded. When no
// Checkpoints store is configured, it always reports "not recorded, run
// it": the caller (a graph unit test) is expected to re-run freely.
func (g *ManagerGraph) checkSideEffect(ctx context.Context, evt NormalizedEvent, key string) (Checkpoint, bool, error) {
	if g.checkpoints == nil {
		return Checkpoint{}, false, nil
	}
	cp, err := g.checkpoints.Get(ctx, evt.UserID, evt.ThreadID)
	if err != nil {
		return Checkpoint{}, false, fmt.Errorf("manager: load checkpoint: %w", err)
	}
	return cp, HasSideEffect(cp, key), nil
}

// recordSideEffect persists key plus any mutation mutate applies to the
// checkpoint, in a single save. No-op without a configured Checkpoints store.
func (g *ManagerGraph) recordSideEffect(ctx context.Context, evt NormalizedEvent, key string, mutate func(*Checkpoint)) error {
	if g.checkpoints == nil {
		return nil
	}
	cp, err := g.checkpoints.Get(ctx, evt.UserID, evt.ThreadID)
	if err != nil {
		return fmt.Errorf("manager: load checkpoint: %w", err)
	}
	g.checkpoints.RecordSideEffect(ctx, &cp, key)
	if mutate != nil {
		mutate(&cp)
	}
	if err := g.checkpoints.Save(ctx, cp); err != nil {
		return fmt.Errorf("manager: save checkpoint: %w", err)
	}
	return nil
}

func stringPayload(payload map[string]any, key string) string {
	v, _ := payload[key].(string)
	return v
}

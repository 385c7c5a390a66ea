package game

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mealrun/internal/entity"
	"github.com/samdwyer/mealrun/internal/telemetry"
	"github.com/samdwyer/mealrun/internal/world"
)

// Messages shown on the message line.
const (
	MsgNoMap   = "No map selected!"
	MsgPaused  = "Paused"
	MsgWin     = "Level complete!"
	MsgDefeat  = "You lost!"
	MsgStopped = "Stopped"
)

// Frame is everything a renderer needs to draw one screen.
type Frame struct {
	Grid    world.Snapshot
	Status  Status
	Facing  entity.Direction
	Message string
}

// RedrawFunc receives frames from the redraw timer and terminal outcomes.
type RedrawFunc func(Frame)

// Session owns a field, its two timers and the run lifecycle.
// All state changes happen under one lock, so ticks and input never interleave.
type Session struct {
	mu       sync.Mutex
	field    *world.Field
	logger   zerolog.Logger
	status   Status
	message  string
	runID    string
	runGen   uint64
	runCtx   context.Context
	onRedraw RedrawFunc
	closed   bool

	stepper  *Ticker
	redrawer *Ticker
}

// NewSession creates a stopped session over field.
func NewSession(field *world.Field, cfg Config, logger zerolog.Logger) *Session {
	s := &Session{
		field:  field,
		logger: logger,
		status: StatusStopped,
		runCtx: context.Background(),
	}
	s.stepper = NewTicker(cfg.StepPeriod())
	s.redrawer = NewTicker(cfg.RedrawPeriod())
	return s
}

// OnRedraw sets the function that receives frames.
func (s *Session) OnRedraw(fn RedrawFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRedraw = fn
}

// ChooseMap selects a registered map. It is ignored while running or for
// unknown ids, and reports whether the selection changed.
func (s *Session) ChooseMap(levelID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusRunning {
		return false
	}
	if !s.field.ChoiceMap(levelID) {
		s.logger.Debug().Str("level", levelID).Msg("unknown level ignored")
		return false
	}
	s.message = "Level " + levelID
	return true
}

// Start begins or resumes a run. A fresh grid is built from the selected map
// when there is no run in progress. Without a selected map Start only sets
// the message and returns false.
func (s *Session) Start(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	if s.status == StatusRunning {
		return true
	}

	resumed := !s.field.NeedsReload()
	if !resumed {
		if err := s.field.Instantiate(); err != nil {
			s.message = MsgNoMap
			s.logger.Warn().Err(err).Msg("start ignored")
			return false
		}
		s.runID = uuid.NewString()
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.start")
	span.SetAttributes(
		attribute.String("run.id", s.runID),
		attribute.String("level.id", s.field.CurrentMap()),
		attribute.Bool("resumed", resumed),
		attribute.Int("meal.target", s.field.MealTarget()),
	)
	span.End()

	// Each start gets its own generation so a tick left over from an
	// earlier start is dropped.
	s.runGen++
	gen := s.runGen
	s.runCtx = ctx
	s.stepper.Start(ctx, func() { s.tick(gen) })
	s.redrawer.Start(ctx, s.Redraw)
	s.status = StatusRunning
	s.message = ""

	s.logger.Info().
		Str("run_id", s.runID).
		Str("level", s.field.CurrentMap()).
		Bool("resumed", resumed).
		Msg("run started")
	return true
}

// Stop halts both timers. Stopping a stopped session does nothing and
// returns false.
func (s *Session) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.stopLocked() {
		return false
	}
	s.message = MsgPaused
	return true
}

// Toggle starts a stopped session or stops a running one.
func (s *Session) Toggle(ctx context.Context) {
	if s.Status() == StatusRunning {
		s.Stop()
		return
	}
	s.Start(ctx)
}

// BreakGame stops both timers regardless of the current status.
func (s *Session) BreakGame() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stepper.Stop()
	s.redrawer.Stop()
	if s.status == StatusRunning {
		s.message = MsgStopped
	}
	s.status = StatusStopped
	s.logger.Info().Str("run_id", s.runID).Msg("game force-stopped")
}

// Close force-stops the session and detaches the renderer. A closed
// session cannot be started again.
func (s *Session) Close() {
	s.BreakGame()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.onRedraw = nil
}

// SetDirection changes the player's facing. It returns false when there
// is no player on the grid yet.
func (s *Session) SetDirection(d entity.Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.SetFacing(d)
}

// Step advances the player one cell in its facing direction and applies
// win or defeat. It returns OutcomeNone while the session is stopped.
// Terminal outcomes draw a final frame, since the redraw timer is stopped
// with the run.
func (s *Session) Step() world.Outcome {
	s.mu.Lock()
	if s.status != StatusRunning {
		s.mu.Unlock()
		return world.OutcomeNone
	}
	outcome := s.stepLocked()
	s.mu.Unlock()

	if outcome.Terminal() {
		s.Redraw()
	}
	return outcome
}

// tick is the auto-step timer callback for the start numbered gen.
func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	if s.status != StatusRunning || gen != s.runGen {
		s.mu.Unlock()
		return
	}
	outcome := s.stepLocked()
	s.mu.Unlock()

	if outcome.Terminal() {
		s.Redraw()
	}
}

func (s *Session) stepLocked() world.Outcome {
	before := s.field.PlayerPos()
	outcome := s.field.Step()

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(s.runCtx, "player.step")
	span.SetAttributes(
		attribute.String("run.id", s.runID),
		attribute.String("outcome", outcome.String()),
		attribute.Int("meal.eaten", s.field.MealEaten()),
	)
	span.End()

	switch outcome {
	case world.OutcomeBlocked:
		s.logger.Debug().Stringer("pos", before).Msg("obstacle, player stopped")
	case world.OutcomeWin:
		s.finishLocked(outcome, MsgWin)
	case world.OutcomeDefeat:
		s.finishLocked(outcome, MsgDefeat)
	}
	return outcome
}

// finishLocked ends the run: timers stop and the eaten counter resets.
func (s *Session) finishLocked(outcome world.Outcome, msg string) {
	eaten := s.field.MealEaten()
	s.stopLocked()
	s.field.EndRun()
	s.message = msg

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(s.runCtx, "session.end")
	span.SetAttributes(
		attribute.String("run.id", s.runID),
		attribute.String("level.id", s.field.CurrentMap()),
		attribute.String("outcome", outcome.String()),
		attribute.Int("meal.eaten", eaten),
	)
	span.End()

	s.logger.Info().
		Str("run_id", s.runID).
		Str("level", s.field.CurrentMap()).
		Stringer("outcome", outcome).
		Int("meal_eaten", eaten).
		Msg(msg)
}

// stopLocked stops both timers if running.
func (s *Session) stopLocked() bool {
	if s.status != StatusRunning {
		return false
	}
	s.stepper.Stop()
	s.redrawer.Stop()
	s.status = StatusStopped

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(s.runCtx, "session.stop")
	span.SetAttributes(attribute.String("run.id", s.runID))
	span.End()
	return true
}

// Redraw sends the current frame to the redraw function.
func (s *Session) Redraw() {
	s.mu.Lock()
	fn := s.onRedraw
	f := s.frameLocked()
	s.mu.Unlock()

	if fn != nil {
		fn(f)
	}
}

// Frame returns a copy of the current state for rendering.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

func (s *Session) frameLocked() Frame {
	f := Frame{
		Grid:    s.field.Snapshot(),
		Status:  s.status,
		Facing:  entity.DirLeft,
		Message: s.message,
	}
	if p := s.field.Player(); p != nil {
		f.Facing = p.Facing
	}
	return f
}

// Status returns the running state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// CurrentMap returns the selected level id, or "" if none.
func (s *Session) CurrentMap() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.field.CurrentMap()
}

// Message returns the current message line.
func (s *Session) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}


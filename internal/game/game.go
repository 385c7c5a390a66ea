package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/samdwyer/mealrun/internal/gamedata"
	"github.com/samdwyer/mealrun/internal/ui"
	"github.com/samdwyer/mealrun/internal/world"
)

// Game connects the terminal, the renderer and a session.
type Game struct {
	cfg      Config
	logger   zerolog.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	field    *world.Field
	session  *Session
	running  bool
}

// New loads the levels and palette and opens the terminal screen.
func New(ctx context.Context, cfg Config, logger zerolog.Logger) (*Game, error) {
	field, err := LoadField(ctx, cfg)
	if err != nil {
		return nil, err
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		logger:   logger,
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		field:    field,
		session:  NewSession(field, cfg, logger),
		running:  true,
	}
	g.session.OnRedraw(g.draw)
	return g, nil
}

// LoadField registers the configured levels on a new field. Levels come
// from cfg.LevelsFile when set, otherwise from the embedded data.
func LoadField(ctx context.Context, cfg Config) (*world.Field, error) {
	var (
		levels []gamedata.LevelDef
		err    error
	)
	if cfg.LevelsFile != "" {
		levels, err = gamedata.LoadLevelsFile(cfg.LevelsFile)
	} else {
		levels, err = gamedata.LoadLevels()
	}
	if err != nil {
		return nil, err
	}

	field := world.NewField()
	for _, l := range levels {
		if err := field.AddMap(ctx, l.ID, l.Rows); err != nil {
			return nil, err
		}
	}
	if !field.HasMap(cfg.Level) {
		return nil, fmt.Errorf("default level %q is not defined", cfg.Level)
	}
	return field, nil
}

// Run executes the input loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	g.logger.Info().Strs("levels", g.field.Levels()).Msg("game ready")
	g.session.Redraw()

	for g.running {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		g.handleInput(ctx)
	}
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.apply(ctx, TranslateKey(ev))
	case *tcell.EventResize:
		g.screen.Sync()
		g.session.Redraw()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// apply executes a translated command against the session.
func (g *Game) apply(ctx context.Context, cmd Command) {
	switch cmd.Action {
	case ActionNone:
		return
	case ActionQuit:
		g.session.BreakGame()
		g.running = false
		return
	case ActionFace:
		g.session.SetDirection(cmd.Dir)
	case ActionToggle:
		if g.session.Status() == StatusStopped && g.session.CurrentMap() == "" {
			g.session.ChooseMap(g.cfg.Level)
		}
		g.session.Toggle(ctx)
	case ActionForceStop:
		g.session.BreakGame()
	case ActionChooseLevel:
		g.session.ChooseMap(cmd.Level)
	}

	g.logger.Debug().Stringer("action", cmd.Action).Msg("key")
	g.session.Redraw()
}

// draw renders a session frame.
func (g *Game) draw(f Frame) {
	g.renderer.Render(f.Grid, ui.HUD{
		Status:  f.Status.String(),
		Facing:  f.Facing.String(),
		Message: f.Message,
	})
}

// Close stops the session and restores the terminal.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Close()
	}
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}

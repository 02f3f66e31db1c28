// Package client runs the interactive game loop for one terminal: input,
// fixed-cadence simulation advance, canvas rendering and the HUD.
package client

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"reefcatch/internal/draw"
	"reefcatch/internal/game"
	"reefcatch/internal/input"
	"reefcatch/internal/render"
	"reefcatch/internal/tilemap"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Logical world size. The canvas scales this to whatever terminal the
// player brings; the simulation never sees terminal cells.
const (
	worldWidth  = 160.0
	worldHeight = 48.0
)

// Render area cap so huge terminals get a centered playfield instead of
// ant-sized sprites.
const (
	maxRenderCols = 160
	maxRenderRows = 48
)

type screen int

const (
	screenStart screen = iota
	screenPlaying
	screenOver
)

var (
	styleTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	styleHUD    = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleCombo  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	styleDanger = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Client owns everything for one connected terminal.
type Client struct {
	session  *game.Session
	renderer *render.Terminal
	canvas   *draw.Canvas
	writer   *draw.ChunkWriter

	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	crosshair    input.Crosshair

	screen      screen
	running     bool
	prevPause   bool
	delta       time.Duration
	lastInputAt time.Time
	idleTimeout time.Duration
}

// Options configures a client.
type Options struct {
	Tuning       game.Tuning
	TermSizeFunc draw.TermSizeFunc
	IdleTimeout  time.Duration // disconnect after this much silence, 0 disables
	Seed         int64
}

// New creates a client reading input from r and rendering to w.
func New(r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	renderer := render.NewTerminal()
	tiles := tilemap.NewRenderer(renderer)
	maps := tilemap.Presets(worldWidth, worldHeight, render.TileSize)

	session := game.NewSession(game.Options{
		Tuning:   opts.Tuning,
		World:    game.World{W: worldWidth, H: worldHeight},
		Visuals:  renderer,
		Notifier: renderer,
		Seed:     opts.Seed,
		MapCount: len(maps),
		LevelHook: func(level, mapIndex, depth int) {
			tiles.SetMap(maps[mapIndex], depth)
		},
	})

	termWidth, termHeight, _ := termSizeFunc()
	canvas := draw.NewScaledCanvas(
		minInt(termWidth, maxRenderCols),
		minInt(termHeight, maxRenderRows),
		worldWidth, worldHeight,
	)

	c := &Client{
		session:      session,
		renderer:     renderer,
		canvas:       canvas,
		writer:       draw.NewChunkWriter(w, 0, 0),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		crosshair:    input.NewCrosshair(worldWidth, worldHeight),
		screen:       screenStart,
		running:      true,
		lastInputAt:  time.Now(),
		idleTimeout:  opts.IdleTimeout,
	}
	tiles.SetViewport(0, 0, worldWidth, worldHeight)
	return c
}

// Run drives the client loop. Blocks until the player quits or the idle
// timeout fires.
func (c *Client) Run() error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	lastTime := time.Now()

	for c.running {
		frameStart := time.Now()
		c.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		in := c.processInput(frameStart)
		c.updateScreenSize()

		switch c.screen {
		case screenStart:
			c.updateStart(in)
		case screenPlaying:
			c.updatePlaying(in, frameStart)
		case screenOver:
			c.updateOver(in)
		}

		c.drawFrame(frameStart)
		if err := c.writer.Flush(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return c.writer.Flush()
}

// processInput reads this frame's key state and handles quit and idle.
func (c *Client) processInput(now time.Time) input.Input {
	in := input.ReadInput(c.inputStream)

	if len(in.Pressed) > 0 {
		c.lastInputAt = now
	}
	if c.idleTimeout > 0 && now.Sub(c.lastInputAt) > c.idleTimeout {
		c.running = false
	}
	if in.Quit {
		c.running = false
	}
	return in
}

// updateScreenSize re-fits the canvas to the terminal, centering the render
// area when the terminal is larger than the cap.
func (c *Client) updateScreenSize() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	cols := minInt(termWidth, maxRenderCols)
	rows := minInt(termHeight, maxRenderRows)
	c.canvas.Resize(cols, rows)

	offCol := (termWidth - cols) / 2
	offRow := (termHeight - rows) / 2
	c.canvas.SetOffset(offCol, offRow)
	c.writer.SetOffset(offCol, offRow)
}

func (c *Client) updateStart(in input.Input) {
	if in.Catch || in.Enter {
		c.startGame()
	}
}

func (c *Client) updatePlaying(in input.Input, now time.Time) {
	// Pause toggles on the press edge, not while held.
	if in.Pause && !c.prevPause {
		if c.session.Paused() {
			c.session.Resume()
		} else {
			c.session.Pause()
		}
	}
	c.prevPause = in.Pause

	if !c.session.Paused() {
		c.crosshair.Update(in, c.delta.Seconds(), worldWidth, worldHeight)
		if in.Catch {
			c.session.AttemptCatch(c.crosshair.X, c.crosshair.Y, now)
		}
	}

	c.session.Advance(now)
	if c.session.GameOver() {
		c.screen = screenOver
		input.ResetKeyInput(c.inputStream)
		draw.ClearScreen(c.writer)
	}
}

func (c *Client) updateOver(in input.Input) {
	if in.Catch || in.Enter {
		c.startGame()
	}
}

// startGame resets and begins a fresh session.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)
	draw.ClearScreen(c.writer)
	c.crosshair = input.NewCrosshair(worldWidth, worldHeight)
	c.prevPause = false
	c.session.Start()
	c.screen = screenPlaying
}

// drawFrame composes and writes one frame.
func (c *Client) drawFrame(now time.Time) {
	switch c.screen {
	case screenStart:
		draw.ClearScreen(c.writer)
		c.drawStartScreen()
		return
	case screenOver:
		draw.ClearScreen(c.writer)
		c.drawOverScreen()
		return
	}

	draw.ClearScreen(c.writer)
	c.canvas.Clear()

	c.session.SyncVisuals()
	c.renderer.Compose(c.canvas, now)

	for _, b := range c.session.Bubbles() {
		ch := '.'
		if b.Scale >= 1 {
			ch = 'o'
		}
		c.canvas.Stamp(b.X, b.Y, ch, "\033[38;5;45m")
	}

	c.canvas.Stamp(c.crosshair.X, c.crosshair.Y, '+', "\033[1;38;5;255m")

	c.canvas.Render(c.writer)
	c.drawHUD(now)
}

// drawHUD writes the stats line and live banners around the playfield.
func (c *Client) drawHUD(now time.Time) {
	hud := c.session.Snapshot()
	w := c.canvas.TerminalWidth()
	h := c.canvas.TerminalHeight()

	score := fmt.Sprintf("Score %d", hud.Score)
	c.writer.WriteAt(2, 1, styleHUD.Render(score))

	lives := fmt.Sprintf("Lives %d/%d", hud.Lives, hud.MaxLives)
	c.writer.WriteAt(w-len(lives)-1, 1, styleHUD.Render(lives))

	level := fmt.Sprintf("Depth %d  %02d:%02d", hud.Level,
		int(hud.TimeLeft)/60, int(hud.TimeLeft)%60)
	c.writer.WriteAt((w-len(level))/2, 1, styleHUD.Render(level))

	if hud.Combo > 1 {
		combo := fmt.Sprintf("combo x%d", hud.Combo)
		c.writer.WriteAt(2, h, styleCombo.Render(combo))
	}

	fps := fmt.Sprintf("%3.0f fps", hud.FPS)
	c.writer.WriteAt(w-len(fps)-1, h, styleDim.Render(fps))

	row := 3
	for _, n := range c.renderer.Banners(now) {
		styled := styleHUD.Render(n.Text)
		if n.Category == game.NoticeFlash || n.Category == game.NoticeGameOver {
			styled = styleDanger.Render(n.Text)
		}
		c.writer.WriteAt((w-len(n.Text))/2, row, styled)
		row++
	}

	if hud.Paused {
		msg := "PAUSED - press P to resume"
		c.writer.WriteAt((w-len(msg))/2, h/2, styleTitle.Render(msg))
	}
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen() {
	w := c.canvas.TerminalWidth()
	h := c.canvas.TerminalHeight()
	cx, cy := w/2, h/2

	title := "R E E F C A T C H"
	c.writer.WriteAt(cx-len(title)/2, cy-3, styleTitle.Render(title))

	sub := "Catch fish before they escape. Mind the mines."
	c.writer.WriteAt(cx-len(sub)/2, cy-1, styleHUD.Render(sub))

	prompt := "Press SPACE to dive"
	c.writer.WriteAt(cx-len(prompt)/2, cy+2, styleHUD.Render(prompt))

	controls := "WASD/Arrows to aim, SPACE to catch, P to pause, Q to quit"
	c.writer.WriteAt(cx-len(controls)/2, cy+5, styleDim.Render(controls))
}

// drawOverScreen draws the end-of-session summary.
func (c *Client) drawOverScreen() {
	w := c.canvas.TerminalWidth()
	h := c.canvas.TerminalHeight()
	cx, cy := w/2, h/2

	sum := c.session.Summary()

	title := "SESSION OVER"
	c.writer.WriteAt(cx-len(title)/2, cy-4, styleDanger.Render(title))

	lines := []string{
		fmt.Sprintf("Score     %d", sum.Score),
		fmt.Sprintf("Caught    %d", sum.Caught),
		fmt.Sprintf("Accuracy  %.0f%%", sum.Accuracy*100),
		fmt.Sprintf("Max combo x%d", sum.MaxCombo),
		fmt.Sprintf("Depth     %d", sum.Level),
	}
	for i, line := range lines {
		c.writer.WriteAt(cx-10, cy-2+i, styleHUD.Render(line))
	}

	prompt := "Press SPACE to dive again, Q to quit"
	c.writer.WriteAt(cx-len(prompt)/2, cy+5, styleHUD.Render(prompt))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

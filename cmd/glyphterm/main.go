package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/glyphterm/atlas"
	"github.com/lixenwraith/glyphterm/config"
	"github.com/lixenwraith/glyphterm/engine"
	"github.com/lixenwraith/glyphterm/parameter"
	"github.com/lixenwraith/glyphterm/render"
	"github.com/lixenwraith/glyphterm/terminal"
)

// altFont is the second built-in font the space key swaps to
const altFont = "cp437-mono-large"

var (
	configFlag   = flag.String("config", "", "TOML configuration file (built-in hello world when empty)")
	genAtlasFlag = flag.String("gen-atlas", "", "Write the built-in code page 437 atlas to this PNG file and exit")
	debugFlag    = flag.Bool("debug", false, "Write a debug log under "+parameter.LogDir)
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if *genAtlasFlag != "" {
		if err := writeAtlas(*genAtlasFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate atlas: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "glyphterm: stdout is not a terminal, use -gen-atlas for headless output")
		os.Exit(1)
	}

	cfg := config.Defaults()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	fonts, err := newFontRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build fonts: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nGLYPHTERM CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.EnableMouse()

	world := engine.NewDefaultWorld(fonts)
	preview := render.NewPreview(screen)
	world.SetDefaultCamera(world.AddCamera(preview.Camera()))
	world.AddSystem(preview)

	if _, err := cfg.Apply(world); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	run(screen, world, preview)
}

// run is the host frame loop: input is drained between fixed frame ticks
func run(screen tcell.Screen, world *engine.World, preview *render.Preview) {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			if !handleEvent(ev, screen, world, preview) {
				return
			}
		case now := <-ticker.C:
			world.Update(now.Sub(last))
			last = now
		}
	}
}

// handleEvent returns false when the demo should exit
func handleEvent(ev tcell.Event, screen tcell.Screen, world *engine.World, preview *render.Preview) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		preview.Resize()
		screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			swapFonts(world)
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			break
		}
		x, y := ev.Position()
		e, tile, ok := preview.Pick(world, x, y)
		if !ok {
			break
		}
		if t, ok := world.Terminal(e); ok {
			t.Buffer.PutChar(tile, terminal.Char('*').Fg(terminal.Yellow))
			log.Printf("Input: click (%d,%d) hit terminal %d tile %v", x, y, e, tile)
		}
	}
	return true
}

// swapFonts toggles every terminal between the built-in fonts
func swapFonts(world *engine.World) {
	for _, e := range world.Terminals.Entities() {
		t, ok := world.Terminal(e)
		if !ok {
			continue
		}
		next := altFont
		if t.FontID == altFont {
			next = atlas.BuiltinMono
		}
		t.SetFont(next)
		log.Printf("Font: terminal %d -> %s", e, next)
	}
}

func newFontRegistry() (*atlas.Registry, error) {
	fonts, err := atlas.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	opts := atlas.DefaultRenderOptions()
	opts.Size = 16
	opts.Cell = [2]int{10, 18}
	large, err := atlas.RenderFont(altFont, opts)
	if err != nil {
		return nil, err
	}
	fonts.Register(altFont, large)
	return fonts, nil
}

func writeAtlas(path string) error {
	f, err := atlas.RenderFont(atlas.BuiltinMono, atlas.DefaultRenderOptions())
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := f.EncodePNG(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/lixenwraith/glyphterm/atlas"
	"github.com/lixenwraith/glyphterm/mesh"
	"github.com/lixenwraith/glyphterm/terminal"
)

var (
	duration = flag.Duration("duration", 5*time.Second, "Benchmark duration")
	pattern  = flag.String("pattern", "xor", "Pattern: xor|static|text")
	width    = flag.Int("width", 160, "Buffer width in tiles")
	height   = flag.Int("height", 50, "Buffer height in tiles")
)

func main() {
	flag.Parse()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	stop := make(chan struct{})
	go func() {
		<-sigCh
		close(stop)
	}()

	buf := terminal.New(*width, *height)
	builder := mesh.NewBuilder()
	in := mesh.Input{Buffer: buf, Map: atlas.CodePage437(), FontVersion: 1, Layout: terminal.DefaultLayout()}

	var frames, rebuilds int64
	var writeTotal, buildTotal time.Duration
	start := time.Now()

loop:
	for time.Since(start) < *duration {
		select {
		case <-stop:
			break loop
		default:
		}

		// 1. Write phase
		t0 := time.Now()
		switch *pattern {
		case "xor":
			offset := int(frames)
			for y, row := range buf.RowsMut(0, buf.Height()) {
				for x := range row {
					val := x + y + offset
					row[x] = terminal.Tile{
						Glyph: atlas.IndexToGlyph(uint8(val)),
						Fg:    terminal.RGB(uint8(val), uint8(val>>1), uint8(255-val)),
						Bg:    terminal.Black,
					}
				}
			}
		case "text":
			buf.Clear()
			buf.PutString(terminal.Pt(0, 0).Pivot(terminal.Center),
				terminal.Text(fmt.Sprintf("frame %d\nglyph grid benchmark", frames)).Fg(terminal.LimeGreen))
		default:
			// Static: nothing changes, measures the clean skip path
		}
		writeTotal += time.Since(t0)

		// 2. Rebuild phase, measured separately
		t1 := time.Now()
		rebuilt, err := builder.Build(in)
		buildTotal += time.Since(t1)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Rebuild failed: %v\n", err)
			os.Exit(1)
		}
		if rebuilt {
			rebuilds++
		}
		frames++
	}

	elapsed := time.Since(start)
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	fmt.Printf("Buffer:    %dx%d (%d tiles, %d vertices)\n", *width, *height, buf.Len(), builder.Data().VertexCount())
	fmt.Printf("Pattern:   %s\n", *pattern)
	fmt.Printf("Frames:    %d in %v (%.1f FPS)\n", frames, elapsed.Round(time.Millisecond), float64(frames)/elapsed.Seconds())
	fmt.Printf("Rebuilds:  %d\n", rebuilds)
	if frames > 0 {
		fmt.Printf("Avg write: %v\n", writeTotal/time.Duration(frames))
		fmt.Printf("Avg build: %v\n", buildTotal/time.Duration(frames))
	}
	fmt.Printf("Heap:      %d KiB, %d GCs\n", mem.HeapAlloc/1024, mem.NumGC)
}

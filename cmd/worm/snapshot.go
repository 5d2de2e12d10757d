package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/canvas"
	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/host"
	"github.com/vovakirdan/tui-worm/internal/worm"
)

var (
	flagFrames int
	flagWindow string
	flagSwipes []string
	flagOut    string
	flagWidth  int
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Run a session headlessly and save a PNG",
	Long: `Run a worm session without a display for a number of frames and save the
last painted frame as a PNG.

Swipes are given as frame:direction and are delivered as touches from the
centre of the window, one swipe threshold long.

Examples:
  worm snapshot --out frame.png
  worm snapshot --seed 3 --frames 300 --swipe 12:down --swipe 40:left
  worm snapshot --window 1024x768 --width 320`,
	Args: cobra.NoArgs,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntVar(&flagFrames, "frames", 120, "Number of frames to run")
	snapshotCmd.Flags().StringVar(&flagWindow, "window", "375x667", "Window size in page pixels (WxH)")
	snapshotCmd.Flags().StringArrayVar(&flagSwipes, "swipe", nil, "Swipe as frame:direction (repeatable)")
	snapshotCmd.Flags().StringVarP(&flagOut, "out", "o", "worm.png", "Output PNG path")
	snapshotCmd.Flags().IntVar(&flagWidth, "width", 0, "Downscale the PNG to this width (0 = full size)")
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	settings, _, err := loadSettings(logger)
	if err != nil {
		return err
	}
	w, h, err := parseWindow(flagWindow)
	if err != nil {
		return err
	}
	swipes, err := parseSwipes(flagSwipes)
	if err != nil {
		return err
	}

	rt := core.RuntimeConfig{WindowW: w, WindowH: h, FrameRate: flagFPS, Seed: flagSeed}
	snap, raster := runHeadless(settings, rt, flagFrames, swipes, logger)

	if err := raster.SavePNG(flagOut, flagWidth); err != nil {
		return err
	}
	return printSnapshot(cmd.OutOrStdout(), snap, flagOut)
}

// runHeadless plays frames at the runtime frame rate and stops early once
// the game ends.
func runHeadless(settings config.Settings, rt core.RuntimeConfig, frames int, swipes map[int]worm.Direction, logger *log.Logger) (worm.Snapshot, *canvas.Raster) {
	raster := canvas.NewRaster(1, 1)
	queue := host.NewFrameQueue()
	touches := host.NewTouches()
	g := worm.New(settings, host.Env{Surface: raster, Frames: queue, Input: touches}, rt, logger)
	g.Start()

	step := 1000 / float64(max(rt.FrameRate, 1))
	for i := range frames {
		if d, ok := swipes[i]; ok {
			swipe(touches, rt, d, settings.Input.SwipeThreshold)
		}
		queue.Flush(float64(i) * step)
		if !g.Running() {
			break
		}
	}
	return g.Snapshot(), raster
}

// swipe delivers a touch start at the window centre and a touch end one
// threshold away in direction d.
func swipe(t *host.Touches, rt core.RuntimeConfig, d worm.Direction, threshold float64) {
	cx, cy := rt.WindowW/2, rt.WindowH/2
	delta := d.Delta()
	t.Start(core.NewTouchEvent(0, cx, cy))
	t.End(core.NewTouchEvent(0, cx+float64(delta.X)*threshold, cy+float64(delta.Y)*threshold))
}

func parseWindow(s string) (float64, float64, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --window %q, expected WxH", s)
	}
	w, errW := strconv.ParseFloat(ws, 64)
	h, errH := strconv.ParseFloat(hs, 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid --window %q, expected positive WxH", s)
	}
	return w, h, nil
}

func parseSwipes(args []string) (map[int]worm.Direction, error) {
	swipes := make(map[int]worm.Direction, len(args))
	for _, arg := range args {
		fs, ds, ok := strings.Cut(arg, ":")
		if !ok {
			return nil, fmt.Errorf("invalid --swipe %q, expected frame:direction", arg)
		}
		frame, err := strconv.Atoi(fs)
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("invalid --swipe %q: bad frame", arg)
		}
		d, err := worm.ParseDirection(ds)
		if err != nil {
			return nil, fmt.Errorf("invalid --swipe %q: %w", arg, err)
		}
		swipes[frame] = d
	}
	return swipes, nil
}

func printSnapshot(w io.Writer, snap worm.Snapshot, path string) error {
	_, err := fmt.Fprintf(w, "%s: state=%s score=%d level=%d moves=%d head=(%d,%d)\n",
		path, snap.State, snap.Score, snap.Level, snap.Moves, snap.HeadX, snap.HeadY)
	return err
}

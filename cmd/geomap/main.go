package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"georaster/internal/config"
	"georaster/internal/geom"
	"georaster/internal/glyph"
	"georaster/internal/scene"
	"georaster/internal/tui"
)

func main() {
	cfgPath := flag.String("config", "", "TOML settings file")
	pngOut := flag.String("png", "", "render the data file to this PNG and exit")
	debugLog := flag.String("debug", "", "append debug logs to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: geomap [flags] [data.geojson|.csv|.kml|.wkt]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	face, err := glyph.DefaultFace()
	if err != nil {
		log.Fatal(err)
	}

	if *pngOut != "" {
		if flag.NArg() != 1 {
			log.Fatal("-png needs exactly one data file")
		}
		if err := renderPNG(cfg, face, flag.Arg(0), *pngOut); err != nil {
			log.Fatal(err)
		}
		return
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if *debugLog != "" {
		f, err := tea.LogToFile(*debugLog, "geomap")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		// the terminal belongs to the UI
		log.SetOutput(io.Discard)
	}

	var m tui.Model
	if flag.NArg() > 0 {
		m = tui.NewWithPath(cfg, face, flag.Arg(0))
	} else {
		m = tui.New(cfg, face)
	}
	m = m.WithLogger(logger)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

func renderPNG(cfg config.Config, face glyph.Shaper, in, out string) error {
	d, err := geom.Load(in)
	if err != nil {
		return fmt.Errorf("load %s: %w", in, err)
	}
	r := scene.NewRenderer(scene.StyleFromConfig(cfg.Map))
	buf, st, err := r.Render(d, cfg.Map.Width, cfg.Map.Height)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if st.Skipped > 0 {
		log.Printf("skipped %d features outside lon [-180,180] / lat [-90,90]", st.Skipped)
	}
	lb := cfg.Label
	if err := scene.Caption(buf, face, lb.Text, lb.Size, config.MustColor(lb.Color), image.Pt(lb.X, lb.Y)); err != nil {
		return fmt.Errorf("caption: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := scene.WritePNG(f, buf); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"geoshape/internal/config"
	"geoshape/internal/geom"
	"geoshape/internal/report"
	"geoshape/internal/shape"
	"geoshape/internal/tui"
)

type cli struct {
	app  *kingpin.Application
	cfg  *config.Config
	args map[string]*[]string
	file *string
	tui  *string
}

func newCLI() *cli {
	app := kingpin.New("geoshape", "Analyze and classify lines, triangles, quadrilaterals and circles.")
	app.HelpFlag.Short('?')
	c := &cli{app: app, cfg: config.Register(app), args: map[string]*[]string{}}

	shapes := []struct{ name, help, arg string }{
		{"line", "Analyze a line segment.", "P1 P2"},
		{"triangle", "Classify a triangle.", "P1 P2 P3"},
		{"quad", "Classify a quadrilateral; points in cyclic order.", "P1 P2 P3 P4"},
		{"circle", "Analyze a circle from its center and a point on it.", "CENTER BOUNDARY"},
	}
	for _, s := range shapes {
		cmd := app.Command(s.name, s.help)
		c.args[s.name] = cmd.Arg("points", s.arg+" as x,y (put -- before negative values).").Required().Strings()
	}
	file := app.Command("file", "Analyze every figure in a .wkt, .csv, .geojson, .kml or .yaml file.")
	c.file = file.Arg("path", "Figure file.").Required().ExistingFile()
	view := app.Command("tui", "Open the terminal UI.").Default()
	c.tui = view.Arg("path", "Figure file to open.").String()
	return c
}

func (c *cli) run(argv []string, stdout io.Writer) error {
	cmd, err := c.app.Parse(argv)
	if err != nil {
		return err
	}
	lvl, ok, err := c.cfg.Level()
	if err != nil {
		return err
	}
	if ok {
		shape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	}
	au := aurora.NewAurora(!c.cfg.NoColor && isTerminal(stdout))

	switch cmd {
	case "tui":
		return c.runTUI()
	case "file":
		figs, err := geom.Load(*c.file)
		if err != nil {
			return err
		}
		var failed int
		for i, f := range figs {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			if err := c.write(stdout, f, au); err != nil {
				fmt.Fprintf(stdout, "%s: %v\n", f.Name, au.Red(err))
				failed++
			}
		}
		if failed > 0 {
			return errors.Errorf("%d of %d figures could not be analyzed", failed, len(figs))
		}
		return nil
	}
	kind, err := geom.ParseKind(cmd)
	if err != nil {
		return err
	}
	var pts []geom.Point
	for _, s := range *c.args[cmd] {
		p, err := geom.ParsePoint(s)
		if err != nil {
			return err
		}
		pts = append(pts, p)
	}
	return c.write(stdout, geom.Figure{Kind: kind, Points: pts}, au)
}

func (c *cli) write(w io.Writer, f geom.Figure, au aurora.Aurora) error {
	r, err := report.Build(f)
	if err != nil {
		return err
	}
	return report.Write(w, r, au, c.cfg.NoGrid)
}

func (c *cli) runTUI() error {
	var m tea.Model
	if *c.tui != "" {
		m = tui.NewWithPath(*c.tui)
	} else {
		m = tui.New()
	}
	opts := []tea.ProgramOption{tea.WithMouseAllMotion()}
	if c.cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	if err := newCLI().run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// Command rdsmon replays an RDS log file through the core decoder and
// renders the live DataRecord in a terminal dashboard. Grounded on the
// teacher's main.go: a Context wrapping the decoder, an update(g) method
// redrawing gocui views with aurora-colored text, and a Ctrl+C quit
// keybinding.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/awesome-gocui/gocui"
	. "github.com/logrusorgru/aurora"

	"gords/rds"
	"gords/rdslog"
)

// Context wraps the decoder together with a mutex guarding its DataRecord:
// decoding runs on a background goroutine while gocui renders on its own,
// and DataRecord itself (per spec §5) assumes a single serializing caller.
type Context struct {
	mu      sync.Mutex
	decoder *rds.Decoder
	data    *rds.DataRecord
}

// decode serializes one Decode call against concurrent reads from update.
func (ctx *Context) decode(g rds.Group) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.decoder.Decode(g)
}

func CreateContext() *Context {
	data := rds.NewDataRecord()
	return &Context{
		decoder: rds.NewDecoder(rds.DefaultConfig(), data),
		data:    data,
	}
}

// valid colors a label green once its bit is set in ValidValues, dim
// otherwise, the same way the teacher colors its aircraft rows yellow.
func (ctx *Context) valid(bit rds.Valid, text string) string {
	if ctx.data.ValidValues.Has(bit) {
		return Sprintf(Green(text))
	}
	return Sprintf(Faint(text))
}

func (ctx *Context) update(g *gocui.Gui) error {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	s, err := g.View("status")
	if err != nil {
		return nil
	}
	s.Clear()
	d := ctx.data
	fmt.Fprintf(s, " PI: %s  PTY: %s  TP: %s  TA: %s  LAST UPDATE: %s\n",
		ctx.valid(rds.ValidPICode, fmt.Sprintf("%04X", d.PICode)),
		ctx.valid(rds.ValidPTY, fmt.Sprintf("%d", d.PTY)),
		ctx.valid(rds.ValidTP, fmt.Sprintf("%v", d.TPCode)),
		ctx.valid(rds.ValidTA, fmt.Sprintf("%v", d.TACode)),
		Bold(Green(time.Now().Format("2006-01-02 15:04:05"))))

	f, err := g.View("fields")
	if err != nil {
		return nil
	}
	f.Clear()
	fmt.Fprintln(f, " FIELD       VALUE")
	fmt.Fprintln(f, " ============================================")
	fmt.Fprintf(f, " %-10s %s\n", "PS", ctx.valid(rds.ValidPS, string(d.PS.Display[:])))
	fmt.Fprintf(f, " %-10s %s\n", "RT-A", ctx.valid(rds.ValidRTA, string(d.RT.A.Display[:])))
	fmt.Fprintf(f, " %-10s %s\n", "RT-B", ctx.valid(rds.ValidRTB, string(d.RT.B.Display[:])))
	if d.ValidValues.Has(rds.ValidClock) {
		fmt.Fprintf(f, " %-10s %s\n", "CLOCK", ctx.valid(rds.ValidClock,
			fmt.Sprintf("MJD %d %02d:%02d offset %+d", d.Clock.MJD, d.Clock.Hour, d.Clock.Minute, d.Clock.UTCOffset)))
	} else {
		fmt.Fprintf(f, " %-10s %s\n", "CLOCK", ctx.valid(rds.ValidClock, "----"))
	}
	if idx := d.AF.CurrentTableIdx; idx >= 0 {
		tbl := d.AF.Tables[idx]
		fmt.Fprintf(f, " %-10s %s\n", "AF", ctx.valid(rds.ValidAF,
			fmt.Sprintf("tuned %.1f MHz, %d alternatives, method %v", float64(tbl.Table.TunedFreq.Freq)/10, len(tbl.Table.Entries), tbl.Method)))
	} else {
		fmt.Fprintf(f, " %-10s %s\n", "AF", ctx.valid(rds.ValidAF, "----"))
	}
	fmt.Fprintf(f, " %-10s %s\n", "ODA", fmt.Sprintf("%d registered", d.ODACnt))

	return nil
}

func layout(g *gocui.Gui) error {
	const maxX = 80
	_, maxY := g.Size()

	v, _ := g.SetView("status", 0, 0, maxX-2, 2, 0)
	v.Title = " STATUS "
	fmt.Fprintln(v, " PI: ----  PTY: -  TP: -  TA: -")

	v, _ = g.SetView("fields", 0, 3, maxX-2, maxY-1, 0)
	v.Title = " FIELDS "
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

// preRegisterODA synthesizes and decodes a 3A group so that a pre-seeded
// app_id appears registered before the first real 3A block arrives,
// reusing the core decoder's own registration path instead of reaching
// into its unexported internals.
func preRegisterODA(ctx *Context, appID uint16, code int, version rds.Version) {
	v := uint16(0)
	if version == rds.VersionB {
		v = 1
	}
	// Group 3A itself (bits 15..11 = 0b00110), carrying the target group's
	// code/version in bits 4..0 of block B, per decodeGroup3.
	bVal := uint16(3)<<12 | (uint16(code&0xF) << 1) | v
	g := rds.Group{
		A: rds.Block{Errors: rds.BLER6Plus},
		B: rds.Block{Value: bVal, Errors: rds.BLERNone},
		C: rds.Block{Errors: rds.BLER6Plus},
		D: rds.Block{Value: appID, Errors: rds.BLERNone},
	}
	ctx.decode(g)
}

// seedTunedFrequency pre-seeds the monitor's current AF table with the
// station's known tuned frequency, so the AF view has an anchor before any
// frequency group has actually been decoded.
func seedTunedFrequency(ctx *Context, mhz float64) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	freq := int(mhz*10 + 0.5)
	ctx.data.AF.SeedTunedFrequency(freq)
}

func main() {
	var logPath, configPath string
	flag.StringVar(&logPath, "log", "", "path to an rdslog-format log file (required)")
	flag.StringVar(&configPath, "config", "", "optional station config YAML")
	flag.Parse()

	if logPath == "" {
		fmt.Fprintln(os.Stderr, "usage: rdsmon -log <path> [-config <path>]")
		os.Exit(1)
	}

	var cfg *Config
	if configPath != "" {
		c, err := LoadConfig(configPath)
		if err != nil {
			log.Panicln(err)
		}
		cfg = c
	}

	f, err := os.Open(logPath)
	if err != nil {
		log.Panicln(err)
	}
	defer f.Close()

	g, err := gocui.NewGui(gocui.OutputNormal, false)
	if err != nil {
		log.Panicln(err)
	}
	defer g.Close()

	g.SetManagerFunc(layout)
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		log.Panicln(err)
	}

	ctx := CreateContext()
	if cfg != nil {
		if cfg.Station.TunedFrequencyMHz > 0 {
			seedTunedFrequency(ctx, cfg.Station.TunedFrequencyMHz)
		}
		for _, entry := range cfg.ODA {
			version := rds.VersionA
			if entry.Version == "B" {
				version = rds.VersionB
			}
			preRegisterODA(ctx, entry.AppID, entry.Code, version)
		}
	}

	reader := rdslog.NewReader(f)
	go func() {
		for {
			grp, err := reader.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				log.Printf("rdsmon: %v", err)
				continue
			}
			ctx.decode(grp)
			g.Update(ctx.update)
			time.Sleep(40 * time.Millisecond)
		}
	}()

	if err := g.MainLoop(); err != nil && !gocui.IsQuit(err) {
		log.Panicln(err)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/itohio/rgbknob/dev"
	"github.com/itohio/rgbknob/internal/serialmon"
	"github.com/itohio/rgbknob/internal/sim"
	"github.com/itohio/rgbknob/internal/tui"
	"github.com/itohio/rgbknob/shared"
	"github.com/itohio/rgbknob/ui"
)

// CLI defines the knobsim command structure.
type CLI struct {
	Sim     SimCmd     `cmd:"" default:"withargs" help:"Run the controller against a simulated knob and buttons"`
	Monitor MonitorCmd `cmd:"" help:"Show the state a device prints on its serial console"`
	Ports   PortsCmd   `cmd:"" help:"List serial ports"`
}

// SimCmd runs the real controller with simulated hardware.
type SimCmd struct {
	Raw  int16 `flag:"" default:"32767" help:"Initial raw knob reading (0-32767)"`
	Step int   `flag:"" default:"250" help:"Raw counts per arrow key press"`
}

func (c *SimCmd) Run() error {
	knob := sim.NewKnob(c.Raw)
	a, b := &sim.Button{}, &sim.Button{}

	initial := ui.DefaultState()
	frameRate := shared.NewCell(initial.FrameRate)
	rgb := shared.NewCell(initial.Levels)

	p := tea.NewProgram(tui.NewSimulation(knob, a, b, c.Step))

	publish := func() {
		p.Send(tui.StateMsg{State: ui.State{Levels: rgb.Load(), FrameRate: frameRate.Load()}})
	}
	frameRate.AddWatcher(func(v uint64) {
		slog.Debug("Frame rate published", "frame_rate", v)
		publish()
	})
	rgb.AddWatcher(func(v ui.Levels) {
		slog.Debug("Levels published", "red", v[ui.Red], "green", v[ui.Green], "blue", v[ui.Blue])
		publish()
	})

	controller := ui.NewController(dev.NewKnob(knob), a, b, frameRate, rgb, tui.NewLogWriter(p.Send))
	go controller.Run()

	slog.Info("Simulation started", "raw", c.Raw, "step", c.Step)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// MonitorCmd follows a device over its serial console.
type MonitorCmd struct {
	Port string `arg:"" optional:"" help:"Serial port (first USB port when omitted)"`
	Baud int    `flag:"" optional:"" help:"Baud rate (default from KNOBSIM_BAUD)"`
}

func (c *MonitorCmd) Run(config *Config) error {
	port := c.Port
	if port == "" {
		ports, err := serialmon.Ports()
		if err != nil {
			return err
		}
		if port, err = serialmon.FirstUSB(ports); err != nil {
			return err
		}
	}
	baud := c.Baud
	if baud == 0 {
		baud = config.Baud
	}

	conn, err := serialmon.Open(port, baud)
	if err != nil {
		return err
	}
	defer conn.Close()

	p := tea.NewProgram(tui.NewMonitor(port))
	go func() {
		err := serialmon.Watch(conn, func(s ui.State) {
			p.Send(tui.StateMsg{State: s})
		})
		if err == nil {
			err = fmt.Errorf("serial port %s closed", port)
		}
		slog.Error("Monitor stopped", "port", port, "error", err)
		p.Send(tui.ErrMsg{Err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// PortsCmd prints the available serial ports.
type PortsCmd struct{}

func (c *PortsCmd) Run() error {
	ports, err := serialmon.Ports()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Println("no serial ports found")
		return nil
	}
	for _, p := range ports {
		fmt.Println(p)
	}
	return nil
}

func main() {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_, logFile, err := SetupLogger(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("knobsim"),
		kong.Description("Simulate or monitor the rgbknob controller."),
		kong.UsageOnError(),
		kong.Bind(config),
	)
	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		logFile.Close()
		ctx.FatalIfErrorf(err)
	}
}

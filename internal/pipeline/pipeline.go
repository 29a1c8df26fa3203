// Package pipeline orchestrates the report workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/nextsysinfo/internal/bridge"
	"github.com/retroenv/nextsysinfo/internal/catalog"
	"github.com/retroenv/nextsysinfo/internal/detector"
	"github.com/retroenv/nextsysinfo/internal/loader"
	"github.com/retroenv/nextsysinfo/internal/options"
	"github.com/retroenv/nextsysinfo/internal/report"
	"github.com/retroenv/nextsysinfo/internal/snapshot"
	"github.com/retroenv/nextsysinfo/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// BridgeConn is a connection to a Modbus bridge.
type BridgeConn interface {
	bridge.Reader
	Close() error
}

// DialFunc opens a connection to a Modbus bridge.
type DialFunc func(cfg bridge.Config) (BridgeConn, error)

// FileFunc opens the log file. It is called once the machine state is
// available, so a failing machine source never leaves an empty log file. A nil
// writer means that no log file is written.
type FileFunc func() (io.Writer, error)

// Pipeline orchestrates the complete report workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	emitter  *report.Emitter
	dial     DialFunc
}

// New creates a new report pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		emitter:  report.New(logger),
		dial: func(cfg bridge.Config) (BridgeConn, error) {
			client, err := bridge.Dial(cfg)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}
}

// WithDialer replaces the function that connects to a Modbus bridge.
func (p *Pipeline) WithDialer(dial DialFunc) *Pipeline {
	p.dial = dial
	return p
}

// LoadMachine detects the machine source, loads or captures the machine state
// and saves it as snapshot if requested.
func (p *Pipeline) LoadMachine(ctx context.Context, opts options.Program) (*snapshot.Machine, error) {
	source, err := p.detector.Detect(opts)
	if err != nil {
		return nil, fmt.Errorf("detecting machine source: %w", err)
	}

	var m *snapshot.Machine
	switch source {
	case options.SourceBridge:
		m, err = p.capture(ctx, opts)
	default:
		m, err = p.loader.Load(opts.Snapshot)
	}
	if err != nil {
		return nil, err
	}

	if opts.Save != "" {
		if err := p.loader.Save(opts.Save, m); err != nil {
			return nil, fmt.Errorf("saving machine snapshot: %w", err)
		}
		p.logger.Info("Saved machine snapshot", log.String("file", opts.Save))
	}
	return m, nil
}

// Report writes the report of the machine to the screen and the optional
// log file writer.
func (p *Pipeline) Report(m report.Machine, opts options.Program, screen, file io.Writer,
	columns int, version string) error {

	cats, unknown := report.ParseTopics(opts.Topics)
	for _, r := range unknown {
		p.logger.Warn("Unknown topic", log.String("topic", string(r)))
	}

	sink := writer.New(screen, file, writer.Options{Quiet: opts.Quiet})
	ctx := report.NewContext(sink, m, columns, version)

	if err := p.emitter.Emit(ctx, cats); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	p.logger.Debug("Report written",
		log.Int("lines", sink.Lines()),
		log.Int("failures", sink.Failures()))
	return nil
}

// Execute runs the complete report pipeline: the machine state is loaded,
// the log file is opened and the report is written.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, screen io.Writer, openFile FileFunc,
	columns int, version string) error {

	m, err := p.LoadMachine(ctx, opts)
	if err != nil {
		return err
	}

	var file io.Writer
	if openFile != nil {
		file, err = openFile()
		if err != nil {
			return fmt.Errorf("creating writer: %w", err)
		}
	}
	return p.Report(m, opts, screen, file, columns, version)
}

// capture reads the machine state over the Modbus bridge.
func (p *Pipeline) capture(ctx context.Context, opts options.Program) (*snapshot.Machine, error) {
	cfg := bridge.Config{
		Address: opts.Address,
		UnitID:  opts.UnitID,
		Timeout: opts.Timeout,
	}

	p.logger.Info("Capturing machine state",
		log.String("bridge", cfg.Address),
		log.Uint8("unit", cfg.UnitID))

	conn, err := p.dial(cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to bridge: %w", err)
	}
	defer func() { _ = conn.Close() }()

	m, err := bridge.Capture(ctx, p.logger, conn, catalog.Registers(), catalog.Variables())
	if err != nil {
		return nil, fmt.Errorf("capturing machine state: %w", err)
	}
	return m, nil
}

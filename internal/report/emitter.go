package report

import (
	"errors"
	"fmt"

	"github.com/retroenv/nextsysinfo/internal/catalog"
	"github.com/retroenv/nextsysinfo/internal/decoder"
	"github.com/retroenv/nextsysinfo/internal/osinfo"
	"github.com/retroenv/nextsysinfo/internal/render"
	"github.com/retroenv/retrogolib/log"
)

// SoftError is returned when lines of the report could not be written
// completely. The report itself was created and all lines were offered to
// the sink.
type SoftError struct {
	Failures int
	Err      error
}

func (e *SoftError) Error() string {
	return fmt.Sprintf("%d report lines not written: %v", e.Failures, e.Err)
}

func (e *SoftError) Unwrap() error {
	return e.Err
}

// Emitter creates the report.
type Emitter struct {
	logger    *log.Logger
	registers *decoder.Registers
	variables *decoder.Variables
}

// New returns a new report emitter.
func New(logger *log.Logger) *Emitter {
	return &Emitter{
		logger:    logger,
		registers: decoder.NewRegisters(),
		variables: decoder.NewVariables(),
	}
}

// emission tracks the soft errors of a single report.
type emission struct {
	ctx    *Context
	logger *log.Logger
	errs   []error
}

// Emit writes the sections of all selected categories in report order,
// followed by the closing header that names the tool version.
func (e *Emitter) Emit(ctx *Context, cats Categories) error {
	em := &emission{
		ctx:    ctx,
		logger: e.logger,
	}

	if cats.Contains(CategoryRegisters) {
		em.header(TitleRegisters)
		e.emitRegisters(em)
	}
	if cats.Contains(CategoryVariables) {
		em.header(TitleVariables)
		e.emitVariables(em)
	}
	if cats.Contains(CategoryOS) {
		em.header(TitleOS)
		e.emitOS(em)
	}

	em.header(fmt.Sprintf("%s (version %s)", ToolName, ctx.Version))

	if len(em.errs) == 0 {
		return nil
	}
	return &SoftError{
		Failures: len(em.errs),
		Err:      errors.Join(em.errs...),
	}
}

func (e *Emitter) emitRegisters(em *emission) {
	machine := em.ctx.Machine

	for _, reg := range em.ctx.Registers {
		if !reg.Visible {
			continue
		}

		var value uint8
		if reg.Number == catalog.RegCPUSpeed {
			value = machine.CPUSpeed()
		} else {
			value = machine.ReadRegister(reg.Number)
		}

		lines := []string{render.RegisterLine(reg.Number, reg.Name, value)}
		lines = append(lines, e.registers.Decode(reg.Number, value, machine)...)
		em.write(lines)
	}
}

func (e *Emitter) emitVariables(em *emission) {
	for _, v := range em.ctx.Variables {
		raw := em.ctx.Machine.ReadMemory(v.Address, int(v.Size))

		lines := []string{render.VariableLine(v.Address, v.Name, e.variables.Render(v, raw))}
		lines = append(lines, e.variables.Decode(v.Address, raw)...)
		em.write(lines)
	}
}

func (e *Emitter) emitOS(em *emission) {
	info, ok := em.ctx.Machine.OSInfo()
	if !ok {
		e.logger.Debug("Operating system state not available")
		return
	}
	em.write(osinfo.Lines(info))
}

func (em *emission) header(title string) {
	em.write(render.Header(title, em.ctx.Columns))
}

// write passes all lines to the sink. A failing line is logged and recorded,
// the following lines are still written.
func (em *emission) write(lines []string) {
	for _, line := range lines {
		if err := em.ctx.Sink.WriteLine(line); err != nil {
			em.logger.Warn("Writing report line failed", log.Err(err))
			em.errs = append(em.errs, err)
		}
	}
}

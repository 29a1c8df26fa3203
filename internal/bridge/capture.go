package bridge

import (
	"context"
	"fmt"
	"slices"

	"github.com/retroenv/nextsysinfo/internal/catalog"
	"github.com/retroenv/nextsysinfo/internal/snapshot"
	"github.com/retroenv/retrogolib/log"
)

// Register layout of the bridge.
const (
	// MaxQuantity is the maximum number of registers of a single read request.
	MaxQuantity = 125
	// CPUSpeedRegister is the holding register that contains the CPU speed
	// as it was before the bridge took over the machine.
	CPUSpeedRegister = 0x0100
)

// Reader reads Modbus registers. Every register holds one byte of machine
// state in its low byte.
type Reader interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
	ReadInputRegisters(addr, qty uint16) ([]uint16, error)   // FC 4
}

// span is a range of consecutive registers that is read with one request.
type span struct {
	address  uint16
	quantity uint16
}

// Capture reads all catalog registers, the memory of all catalog variables and
// the CPU speed from the bridge and returns them as snapshot.
func Capture(ctx context.Context, logger *log.Logger, reader Reader,
	regs []catalog.RegisterDescriptor, vars []catalog.VariableDescriptor) (*snapshot.Machine, error) {

	m := snapshot.New()

	numbers := []uint16{catalog.RegCoreVerSub}
	for _, reg := range regs {
		if reg.Visible {
			numbers = append(numbers, uint16(reg.Number))
		}
	}

	for _, s := range registerSpans(numbers) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("capturing registers: %w", err)
		}

		values, err := reader.ReadHoldingRegisters(s.address, s.quantity)
		if err != nil {
			return nil, fmt.Errorf("capturing registers: %w", err)
		}
		for i, value := range values {
			m.SetRegister(uint8(s.address+uint16(i)), uint8(value))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("capturing cpu speed: %w", err)
	}
	speed, err := reader.ReadHoldingRegisters(CPUSpeedRegister, 1)
	if err != nil {
		return nil, fmt.Errorf("capturing cpu speed: %w", err)
	}
	if len(speed) > 0 {
		m.SetCPUSpeed(uint8(speed[0]))
	}

	for _, s := range memorySpans(vars) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("capturing memory: %w", err)
		}

		values, err := reader.ReadInputRegisters(s.address, s.quantity)
		if err != nil {
			return nil, fmt.Errorf("capturing memory: %w", err)
		}

		data := make([]byte, len(values))
		for i, value := range values {
			data[i] = uint8(value)
		}
		m.SetMemory(s.address, data)

		logger.Debug("Captured memory block",
			log.Hex("address", s.address),
			log.Int("size", len(data)))
	}

	logger.Debug("Captured machine state", log.Int("registers", len(m.Registers())))
	return m, nil
}

// registerSpans merges the register numbers into runs of consecutive numbers.
func registerSpans(numbers []uint16) []span {
	sorted := slices.Clone(numbers)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var spans []span
	for _, number := range sorted {
		if n := len(spans); n > 0 {
			last := &spans[n-1]
			if uint32(last.address)+uint32(last.quantity) == uint32(number) && last.quantity < MaxQuantity {
				last.quantity++
				continue
			}
		}
		spans = append(spans, span{address: number, quantity: 1})
	}
	return spans
}

// memorySpans merges the memory ranges of all variables into spans of
// adjacent or overlapping memory that are split at MaxQuantity registers.
func memorySpans(vars []catalog.VariableDescriptor) []span {
	type memRange struct {
		start, end uint32 // end is exclusive
	}

	var ranges []memRange
	for _, v := range vars {
		if v.Size == 0 {
			continue
		}
		ranges = append(ranges, memRange{start: uint32(v.Address), end: uint32(v.Address) + uint32(v.Size)})
	}
	slices.SortFunc(ranges, func(a, b memRange) int {
		return int(a.start) - int(b.start)
	})

	var merged []memRange
	for _, r := range ranges {
		if n := len(merged); n > 0 && r.start <= merged[n-1].end {
			merged[n-1].end = max(merged[n-1].end, r.end)
			continue
		}
		merged = append(merged, r)
	}

	var spans []span
	for _, r := range merged {
		end := min(r.end, 0x10000)
		for start := r.start; start < end; start += MaxQuantity {
			quantity := min(end-start, MaxQuantity)
			spans = append(spans, span{address: uint16(start), quantity: uint16(quantity)})
		}
	}
	return spans
}

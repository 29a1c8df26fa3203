package decoder

import (
	"fmt"

	"github.com/retroenv/nextsysinfo/internal/catalog"
	"github.com/retroenv/nextsysinfo/internal/render"
)

const (
	layer2BankSize = 0x4000
	mmuSlotSize    = 0x2000
	mmuROMMapping  = 0xFF
)

type registerFunc func(number, value uint8, bus Bus) []string

// Registers decodes the bit fields of Next registers.
type Registers struct {
	decoders map[uint8]registerFunc
}

var machineIDs = labels{
	0b00001000: "Emulator",
	0b00001010: "ZX Spectrum Next",
	0b11111010: "ZX Spectrum Next Anti Brick",
	0b10011010: "NEXT Core on UnAmiga Reloaded",
	0b10101010: "NEXT Core on UnAmiga",
	0b10111010: "NEXT Core on SiDi",
	0b11001010: "NEXT Core on MiST",
	0b11011010: "NEXT Core on MiSTer",
	0b11101010: "NEXT Core on ZX-DOS/gomaDOS",
}

var resetTypes = labels{
	0x01: "Soft Reset",
	0x02: "Hard Reset",
}

var machineTypes = labels{
	0x00: "Config Mode",
	0x01: "ZX 48K",
	0x02: "ZX 128K/+2",
	0x03: "ZX +2A/+2B/+3/NEXT",
	0x04: "Pentagon Clone",
}

var joystickModes = labels{
	0x00: "Sinclair2",
	0x01: "Kempston2",
	0x02: "Kempston1",
	0x03: "MegaDrive1",
	0x04: "Cursor",
	0x05: "MegaDrive2",
	0x06: "Sinclair1",
	0x07: "User Defined Keys Joystick",
}

var psgModes = labels{
	0x00: "YM",
	0x01: "AY",
	0x03: "Hold all PSGs in RESET",
}

var cpuSpeeds = labels{
	0x00: "3.5",
	0x01: "7",
	0x02: "14",
	0x03: "28",
}

var scanlineWeights = labels{
	0x00: "off",
	0x01: "50%",
	0x02: "25%",
	0x03: "12.5%",
}

var mouseResolutions = labels{
	0x00: "low DPI",
	0x01: "default",
	0x02: "medium DPI",
	0x03: "high DPI",
}

var multifaceTypes = labels{
	0x00: "+3",
	0x01: "128 v87.2",
	0x02: "128 v87.12",
	0x03: "1",
}

var boardRevisions = labels{
	0x00: "ZX Spectrum Next Issue 2",
	0x01: "ZX Spectrum Next Issue 3",
	0x02: "ZX Spectrum Next Issue 4",
}

var videoTimings = labels{
	0x00: "VGA base timing, clk=28000000",
	0x01: "VGA setting 1, clk=28571429",
	0x02: "VGA setting 2, clk=29464286",
	0x03: "VGA setting 3, clk=30000000",
	0x04: "VGA setting 4, clk=31000000",
	0x05: "VGA setting 5, clk=32000000",
	0x06: "VGA setting 6, clk=33000000",
	0x07: "Digital, clk=27000000",
}

var copperModes = labels{
	0x00: "Copper fully stopped",
	0x01: "Copper start, exec from 0, loop",
	0x02: "Copper start, exec from last, loop",
	0x03: "Copper start, exec from 0, reset at raster 0:0",
}

var blendModes = labels{
	0x00: "ULA colour",
	0x01: "No colour blending",
	0x02: "ULA + tilemap mix",
	0x03: "Tilemap colour",
}

var layer2Resolutions = labels{
	0x00: "256 x 192 x 8bpp",
	0x01: "320 x 256 x 8bpp",
	0x02: "640 x 256 x 4bpp",
}

// NewRegisters returns a register decoder for all registers with a known
// bit field layout.
func NewRegisters() *Registers {
	r := &Registers{
		decoders: map[uint8]registerFunc{
			catalog.RegMachineID:   decodeMachineID,
			catalog.RegCoreVersion: decodeCoreVersion,
			0x02:                   decodeReset,
			0x03:                   decodeMachineType,
			0x05:                   decodePeripheral1,
			0x06:                   decodePeripheral2,
			catalog.RegCPUSpeed:    decodeCPUSpeed,
			0x08:                   decodePeripheral3,
			0x09:                   decodePeripheral4,
			0x0A:                   decodePeripheral5,
			0x0B:                   decodeJoystickPortMode,
			0x0F:                   decodeBoardID,
			0x10:                   decodeCoreBoot,
			0x11:                   decodeVideoTiming,
			0x12:                   decodeLayer2Bank,
			0x13:                   decodeLayer2Bank,
			0x62:                   decodeCopperControl,
			0x68:                   decodeULAControl,
			0x69:                   decodeDisplayControl1,
			0x6A:                   decodeLayer10Control,
			0x70:                   decodeLayer2Resolution,
			0xCA:                   decodeInterruptStatus2,
		},
	}

	for slot := uint8(catalog.RegMMUSlot0); slot <= catalog.RegMMUSlot7; slot++ {
		r.decoders[slot] = decodeMMUSlot
	}
	return r
}

// Decode returns the secondary lines of the register with the given value.
// Registers without a known layout return no lines. The bus is only used by
// registers that combine their value with a second register.
func (r *Registers) Decode(number, value uint8, bus Bus) []string {
	decode, ok := r.decoders[number]
	if !ok {
		return nil
	}
	return decode(number, value, bus)
}

func decodeMachineID(_, value uint8, _ Bus) []string {
	return []string{render.RegisterSub("MACHINEID", machineIDs.lookup(value))}
}

// decodeCoreVersion combines major and minor version of the register with
// the sub version register.
func decodeCoreVersion(_, value uint8, bus Bus) []string {
	version := uint16(value)<<8 | uint16(bus.ReadRegister(catalog.RegCoreVerSub))
	return []string{
		render.RegisterSub("VERSION", fmt.Sprintf("%d.%02d.%02d",
			(version>>12)&0x0F, (version>>8)&0x0F, version&0xFF)),
	}
}

func decodeReset(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("LSTSYSRSTTY", resetTypes.lookup(value&0x03)),
		render.RegisterSub("DVMMCNMISRC", fmt.Sprintf("divMMC NMI %sgenerated by NR 0x02", render.Choose(render.Bit(value, 2), "", "not "))),
		render.RegisterSub("MFNMISOURCE", fmt.Sprintf("MF NMI %sgenerated by NR 0x02", render.Choose(render.Bit(value, 3), "", "not "))),
		render.RegisterSub("EXTBUSRSTFG", fmt.Sprintf("RESET %sasserted", render.Choose(render.Bit(value, 7), "", "not "))),
	}
}

func decodeMachineType(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("MACHINETYPE", machineTypes.lookup(value&0x07)),
		render.RegisterSub("DISPTIMING", machineTypes.lookup((value>>4)&0x07)),
	}
}

// decodePeripheral1 decodes the joystick modes, whose 3 bit values are spread
// over non adjacent bits.
func decodePeripheral1(_, value uint8, _ Bus) []string {
	joy1 := (value&0xC0)>>5 | (value&0x08)>>3
	joy2 := (value&0x30)>>3 | (value&0x02)>>1

	return []string{
		render.RegisterSub("SCANDOUBLER", render.OnOff(render.Bit(value, 0))),
		render.RegisterSub("VERTFREQ", render.Choose(render.Bit(value, 2), "60 Hz", "50 Hz")),
		render.RegisterSub("JOYSTICK1", joystickModes.lookup(joy1)),
		render.RegisterSub("JOYSTICK2", joystickModes.lookup(joy2)),
	}
}

func decodePeripheral2(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("PSGMODECTRL", psgModes.lookup(value&0x03)),
		render.RegisterSub("PS2MODECTL", render.Choose(render.Bit(value, 2), "Mouse", "Keyboard")+" primary"),
		render.RegisterSub("NMIBTNCTL", render.EnabledDisabled(render.Bit(value, 3))),
		render.RegisterSub("DVMMCNMICTL", render.EnabledDisabled(render.Bit(value, 4))),
		render.RegisterSub("F3HOTKEYCTL", render.EnabledDisabled(render.Bit(value, 5))),
		render.RegisterSub("INTSPKRCTL", render.Choose(render.Bit(value, 6), "only BEEP", "all audio")),
		render.RegisterSub("F568HKEYCTL", render.EnabledDisabled(render.Bit(value, 7))),
	}
}

// decodeCPUSpeed expects the latched speed value, the live register always
// reports the speed that the tool itself selected.
func decodeCPUSpeed(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("SETSPEED", cpuSpeeds.lookup(value&0x03)+" MHz"),
		render.RegisterSub("CURRNTSPEED", cpuSpeeds.lookup((value>>4)&0x03)+" MHz"),
	}
}

func decodePeripheral3(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("ISSUE2KBD", render.OnOff(render.Bit(value, 0))),
		render.RegisterSub("NEXTSOUND", render.OnOff(render.Bit(value, 1))),
		render.RegisterSub("TMXVIDPTCTL", render.OnOff(render.Bit(value, 2))),
		render.RegisterSub("DACSCTRL", render.OnOff(render.Bit(value, 3))),
		render.RegisterSub("INTSPEAKER", render.OnOff(render.Bit(value, 4))),
		render.RegisterSub("PSGMODECTL", render.Choose(render.Bit(value, 5), "ACB", "ABC")),
		render.RegisterSub("CONTENTION", render.Choose(render.Bit(value, 6), "off", "on")),
		render.RegisterSub("128KBNKUCTL", render.Choose(render.Bit(value, 7), "unlock", "lock")),
	}
}

func decodePeripheral4(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("SCANLINESTR", "scanlines "+scanlineWeights.lookup(value&0x03)),
		render.RegisterSub("HDMIAUDCTRL", render.Choose(render.Bit(value, 2), "mute", "unmute")),
		render.RegisterSub("DIVMMCBCTRL", render.Choose(render.Bit(value, 3), "reset bit6", "off")),
		render.RegisterSub("SPLCKSTPCTL", render.OnOff(render.Bit(value, 4))),
		render.RegisterSub("PSG0MONOCTL", render.Choose(render.Bit(value, 5), "mono", "stereo")),
		render.RegisterSub("PSG1MONOCTL", render.Choose(render.Bit(value, 6), "mono", "stereo")),
		render.RegisterSub("PSG2MONOCTL", render.Choose(render.Bit(value, 7), "mono", "stereo")),
	}
}

func decodePeripheral5(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("MOUSERESCTL", mouseResolutions.lookup(value&0x03)),
		render.RegisterSub("MBTNSWAPCTL", render.Choose(render.Bit(value, 3), "swapped", "off")),
		render.RegisterSub("DIVMMCMPCTL", render.Choose(render.Bit(value, 4), "automap", "off")),
		render.RegisterSub("MULTIFACETP", "Multiface "+multifaceTypes.lookup((value>>6)&0x03)),
	}
}

// decodeJoystickPortMode outputs the meaning of the parameter bit first, as it
// depends on the selected I/O mode.
func decodeJoystickPortMode(_, value uint8, _ Bus) []string {
	var lines []string
	var mode string

	uart := "redirect " + render.Choose(render.Bit(value, 0), "PI UART1", "ESP UART0")

	switch (value >> 4) & 0x03 {
	case 0x00:
		mode = "bit bang"
	case 0x01:
		lines = append(lines, render.RegisterSub("PARAMCLOCK", render.Choose(render.Bit(value, 0), "run", "hold high when clock becomes high")))
		mode = "clock"
	case 0x02:
		lines = append(lines, render.RegisterSub("PARAMUART", uart))
		mode = "UART left joystick port"
	default:
		lines = append(lines, render.RegisterSub("PARAMUART", uart))
		mode = "UART right joystick port"
	}

	return append(lines,
		render.RegisterSub("IOMODECTRL", mode),
		render.RegisterSub("JOYPRTMDSEL", render.Choose(render.Bit(value, 7), "I/O mode", "joysticks")+" enabled"),
	)
}

func decodeBoardID(_, value uint8, _ Bus) []string {
	return []string{render.RegisterSub("REVISION", boardRevisions.lookup(value&0x0F))}
}

func decodeCoreBoot(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("NMIBUTTON", render.Choose(render.Bit(value, 0), "", "not ")+"pressed"),
		render.RegisterSub("DRIVEBUTTON", render.Choose(render.Bit(value, 1), "", "not ")+"pressed"),
		render.RegisterSub("COREID", fmt.Sprintf("%d", (value>>2)&0x1F)),
	}
}

func decodeVideoTiming(_, value uint8, _ Bus) []string {
	return []string{render.RegisterSub("VGATIMING", videoTimings.lookup(value&0x07))}
}

// decodeLayer2Bank shows the 16K bank of the layer 2 screen and its physical address.
func decodeLayer2Bank(_, value uint8, _ Bus) []string {
	physical := uint32(value&0x7F) * layer2BankSize
	return []string{render.RegisterSub("START", fmt.Sprintf("BANK16:%02X (%06X)", value, physical))}
}

// decodeMMUSlot shows the logical 8K window of the slot and the ROM or the
// physical 8K bank that is mapped into it.
func decodeMMUSlot(number, value uint8, _ Bus) []string {
	logical := uint32(number-catalog.RegMMUSlot0) * mmuSlotSize
	window := fmt.Sprintf("(%04X-%04X)", logical, logical+mmuSlotSize-1)

	if value == mmuROMMapping {
		return []string{render.RegisterSub("MAPPING", window+" => ROM")}
	}

	physical := uint32(value) * mmuSlotSize
	return []string{
		render.RegisterSub("MAPPING", fmt.Sprintf("%s => BANK8:%02X (%06X-%06X)",
			window, value, physical, physical+mmuSlotSize-1)),
	}
}

func decodeCopperControl(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("CPPRADDRMSB", fmt.Sprintf("0x%02X", value&0x07)),
		render.RegisterSub("COPPERCTRL", copperModes.lookup((value>>6)&0x03)),
	}
}

func decodeULAControl(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("STENCILMODE", render.OnOff(render.Bit(value, 0))),
		render.RegisterSub("ULAHPSCROLL", render.OnOff(render.Bit(value, 2))),
		render.RegisterSub("ULAPLUSCTRL", render.OnOff(render.Bit(value, 3))),
		render.RegisterSub("EXTKEYS", render.Choose(render.Bit(value, 4), "off", "on")),
		render.RegisterSub("BLNDCLRUSED", blendModes.lookup((value>>5)&0x03)),
		render.RegisterSub("OUTPUTENABL", render.Choose(render.Bit(value, 7), "off", "on")),
	}
}

func decodeDisplayControl1(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("P255ALIAS", fmt.Sprintf("%d", value&0x1F)),
		render.RegisterSub("ULASHDWDISP", render.OnOff(render.Bit(value, 6))),
		render.RegisterSub("LAYER2", render.OnOff(render.Bit(value, 7))),
	}
}

func decodeLayer10Control(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("PALOFFSET", fmt.Sprintf("%d", value&0x0F)),
		render.RegisterSub("RADASMODE", render.OnOff(render.Bit(value, 4))),
		render.RegisterSub("LORESMODE", "Radastan "+render.OnOff(render.Bit(value, 5))),
	}
}

func decodeLayer2Resolution(_, value uint8, _ Bus) []string {
	return []string{
		render.RegisterSub("L2PALOFFSET", fmt.Sprintf("%d", value&0x0F)),
		render.RegisterSub("L2RESSELECT", layer2Resolutions.lookup((value>>4)&0x03)),
	}
}

func decodeInterruptStatus2(_, value uint8, _ Bus) []string {
	trueFalse := func(bit uint) string {
		return render.Choose(render.Bit(value, bit), "true", "false")
	}

	return []string{
		render.RegisterSub("UART0RXAVIL", trueFalse(0)),
		render.RegisterSub("UART0RXNFUL", trueFalse(1)),
		render.RegisterSub("UART0TXEMPT", trueFalse(2)),
		render.RegisterSub("UART1RXAVIL", trueFalse(4)),
		render.RegisterSub("UART1RXNFUL", trueFalse(5)),
		render.RegisterSub("UART1TXEMPT", trueFalse(6)),
	}
}

package catalog

// registers lists all Next registers in ascending register number order.
var registers = []RegisterDescriptor{
	{Number: 0x00, Visible: true, Name: "MACHINEID"},
	{Number: 0x01, Visible: true, Name: "COREVERSION"},
	{Number: 0x02, Visible: true, Name: "RESET"},
	{Number: 0x03, Visible: true, Name: "MACHINETYPE"},
	{Number: 0x04, Visible: true, Name: "CONFMAPPING"},
	{Number: 0x05, Visible: true, Name: "PERIPHERAL1"},
	{Number: 0x06, Visible: true, Name: "PERIPHERAL2"},
	{Number: 0x07, Visible: true, Name: "CPUSPEED"},
	{Number: 0x08, Visible: true, Name: "PERIPHERAL3"},
	{Number: 0x09, Visible: true, Name: "PERIPHERAL4"},
	{Number: 0x0A, Visible: true, Name: "PERIPHERAL5"},
	{Number: 0x0B, Visible: true, Name: "JOYPORTMODE"},
	{Number: 0x0E, Visible: true, Name: "COREVERSUB"},
	{Number: 0x0F, Visible: true, Name: "BOARDID"},
	{Number: 0x10, Visible: true, Name: "COREBOOT"},
	{Number: 0x11, Visible: true, Name: "VIDEOTIMING"},
	{Number: 0x12, Visible: true, Name: "L2ACTRAMBNK"},
	{Number: 0x13, Visible: true, Name: "L2SHARAMBNK"},
	{Number: 0x14, Visible: true, Name: "GLBTRNSCLR"},
	{Number: 0x15, Visible: true, Name: "SPRLYSYSSTP"},
	{Number: 0x16, Visible: true, Name: "L2HSCRLCTRL"},
	{Number: 0x17, Visible: true, Name: "L2VSCRLCTRL"},
	{Number: 0x18, Visible: true, Name: "L2CLPWINDEF"},
	{Number: 0x19, Visible: true, Name: "SPCLPWINDEF"},
	{Number: 0x1A, Visible: true, Name: "L0CLPWINDEF"},
	{Number: 0x1B, Visible: true, Name: "L3CLPWINDEF"},
	{Number: 0x1C, Visible: true, Name: "CLPWINCTRL"},
	{Number: 0x1E, Visible: true, Name: "ACTVIDLNMSB"},
	{Number: 0x1F, Visible: true, Name: "ACTVIDLNLSB"},
	{Number: 0x20, Visible: true, Name: "MASKINTGNRT"},
	{Number: 0x22, Visible: true, Name: "LINEINTCTRL"},
	{Number: 0x26, Visible: true, Name: "ULAHSCRCTRL"},
	{Number: 0x27, Visible: true, Name: "ULAVSCRCTRL"},
	{Number: 0x28, Visible: true, Name: "PS2KYMPADMB"},
	{Number: 0x29, Visible: true, Name: "PS2KYMPADLB"},
	{Number: 0x2A, Visible: true, Name: "PS2KYMPDTMB"},
	{Number: 0x2B, Visible: true, Name: "PS2KYMPDTLB"},
	{Number: 0x2C, Visible: true, Name: "DACBMIRROR"},
	{Number: 0x2D, Visible: true, Name: "DACADMIRROR"},
	{Number: 0x2E, Visible: true, Name: "DACCMIRROR"},
	{Number: 0x2F, Visible: true, Name: "L3HSCRCTRLM"},
	{Number: 0x30, Visible: true, Name: "L3HSCRCTRLL"},
	{Number: 0x31, Visible: true, Name: "L3VSCRCTRL"},
	{Number: 0x32, Visible: true, Name: "L10HSCRCTRL"},
	{Number: 0x33, Visible: true, Name: "L10VSCRCTRL"},
	{Number: 0x34, Visible: true, Name: "SPRITENUMBR"},
	{Number: 0x35, Visible: true, Name: "SPRITEARR0"},
	{Number: 0x36, Visible: true, Name: "SPRITEARR1"},
	{Number: 0x37, Visible: true, Name: "SPRITEARR2"},
	{Number: 0x38, Visible: true, Name: "SPRITEARR3"},
	{Number: 0x39, Visible: true, Name: "SPRITEARR4"},
	{Number: 0x40, Visible: true, Name: "PALINDEXSEL"},
	{Number: 0x41, Visible: true, Name: "8BITPALDATA"},
	{Number: 0x42, Visible: true, Name: "EULAATTRFMT"},
	{Number: 0x43, Visible: true, Name: "PALETTECTRL"},
	{Number: 0x44, Visible: true, Name: "9BITPALDATA"},
	{Number: 0x4A, Visible: true, Name: "FBACKCOLVAL"},
	{Number: 0x4B, Visible: true, Name: "SPRTRNSPIDX"},
	{Number: 0x4C, Visible: true, Name: "L3TRNSPIDX"},
	{Number: 0x50, Visible: true, Name: "MMUSLT0CTRL"},
	{Number: 0x51, Visible: true, Name: "MMUSLT1CTRL"},
	{Number: 0x52, Visible: true, Name: "MMUSLT2CTRL"},
	{Number: 0x53, Visible: true, Name: "MMUSLT3CTRL"},
	{Number: 0x54, Visible: true, Name: "MMUSLT4CTRL"},
	{Number: 0x55, Visible: true, Name: "MMUSLT5CTRL"},
	{Number: 0x56, Visible: true, Name: "MMUSLT6CTRL"},
	{Number: 0x57, Visible: true, Name: "MMUSLT7CTRL"},
	{Number: 0x60, Visible: true, Name: "COPRDTA8WR"},
	{Number: 0x61, Visible: true, Name: "COPRADDRLSB"},
	{Number: 0x62, Visible: true, Name: "COPPERCTRL"},
	{Number: 0x63, Visible: true, Name: "COPRDTA16WR"},
	{Number: 0x64, Visible: true, Name: "VRTLNCNTOFS"},
	{Number: 0x68, Visible: true, Name: "ULACTRL"},
	{Number: 0x69, Visible: true, Name: "DISPCTRL1"},
	{Number: 0x6A, Visible: true, Name: "LAYER01CTRL"},
	{Number: 0x6B, Visible: true, Name: "LAYER3CTRL"},
	{Number: 0x6C, Visible: true, Name: "L3DEFATTR"},
	{Number: 0x6E, Visible: true, Name: "L3BASEADDR"},
	{Number: 0x6F, Visible: true, Name: "L3TILEBASAD"},
	{Number: 0x70, Visible: true, Name: "L2RSLTNCTRL"},
	{Number: 0x71, Visible: true, Name: "L2HSCRLCTLM"},
	{Number: 0x75, Visible: true, Name: "SPRITEATTR0"},
	{Number: 0x76, Visible: true, Name: "SPRITEATTR1"},
	{Number: 0x77, Visible: true, Name: "SPRITEATTR2"},
	{Number: 0x78, Visible: true, Name: "SPRITEATTR3"},
	{Number: 0x79, Visible: true, Name: "SPRITEATTR4"},
	{Number: 0x7F, Visible: true, Name: "USERREG0"},
	{Number: 0x80, Visible: true, Name: "EXPBUSENABL"},
	{Number: 0x81, Visible: true, Name: "EXPBUSCTRL"},
	{Number: 0x82, Visible: true, Name: "INTPRTCTL14"},
	{Number: 0x83, Visible: true, Name: "INTPRTCTL24"},
	{Number: 0x84, Visible: true, Name: "INTPRTCTL34"},
	{Number: 0x85, Visible: true, Name: "INTPRTCTL44"},
	{Number: 0x86, Visible: true, Name: "EXPPRTCTL14"},
	{Number: 0x87, Visible: true, Name: "EXPPRTCTL24"},
	{Number: 0x88, Visible: true, Name: "EXPPRTCTL34"},
	{Number: 0x89, Visible: true, Name: "EXPPRTCTL44"},
	{Number: 0x8A, Visible: true, Name: "EXPIOPRPCTL"},
	{Number: 0x8C, Visible: true, Name: "ALTROMCTRL"},
	{Number: 0x8E, Visible: true, Name: "128KMEMMAP"},
	{Number: 0x8F, Visible: true, Name: "MEMMAPMDCTL"},
	{Number: 0x90, Visible: true, Name: "PIGPIOOUT14"},
	{Number: 0x91, Visible: true, Name: "PIGPIOOUT24"},
	{Number: 0x92, Visible: true, Name: "PIGPIOOUT34"},
	{Number: 0x93, Visible: true, Name: "PIGPIOOUT44"},
	{Number: 0x98, Visible: true, Name: "PIGPIOIN14"},
	{Number: 0x99, Visible: true, Name: "PIGPIOIN24"},
	{Number: 0x9A, Visible: true, Name: "PIGPIOIN34"},
	{Number: 0x9B, Visible: true, Name: "PIGPIOIN44"},
	{Number: 0xA0, Visible: true, Name: "PIPERIPENBL"},
	{Number: 0xA2, Visible: true, Name: "PII2SAUDCTL"},
	{Number: 0xA8, Visible: true, Name: "ESPWFGPOCTL"},
	{Number: 0xA9, Visible: true, Name: "ESPWFGPCTL"},
	{Number: 0xB0, Visible: true, Name: "EXTENDKEYS0"},
	{Number: 0xB1, Visible: true, Name: "EXTENDKEYS1"},
	{Number: 0xB2, Visible: true, Name: "EXTMDPADBTN"},
	{Number: 0xB8, Visible: true, Name: "DIVMMCEP0"},
	{Number: 0xB9, Visible: true, Name: "DIVMMCEPVAL"},
	{Number: 0xBA, Visible: true, Name: "DIVMMCEPTC0"},
	{Number: 0xBB, Visible: true, Name: "DIVMMCEP1"},
	{Number: 0xC0, Visible: true, Name: "IRQCTRL"},
	{Number: 0xC2, Visible: true, Name: "NMIRETADRLS"},
	{Number: 0xC3, Visible: true, Name: "NMIRETADRMS"},
	{Number: 0xC4, Visible: true, Name: "IRQENABLES0"},
	{Number: 0xC5, Visible: true, Name: "IRQENABLES1"},
	{Number: 0xC6, Visible: true, Name: "IRQENABLES2"},
	{Number: 0xC8, Visible: true, Name: "IRQSTATUS0"},
	{Number: 0xC9, Visible: true, Name: "IRQSTATUS1"},
	{Number: 0xCA, Visible: true, Name: "IRQSTATUS2"},
	{Number: 0xCB, Visible: true, Name: "RESERVED"},
	{Number: 0xCC, Visible: true, Name: "DMAIRQENAB0"},
	{Number: 0xCD, Visible: true, Name: "DMAIRQENAB1"},
	{Number: 0xCE, Visible: true, Name: "DMAIRQENAB2"},
	{Number: 0xCF, Visible: true, Name: "RESERVED"},
	{Number: 0xD8, Visible: true, Name: "IOTRAPS"},
	{Number: 0xD9, Visible: true, Name: "IOTRAPSWR"},
	{Number: 0xDA, Visible: true, Name: "IOTRAPCAUSE"},
	{Number: 0xF0, Visible: true, Name: "XDEV"},
	{Number: 0xF8, Visible: true, Name: "XADC"},
	{Number: 0xF9, Visible: true, Name: "XADCD0"},
	{Number: 0xFA, Visible: true, Name: "XADCD1"},
	{Number: 0xFF, Visible: true, Name: "RESERVED"},
}

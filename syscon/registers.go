// Package syscon provides the register map of the LPC11Uxx system
// configuration block (SYSCON) and the flash controller configuration
// register, plus read-modify-write helpers over an abstract register block.
//
// Register and bitfield names follow UM10462 chapter 3 (SYSCON) and
// chapter 4 (FMC).
package syscon

// Reg is a byte offset within a peripheral register block.
type Reg uint32

const (
	// Peripheral base addresses.
	BaseSYSCON    = 0x40048000
	BaseFLASHCTRL = 0x4003C000

	// --- SYSCON register offsets ---
	SYSPLLCTRL    Reg = 0x008 // R/W, MSEL 4:0, PSEL 6:5
	SYSPLLSTAT    Reg = 0x00C // R, LOCK bit0
	USBPLLCTRL    Reg = 0x010 // R/W
	USBPLLSTAT    Reg = 0x014 // R
	SYSOSCCTRL    Reg = 0x020 // R/W
	WDTOSCCTRL    Reg = 0x024 // R/W, DIVSEL 4:0, FREQSEL 8:5
	SYSPLLCLKSEL  Reg = 0x040 // R/W
	SYSPLLCLKUEN  Reg = 0x044 // R/W
	USBPLLCLKSEL  Reg = 0x048 // R/W
	USBPLLCLKUEN  Reg = 0x04C // R/W
	MAINCLKSEL    Reg = 0x070 // R/W
	MAINCLKUEN    Reg = 0x074 // R/W
	SYSAHBCLKDIV  Reg = 0x078 // R/W, DIV 7:0
	SYSAHBCLKCTRL Reg = 0x080 // R/W
	SSP0CLKDIV    Reg = 0x094 // R/W
	UARTCLKDIV    Reg = 0x098 // R/W
	SSP1CLKDIV    Reg = 0x09C // R/W
	USBCLKSEL     Reg = 0x0C0 // R/W
	USBCLKUEN     Reg = 0x0C4 // R/W
	USBCLKDIV     Reg = 0x0C8 // R/W
	PDRUNCFG      Reg = 0x238 // R/W, 0 = powered

	// --- FLASHCTRL register offsets ---
	FLASHCFG Reg = 0x010 // R/W, FLASHTIM 1:0, bits 31:2 reserved (preserve)
)

// PLLCTRL fields (SYSPLLCTRL and USBPLLCTRL share the layout).
const (
	PLLCTRLMselPos  = 0
	PLLCTRLMselMask = 0x1F << PLLCTRLMselPos
	PLLCTRLPselPos  = 5
	PLLCTRLPselMask = 0x3 << PLLCTRLPselPos

	PLLSTATLock = 1 << 0
)

// WDTOSCCTRL fields.
const (
	WDTOSCDivselPos   = 0
	WDTOSCDivselMask  = 0x1F << WDTOSCDivselPos
	WDTOSCFreqselPos  = 5
	WDTOSCFreqselMask = 0xF << WDTOSCFreqselPos
)

// xxxCLKUEN: ENA must go 0 then 1 to latch a new mux selection.
const (
	UENNoChange = 0
	UENUpdate   = 1
)

// Mux selections.
const (
	MainClkSelIRC       = 0
	MainClkSelPLLInput  = 1
	MainClkSelWDTOSC    = 2
	MainClkSelPLLOutput = 3
	MainClkSelMask      = 0x3

	PLLClkSelIRC    = 0
	PLLClkSelSYSOSC = 1
	PLLClkSelMask   = 0x3

	USBClkSelUSBPLL  = 0
	USBClkSelMainClk = 1
)

// PDRUNCFG bits. A set bit powers the block down.
const (
	PDIRCOUT = 1 << 0
	PDIRC    = 1 << 1
	PDFLASH  = 1 << 2
	PDBOD    = 1 << 3
	PDADC    = 1 << 4
	PDSYSOSC = 1 << 5
	PDWDTOSC = 1 << 6
	PDSYSPLL = 1 << 7
	PDUSBPLL = 1 << 8
	PDUSBPAD = 1 << 10
)

// SYSAHBCLKCTRL clock gates. A set bit enables the clock.
const (
	AHBSys        = 1 << 0
	AHBROM        = 1 << 1
	AHBRAM0       = 1 << 2
	AHBFlashReg   = 1 << 3
	AHBFlashArray = 1 << 4
	AHBI2C        = 1 << 5
	AHBGPIO       = 1 << 6
	AHBSSP0       = 1 << 11
	AHBUSART      = 1 << 12
	AHBUSB        = 1 << 14
	AHBIOCON      = 1 << 16
	AHBSSP1       = 1 << 18
)

// FLASHCFG fields.
const (
	FlashTimPos  = 0
	FlashTimMask = 0x3 << FlashTimPos
)

// Reset values for the registers the clock engine touches (UM10462 table 3.5).
const (
	ResetPDRUNCFG      = 0x0000EDF0
	ResetSYSAHBCLKCTRL = 0x0000485F
	ResetSYSAHBCLKDIV  = 0x00000001
	ResetWDTOSCCTRL    = 0x000000A0
	ResetUSBCLKSEL     = 0x00000000
	ResetFLASHCFG      = 0x00000002 // 3 system clocks
)

package errcode

import (
	"errors"

	"lpc11u-go/x/conv"
)

// Code is a stable, caller-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Validation codes. Every one of these is raised before any register is touched.
const (
	OK Code = "ok"

	PLLNotConfigured            Code = "pll_not_configured"
	WatchdogNotConfigured       Code = "watchdog_not_configured"
	MissingCrystalFrequency     Code = "missing_crystal_frequency"
	NotIntegerMultiple          Code = "not_integer_multiple"
	MultiplierOutOfRange        Code = "multiplier_out_of_range"
	NoValidPostDivider          Code = "no_valid_post_divider"
	FrequencyTooHigh            Code = "frequency_too_high"
	NotIntegerDivisible         Code = "not_integer_divisible"
	FrequencyExceedsFlashRating Code = "frequency_exceeds_flash_rating"
	ZeroFrequency               Code = "zero_frequency"
)

// Runtime and configuration codes.
const (
	AlreadyApplied    Code = "already_applied"
	NotFrozen         Code = "not_frozen"
	DividerOutOfRange Code = "divider_out_of_range"
	UnknownBoard      Code = "unknown_board"
	InvalidConfig     Code = "invalid_config"

	Error Code = "error" // generic fallback
)

// E keeps the resolution step, the offending value and an optional cause.
type E struct {
	C     Code
	Op    string
	Value uint32
	Msg   string
	Err   error
}

// New builds an *E for a numeric failure. Msg is left empty; Error renders Op and Value.
func New(c Code, op string, value uint32) *E {
	return &E{C: c, Op: op, Value: value}
}

func (e *E) Error() string {
	var buf [20]byte
	s := string(e.C)
	if e.Op != "" {
		s += ": " + e.Op
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	} else if e.Value != 0 {
		s += ": " + string(conv.Utoa(buf[:], uint64(e.Value)))
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is match an *E against its bare Code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		return Of(u.Unwrap())
	}
	return Error
}

// ValueOf returns the offending value carried by the first *E in err's
// chain, if any.
func ValueOf(err error) (uint32, bool) {
	var e *E
	if errors.As(err, &e) {
		return e.Value, true
	}
	return 0, false
}

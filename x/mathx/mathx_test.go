package mathx

import "testing"

func TestExactDiv(t *testing.T) {
	if q, ok := ExactDiv[uint32](48_000_000, 12_000_000); !ok || q != 4 {
		t.Fatalf("ExactDiv(48M,12M) = %d,%v", q, ok)
	}
	if q, ok := ExactDiv[uint32](48_000_000, 10_000_000); ok || q != 4 {
		t.Fatalf("ExactDiv(48M,10M) = %d,%v; want 4,false", q, ok)
	}
	if _, ok := ExactDiv[uint32](1, 0); ok {
		t.Fatal("division by zero must report false")
	}
}

func TestRoundDiv(t *testing.T) {
	if RoundDiv[uint32](7, 2) != 4 || RoundDiv[uint32](5, 3) != 2 || RoundDiv[uint32](4, 3) != 1 {
		t.Fatal("RoundDiv failed")
	}
	if RoundDiv[uint8](1, 0) != 0 {
		t.Fatal("zero divisor must yield 0")
	}
}

func TestInRangeIsHalfOpen(t *testing.T) {
	if !InRange(156, 156, 320) {
		t.Fatal("lower bound must be inclusive")
	}
	if InRange(320, 156, 320) {
		t.Fatal("upper bound must be exclusive")
	}
	if InRange(155, 156, 320) {
		t.Fatal("below range accepted")
	}
}

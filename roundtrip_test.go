package oxml

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"sync"
	"testing"
	"testing/quick"
)

// boundedInt generates int64 values inside [lo, hi].
func boundedInt(lo, hi int64) func([]reflect.Value, *rand.Rand) {
	return func(args []reflect.Value, r *rand.Rand) {
		span := uint64(hi - lo)
		var off uint64
		if span == math.MaxUint64 {
			off = r.Uint64()
		} else {
			off = r.Uint64() % (span + 1)
		}
		args[0] = reflect.ValueOf(lo + int64(off))
	}
}

func checkIntRoundTrip(t *testing.T, st SimpleType[int64], lo, hi int64) {
	t.Helper()
	cfg := &quick.Config{MaxCount: 1000, Values: boundedInt(lo, hi)}
	err := quick.Check(func(v int64) bool {
		s, err := st.ToXML(v)
		if err != nil {
			return false
		}
		got, err := st.FromXML(s)
		return err == nil && got == v
	}, cfg)
	if err != nil {
		t.Fatalf("%s: %v", st.Name(), err)
	}
}

func TestQuickIntegerRoundTrip(t *testing.T) {
	checkIntRoundTrip(t, XsdUnsignedInt, 0, math.MaxUint32)
	checkIntRoundTrip(t, Coordinate32, math.MinInt64, math.MaxInt64)
	checkIntRoundTrip(t, Percentage, math.MinInt64, math.MaxInt64)
	checkIntRoundTrip(t, SlideID, 256, math.MaxInt32)
}

func TestIntegerRoundTripBounds(t *testing.T) {
	tests := []struct {
		st     SimpleType[int64]
		values []int64
	}{
		{XsdUnsignedInt, []int64{0, 1, math.MaxUint32}},
		{Coordinate32, []int64{math.MinInt64, 0, math.MaxInt64}},
		{Percentage, []int64{-100000, 0, 100000}},
		{SlideID, []int64{256, math.MaxInt32}},
	}
	for _, tt := range tests {
		for _, v := range tt.values {
			s, err := tt.st.ToXML(v)
			if err != nil {
				t.Fatalf("%s.ToXML(%d): %v", tt.st.Name(), v, err)
			}
			got, err := tt.st.FromXML(s)
			if err != nil || got != v {
				t.Fatalf("%s round trip %d = %d, %v", tt.st.Name(), v, got, err)
			}
		}
	}
}

func TestQuickSlideSizeCoordinateRoundTrip(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000, Values: boundedInt(int64(MinSlideSize), int64(MaxSlideSize))}
	err := quick.Check(func(v int64) bool {
		s, err := SlideSizeCoordinate.ToXML(Emu(v))
		if err != nil {
			return false
		}
		got, err := SlideSizeCoordinate.FromXML(s)
		return err == nil && got == Emu(v)
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickStringRoundTrip(t *testing.T) {
	err := quick.Check(func(v string) bool {
		s, err := XsdString.ToXML(v)
		if err != nil {
			return false
		}
		got, err := XsdString.FromXML(s)
		return err == nil && got == v
	}, &quick.Config{MaxCount: 1000})
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickHexColorRGBRoundTrip(t *testing.T) {
	const digits = "0123456789abcdefABCDEF"
	cfg := &quick.Config{
		MaxCount: 1000,
		Values: func(args []reflect.Value, r *rand.Rand) {
			var b strings.Builder
			for j := 0; j < 6; j++ {
				b.WriteByte(digits[r.Intn(len(digits))])
			}
			args[0] = reflect.ValueOf(b.String())
		},
	}
	err := quick.Check(func(v string) bool {
		s, err := HexColorRGB.ToXML(v)
		if err != nil {
			return false
		}
		got, err := HexColorRGB.FromXML(s)
		return err == nil && got == strings.ToUpper(v) && strings.EqualFold(got, v)
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestConvertersConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := int64(256 + i)
			s, err := SlideID.ToXML(id)
			if err != nil {
				errs <- err
				return
			}
			if _, err := SlideID.FromXML(s); err != nil {
				errs <- err
				return
			}
			if _, err := HexColorRGB.ToXML("a0b1c2"); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent conversion failed: %v", err)
	}
}

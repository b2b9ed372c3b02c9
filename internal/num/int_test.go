package num

import (
	"math"
	"strconv"
	"testing"
	"testing/quick"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		errKind ParseErrKind
		wantErr bool
	}{
		{name: "zero", input: "0", want: 0},
		{name: "neg zero", input: "-0", want: 0},
		{name: "pos sign zero", input: "+000", want: 0},
		{name: "positive", input: "123", want: 123},
		{name: "negative", input: "-456", want: -456},
		{name: "leading zeros", input: "0007", want: 7},
		{name: "surrounding whitespace", input: " \t42\n", want: 42},
		{name: "max int64", input: "9223372036854775807", want: math.MaxInt64},
		{name: "min int64", input: "-9223372036854775808", want: math.MinInt64},
		{name: "empty", input: "", wantErr: true, errKind: ParseEmpty},
		{name: "whitespace only", input: "  ", wantErr: true, errKind: ParseEmpty},
		{name: "sign only", input: "+", wantErr: true, errKind: ParseNoDigits},
		{name: "bad char", input: "12a", wantErr: true, errKind: ParseBadChar},
		{name: "inner space", input: "1 2", wantErr: true, errKind: ParseBadChar},
		{name: "decimal point", input: "1.0", wantErr: true, errKind: ParseBadChar},
		{name: "double sign", input: "--1", wantErr: true, errKind: ParseBadChar},
		{name: "overflow", input: "9223372036854775808", wantErr: true, errKind: ParseOverflow},
		{name: "negative overflow", input: "-9223372036854775809", wantErr: true, errKind: ParseOverflow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInt(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if err.Kind != tc.errKind {
					t.Fatalf("error kind = %v, want %v", err.Kind, tc.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseInt(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestQuickIntRoundTrip(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v int64) bool {
		got, err := ParseInt(strconv.FormatInt(v, 10))
		return err == nil && got == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestParseErrorString(t *testing.T) {
	var nilErr *ParseError
	if nilErr.Error() != "" {
		t.Fatalf("nil ParseError should render empty")
	}
	if got := (&ParseError{Kind: ParseOverflow}).Error(); got != "overflow" {
		t.Fatalf("Error() = %q, want overflow", got)
	}
	if got := ParseInvalid.String(); got != "invalid" {
		t.Fatalf("String() = %q, want invalid", got)
	}
}

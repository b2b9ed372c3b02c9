package oxml

import "strconv"

// Emu is a length in English Metric Units. One inch is 914400 EMU.
type Emu int64

// EMU per unit of length.
const (
	EMUPerInch       = 914400
	EMUPerCm         = 360000
	EMUPerMm         = 36000
	EMUPerPt         = 12700
	EMUPerCentipoint = 127
)

// Inches returns the Emu length of in inches, truncated toward zero.
func Inches(in float64) Emu { return Emu(in * EMUPerInch) }

// Centimeters returns the Emu length of cm centimeters, truncated toward zero.
func Centimeters(cm float64) Emu { return Emu(cm * EMUPerCm) }

// Millimeters returns the Emu length of mm millimeters, truncated toward zero.
func Millimeters(mm float64) Emu { return Emu(mm * EMUPerMm) }

// Points returns the Emu length of pt points, truncated toward zero.
func Points(pt float64) Emu { return Emu(pt * EMUPerPt) }

// Centipoints returns the Emu length of cp hundredths of a point.
func Centipoints(cp int64) Emu { return Emu(cp * EMUPerCentipoint) }

// Inches returns the length in inches.
func (e Emu) Inches() float64 { return float64(e) / EMUPerInch }

// Cm returns the length in centimeters.
func (e Emu) Cm() float64 { return float64(e) / EMUPerCm }

// Mm returns the length in millimeters.
func (e Emu) Mm() float64 { return float64(e) / EMUPerMm }

// Pt returns the length in points.
func (e Emu) Pt() float64 { return float64(e) / EMUPerPt }

// Centipoints returns the length in hundredths of a point, truncated toward zero.
func (e Emu) Centipoints() int64 { return int64(e) / EMUPerCentipoint }

// Emu returns the length as a plain integer count of EMU.
func (e Emu) Emu() int64 { return int64(e) }

// String formats the length as decimal EMU.
func (e Emu) String() string { return strconv.FormatInt(int64(e), 10) }

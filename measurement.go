package slidekit

import (
	"fmt"
	"math"
)

// EMU is an English Metric Unit, the native length unit of OOXML geometry.
// 1 inch = 914400 EMU, 1 point = 12700 EMU, 1 cm = 360000 EMU.
type EMU int64

const (
	emuPerInch       = 914400
	emuPerPoint      = 12700
	emuPerCentimeter = 360000
	emuPerMillimeter = 36000
	// maxEMU is the maximum safe EMU value to prevent overflow in arithmetic.
	maxEMU = math.MaxInt64 / 2
)

// Inch converts inches to EMU. Clamps to safe range.
func Inch(n float64) EMU {
	return clampEMU(n * emuPerInch)
}

// Point converts points to EMU.
func Point(n float64) EMU {
	return clampEMU(n * emuPerPoint)
}

// Centimeter converts centimeters to EMU.
func Centimeter(n float64) EMU {
	return clampEMU(n * emuPerCentimeter)
}

// Millimeter converts millimeters to EMU.
func Millimeter(n float64) EMU {
	return clampEMU(n * emuPerMillimeter)
}

// Inches returns the value in inches.
func (e EMU) Inches() float64 {
	return float64(e) / emuPerInch
}

// Points returns the value in points.
func (e EMU) Points() float64 {
	return float64(e) / emuPerPoint
}

// Centimeters returns the value in centimeters.
func (e EMU) Centimeters() float64 {
	return float64(e) / emuPerCentimeter
}

// Millimeters returns the value in millimeters.
func (e EMU) Millimeters() float64 {
	return float64(e) / emuPerMillimeter
}

// String renders the value in inches for human-readable output.
func (e EMU) String() string {
	return fmt.Sprintf("%.2fin", e.Inches())
}

// clampEMU converts a float64 to EMU, clamping to prevent overflow.
func clampEMU(v float64) EMU {
	if v > float64(maxEMU) {
		return maxEMU
	}
	if v < -float64(maxEMU) {
		return -maxEMU
	}
	return EMU(v)
}

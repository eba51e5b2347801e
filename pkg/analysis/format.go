package analysis

import (
	"fmt"

	"github.com/philipparndt/gocmm/pkg/geometry"
)

// FormatVolume renders a volume in the report format, e.g. "volume = 1.67E-01 Å³"
func FormatVolume(volume float64) string {
	return fmt.Sprintf("volume = %.2E Å³", volume)
}

// FormatSurfaceArea renders an area in the report format
func FormatSurfaceArea(area float64) string {
	return fmt.Sprintf("surface_area = %.2E Å²", area)
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "Å"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

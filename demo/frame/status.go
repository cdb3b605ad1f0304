package frame

import (
	"fmt"
	"math"

	"cubecam/camera"
)

// Status is the text shown in the HUD. frameMs may be nil.
func Status(cam *camera.Camera, fps float32, frameMs *History) []string {
	p, f := cam.Position(), cam.Front()
	lines := []string{
		fmt.Sprintf("pos   %7.2f %7.2f %7.2f", shown(p.X(), 2), shown(p.Y(), 2), shown(p.Z(), 2)),
		fmt.Sprintf("front %7.2f %7.2f %7.2f", shown(f.X(), 2), shown(f.Y(), 2), shown(f.Z(), 2)),
		fmt.Sprintf("yaw %7.1f  pitch %5.1f  fov %4.1f", shown(cam.Yaw(), 1), shown(cam.Pitch(), 1), cam.Fov()),
		fmt.Sprintf("fps %6.1f", fps),
	}
	if frameMs != nil && frameMs.Len() > 0 {
		lines = append(lines, fmt.Sprintf("ms  avg %5.2f  min %5.2f  max %5.2f",
			frameMs.Average(), frameMs.Min(), frameMs.Max()))
	}
	return lines
}

// shown rounds v to the printed precision so tiny negatives do not print
// as -0.00.
func shown(v float32, places int) float32 {
	scale := math.Pow(10, float64(places))
	r := float32(math.Round(float64(v)*scale) / scale)
	if r == 0 {
		return 0
	}
	return r
}

package game

import colorful "github.com/lucasb-eyer/go-colorful"

const skyColor = "#0B1420"

// blendToward mixes base toward target by t in [0, 1] in RGB space.
func blendToward(base, target string, t float64) string {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	a, err1 := colorful.Hex(base)
	b, err2 := colorful.Hex(target)
	if err1 != nil || err2 != nil {
		return base
	}
	return a.BlendRgb(b, t).Hex()
}

// starColor fades a star between the sky color and white by its
// twinkle brightness.
func starColor(brightness float64) string {
	return blendToward(skyColor, "#FFFFFF", brightness)
}

// fadeOut dims a color toward the sky as alpha drops from 1 to 0.
func fadeOut(color string, alpha float64) string {
	return blendToward(skyColor, color, alpha)
}

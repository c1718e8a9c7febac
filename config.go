package mandel

import (
	"fmt"
	"math"
)

const (
	DefaultEscapeLimit = 20
	DefaultResolution  = 200
)

// Upper bounds for plots computed on behalf of remote clients.
const (
	MaxResolution  = 4096
	MaxEscapeLimit = 1 << 16
)

// Config describes one plot. It is a plain comparable value and is never
// modified after construction, so it can be shared and used as a map key.
type Config struct {
	CentreX, CentreY float64
	Width, Height    float64

	EscapeLimit int

	// Resolution is the number of samples along each axis. It is independent
	// of Width and Height, which only size the plotted region.
	Resolution int
}

func DefaultConfig() Config {
	return Config{
		Width:       8,
		Height:      8,
		EscapeLimit: DefaultEscapeLimit,
		Resolution:  DefaultResolution,
	}
}

// WithLandmark returns a copy of c centred on, and sized to, the landmark region.
func (c Config) WithLandmark(r Region) Config {
	c.CentreX, c.CentreY = r.Centre()
	c.Width, c.Height = r.Width(), r.Height()
	return c
}

func (c Config) Region() Region {
	return RegionAround(c.CentreX, c.CentreY, c.Width, c.Height)
}

func (c Config) Validate() error {
	for _, v := range []float64{c.CentreX, c.CentreY, c.Width, c.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("config: %v: %w", v, ErrInvalidValue)
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: size %gx%g: %w", c.Width, c.Height, ErrDegenerateRegion)
	}
	if c.EscapeLimit <= 0 {
		return fmt.Errorf("config: limit %d: %w", c.EscapeLimit, ErrInvalidLimit)
	}
	if c.Resolution < 2 {
		return fmt.Errorf("config: resolution %d: %w", c.Resolution, ErrInvalidResolution)
	}
	// tiny sizes around a large centre can still collapse in float64
	return c.Region().Validate()
}

// CheckLimits validates c and rejects plots larger than MaxResolution samples
// per axis or with an escape limit above MaxEscapeLimit.
func (c Config) CheckLimits() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Resolution > MaxResolution {
		return fmt.Errorf("config: resolution %d above %d: %w", c.Resolution, MaxResolution, ErrTooLarge)
	}
	if c.EscapeLimit > MaxEscapeLimit {
		return fmt.Errorf("config: limit %d above %d: %w", c.EscapeLimit, MaxEscapeLimit, ErrTooLarge)
	}
	return nil
}

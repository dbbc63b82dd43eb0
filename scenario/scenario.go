package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/obstacle"
	"github.com/katalvlaran/waypath/route"
)

// PointSpec is one waypoint entry in a scenario file.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ObstacleSpec is one keep-out disk entry in a scenario file.
type ObstacleSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// SafetySpec carries the tunable safety parameters. Pointer fields
// distinguish "omitted, use the default" from an explicit zero.
type SafetySpec struct {
	Margin    *float64 `yaml:"margin,omitempty"`
	Subdivide bool     `yaml:"subdivide,omitempty"`
	MaxStep   float64  `yaml:"max_step,omitempty"`
}

// Scenario is one complete planning input as stored on disk.
type Scenario struct {
	Name      string         `yaml:"name"`
	Waypoints []PointSpec    `yaml:"waypoints"`
	Obstacles []ObstacleSpec `yaml:"obstacles,omitempty"`
	Safety    SafetySpec     `yaml:"safety,omitempty"`
	CloseLoop *bool          `yaml:"close_loop,omitempty"`
}

// Load reads and validates a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scenario file not found: %s", path)
		}
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the scenario to a YAML file.
func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling scenario YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing scenario file: %w", err)
	}

	return nil
}

// Validate checks structural requirements before planning: at least one
// waypoint, non-negative radii, non-negative margin, positive explicit step.
func (s *Scenario) Validate() error {
	if len(s.Waypoints) == 0 {
		return fmt.Errorf("scenario %q: at least one waypoint is required", s.Name)
	}
	for i, o := range s.Obstacles {
		if o.Radius < 0 {
			return fmt.Errorf("scenario %q: obstacle[%d] radius must be non-negative, got %g", s.Name, i, o.Radius)
		}
	}
	if s.Safety.Margin != nil && *s.Safety.Margin < 0 {
		return fmt.Errorf("scenario %q: safety.margin must be non-negative, got %g", s.Name, *s.Safety.Margin)
	}
	if s.Safety.MaxStep < 0 {
		return fmt.Errorf("scenario %q: safety.max_step must be positive, got %g", s.Name, s.Safety.MaxStep)
	}
	return nil
}

// Points converts the waypoint entries to geometry points, in file order.
// File order matters: the first entry is the tour origin and nearest-
// neighbor ties break toward earlier entries.
func (s *Scenario) Points() []geom.Point {
	pts := make([]geom.Point, len(s.Waypoints))
	for i, w := range s.Waypoints {
		pts[i] = geom.Point{X: w.X, Y: w.Y}
	}
	return pts
}

// Field converts the obstacle entries to an obstacle field, in file order.
func (s *Scenario) Field() obstacle.Field {
	if len(s.Obstacles) == 0 {
		return nil
	}
	f := make(obstacle.Field, len(s.Obstacles))
	for i, o := range s.Obstacles {
		f[i] = obstacle.Circle{Center: geom.Point{X: o.X, Y: o.Y}, Radius: o.Radius}
	}
	return f
}

// PlanOptions derives route.Options from the scenario, applying route
// package defaults for every omitted field.
func (s *Scenario) PlanOptions() route.Options {
	opts := route.DefaultOptions()
	if s.Safety.Margin != nil {
		opts.Margin = *s.Safety.Margin
	}
	opts.Subdivide = s.Safety.Subdivide
	if s.Safety.MaxStep > 0 {
		opts.MaxStep = s.Safety.MaxStep
	}
	if s.CloseLoop != nil {
		opts.CloseLoop = *s.CloseLoop
	}
	return opts
}

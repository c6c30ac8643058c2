package navigator

// NavigationMode converts a route distance into a time estimate. Adding a
// mode needs only a name and an average speed unless a non-linear time model
// is wanted, in which case implement the interface directly.
type NavigationMode interface {
	Name() string
	Description() string
	AverageSpeed() float64
	// CalculateTime returns the travel time in minutes for a distance in
	// meters.
	CalculateTime(distanceMeters float64) float64
	Icon() rune
}

type speedMode struct {
	name        string
	description string
	speedKmh    float64
	icon        rune
}

func (m speedMode) Name() string {
	return m.name
}

func (m speedMode) Description() string {
	return m.description
}

func (m speedMode) AverageSpeed() float64 {
	return m.speedKmh
}

func (m speedMode) CalculateTime(distanceMeters float64) float64 {
	speedMetersPerMin := m.speedKmh * 1000.0 / 60.0
	return distanceMeters / speedMetersPerMin
}

func (m speedMode) Icon() rune {
	return m.icon
}

// NewWalkingMode is the default mode, 5 km/h campus walking pace.
func NewWalkingMode() NavigationMode {
	return speedMode{
		name:        "Walking",
		description: "Walking mode: Average pace of 5 km/h. Suitable for all campus routes and pathways.",
		speedKmh:    5.0,
		icon:        'W',
	}
}

// NewCyclingMode averages 15 km/h.
func NewCyclingMode() NavigationMode {
	return speedMode{
		name:        "Cycling",
		description: "Cycling mode: Average pace of 15 km/h. Faster option for longer campus distances.",
		speedKmh:    15.0,
		icon:        'C',
	}
}

// ModeByName resolves a built-in mode from its case-sensitive name, walking
// when name is empty. Unknown names return nil.
func ModeByName(name string) NavigationMode {
	switch name {
	case "", "Walking":
		return NewWalkingMode()
	case "Cycling":
		return NewCyclingMode()
	default:
		return nil
	}
}

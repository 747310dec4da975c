package entities

// Category classifies a converted move. The zero value is CategoryUnknown.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryStandard
	CategoryBasic
	CategoryStatus
	CategoryMultiHit
)

func (c Category) String() string {
	switch c {
	case CategoryStandard:
		return "Standard"
	case CategoryBasic:
		return "Basic"
	case CategoryStatus:
		return "Status"
	case CategoryMultiHit:
		return "Multi-Hit"
	default:
		return "Unknown"
	}
}

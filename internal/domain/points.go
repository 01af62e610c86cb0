package domain

// Points is a non-negative quantity of reward points. The zero value is valid.
// Arithmetic is saturating on the low end so a Points value can never go
// negative.
type Points int

// NewPoints validates a raw value as Points.
func NewPoints(v int) (Points, error) {
	if v < 0 {
		return 0, ErrNegativePoints
	}
	return Points(v), nil
}

// Add returns p + n.
func (p Points) Add(n Points) Points {
	return p + n
}

// SubtractSaturating returns p - n, floored at zero.
func (p Points) SubtractSaturating(n Points) Points {
	if n >= p {
		return 0
	}
	return p - n
}

// Int returns the value as a plain int, mainly for persistence and JSON.
func (p Points) Int() int {
	return int(p)
}

package lineup

// Size is the number of players in a lineup.
type Size int

const (
	SizeTwo   Size = 2
	SizeThree Size = 3
	SizeFive  Size = 5
)

// Sizes lists the tracked lineup sizes in display order.
var Sizes = []Size{SizeTwo, SizeThree, SizeFive}

// Valid reports whether s is a tracked lineup size.
func (s Size) Valid() bool {
	return s == SizeTwo || s == SizeThree || s == SizeFive
}

// Order selects the best or the worst lineups by net rating.
type Order string

const (
	OrderTop    Order = "top"
	OrderBottom Order = "bottom"
)

// ParseOrder maps "" to OrderTop and rejects anything but top/bottom.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", OrderTop:
		return OrderTop, nil
	case OrderBottom:
		return OrderBottom, nil
	}
	return "", ErrInvalidOrder
}

// LineupError is a custom error type for lineup-related errors
type LineupError string

// Error implements the error interface
func (e LineupError) Error() string {
	return string(e)
}

const (
	ErrInvalidSize  LineupError = "lineup size must be 2, 3 or 5"
	ErrInvalidOrder LineupError = "lineup order must be top or bottom"
	ErrNilRepo      LineupError = "lineup repository cannot be nil"
)

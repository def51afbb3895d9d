package model

type TimeBlock string

const (
	Morning   TimeBlock = "morning"
	Midday    TimeBlock = "midday"
	Afternoon TimeBlock = "afternoon"
)

// DefaultBlockRating is used when a session carries an unknown block tag.
const DefaultBlockRating = 7.0

// Rating returns the fixed desirability rating of the block.
func (b TimeBlock) Rating() float64 {
	switch b {
	case Morning:
		return 7.5
	case Midday:
		return 7.0
	case Afternoon:
		return 6.5
	}
	return DefaultBlockRating
}

// TimeSlot is one entry of the fixed daily slot catalog.
type TimeSlot struct {
	ID    int       `csv:"id"`
	Label string    `csv:"time"`
	Block TimeBlock `csv:"block"`
}

package models

// BehaviorCode identifies one observable mouse behavior by its key.
type BehaviorCode byte

// Behavior codes recognized by the recorder
const (
	Allogrooming BehaviorCode = 'a' // Grooming the unconscious mouse
	Burrowing    BehaviorCode = 'b' // Rummaging under bedding or the other mouse
	Climbing     BehaviorCode = 'c' // Climbing the cage
	Grooming     BehaviorCode = 'g' // Grooming self
	Nesting      BehaviorCode = 'n' // Bringing materials or building the nest
	Other        BehaviorCode = 'o' // Blank state
	Rearing      BehaviorCode = 'r' // Forepaws in the air
	Sitting      BehaviorCode = 's' // Sitting
)

// Behavior is one row of the behavior table
type Behavior struct {
	Code  BehaviorCode
	Label string
	Color string // Hex colour, "#RRGGBB"
}

// behaviorTable is the fixed vocabulary, in key order.
// It is never modified after initialisation.
var behaviorTable = [...]Behavior{
	{Code: Allogrooming, Label: "Allogrooming", Color: "#0000CC"},
	{Code: Burrowing, Label: "Burrowing", Color: "#FF0066"},
	{Code: Climbing, Label: "Climbing", Color: "#FF3399"},
	{Code: Grooming, Label: "Grooming", Color: "#FF99CC"},
	{Code: Nesting, Label: "Nesting", Color: "#0099FF"},
	{Code: Other, Label: "Other", Color: "#99FF66"},
	{Code: Rearing, Label: "Rearing", Color: "#FF66CC"},
	{Code: Sitting, Label: "Sitting", Color: "#9999FF"},
}

// displayOrder is the priority used for summaries and charts
var displayOrder = [...]BehaviorCode{
	Allogrooming,
	Burrowing,
	Rearing,
	Climbing,
	Grooming,
	Other,
	Sitting,
	Nesting,
}

func lookup(code BehaviorCode) (Behavior, bool) {
	for _, b := range behaviorTable {
		if b.Code == code {
			return b, true
		}
	}
	return Behavior{}, false
}

// ParseBehavior maps a key to its behavior code.
// Returns false when the key is not part of the vocabulary.
func ParseBehavior(key byte) (BehaviorCode, bool) {
	code := BehaviorCode(key)
	if _, ok := lookup(code); !ok {
		return Other, false
	}
	return code, true
}

// Valid reports whether the code is part of the vocabulary
func (c BehaviorCode) Valid() bool {
	_, ok := lookup(c)
	return ok
}

// Label returns the human-readable name, or "" for unknown codes
func (c BehaviorCode) Label() string {
	b, _ := lookup(c)
	return b.Label
}

// Color returns the display colour as "#RRGGBB", or "" for unknown codes
func (c BehaviorCode) Color() string {
	b, _ := lookup(c)
	return b.Color
}

// String implements fmt.Stringer
func (c BehaviorCode) String() string {
	return string(rune(c))
}

// Behaviors returns a copy of the behavior table in key order
func Behaviors() []Behavior {
	out := make([]Behavior, len(behaviorTable))
	copy(out, behaviorTable[:])
	return out
}

// DisplayOrder returns the summary priority order:
// Allogrooming, Burrowing, Rearing, Climbing, Grooming, Other, Sitting, Nesting.
func DisplayOrder() []BehaviorCode {
	out := make([]BehaviorCode, len(displayOrder))
	copy(out, displayOrder[:])
	return out
}

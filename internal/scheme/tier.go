package scheme

// DisplayCategory identifies how a tier is presented on the overview.
type DisplayCategory int

const (
	CategoryTier1 DisplayCategory = iota
	CategoryTier2
	CategoryBridging
)

func (c DisplayCategory) String() string {
	switch c {
	case CategoryTier1:
		return "tier1"
	case CategoryTier2:
		return "tier2"
	case CategoryBridging:
		return "bridging"
	default:
		return "unknown"
	}
}

// AssistanceTier is one named eligibility and benefit category.
type AssistanceTier struct {
	Name        string
	Purpose     string
	Eligibility []string // never empty
	Payment     string
	Duration    string
	Category    DisplayCategory
}

// Fact is a labelled value shown in the bridging highlight box.
type Fact struct {
	Label string
	Value string
}

// CallToAction is the static link shown after the procedure steps.
type CallToAction struct {
	Prompt string
	Label  string
	URL    string
}

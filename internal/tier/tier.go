// Package tier buckets Indian place names into the city tiers the price
// model was trained on.
package tier

import "fmt"

// Tier is an ordinal location bucket, lower is more desirable
type Tier int

const (
	Metro     Tier = 0
	Secondary Tier = 1
	Other     Tier = 2
)

var metros = []string{
	"Ahmedabad", "Bengaluru", "Chennai", "Delhi", "Hyderabad", "Kolkata", "Mumbai", "Pune",
}

var secondary = []string{
	"Agra", "Ajmer", "Aligarh", "Amravati", "Amritsar", "Aurangabad", "Bareilly", "Bhopal", "Chandigarh",
	"Coimbatore", "Dehradun", "Lucknow", "Madurai", "Nagpur", "Patna", "Ranchi", "Thiruvananthapuram", "Varanasi",
}

var lookup = func() map[string]Tier {
	m := make(map[string]Tier, len(metros)+len(secondary))
	for _, name := range secondary {
		m[name] = Secondary
	}
	for _, name := range metros {
		m[name] = Metro
	}
	return m
}()

// Classify maps a place name to its tier. Matching is exact and case-sensitive;
// anything not listed, including "Unknown", is Other.
func Classify(name string) Tier {
	if t, ok := lookup[name]; ok {
		return t
	}
	return Other
}

// Members returns a copy of the names listed for t. Other has no explicit members.
func Members(t Tier) []string {
	switch t {
	case Metro:
		return append([]string(nil), metros...)
	case Secondary:
		return append([]string(nil), secondary...)
	default:
		return nil
	}
}

func (t Tier) String() string {
	switch t {
	case Metro:
		return "Tier 1 (metro)"
	case Secondary:
		return "Tier 2"
	case Other:
		return "Tier 3"
	default:
		return fmt.Sprintf("Unknown (%d)", int(t))
	}
}

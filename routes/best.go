package routes

import "fmt"

// BestOptions names the winning mode per preference.
type BestOptions struct {
	Fastest  string `json:"fastest"`
	Cheapest string `json:"cheapest"`
	Comfort  string `json:"comfort"`
}

// Picks holds the winning ModeFacts behind a BestOptions value.
type Picks struct {
	Fastest  ModeFacts
	Cheapest ModeFacts
	Comfort  ModeFacts
}

// SelectPicks chooses the fastest, cheapest and most comfortable modes.
// Ties go to the mode listed first. modes must not be empty; the zero Picks is
// returned if it is.
func SelectPicks(modes []ModeFacts) Picks {
	if len(modes) == 0 {
		return Picks{}
	}

	fastest, cheapest, comfort := 0, 0, 0
	fastestMinutes := ParseDuration(modes[0].Duration)

	for i := 1; i < len(modes); i++ {
		m := modes[i]
		if minutes := ParseDuration(m.Duration); minutes < fastestMinutes {
			fastest, fastestMinutes = i, minutes
		}
		if m.Price < modes[cheapest].Price {
			cheapest = i
		}
		if m.Comfort.Rank() > modes[comfort].Comfort.Rank() {
			comfort = i
		}
	}

	return Picks{
		Fastest:  modes[fastest],
		Cheapest: modes[cheapest],
		Comfort:  modes[comfort],
	}
}

// SelectBest returns the display form of SelectPicks.
func SelectBest(modes []ModeFacts) BestOptions {
	if len(modes) == 0 {
		return BestOptions{}
	}
	return SelectPicks(modes).Options()
}

// Options formats the picks as "<mode> (<value>)".
func (p Picks) Options() BestOptions {
	return BestOptions{
		Fastest:  fmt.Sprintf("%s (%s)", p.Fastest.Mode, p.Fastest.Duration),
		Cheapest: fmt.Sprintf("%s (%s)", p.Cheapest.Mode, FormatPrice(p.Cheapest.Price)),
		Comfort:  fmt.Sprintf("%s (%s)", p.Comfort.Mode, p.Comfort.Comfort),
	}
}

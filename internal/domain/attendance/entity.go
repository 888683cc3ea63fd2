package attendance

// PageState is the attendance outcome of one expected page in one shift.
type PageState string

const (
	StatePresent PageState = "present"
	StateCovered PageState = "covered"
	StateMissing PageState = "missing"
)

// StateOf classifies a page by its regular and cover clock-ins.
// A regular clock-in wins over covers.
func StateOf(regular, cover int) PageState {
	switch {
	case regular > 0:
		return StatePresent
	case cover > 0:
		return StateCovered
	default:
		return StateMissing
	}
}

// Tally counts expected pages by state.
type Tally struct {
	Expected int `json:"expected"`
	Present  int `json:"present"`
	Covered  int `json:"covered"`
	Missing  int `json:"missing"`
}

func (t *Tally) Add(state PageState) {
	t.Expected++
	switch state {
	case StatePresent:
		t.Present++
	case StateCovered:
		t.Covered++
	default:
		t.Missing++
	}
}

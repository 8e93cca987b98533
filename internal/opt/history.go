package opt

import "fmt"

// InitialEvent - метка первой записи истории.
const InitialEvent = "Initial"

// Step - запись истории: событие и стоимость сразу после него.
type Step struct {
	Event string
	Cost  float64
}

// History - журнал принятых обменов. Записи только добавляются.
type History struct {
	steps []Step
}

func NewHistory(initialCost float64) *History {
	return &History{steps: []Step{{Event: InitialEvent, Cost: initialCost}}}
}

func (h *History) Record(event string, cost float64) {
	h.steps = append(h.steps, Step{Event: event, Cost: cost})
}

func (h *History) Len() int { return len(h.steps) }

func (h *History) Last() Step { return h.steps[len(h.steps)-1] }

// Steps возвращает копию журнала.
func (h *History) Steps() []Step {
	out := make([]Step, len(h.steps))
	copy(out, h.steps)
	return out
}

func SwapEvent(a, b string) string {
	return fmt.Sprintf("Swap %s ↔ %s", a, b)
}

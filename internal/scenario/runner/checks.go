package runner

import (
	"fmt"
	"strings"

	"github.com/feduss/CustomInfiniTime/pkg/timer"
)

// Expectation keys.
const (
	KeyState          = "state"
	KeyDisplay        = "display"
	KeyHint           = "hint"
	KeyPulses         = "pulses"
	KeyShortPulses    = "short_pulses"
	KeyLongPulses     = "long_pulses"
	KeySleepDisabled  = "sleep_disabled"
	KeySleepEnabled   = "sleep_enabled"
	KeySleepInhibited = "sleep_inhibited"
)

// checkAll evaluates every expectation of a step. Plain slot keys apply to
// slot; the nested "first" and "second" maps apply to their slot.
func (x *execution) checkAll(expect map[string]interface{}, slot timer.Slot) map[string]*ExpectResult {
	results := make(map[string]*ExpectResult, len(expect))
	for key, want := range expect {
		if nested, ok := nestedSlot(key); ok {
			m, isMap := want.(map[string]interface{})
			if !isMap {
				results[key] = fail(key, want, nil, "expected a map of slot expectations")
				continue
			}
			for k, v := range m {
				full := strings.ToLower(nested.String()) + "." + k
				results[full] = x.check(full, k, v, nested)
			}
			continue
		}
		results[key] = x.check(key, key, want, slot)
	}
	return results
}

func nestedSlot(key string) (timer.Slot, bool) {
	switch key {
	case "first":
		return timer.SlotFirst, true
	case "second":
		return timer.SlotSecond, true
	}
	return 0, false
}

func (x *execution) check(full, key string, want interface{}, slot timer.Slot) *ExpectResult {
	switch key {
	case KeyState:
		return compareString(full, want, strings.ToLower(x.engine.State(slot).String()))
	case KeyDisplay:
		return compareString(full, want, x.engine.Display(slot).String())
	case KeyHint:
		return compareString(full, want, strings.ToLower(x.engine.Display(slot).Hint.String()))
	case KeyPulses:
		return compareInt(full, want, len(x.motor.Pulses()))
	case KeyShortPulses:
		return compareInt(full, want, x.motor.Count(timer.WarningPulse))
	case KeyLongPulses:
		return compareInt(full, want, x.motor.Count(timer.ExpiryPulse))
	case KeySleepDisabled:
		disabled, _ := x.power.Counts()
		return compareInt(full, want, disabled)
	case KeySleepEnabled:
		_, enabled := x.power.Counts()
		return compareInt(full, want, enabled)
	case KeySleepInhibited:
		return compareBool(full, want, x.power.SleepInhibited())
	default:
		return fail(full, want, nil, "unknown expectation key")
	}
}

func compareString(key string, want interface{}, got string) *ExpectResult {
	s, ok := want.(string)
	if !ok {
		return fail(key, want, got, fmt.Sprintf("expected a string, got %T", want))
	}
	if !strings.EqualFold(strings.TrimSpace(s), got) {
		return fail(key, want, got, fmt.Sprintf("got %s, want %s", got, s))
	}
	return pass(key, want, got)
}

func compareInt(key string, want interface{}, got int) *ExpectResult {
	n, ok := toInt(want)
	if !ok {
		return fail(key, want, got, fmt.Sprintf("expected an integer, got %T", want))
	}
	if n != got {
		return fail(key, want, got, fmt.Sprintf("got %d, want %d", got, n))
	}
	return pass(key, want, got)
}

func compareBool(key string, want interface{}, got bool) *ExpectResult {
	b, ok := want.(bool)
	if !ok {
		return fail(key, want, got, fmt.Sprintf("expected a bool, got %T", want))
	}
	if b != got {
		return fail(key, want, got, fmt.Sprintf("got %t, want %t", got, b))
	}
	return pass(key, want, got)
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}
	return 0, false
}

func pass(key string, want, got interface{}) *ExpectResult {
	return &ExpectResult{Key: key, Expected: want, Actual: got, Passed: true, Message: fmt.Sprintf("%v", got)}
}

func fail(key string, want, got interface{}, msg string) *ExpectResult {
	return &ExpectResult{Key: key, Expected: want, Actual: got, Message: msg}
}

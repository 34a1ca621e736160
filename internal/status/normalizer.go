package status

import (
	"regexp"
	"strings"
)

// Rule maps a pattern over the lowercased status text to a canonical state.
// Rules are evaluated by ascending Priority and the first match wins, so the
// position of a rule in its table is part of the contract.
type Rule struct {
	Priority int
	Pattern  string
	State    CanonicalState

	re *regexp.Regexp
}

func newRules(defs ...Rule) []Rule {
	for i := range defs {
		defs[i].Priority = i + 1
		defs[i].re = regexp.MustCompile(defs[i].Pattern)
	}
	return defs
}

// "out for delivery" must be tried before the broad in-transit group, and
// delivered before both, or the narrower state is shadowed.
var orderRules = newRules(
	Rule{Pattern: `delivered|delivery completed`, State: OrderDelivered},
	Rule{Pattern: `out for delivery|ofd`, State: OrderOutForDelivery},
	Rule{Pattern: `in transit|dispatched|shipped|received|arrival|arrived`, State: OrderShipped},
	Rule{Pattern: `picked up|pickup`, State: OrderPickedUp},
	Rule{Pattern: `cancel|cancelled|canceled`, State: OrderCancelled},
	Rule{Pattern: `exception|failed|undelivered`, State: OrderException},
	Rule{Pattern: `pending|processing|booked`, State: OrderPending},
)

// Returns use two coarse groups: refunds and physical return delivery are the
// same outcome, and initiated/in-transit both mean "not resolved yet".
var returnRules = newRules(
	Rule{Pattern: `delivered to warehouse|return delivered|delivered|refund|refunded|completed|closed|settled|processed|finished`, State: ReturnCompleted},
	Rule{Pattern: `in transit|ofd|out for delivery|received|arrival|arrived|facility|shipment received|initiated|new|pending|open|processing`, State: ReturnInProgress},
	Rule{Pattern: `quality check|qc`, State: ReturnQualityCheck},
	Rule{Pattern: `pickup|picked up|pickup scheduled`, State: ReturnPickupScheduled},
	Rule{Pattern: `reject|rejected|cancel`, State: ReturnRejected},
)

func rulesFor(entityType EntityType) []Rule {
	switch entityType {
	case EntityTypeOrder:
		return orderRules
	case EntityTypeReturn:
		return returnRules
	default:
		return nil
	}
}

// Rules returns a copy of the rule table for entityType in evaluation order.
func Rules(entityType EntityType) []Rule {
	src := rulesFor(entityType)
	out := make([]Rule, len(src))
	copy(out, src)
	return out
}

// Matches reports whether the rule fires for an already folded status text.
func (r Rule) Matches(text string) bool {
	if r.re == nil {
		return regexp.MustCompile(r.Pattern).MatchString(text)
	}
	return r.re.MatchString(text)
}

var underscores = strings.NewReplacer("_", " ")

// Normalize maps raw to a canonical state for entityType.
//
// Empty or whitespace-only input yields StateEmpty. Input that no rule matches
// is returned lowercased and trimmed, so two sides reporting the same unknown
// status still compare equal. Rules are matched against the folded text with
// underscores read as spaces, so IN_TRANSIT and "in transit" map to the same
// state; the unknown passthrough keeps its underscores.
func Normalize(entityType EntityType, raw string) CanonicalState {
	folded := strings.ToLower(strings.TrimSpace(raw))
	if folded == "" {
		return StateEmpty
	}

	// Carrier codes such as IN_TRANSIT match the same rules as "in transit".
	text := folded
	if strings.Contains(text, "_") {
		text = underscores.Replace(text)
	}

	for _, rule := range rulesFor(entityType) {
		if rule.re.MatchString(text) {
			return rule.State
		}
	}

	return CanonicalState(folded)
}

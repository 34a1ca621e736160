package status

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var knownStatuses = []any{
	"Delivered", "Out for Delivery", "In Transit", "Picked Up", "Cancelled",
	"Undelivered", "Booked", "Refunded", "Delivered to Warehouse", "Initiated",
	"Quality Check", "Pickup Scheduled", "Rejected", "Customs Hold", "RTO Initiated",
}

func statusGen() gopter.Gen {
	return gen.OneGenOf(
		gen.OneConstOf(knownStatuses...),
		gen.AlphaString(),
		gen.Identifier(),
	)
}

func entityTypeGen() gopter.Gen {
	return gen.OneConstOf(EntityTypeOrder, EntityTypeReturn)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("normalize(s) == normalize(s)", prop.ForAll(
		func(entityType EntityType, s string) bool {
			return Normalize(entityType, s) == Normalize(entityType, s)
		},
		entityTypeGen(),
		statusGen(),
	))

	properties.TestingRun(t)
}

func TestNormalizeIgnoresCaseAndPadding(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("normalize(s) == normalize(pad(upper(s)))", prop.ForAll(
		func(entityType EntityType, s string) bool {
			if strings.TrimSpace(s) == "" {
				return true
			}
			return Normalize(entityType, s) == Normalize(entityType, "  "+strings.ToUpper(s)+"  ")
		},
		entityTypeGen(),
		statusGen(),
	))

	properties.TestingRun(t)
}

func TestNormalizeIsTotal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	// Either a vocabulary member or the folded input itself.
	properties.Property("normalize yields a known state or the folded input", prop.ForAll(
		func(entityType EntityType, s string) bool {
			got := Normalize(entityType, s)
			folded := CanonicalState(strings.ToLower(strings.TrimSpace(s)))
			return IsKnown(entityType, got) || got == folded
		},
		entityTypeGen(),
		statusGen(),
	))

	properties.Property("equal inputs never mismatch", prop.ForAll(
		func(entityType EntityType, s string) bool {
			return !Reconcile(entityType, s, s).IsMismatch
		},
		entityTypeGen(),
		statusGen(),
	))

	properties.TestingRun(t)
}

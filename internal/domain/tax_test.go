package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCascadeTax(t *testing.T) {
	base := decimal.NewFromInt(12000)

	got := CascadeTax(base,
		TaxLine{Enabled: true, RatePct: "25"},
		TaxLine{Enabled: true, RatePct: "5.5"},
		TaxLine{Enabled: true, RatePct: "9"},
	)

	if want := decimal.NewFromInt(3000); !got.Primary.Equal(want) {
		t.Errorf("Primary = %s, want %s", got.Primary, want)
	}
	// Surcharges apply to the 3000 tax amount, not to the 12000 base.
	if want := decimal.NewFromInt(165); !got.Dependents[0].Equal(want) {
		t.Errorf("Dependents[0] = %s, want %s", got.Dependents[0], want)
	}
	if want := decimal.NewFromInt(270); !got.Dependents[1].Equal(want) {
		t.Errorf("Dependents[1] = %s, want %s", got.Dependents[1], want)
	}
	if want := decimal.NewFromInt(3435); !got.Total().Equal(want) {
		t.Errorf("Total() = %s, want %s", got.Total(), want)
	}
}

func TestCascadeTaxDisabledPrimaryZeroesDependents(t *testing.T) {
	base := decimal.NewFromInt(12000)

	got := CascadeTax(base,
		TaxLine{Enabled: false, RatePct: "25"},
		TaxLine{Enabled: true, RatePct: "5.5"},
		TaxLine{Enabled: true, RatePct: "9"},
	)

	if !got.Primary.IsZero() {
		t.Errorf("Primary = %s, want 0", got.Primary)
	}
	for i, d := range got.Dependents {
		if !d.IsZero() {
			t.Errorf("Dependents[%d] = %s, want 0 (dependent must not apply without primary)", i, d)
		}
	}
	if !got.Total().IsZero() {
		t.Errorf("Total() = %s, want 0", got.Total())
	}
}

func TestCascadeTaxDisabledDependent(t *testing.T) {
	base := decimal.NewFromInt(10000)

	got := CascadeTax(base,
		TaxLine{Enabled: true, RatePct: "15"},
		TaxLine{Enabled: false, RatePct: "5.5"},
	)

	if want := decimal.NewFromInt(1500); !got.Primary.Equal(want) {
		t.Errorf("Primary = %s, want %s", got.Primary, want)
	}
	if !got.Dependents[0].IsZero() {
		t.Errorf("Dependents[0] = %s, want 0", got.Dependents[0])
	}
}

func TestCascadeTaxZeroBase(t *testing.T) {
	got := CascadeTax(decimal.Zero,
		TaxLine{Enabled: true, RatePct: "25"},
		TaxLine{Enabled: true, RatePct: "5.5"},
	)
	if !got.Total().IsZero() {
		t.Errorf("Total() = %s, want 0", got.Total())
	}
}

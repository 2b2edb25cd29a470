package filter

import (
	"testing"

	"hnboard-bridge/internal/listing"
)

func mk(desc string) listing.Listing {
	return listing.Listing{Description: desc}
}

func TestApplyVisaOnly(t *testing.T) {
	in := []listing.Listing{
		mk("Great role. Visa Sponsorship: yes"),
		mk("Great role. Visa sponsorship: no"),
		mk("No declaration at all"),
		mk("VISA SPONSORSHIP: YES, relocation too"),
	}
	got := Apply(in, Criteria{VisaOnly: true})
	if len(got) != 2 {
		t.Fatalf("kept %d listings, want 2", len(got))
	}
}

func TestApplyTechKeywords(t *testing.T) {
	in := []listing.Listing{
		mk("We use Go and Postgres"),
		mk("Pure Rails shop"),
		mk("TypeScript everywhere"),
	}
	got := Apply(in, Criteria{TechKeywords: []string{"go", "typescript"}})
	if len(got) != 2 {
		t.Fatalf("kept %d listings, want 2 (OR semantics)", len(got))
	}
}

func TestApplyCategoriesCompose(t *testing.T) {
	in := []listing.Listing{
		mk("Go shop. visa sponsorship: yes"),
		mk("Go shop. visa sponsorship: no"),
		mk("Rails shop. visa sponsorship: yes"),
	}
	got := Apply(in, Criteria{VisaOnly: true, TechKeywords: []string{"go"}})
	if len(got) != 1 || got[0].Description != "Go shop. visa sponsorship: yes" {
		t.Fatalf("AND composition broken: %v", got)
	}
}

func TestApplyNoCriteriaIsNoOp(t *testing.T) {
	in := []listing.Listing{mk("a"), mk("b")}
	got := Apply(in, Criteria{})
	if len(got) != 2 {
		t.Fatalf("kept %d listings, want all", len(got))
	}

	// blank keywords count as absent
	got = Apply(in, Criteria{TechKeywords: []string{"", "  "}})
	if len(got) != 2 {
		t.Fatalf("blank keywords filtered listings: %d kept", len(got))
	}
}

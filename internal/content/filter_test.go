package content

import "testing"

func TestFilterConjunction(t *testing.T) {
	all := UseCases()

	got := Filter(all, Query{
		Search: "FRAUD",
		Facets: map[string]string{FacetIndustry: "finance"},
	})
	if len(got) != 1 || got[0].ID != "transaction-fraud" {
		t.Fatalf("expected only transaction-fraud, got %v", ids(got))
	}

	none := Filter(all, Query{
		Search: "fraud",
		Facets: map[string]string{FacetIndustry: "Healthcare"},
	})
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %v", ids(none))
	}

	cleared := Filter(all, Query{Facets: map[string]string{FacetIndustry: FacetAll, FacetFunction: ""}})
	if len(cleared) != len(all) {
		t.Fatalf("expected cleared filters to restore %d items, got %d", len(all), len(cleared))
	}
}

func TestFilterSearchMatchesAnyField(t *testing.T) {
	// "ocr" only appears in technologies.
	got := Filter(UseCases(), Query{Search: "  ocr "})
	if len(got) != 1 || got[0].ID != "invoice-processing" {
		t.Fatalf("expected invoice-processing, got %v", ids(got))
	}

	got = Filter(UseCases(), Query{Search: "sensor data"})
	if len(got) != 1 || got[0].ID != "predictive-maintenance" {
		t.Fatalf("expected predictive-maintenance, got %v", ids(got))
	}
}

func TestFilterRequiresAllTags(t *testing.T) {
	got := Filter(UseCases(), Query{Tags: []string{"machine learning", "Time Series"}})
	want := []string{"demand-forecasting", "predictive-maintenance"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("expected input order %v, got %v", want, ids(got))
		}
	}

	csv := Filter(UseCases(), Query{Tags: []string{"llm,nlp"}})
	if len(csv) != 3 {
		t.Fatalf("expected comma separated tags to be split, got %v", ids(csv))
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	all := UseCases()
	got := Filter(all, Query{Facets: map[string]string{FacetIndustry: "Retail"}})
	want := []string{"support-assistant", "demand-forecasting", "product-recommendations"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("expected %v, got %v", want, ids(got))
		}
	}
	if len(all) != len(useCases) {
		t.Fatalf("filter must not modify its input")
	}
}

func TestFacets(t *testing.T) {
	f := Facets()
	if len(f.Industries) != 5 || f.Industries[0] != "Retail" {
		t.Fatalf("unexpected industries %v", f.Industries)
	}
	if len(f.Complexities) != 3 {
		t.Fatalf("unexpected complexities %v", f.Complexities)
	}
}

func TestIntegrationsByCategory(t *testing.T) {
	got := Filter(Integrations(), Query{Facets: map[string]string{FacetCategory: "cloud"}, Tags: []string{"mlops"}})
	if len(got) != 1 || got[0].Name != "AWS" {
		t.Fatalf("expected AWS, got %+v", got)
	}
}

func ids(items []UseCase) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

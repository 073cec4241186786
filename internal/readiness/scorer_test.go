package readiness

import (
	"reflect"
	"testing"
)

func answerAll(value int) Answers {
	answers := make(Answers, len(questions))
	for _, q := range questions {
		answers[q.ID] = value
	}
	return answers
}

func TestCatalogHasFivePerCategory(t *testing.T) {
	if len(questions) != 20 {
		t.Fatalf("expected 20 questions, got %d", len(questions))
	}
	perCategory := map[Category]int{}
	seen := map[string]bool{}
	for _, q := range questions {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %s", q.ID)
		}
		seen[q.ID] = true
		perCategory[q.Category]++
		if len(q.Options) != 5 {
			t.Fatalf("%s: expected 5 options, got %d", q.ID, len(q.Options))
		}
		for i, opt := range q.Options {
			if opt.Value != i+1 {
				t.Fatalf("%s: option %d has value %d", q.ID, i, opt.Value)
			}
		}
	}
	for _, c := range Categories {
		if perCategory[c] != 5 {
			t.Fatalf("%s: expected 5 questions, got %d", c, perCategory[c])
		}
	}
}

func TestScoreEmptyAnswers(t *testing.T) {
	got := Score(Answers{})
	for _, c := range Categories {
		if got.CategoryAverages[c] != 0 {
			t.Fatalf("%s: expected 0 average, got %v", c, got.CategoryAverages[c])
		}
	}
	if got.TotalScore != 0 || got.PercentageScore != 0 {
		t.Fatalf("expected zero totals, got %+v", got)
	}
	if Tier(got.PercentageScore).Name != LevelBeginning {
		t.Fatalf("expected Beginning tier")
	}

	if nilScore := Score(nil); nilScore.PercentageScore != 0 {
		t.Fatalf("expected nil answers to score 0")
	}
}

func TestScoreAllMax(t *testing.T) {
	got := Score(answerAll(5))
	for _, c := range Categories {
		if got.CategoryAverages[c] != 5 {
			t.Fatalf("%s: expected 5 average, got %v", c, got.CategoryAverages[c])
		}
	}
	if got.PercentageScore != 100 {
		t.Fatalf("expected 100%%, got %v", got.PercentageScore)
	}
	if Tier(got.PercentageScore).Name != LevelExcellent {
		t.Fatalf("expected Excellent tier")
	}
	if recs := Recommend(got.CategoryAverages); !reflect.DeepEqual(recs, defaultRecommendations) {
		t.Fatalf("expected default recommendations, got %v", recs)
	}
}

func TestScoreUnansweredCategoriesCountAsZero(t *testing.T) {
	answers := Answers{}
	for _, q := range questions {
		if q.Category == CategoryData {
			answers[q.ID] = 5
		}
	}

	got := Score(answers)
	want := map[Category]float64{
		CategoryData:           5,
		CategoryInfrastructure: 0,
		CategoryCulture:        0,
		CategoryStrategy:       0,
	}
	if !reflect.DeepEqual(got.CategoryAverages, want) {
		t.Fatalf("unexpected averages %v", got.CategoryAverages)
	}
	if got.TotalScore != 1.25 || got.PercentageScore != 25 {
		t.Fatalf("expected 1.25 / 25%%, got %v / %v", got.TotalScore, got.PercentageScore)
	}
	if Tier(got.PercentageScore).Name != LevelBeginning {
		t.Fatalf("expected Beginning tier")
	}
}

func TestScoreIgnoresUnknownAndOutOfRange(t *testing.T) {
	got := Score(Answers{"data-1": 4, "data-2": 9, "data-3": 0, "bogus": 5})
	if got.CategoryAverages[CategoryData] != 4 {
		t.Fatalf("expected only data-1 to count, got %v", got.CategoryAverages[CategoryData])
	}
	if n := BuildReport(Answers{"data-1": 4, "bogus": 5}).Answered; n != 1 {
		t.Fatalf("expected 1 answered, got %d", n)
	}
}

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want LevelName
	}{
		{100, LevelExcellent},
		{80, LevelExcellent},
		{79.99, LevelGood},
		{60, LevelGood},
		{59.9, LevelModerate},
		{40, LevelModerate},
		{39.9, LevelBeginning},
		{0, LevelBeginning},
	}
	for _, tc := range cases {
		if got := Tier(tc.pct).Name; got != tc.want {
			t.Errorf("Tier(%v) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}

func TestRecommendFollowsCategoryOrder(t *testing.T) {
	recs := Recommend(map[Category]float64{
		CategoryData:           4,
		CategoryInfrastructure: 1,
		CategoryCulture:        3,
		CategoryStrategy:       2.9,
	})
	want := []string{
		categoryRecommendations[CategoryInfrastructure],
		categoryRecommendations[CategoryStrategy],
	}
	if !reflect.DeepEqual(recs, want) {
		t.Fatalf("unexpected recommendations %v", recs)
	}
}

func TestCatalogCopiesDoNotShareOptions(t *testing.T) {
	first := Questions()
	original := first[0].Options[0].Label
	first[0].Options[0].Label = "tampered"
	first[1].Options[4].Value = 99

	again := Questions()
	if again[0].Options[0].Label != original {
		t.Fatalf("catalog option label changed to %q", again[0].Options[0].Label)
	}
	if again[1].Options[4].Value != 5 {
		t.Fatalf("catalog option value changed to %d", again[1].Options[4].Value)
	}

	q, ok := Lookup(first[0].ID)
	if !ok {
		t.Fatalf("expected %s to exist", first[0].ID)
	}
	q.Options[0].Label = "tampered"

	current, _ := NewQuiz().Current()
	current.Options[0].Label = "tampered"

	for _, q := range Questions() {
		for i, opt := range q.Options {
			if opt.Label == "tampered" || opt.Value != i+1 {
				t.Fatalf("%s: option %d was mutated: %+v", q.ID, i, opt)
			}
		}
	}
}

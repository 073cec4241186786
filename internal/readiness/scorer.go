// Package readiness scores the AI readiness assessment and drives its
// question-by-question quiz flow.
package readiness

// Score computes category averages, the overall score and the percentage for
// any subset of answers. Unknown ids and out-of-range values are ignored.
// A category without answers averages 0 and still counts toward the total.
func Score(answers Answers) Assessment {
	sums := make(map[Category]int, len(Categories))
	counts := make(map[Category]int, len(Categories))

	for id, value := range answers {
		q, ok := questionIndex[id]
		if !ok || !validValue(value) {
			continue
		}
		sums[q.Category] += value
		counts[q.Category]++
	}

	averages := make(map[Category]float64, len(Categories))
	var total float64
	for _, c := range Categories {
		var avg float64
		if counts[c] > 0 {
			avg = float64(sums[c]) / float64(counts[c])
		}
		averages[c] = avg
		total += avg
	}

	totalScore := total / float64(len(Categories))
	return Assessment{
		CategoryAverages: averages,
		TotalScore:       totalScore,
		PercentageScore:  totalScore / maxAnswer * 100,
	}
}

// Tier buckets a percentage score.
func Tier(percentage float64) Level {
	for _, l := range levels {
		if percentage >= l.min {
			return l.level
		}
	}
	return levels[len(levels)-1].level
}

// Recommend returns one recommendation per category averaging below 3, in
// category declaration order, or the two defaults when none do.
func Recommend(averages map[Category]float64) []string {
	var recs []string
	for _, c := range Categories {
		if averages[c] < 3 {
			recs = append(recs, categoryRecommendations[c])
		}
	}
	if len(recs) == 0 {
		return append([]string(nil), defaultRecommendations...)
	}
	return recs
}

// BuildReport scores answers and attaches tier and recommendations.
func BuildReport(answers Answers) Report {
	a := Score(answers)
	return Report{
		Assessment:      a,
		Level:           Tier(a.PercentageScore),
		Recommendations: Recommend(a.CategoryAverages),
		Answered:        countAnswered(answers),
		Total:           len(questions),
	}
}

func countAnswered(answers Answers) int {
	n := 0
	for id, value := range answers {
		if _, ok := questionIndex[id]; ok && validValue(value) {
			n++
		}
	}
	return n
}

func validValue(v int) bool {
	return v >= minAnswer && v <= maxAnswer
}

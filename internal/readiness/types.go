package readiness

// Category groups questions into one dimension of AI readiness.
type Category string

const (
	CategoryData           Category = "data"
	CategoryInfrastructure Category = "infrastructure"
	CategoryCulture        Category = "culture"
	CategoryStrategy       Category = "strategy"
)

// Categories lists every category in declaration order. Recommendations follow this order.
var Categories = []Category{CategoryData, CategoryInfrastructure, CategoryCulture, CategoryStrategy}

const (
	minAnswer = 1
	maxAnswer = 5
)

// Option is one point on a question's 1..5 scale.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Question is one entry of the fixed assessment catalog.
type Question struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Text     string   `json:"question"`
	Options  []Option `json:"options"`
}

// Answers maps question id to the selected value.
type Answers map[string]int

// Assessment is the numeric outcome of scoring a set of answers.
type Assessment struct {
	CategoryAverages map[Category]float64 `json:"categoryAverages"`
	TotalScore       float64              `json:"totalScore"`
	PercentageScore  float64              `json:"percentageScore"`
}

// LevelName is a readiness tier.
type LevelName string

const (
	LevelExcellent LevelName = "Excellent"
	LevelGood      LevelName = "Good"
	LevelModerate  LevelName = "Moderate"
	LevelBeginning LevelName = "Beginning"
)

// Level is a tier plus its display tags.
type Level struct {
	Name        LevelName `json:"name"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
}

// Report bundles an assessment with its tier and recommendations.
type Report struct {
	Assessment
	Level           Level    `json:"level"`
	Recommendations []string `json:"recommendations"`
	Answered        int      `json:"answered"`
	Total           int      `json:"total"`
}

// AnswersRequest is the body of the score and results endpoints.
type AnswersRequest struct {
	Answers Answers `json:"answers" validate:"required"`
}

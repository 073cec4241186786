package readiness

func scale(labels ...string) []Option {
	opts := make([]Option, len(labels))
	for i, label := range labels {
		opts[i] = Option{Value: i + 1, Label: label}
	}
	return opts
}

var (
	agreement = scale("Strongly disagree", "Disagree", "Neutral", "Agree", "Strongly agree")
	maturity  = scale("Not started", "Ad hoc", "Developing", "Established", "Optimized")
	frequency = scale("Never", "Rarely", "Sometimes", "Often", "Always")
)

// questions is the fixed catalog: five questions per category, in quiz order.
var questions = []Question{
	{ID: "data-1", Category: CategoryData, Text: "Our core business data is stored in centralized, accessible systems.", Options: agreement},
	{ID: "data-2", Category: CategoryData, Text: "How mature are your data quality and cleansing processes?", Options: maturity},
	{ID: "data-3", Category: CategoryData, Text: "We have clear ownership and governance policies for our data.", Options: agreement},
	{ID: "data-4", Category: CategoryData, Text: "How often do teams use historical data to make decisions?", Options: frequency},
	{ID: "data-5", Category: CategoryData, Text: "We can label or annotate data for machine learning when needed.", Options: agreement},

	{ID: "infrastructure-1", Category: CategoryInfrastructure, Text: "How mature is your cloud adoption?", Options: maturity},
	{ID: "infrastructure-2", Category: CategoryInfrastructure, Text: "Our systems expose APIs that new tools can integrate with.", Options: agreement},
	{ID: "infrastructure-3", Category: CategoryInfrastructure, Text: "We have the compute capacity to train or host AI models.", Options: agreement},
	{ID: "infrastructure-4", Category: CategoryInfrastructure, Text: "How mature are your security and access controls for sensitive data?", Options: maturity},
	{ID: "infrastructure-5", Category: CategoryInfrastructure, Text: "How often do you deploy software changes to production?", Options: frequency},

	{ID: "culture-1", Category: CategoryCulture, Text: "Leadership actively sponsors data and AI initiatives.", Options: agreement},
	{ID: "culture-2", Category: CategoryCulture, Text: "Employees are open to changing workflows when new tools arrive.", Options: agreement},
	{ID: "culture-3", Category: CategoryCulture, Text: "How often do teams run experiments and learn from failures?", Options: frequency},
	{ID: "culture-4", Category: CategoryCulture, Text: "We have in-house staff with data science or ML skills.", Options: agreement},
	{ID: "culture-5", Category: CategoryCulture, Text: "How mature is your training program for digital skills?", Options: maturity},

	{ID: "strategy-1", Category: CategoryStrategy, Text: "We have identified specific business problems AI could solve.", Options: agreement},
	{ID: "strategy-2", Category: CategoryStrategy, Text: "AI initiatives have a dedicated budget.", Options: agreement},
	{ID: "strategy-3", Category: CategoryStrategy, Text: "How mature is your process for measuring the ROI of technology projects?", Options: maturity},
	{ID: "strategy-4", Category: CategoryStrategy, Text: "Our AI ambitions are part of the company's written strategy.", Options: agreement},
	{ID: "strategy-5", Category: CategoryStrategy, Text: "How often does leadership review progress on digital initiatives?", Options: frequency},
}

var questionIndex = func() map[string]Question {
	idx := make(map[string]Question, len(questions))
	for _, q := range questions {
		idx[q.ID] = q
	}
	return idx
}()

// Questions returns a deep copy of the catalog in quiz order.
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = q.clone()
	}
	return out
}

// Lookup returns a copy of the question with id.
func Lookup(id string) (Question, bool) {
	q, ok := questionIndex[id]
	if !ok {
		return Question{}, false
	}
	return q.clone(), true
}

// clone detaches Options from the shared option scales.
func (q Question) clone() Question {
	q.Options = append([]Option(nil), q.Options...)
	return q
}

var categoryRecommendations = map[Category]string{
	CategoryData:           "Invest in data governance and quality: consolidate key data sources, assign owners and clean historical records before training models.",
	CategoryInfrastructure: "Modernize your infrastructure: move critical workloads to the cloud, expose APIs and secure the environments AI systems will run in.",
	CategoryCulture:        "Build an AI-ready culture: secure executive sponsorship, upskill staff and hire or partner for data science talent.",
	CategoryStrategy:       "Define your AI strategy: pick two or three high-value use cases, assign budget and agree on how success will be measured.",
}

var defaultRecommendations = []string{
	"You are well positioned to adopt AI. Start with a pilot on your highest-impact use case to build momentum.",
	"Scale what works: establish an AI center of excellence to standardize tooling, governance and delivery across teams.",
}

var levels = []struct {
	min   float64
	level Level
}{
	{80, Level{Name: LevelExcellent, Color: "green", Icon: "trophy", Description: "Your organization is ready to run AI initiatives at scale."}},
	{60, Level{Name: LevelGood, Color: "blue", Icon: "trending-up", Description: "Solid foundations with a few gaps to close before scaling."}},
	{40, Level{Name: LevelModerate, Color: "yellow", Icon: "target", Description: "Some building blocks are in place; focused investment is needed."}},
	{0, Level{Name: LevelBeginning, Color: "orange", Icon: "compass", Description: "Early in the journey; start with foundations and a clear first use case."}},
}

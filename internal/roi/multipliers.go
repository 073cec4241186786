package roi

var multipliers = map[UseCase]Multiplier{
	UseCaseCustomerService:      {Cost: 1.0, Savings: 1.2, Efficiency: 40},
	UseCaseProcessAutomation:    {Cost: 0.9, Savings: 1.5, Efficiency: 50},
	UseCasePredictiveAnalytics:  {Cost: 1.2, Savings: 1.3, Efficiency: 30},
	UseCaseContentGeneration:    {Cost: 0.8, Savings: 1.4, Efficiency: 60},
	UseCaseFraudDetection:       {Cost: 1.3, Savings: 1.6, Efficiency: 35},
	UseCaseRecommendationEngine: {Cost: 1.1, Savings: 1.4, Efficiency: 25},
}

// catalog is the display order of the calculator's use case selector.
var catalog = []UseCaseInfo{
	{Key: UseCaseCustomerService, Label: "Customer Service Automation", Description: "Chatbots and assisted agents that deflect and shorten support conversations."},
	{Key: UseCaseProcessAutomation, Label: "Process Automation", Description: "Document handling and back-office workflows run by AI agents."},
	{Key: UseCasePredictiveAnalytics, Label: "Predictive Analytics", Description: "Demand, churn and maintenance forecasts that replace manual reporting."},
	{Key: UseCaseContentGeneration, Label: "Content Generation", Description: "Drafting marketing copy, product descriptions and internal documentation."},
	{Key: UseCaseFraudDetection, Label: "Fraud Detection", Description: "Real-time anomaly scoring on transactions and account activity."},
	{Key: UseCaseRecommendationEngine, Label: "Recommendation Engine", Description: "Personalized product and content suggestions across channels."},
}

// ResolveUseCase maps a free-form key onto the closed set, falling back to
// DefaultUseCase for anything unknown.
func ResolveUseCase(key string) UseCase {
	uc := UseCase(key)
	if _, ok := multipliers[uc]; ok {
		return uc
	}
	return DefaultUseCase
}

// MultiplierFor returns the multiplier triple for key after fallback.
func MultiplierFor(key string) Multiplier {
	return multipliers[ResolveUseCase(key)]
}

// UseCases returns the selectable use cases with their multipliers.
func UseCases() []UseCaseInfo {
	out := make([]UseCaseInfo, len(catalog))
	for i, info := range catalog {
		info.Multiplier = multipliers[info.Key]
		out[i] = info
	}
	return out
}

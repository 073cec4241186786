package content

// Use case facet names.
const (
	FacetIndustry   = "industry"
	FacetFunction   = "function"
	FacetComplexity = "complexity"
)

// UseCase is an entry in the use case explorer.
type UseCase struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Industry     string   `json:"industry"`
	Function     string   `json:"function"`
	Complexity   string   `json:"complexity"`
	Technologies []string `json:"technologies"`
	Benefits     []string `json:"benefits"`
	ExpectedROI  string   `json:"expectedRoi"`
	TimeToDeploy string   `json:"timeToDeploy"`
}

func (u UseCase) SearchFields() []string {
	return append([]string{u.Title, u.Description}, u.Technologies...)
}

func (u UseCase) TagValues() []string { return u.Technologies }

func (u UseCase) FacetValue(name string) string {
	switch name {
	case FacetIndustry:
		return u.Industry
	case FacetFunction:
		return u.Function
	case FacetComplexity:
		return u.Complexity
	default:
		return ""
	}
}

// UseCaseFacets lists the values the explorer can filter on.
type UseCaseFacets struct {
	Industries   []string `json:"industries"`
	Functions    []string `json:"functions"`
	Complexities []string `json:"complexities"`
	Technologies []string `json:"technologies"`
}

var useCases = []UseCase{
	{
		ID: "support-assistant", Title: "AI Customer Support Assistant",
		Description: "Conversational agent that resolves common tickets and hands off complex cases with full context.",
		Industry:    "Retail", Function: "Customer Service", Complexity: "Low",
		Technologies: []string{"NLP", "LLM", "Chatbot"},
		Benefits:     []string{"Faster first response", "Lower ticket volume", "24/7 availability"},
		ExpectedROI:  "150-250%", TimeToDeploy: "6-8 weeks",
	},
	{
		ID: "invoice-processing", Title: "Intelligent Invoice Processing",
		Description: "Extracts, validates and posts supplier invoices straight into the ERP.",
		Industry:    "Finance", Function: "Operations", Complexity: "Medium",
		Technologies: []string{"OCR", "Document AI", "RPA"},
		Benefits:     []string{"Fewer manual entries", "Shorter close cycle", "Audit trail"},
		ExpectedROI:  "200-300%", TimeToDeploy: "8-12 weeks",
	},
	{
		ID: "demand-forecasting", Title: "Demand Forecasting",
		Description: "Predicts product demand per store and week to cut stock-outs and overstock.",
		Industry:    "Retail", Function: "Supply Chain", Complexity: "Medium",
		Technologies: []string{"Machine Learning", "Time Series"},
		Benefits:     []string{"Lower inventory cost", "Higher availability"},
		ExpectedROI:  "180-280%", TimeToDeploy: "10-14 weeks",
	},
	{
		ID: "transaction-fraud", Title: "Real-time Fraud Detection",
		Description: "Scores card and account transactions in milliseconds and flags anomalies for review.",
		Industry:    "Finance", Function: "Risk & Compliance", Complexity: "High",
		Technologies: []string{"Machine Learning", "Anomaly Detection", "Streaming"},
		Benefits:     []string{"Reduced fraud losses", "Fewer false positives"},
		ExpectedROI:  "300-500%", TimeToDeploy: "12-16 weeks",
	},
	{
		ID: "predictive-maintenance", Title: "Predictive Maintenance",
		Description: "Uses sensor data to predict equipment failures before they stop the line.",
		Industry:    "Manufacturing", Function: "Operations", Complexity: "High",
		Technologies: []string{"IoT", "Machine Learning", "Time Series"},
		Benefits:     []string{"Less unplanned downtime", "Longer asset life"},
		ExpectedROI:  "250-400%", TimeToDeploy: "12-20 weeks",
	},
	{
		ID: "clinical-notes", Title: "Clinical Documentation Assistant",
		Description: "Drafts visit summaries from clinician dictation for review and sign-off.",
		Industry:    "Healthcare", Function: "Operations", Complexity: "High",
		Technologies: []string{"Speech Recognition", "LLM", "NLP"},
		Benefits:     []string{"More time with patients", "Consistent records"},
		ExpectedROI:  "150-220%", TimeToDeploy: "12-16 weeks",
	},
	{
		ID: "product-recommendations", Title: "Personalized Product Recommendations",
		Description: "Recommends products on site and in email based on browsing and purchase history.",
		Industry:    "Retail", Function: "Marketing", Complexity: "Medium",
		Technologies: []string{"Machine Learning", "Recommendation Systems"},
		Benefits:     []string{"Higher basket size", "Better conversion"},
		ExpectedROI:  "200-350%", TimeToDeploy: "8-12 weeks",
	},
	{
		ID: "marketing-content", Title: "Marketing Content Generation",
		Description: "Generates on-brand campaign copy and product descriptions at scale.",
		Industry:    "Technology", Function: "Marketing", Complexity: "Low",
		Technologies: []string{"LLM", "NLP"},
		Benefits:     []string{"Faster campaigns", "Consistent tone of voice"},
		ExpectedROI:  "120-200%", TimeToDeploy: "4-6 weeks",
	},
	{
		ID: "resume-screening", Title: "Candidate Screening",
		Description: "Ranks applicants against role requirements and schedules first interviews.",
		Industry:    "Technology", Function: "Human Resources", Complexity: "Low",
		Technologies: []string{"NLP", "Machine Learning"},
		Benefits:     []string{"Shorter time to hire", "Structured shortlists"},
		ExpectedROI:  "100-180%", TimeToDeploy: "4-8 weeks",
	},
	{
		ID: "quality-inspection", Title: "Visual Quality Inspection",
		Description: "Camera-based defect detection on the production line.",
		Industry:    "Manufacturing", Function: "Quality", Complexity: "Medium",
		Technologies: []string{"Computer Vision", "Deep Learning"},
		Benefits:     []string{"Fewer escaped defects", "Consistent inspection"},
		ExpectedROI:  "200-300%", TimeToDeploy: "10-14 weeks",
	},
}

// UseCases returns the full use case catalog.
func UseCases() []UseCase {
	return append([]UseCase(nil), useCases...)
}

// Facets returns the filter values present in the catalog.
func Facets() UseCaseFacets {
	return UseCaseFacets{
		Industries:   distinct(useCases, FacetIndustry),
		Functions:    distinct(useCases, FacetFunction),
		Complexities: distinct(useCases, FacetComplexity),
		Technologies: distinctTags(useCases),
	}
}

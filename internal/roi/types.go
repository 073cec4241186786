package roi

// UseCase identifies an AI application category with its own cost and savings profile.
type UseCase string

const (
	UseCaseCustomerService      UseCase = "customer-service"
	UseCaseProcessAutomation    UseCase = "process-automation"
	UseCasePredictiveAnalytics  UseCase = "predictive-analytics"
	UseCaseContentGeneration    UseCase = "content-generation"
	UseCaseFraudDetection       UseCase = "fraud-detection"
	UseCaseRecommendationEngine UseCase = "recommendation-engine"

	// DefaultUseCase is used for any key not in the table.
	DefaultUseCase = UseCaseProcessAutomation
)

// Multiplier scales the generic ROI formulas for one use case.
// Cost and Savings are dimensionless factors; Efficiency is the percentage of
// inefficiency hours that is actually recoverable.
type Multiplier struct {
	Cost       float64 `json:"cost"`
	Savings    float64 `json:"savings"`
	Efficiency float64 `json:"efficiency"`
}

// Inputs are the business metrics supplied by a visitor.
type Inputs struct {
	AnnualRevenue     float64 `json:"annualRevenue" validate:"gte=0,lte=1000000000000000"`
	EmployeeCount     float64 `json:"employeeCount" validate:"gte=0,lte=10000000"`
	AvgHourlyRate     float64 `json:"avgHourlyRate" validate:"gte=0,lte=100000"`
	InefficiencyHours float64 `json:"inefficiencyHours" validate:"gte=0,lte=168"`
	UseCase           string  `json:"useCase"`
}

// Results is the rounded three-year projection.
type Results struct {
	TotalCost             int64 `json:"totalCost"`
	YearOneSavings        int64 `json:"yearOneSavings"`
	YearTwoSavings        int64 `json:"yearTwoSavings"`
	YearThreeSavings      int64 `json:"yearThreeSavings"`
	TotalThreeYearSavings int64 `json:"totalThreeYearSavings"`
	NetROI                int64 `json:"netROI"`
	ROIPercentage         int64 `json:"roiPercentage"`
	PaybackMonths         int64 `json:"paybackMonths"`
	EfficiencyGainPercent int64 `json:"efficiencyGainPercent"`
	HoursSaved            int64 `json:"hoursSaved"`
}

// UseCaseInfo describes a selectable use case for the calculator form.
type UseCaseInfo struct {
	Key         UseCase    `json:"key"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Multiplier  Multiplier `json:"multiplier"`
}

// EstimateResponse echoes the resolved use case next to the results.
type EstimateResponse struct {
	UseCase UseCase `json:"useCase"`
	Results Results `json:"results"`
}

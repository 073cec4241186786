package content

// FacetCategory filters integrations and blog posts by category.
const FacetCategory = "category"

// Integration is a third-party platform the consultancy connects AI systems to.
type Integration struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func (i Integration) SearchFields() []string {
	return append([]string{i.Name, i.Description}, i.Tags...)
}

func (i Integration) TagValues() []string { return i.Tags }

func (i Integration) FacetValue(name string) string {
	if name == FacetCategory {
		return i.Category
	}
	return ""
}

var integrations = []Integration{
	{Name: "Salesforce", Category: "CRM", Description: "Lead scoring and case summarization inside Sales and Service Cloud.", Tags: []string{"crm", "sales"}},
	{Name: "HubSpot", Category: "CRM", Description: "Enrich contacts and draft follow-ups from marketing data.", Tags: []string{"crm", "marketing"}},
	{Name: "SAP S/4HANA", Category: "ERP", Description: "Invoice extraction and demand signals flowing into finance and supply chain.", Tags: []string{"erp", "finance"}},
	{Name: "Microsoft Dynamics 365", Category: "ERP", Description: "Forecasting and copilots for operations teams.", Tags: []string{"erp", "operations"}},
	{Name: "Zendesk", Category: "Customer Support", Description: "Ticket triage, suggested replies and deflection bots.", Tags: []string{"support", "chatbot"}},
	{Name: "Slack", Category: "Collaboration", Description: "Internal assistants that answer questions from company knowledge.", Tags: []string{"chat", "knowledge"}},
	{Name: "Snowflake", Category: "Data Platform", Description: "Feature pipelines and model scoring next to your warehouse data.", Tags: []string{"data", "analytics"}},
	{Name: "Databricks", Category: "Data Platform", Description: "Model training and MLOps on the lakehouse.", Tags: []string{"data", "mlops"}},
	{Name: "AWS", Category: "Cloud", Description: "Bedrock, SageMaker and serverless inference deployments.", Tags: []string{"cloud", "mlops"}},
	{Name: "Azure", Category: "Cloud", Description: "Azure OpenAI and ML workspaces with enterprise identity.", Tags: []string{"cloud", "llm"}},
	{Name: "Google Cloud", Category: "Cloud", Description: "Vertex AI pipelines and BigQuery ML.", Tags: []string{"cloud", "analytics"}},
	{Name: "Shopify", Category: "E-commerce", Description: "Product recommendations and generated product copy.", Tags: []string{"ecommerce", "marketing"}},
}

// Integrations returns the integration catalog.
func Integrations() []Integration {
	return append([]Integration(nil), integrations...)
}

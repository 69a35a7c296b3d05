package prodex

// FieldSpec describes a custom field for external schema validators.
type FieldSpec struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// CustomFields is the declarative catalogue of vendor-specific section
// fields. It is consumed as static data by schema/validation collaborators;
// the engine itself never interprets the descriptions.
var CustomFields = map[string]FieldSpec{
	FieldFeatures: {
		Type:        "string",
		Description: "Bullet-point product features as newline-separated text.",
	},
	FieldSpecification: {
		Type:        "string",
		Description: "Technical specification of the product, including brand, size and identifier codes.",
	},
	FieldWarnings: {
		Type:        "string",
		Description: "Usage warnings, restrictions and safety information.",
	},
	FieldTips: {
		Type:        "string",
		Description: "Usage tips and advice supplied by the vendor.",
	},
}

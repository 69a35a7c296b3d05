package prodex

// FieldPolicy is an allowlist over field names. A nil *FieldPolicy enables
// every field, so callers can pass the zero value of ExtractOptions and get
// a full extraction.
type FieldPolicy struct {
	allowed map[string]bool
}

// NewFieldPolicy returns a policy that enables exactly the given fields.
func NewFieldPolicy(fields ...string) *FieldPolicy {
	allowed := make(map[string]bool, len(fields))
	for _, f := range fields {
		allowed[f] = true
	}
	return &FieldPolicy{allowed: allowed}
}

// Enabled reports whether the field should be extracted. The metadata field
// is always enabled: diagnostics accompany every result.
func (p *FieldPolicy) Enabled(field string) bool {
	if p == nil {
		return true
	}
	if field == FieldMetadata {
		return true
	}
	return p.allowed[field]
}

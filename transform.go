package prodex

import (
	"regexp"
	"strings"
)

var eanPattern = regexp.MustCompile(`EAN:\s*(\d+)`)

// descriptionSections is the fixed merge order for the canonical
// description. The pre-transform description field holds the vendor's
// "Product Information" copy, so it leads.
var descriptionSections = []struct {
	label string
	field string
}{
	{"Product Information", FieldDescription},
	{"Features", FieldFeatures},
	{"Specification", FieldSpecification},
	{"Warnings", FieldWarnings},
	{"Tips and Advice", FieldTips},
}

// transientFields are merged into the description and removed afterwards.
var transientFields = []string{
	FieldFeatures,
	FieldSpecification,
	FieldWarnings,
	FieldTips,
}

// Transform reconciles a raw extraction Record into its canonical shape:
// the labeled section fields are merged into one description, an EAN code
// is lifted out of the specification text, and a coarse category is derived
// from the breadcrumb trail.
//
// Transform is pure and best-effort. A nil Record passes through unchanged,
// and any internal failure returns the original Record untouched: merging
// must never regress the raw extraction.
func Transform(rec Record) (out Record) {
	if rec == nil {
		return rec
	}

	defer func() {
		if recover() != nil {
			out = rec
		}
	}()

	out = make(Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}

	if spec, _ := rec[FieldSpecification].(string); spec != "" {
		if m := eanPattern.FindStringSubmatch(spec); m != nil {
			out[FieldEANCode] = m[1]
		}
	}

	var parts []string
	for _, s := range descriptionSections {
		content, _ := rec[s.field].(string)
		if content == "" {
			continue
		}
		parts = append(parts, labelSection(s.label, content))
	}
	if len(parts) > 0 {
		out[FieldDescription] = strings.Join(parts, "\n\n")
	}

	if trail, _ := rec[FieldBreadcrumbs].([]string); len(trail) > 0 {
		out[FieldCategory] = strings.ToLower(trail[len(trail)-1])
	}

	for _, f := range transientFields {
		delete(out, f)
	}

	return out
}

// labelSection prefixes content with its label. Content that already starts
// with the label is returned as-is so repeated transforms do not stack
// labels.
func labelSection(label, content string) string {
	if content == label || strings.HasPrefix(content, label+"\n") {
		return content
	}
	return label + "\n" + content
}

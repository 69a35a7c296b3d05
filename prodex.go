// Package prodex extracts structured product data from a single vendor's
// rendered product pages. The vendor's markup is inconsistent across page
// templates and carries no stable field-level identifiers for many fields,
// so every extractor degrades through an ordered cascade of increasingly
// generic strategies before settling on an empty default.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/).
package prodex

// Package viewselect implements the view selector: a single current ViewMode
// and the projection of static scheme content for that mode.
//
// Projections are sealed: OverviewProjection and ProcedureProjection are the
// only implementations, so renderers switch on a closed set of variants.
// They are rebuilt from scheme data on every call and carry no history.
package viewselect

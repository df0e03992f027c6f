// Package scheme holds the static content of the financial assistance guide:
// the tier definitions, the application procedure, and the surrounding copy.
//
// All values are fixed at compile time. Accessors return copies so callers
// can never alter the package data.
package scheme

const (
	Title    = "NSF Financial Assistance Guide"
	Subtitle = "TFA (Tier 1 & 2) and BFA Support Schemes"

	BridgingSubtitle = "Interim support during processing"

	// SequencingNote is display copy only. No code enforces the ordering
	// between bridging and term assistance.
	SequencingNote = "If approved TFA is lower than BFA quantum ($400), TFA will commence only after the 3-month BFA cycle ends."

	ApplyURL = "https://go.gov.sg/mindef-saf-fas4nsfs"
)

var footerLines = []string{
	"© 2024 MINDEF / SAF Financial Assistance Services",
	"All applications assessed upon receipt of complete documents.",
}

var tiers = []AssistanceTier{
	{
		Name:        "Tier 1 Term FA",
		Purpose:     "Support families assessed as financially needy by MSF.",
		Eligibility: []string{"NSF's family is a current ComCare recipient."},
		Payment:     "$500 cash assistance per month.",
		Duration:    "Duration of the household's ComCare support.",
		Category:    CategoryTier1,
	},
	{
		Name:    "Tier 2 Term FA",
		Purpose: "Support families with extenuating NS-related circumstances.",
		Eligibility: []string{
			"Not a ComCare recipient.",
			"Clear NS-related financial hardship.",
			"Proof of recurrent expenses beyond basic upkeep.",
		},
		Payment:  "Assessed case-by-case based on proof of expenses.",
		Duration: "Assessed on a case-by-case basis.",
		Category: CategoryTier2,
	},
	{
		Name:        "Bridging FA (BFA)",
		Purpose:     "Immediate support while waiting for TFA processing.",
		Eligibility: []string{"Household Per Capita Income (PCI) ≤ $800."},
		Payment:     "$400 per month.",
		Duration:    "Max 3 months (or until TFA is approved).",
		Category:    CategoryBridging,
	},
}

var bridgingFacts = []Fact{
	{Label: "Income Ceiling", Value: "PCI ≤ $800"},
	{Label: "Provision", Value: "$400 / month"},
	{Label: "Duration", Value: "Max 3 Months"},
}

var steps = []ProcedureStep{
	{Position: 1, Title: "Initial Request", Actor: "NSF", Description: "Inform your Unit (S1/AO/MPO) about your need for assistance."},
	{Position: 2, Title: "Online Application", Actor: "NSF", Description: "Submit application via go.gov.sg/mindef-saf-fas4nsfs"},
	{Position: 3, Title: "First Assessment", Actor: "MSS-PSC", Description: "MSS-PSC checks ComCare status for Tier 1 vs Tier 2 eligibility."},
	{Position: 4, Title: "BFA Disbursement", Actor: "MSS-PSC", Description: "MSS-PSC assesses and disburses BFA immediately if eligible."},
	{Position: 5, Title: "Unit Endorsement", Actor: "Unit IO", Description: "Unit IO reviews and submits via iWADS system."},
	{Position: 6, Title: "Command Approval", Actor: "Unit CO / Dept Head", Description: "Unit CO/Dept Head approves in iWADS (within 10 days)."},
	{Position: 7, Title: "Final Verification", Actor: "Unit IO", Description: "Unit IO signs docs and submits to MSS-PSC (within 3 days)."},
	{Position: 8, Title: "Full Processing", Actor: "MSS-PSC", Description: "Final assessment and TFA disbursement upon receipt of all docs."},
}

// Tiers returns the three assistance tiers in display order:
// Tier 1, Tier 2, then the bridging tier.
func Tiers() []AssistanceTier {
	out := make([]AssistanceTier, len(tiers))
	for i, t := range tiers {
		t.Eligibility = append([]string(nil), t.Eligibility...)
		out[i] = t
	}
	return out
}

// Steps returns the procedure steps ordered by position.
func Steps() []ProcedureStep {
	return append([]ProcedureStep(nil), steps...)
}

// BridgingFacts returns the summary facts highlighted for the bridging tier.
func BridgingFacts() []Fact {
	return append([]Fact(nil), bridgingFacts...)
}

// FooterLines returns the page footer copy.
func FooterLines() []string {
	return append([]string(nil), footerLines...)
}

// Apply returns the call-to-action shown at the end of the procedure.
func Apply() CallToAction {
	return CallToAction{
		Prompt: "Ready to apply?",
		Label:  "Apply Online",
		URL:    ApplyURL,
	}
}

// ABOUTME: BookAnalysis input record supplied by the external analyzer
// ABOUTME: All fields are optional; absent sections default to empty
package models

// BookAnalysis is the structured result of analyzing one book.
// It is produced by an external collaborator (the LLM-driven analyzer),
// so every field is optional: a missing section means "nothing captured",
// never a malformed input.
type BookAnalysis struct {
	Insights []string `json:"insights,omitempty"`
	Quotes   []string `json:"quotes,omitempty"`
	MindMap  MindMap  `json:"mind_map,omitempty"`
}

// MindMap holds the concept branches extracted from a book
type MindMap struct {
	Branches []MindMapBranch `json:"branches,omitempty"`
}

// MindMapBranch is one named branch with its child concepts
type MindMapBranch struct {
	BranchName string   `json:"branch_name"`
	Concepts   []string `json:"concepts,omitempty"`
}

// CardCount returns how many cards a full ingestion of the analysis would
// create: one per insight, one per quote, one per (branch, concept) pair.
func (a *BookAnalysis) CardCount() int {
	n := len(a.Insights) + len(a.Quotes)
	for _, branch := range a.MindMap.Branches {
		n += len(branch.Concepts)
	}
	return n
}

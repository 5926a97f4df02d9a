// ABOUTME: Canned benchmark scenarios with fixture book analyses
// ABOUTME: Small, human-auditable ground truth for retrieval scoring

package retrieval

import "github.com/liyoubang97-hub/deepread-app/internal/models"

// BaselineScenarios returns the standard scenario set for tracking
// retrieval quality across embedding model or index changes.
func BaselineScenarios() []Scenario {
	return []Scenario{
		{
			Name: "direct insight lookup",
			Books: []FixtureBook{
				{
					Title:  "Deep Work",
					Author: "Cal Newport",
					Analysis: models.BookAnalysis{
						Insights: []string{
							"Sustained focus without distraction produces rare and valuable output",
							"Shallow tasks expand to fill whatever time they are given",
						},
						Quotes: []string{
							"Clarity about what matters provides clarity about what does not",
						},
					},
				},
				{
					Title:  "Atomic Habits",
					Author: "James Clear",
					Analysis: models.BookAnalysis{
						Insights: []string{
							"Small improvements compound into remarkable results over time",
						},
					},
				},
			},
			Query: "focus without distraction",
			TopK:  3,
			RelevantContents: []string{
				"Sustained focus without distraction produces rare and valuable output",
			},
		},
		{
			Name: "concept retrieval across branches",
			Books: []FixtureBook{
				{
					Title:  "Thinking, Fast and Slow",
					Author: "Daniel Kahneman",
					Analysis: models.BookAnalysis{
						MindMap: models.MindMap{
							Branches: []models.MindMapBranch{
								{
									BranchName: "Two Systems",
									Concepts:   []string{"fast intuitive thinking", "slow deliberate reasoning"},
								},
								{
									BranchName: "Biases",
									Concepts:   []string{"anchoring effect", "availability heuristic"},
								},
							},
						},
					},
				},
			},
			Query: "Biases: anchoring effect",
			TopK:  2,
			RelevantContents: []string{
				"Biases: anchoring effect",
			},
		},
	}
}

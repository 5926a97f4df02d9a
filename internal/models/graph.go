// ABOUTME: Knowledge graph view structures for visualization consumers
// ABOUTME: One node per card plus one node per book, edges card -> book
package models

// GraphNode is one node in the knowledge graph view
type GraphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Book  string `json:"book"`
}

// GraphEdge links a card node to its book node
type GraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// KnowledgeGraph is the full graph view of the store
type KnowledgeGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

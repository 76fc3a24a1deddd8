package models

type SearchRequest struct {
	Message string `json:"message" binding:"required" example:"something to help me sleep"`
}

// SearchResponse is the natural-language search payload: the routing
// result plus whatever the intent warrants, a product rail with facet
// counts for shoppable intents or store cards for store questions.
type SearchResponse struct {
	IntentResult
	Products []Product       `json:"products,omitempty"`
	Counts   *FacetCounts    `json:"counts,omitempty"`
	Stores   []StoreLocation `json:"stores,omitempty"`
}

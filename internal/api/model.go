package api

// SearchResult is a single match returned by the documentation search
// service. Fields other than the route are optional and passed through
// as-is; the service owns their semantics.
type SearchResult struct {
	ID             int      `json:"id"`
	PageTitle      string   `json:"pageTitle,omitempty"`
	SectionTitle   *string  `json:"sectionTitle,omitempty"`
	SectionRoute   string   `json:"sectionRoute"`
	SectionContent string   `json:"sectionContent,omitempty"`
	Type           string   `json:"type,omitempty"`
	Score          *float64 `json:"score,omitempty"`
}

// DisplayTitle picks the best available title for a result: page title,
// then section title, then the route itself.
func (r SearchResult) DisplayTitle() string {
	if r.PageTitle != "" {
		return r.PageTitle
	}
	if r.SectionTitle != nil && *r.SectionTitle != "" {
		return *r.SectionTitle
	}
	return r.SectionRoute
}

// SearchResponse is the service's answer to a search request. Result
// ordering is the service's; it is never re-sorted locally.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	Query   string         `json:"query"`
	Took    int            `json:"took"`
}

// ContentResponse is the stored markdown body for a route.
type ContentResponse struct {
	Route    string         `json:"route"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// IndexListResponse enumerates the index tags known to the service.
type IndexListResponse struct {
	Indexes []string `json:"indexes"`
}

// RouteListResponse enumerates the content routes stored by the service.
type RouteListResponse struct {
	Routes []string `json:"routes"`
}

package domain

// Tool is an operation advertised by an MCP server.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// FilterTools splits tools into those the catalog allows (read set members) and
// those it drops (writes and unknown names). Order is preserved in both slices.
func FilterTools(catalog *Catalog, tools []Tool) (allowed, dropped []Tool) {
	allowed = make([]Tool, 0, len(tools))
	for _, tool := range tools {
		if catalog.IsRead(tool.Name) {
			allowed = append(allowed, tool)
			continue
		}
		dropped = append(dropped, tool)
	}
	return allowed, dropped
}

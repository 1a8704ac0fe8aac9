package mcp

type M map[string]interface{}

// Tool describes one invokable capability. Descriptors are static: built at
// start-up, enumerated verbatim on every mcp.discover.
//
//	{
//		tool_id: string,       // stable identifier used by perform_action
//		name: string,
//		description?: string,
//		input_schema: {        // JSON Schema for the tool's inputs
//			type: "object",
//			properties: { ... }
//		},
//		output_schema: { ... }
//	}
type Tool struct {
	ID           string     `json:"tool_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	InputSchema  ToolSchema `json:"input_schema"`
	OutputSchema ToolSchema `json:"output_schema"`
}

type ToolSchema struct {
	Type       string   `json:"type"`
	Properties M        `json:"properties"`
	Required   []string `json:"required,omitempty"`
}

// Resource is advertised alongside tools on discovery. This server exposes
// none, but the envelope always carries the (empty) list.
type Resource struct {
	Name        string `json:"name"`
	URI         string `json:"uri"`
	Description string `json:"description,omitempty"`
}

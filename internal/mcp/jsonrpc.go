package mcp

const (
	JSONRPCVersion = "2.0"
)

const (
	// Client => Server
	MethodDiscover      = "mcp.discover"
	MethodPerformAction = "mcp.perform_action"
)

// Request
//
//	{
//		jsonrpc: "2.0",
//		id: number | string,
//		method: string,
//		params?: object
//	}
type Request struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// Response
//
//	{
//		jsonrpc: "2.0",
//		id: number | string,
//		result?: object,
//		error?: {
//			code: number,
//			message: string,
//			data?: unknown
//		}
//	}
//
// Result and Error are mutually exclusive: a response carries exactly one of
// them. ID always echoes the request id, including null.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

func NewResponse(id interface{}, result interface{}) *Response {
	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Result:  result,
	}
}

// PerformActionParams is the expected shape of params for mcp.perform_action.
// Inputs stays untyped here; each tool decodes it against its own schema.
type PerformActionParams struct {
	ToolID string                 `json:"tool_id" mapstructure:"tool_id"`
	Inputs map[string]interface{} `json:"inputs" mapstructure:"inputs"`
}

// DiscoverResult is the result payload of mcp.discover.
type DiscoverResult struct {
	Tools     []Tool     `json:"tools"`
	Resources []Resource `json:"resources"`
}

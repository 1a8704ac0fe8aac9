package rpc

import (
	"github.com/secquiz/secquiz/internal/mcp"
)

const (
	ToolIDGenerateQuestion = "generate_question"
	ToolIDRedactPII        = "redact_pii"
	ToolIDPageLink         = "get_pdf_page_link"
)

// Static tool descriptors, enumerated verbatim on every mcp.discover.
var (
	ToolGenerateQuestion = mcp.Tool{
		ID:          ToolIDGenerateQuestion,
		Name:        "Generate Question",
		Description: "Generate study questions about a topic, strictly answerable from the CCSK reference document. Returns questions in a Question/Options/Answer/Explanation format.",
		InputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"topic": mcp.M{
					"type":        "string",
					"description": "Subject the questions should cover, e.g. \"cloud governance\".",
				},
				"type": mcp.M{
					"type":        "string",
					"description": "Question style: \"multiple_choice\", \"open\" or \"scenario\".",
				},
				"level": mcp.M{
					"type":        "string",
					"description": "Difficulty: \"beginner\", \"intermediate\" or \"advanced\".",
				},
				"amount": mcp.M{
					"type":        "integer",
					"description": "Number of questions to generate. Defaults to 1.",
				},
			},
			Required: []string{"topic"},
		},
		OutputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"question": mcp.M{
					"type":        "string",
					"description": "The generated question(s) as formatted text.",
				},
			},
		},
	}

	ToolRedactPII = mcp.Tool{
		ID:          ToolIDRedactPII,
		Name:        "Redact PII",
		Description: "Replace personally identifying information in a text with category placeholders such as [REDACTED_NAME] or [REDACTED_EMAIL], making it safe for logging.",
		InputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"text": mcp.M{
					"type":        "string",
					"description": "The text to clean.",
				},
			},
			Required: []string{"text"},
		},
		OutputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"original_text": mcp.M{
					"type": "string",
				},
				"cleaned_text": mcp.M{
					"type": "string",
				},
			},
		},
	}

	ToolPageLink = mcp.Tool{
		ID:          ToolIDPageLink,
		Name:        "Resolve PDF Page Link",
		Description: "Build a link to a specific page of the CCSK reference document as served by this host. Purely local, no model call.",
		InputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"page_number": mcp.M{
					"type":        "integer",
					"description": "1-based page number.",
				},
			},
			Required: []string{"page_number"},
		},
		OutputSchema: mcp.ToolSchema{
			Type: "object",
			Properties: mcp.M{
				"link": mcp.M{
					"type":        "string",
					"description": "Locator ending in a #page=N fragment.",
				},
			},
		},
	}

	Tools = []mcp.Tool{
		ToolGenerateQuestion,
		ToolRedactPII,
		ToolPageLink,
	}
)

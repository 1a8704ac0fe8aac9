package rpc

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"

	"github.com/secquiz/secquiz/internal/errors"
	"github.com/secquiz/secquiz/internal/mcp"
)

// Executor runs the tools the RPC surface advertises.
type Executor interface {
	GenerateQuestions(ctx context.Context, topic, qtype, level string, amount int) (string, error)
	RedactText(ctx context.Context, text string) (string, error)
	PageLink(page int) (string, error)
}

// questionInputs mirrors the generate_question input schema.
type questionInputs struct {
	Topic  string `mapstructure:"topic"`
	Type   string `mapstructure:"type"`
	Level  string `mapstructure:"level"`
	Amount int    `mapstructure:"amount"`
}

type redactInputs struct {
	Text string `mapstructure:"text"`
}

type pageLinkInputs struct {
	PageNumber int `mapstructure:"page_number"`
}

// Service routes JSON-RPC envelopes to the executor. One envelope per call,
// no cross-request state; every internal failure becomes an RpcError, nothing
// is thrown past this boundary.
type Service struct {
	exec Executor
}

func NewService(exec Executor) *Service {
	return &Service{exec: exec}
}

// HandleRPC is the gin handler for POST /mcp.
func (s *Service) HandleRPC(c *gin.Context) {
	var req mcp.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, &mcp.Response{
			JSONRPC: mcp.JSONRPCVersion,
			Error:   mcp.ErrParseError,
		})
		return
	}

	c.JSON(http.StatusOK, s.Dispatch(c.Request.Context(), &req))
}

// Dispatch routes one request by method name.
func (s *Service) Dispatch(ctx context.Context, req *mcp.Request) *mcp.Response {
	log.Debug().Str("method", req.Method).Interface("id", req.ID).Msg("rpc request")

	switch req.Method {
	case mcp.MethodDiscover:
		return mcp.NewResponse(req.ID, mcp.DiscoverResult{
			Tools:     Tools,
			Resources: []mcp.Resource{},
		})
	case mcp.MethodPerformAction:
		return s.performAction(ctx, req)
	default:
		return mcp.NewErrorResponse(req.ID, mcp.CodeMethodNotFound, "Method not found")
	}
}

func (s *Service) performAction(ctx context.Context, req *mcp.Request) *mcp.Response {
	params, ok := req.Params.(map[string]interface{})
	if !ok {
		return mcp.NewErrorResponse(req.ID, mcp.CodeInvalidParams, "Invalid params")
	}

	toolID, ok := params["tool_id"].(string)
	if !ok || toolID == "" {
		return mcp.NewErrorResponse(req.ID, mcp.CodeInvalidParams, "Invalid params: tool_id is required")
	}

	// Inputs must be a key-value object; a list or scalar is a params error,
	// not an executor error.
	inputs, ok := params["inputs"].(map[string]interface{})
	if !ok {
		return mcp.NewErrorResponse(req.ID, mcp.CodeInvalidParams, "Invalid params: inputs must be an object")
	}

	switch toolID {
	case ToolIDGenerateQuestion:
		var in questionInputs
		if err := decodeInputs(inputs, &in); err != nil {
			return mcp.NewErrorResponse(req.ID, mcp.CodeInvalidParams, "Invalid params")
		}
		question, err := s.exec.GenerateQuestions(ctx, in.Topic, in.Type, in.Level, in.Amount)
		if err != nil {
			return s.errorResponse(req.ID, toolID, err)
		}
		return mcp.NewResponse(req.ID, mcp.M{"question": question})

	case ToolIDRedactPII:
		var in redactInputs
		if err := decodeInputs(inputs, &in); err != nil {
			return mcp.NewErrorResponse(req.ID, mcp.CodeInvalidParams, "Invalid params")
		}
		cleaned, err := s.exec.RedactText(ctx, in.Text)
		if err != nil {
			return s.errorResponse(req.ID, toolID, err)
		}
		return mcp.NewResponse(req.ID, mcp.M{
			"original_text": in.Text,
			"cleaned_text":  cleaned,
		})

	case ToolIDPageLink:
		var in pageLinkInputs
		if err := decodeInputs(inputs, &in); err != nil {
			return mcp.NewErrorResponse(req.ID, mcp.CodeInvalidParams, "Invalid params")
		}
		link, err := s.exec.PageLink(in.PageNumber)
		if err != nil {
			return s.errorResponse(req.ID, toolID, err)
		}
		return mcp.NewResponse(req.ID, mcp.M{"link": link})

	default:
		return mcp.NewErrorResponse(req.ID, mcp.CodeMethodNotFound, "Unknown tool: "+toolID)
	}
}

func (s *Service) errorResponse(id interface{}, toolID string, err error) *mcp.Response {
	log.Error().Err(err).Str("tool_id", toolID).Msg("tool execution failed")
	return &mcp.Response{
		JSONRPC: mcp.JSONRPCVersion,
		ID:      id,
		Error:   errors.RPC(err),
	}
}

// decodeInputs maps the loose inputs object onto a typed struct. Weak typing
// tolerates clients sending numbers as strings and JSON numbers as float64.
func decodeInputs(inputs map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(inputs)
}

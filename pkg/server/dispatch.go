package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/solidmcp/solidmcp/pkg/protocol"
	"github.com/solidmcp/solidmcp/pkg/scene"
	"github.com/solidmcp/solidmcp/pkg/tools"
)

// Dispatcher routes a decoded request to its handler and builds the
// response envelope. Handler failures of every kind, returned errors,
// success=false results and panics out of geometry code, are converted to
// protocol errors here and nowhere else.
type Dispatcher struct {
	Registry *tools.Registry
	Scene    *scene.Scene
}

// Handle processes one decoded request envelope.
func (d *Dispatcher) Handle(ctx context.Context, req *protocol.Request) (resp *protocol.Response) {
	protocol.Canonicalize(req)

	// Sole failure boundary: no handler branch may take down the listener
	// loop.
	defer func() {
		if r := recover(); r != nil {
			resp = toolError(req.ID, fmt.Sprintf("%v", r))
		}
	}()

	switch req.Method {
	case protocol.MethodToolsCall:
		return d.callTool(ctx, req)
	case protocol.MethodToolsList:
		return protocol.SuccessResponse(req.ID, map[string]any{
			"tools": d.Registry.Catalog(),
		})
	case protocol.MethodResourcesList:
		resources := make([]map[string]any, 0, d.Scene.Count())
		for _, g := range d.Scene.List() {
			resources = append(resources, map[string]any{"id": g.ID(), "type": g.Kind})
		}
		return protocol.SuccessResponse(req.ID, map[string]any{
			"resources": resources,
		})
	case protocol.MethodPromptsList:
		return protocol.SuccessResponse(req.ID, map[string]any{
			"prompts": []any{},
		})
	default:
		return protocol.ErrorResponse(req.ID, protocol.CodeMethodNotFound,
			fmt.Sprintf("Method not found: %s", req.Method), nil)
	}
}

func (d *Dispatcher) callTool(ctx context.Context, req *protocol.Request) *protocol.Response {
	inv := protocol.ToolInvocation(req)

	tool, ok := d.Registry.Get(inv.Name)
	if !ok {
		return toolError(req.ID, fmt.Sprintf("Unknown tool: %s", inv.Name))
	}

	result, err := tool.Execute(ctx, inv.Arguments)
	if err != nil {
		return toolError(req.ID, err.Error())
	}
	if ok, _ := result["success"].(bool); !ok {
		msg := fmt.Sprintf("Tool %s failed", inv.Name)
		if errText, ok := result["error"].(string); ok && errText != "" {
			msg = errText
		}
		return toolError(req.ID, msg)
	}

	text, err := json.Marshal(result)
	if err != nil {
		return toolError(req.ID, fmt.Sprintf("encode result: %v", err))
	}
	wrapped := map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": string(text)},
		},
		"isError": false,
		"success": true,
	}
	if id, ok := result["id"]; ok {
		wrapped["resourceId"] = id
	}
	return protocol.SuccessResponse(req.ID, wrapped)
}

func toolError(id json.RawMessage, message string) *protocol.Response {
	return protocol.ErrorResponse(id, protocol.CodeInternalError, message,
		map[string]any{"success": false})
}

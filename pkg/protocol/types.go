package protocol

import "encoding/json"

// JSON-RPC error codes used on the wire.
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// Method names the dispatcher routes on.
const (
	MethodToolsCall     = "tools/call"
	MethodToolsList     = "tools/list"
	MethodResourcesList = "resources/list"
	MethodPromptsList   = "prompts/list"
)

// Request is the decoded wire envelope. Two shapes are accepted: the
// jsonrpc method/params form and the legacy flat command/parameters form.
// ID is kept raw so it is echoed back byte for byte, null included.
type Request struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  *Params         `json:"params,omitempty"`

	// Legacy shape.
	Command    string         `json:"command,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Params carries a canonical tool invocation inside a tools/call request.
type Params struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Invocation is the canonical internal request form regardless of wire
// shape.
type Invocation struct {
	Name      string
	Arguments map[string]any
}

// Response is the wire response envelope: either Result or Error is set.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

// ErrorObject is the JSON-RPC error member.
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse builds a result envelope echoing the request id.
func SuccessResponse(id json.RawMessage, result any) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Result: result}
}

// ErrorResponse builds an error envelope echoing the request id.
func ErrorResponse(id json.RawMessage, code int, message string, data any) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &ErrorObject{Code: code, Message: message, Data: data},
	}
}

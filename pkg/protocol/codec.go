package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
)

// idPattern recovers a numeric id from a line whose surrounding JSON failed
// to parse. Clients correlate on id even for malformed requests, so this
// fallback is load-bearing, not cosmetic.
var idPattern = regexp.MustCompile(`"id"\s*:\s*(\d+)`)

// DecodeLine parses one line of input as a single request envelope. On
// failure it returns a ready-to-send parse error response instead, with
// id null unless one can be recovered from the raw text.
func DecodeLine(line []byte) (*Request, *Response) {
	line = bytes.TrimSpace(line)
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		var id json.RawMessage
		if m := idPattern.FindSubmatch(line); m != nil {
			id = json.RawMessage(m[1])
		}
		msg := fmt.Sprintf("Parse error: %v", err)
		return nil, ErrorResponse(id, CodeParseError, msg, nil)
	}
	return &req, nil
}

// EncodeResponse serializes a response envelope followed by the newline
// terminator. Callers write the returned bytes and flush before closing the
// connection.
func EncodeResponse(resp *Response) ([]byte, error) {
	out, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}
	return append(out, '\n'), nil
}

// Canonicalize normalizes the legacy flat command/parameters shape into a
// tools/call invocation, preserving id and defaulting the jsonrpc version.
func Canonicalize(req *Request) {
	if req.Command != "" && req.Method == "" {
		req.Method = MethodToolsCall
		req.Params = &Params{Name: req.Command, Arguments: req.Parameters}
		req.Command = ""
		req.Parameters = nil
	}
	if req.JSONRPC == "" {
		req.JSONRPC = "2.0"
	}
}

// ToolInvocation extracts the canonical invocation from a tools/call
// request.
func ToolInvocation(req *Request) Invocation {
	inv := Invocation{}
	if req.Params != nil {
		inv.Name = req.Params.Name
		inv.Arguments = req.Params.Arguments
	}
	if inv.Arguments == nil {
		inv.Arguments = map[string]any{}
	}
	return inv
}

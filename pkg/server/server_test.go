package server

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/solidmcp/solidmcp/pkg/protocol"
)

func startTestServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		Addr:         "127.0.0.1:0",
		PollInterval: 5 * time.Millisecond,
		Dispatcher:   newDispatcher(t),
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(s.Stop)
	return s
}

// roundTrip sends one request line over a fresh connection and returns the
// decoded response.
func roundTrip(t *testing.T, addr net.Addr, line string) *protocol.Response {
	t.Helper()
	conn, err := net.Dial("tcp", addr.String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(5 * time.Second))

	if _, err := conn.Write([]byte(line + "\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := bufio.NewReader(conn).ReadBytes('\n')
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var resp protocol.Response
	if err := json.Unmarshal(out, &resp); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return &resp
}

func TestServerRoundTrip(t *testing.T) {
	s := startTestServer(t)

	resp := roundTrip(t, s.BoundAddr(),
		`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"create_component","arguments":{"type":"cube"}}}`)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	if string(resp.ID) != "1" {
		t.Errorf("id = %s, want 1", resp.ID)
	}
	result, ok := resp.Result.(map[string]any)
	if !ok || result["success"] != true {
		t.Errorf("result = %v", resp.Result)
	}
}

// TestServerEchoesIDVerbatim tests that string and null ids survive the
// round trip byte for byte.
func TestServerEchoesIDVerbatim(t *testing.T) {
	s := startTestServer(t)

	cases := []struct {
		line   string
		wantID string
	}{
		{`{"jsonrpc":"2.0","id":"abc-123","method":"prompts/list"}`, `"abc-123"`},
		{`{"jsonrpc":"2.0","id":null,"method":"prompts/list"}`, "null"},
		{`{"jsonrpc":"2.0","method":"prompts/list"}`, "null"},
	}
	for _, tc := range cases {
		resp := roundTrip(t, s.BoundAddr(), tc.line)
		if string(resp.ID) != tc.wantID {
			t.Errorf("id for %s = %s, want %s", tc.line, resp.ID, tc.wantID)
		}
	}
}

func TestServerParseError(t *testing.T) {
	s := startTestServer(t)

	resp := roundTrip(t, s.BoundAddr(), `{"id": 42, "method": "tools/call",`)
	if resp.Error == nil || resp.Error.Code != protocol.CodeParseError {
		t.Fatalf("want parse error, got %+v", resp.Error)
	}
	// The id is recovered from the malformed text.
	if string(resp.ID) != "42" {
		t.Errorf("id = %s, want 42", resp.ID)
	}
}

func TestServerHandlesSequentialConnections(t *testing.T) {
	s := startTestServer(t)

	for i := 0; i < 3; i++ {
		resp := roundTrip(t, s.BoundAddr(), `{"jsonrpc":"2.0","id":9,"method":"tools/list"}`)
		if resp.Error != nil {
			t.Fatalf("connection %d: %+v", i, resp.Error)
		}
	}
}

func TestServerStopAndRestart(t *testing.T) {
	s := &Server{
		Addr:         "127.0.0.1:0",
		PollInterval: 5 * time.Millisecond,
		Dispatcher:   newDispatcher(t),
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Starting again while running is a no-op.
	if err := s.Start(); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	s.Stop()
	// Stopping twice is safe.
	s.Stop()

	if s.BoundAddr() != nil {
		t.Error("BoundAddr after Stop should be nil")
	}
	if err := s.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	defer s.Stop()
	resp := roundTrip(t, s.BoundAddr(), `{"jsonrpc":"2.0","id":1,"method":"prompts/list"}`)
	if resp.Error != nil {
		t.Fatalf("after restart: %+v", resp.Error)
	}
}

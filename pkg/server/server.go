package server

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/solidmcp/solidmcp/pkg/logger"
	"github.com/solidmcp/solidmcp/pkg/protocol"
)

// DefaultPort is the port the command server binds when none is configured.
const DefaultPort = 9876

// DefaultPollInterval is the fixed accept-poll cadence.
const DefaultPollInterval = 100 * time.Millisecond

// Server owns the listening socket and the poll loop. One connection is
// accepted per tick, one request line is read, handled synchronously, and
// the response written back before the connection closes. There is no
// parallelism: all geometry work happens on the loop goroutine.
type Server struct {
	Addr         string
	PollInterval time.Duration
	Dispatcher   *Dispatcher
	Log          *logger.Logger

	mu      sync.Mutex
	ln      net.Listener
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// Start binds the socket and launches the poll loop. Starting a running
// server is a no-op.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	addr := s.Addr
	if addr == "" {
		addr = fmt.Sprintf("127.0.0.1:%d", DefaultPort)
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", addr, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.ln = ln
	s.cancel = cancel
	s.done = done
	s.running = true
	s.logf("server listening on %s", ln.Addr())

	go s.loop(ctx, ln, done)
	return nil
}

// Stop cancels the poll, closes the socket and clears state so a subsequent
// Start can rebind the same port.
func (s *Server) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.ln.Close()
	done := s.done
	s.ln = nil
	s.cancel = nil
	s.done = nil
	s.running = false
	s.mu.Unlock()

	<-done
	s.logf("server stopped")
}

// Addr returns the bound address while running, for tests that bind port 0.
func (s *Server) BoundAddr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

func (s *Server) loop(ctx context.Context, ln net.Listener, done chan struct{}) {
	defer close(done)

	interval := s.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pollOnce(ctx, ln)
		}
	}
}

// pollOnce accepts at most one pending connection and handles it to
// completion. A second waiting connection is picked up on a later tick.
func (s *Server) pollOnce(ctx context.Context, ln net.Listener) {
	tcp, ok := ln.(*net.TCPListener)
	if !ok {
		return
	}
	// Non-blocking readiness check: an immediate deadline makes Accept
	// return right away when no client is waiting.
	tcp.SetDeadline(time.Now().Add(time.Millisecond))
	conn, err := tcp.Accept()
	if err != nil {
		return
	}
	s.handleConn(ctx, conn)
}

func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(10 * time.Second))

	line, err := bufio.NewReader(conn).ReadBytes('\n')
	if len(line) == 0 && err != nil {
		s.logf("read: %v", err)
		return
	}

	req, errResp := protocol.DecodeLine(line)
	resp := errResp
	if req != nil {
		resp = s.Dispatcher.Handle(ctx, req)
	}

	out, err := protocol.EncodeResponse(resp)
	if err != nil {
		s.logf("encode: %v", err)
		return
	}
	if _, err := conn.Write(out); err != nil {
		s.logf("write: %v", err)
	}
}

func (s *Server) logf(format string, args ...any) {
	if s.Log != nil {
		s.Log.Infof(format, args...)
	}
}

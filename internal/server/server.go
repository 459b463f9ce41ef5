// Package server hosts the command handler over a line-oriented TCP protocol.
//
// Each input line is one chat message. Lines starting with the command prefix
// are dispatched and the reply is written back terminated by a line holding a
// single ".". Reply lines that start with "." are dot-stuffed, as in SMTP.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/udisondev/growthcalc/internal/config"
)

// maxLineSize bounds a single input line.
const maxLineSize = 4096

// LineHandler turns one input line into a reply.
// *command.Handler implements it.
type LineHandler interface {
	HandleLine(line string) (reply string, ok bool)
}

// Server accepts client connections and answers their commands.
type Server struct {
	cfg     config.Server
	handler LineHandler

	listener net.Listener
	mu       sync.Mutex
}

// New creates a server dispatching lines to h.
func New(cfg config.Server, h LineHandler) *Server {
	return &Server{
		cfg:     cfg,
		handler: h,
	}
}

// Addr returns the address the server listens on, or nil before Run.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close closes the listener and stops accepting connections.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}

// Run listens on cfg.BindAddress:cfg.Port and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.BindAddress, fmt.Sprint(s.cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve runs the accept loop on ln until ctx is done or ln is closed, then
// waits for open connections to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	var wg sync.WaitGroup
	slog.Info("calc server started", "address", ln.Addr())
	s.acceptLoop(ctx, &wg, ln)
	wg.Wait()

	slog.Info("calc server stopped", "address", ln.Addr())
	return nil
}

func (s *Server) acceptLoop(ctx context.Context, wg *sync.WaitGroup, ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return
			}
			slog.Error("failed to accept new connection", "error", err)
			continue
		}
		wg.Go(func() {
			s.handleConnection(ctx, conn)
		})
	}
}

func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	remote := conn.RemoteAddr().String()
	slog.Info("new connection", "remote", remote)

	sc := bufio.NewScanner(conn)
	sc.Buffer(make([]byte, 0, 512), maxLineSize)
	w := bufio.NewWriter(conn)

	for {
		if s.cfg.ReadTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
				slog.Error("failed to set read deadline", "remote", remote, "error", err)
				return
			}
		}
		if !sc.Scan() {
			break
		}

		reply, _ := s.handler.HandleLine(sc.Text())
		if reply == "" {
			continue
		}
		if err := writeReply(w, reply); err != nil {
			slog.Error("failed to write reply", "remote", remote, "error", err)
			return
		}
	}

	if err := sc.Err(); err != nil && ctx.Err() == nil && !errors.Is(err, net.ErrClosed) {
		slog.Warn("connection read failed", "remote", remote, "error", err)
	}
	slog.Info("connection closed", "remote", remote)
}

// Terminator ends every reply.
const Terminator = "."

func writeReply(w *bufio.Writer, reply string) error {
	for line := range strings.SplitSeq(strings.TrimRight(reply, "\n"), "\n") {
		if strings.HasPrefix(line, Terminator) {
			line = Terminator + line
		}
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if _, err := w.WriteString(Terminator + "\n"); err != nil {
		return err
	}
	return w.Flush()
}

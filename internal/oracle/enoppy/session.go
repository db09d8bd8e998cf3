// Package enoppy provides oracle handles backed by the Python enoppy suite.
// A Session owns one interpreter process and is the single execution context
// for every problem opened through it: requests are serialized on its pipe.
// Callers create the session, pass it where a provider is needed and close it
// when done.
package enoppy

import (
	"bufio"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/ahrav/go-enop/internal/oracle"
)

//go:embed worker.py
var workerScript string

// DefaultStartTimeout bounds the startup handshake.
const DefaultStartTimeout = 30 * time.Second

// ErrSessionClosed indicates a request on a closed or broken session.
var ErrSessionClosed = errors.New("enoppy session closed")

const stderrLimit = 16 << 10

// Option configures a Session.
type Option func(*settings)

type settings struct {
	command      string
	args         []string
	script       bool
	env          []string
	startTimeout time.Duration
	logger       *slog.Logger
}

// WithPython sets the interpreter and arguments placed before the worker
// script.
func WithPython(path string, args ...string) Option {
	return func(s *settings) {
		s.command = path
		s.args = args
		s.script = true
	}
}

// WithCommand runs an arbitrary program that speaks the worker protocol
// instead of the embedded Python worker.
func WithCommand(path string, args ...string) Option {
	return func(s *settings) {
		s.command = path
		s.args = args
		s.script = false
	}
}

// WithEnv appends KEY=VALUE entries to the inherited environment.
func WithEnv(env ...string) Option {
	return func(s *settings) { s.env = append(s.env, env...) }
}

// WithStartTimeout bounds the startup handshake. Zero keeps the default.
func WithStartTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.startTimeout = d
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session is a running worker process. It implements oracle.Provider.
type Session struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	stderr *tailBuffer
	broken error

	waitOnce sync.Once
	done     chan struct{}

	logger *slog.Logger
}

var _ oracle.Provider = (*Session)(nil)

// Start launches the worker and waits for it to report that the suite is
// importable. ctx and the start timeout bound only the handshake; the
// process outlives ctx.
func Start(ctx context.Context, opts ...Option) (*Session, error) {
	cfg := settings{
		command:      "python3",
		script:       true,
		startTimeout: DefaultStartTimeout,
		logger:       slog.Default().With("component", "enoppy"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	args := append([]string(nil), cfg.args...)
	if cfg.script {
		args = append(args, "-u", "-c", workerScript)
	}

	cmd := exec.Command(cfg.command, args...)
	cmd.Env = append(os.Environ(), cfg.env...)
	stderr := &tailBuffer{limit: stderrLimit}
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdin pipe: %w", oracle.ErrOracleUnavailable, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %w", oracle.ErrOracleUnavailable, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: start %s: %w", oracle.ErrOracleUnavailable, cfg.command, err)
	}

	s := &Session{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
		stderr: stderr,
		done:   make(chan struct{}),
		logger: cfg.logger,
	}
	if err := s.handshake(ctx, cfg.startTimeout); err != nil {
		s.kill()
		return nil, err
	}
	s.logger.Info("enoppy session started", "pid", cmd.Process.Pid)
	return s, nil
}

func (s *Session) handshake(ctx context.Context, timeout time.Duration) error {
	result := make(chan error, 1)
	go func() {
		resp, err := s.call(request{Op: opPing})
		if err == nil {
			err = resp.err()
		}
		result <- err
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-result:
		if err != nil {
			return fmt.Errorf("%w: handshake: %w%s", oracle.ErrOracleUnavailable, err, s.stderrSuffix())
		}
		return nil
	case <-timer.C:
		return fmt.Errorf("%w: handshake timed out after %s", oracle.ErrOracleUnavailable, timeout)
	case <-ctx.Done():
		return fmt.Errorf("%w: handshake: %w", oracle.ErrOracleUnavailable, ctx.Err())
	}
}

// call sends one request and reads one response. Transport failures break the
// session permanently.
func (s *Session) call(req request) (response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.broken != nil {
		return response{}, s.broken
	}

	line, err := json.Marshal(req)
	if err != nil {
		return response{}, fmt.Errorf("encode %s request: %w", req.Op, err)
	}
	if _, err := s.stdin.Write(append(line, '\n')); err != nil {
		return response{}, s.fail(fmt.Errorf("write %s request: %w", req.Op, err))
	}

	raw, err := s.stdout.ReadBytes('\n')
	if err != nil {
		return response{}, s.fail(fmt.Errorf("read %s response: %w", req.Op, err))
	}

	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return response{}, s.fail(fmt.Errorf("decode %s response: %w", req.Op, err))
	}
	return resp, nil
}

// fail marks the session broken. Callers hold s.mu.
func (s *Session) fail(cause error) error {
	s.broken = fmt.Errorf("%w: %w: %w", oracle.ErrOracleUnavailable, ErrSessionClosed, cause)
	return s.broken
}

// Open instantiates a problem in the worker and returns its handle.
func (s *Session) Open(name string) (oracle.Oracle, error) {
	resp, err := s.call(request{Op: opOpen, Problem: name})
	if err != nil {
		return nil, err
	}
	if err := resp.err(); err != nil {
		return nil, fmt.Errorf("open %q: %w", name, err)
	}
	return &problem{
		session: s,
		name:    name,
		handle:  resp.Handle,
		md:      oracle.Metadata{Dimension: resp.NDims, Bounds: resp.Bounds},
	}, nil
}

// Close stops the worker. It is safe to call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.broken == nil {
		s.broken = fmt.Errorf("%w: %w", oracle.ErrOracleUnavailable, ErrSessionClosed)
	}
	s.mu.Unlock()

	_ = s.stdin.Close()
	select {
	case <-s.wait():
	case <-time.After(5 * time.Second):
		s.logger.Warn("enoppy worker did not exit, killing it")
		s.kill()
	}

	if tail := s.stderr.String(); tail != "" {
		s.logger.Debug("enoppy worker stderr", "stderr", tail)
	}
	return nil
}

func (s *Session) kill() {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	<-s.wait()
}

// wait reaps the process once and reports when it has exited.
func (s *Session) wait() <-chan struct{} {
	s.waitOnce.Do(func() {
		go func() {
			_ = s.cmd.Wait()
			close(s.done)
		}()
	})
	return s.done
}

func (s *Session) stderrSuffix() string {
	if tail := s.stderr.String(); tail != "" {
		return ": " + tail
	}
	return ""
}

// problem is one instantiated suite problem inside the worker.
type problem struct {
	session *Session
	name    string
	handle  int
	md      oracle.Metadata
}

// Metadata returns what the worker reported when the problem was opened.
func (p *problem) Metadata() (oracle.Metadata, error) { return p.md, nil }

func (p *problem) Score(x []float64) (float64, error) {
	resp, err := p.session.call(request{Op: opEvaluate, Handle: p.handle, X: encodeVector(x)})
	if err != nil {
		return 0, err
	}
	if err := resp.err(); err != nil {
		return 0, fmt.Errorf("evaluate %s: %w", p.name, err)
	}
	return decodeValue(resp.Value)
}

// Close releases the worker-side instance.
func (p *problem) Close() error {
	resp, err := p.session.call(request{Op: opClose, Handle: p.handle})
	if err != nil {
		if errors.Is(err, ErrSessionClosed) {
			return nil
		}
		return err
	}
	return resp.err()
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	buf   []byte
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	if over := len(b.buf) - b.limit; over > 0 {
		b.buf = b.buf[over:]
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}

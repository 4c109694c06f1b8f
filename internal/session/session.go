package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// ErrAlreadyRunning is returned when Run is called twice.
var ErrAlreadyRunning = errors.New("session: already running")

// Config holds loop settings.
type Config struct {
	// TickInterval is the time between ticks when Ticks is nil.
	TickInterval time.Duration

	// Ticks, when set, replaces the internal ticker. Used by tests and
	// headless drivers that step the game themselves.
	Ticks <-chan time.Time

	// InputBuffer is how many commands can queue before the oldest is dropped.
	InputBuffer int
}

// Session owns one game and serializes all access to it.
type Session struct {
	id      ID
	cfg     Config
	factory Factory
	logger  *log.Logger

	input    chan Command
	frames   chan Frame
	done     chan struct{}
	doneOnce sync.Once

	runMu   sync.Mutex
	running bool

	// Owned by the Run goroutine after start.
	game       *snake.GameState
	paused     bool
	generation int
}

// New creates a session and builds its first game.
func New(id ID, factory Factory, cfg Config, logger *log.Logger) (*Session, error) {
	if cfg.TickInterval <= 0 && cfg.Ticks == nil {
		return nil, fmt.Errorf("session: tick interval must be positive, got %v", cfg.TickInterval)
	}
	if cfg.InputBuffer < 1 {
		cfg.InputBuffer = 16
	}
	if logger == nil {
		logger = log.Default()
	}

	game, err := factory()
	if err != nil {
		return nil, fmt.Errorf("session: cannot create game: %w", err)
	}

	return &Session{
		id:         id,
		cfg:        cfg,
		factory:    factory,
		logger:     logger.With("session", string(id)),
		input:      make(chan Command, cfg.InputBuffer),
		frames:     make(chan Frame, 1),
		done:       make(chan struct{}),
		game:       game,
		generation: 1,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// Send queues a command without blocking.
// If the buffer is full the oldest command is dropped.
func (s *Session) Send(cmd Command) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.input <- cmd:
	default:
		select {
		case <-s.input:
		default:
		}
		select {
		case s.input <- cmd:
		default:
		}
	}
}

// Frames returns the channel of published frames. Only the latest unread
// frame is kept. The channel is closed when Run returns.
func (s *Session) Frames() <-chan Frame {
	return s.frames
}

// Done returns a channel that closes when Run returns.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Run processes ticks and commands until ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.runMu.Lock()
	if s.running {
		s.runMu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.runMu.Unlock()

	defer s.doneOnce.Do(func() {
		close(s.done)
		close(s.frames)
	})

	ticks := s.cfg.Ticks
	if ticks == nil {
		ticker := time.NewTicker(s.cfg.TickInterval)
		defer ticker.Stop()
		ticks = ticker.C
	}

	s.logger.Debug("session started", "board", fmt.Sprintf("%dx%d", s.game.Width(), s.game.Height()))
	s.publish()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("session stopped", "generation", s.generation)
			return nil
		case cmd := <-s.input:
			if err := s.handle(cmd); err != nil {
				return err
			}
		case <-ticks:
			s.tick()
		}
		s.publish()
	}
}

func (s *Session) handle(cmd Command) error {
	switch cmd.Kind {
	case CmdTurn:
		if !s.paused {
			s.game.SetDirection(cmd.Dir)
		}
	case CmdTogglePause:
		if !s.game.Terminal() {
			s.paused = !s.paused
		}
	case CmdRestart:
		game, err := s.factory()
		if err != nil {
			return fmt.Errorf("session: cannot restart game: %w", err)
		}
		s.game = game
		s.paused = false
		s.generation++
		s.logger.Debug("game restarted", "generation", s.generation)
	}
	return nil
}

func (s *Session) tick() {
	if s.paused || s.game.Terminal() {
		return
	}
	s.game.Tick()
	if s.game.Terminal() {
		s.logger.Info("game over",
			"reason", s.game.EndReason().String(),
			"length", s.game.Len(),
			"ticks", s.game.Ticks(),
		)
	}
}

// publish replaces any unread frame with the current one.
func (s *Session) publish() {
	f := Frame{
		Snapshot:   s.game.Snapshot(),
		Paused:     s.paused,
		Generation: s.generation,
	}
	select {
	case s.frames <- f:
		return
	default:
	}
	select {
	case <-s.frames:
	default:
	}
	select {
	case s.frames <- f:
	default:
	}
}

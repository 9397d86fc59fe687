package inspect

import (
	"log/slog"

	"github.com/mj1618/xtree/internal/model"
	"github.com/mj1618/xtree/internal/platform"
)

// Session holds the state of one inspection run: the atom cache and the
// registry of nodes built so far. Create one per run.
type Session struct {
	dir     platform.Directory
	logger  *slog.Logger
	symbols *SymbolResolver
	decoder *Decoder
	nodes   map[model.WindowID]*model.WindowNode
}

// NewSession starts a run against dir. A nil logger discards log output.
func NewSession(dir platform.Directory, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	symbols := NewSymbolResolver(dir, logger)
	return &Session{
		dir:     dir,
		logger:  logger,
		symbols: symbols,
		decoder: NewDecoder(dir, symbols),
		nodes:   make(map[model.WindowID]*model.WindowNode),
	}
}

// Symbols exposes the session's atom cache.
func (s *Session) Symbols() *SymbolResolver { return s.symbols }

// Decoder exposes the session's property decoder.
func (s *Session) Decoder() *Decoder { return s.decoder }

// Lookup returns the node built for window id, if any.
func (s *Session) Lookup(id model.WindowID) (*model.WindowNode, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// Len returns the number of windows built so far.
func (s *Session) Len() int { return len(s.nodes) }

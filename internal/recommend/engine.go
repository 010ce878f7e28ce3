package recommend

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultTemperature   = 0.7
	defaultMaxToolRounds = 8
	defaultModel         = "gpt-4o-mini"
)

// Options tune the tool-assisted recommendation path. Zero values pick the
// defaults above.
type Options struct {
	Model         string
	Temperature   float64
	MaxToolRounds int
}

// Engine is the recommendation and scheduling engine. It holds a store
// handle, an optional chat client for tool-assisted mode, and nothing else;
// every call builds its derived data from scratch.
type Engine struct {
	db   *gorm.DB
	chat ChatClient
	log  *zap.Logger

	model         string
	temperature   float64
	maxToolRounds int
}

// NewEngine builds an engine over the given store. A nil chat client means
// recommendations always take the deterministic path.
func NewEngine(db *gorm.DB, chat ChatClient, log *zap.Logger, opts Options) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.Temperature == 0 {
		opts.Temperature = defaultTemperature
	}
	if opts.MaxToolRounds == 0 {
		opts.MaxToolRounds = defaultMaxToolRounds
	}
	return &Engine{
		db:            db,
		chat:          chat,
		log:           log,
		model:         opts.Model,
		temperature:   opts.Temperature,
		maxToolRounds: opts.MaxToolRounds,
	}
}

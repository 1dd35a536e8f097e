package qt

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/kbukum/qtkit/logger"
)

// State is the phase of the process-wide facade lifecycle. There is no
// transition out of the terminal states; re-initialization within a
// process is not supported.
type State string

const (
	StateUnresolved State = "unresolved"
	StateResolving  State = "resolving"
	StateActive     State = "active"
	StateFailed     State = "failed"
)

var (
	loadOnce   sync.Once
	loadFacade *Facade
	loadErr    error
	loadState  atomic.Value
)

// Load builds the process-wide facade on first call and returns the same
// result, success or failure, on every subsequent call. Options are only
// honored by the call that performs initialization.
func Load(ctx context.Context, opts ...Option) (*Facade, error) {
	loadOnce.Do(func() {
		loadState.Store(StateResolving)
		loadFacade, loadErr = New(ctx, opts...)
		if loadErr != nil {
			loadState.Store(StateFailed)
			return
		}
		loadState.Store(StateActive)
	})
	return loadFacade, loadErr
}

// MustLoad is Load for applications that treat resolution failure as
// fatal, matching the all-or-nothing contract: it logs the error and
// exits the process.
func MustLoad(ctx context.Context, opts ...Option) *Facade {
	f, err := Load(ctx, opts...)
	if err != nil {
		logger.Get("qt").WithError(err).Fatal("binding resolution failed")
	}
	return f
}

// CurrentState returns the phase of the process-wide facade lifecycle.
func CurrentState() State {
	if v := loadState.Load(); v != nil {
		return v.(State)
	}
	return StateUnresolved
}

package httpapi

import (
	"sync"

	"github.com/solarsync/solar-sync/internal/solar"
)

// DragController adapts the gesture-scoped drag session to stateless HTTP
// calls. Each start supersedes any gesture still open, so a client that lost
// its end request cannot pin the timeline forever.
type DragController struct {
	mu      sync.Mutex
	session *solar.Session
	release func()
}

func NewDragController(session *solar.Session) *DragController {
	return &DragController{session: session}
}

// Start opens a new gesture, releasing any previous one first.
func (d *DragController) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.release != nil {
		d.release()
	}
	d.release = d.session.Begin()
}

// Move forwards a progress value to the active gesture.
func (d *DragController) Move(progress float64) {
	d.session.Move(progress)
}

// End closes the current gesture. Safe to call without one open.
func (d *DragController) End() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.release != nil {
		d.release()
		d.release = nil
	}
}

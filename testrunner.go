package morpheas

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Button string  `json:"button,omitempty"` // "left" (default) or "right"
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner replays a scripted sequence of pointer events against a World,
// one host frame per Step call, for automated interaction testing without a
// real host. Supported actions: "move", "press", "release", "click",
// "drag" (press, interpolate over frames, release), and "wait".
//
// Scripted coordinates are relative to the input window region passed to
// SetGeometry, exactly as a host would deliver them.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	window Rect
	frame  Frame

	// In-flight drag interpolation.
	dragging  bool
	dragLeft  int
	dragDX    float64
	dragDY    float64
	curX      float64
	curY      float64
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready to
// drive a World via Step.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps, frame: Frame{Focused: true}}, nil
}

// SetGeometry sets the input window region and draw frame used for every
// injected event and render pass.
func (r *TestRunner) SetGeometry(window Rect, frame Frame) {
	r.window = window
	r.frame = frame
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one host frame: it begins a frame on the world
// and injects the pointer events for the current script position.
func (r *TestRunner) Step(w *World, ctx Context) {
	if r.done {
		return
	}

	w.BeginFrame(r.frame)

	// Drain an in-flight drag before advancing the script.
	if r.dragging {
		if r.dragLeft > 0 {
			r.curX += r.dragDX
			r.curY += r.dragDY
			r.dragLeft--
			r.inject(w, ctx, Event{Type: EventMouseMove, X: r.curX, Y: r.curY})
			return
		}
		r.dragging = false
		r.inject(w, ctx, Event{Type: EventLeftMouse, Value: EventRelease, X: r.curX, Y: r.curY})
		return
	}

	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		r.curX, r.curY = st.X, st.Y
		r.inject(w, ctx, Event{Type: EventMouseMove, X: st.X, Y: st.Y})
	case "press":
		r.curX, r.curY = st.X, st.Y
		r.inject(w, ctx, Event{Type: buttonType(st.Button), Value: EventPress, X: st.X, Y: st.Y})
	case "release":
		r.curX, r.curY = st.X, st.Y
		r.inject(w, ctx, Event{Type: buttonType(st.Button), Value: EventRelease, X: st.X, Y: st.Y})
	case "click":
		r.curX, r.curY = st.X, st.Y
		r.inject(w, ctx, Event{Type: buttonType(st.Button), Value: EventPress, X: st.X, Y: st.Y})
		r.inject(w, ctx, Event{Type: buttonType(st.Button), Value: EventRelease, X: st.X, Y: st.Y})
	case "drag":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		r.curX, r.curY = st.FromX, st.FromY
		r.dragging = true
		r.dragLeft = frames
		r.dragDX = (st.ToX - st.FromX) / float64(frames)
		r.dragDY = (st.ToY - st.FromY) / float64(frames)
		r.inject(w, ctx, Event{Type: EventLeftMouse, Value: EventPress, X: st.FromX, Y: st.FromY})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	}
}

// Run drives the world until the script completes, beginning a frame and
// drawing each step, up to maxFrames as a runaway guard. Returns the number
// of frames executed.
func (r *TestRunner) Run(w *World, ctx Context, maxFrames int) int {
	frames := 0
	for !r.done && frames < maxFrames {
		r.Step(w, ctx)
		w.Draw(ctx)
		frames++
	}
	return frames
}

func (r *TestRunner) inject(w *World, ctx Context, ev Event) {
	w.OnEvent(ev, r.window, ctx)
}

func buttonType(name string) EventType {
	if name == "right" {
		return EventRightMouse
	}
	return EventLeftMouse
}

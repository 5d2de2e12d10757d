package core

// TouchPoint is one contact point of a touch event, in page pixels.
type TouchPoint struct {
	ID    int
	PageX float64
	PageY float64
}

// TouchEvent is what a host delivers on touch start, move and end.
// ChangedTouches lists the points whose state changed with this event.
type TouchEvent struct {
	ChangedTouches []TouchPoint
}

// NewTouchEvent creates an event with a single changed point.
func NewTouchEvent(id int, pageX, pageY float64) TouchEvent {
	return TouchEvent{
		ChangedTouches: []TouchPoint{{ID: id, PageX: pageX, PageY: pageY}},
	}
}

// First returns the first changed point and whether there was one.
func (e TouchEvent) First() (TouchPoint, bool) {
	if len(e.ChangedTouches) == 0 {
		return TouchPoint{}, false
	}
	return e.ChangedTouches[0], true
}

// TouchHandler receives touch events.
type TouchHandler func(TouchEvent)

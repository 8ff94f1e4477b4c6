// internal/event/types.go
package event

const (
	PointerMove  EventType = "PointerMove"  // Data: input.Point
	PointerLeave EventType = "PointerLeave" // курсор покинул окно
	TouchStart   EventType = "TouchStart"   // Data: input.Point
	TouchMove    EventType = "TouchMove"    // Data: input.Point
	TouchEnd     EventType = "TouchEnd"
	Resize       EventType = "Resize" // Data: input.Viewport
	Scroll       EventType = "Scroll" // Data: float64, wheel delta in pixels
	Click        EventType = "Click"  // Data: input.Point
)

// Package mouse maps pointer coordinates to widget actions.
//
// During a render pass a container registers one rectangular Region per
// clickable area it drew, each tagged with an arbitrary payload (usually a
// small action enum or message value). When a mouse event arrives, Hit
// resolves the event coordinates to the payload of the first matching
// region:
//
//	reg := mouse.NewRegistry[string]()
//
//	// render pass
//	reg.Clear()
//	reg.Register(mouse.Rect{X: 2, Y: 1, Width: 10, Height: 1}, "submit")
//	reg.Register(mouse.Rect{X: 14, Y: 1, Width: 10, Height: 1}, "cancel")
//
//	// event pass
//	if action, ok := reg.Hit(msg.X, msg.Y); ok {
//	    // dispatch action
//	}
//
// The registry never infers staleness: callers must Clear at the start of
// every render pass or regions from previous frames will keep matching.
//
// Overlapping regions resolve to whichever was registered first, not to the
// smallest or most recently drawn one. Containers that need "topmost wins"
// should register overlay regions before the content behind them.
//
// Payloads are stored and returned by value. A payload holding reference
// types (slices, maps) is shared with the registry until the next Clear;
// callers that need isolation should copy at the point of use.
package mouse

// Package binding connects a spin button to programs outside the terminal.
//
// A Hub is an http.Handler that upgrades requests to WebSocket connections.
// Every connected client receives a snapshot of the current value when it
// connects and a "value" message whenever the widget reports a change.
// Clients can send commands back:
//
//	{"type":"set","value":42}    external assignment, not clamped
//	{"type":"set","value":null}  clear the value
//	{"type":"increment"}         same as pressing the increment button
//	{"type":"decrement"}
//
// Commands are handed to the dispatch function given to NewHub. The hub never
// touches the widget itself; the caller forwards commands into the event loop
// that owns the widget (for Bubble Tea, tea.Program.Send), which keeps all
// widget mutations serialised. Values reach clients only through Publish,
// called from that event loop after a change or an applied "set", so clients
// see values in the order the widget stored them.
//
// # Discovery
//
// A running binding can be announced over mDNS as a "_spinbutton._tcp"
// service with Advertise, and found with a Scanner:
//
//	endpoints, err := binding.NewScanner().Scan(ctx)
//	for _, ep := range endpoints {
//	    fmt.Println(ep.WidgetID, ep.URL())
//	}
//
// # Thread Safety
//
// Hub and Server methods are safe for concurrent use. Each WebSocket
// connection is served by one reader and one writer goroutine. Client sends
// may come from any goroutine, but only one goroutine may call Next.
package binding

// Package event decodes the frames the window manager pushes after a
// subscription. A connection that subscribed is reserved for event
// delivery: the Listener drains it frame by frame, and request/response
// traffic happens on a separate connection.
package event

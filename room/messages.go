package room

// Conn is the transport seam. The network layer adapts a websocket to it;
// tests use fakes.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once per connection after the handshake.
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
}

// Leave: issued on disconnect.
type Leave struct {
	PlayerID string
}

// ClientMessage: a raw inbound frame from one player's connection.
type ClientMessage struct {
	PlayerID string
	Data     []byte
}

// Package elevnet publishes car arrivals over UDP so external tooling (see
// cmd/banktester) can follow a running bank. It sits outside the scheduling
// core: it is just another listener on the cars' notification hook.
package elevnet

import (
	"github.com/masterden/elevator-bank/internal/logger"
)

var Log = logger.For("elevnet")

const (
	BUFFER_LENGTH = 1024 //for receiving and transmitting

	EVENT_QUEUE_LENGTH = 64
)

// ArrivalPacket is the wire format for one arrival notification.
type ArrivalPacket struct {
	RunID      string `json:"run_id"`
	Identifier string `json:"identifier"`
	CarID      int    `json:"car_id"`
	Floor      int    `json:"floor"`
	Direction  string `json:"direction"`
}

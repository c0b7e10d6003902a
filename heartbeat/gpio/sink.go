// Package gpio provides a simulated is-alive sink: it has no real pin
// to drive, so it logs each toggle edge instead. A board port swaps
// this for real register writes without the kernel noticing, since
// both satisfy heartbeat.Driver.
package gpio

import "github.com/rs/zerolog"

// Sink logs a toggle edge each time Tick is called, alternating high
// and low the way a real GPIO blinker would.
type Sink struct {
	log  zerolog.Logger
	port string
	pin  uint8
	high bool
}

// NewSink returns a Sink bound to the given logical port/pin pair
// (spec.md §6: "is-alive feature toggle and its port/pin/period").
func NewSink(log zerolog.Logger, port string, pin uint8) *Sink {
	return &Sink{log: log, port: port, pin: pin}
}

func (s *Sink) Tick() {
	s.high = !s.high
	level := "low"
	if s.high {
		level = "high"
	}
	s.log.Debug().
		Str("port", s.port).
		Uint8("pin", s.pin).
		Str("level", level).
		Msg("heartbeat edge")
}

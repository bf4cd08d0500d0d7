package main

import (
	"flag"

	"github.com/rs/zerolog"

	"github.com/masterden/elevator-bank/internal/elevconfig"
	"github.com/masterden/elevator-bank/internal/elevnet"
	"github.com/masterden/elevator-bank/internal/logger"
)

var Logger = logger.GetLoggerConfigured(zerolog.DebugLevel)

// banktester tails the arrival feed of a bank started with -broadcast.
func main() {
	address := flag.String("address", elevconfig.DEFAULT_BROADCAST_ADDRESS, "UDP address the bank broadcasts arrivals on")
	flag.Parse()

	listen := elevnet.NewArrivalListen(*address)
	if err := listen.Start(); err != nil {
		Logger.Fatal().Msgf("Error starting arrival listener: %v", err)
	}
	defer listen.Stop()

	Logger.Info().Msgf("Listening for arrivals on %v", *address)

	for packet := range listen.Arrivals {
		Logger.Info().Msgf("Bank %s (run %s): elevator %d stopped at floor %d going %s",
			packet.Identifier, packet.RunID, packet.CarID, packet.Floor, packet.Direction)
	}
}

package main

import (
	"github.com/rs/zerolog"

	"github.com/masterden/elevator-bank/internal/elevbank"
	"github.com/masterden/elevator-bank/internal/elevcall"
	"github.com/masterden/elevator-bank/internal/elevconfig"
	"github.com/masterden/elevator-bank/internal/elevconsts"
	"github.com/masterden/elevator-bank/internal/elevnet"
	"github.com/masterden/elevator-bank/internal/elevutils"
	"github.com/masterden/elevator-bank/internal/logger"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

func main() {
	args := elevutils.ProcessCmdArgs()

	// Starting Programme
	Logger.Info().Msg("Starting Elevator Bank Simulator")

	config := elevconfig.Default()
	if args.ConfigPath != "" {
		loaded, err := elevconfig.Load(args.ConfigPath)
		if err != nil {
			Logger.Fatal().Msgf("Error loading config: %v", err)
		}
		config = loaded
	}
	if args.NumFloors != 0 {
		config.NumFloors = args.NumFloors
	}
	if args.NumCars != 0 {
		config.NumCars = args.NumCars
	}
	if args.Broadcast {
		config.BroadcastEnabled = true
	}

	building, err := elevbank.NewBuilding(config, args.Identifier)
	if err != nil {
		Logger.Fatal().Msgf("Error creating building: %v", err)
	}

	Logger.Info().Msgf("Bank: %v", building.MetaData().String())

	if config.BroadcastEnabled {
		broadcast := elevnet.NewArrivalBroadcast(building.MetaData())
		if err := broadcast.Start(config.BroadcastAddress); err != nil {
			Logger.Fatal().Msgf("Error starting arrival broadcast: %v", err)
		}
		defer broadcast.Stop()
		building.AttachListener(broadcast)
	}

	// Demo scenario: one hall call for each dispatch policy, one cabin call
	// per car, then a single processing cycle.
	calls := []elevcall.BankCall{
		elevcall.HallCall{Floor: 3, Direction: elevconsts.Up}.Wrap(),
		elevcall.HallCall{Floor: 4, Direction: elevconsts.Up}.Wrap(),
		elevcall.HallCall{Floor: 5, Direction: elevconsts.Down}.Wrap(),
		elevcall.CabinCall{CarID: 0, Floor: 7}.Wrap(),
		elevcall.CabinCall{CarID: 1, Floor: 8}.Wrap(),
		elevcall.CabinCall{CarID: 2, Floor: 9}.Wrap(),
		elevcall.ProcessCall{}.Wrap(),
	}

	for _, call := range calls {
		if err := building.Apply(call); err != nil {
			Logger.Error().Msgf("Error applying %s: %v", call.CallType(), err)
		}
	}

	Logger.Info().Msg("Simulation complete")
}

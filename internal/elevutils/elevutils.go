package elevutils

import (
	"flag"
	"fmt"
	"os"
)

// CmdArgs carries the parsed command line. Zero values mean "not given";
// the config file supplies those.
type CmdArgs struct {
	Identifier string
	ConfigPath string
	NumFloors  int
	NumCars    int
	Broadcast  bool
}

func ProcessCmdArgs() CmdArgs {
	help := flag.Bool("help", false, "Show Help Window")
	identifier := flag.String("id", "", "Set the identifier of the bank. Defaults to random string")
	configPath := flag.String("config", "", "Path to a YAML config file. Defaults to built-in values")
	numFloors := flag.Int("floors", 0, "Number of floors in the building. Overrides the config file")
	numCars := flag.Int("cars", 0, "Number of cars in the bank. Overrides the config file")
	broadcast := flag.Bool("broadcast", false, "Broadcast arrivals over UDP")

	flag.Parse()

	if *numFloors < 0 || *numCars < 0 {
		fmt.Println("Floor and car counts must be positive")
		os.Exit(1)
	}

	if *help {
		fmt.Println("Usage: ./elevatorbank [OPTIONS]")
		fmt.Println("Multi-car elevator bank simulator")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	return CmdArgs{
		Identifier: *identifier,
		ConfigPath: *configPath,
		NumFloors:  *numFloors,
		NumCars:    *numCars,
		Broadcast:  *broadcast,
	}
}

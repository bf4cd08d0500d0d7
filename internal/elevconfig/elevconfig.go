package elevconfig

import (
	"fmt"
	"os"

	"github.com/go-yaml/yaml"
)

const (
	DEFAULT_NUM_FLOORS = 10
	DEFAULT_NUM_CARS   = 3

	DEFAULT_BROADCAST_ADDRESS = "localhost:9999"
)

// Config is the bank's construction-time configuration. Values come from an
// optional YAML file; anything left unset keeps its default.
type Config struct {
	NumFloors        int    `yaml:"NumFloors"`
	NumCars          int    `yaml:"NumCars"`
	FixedFloors      []int  `yaml:"FixedFloors"`
	BroadcastEnabled bool   `yaml:"BroadcastEnabled"`
	BroadcastAddress string `yaml:"BroadcastAddress"`
}

func Default() Config {
	return Config{
		NumFloors:        DEFAULT_NUM_FLOORS,
		NumCars:          DEFAULT_NUM_CARS,
		FixedFloors:      []int{0, 5, 9},
		BroadcastEnabled: false,
		BroadcastAddress: DEFAULT_BROADCAST_ADDRESS,
	}
}

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("error reading config file: %v", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("error parsing config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate enforces the caller contract the core relies on: floor indices in
// range and at least one car.
func (c Config) Validate() error {
	if c.NumFloors < 2 {
		return fmt.Errorf("NumFloors must be at least 2, got %d", c.NumFloors)
	}
	if c.NumCars < 1 {
		return fmt.Errorf("NumCars must be at least 1, got %d", c.NumCars)
	}
	for _, floor := range c.FixedFloors {
		if floor < 0 || floor >= c.NumFloors {
			return fmt.Errorf("fixed floor %d outside building bounds [0, %d)", floor, c.NumFloors)
		}
	}
	if c.BroadcastEnabled && c.BroadcastAddress == "" {
		return fmt.Errorf("BroadcastAddress must be set when BroadcastEnabled is true")
	}
	return nil
}

package elevmetadata

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/xyproto/randomstring"

	"github.com/masterden/elevator-bank/internal/logger"
)

var Log = logger.For("elevmetadata")

const IDENTIFIER_DEFAULT_LEN = 10

// BankMetaData describes one simulation run of the elevator bank.
type BankMetaData struct {
	RunID      uuid.UUID `json:"run_id"`
	Identifier string    `json:"identifier"`
	NumFloors  int       `json:"num_floors"`
	NumCars    int       `json:"num_cars"`
}

func NewBankMetaData(identifier string, numFloors int, numCars int) *BankMetaData {
	if identifier == "" {
		identifier = randomstring.EnglishFrequencyString(IDENTIFIER_DEFAULT_LEN) //this should be random enough
		Log.Warn().Msgf("No bank identifier provided, generated random identifier \"%v\"", identifier)
	}

	return &BankMetaData{
		RunID:      uuid.New(),
		Identifier: identifier,
		NumFloors:  numFloors,
		NumCars:    numCars,
	}
}

func (bankMetaData *BankMetaData) String() string {
	jsonData, err := json.Marshal(bankMetaData)

	if err != nil {
		Log.Error().Msg("Error Serialising BankMetaData Object to JSON")
		return ""
	}
	return string(jsonData)
}

package elevnet

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/masterden/elevator-bank/internal/elevevent"
	"github.com/masterden/elevator-bank/internal/elevmetadata"
)

// ArrivalBroadcast is a car listener that serialises every arrival to JSON
// and writes it to a UDP address. Traversal events are not broadcast.
type ArrivalBroadcast struct {
	mutex        sync.Mutex                 //guards broadcasting
	broadcasting bool                       //internal variable
	packetCh     chan ArrivalPacket         //internal variable
	stopCh       chan struct{}              //internal variable
	conn         *net.UDPConn               //internal variable
	metaData     *elevmetadata.BankMetaData //internal variable
}

func NewArrivalBroadcast(metaData *elevmetadata.BankMetaData) *ArrivalBroadcast {
	return &ArrivalBroadcast{
		broadcasting: false,
		packetCh:     make(chan ArrivalPacket, EVENT_QUEUE_LENGTH),
		stopCh:       make(chan struct{}),
		metaData:     metaData,
	}
}

func (ab *ArrivalBroadcast) isBroadcasting() bool {
	ab.mutex.Lock()
	defer ab.mutex.Unlock()
	return ab.broadcasting
}

func (ab *ArrivalBroadcast) Start(address string) error {
	if ab.isBroadcasting() {
		return errors.New("arrivalBroadcast is already broadcasting")
	}
	if ab.metaData == nil {
		return errors.New("metaData is nil")
	}

	udpAddress, err := net.ResolveUDPAddr("udp", address)
	if err != nil {
		return fmt.Errorf("error resolving UDP Address: %v", err)
	}

	ab.conn, err = net.DialUDP("udp", nil, udpAddress)
	if err != nil {
		return fmt.Errorf("error creating UDP Socket: %v", err)
	}
	ab.conn.SetWriteBuffer(BUFFER_LENGTH)

	go func() {
		defer ab.conn.Close()

		for {
			select {
			case packet := <-ab.packetCh:
				jsonData, err := json.Marshal(packet)
				if err != nil {
					Log.Error().Msgf("Error marshalling JSON: %v", err)
					continue
				}
				_, err = ab.conn.Write(jsonData)
				if err != nil {
					Log.Error().Msgf("Error writing to UDP Socket: %v", err)
				}

				Log.Debug().Msgf("Sent Packet: %v", string(jsonData))

			case <-ab.stopCh:
				Log.Info().Msgf("Stopping Broadcasting task...")
				return
			}
		}
	}()

	ab.mutex.Lock()
	ab.broadcasting = true
	ab.mutex.Unlock()

	Log.Info().Msgf("Started To Broadcast Arrivals to %v", address)

	return nil
}

func (ab *ArrivalBroadcast) Stop() error {
	ab.mutex.Lock()
	if !ab.broadcasting {
		ab.mutex.Unlock()
		return errors.New("cannot stop broadcasting if ArrivalBroadcast is not broadcasting")
	}
	ab.broadcasting = false
	ab.mutex.Unlock()

	ab.stopCh <- struct{}{}

	return nil
}

// OnCarEvent queues an arrival for transmission. A full queue drops the
// packet rather than stalling the simulation.
func (ab *ArrivalBroadcast) OnCarEvent(event elevevent.CarEvent) {
	arrival, ok := event.Value.(elevevent.ArrivalEvent)
	if !ok {
		return
	}
	if !ab.isBroadcasting() {
		return
	}

	packet := ArrivalPacket{
		RunID:      ab.metaData.RunID.String(),
		Identifier: ab.metaData.Identifier,
		CarID:      arrival.CarID,
		Floor:      arrival.Floor,
		Direction:  arrival.Direction.String(),
	}

	select {
	case ab.packetCh <- packet:
	default:
		Log.Warn().Msgf("Broadcast queue full, dropping arrival packet for car %d", arrival.CarID)
	}
}

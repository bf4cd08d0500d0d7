package elevnet

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
)

// ArrivalListen receives arrival packets broadcast by a running bank.
type ArrivalListen struct {
	Arrivals chan ArrivalPacket //arrival packets found on the network

	mutex     sync.Mutex    //guards listening
	listening bool          //internal variable
	stopCh    chan struct{} //internal variable
	conn      *net.UDPConn  //internal variable
	address   string        //internal variable
}

func NewArrivalListen(address string) *ArrivalListen {
	return &ArrivalListen{
		Arrivals:  make(chan ArrivalPacket),
		listening: false,
		stopCh:    make(chan struct{}),
		conn:      nil,
		address:   address,
	}
}

func (al *ArrivalListen) isListening() bool {
	al.mutex.Lock()
	defer al.mutex.Unlock()
	return al.listening
}

func (al *ArrivalListen) Start() error {
	udpAddress, err := net.ResolveUDPAddr("udp", al.address)
	if err != nil {
		return fmt.Errorf("error resolving UDP Address: %v", err)
	}

	al.conn, err = net.ListenUDP("udp", udpAddress)
	if err != nil {
		return fmt.Errorf("error creating UDP Socket: %v", err)
	}
	listenBuffer := make([]byte, BUFFER_LENGTH)

	al.mutex.Lock()
	al.listening = true
	al.mutex.Unlock()

	go func() {
		for {
			n, _, err := al.conn.ReadFromUDP(listenBuffer)
			if err != nil {
				if !al.isListening() {
					return
				}
				Log.Error().Msgf("Error reading UDP message: %v", err)
				continue
			}
			var packet ArrivalPacket
			err = json.Unmarshal(listenBuffer[:n], &packet)
			if err != nil {
				Log.Error().Msgf("Error deserialising JSON: %v", err)
			} else {
				al.Arrivals <- packet
			}
		}
	}()

	go func() {
		defer al.conn.Close()
		<-al.stopCh
		Log.Info().Msgf("Stopping Listening task...")
	}()

	return nil
}

func (al *ArrivalListen) Stop() error {
	al.mutex.Lock()
	if !al.listening {
		al.mutex.Unlock()
		return errors.New("cannot stop listening if ArrivalListen is not listening")
	}
	al.listening = false
	al.mutex.Unlock()

	al.stopCh <- struct{}{}

	return nil
}

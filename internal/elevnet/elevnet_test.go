package elevnet

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/masterden/elevator-bank/internal/elevconsts"
	"github.com/masterden/elevator-bank/internal/elevevent"
	"github.com/masterden/elevator-bank/internal/elevmetadata"
	"github.com/masterden/elevator-bank/internal/logger"
)

func TestBroadcastListenRoundTrip(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	address := "127.0.0.1:19999"
	listeningTimeout := 2 * time.Second

	listen := NewArrivalListen(address)
	if err := listen.Start(); err != nil {
		t.Fatalf("Listen.Start() = %v, expected nil", err)
	}
	defer listen.Stop()

	metaData := elevmetadata.NewBankMetaData("uwvvblrtct", 10, 3)
	broadcast := NewArrivalBroadcast(metaData)
	if err := broadcast.Start(address); err != nil {
		t.Fatalf("Broadcast.Start() = %v, expected nil", err)
	}
	defer broadcast.Stop()

	broadcast.OnCarEvent(elevevent.ArrivalEvent{CarID: 2, Floor: 5, Direction: elevconsts.Up}.Wrap())

	timer := time.NewTimer(listeningTimeout)
	defer timer.Stop()

	select {
	case packet := <-listen.Arrivals:
		if packet.CarID != 2 || packet.Floor != 5 || packet.Direction != "Up" {
			t.Errorf("Received packet %+v, expected car 2 at floor 5 going Up", packet)
		}
		if packet.Identifier != metaData.Identifier {
			t.Errorf("Packet identifier = %s, expected %s", packet.Identifier, metaData.Identifier)
		}
	case <-timer.C:
		t.Errorf("Timed out waiting for an arrival packet on the network")
	}
}

func TestStopWhileEventsArrive(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	address := "127.0.0.1:19998"
	metaData := elevmetadata.NewBankMetaData("uwvvblrtct", 10, 3)
	broadcast := NewArrivalBroadcast(metaData)
	if err := broadcast.Start(address); err != nil {
		t.Fatalf("Broadcast.Start() = %v, expected nil", err)
	}

	// Fire events from another goroutine while Stop runs; the broadcasting
	// state must stay race-free and late events must be dropped quietly.
	var waitGroup sync.WaitGroup
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		for i := 0; i < 100; i++ {
			broadcast.OnCarEvent(elevevent.ArrivalEvent{CarID: 0, Floor: i % 10}.Wrap())
		}
	}()

	if err := broadcast.Stop(); err != nil {
		t.Errorf("Broadcast.Stop() = %v, expected nil", err)
	}
	waitGroup.Wait()

	broadcast.OnCarEvent(elevevent.ArrivalEvent{CarID: 1, Floor: 2}.Wrap())
	if err := broadcast.Stop(); err == nil {
		t.Errorf("Second Stop() = nil, expected an error")
	}
}

func TestBroadcastIgnoresTraversals(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	metaData := elevmetadata.NewBankMetaData("uwvvblrtct", 10, 3)
	broadcast := NewArrivalBroadcast(metaData)

	// Not started: traversal and arrival alike must be dropped, not panic.
	broadcast.OnCarEvent(elevevent.TraversalEvent{CarID: 0, Floor: 1}.Wrap())
	broadcast.OnCarEvent(elevevent.ArrivalEvent{CarID: 0, Floor: 2}.Wrap())

	if err := broadcast.Stop(); err == nil {
		t.Errorf("Stop() before Start() = nil, expected an error")
	}
}

package services_test

import (
	"testing"

	"digitaltailor-backend/services"

	"github.com/stretchr/testify/assert"
)

func TestHubCoalescesAndUnsubscribes(t *testing.T) {
	hub := services.NewHub()
	ch, cancel := hub.Subscribe()
	assert.Equal(t, 1, hub.Subscribers())

	hub.Publish()
	hub.Publish()
	waitSignal(t, ch)
	select {
	case <-ch:
		t.Fatal("signals should coalesce")
	default:
	}

	cancel()
	cancel()
	assert.Equal(t, 0, hub.Subscribers())
	hub.Publish()
}

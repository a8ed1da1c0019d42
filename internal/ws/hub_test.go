package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyRefreshBroadcastsTypedEnvelope(t *testing.T) {
	hub := NewHub()

	go hub.NotifyRefresh(RefreshMessage{
		Event:   "transactions_added",
		PartyID: "party-1",
		Count:   3,
	})

	raw := <-hub.Broadcast

	var msg RefreshMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "refresh", msg.Type)
	assert.Equal(t, "transactions_added", msg.Event)
	assert.Equal(t, "party-1", msg.PartyID)
	assert.Equal(t, 3, msg.Count)
}

func TestNotifyRefreshOverridesCallerType(t *testing.T) {
	hub := NewHub()

	go hub.NotifyRefresh(RefreshMessage{Type: "spoofed", Event: "parties_changed"})

	raw := <-hub.Broadcast

	var msg RefreshMessage
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "refresh", msg.Type)
}

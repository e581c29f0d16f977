package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_StartsInLightMode(t *testing.T) {
	service := NewService()
	assert.False(t, service.DarkMode())
}

func TestToggle_FlipsAndNotifies(t *testing.T) {
	service := NewService()

	var got []bool
	service.Subscribe(func(dark bool) { got = append(got, dark) })

	assert.True(t, service.Toggle())
	assert.False(t, service.Toggle())

	require.Len(t, got, 2)
	assert.Equal(t, []bool{true, false}, got)
}

func TestSet_SameValueDoesNotNotify(t *testing.T) {
	service := NewService()

	calls := 0
	service.Subscribe(func(bool) { calls++ })

	service.Set(false)
	assert.Equal(t, 0, calls)

	service.Set(true)
	assert.Equal(t, 1, calls)
	assert.True(t, service.DarkMode())

	service.Set(true)
	assert.Equal(t, 1, calls)
}

func TestSubscribe_UnsubscribeStopsNotifications(t *testing.T) {
	service := NewService()

	calls := 0
	unsubscribe := service.Subscribe(func(bool) { calls++ })

	service.Toggle()
	require.Equal(t, 1, calls)

	unsubscribe()
	service.Toggle()
	assert.Equal(t, 1, calls)
}

func TestSubscribe_MultipleListeners(t *testing.T) {
	service := NewService()

	first, second := 0, 0
	service.Subscribe(func(bool) { first++ })
	service.Subscribe(func(bool) { second++ })

	service.Toggle()
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

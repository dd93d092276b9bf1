package registry

import (
	"testing"

	"github.com/iwtcode/avGateway/internal/domain/models"
	"github.com/iwtcode/avGateway/internal/middleware/logging"
	"github.com/iwtcode/avGateway/internal/services/hardware"
	"github.com/stretchr/testify/require"
)

func testLogger() *logging.Logger {
	return logging.NewLogger(&logging.Config{Level: "ERROR"}, "TEST")
}

func TestRegisterByName(t *testing.T) {
	reg := New()
	events := hardware.NewEventSource()
	btnA := hardware.NewSimButton("BtnA", events)
	btnB := hardware.NewSimButton("BtnB", events)

	reg.Register(models.DomainButton, []any{btnB, btnA}, testLogger())

	obj, err := reg.Lookup(models.DomainButton, "BtnA")
	require.NoError(t, err)
	require.Same(t, btnA, obj)

	require.Equal(t, []string{"BtnA", "BtnB"}, reg.Keys(models.DomainButton))
}

func TestRegisterByDeviceAlias(t *testing.T) {
	reg := New()
	proc := hardware.NewSimProcessor("CP1")

	reg.Register(models.DomainProcessor, []any{proc}, testLogger())

	obj, err := reg.Lookup(models.DomainProcessor, "CP1")
	require.NoError(t, err)
	require.Same(t, proc, obj)
}

func TestRegisterByPortAndHostname(t *testing.T) {
	reg := New()
	relay := hardware.NewSimRelay("CP1", "RLY1")
	eth := hardware.NewSimEthernet("projector", 4352, "TCP")

	reg.Register(models.DomainRelay, []any{relay}, testLogger())
	reg.Register(models.DomainEthernet, []any{eth}, testLogger())

	obj, err := reg.Lookup(models.DomainRelay, "RLY1")
	require.NoError(t, err)
	require.Same(t, relay, obj)

	obj, err = reg.Lookup(models.DomainEthernet, "projector")
	require.NoError(t, err)
	require.Same(t, eth, obj)
}

func TestLookupErrorListsValidKeys(t *testing.T) {
	reg := New()
	events := hardware.NewEventSource()
	reg.Register(models.DomainButton, []any{
		hardware.NewSimButton("BtnB", events),
		hardware.NewSimButton("BtnA", events),
	}, testLogger())

	_, err := reg.Lookup(models.DomainButton, "BtnC")
	require.Error(t, err)
	// Допустимые ключи перечисляются отсортированными.
	require.Equal(t, "BtnC not in Button map, valid options are: [BtnA, BtnB]", err.Error())
}

func TestLookupUnknownDomain(t *testing.T) {
	reg := New()
	_, err := reg.Lookup(models.DomainKnob, "K1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown domain")
}

func TestRegisterUnresolvableElements(t *testing.T) {
	reg := New()

	// Элемент без единого атрибута идентификации: домен регистрируется пустым.
	type anonymous struct{}
	reg.Register(models.DomainKnob, []any{anonymous{}}, testLogger())

	require.True(t, reg.HasDomain(models.DomainKnob))
	require.Empty(t, reg.Keys(models.DomainKnob))
}

func TestRegisterEmptyCollection(t *testing.T) {
	reg := New()
	reg.Register(models.DomainLabel, nil, testLogger())

	require.True(t, reg.HasDomain(models.DomainLabel))
	require.Empty(t, reg.Keys(models.DomainLabel))
	require.Empty(t, reg.Handles(models.DomainLabel))
}

func TestHandlesFollowSortedKeyOrder(t *testing.T) {
	reg := New()
	events := hardware.NewEventSource()
	btnA := hardware.NewSimButton("BtnA", events)
	btnB := hardware.NewSimButton("BtnB", events)

	reg.Register(models.DomainButton, []any{btnB, btnA}, testLogger())

	handles := reg.Handles(models.DomainButton)
	require.Len(t, handles, 2)
	require.Same(t, btnA, handles[0])
	require.Same(t, btnB, handles[1])
}

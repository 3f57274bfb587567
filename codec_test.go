package saunum

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDecodeSnapshot(t *testing.T) {
	regs := []uint16{
		1,      // session active
		1,      // sauna type 2
		90,     // sauna duration
		15,     // fan duration
		80,     // target temperature
		2,      // fan medium
		1,      // light on
		0x02D5, // 72.5 °C
		3600,   // on time
		2,      // heater elements
		0,      // door closed
		0,      // no alarms
	}

	got, err := decodeSnapshot(regs)
	require.NoError(t, err)

	want := Snapshot{
		SessionActive:      true,
		SaunaType:          SaunaType2,
		SaunaDuration:      90,
		FanDuration:        15,
		TargetTemperature:  80,
		FanSpeed:           FanMedium,
		LightOn:            true,
		CurrentTemperature: 72.5,
		OnTime:             time.Hour,
		HeaterElements:     2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, got.HeaterOn())
}

func TestDecodeSnapshot_WrongLength(t *testing.T) {
	for _, n := range []int{0, 1, 11, 13, 24} {
		_, err := decodeSnapshot(make([]uint16, n))
		if !errors.Is(err, ErrInvalidData) {
			t.Fatalf("length %d: got %v, want ErrInvalidData", n, err)
		}
		if !errors.Is(err, Err) {
			t.Fatalf("length %d: error does not match the root sentinel", n)
		}
	}
}

func TestDecodeTemperature_SignExtension(t *testing.T) {
	cases := []struct {
		raw  uint16
		want float64
	}{
		{0x0000, 0},
		{0x02D5, 72.5},
		{0xFFCE, -5.0}, // two's complement of -50
		{0xFFFF, -0.1},
		{0xFF06, -25.0},
	}
	for _, c := range cases {
		if got := decodeTemperature(c.raw); got != c.want {
			t.Errorf("raw 0x%04X: got %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestDecode_UnknownEnumValuesPreserved(t *testing.T) {
	regs := make([]uint16, regCount)
	regs[regSaunaType] = 9
	regs[regFanSpeed] = 7

	snap, err := decodeSnapshot(regs)
	require.NoError(t, err)

	assert.Equal(t, SaunaType(9), snap.SaunaType)
	assert.False(t, snap.SaunaType.Known())
	assert.Equal(t, "unknown(9)", snap.SaunaType.String())

	assert.Equal(t, FanSpeed(7), snap.FanSpeed)
	assert.False(t, snap.FanSpeed.Known())
	assert.Equal(t, "unknown(7)", snap.FanSpeed.String())
}

func TestDecodeAlarms_IndependentBits(t *testing.T) {
	regs := make([]uint16, regCount)
	regs[regAlarms] = alarmDoorSensor | alarmInternalOvertemp | alarmSensorOpen

	snap, err := decodeSnapshot(regs)
	require.NoError(t, err)

	want := Alarms{DoorSensor: true, InternalOvertemp: true, SensorOpen: true}
	if diff := cmp.Diff(want, snap.Alarms); diff != "" {
		t.Errorf("alarms mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, snap.Alarms.Any())

	regs[regAlarms] = 0
	snap, err = decodeSnapshot(regs)
	require.NoError(t, err)
	assert.False(t, snap.Alarms.Any())
}

func TestDecode_IsTotalOverFullBlocks(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		regs := make([]uint16, regCount)
		for i := range regs {
			regs[i] = rapid.Uint16().Draw(t, fmt.Sprintf("reg%d", i))
		}
		if _, err := decodeSnapshot(regs); err != nil {
			t.Fatalf("decode failed on a full-length block: %v", err)
		}
	})
}

func TestSettableFieldsRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		target := rapid.IntRange(MinTemperature, MaxTemperature).Draw(t, "target")
		if rapid.Bool().Draw(t, "targetDefault") {
			target = 0
		}

		regs := make([]uint16, regCount)
		regs[regSessionActive] = encodeBool(rapid.Bool().Draw(t, "session"))
		regs[regSaunaType] = uint16(rapid.IntRange(0, int(SaunaType3)).Draw(t, "saunaType"))
		regs[regSaunaDuration] = uint16(rapid.IntRange(0, MaxSaunaDuration).Draw(t, "saunaDuration"))
		regs[regFanDuration] = uint16(rapid.IntRange(0, MaxFanDuration).Draw(t, "fanDuration"))
		regs[regTargetTemp] = uint16(target)
		regs[regFanSpeed] = uint16(rapid.IntRange(0, int(FanHigh)).Draw(t, "fanSpeed"))
		regs[regLight] = encodeBool(rapid.Bool().Draw(t, "light"))

		snap, err := decodeSnapshot(regs)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		// Re-encoding every settable field must reproduce the words
		// that were decoded.
		assert.Equal(t, regs[regSessionActive], encodeBool(snap.SessionActive))
		assert.Equal(t, regs[regSaunaType], uint16(snap.SaunaType))
		assert.Equal(t, regs[regSaunaDuration], uint16(snap.SaunaDuration))
		assert.Equal(t, regs[regFanDuration], uint16(snap.FanDuration))
		assert.Equal(t, regs[regTargetTemp], uint16(snap.TargetTemperature))
		assert.Equal(t, regs[regFanSpeed], uint16(snap.FanSpeed))
		assert.Equal(t, regs[regLight], encodeBool(snap.LightOn))
	})
}

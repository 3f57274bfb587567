package saunum

import (
	"fmt"
	"time"
)

// SaunaType selects the controller's climate program. The type is
// integer-backed so a value outside the documented program set survives
// a round trip unchanged instead of being discarded.
type SaunaType uint16

const (
	SaunaType1 SaunaType = 0
	SaunaType2 SaunaType = 1
	SaunaType3 SaunaType = 2
)

// Known reports whether t is one of the documented programs.
func (t SaunaType) Known() bool { return t <= SaunaType3 }

func (t SaunaType) String() string {
	switch t {
	case SaunaType1:
		return "type-1"
	case SaunaType2:
		return "type-2"
	case SaunaType3:
		return "type-3"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(t))
	}
}

// FanSpeed is the ventilation setting. Like SaunaType it keeps raw
// out-of-domain values readable; Known reports domain membership.
type FanSpeed uint16

const (
	FanOff    FanSpeed = 0
	FanLow    FanSpeed = 1
	FanMedium FanSpeed = 2
	FanHigh   FanSpeed = 3
)

// Known reports whether s is one of the documented speeds.
func (s FanSpeed) Known() bool { return s <= FanHigh }

func (s FanSpeed) String() string {
	switch s {
	case FanOff:
		return "off"
	case FanLow:
		return "low"
	case FanMedium:
		return "medium"
	case FanHigh:
		return "high"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(s))
	}
}

// Alarms is the decoded alarm status word. Bits are independent;
// several alarms can be active at once.
type Alarms struct {
	DoorOpenDuringHeat bool // door opened while heating
	DoorSensor         bool // door open too long
	ThermalCutoff      bool // thermal cutoff tripped
	InternalOvertemp   bool // controller internals overheating
	SensorShort        bool // temperature sensor shorted
	SensorOpen         bool // temperature sensor not connected
}

// Any reports whether at least one alarm is active.
func (a Alarms) Any() bool {
	return a.DoorOpenDuringHeat || a.DoorSensor || a.ThermalCutoff ||
		a.InternalOvertemp || a.SensorShort || a.SensorOpen
}

// Snapshot is the controller state captured in one read. It contains
// no logic and no memory of the past beyond current state; every field
// is always populated because the read is all-or-nothing.
type Snapshot struct {
	SessionActive     bool
	SaunaType         SaunaType
	SaunaDuration     int // minutes, 0 = device default
	FanDuration       int // minutes, 0 = device default
	TargetTemperature int // °C, 0 = device default
	FanSpeed          FanSpeed
	LightOn           bool

	CurrentTemperature float64       // °C, 0.1 resolution
	OnTime             time.Duration // time since controller power-up
	HeaterElements     int           // active heater elements, 0..3
	DoorOpen           bool
	Alarms             Alarms
}

// HeaterOn reports whether any heater element is drawing power.
func (s Snapshot) HeaterOn() bool { return s.HeaterElements > 0 }

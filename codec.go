package saunum

import (
	"fmt"
	"time"
)

// decodeSnapshot converts one raw state block into a Snapshot.
// Layout is protocol-locked. No IO. No side effects.
//
// Decoding is total over blocks of the correct length: unknown enum
// values and out-of-range counts are carried through as-is rather than
// rejected, so a firmware update cannot brick reads.
func decodeSnapshot(regs []uint16) (Snapshot, error) {
	if len(regs) != int(regCount) {
		return Snapshot{}, fmt.Errorf("%w: state block has %d registers, want %d",
			ErrInvalidData, len(regs), regCount)
	}

	return Snapshot{
		SessionActive:     regs[regSessionActive] != 0,
		SaunaType:         SaunaType(regs[regSaunaType]),
		SaunaDuration:     int(regs[regSaunaDuration]),
		FanDuration:       int(regs[regFanDuration]),
		TargetTemperature: int(regs[regTargetTemp]),
		FanSpeed:          FanSpeed(regs[regFanSpeed]),
		LightOn:           regs[regLight] != 0,

		CurrentTemperature: decodeTemperature(regs[regCurrentTemp]),
		OnTime:             time.Duration(regs[regOnTime]) * time.Second,
		HeaterElements:     int(regs[regHeaterElements]),
		DoorOpen:           regs[regDoorOpen] != 0,
		Alarms:             decodeAlarms(regs[regAlarms]),
	}, nil
}

// decodeTemperature expands a scaled two's-complement word into °C.
// The register is signed: reading it as unsigned turns every
// below-zero measurement into a value near 6500 °C.
func decodeTemperature(raw uint16) float64 {
	return float64(int16(raw)) / tempScale
}

func decodeAlarms(raw uint16) Alarms {
	return Alarms{
		DoorOpenDuringHeat: raw&alarmDoorOpenDuringHeat != 0,
		DoorSensor:         raw&alarmDoorSensor != 0,
		ThermalCutoff:      raw&alarmThermalCutoff != 0,
		InternalOvertemp:   raw&alarmInternalOvertemp != 0,
		SensorShort:        raw&alarmSensorShort != 0,
		SensorOpen:         raw&alarmSensorOpen != 0,
	}
}

// ---- WRITE-SIDE ENCODING ----
// Settable fields are stored in device units already (°C, minutes,
// enum ordinals), so their encoding is the plain word value. Booleans
// are the one exception.

func encodeBool(v bool) uint16 {
	if v {
		return 1
	}
	return 0
}

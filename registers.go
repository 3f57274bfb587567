package saunum

// Holding register layout of the Saunum controller state block.
// These values define the device protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// regBase is the first holding register of the state block.
const regBase uint16 = 0

// regCount is the fixed length of the state block in 16-bit words.
// A read of any other length is a protocol violation.
const regCount uint16 = 12

// ---- REGISTER ADDRESSES ----

const (
	regSessionActive  uint16 = 0  // rw: nonzero = session running
	regSaunaType      uint16 = 1  // rw: climate program, see SaunaType
	regSaunaDuration  uint16 = 2  // rw: minutes, 0 = device default
	regFanDuration    uint16 = 3  // rw: minutes, 0 = device default
	regTargetTemp     uint16 = 4  // rw: °C, 0 = device default
	regFanSpeed       uint16 = 5  // rw: see FanSpeed
	regLight          uint16 = 6  // rw: nonzero = on
	regCurrentTemp    uint16 = 7  // ro: int16, 0.1 °C units
	regOnTime         uint16 = 8  // ro: seconds since power-up
	regHeaterElements uint16 = 9  // ro: active heater elements, 0..3
	regDoorOpen       uint16 = 10 // ro: nonzero = open
	regAlarms         uint16 = 11 // ro: alarm bitfield, bits 0..5
)

// ---- ALARM BITS ----

const (
	alarmDoorOpenDuringHeat uint16 = 1 << 0
	alarmDoorSensor         uint16 = 1 << 1
	alarmThermalCutoff      uint16 = 1 << 2
	alarmInternalOvertemp   uint16 = 1 << 3
	alarmSensorShort        uint16 = 1 << 4
	alarmSensorOpen         uint16 = 1 << 5
)

// ---- FIELD LIMITS ----
// Consulted by both the codec and the validator. No other place in the
// package may carry these numbers.

const (
	// MinTemperature and MaxTemperature bound the settable target
	// range in °C. Zero is also accepted and restores the device
	// default.
	MinTemperature = 40
	MaxTemperature = 100

	// DefaultTemperature is the controller's factory target in °C.
	DefaultTemperature = 80

	// MaxSaunaDuration is the longest settable session in minutes.
	MaxSaunaDuration = 720

	// DefaultDuration is the controller's factory session length in
	// minutes.
	DefaultDuration = 120

	// MaxFanDuration is the longest settable fan run in minutes.
	MaxFanDuration = 30
)

// tempScale converts between current-temperature register units and °C.
const tempScale = 10

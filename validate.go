package saunum

import "fmt"

// Pre-write validation. Declarative checks against the register map
// limits only, no transport calls: a bad value must fail before the
// network is touched.

func validateTargetTemperature(celsius int) error {
	if celsius == 0 {
		return nil
	}
	if celsius < MinTemperature || celsius > MaxTemperature {
		return fmt.Errorf("%w: target temperature %d°C out of range (0 or %d..%d)",
			ErrInvalidValue, celsius, MinTemperature, MaxTemperature)
	}
	return nil
}

func validateSaunaDuration(minutes int) error {
	if minutes < 0 || minutes > MaxSaunaDuration {
		return fmt.Errorf("%w: sauna duration %d min out of range (0..%d)",
			ErrInvalidValue, minutes, MaxSaunaDuration)
	}
	return nil
}

func validateFanDuration(minutes int) error {
	if minutes < 0 || minutes > MaxFanDuration {
		return fmt.Errorf("%w: fan duration %d min out of range (0..%d)",
			ErrInvalidValue, minutes, MaxFanDuration)
	}
	return nil
}

func validateFanSpeed(speed FanSpeed) error {
	if !speed.Known() {
		return fmt.Errorf("%w: fan speed %d not in %v..%v",
			ErrInvalidValue, uint16(speed), FanOff, FanHigh)
	}
	return nil
}

func validateSaunaType(typ SaunaType) error {
	if !typ.Known() {
		return fmt.Errorf("%w: sauna type %d not in %v..%v",
			ErrInvalidValue, uint16(typ), SaunaType1, SaunaType3)
	}
	return nil
}

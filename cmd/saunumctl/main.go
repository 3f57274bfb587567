// Command saunumctl drives a Saunum sauna controller from the shell.
//
// Usage:
//
//	saunumctl <config.yaml> <command> [arg]
//
// Commands:
//
//	status                        read and print the controller state
//	watch                         poll state until interrupted
//	start | stop                  session control
//	set-temp <celsius>            0 or 40..100
//	set-duration <minutes>        0..720
//	set-fan-duration <minutes>    0..30
//	set-fan-speed <off|low|medium|high>
//	set-type <1|2|3>              climate program
//	light <on|off>
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/tervik/saunum"
	"github.com/tervik/saunum/internal/config"
	"github.com/tervik/saunum/internal/logger"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: saunumctl <config.yaml> <command> [arg]")
		os.Exit(2)
	}
	cfgPath, command := os.Args[1], os.Args[2]
	args := os.Args[3:]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config validation failed: %v\n", err)
		os.Exit(1)
	}
	config.Normalize(cfg)

	log := logger.New(cfg.Log.Level)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ccfg := saunum.Config{
		Host:        cfg.Sauna.Host,
		Port:        cfg.Sauna.Port,
		UnitID:      cfg.Sauna.UnitID,
		Timeout:     time.Duration(cfg.Sauna.TimeoutMs) * time.Millisecond,
		WriteSettle: time.Duration(cfg.Sauna.WriteSettleMs) * time.Millisecond,
		Logger:      log,
	}

	interval := time.Duration(cfg.Poll.IntervalMs) * time.Millisecond

	err = saunum.WithClient(ctx, ccfg, func(c *saunum.Client) error {
		return run(ctx, c, log, command, args, interval)
	})
	if err != nil {
		log.Error("command failed", zap.String("command", command), zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, c *saunum.Client, log *zap.Logger, command string, args []string, interval time.Duration) error {
	switch command {
	case "status":
		snap, err := c.GetData(ctx)
		if err != nil {
			return err
		}
		printSnapshot(snap)
		return nil

	case "watch":
		return watch(ctx, c, log, interval)

	case "start":
		return c.StartSession(ctx)

	case "stop":
		return c.StopSession(ctx)

	case "set-temp":
		v, err := intArg(command, args)
		if err != nil {
			return err
		}
		return c.SetTargetTemperature(ctx, v)

	case "set-duration":
		v, err := intArg(command, args)
		if err != nil {
			return err
		}
		return c.SetSaunaDuration(ctx, v)

	case "set-fan-duration":
		v, err := intArg(command, args)
		if err != nil {
			return err
		}
		return c.SetFanDuration(ctx, v)

	case "set-fan-speed":
		speed, err := fanSpeedArg(args)
		if err != nil {
			return err
		}
		return c.SetFanSpeed(ctx, speed)

	case "set-type":
		typ, err := saunaTypeArg(args)
		if err != nil {
			return err
		}
		return c.SetSaunaType(ctx, typ)

	case "light":
		on, err := boolArg(args)
		if err != nil {
			return err
		}
		return c.SetLight(ctx, on)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// watch polls the controller on a fixed interval until the context is
// canceled. Faults are logged, not fatal; a dropped session is
// reconnected on the next tick.
func watch(ctx context.Context, c *saunum.Client, log *zap.Logger, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	poll := func() {
		if !c.IsConnected() {
			if err := c.Connect(ctx); err != nil {
				log.Warn("reconnect failed", zap.Error(err))
				return
			}
		}
		snap, err := c.GetData(ctx)
		if err != nil {
			log.Warn("poll failed", zap.Error(err))
			return
		}
		printSnapshot(snap)
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			poll()
		}
	}
}

func printSnapshot(s *saunum.Snapshot) {
	fmt.Printf("session active:      %v\n", s.SessionActive)
	fmt.Printf("sauna type:          %v\n", s.SaunaType)
	fmt.Printf("sauna duration:      %d min\n", s.SaunaDuration)
	fmt.Printf("fan duration:        %d min\n", s.FanDuration)
	fmt.Printf("target temperature:  %d °C\n", s.TargetTemperature)
	fmt.Printf("fan speed:           %v\n", s.FanSpeed)
	fmt.Printf("light on:            %v\n", s.LightOn)
	fmt.Printf("current temperature: %.1f °C\n", s.CurrentTemperature)
	fmt.Printf("on time:             %v\n", s.OnTime)
	fmt.Printf("heater elements:     %d/3 (heating: %v)\n", s.HeaterElements, s.HeaterOn())
	fmt.Printf("door open:           %v\n", s.DoorOpen)
	if s.Alarms.Any() {
		fmt.Printf("ALARMS: %+v\n", s.Alarms)
	}
}

func intArg(command string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s: exactly one numeric argument required", command)
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", command, args[0])
	}
	return v, nil
}

func fanSpeedArg(args []string) (saunum.FanSpeed, error) {
	if len(args) != 1 {
		return 0, errors.New("set-fan-speed: one of off|low|medium|high required")
	}
	switch args[0] {
	case "off":
		return saunum.FanOff, nil
	case "low":
		return saunum.FanLow, nil
	case "medium":
		return saunum.FanMedium, nil
	case "high":
		return saunum.FanHigh, nil
	default:
		return 0, fmt.Errorf("set-fan-speed: unknown speed %q", args[0])
	}
}

func saunaTypeArg(args []string) (saunum.SaunaType, error) {
	if len(args) != 1 {
		return 0, errors.New("set-type: one of 1|2|3 required")
	}
	switch args[0] {
	case "1":
		return saunum.SaunaType1, nil
	case "2":
		return saunum.SaunaType2, nil
	case "3":
		return saunum.SaunaType3, nil
	default:
		return 0, fmt.Errorf("set-type: unknown sauna type %q", args[0])
	}
}

func boolArg(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("light: on or off required")
	}
	switch args[0] {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("light: expected on or off, got %q", args[0])
	}
}

package internal

import (
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PowerButtonConfig describes how the device power button is read and what
// a short or long press does.
type PowerButtonConfig struct {
	ButtonCode      uint16
	DevicePath      string
	ShortPressMax   time.Duration
	CoolDownTime    time.Duration
	SuspendScript   string
	ShutdownCommand string
}

type powerButton struct {
	config     PowerButtonConfig
	device     *evdev.InputDevice
	pressedAt  *atomic.Time
	busy       *atomic.Bool
	lastAction *atomic.Time
	stopped    *atomic.Bool
}

// Suspended is true while the suspend script runs. Components use it to
// skip drawing.
var Suspended = atomic.NewBool(false)

// powerButtonHandler reads power button events until the device is closed.
func powerButtonHandler(wg *sync.WaitGroup, pbc PowerButtonConfig, started chan<- *powerButton) {
	defer wg.Done()

	device, err := evdev.Open(pbc.DevicePath)
	if err != nil {
		GetInternalLogger().Error("Failed to open power button device", "path", pbc.DevicePath, "error", err)
		started <- nil
		return
	}

	pb := &powerButton{
		config:     pbc,
		device:     device,
		pressedAt:  atomic.NewTime(time.Time{}),
		busy:       atomic.NewBool(false),
		lastAction: atomic.NewTime(time.Time{}),
		stopped:    atomic.NewBool(false),
	}
	started <- pb

	for {
		ev, err := device.ReadOne()
		if err != nil {
			if !pb.stopped.Load() {
				GetInternalLogger().Error("Power button read failed", "error", err)
			}
			return
		}
		if ev.Type != evdev.EV_KEY || uint16(ev.Code) != pbc.ButtonCode {
			continue
		}
		pb.handle(ev.Value, time.Now())
	}
}

func (pb *powerButton) handle(value int32, now time.Time) {
	switch value {
	case 1:
		pb.pressedAt.Store(now)
	case 0:
		pressed := pb.pressedAt.Load()
		if pressed.IsZero() {
			return
		}
		pb.pressedAt.Store(time.Time{})

		if now.Sub(pb.lastAction.Load()) < pb.config.CoolDownTime {
			return
		}
		if !pb.busy.CompareAndSwap(false, true) {
			return
		}
		defer pb.busy.Store(false)
		pb.lastAction.Store(now)

		if now.Sub(pressed) <= pb.config.ShortPressMax {
			pb.suspend()
		} else {
			pb.shutdown()
		}
	}
}

func (pb *powerButton) suspend() {
	if pb.config.SuspendScript == "" {
		return
	}
	Suspended.Store(true)
	defer Suspended.Store(false)

	GetInternalLogger().Debug("Suspending", "script", pb.config.SuspendScript)
	if err := exec.Command(pb.config.SuspendScript).Run(); err != nil {
		GetInternalLogger().Error("Suspend failed", "error", err)
	}
}

func (pb *powerButton) shutdown() {
	if pb.config.ShutdownCommand == "" {
		return
	}
	GetInternalLogger().Debug("Shutting down", "command", pb.config.ShutdownCommand)
	if err := exec.Command(pb.config.ShutdownCommand).Run(); err != nil {
		GetInternalLogger().Error("Shutdown failed", "error", err)
	}
}

func (pb *powerButton) close() {
	if pb == nil {
		return
	}
	pb.stopped.Store(true)
	pb.device.Close()
}

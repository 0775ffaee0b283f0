package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Source is the kind of device an input event came from.
type Source int

const (
	SourceKeyboard Source = iota
	SourceController
	SourceJoystick
)

// Event is a physical input translated to a virtual button.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  Source
	RawCode int
}

// InputMapping maps raw codes to virtual buttons. Keys are SDL keycodes,
// game controller buttons, joystick buttons and joystick hat values.
type InputMapping struct {
	KeyboardMap         map[int]constants.VirtualButton `json:"keyboard_map"`
	ControllerButtonMap map[int]constants.VirtualButton `json:"controller_button_map"`
	JoystickButtonMap   map[int]constants.VirtualButton `json:"joystick_button_map"`
	JoystickHatMap      map[int]constants.VirtualButton `json:"joystick_hat_map"`
}

// SaveToJSON writes the mapping to path.
func (m *InputMapping) SaveToJSON(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadInputMappingBytes parses a JSON mapping.
func LoadInputMappingBytes(data []byte) (*InputMapping, error) {
	var m InputMapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse input mapping: %w", err)
	}
	return &m, nil
}

// DefaultInputMapping is the desktop keyboard plus a standard game controller.
// SDL names face buttons by position; by default the bottom button is B and
// the right button is A, unless flip is set.
func DefaultInputMapping(flip bool) *InputMapping {
	confirm, back := int(sdl.CONTROLLER_BUTTON_B), int(sdl.CONTROLLER_BUTTON_A)
	action, secondary := int(sdl.CONTROLLER_BUTTON_Y), int(sdl.CONTROLLER_BUTTON_X)
	if flip {
		confirm, back = back, confirm
		action, secondary = secondary, action
	}

	return &InputMapping{
		KeyboardMap: map[int]constants.VirtualButton{
			int(sdl.K_UP):        constants.VirtualButtonUp,
			int(sdl.K_DOWN):      constants.VirtualButtonDown,
			int(sdl.K_LEFT):      constants.VirtualButtonLeft,
			int(sdl.K_RIGHT):     constants.VirtualButtonRight,
			int(sdl.K_a):         constants.VirtualButtonA,
			int(sdl.K_SPACE):     constants.VirtualButtonA,
			int(sdl.K_b):         constants.VirtualButtonB,
			int(sdl.K_ESCAPE):    constants.VirtualButtonB,
			int(sdl.K_BACKSPACE): constants.VirtualButtonB,
			int(sdl.K_x):         constants.VirtualButtonX,
			int(sdl.K_y):         constants.VirtualButtonY,
			int(sdl.K_RETURN):    constants.VirtualButtonStart,
			int(sdl.K_TAB):       constants.VirtualButtonSelect,
			int(sdl.K_h):         constants.VirtualButtonMenu,
			int(sdl.K_PAGEUP):    constants.VirtualButtonL1,
			int(sdl.K_PAGEDOWN):  constants.VirtualButtonR1,
		},
		ControllerButtonMap: map[int]constants.VirtualButton{
			int(sdl.CONTROLLER_BUTTON_DPAD_UP):       constants.VirtualButtonUp,
			int(sdl.CONTROLLER_BUTTON_DPAD_DOWN):     constants.VirtualButtonDown,
			int(sdl.CONTROLLER_BUTTON_DPAD_LEFT):     constants.VirtualButtonLeft,
			int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT):    constants.VirtualButtonRight,
			confirm:                                  constants.VirtualButtonA,
			back:                                     constants.VirtualButtonB,
			action:                                   constants.VirtualButtonX,
			secondary:                                constants.VirtualButtonY,
			int(sdl.CONTROLLER_BUTTON_START):         constants.VirtualButtonStart,
			int(sdl.CONTROLLER_BUTTON_BACK):          constants.VirtualButtonSelect,
			int(sdl.CONTROLLER_BUTTON_GUIDE):         constants.VirtualButtonMenu,
			int(sdl.CONTROLLER_BUTTON_LEFTSHOULDER):  constants.VirtualButtonL1,
			int(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER): constants.VirtualButtonR1,
		},
		JoystickButtonMap: map[int]constants.VirtualButton{},
		JoystickHatMap: map[int]constants.VirtualButton{
			int(sdl.HAT_UP):    constants.VirtualButtonUp,
			int(sdl.HAT_DOWN):  constants.VirtualButtonDown,
			int(sdl.HAT_LEFT):  constants.VirtualButtonLeft,
			int(sdl.HAT_RIGHT): constants.VirtualButtonRight,
		},
	}
}

const axisThreshold = 16000

// InputProcessor turns SDL events into virtual button events.
type InputProcessor struct {
	mapping     *InputMapping
	heldHat     constants.VirtualButton
	heldAxis    map[uint8]constants.VirtualButton
	controllers []*sdl.GameController
	joysticks   []*sdl.Joystick
	capture     bool
}

var (
	processor      *InputProcessor
	processorMu    sync.Mutex
	flipFaceButton bool
	mappingBytes   []byte
)

// SetFlipFaceButtons selects direct face button mapping. Must be called
// before InitInputProcessor.
func SetFlipFaceButtons(flip bool) {
	flipFaceButton = flip
}

// SetInputMappingBytes overrides the default mapping with JSON.
func SetInputMappingBytes(data []byte) {
	mappingBytes = data
	if processor != nil {
		processor.applyMapping()
	}
}

// InitInputProcessor opens attached controllers and builds the mapping.
func InitInputProcessor() {
	processorMu.Lock()
	defer processorMu.Unlock()

	if v, err := strconv.ParseBool(os.Getenv(constants.FlipFaceButtonsEnvVar)); err == nil {
		flipFaceButton = v
	}

	processor = &InputProcessor{
		heldAxis: make(map[uint8]constants.VirtualButton),
		capture:  os.Getenv(constants.InputCaptureEnvVar) != "",
	}
	processor.applyMapping()
	processor.openControllers()
}

// GetInputProcessor returns the processor created by InitInputProcessor.
func GetInputProcessor() *InputProcessor {
	return processor
}

func (p *InputProcessor) applyMapping() {
	p.mapping = DefaultInputMapping(flipFaceButton)
	if len(mappingBytes) == 0 {
		return
	}

	custom, err := LoadInputMappingBytes(mappingBytes)
	if err != nil {
		GetInternalLogger().Error("Ignoring custom input mapping", "error", err)
		return
	}
	p.mapping = custom
}

func (p *InputProcessor) openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			if gc := sdl.GameControllerOpen(i); gc != nil {
				p.controllers = append(p.controllers, gc)
				GetInternalLogger().Debug("Opened game controller", "index", i, "name", gc.Name())
			}
			continue
		}
		if js := sdl.JoystickOpen(i); js != nil {
			p.joysticks = append(p.joysticks, js)
			GetInternalLogger().Debug("Opened joystick", "index", i, "name", js.Name())
		}
	}
}

// CloseAllControllers releases every opened controller and joystick.
func CloseAllControllers() {
	if processor == nil {
		return
	}
	for _, gc := range processor.controllers {
		gc.Close()
	}
	for _, js := range processor.joysticks {
		js.Close()
	}
	processor.controllers = nil
	processor.joysticks = nil
}

// ProcessSDLEvent translates event, returning nil when it does not map to
// a virtual button. Keyboard auto-repeat is dropped; held directions are
// repeated by ButtonRepeat instead.
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	ev := p.translate(event)
	if ev != nil && p.capture {
		GetInternalLogger().Debug("Input", "button", ev.Button.GetName(), "pressed", ev.Pressed, "source", ev.Source, "code", ev.RawCode)
	}
	return ev
}

func (p *InputProcessor) translate(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		code := int(e.Keysym.Sym)
		return p.lookup(p.mapping.KeyboardMap, code, e.Type == sdl.KEYDOWN, SourceKeyboard)

	case *sdl.ControllerButtonEvent:
		code := int(e.Button)
		return p.lookup(p.mapping.ControllerButtonMap, code, e.State == sdl.PRESSED, SourceController)

	case *sdl.JoyButtonEvent:
		code := int(e.Button)
		return p.lookup(p.mapping.JoystickButtonMap, code, e.State == sdl.PRESSED, SourceJoystick)

	case *sdl.JoyHatEvent:
		if e.Value == sdl.HAT_CENTERED {
			if p.heldHat == constants.VirtualButtonUnassigned {
				return nil
			}
			released := p.heldHat
			p.heldHat = constants.VirtualButtonUnassigned
			return &Event{Button: released, Pressed: false, Source: SourceJoystick}
		}
		ev := p.lookup(p.mapping.JoystickHatMap, int(e.Value), true, SourceJoystick)
		if ev != nil {
			p.heldHat = ev.Button
		}
		return ev

	case *sdl.ControllerAxisEvent:
		return p.axis(e.Axis, e.Value)
	}
	return nil
}

func (p *InputProcessor) lookup(m map[int]constants.VirtualButton, code int, pressed bool, source Source) *Event {
	button, ok := m[code]
	if !ok {
		return nil
	}
	return &Event{Button: button, Pressed: pressed, Source: source, RawCode: code}
}

// axis treats the left stick as a d-pad.
func (p *InputProcessor) axis(axis uint8, value int16) *Event {
	var negative, positive constants.VirtualButton
	switch axis {
	case uint8(sdl.CONTROLLER_AXIS_LEFTX):
		negative, positive = constants.VirtualButtonLeft, constants.VirtualButtonRight
	case uint8(sdl.CONTROLLER_AXIS_LEFTY):
		negative, positive = constants.VirtualButtonUp, constants.VirtualButtonDown
	default:
		return nil
	}

	held := p.heldAxis[axis]
	var next constants.VirtualButton
	switch {
	case value < -axisThreshold:
		next = negative
	case value > axisThreshold:
		next = positive
	}

	if next == held {
		return nil
	}
	p.heldAxis[axis] = next
	if next == constants.VirtualButtonUnassigned {
		return &Event{Button: held, Pressed: false, Source: SourceController}
	}
	return &Event{Button: next, Pressed: true, Source: SourceController}
}

package keypad

import (
	"image/color"

	"vkpad/sdr/radio"
)

// dspFunctions maps a DSP key to the function word that is active while it is selected.
var dspFunctions = [...]uint32{
	0,
	radio.DSPNREnable,
	radio.DSPNotchEnable,
	radio.DSPNotchEnable | radio.DSPNREnable,
	radio.DSPMNotchEnable,
	radio.DSPMPeakEnable,
}

var (
	colorDSPText    = colorBlack
	colorDSPPressed = colorWhite
	colorDSPOff     = color.RGBA{G: 0xFF, B: 0xFF, A: 0xFF}
)

func dspKeyShort(c *Controller, index int, param uint32) {
	r := c.env.Radio
	if index == 0 || r.DSPModeMask()&(1<<uint(index)) != 0 {
		r.SetDSPMode(uint8(param))
	}
}

func dspKeyLong(c *Controller, index int, param uint32) {
	c.env.Radio.ToggleDSPMask(index)
	c.Invalidate()
}

func dspKeyWarning(c *Controller, index int, param uint32) bool {
	return index == 3 && c.env.Radio.DSPWarning()
}

func dspKeyState(c *Controller, index int, param uint32) State {
	r := c.env.Radio
	if index > 0 && r.DSPModeMask()&(1<<uint(index)) == 0 {
		return StateDisabled
	}
	if index < len(dspFunctions) && r.ActiveDSPFunctions() == dspFunctions[index] {
		return StatePressed
	}
	return StateNormal
}

func dspKey(label string, mode uint8) Button {
	return Button{
		Label:            label,
		TextColor:        colorDSPText,
		PressedTextColor: colorDSPPressed,
		Short:            dspKeyShort,
		ShortParam:       uint32(mode),
		Long:             dspKeyLong,
	}
}

var dspKeys = []Button{
	{
		Label:            "DSP\nOFF",
		TextColor:        colorBlack,
		PressedTextColor: colorDSPOff,
		Short:            dspKeyShort,
		ShortParam:       uint32(radio.DSPSwitchOff),
	},
	dspKey("NR", radio.DSPSwitchNR),
	dspKey("AUTO\nNOTCH", radio.DSPSwitchNotch),
	withWarning(dspKey("NR\n+NOTCH", radio.DSPSwitchNRAndNotch), dspKeyWarning),
	dspKey("MAN\nNOTCH", radio.DSPSwitchNotchManual),
	dspKey("PEAK", radio.DSPSwitchPeakFilter),
}

func withWarning(b Button, w WarningFunc) Button {
	b.Warning = w
	return b
}

var dsp480x320 = &Descriptor{
	Name:        "dsp-480x320",
	Family:      FamilyDSP,
	Rows:        2,
	Columns:     3,
	Keys:        dspKeys,
	KeyWidth:    60,
	KeyHeight:   40,
	KeySpacing:  8,
	BackgroundX: 4,
	BackgroundY: 4,
	Group:       GroupOneAllowed,
	State:       dspKeyState,
}

var dsp320x240 = &Descriptor{
	Name:        "dsp-320x240",
	Family:      FamilyDSP,
	Rows:        2,
	Columns:     3,
	Keys:        dspKeys,
	KeyWidth:    52,
	KeyHeight:   32,
	KeySpacing:  4,
	BackgroundX: 4,
	BackgroundY: 4,
	Group:       GroupOneAllowed,
	State:       dspKeyState,
}

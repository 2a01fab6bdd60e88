package keypad

import "vkpad/sdr/radio"

// bandKeyFreqSet is the parameter of the key that opens the frequency-entry keypad.
const bandKeyFreqSet = 255

func bandKeyShort(c *Controller, index int, param uint32) {
	if param == bandKeyFreqSet {
		c.Toggle(FamilyFreqEntry)
		return
	}
	r := c.env.Radio
	if r.BandEnabled(int(param)) {
		c.env.Log.Info("band select", "band", r.BandName(int(param)))
		r.SelectBand(int(param))
	}
}

func bandKeyState(c *Controller, index int, param uint32) State {
	r := c.env.Radio
	if param != bandKeyFreqSet && !r.BandEnabled(int(param)) {
		return StateDisabled
	}
	if param == uint32(r.Band()) {
		return StatePressed
	}
	return StateNormal
}

func bandKey(label string, band int) Button {
	return Button{
		Label:            label,
		TextColor:        colorBlack,
		PressedTextColor: colorWhite,
		Short:            bandKeyShort,
		ShortParam:       uint32(band),
	}
}

var bandKeys480x320 = []Button{
	bandKey("2200m", radio.Band2200m),
	bandKey("630m", radio.Band630m),
	bandKey("160m", radio.Band160m),
	bandKey("80m", radio.Band80m),
	bandKey("60m", radio.Band60m),
	bandKey("40m", radio.Band40m),
	bandKey("30m", radio.Band30m),
	bandKey("20m", radio.Band20m),
	bandKey("17m", radio.Band17m),
	bandKey("15m", radio.Band15m),
	bandKey("12m", radio.Band12m),
	bandKey("10m", radio.Band10m),
	bandKey("6m", radio.Band6m),
	bandKey("4m", radio.Band4m),
	bandKey("2m", radio.Band2m),
	{
		Label:            "Frequency Set",
		TextColor:        colorBlack,
		PressedTextColor: colorWhite,
		SpanX:            2,
		Short:            bandKeyShort,
		ShortParam:       bandKeyFreqSet,
	},
}

var bandKeys320x240 = []Button{
	bandKey("160m", radio.Band160m),
	bandKey("80m", radio.Band80m),
	bandKey("60m", radio.Band60m),
	bandKey("40m", radio.Band40m),
	bandKey("30m", radio.Band30m),
	bandKey("20m", radio.Band20m),
	bandKey("17m", radio.Band17m),
	bandKey("15m", radio.Band15m),
	bandKey("12m", radio.Band12m),
	bandKey("10m", radio.Band10m),
}

var bandSel480x320 = &Descriptor{
	Name:        "bandsel-480x320",
	Family:      FamilyBandSelect,
	Rows:        3,
	Columns:     6,
	Keys:        bandKeys480x320,
	KeyWidth:    60,
	KeyHeight:   40,
	KeySpacing:  8,
	BackgroundX: 4,
	BackgroundY: 4,
	Group:       GroupOneAllowed,
	State:       bandKeyState,
}

var bandSel320x240 = &Descriptor{
	Name:        "bandsel-320x240",
	Family:      FamilyBandSelect,
	Rows:        2,
	Columns:     5,
	Keys:        bandKeys320x240,
	KeyWidth:    45,
	KeyHeight:   32,
	KeySpacing:  4,
	BackgroundX: 4,
	BackgroundY: 4,
	Group:       GroupOneAllowed,
	State:       bandKeyState,
}

package keypad

import "image/color"

var (
	colorFreqDigit = colorWhite
	colorFreqClose = color.RGBA{R: 0xFF, G: 0xE0, B: 0x00, A: 0xFF}
	colorFreqOK    = color.RGBA{R: 0xC0, G: 0xFF, B: 0xC0, A: 0xFF}
)

func digitKey(d byte) Button {
	return Button{
		Label:            string(d),
		TextColor:        colorFreqDigit,
		PressedTextColor: colorWhite,
		Font:             FontDigits,
		Short:            freqKeyShort,
		ShortParam:       uint32(d),
	}
}

func freqKey(label string, text color.RGBA, param uint32) Button {
	return Button{
		Label:            label,
		TextColor:        text,
		PressedTextColor: colorWhite,
		Short:            freqKeyShort,
		ShortParam:       param,
	}
}

var freqKeys = []Button{
	digitKey('1'),
	digitKey('2'),
	digitKey('3'),
	{
		Label:            "BAND\nchange",
		TextColor:        colorBlack,
		PressedTextColor: colorYellow,
		Short:            freqKeyShort,
		ShortParam:       freqKeyBandChange,
	},
	{
		Label:            ">>",
		TextColor:        colorFreqDigit,
		PressedTextColor: colorWhite,
		Short:            freqKeyShort,
		ShortParam:       freqKeyBackspace,
		Long:             freqKeyLong,
		LongParam:        freqKeyBackspace,
	},

	digitKey('4'),
	digitKey('5'),
	digitKey('6'),
	freqKey("000", colorFreqDigit, freqKeyTripleZero),
	freqKey("CLOSE", colorFreqClose, freqKeyEscape),

	digitKey('7'),
	digitKey('8'),
	digitKey('9'),
	digitKey('0'),
	freqKey("OK", colorFreqOK, freqKeyEnter),
}

var freqSet480x320 = &Descriptor{
	Name:        "freqset-480x320",
	Family:      FamilyFreqEntry,
	Rows:        3,
	Columns:     5,
	Keys:        freqKeys,
	KeyWidth:    60,
	KeyHeight:   36,
	KeySpacing:  8,
	TopMargin:   38,
	BackgroundX: 4,
	BackgroundY: 4,
	Group:       GroupOneAllowed,
	State:       freqKeyState,
}

var freqSet320x240 = &Descriptor{
	Name:        "freqset-320x240",
	Family:      FamilyFreqEntry,
	Rows:        3,
	Columns:     5,
	Keys:        freqKeys,
	KeyWidth:    52,
	KeyHeight:   24,
	KeySpacing:  4,
	TopMargin:   26,
	BackgroundX: 4,
	BackgroundY: 4,
	Group:       GroupOneAllowed,
	State:       freqKeyState,
}

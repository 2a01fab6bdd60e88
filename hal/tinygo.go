//go:build tinygo && baremetal

package hal

import "machine"

type tinyGoHAL struct {
	logger *uartLogger
	fb     Framebuffer
	touch  Touch
	t      *tinyGoTime
}

// New returns the RP2040 front panel HAL: an ILI9488 480x320 panel on SPI1 with an
// XPT2046 touch controller.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New(opts Options) HAL {
	opts = opts.withDefaults()

	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	fb := NewFramebuffer(opts.Width, opts.Height)
	if lcd, err := initILI9488(); err == nil {
		fb.flush = lcd.blitRGB565LittleEndian
	} else {
		logger.WriteLineString("ili9488: " + err.Error())
	}

	return &tinyGoHAL{
		logger: logger,
		fb:     fb,
		touch:  newXPT2046Touch(opts.Width, opts.Height),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return display{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return input{kbd: nullKeyboard{}, touch: h.touch} }
func (h *tinyGoHAL) Time() Time       { return h.t }

package hal

import (
	"image"
	"sync"
)

// MemFramebuffer is an RGB565 framebuffer held in RAM.
//
// Present hands the buffer to the optional flush function, which is how panel drivers
// hook in.
type MemFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	flush func(buf []byte, w, h int) error
}

// NewFramebuffer returns a cleared framebuffer of the given size.
func NewFramebuffer(width, height int) *MemFramebuffer {
	stride := width * 2
	return &MemFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *MemFramebuffer) Width() int          { return f.width }
func (f *MemFramebuffer) Height() int         { return f.height }
func (f *MemFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *MemFramebuffer) Present() error {
	if f.flush == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flush(f.buf, f.width, f.height)
}

// PixelRGB returns the colour at x, y widened back to 8 bits per channel.
func (f *MemFramebuffer) PixelRGB(x, y int) (r, g, b uint8) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0, 0, 0
	}
	off := y*f.stride + x*2
	return RGB888(f.pixelAt(off))
}

// Image converts the framebuffer into dst, allocating it when the size does not match.
func (f *MemFramebuffer) Image(dst *image.RGBA) *image.RGBA {
	if dst == nil || dst.Bounds().Dx() != f.width || dst.Bounds().Dy() != f.height {
		dst = image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	pix := dst.Pix
	for y := 0; y < f.height; y++ {
		row := y * f.stride
		for x := 0; x < f.width; x++ {
			off := row + x*2
			r, g, b := RGB888(f.pixelAt(off))
			j := y*dst.Stride + x*4
			pix[j+0] = r
			pix[j+1] = g
			pix[j+2] = b
			pix[j+3] = 0xFF
		}
	}
	return dst
}

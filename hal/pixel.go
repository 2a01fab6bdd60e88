package hal

// RGB565 packs an 8-bit-per-channel colour into a panel pixel: rrrrrggggggbbbbb.
func RGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// RGB888 widens a panel pixel back to 8 bits per channel, mapping full scale to 255.
func RGB888(p uint16) (r, g, b uint8) {
	r5 := uint32(p>>11) & 0x1F
	g6 := uint32(p>>5) & 0x3F
	b5 := uint32(p) & 0x1F
	return uint8(r5 * 255 / 31), uint8(g6 * 255 / 63), uint8(b5 * 255 / 31)
}

// pixelAt reads the little-endian pixel stored at byte offset off.
func (f *MemFramebuffer) pixelAt(off int) uint16 {
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

package flac

import (
	"bytes"
	"encoding/binary"
)

// testBlock is a block for buildFLAC.
type testBlock struct {
	typ  byte
	body []byte
	last bool
}

// buildFLAC assembles a FLAC file from raw blocks and an audio payload.
func buildFLAC(audio []byte, blocks ...testBlock) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("fLaC")
	for _, b := range blocks {
		t := b.typ
		if b.last {
			t |= 0x80
		}
		buf.WriteByte(t)
		buf.WriteByte(byte(len(b.body) >> 16))
		buf.WriteByte(byte(len(b.body) >> 8))
		buf.WriteByte(byte(len(b.body)))
		buf.Write(b.body)
	}
	buf.Write(audio)
	return buf.Bytes()
}

// streamInfoBody packs a STREAMINFO body the long way, independent of the
// codec under test.
func streamInfoBody(sampleRate, channels, bitsPerSample uint64, totalSamples uint64) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, uint16(4096)) // min block size
	binary.Write(buf, binary.BigEndian, uint16(4096)) // max block size
	buf.Write([]byte{0x00, 0x00, 0x0E})               // min frame size
	buf.Write([]byte{0x00, 0x30, 0x39})               // max frame size

	// [sample_rate(20)] [channels-1(3)] [bits-1(5)] [total_samples(36)]
	packed := (sampleRate << 44) | ((channels - 1) << 41) | ((bitsPerSample - 1) << 36) | totalSamples
	binary.Write(buf, binary.BigEndian, packed)

	sig := make([]byte, 16)
	for i := range sig {
		sig[i] = byte(0xA0 + i)
	}
	buf.Write(sig)
	return buf.Bytes()
}

// vorbisCommentBody encodes a comment block the long way.
func vorbisCommentBody(vendor string, comments ...string) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.LittleEndian, uint32(len(vendor)))
	buf.WriteString(vendor)
	binary.Write(buf, binary.LittleEndian, uint32(len(comments)))
	for _, c := range comments {
		binary.Write(buf, binary.LittleEndian, uint32(len(c)))
		buf.WriteString(c)
	}
	return buf.Bytes()
}

// pictureBody encodes a picture block, declaring declaredLength for data.
func pictureBody(picType uint32, mime, desc string, data []byte, declaredLength uint32) []byte {
	buf := &bytes.Buffer{}
	binary.Write(buf, binary.BigEndian, picType)
	binary.Write(buf, binary.BigEndian, uint32(len(mime)))
	buf.WriteString(mime)
	binary.Write(buf, binary.BigEndian, uint32(len(desc)))
	buf.WriteString(desc)
	binary.Write(buf, binary.BigEndian, uint32(600)) // width
	binary.Write(buf, binary.BigEndian, uint32(400)) // height
	binary.Write(buf, binary.BigEndian, uint32(24))  // color depth
	binary.Write(buf, binary.BigEndian, uint32(0))   // indexed colors
	binary.Write(buf, binary.BigEndian, declaredLength)
	buf.Write(data)
	return buf.Bytes()
}

// Package wavinfo reads recording parameters from WAV container headers.
package wavinfo

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Info holds the audio parameters read from a WAV file's fmt chunk.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	DataBytes  int64
}

// Probe reads the RIFF/WAVE header of the file at path and returns its
// recording parameters. It scans chunks until the fmt chunk is found, so
// files with LIST or other metadata chunks before fmt are handled.
func Probe(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return probe(f)
}

func probe(r io.Reader) (*Info, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("read RIFF header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE file")
	}

	info := &Info{}
	haveFmt := false
	for {
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return nil, fmt.Errorf("read chunk header: %w", err)
		}
		id := string(hdr[0:4])
		size := binary.LittleEndian.Uint32(hdr[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("fmt chunk too short: %d bytes", size)
			}
			var fmtChunk [16]byte
			if _, err := io.ReadFull(r, fmtChunk[:]); err != nil {
				return nil, fmt.Errorf("read fmt chunk: %w", err)
			}
			info.Channels = int(binary.LittleEndian.Uint16(fmtChunk[2:4]))
			info.SampleRate = int(binary.LittleEndian.Uint32(fmtChunk[4:8]))
			info.BitDepth = int(binary.LittleEndian.Uint16(fmtChunk[14:16]))
			haveFmt = true
			if size > 16 {
				if err := skip(r, int64(size)-16); err != nil {
					return nil, err
				}
			}
		case "data":
			info.DataBytes = int64(size)
			if haveFmt {
				return info, nil
			}
			if err := skip(r, int64(size)); err != nil {
				return nil, err
			}
		default:
			// Chunks are word-aligned; odd sizes carry a pad byte.
			if err := skip(r, int64(size)+int64(size%2)); err != nil {
				return nil, err
			}
		}
	}

	if !haveFmt {
		return nil, fmt.Errorf("no fmt chunk found")
	}
	return info, nil
}

func skip(r io.Reader, n int64) error {
	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		return fmt.Errorf("skip chunk: %w", err)
	}
	return nil
}

// Package structcodec serializes derived structures for export and import.
// Payloads are wrapped in a small self-describing envelope (magic, format,
// compression) so a decoder needs no out-of-band knowledge. Two formats are
// supported: a tagged JSON document for interchange and a little-endian
// binary layout for compactness.
package structcodec

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/audioglyph/helix/pkg/internal/types"
)

// Format selects the payload serialization.
type Format byte

const (
	FormatJSON   Format = 1
	FormatBinary Format = 2
)

// DocumentVersion is written into every encoded document.
const DocumentVersion = 1

var magic = [4]byte{'H', 'L', 'X', '1'}

var (
	ErrBadMagic           = errors.New("structcodec: bad magic")
	ErrTruncated          = errors.New("structcodec: truncated payload")
	ErrUnknownFormat      = errors.New("structcodec: unknown format")
	ErrUnknownCompression = errors.New("structcodec: unknown compression")
	ErrBadVersion         = errors.New("structcodec: unsupported document version")
)

// Document is the exported form of a derived structure together with the
// inputs needed to reproduce it.
type Document struct {
	Version  int                   `json:"version"`
	Seed     string                `json:"seed"`
	Duration float64               `json:"duration"`
	Nodes    []types.StructureNode `json:"nodes"`
}

type jsonNode struct {
	ID                int        `json:"id"`
	Position          [3]float64 `json:"position"`
	Amplitude         float64    `json:"amplitude"`
	DominantFreqRatio float64    `json:"dominantFreqRatio"`
	Hue               float64    `json:"hue"`
	Connections       []int      `json:"connections,omitempty"`
}

type jsonDocument struct {
	Version  int        `json:"version"`
	Seed     string     `json:"seed"`
	Duration float64    `json:"duration"`
	Nodes    []jsonNode `json:"nodes"`
}

// Encode serializes a document in the given format, compresses the payload
// and prepends the envelope header.
func Encode(doc Document, format Format, algorithm Compression) ([]byte, error) {
	doc.Version = DocumentVersion

	var payload []byte
	var err error
	switch format {
	case FormatJSON:
		payload, err = encodeJSON(doc)
	case FormatBinary:
		payload, err = encodeBinary(doc)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	payload, err = compress(payload, algorithm)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(payload)+6)
	out = append(out, magic[:]...)
	out = append(out, byte(format), byte(algorithm))
	return append(out, payload...), nil
}

// Decode parses an enveloped payload back into a document.
func Decode(data []byte) (Document, error) {
	if len(data) < 6 {
		return Document{}, ErrTruncated
	}
	if !bytes.Equal(data[:4], magic[:]) {
		return Document{}, ErrBadMagic
	}
	format := Format(data[4])
	algorithm := Compression(data[5])

	payload, err := decompress(data[6:], algorithm)
	if err != nil {
		return Document{}, err
	}

	var doc Document
	switch format {
	case FormatJSON:
		doc, err = decodeJSON(payload)
	case FormatBinary:
		doc, err = decodeBinary(payload)
	default:
		return Document{}, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err != nil {
		return Document{}, err
	}
	if doc.Version != DocumentVersion {
		return Document{}, fmt.Errorf("%w: %d", ErrBadVersion, doc.Version)
	}
	return doc, nil
}

func encodeJSON(doc Document) ([]byte, error) {
	out := jsonDocument{
		Version:  doc.Version,
		Seed:     doc.Seed,
		Duration: doc.Duration,
		Nodes:    make([]jsonNode, len(doc.Nodes)),
	}
	for i, n := range doc.Nodes {
		out.Nodes[i] = jsonNode{
			ID:                n.ID,
			Position:          [3]float64{n.Position.X, n.Position.Y, n.Position.Z},
			Amplitude:         n.Amplitude,
			DominantFreqRatio: n.DominantFreqRatio,
			Hue:               n.Hue,
			Connections:       n.Connections,
		}
	}
	return json.Marshal(out)
}

func decodeJSON(payload []byte) (Document, error) {
	var in jsonDocument
	if err := json.Unmarshal(payload, &in); err != nil {
		return Document{}, err
	}
	doc := Document{
		Version:  in.Version,
		Seed:     in.Seed,
		Duration: in.Duration,
		Nodes:    make([]types.StructureNode, len(in.Nodes)),
	}
	for i, n := range in.Nodes {
		doc.Nodes[i] = types.StructureNode{
			ID:                n.ID,
			Position:          types.Vec3{X: n.Position[0], Y: n.Position[1], Z: n.Position[2]},
			Amplitude:         n.Amplitude,
			DominantFreqRatio: n.DominantFreqRatio,
			Hue:               n.Hue,
			Connections:       n.Connections,
		}
	}
	return doc, nil
}

func encodeBinary(doc Document) ([]byte, error) {
	var b bytes.Buffer
	writeUint32(&b, uint32(doc.Version))
	writeString(&b, doc.Seed)
	writeFloat64(&b, doc.Duration)
	writeUint32(&b, uint32(len(doc.Nodes)))
	for _, n := range doc.Nodes {
		writeUint32(&b, uint32(int32(n.ID)))
		writeFloat64(&b, n.Position.X)
		writeFloat64(&b, n.Position.Y)
		writeFloat64(&b, n.Position.Z)
		writeFloat64(&b, n.Amplitude)
		writeFloat64(&b, n.DominantFreqRatio)
		writeFloat64(&b, n.Hue)
		writeUint32(&b, uint32(len(n.Connections)))
		for _, c := range n.Connections {
			writeUint32(&b, uint32(int32(c)))
		}
	}
	return b.Bytes(), nil
}

func decodeBinary(payload []byte) (Document, error) {
	r := &byteReader{data: payload}
	var doc Document

	version, err := r.uint32()
	if err != nil {
		return Document{}, err
	}
	doc.Version = int(version)

	if doc.Seed, err = r.string(); err != nil {
		return Document{}, err
	}
	if doc.Duration, err = r.float64(); err != nil {
		return Document{}, err
	}

	count, err := r.uint32()
	if err != nil {
		return Document{}, err
	}
	if int(count) > r.remaining() {
		// Node records are dozens of bytes each; a count exceeding the byte
		// budget is corrupt input, not a huge structure.
		return Document{}, ErrTruncated
	}

	doc.Nodes = make([]types.StructureNode, count)
	for i := range doc.Nodes {
		n := &doc.Nodes[i]
		id, err := r.uint32()
		if err != nil {
			return Document{}, err
		}
		n.ID = int(int32(id))
		if n.Position.X, err = r.float64(); err != nil {
			return Document{}, err
		}
		if n.Position.Y, err = r.float64(); err != nil {
			return Document{}, err
		}
		if n.Position.Z, err = r.float64(); err != nil {
			return Document{}, err
		}
		if n.Amplitude, err = r.float64(); err != nil {
			return Document{}, err
		}
		if n.DominantFreqRatio, err = r.float64(); err != nil {
			return Document{}, err
		}
		if n.Hue, err = r.float64(); err != nil {
			return Document{}, err
		}
		edges, err := r.uint32()
		if err != nil {
			return Document{}, err
		}
		if int(edges) > r.remaining()/4 {
			return Document{}, ErrTruncated
		}
		if edges > 0 {
			n.Connections = make([]int, edges)
			for j := range n.Connections {
				c, err := r.uint32()
				if err != nil {
					return Document{}, err
				}
				n.Connections[j] = int(int32(c))
			}
		}
	}
	return doc, nil
}

func writeUint32(b *bytes.Buffer, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	b.Write(buf[:])
}

func writeFloat64(b *bytes.Buffer, v float64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	b.Write(buf[:])
}

func writeString(b *bytes.Buffer, s string) {
	writeUint32(b, uint32(len(s)))
	b.WriteString(s)
}

type byteReader struct {
	data []byte
	off  int
}

func (r *byteReader) remaining() int { return len(r.data) - r.off }

func (r *byteReader) uint32() (uint32, error) {
	if r.remaining() < 4 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

func (r *byteReader) float64() (float64, error) {
	if r.remaining() < 8 {
		return 0, ErrTruncated
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(r.data[r.off:]))
	r.off += 8
	return v, nil
}

func (r *byteReader) string() (string, error) {
	n, err := r.uint32()
	if err != nil {
		return "", err
	}
	if int(n) > r.remaining() {
		return "", ErrTruncated
	}
	s := string(r.data[r.off : r.off+int(n)])
	r.off += int(n)
	return s, nil
}

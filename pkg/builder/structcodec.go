package builder

import "github.com/audioglyph/helix/pkg/internal/structcodec"

// StructureDocument is the exported form of a derived structure.
type StructureDocument = structcodec.Document

// StructureFormat selects the export payload serialization.
type StructureFormat = structcodec.Format

// StructureCompression selects the export payload compression.
type StructureCompression = structcodec.Compression

const (
	StructureFormatJSON   = structcodec.FormatJSON
	StructureFormatBinary = structcodec.FormatBinary

	StructureCompressNone    = structcodec.CompressNone
	StructureCompressDeflate = structcodec.CompressDeflate
	StructureCompressSnappy  = structcodec.CompressSnappy
	StructureCompressZstd    = structcodec.CompressZstd
	StructureCompressBrotli  = structcodec.CompressBrotli
	StructureCompressLz4     = structcodec.CompressLz4
)

// EncodeStructure serializes a structure document for export.
func EncodeStructure(doc structcodec.Document, format structcodec.Format, algorithm structcodec.Compression) ([]byte, error) {
	return structcodec.Encode(doc, format, algorithm)
}

// DecodeStructure parses an exported structure document.
func DecodeStructure(data []byte) (structcodec.Document, error) {
	return structcodec.Decode(data)
}

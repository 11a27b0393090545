package mot

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"

	"github.com/saxhorn/dabrx/internal/charset"
)

// Header extension parameter identifiers.
const (
	paramContentName = 0x0C
	paramMimeType    = 0x10
)

// Content types.
const (
	ContentTypeGeneral = 0
	ContentTypeText    = 1
	ContentTypeImage   = 2
	ContentTypeAudio   = 3
	ContentTypeVideo   = 4
)

// HeaderInfo is the decoded MOT header core plus the extension
// parameters this receiver cares about.
type HeaderInfo struct {
	BodySize       int
	ContentType    uint8
	ContentSubtype uint16
	Name           string
	MIME           string
}

// ParseHeader decodes a reassembled MOT header:
//
//	body_size(28) header_size(13) content_type(6) content_subtype(9)
//
// followed by extension parameters, each pli(2) id(6) with a length
// encoding selected by pli.
func ParseHeader(b []byte) (HeaderInfo, error) {
	r := bitio.NewReader(bytes.NewReader(b))
	info := HeaderInfo{BodySize: int(r.TryReadBits(28))}
	headerSize := int(r.TryReadBits(13))
	info.ContentType = uint8(r.TryReadBits(6))
	info.ContentSubtype = uint16(r.TryReadBits(9))
	if r.TryError != nil {
		return HeaderInfo{}, fmt.Errorf("mot: header core: %w", r.TryError)
	}
	if headerSize > len(b) {
		return HeaderInfo{}, fmt.Errorf("mot: header size %d exceeds %d assembled bytes", headerSize, len(b))
	}

	for off := 7; off < headerSize; {
		pli := b[off] >> 6
		id := b[off] & 0x3F
		off++

		var length int
		switch pli {
		case 0:
			length = 0
		case 1:
			length = 1
		case 2:
			length = 4
		case 3:
			if off >= headerSize {
				return HeaderInfo{}, fmt.Errorf("mot: truncated parameter 0x%02X", id)
			}
			length = int(b[off] & 0x7F)
			if b[off]&0x80 != 0 {
				if off+1 >= headerSize {
					return HeaderInfo{}, fmt.Errorf("mot: truncated parameter 0x%02X", id)
				}
				length = length<<8 | int(b[off+1])
				off++
			}
			off++
		}
		if off+length > headerSize {
			return HeaderInfo{}, fmt.Errorf("mot: parameter 0x%02X overruns header", id)
		}
		data := b[off : off+length]
		off += length

		switch id {
		case paramContentName:
			if len(data) > 0 {
				info.Name = charset.Decode(data[0]>>4, data[1:])
			}
		case paramMimeType:
			info.MIME = string(data)
		}
	}

	if info.MIME == "" {
		info.MIME = contentMIME(info.ContentType, info.ContentSubtype)
	}
	return info, nil
}

// contentMIME maps the signalled content type and subtype to a MIME
// type for the common broadcast payloads.
func contentMIME(contentType uint8, subtype uint16) string {
	if contentType != ContentTypeImage {
		return ""
	}
	switch subtype {
	case 0x000:
		return "image/gif"
	case 0x001:
		return "image/jpeg"
	case 0x002:
		return "image/bmp"
	case 0x003:
		return "image/png"
	}
	return ""
}

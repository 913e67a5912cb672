// Package message persists thumbnail parameters behind short
// content-derived identifiers. A record's id is a pure function of its
// normalized fields, so storing the same message twice is a no-op and a
// share link can always be regenerated from its inputs.
package message

import (
	"github.com/nene-dev/thumbtalk/pkg/thumbnail"
)

// Record is the persisted unit: the four inputs that determine a
// rendered thumbnail. Records are immutable once stored.
type Record struct {
	Message   string `json:"message"`
	ImageType string `json:"imageType"`
	SubType   string `json:"subType,omitempty"`
	ZoomMode  bool   `json:"zoomMode,omitempty"`
}

// Normalize applies the canonical defaults: the message is capped and
// trimmed, unknown character types fall back to the default, the
// sub-type is validated against the character's expression roster, and
// zoom is cleared for families without a zoom crop. Hashing, storing
// and rendering all operate on normalized records.
func Normalize(rec Record) Record {
	variant, subType := thumbnail.Resolve(rec.ImageType, rec.SubType)

	return Record{
		Message:   thumbnail.CapMessage(rec.Message),
		ImageType: variant.Name,
		SubType:   subType,
		ZoomMode:  rec.ZoomMode && variant.Family == thumbnail.FamilyOverlay,
	}
}

// RenderRequest converts a record into a render request for the
// thumbnail engine.
func (r Record) RenderRequest() thumbnail.Request {
	return thumbnail.Request{
		Message:   r.Message,
		ImageType: r.ImageType,
		SubType:   r.SubType,
		Zoom:      r.ZoomMode,
	}
}

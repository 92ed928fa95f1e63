package frame

import (
	"io"

	gojson "github.com/goccy/go-json"
)

// MarshalJSON encodes the frame as an array of row objects
func (f *Frame) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(f.Rows())
}

// WriteJSON streams the frame to a writer as an array of row objects
func WriteJSON(f *Frame, w io.Writer) error {
	enc := gojson.NewEncoder(w)
	return enc.Encode(f.Rows())
}

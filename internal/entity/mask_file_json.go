package entity

import (
	"encoding/json"
	"time"
)

// MarshalJSON returns the JSON encoding.
func (m *MaskFile) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		UID       string
		FileName  string
		Hash      string  `json:",omitempty"`
		MaskName  string  `json:",omitempty"`
		Kind      string
		Channels  int     `json:",omitempty"`
		Width     int     `json:",omitempty"`
		Height    int     `json:",omitempty"`
		Faces     int     `json:",omitempty"`
		Coverage  float64 `json:",omitempty"`
		Review    bool
		Invalid   bool
		CreatedAt time.Time
	}{
		UID:       m.MaskUID,
		FileName:  m.FileName,
		Hash:      m.FileHash,
		MaskName:  m.MaskName,
		Kind:      m.MaskKind,
		Channels:  m.MaskChannels,
		Width:     m.MaskWidth,
		Height:    m.MaskHeight,
		Faces:     m.FaceCount,
		Coverage:  m.Coverage,
		Review:    m.MaskReview,
		Invalid:   m.MaskInvalid,
		CreatedAt: m.CreatedAt,
	})
}

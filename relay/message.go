// Package relay carries volume samples over WebSocket between senders and
// visualizers.
package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
)

// TypeAudio marks an envelope carrying a volume sample.
const TypeAudio = "audio"

// Path is where the relay server accepts WebSocket connections.
const Path = "/ws"

// DefaultURL is used when no page host is available to derive one from.
const DefaultURL = "ws://localhost:8080" + Path

var (
	// ErrMalformed is returned for frames that are not a valid envelope.
	ErrMalformed = errors.New("malformed relay message")
	// ErrNotAudio is returned by DecodeVolume for well-formed non-audio envelopes.
	ErrNotAudio = errors.New("not an audio message")
)

// Message is the JSON envelope exchanged through the relay:
//
//	{"type": "audio", "volume": 0.042, "fft": [...]}
//
// The spectrum is carried through untouched; nothing here reads it.
type Message struct {
	Type   string          `json:"type"`
	Volume *float64        `json:"volume,omitempty"`
	FFT    json.RawMessage `json:"fft,omitempty"`
}

// NewAudioMessage builds an audio envelope for the given level.
func NewAudioMessage(volume float64) Message {
	return Message{Type: TypeAudio, Volume: &volume}
}

// Encode marshals an envelope.
func Encode(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// Decode parses an envelope. Any frame without a type is malformed.
func Decode(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if msg.Type == "" {
		return Message{}, fmt.Errorf("%w: missing type", ErrMalformed)
	}
	return msg, nil
}

// DecodeVolume extracts the volume of an audio envelope.
func DecodeVolume(data []byte) (float64, error) {
	msg, err := Decode(data)
	if err != nil {
		return 0, err
	}
	if msg.Type != TypeAudio {
		return 0, fmt.Errorf("%w: type %q", ErrNotAudio, msg.Type)
	}
	if msg.Volume == nil {
		return 0, fmt.Errorf("%w: missing volume", ErrMalformed)
	}
	v := *msg.Volume
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: volume %v out of range", ErrMalformed, v)
	}
	return v, nil
}

// URLForPage derives the relay URL for a page served from host over protocol
// ("http:" or "https:"). An empty host yields DefaultURL.
func URLForPage(protocol, host string) string {
	if host == "" {
		return DefaultURL
	}
	scheme := "ws"
	if protocol == "https:" {
		scheme = "wss"
	}
	return scheme + "://" + host + Path
}

// WithPeer returns rawURL with its "peer" query parameter set to peer,
// keeping any other parameters.
func WithPeer(rawURL, peer string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("peer", peer)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

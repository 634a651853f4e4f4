package meeting

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

const (
	roomTokenPrefix  = "room-"
	roomTokenEntropy = 20 // bytes, 160 bits
)

var roomTokenEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// RoomToken identifies the conferencing room. It is handed to the provider
// as-is and must never be derivable from the booking.
type RoomToken string

func NewRoomToken() (RoomToken, error) {
	buf := make([]byte, roomTokenEntropy)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return RoomToken(roomTokenPrefix + strings.ToLower(roomTokenEncoding.EncodeToString(buf))), nil
}

func (t RoomToken) String() string {
	return string(t)
}

package util

import (
	"fmt"

	"github.com/lithammer/shortuuid/v4"
)

const (
	alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// GenerateSyncRunCode generates a unique sync run code in the format "SYN-XXXXXXXXXX".
func GenerateSyncRunCode() string {
	id := shortuuid.NewWithAlphabet(alphabet)

	return fmt.Sprintf("SYN-%s", id[:10])
}

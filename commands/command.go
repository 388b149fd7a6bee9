package commands

// Reply turns the bytes read from a peer into the bytes written back.
// A nil result means nothing is written.
type Reply func(data []byte) []byte

var Handlers = map[string]Reply{
	"ECHO":     Echo,
	"UPPER":    Upper,
	"TRUNCATE": Truncate,
	"SILENT":   Silent,
	"GARBAGE":  Garbage,
}

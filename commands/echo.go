package commands

import "bytes"

func Echo(data []byte) []byte {
	return data
}

// Upper echoes with ASCII letters upper-cased.
func Upper(data []byte) []byte {
	return bytes.ToUpper(data)
}

// Truncate echoes only the first half of the data, at least one byte.
func Truncate(data []byte) []byte {
	if len(data) <= 1 {
		return data
	}
	return data[:len(data)/2]
}

func Silent(data []byte) []byte {
	return nil
}

// Garbage replies with bytes that are not valid UTF-8.
func Garbage(data []byte) []byte {
	return []byte{0xff, 0xfe, 0xfd}
}

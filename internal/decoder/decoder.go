// Package decoder turns raw register and system variable values into
// annotated secondary report lines.
package decoder

// Unknown is the label of enumerated values that have no documented meaning.
const Unknown = "UNKNOWN"

// Bus gives a decoder access to a second register. A few registers only make
// sense in combination with another register, for example the core version
// whose sub version lives in its own register.
type Bus interface {
	ReadRegister(number uint8) uint8
}

// labels maps the values of an enumerated bit field to their names.
type labels map[uint8]string

// lookup returns the label of the value or Unknown for undocumented values.
func (l labels) lookup(value uint8) string {
	if s, ok := l[value]; ok {
		return s
	}
	return Unknown
}

func byteAt(data []byte, index int) uint8 {
	if index < len(data) {
		return data[index]
	}
	return 0
}

package editor

import "fmt"

// Key is a decoded keypress. Values 0-255 are the raw byte that was read;
// cursor and navigation keys live above that range.
type Key int

const KeyEscape Key = 0x1b

const (
	// KeyIncomplete means the buffered bytes are a prefix of a longer
	// sequence. It is never handed to State.Apply.
	KeyIncomplete Key = iota + 1000
	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

var keyNames = map[Key]string{
	Key(0x00):     "Ctrl+@",
	Key(0x7f):     "Backspace",
	KeyEscape:     "Escape",
	KeyIncomplete: "Incomplete",
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowRight: "ArrowRight",
	KeyArrowLeft:  "ArrowLeft",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyHome:       "Home",
	KeyEnd:        "End",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k >= 0 && k < 0x20:
		return fmt.Sprintf("Ctrl+%c", rune(k)|0x60)
	case k >= 0x20 && k < 0x7f:
		return fmt.Sprintf("%q", rune(k))
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// CtrlKey returns the key produced by holding Ctrl with k.
func CtrlKey(k byte) Key { return Key(k & 0x1f) }

// decodeState is the position of Decode inside an escape sequence.
type decodeState uint8

const (
	stateGround   decodeState = iota
	stateEscape               // after ESC
	stateCSI                  // after ESC [
	stateCSIParam             // after ESC [ digit...
	stateSS3                  // after ESC O
)

// csiFinal maps the letter in ESC [ <letter>.
var csiFinal = map[byte]Key{
	'A': KeyArrowUp,
	'B': KeyArrowDown,
	'C': KeyArrowRight,
	'D': KeyArrowLeft,
	'H': KeyHome,
	'F': KeyEnd,
}

// Decode reads one key from the front of seq and reports how many bytes it
// used. When seq ends inside a sequence it returns (0, KeyIncomplete) so the
// caller can retry once more bytes arrive; bytes are never dropped while
// waiting. Unknown or malformed sequences decode to KeyEscape.
func Decode(seq []byte) (int, Key) {
	state := stateGround
	param := 0

	for i := 0; i < len(seq); i++ {
		b := seq[i]
		switch state {
		case stateGround:
			if b != byte(KeyEscape) {
				return 1, Key(b)
			}
			state = stateEscape

		case stateEscape:
			switch b {
			case '[':
				state = stateCSI
			case 'O':
				state = stateSS3
			default:
				return i + 1, KeyEscape
			}

		case stateCSI:
			if k, ok := csiFinal[b]; ok {
				return i + 1, k
			}
			if !isDigit(b) {
				return i + 1, KeyEscape
			}
			param = int(b - '0')
			state = stateCSIParam

		case stateCSIParam:
			if b == '~' {
				return i + 1, tildeKey(param)
			}
			if !isDigit(b) {
				return i + 1, KeyEscape
			}
			// a parameter that cannot finish inside the input window
			if i+1 >= InputCapacity {
				return i + 1, KeyEscape
			}
			param = param*10 + int(b-'0')

		case stateSS3:
			switch b {
			case 'H':
				return i + 1, KeyHome
			case 'F':
				return i + 1, KeyEnd
			default:
				return i + 1, KeyEscape
			}
		}
	}
	return 0, KeyIncomplete
}

// tildeKey maps the parameter of ESC [ <n> ~.
func tildeKey(n int) Key {
	switch n {
	case 1, 7:
		return KeyHome
	case 4, 8:
		return KeyEnd
	case 5:
		return KeyPageUp
	case 6:
		return KeyPageDown
	default:
		return KeyEscape
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

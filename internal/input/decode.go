package input

import (
	"unicode"
	"unicode/utf8"
)

const (
	keyCtrlC     = 0x03
	keyCtrlD     = 0x04
	keyBackspace = 0x08
	keyLF        = 0x0a
	keyCR        = 0x0d
	keyEsc       = 0x1b
	keyDEL       = 0x7f
)

// Decode converts raw terminal bytes into events. Bytes of an incomplete UTF-8
// rune or escape sequence at the end of buf are returned as rest so the caller
// can prepend them to the next read.
//
// A lone ESC is Quit, the left arrow is Back, and any other escape sequence or
// control byte is dropped. An ESC at the very end of buf is taken as a lone
// ESC since a blocking read cannot tell it apart from a split sequence.
func Decode(buf []byte) (events []Event, rest []byte) {
	for i := 0; i < len(buf); {
		b := buf[i]
		switch {
		case b == keyEsc:
			if i+1 == len(buf) {
				events = append(events, Quit)
				i++
				continue
			}
			n, ev, ok := decodeEscape(buf[i:])
			if n == 0 {
				return events, append([]byte(nil), buf[i:]...)
			}
			if ok {
				events = append(events, ev)
			}
			i += n
		case b == keyCR:
			events = append(events, Enter)
			i++
			if i < len(buf) && buf[i] == keyLF {
				i++
			}
		case b == keyLF:
			events = append(events, Enter)
			i++
		case b == keyCtrlC || b == keyCtrlD:
			events = append(events, Quit)
			i++
		case b == keyDEL || b == keyBackspace:
			events = append(events, RemoveCharacter)
			i++
		case b < 0x20:
			i++
		default:
			r, size := utf8.DecodeRune(buf[i:])
			if r == utf8.RuneError && size <= 1 {
				if !utf8.FullRune(buf[i:]) {
					return events, append([]byte(nil), buf[i:]...)
				}
				i++
				continue
			}
			if unicode.IsPrint(r) {
				events = append(events, Char(r))
			}
			i += size
		}
	}
	return events, nil
}

// decodeEscape consumes an escape sequence starting at seq[0] == ESC and
// reports how many bytes it used. Zero means the sequence is not complete yet.
func decodeEscape(seq []byte) (int, Event, bool) {
	switch seq[1] {
	case '[':
		i := 2
		for i < len(seq) && seq[i] >= 0x20 && seq[i] <= 0x3f {
			i++
		}
		if i == len(seq) {
			return 0, Event{}, false
		}
		final := seq[i]
		if final == 'D' && i == 2 {
			return i + 1, Back, true
		}
		return i + 1, Event{}, false
	case 'O':
		if len(seq) < 3 {
			return 0, Event{}, false
		}
		if seq[2] == 'D' {
			return 3, Back, true
		}
		return 3, Event{}, false
	case keyEsc:
		// Double escape: the first one stands alone.
		return 1, Quit, true
	default:
		if !utf8.FullRune(seq[1:]) {
			return 0, Event{}, false
		}
		r, size := utf8.DecodeRune(seq[1:])
		if r != utf8.RuneError && unicode.IsPrint(r) {
			// Alt+key.
			return 1 + size, Event{}, false
		}
		// ESC followed by Enter, Backspace or another control key.
		return 1, Quit, true
	}
}

// Package input turns raw terminal bytes into per-frame key state.
package input

import (
	"bufio"
)

// Key identifies a key the game reacts to.
type Key int

const (
	KeyEscape  Key = iota // ESC: end the session with results
	KeyReverse            // Space: reverse the balls
	KeyEnter              // Enter: start a new session from the results screen
	KeyQuit               // q/Q or Ctrl+C: leave the program

	keyCount
)

// Input represents the current frame's input state.
// A key is pressed if at least one byte for it arrived since the previous frame.
type Input struct {
	keys [keyCount]bool
}

// IsKeyPressed reports whether k was pressed during this frame.
func (in Input) IsKeyPressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return in.keys[k]
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch chan byte

	// pendingEsc holds a trailing ESC back for one frame, in case it starts an
	// escape sequence whose remaining bytes have not arrived yet.
	pendingEsc bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reads as a quit.
func ReadInput(s *Stream) Input {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	carried := s.pendingEsc
	s.pendingEsc = false
	if carried {
		buf = append([]byte{'\x1b'}, buf...)
	}
	// A trailing ESC is held back unless it already waited a frame with nothing after it.
	if !closed && len(buf) > 0 && buf[len(buf)-1] == '\x1b' && !(carried && len(buf) == 1) {
		buf = buf[:len(buf)-1]
		s.pendingEsc = true
	}

	in := Parse(buf)
	if closed {
		in.keys[KeyQuit] = true
	}
	return in
}

// Reset discards any bytes waiting in the stream, so that keys pressed on one
// screen do not leak into the next.
func Reset(s *Stream) {
	s.pendingEsc = false
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// Parse maps a batch of raw bytes to key state.
// CSI sequences (arrow keys and friends) are skipped so that their leading ESC
// is not taken for the escape key.
func Parse(buf []byte) Input {
	var in Input

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			// Skip to the final byte of the sequence.
			j := i + 2
			for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
				j++
			}
			i = j
			continue
		}

		switch b {
		case '\x1b':
			in.keys[KeyEscape] = true
		case ' ':
			in.keys[KeyReverse] = true
		case '\n', '\r':
			in.keys[KeyEnter] = true
		case 'q', 'Q', '\x03':
			in.keys[KeyQuit] = true
		}
	}

	return in
}

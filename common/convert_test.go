package common

import (
	"encoding/binary"
	"reflect"
	"strings"
	"testing"
)

func TestDecodeHex(t *testing.T) {
	t.Run("test decode well formed hex", func(t *testing.T) {
		var testcases = []struct {
			text string
			want []byte
		}{
			{"", []byte{}},
			{"00", []byte{0x00}},
			{"deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}},
			{"DEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}},
			{"0001ff", []byte{0x00, 0x01, 0xff}},
		}

		for _, elem := range testcases {
			got, err := DecodeHex(elem.text)
			if err != nil {
				t.Error(err)
				return
			}
			if !reflect.DeepEqual(got, elem.want) {
				t.Error("wrong bytes")
				t.Error("want:", elem.want)
				t.Error("got :", got)
			}
		}
	})

	t.Run("test decode malformed hex", func(t *testing.T) {
		var testcases = []string{
			"zz",  // non-hex characters
			"abc", // odd length
			"0g",
		}

		for _, text := range testcases {
			if _, err := DecodeHex(text); err == nil {
				t.Error("expect decode error for:", text)
			}
		}
	})
}

func TestDecodeHexMsg(t *testing.T) {
	t.Run("test wrapped error message", func(t *testing.T) {
		_, err := DecodeHexMsg("zz")
		if err == nil {
			t.Error("expect decode error")
			return
		}
		if !strings.HasPrefix(err.Error(), "Failed to decode hex: ") {
			t.Error("wrong error message:", err.Error())
		}
	})

	t.Run("test success path matches DecodeHex", func(t *testing.T) {
		got, err := DecodeHexMsg("a1b2")
		if err != nil {
			t.Error(err)
			return
		}
		if !reflect.DeepEqual(got, []byte{0xa1, 0xb2}) {
			t.Error("wrong bytes:", got)
		}
	})
}

func TestEncodeHex(t *testing.T) {
	t.Run("test encode then decode round trip", func(t *testing.T) {
		var testcases = [][]byte{
			{},
			{0x00},
			{0xde, 0xad, 0xbe, 0xef},
			{0x00, 0xff, 0x7f, 0x80},
		}

		for _, elem := range testcases {
			text := EncodeHex(elem)
			if len(text) != 2*len(elem) {
				t.Error("wrong hex length for:", elem)
			}
			if text != strings.ToLower(text) {
				t.Error("hex not lower-case:", text)
			}
			got, err := DecodeHex(text)
			if err != nil {
				t.Error(err)
				return
			}
			if !reflect.DeepEqual(got, elem) {
				t.Error("round trip broken")
				t.Error("want:", elem)
				t.Error("got :", got)
			}
		}
	})

	t.Run("test decode then encode round trip", func(t *testing.T) {
		var testcases = []string{"", "00", "deadbeef", "0001ff"}

		for _, text := range testcases {
			buf, err := DecodeHex(text)
			if err != nil {
				t.Error(err)
				return
			}
			if got := EncodeHex(buf); got != text {
				t.Error("round trip broken")
				t.Error("want:", text)
				t.Error("got :", got)
			}
		}
	})
}

func TestReverseBytes(t *testing.T) {
	t.Run("test reversal", func(t *testing.T) {
		var testcases = []struct {
			data []byte
			want []byte
		}{
			{[]byte{}, []byte{}},
			{[]byte{0x01}, []byte{0x01}},
			{[]byte{0x01, 0x02, 0x03}, []byte{0x03, 0x02, 0x01}},
			{[]byte{0xde, 0xad, 0xbe, 0xef}, []byte{0xef, 0xbe, 0xad, 0xde}},
		}

		for _, elem := range testcases {
			got := ReverseBytes(elem.data)
			if !reflect.DeepEqual(got, elem.want) {
				t.Error("wrong reversal")
				t.Error("want:", elem.want)
				t.Error("got :", got)
			}
		}
	})

	t.Run("test input is not mutated", func(t *testing.T) {
		data := []byte{0x01, 0x02, 0x03}
		_ = ReverseBytes(data)
		if !reflect.DeepEqual(data, []byte{0x01, 0x02, 0x03}) {
			t.Error("input mutated:", data)
		}
	})

	t.Run("test double reversal is identity", func(t *testing.T) {
		data := []byte{0x10, 0x20, 0x30, 0x40, 0x50}
		got := ReverseBytes(ReverseBytes(data))
		if !reflect.DeepEqual(got, data) {
			t.Error("double reversal broken:", got)
		}
	})
}

func TestUint32ToLEBytes(t *testing.T) {
	t.Run("test little endian layout", func(t *testing.T) {
		got := Uint32ToLEBytes(0x01020304)
		want := [4]byte{0x04, 0x03, 0x02, 0x01}
		if got != want {
			t.Error("wrong layout")
			t.Error("want:", want)
			t.Error("got :", got)
		}
	})

	t.Run("test decode reproduces the value", func(t *testing.T) {
		var testcases = []uint32{0, 1, 255, 256, 0xdeadbeef, 0xffffffff}

		for _, value := range testcases {
			buf := Uint32ToLEBytes(value)
			if got := binary.LittleEndian.Uint32(buf[:]); got != value {
				t.Errorf("want %d got %d", value, got)
			}
		}
	})
}

package common

import (
	"testing"
)

func TestRipemd160AfterSha256(t *testing.T) {
	t.Run("test hash160 of empty pubkey", func(t *testing.T) {
		// hash160("") = ripemd160(sha256(""))
		want := "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb"
		got, err := Ripemd160AfterSha256(nil)
		if err != nil {
			t.Error(err)
			return
		}
		if EncodeHex(got) != want {
			t.Error("wrong hash160")
			t.Error("want:", want)
			t.Error("got :", EncodeHex(got))
		}
	})

	t.Run("test digest length", func(t *testing.T) {
		got, err := Ripemd160AfterSha256([]byte{0x02, 0x03})
		if err != nil {
			t.Error(err)
			return
		}
		if len(got) != 20 {
			t.Error("wrong digest length:", len(got))
		}
	})
}

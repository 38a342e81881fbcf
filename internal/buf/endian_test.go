package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67}

	if got := U32BE(data); got != 0x01234567 {
		t.Fatalf("U32BE = 0x%x, want 0x01234567", got)
	}

	short := []byte{0xAA}
	if U32BE(short) != 0 {
		t.Fatalf("U32BE short should be 0")
	}

	out := make([]byte, 4)
	PutU32BE(out, 0x89ABCDEF)
	if got := U32BE(out); got != 0x89ABCDEF {
		t.Fatalf("PutU32BE round-trip = 0x%x", got)
	}
	PutU32BE(short, 0x01) // must not panic

	appended := AppendU32BE([]byte{0xFF}, 0x01234567)
	want := []byte{0xFF, 0x01, 0x23, 0x45, 0x67}
	if len(appended) != len(want) {
		t.Fatalf("AppendU32BE length = %d, want %d", len(appended), len(want))
	}
	for i := range want {
		if appended[i] != want[i] {
			t.Fatalf("AppendU32BE[%d] = 0x%x, want 0x%x", i, appended[i], want[i])
		}
	}
}

package answer

import "testing"

func TestEncodeSignedBase36(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want string
	}{
		{"zero", []byte{0x00}, "0"},
		{"positive small", []byte{0x00, 0x24}, "10"}, // 36 decimal == "10" base-36
		{"all-ones is -1", []byte{0xff}, "-1"},        // two's complement -1
		{"min negative byte", []byte{0x80}, "-3k"},    // -128 decimal, 128 = 3*36+20 -> "3k"
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := encodeSignedBase36(tc.in)
			if got != tc.want {
				t.Errorf("encodeSignedBase36(% x) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestEncodeSignedBase36Deterministic(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}
	a := encodeSignedBase36(data)
	b := encodeSignedBase36(data)
	if a != b {
		t.Fatalf("encoding is not deterministic: %q != %q", a, b)
	}
}

func TestChecksumDeterministic(t *testing.T) {
	a := checksum([]byte("A300"))
	b := checksum([]byte("A300"))
	if a != b {
		t.Fatalf("checksum is not deterministic: %q != %q", a, b)
	}
	if checksum([]byte("A300")) == checksum([]byte("A301")) {
		t.Fatal("distinct inputs collided (extremely unlikely, check implementation)")
	}
}

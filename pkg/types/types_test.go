package types

import (
	"encoding/xml"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

func TestParseMACAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"upper case", "00:1A:2B:3C:4D:5E", "00:1A:2B:3C:4D:5E", false},
		{"lower case", "00:1a:2b:3c:4d:5e", "00:1A:2B:3C:4D:5E", false},
		{"dashes", "00-1a-2b-3c-4d-5e", "00:1A:2B:3C:4D:5E", false},
		{"empty", "", "", false},
		{"EUI-64", "00:11:22:33:44:55:66:77", "", true},
		{"garbage", "not-a-mac", "", true},
		{"short", "00:1A:2B", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMACAddress(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMACAddress) {
					t.Errorf("error = %v, want ErrInvalidMACAddress", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := m.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if m.IsValid() != (tt.input != "") {
				t.Errorf("IsValid() = %v", m.IsValid())
			}
		})
	}
}

func TestMACAddressFrom(t *testing.T) {
	m, err := MACAddressFrom(net.HardwareAddr{0x02, 0, 0, 0, 0, 0x01})
	if err != nil {
		t.Fatalf("MACAddressFrom failed: %v", err)
	}
	if m.String() != "02:00:00:00:00:01" {
		t.Errorf("String() = %q", m.String())
	}
	if m.HardwareAddr().String() != "02:00:00:00:00:01" {
		t.Errorf("HardwareAddr() = %v", m.HardwareAddr())
	}
	if (MACAddress{}).HardwareAddr() != nil {
		t.Error("zero value should have nil HardwareAddr")
	}
	if _, err := MACAddressFrom(net.HardwareAddr{1, 2, 3}); err == nil {
		t.Error("expected error for 3-byte address")
	}
}

func TestParseIPAddress(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		is4     bool
		wantErr bool
	}{
		{"192.168.1.1", "192.168.1.1", true, false},
		{"2001:db8::1", "2001:db8::1", false, false},
		{"2001:0db8:0000::0001", "2001:db8::1", false, false},
		{"", "", false, false},
		{"300.1.1.1", "", false, true},
		{"host.example.com", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			a, err := ParseIPAddress(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidIPAddress) {
					t.Errorf("error = %v, want ErrInvalidIPAddress", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := a.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if a.Is4() != tt.is4 {
				t.Errorf("Is4() = %v, want %v", a.Is4(), tt.is4)
			}
		})
	}
}

func TestParseIPPrefix(t *testing.T) {
	p, err := ParseIPPrefix("2001:db8::/64")
	if err != nil {
		t.Fatalf("ParseIPPrefix failed: %v", err)
	}
	if p.String() != "2001:db8::/64" || p.Prefix().Bits() != 64 {
		t.Errorf("prefix = %s", p)
	}

	empty, err := ParseIPPrefix("")
	if err != nil || empty.IsValid() || empty.String() != "" {
		t.Errorf("empty prefix = %v, %v", empty, err)
	}

	for _, bad := range []string{"10.0.0.0", "10.0.0.0/33", "x/8"} {
		if _, err := ParseIPPrefix(bad); !errors.Is(err, ErrInvalidIPPrefix) {
			t.Errorf("ParseIPPrefix(%q) error = %v, want ErrInvalidIPPrefix", bad, err)
		}
	}
}

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"UTC", "2024-03-01T12:00:00Z", "2024-03-01T12:00:00Z"},
		{"offset", "2024-03-01T12:00:00+01:00", "2024-03-01T12:00:00+01:00"},
		{"fraction", "2024-03-01T12:00:00.5Z", "2024-03-01T12:00:00.5Z"},
		{"relative", "0001-01-01T00:01:00", "0001-01-01T00:01:00"},
		{"relative fraction", "0001-01-01T00:00:30.25", "0001-01-01T00:00:30.25"},
		{"unknown", "0001-01-01T00:00:00Z", "0001-01-01T00:00:00Z"},
		{"empty", "", "0001-01-01T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDateTime(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := ParseDateTime("yesterday"); !errors.Is(err, ErrInvalidDateTime) {
		t.Errorf("error = %v, want ErrInvalidDateTime", err)
	}
}

func TestDateTimeSpecialValues(t *testing.T) {
	if !MustParseDateTime("0001-01-01T00:00:00Z").IsUnknown() {
		t.Error("0001-01-01T00:00:00Z should be UnknownTime")
	}
	inf := MustParseDateTime("9999-12-31T23:59:59Z")
	if !inf.IsInfinite() || inf.IsUnknown() {
		t.Error("9999-12-31T23:59:59Z should be InfiniteTime")
	}
	now := DateTimeOf(time.Now())
	if now.IsUnknown() || now.IsInfinite() {
		t.Error("current time is neither unknown nor infinite")
	}
	if !MustParseDateTime("2024-03-01T13:00:00+01:00").Equal(MustParseDateTime("2024-03-01T12:00:00Z")) {
		t.Error("Equal should compare instants")
	}
}

func TestDateTimeRelative(t *testing.T) {
	rel := MustParseDateTime("0001-01-01T01:00:00")
	if !rel.IsRelative() {
		t.Error("a value without time zone should be relative")
	}
	if MustParseDateTime("0001-01-01T01:00:00Z").IsRelative() {
		t.Error("a UTC value should not be relative")
	}
	if rel.Equal(MustParseDateTime("0001-01-01T01:00:00Z")) {
		t.Error("relative and absolute values should differ")
	}

	text, err := rel.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	var back DateTime
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !back.IsRelative() || !back.Equal(rel) {
		t.Errorf("text round trip = %s, want %s", back, rel)
	}

	data, err := cbor.Marshal(rel)
	if err != nil {
		t.Fatalf("cbor.Marshal failed: %v", err)
	}
	back = DateTime{}
	if err := cbor.Unmarshal(data, &back); err != nil || back.String() != "0001-01-01T01:00:00" {
		t.Errorf("CBOR round trip = %s (%v)", back, err)
	}
}

func TestParseHexBinary(t *testing.T) {
	h, err := ParseHexBinary("00FF10")
	if err != nil {
		t.Fatalf("ParseHexBinary failed: %v", err)
	}
	if h.String() != "00ff10" {
		t.Errorf("String() = %q", h.String())
	}
	if !h.Equal(HexBinary{0x00, 0xff, 0x10}) {
		t.Error("Equal failed")
	}
	for _, bad := range []string{"0", "zz"} {
		if _, err := ParseHexBinary(bad); !errors.Is(err, ErrInvalidHexBinary) {
			t.Errorf("ParseHexBinary(%q) error = %v", bad, err)
		}
	}
}

func TestParseBase64(t *testing.T) {
	b, err := ParseBase64("AP8Q")
	if err != nil {
		t.Fatalf("ParseBase64 failed: %v", err)
	}
	if !b.Equal(Base64{0x00, 0xff, 0x10}) || b.String() != "AP8Q" {
		t.Errorf("Base64 = %v", []byte(b))
	}
	if _, err := ParseBase64("A"); !errors.Is(err, ErrInvalidBase64) {
		t.Errorf("error = %v, want ErrInvalidBase64", err)
	}
}

func TestParseUUID(t *testing.T) {
	const canonical = "f81d4fae-7dec-11d0-a765-00a0c91e6bf6"

	u, err := ParseUUID(canonical)
	if err != nil {
		t.Fatalf("ParseUUID failed: %v", err)
	}
	if u.String() != canonical || u.UUID() != uuid.MustParse(canonical) {
		t.Errorf("UUID = %s", u)
	}
	if !MustParseUUID("F81D4FAE-7DEC-11D0-A765-00A0C91E6BF6").Equal(u) {
		t.Error("upper case should parse to the same UUID")
	}

	for _, bad := range []string{
		"f81d4fae7dec11d0a76500a0c91e6bf6",
		"{f81d4fae-7dec-11d0-a765-00a0c91e6bf6}",
		"urn:uuid:f81d4fae-7dec-11d0-a765-00a0c91e6bf6",
		"f81d4fae-7dec-11d0-a765-00a0c91e6bfx",
	} {
		if _, err := ParseUUID(bad); !errors.Is(err, ErrInvalidUUID) {
			t.Errorf("ParseUUID(%q) error = %v, want ErrInvalidUUID", bad, err)
		}
	}

	if NewUUID().Equal(NewUUID()) {
		t.Error("NewUUID should return distinct values")
	}
	if (UUID{}).String() != "" {
		t.Error("zero UUID should be empty")
	}
}

func TestParseStringList(t *testing.T) {
	tests := []struct {
		input string
		want  StringList
	}{
		{"", nil},
		{"  ", nil},
		{"eth0", StringList{"eth0"}},
		{"eth0,eth1", StringList{"eth0", "eth1"}},
		{"eth0, eth1 ,eth2", StringList{"eth0", "eth1", "eth2"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseStringList(tt.input)
			if !got.Equal(tt.want) {
				t.Errorf("ParseStringList(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	l := StringList{"G.711", "G.729"}
	if l.String() != "G.711,G.729" || !l.Contains("G.729") || l.Contains("G.722") {
		t.Errorf("StringList = %v", l)
	}
}

// textCodec is implemented by every named parameter type.
type textCodec interface {
	MarshalText() ([]byte, error)
	UnmarshalText([]byte) error
}

func TestXMLEncoding(t *testing.T) {
	type element struct {
		XMLName xml.Name   `xml:"Entry"`
		MAC     MACAddress `xml:"MAC"`
		IP      IPAddress  `xml:"IP"`
		Prefix  IPPrefix   `xml:"Prefix"`
		When    DateTime   `xml:"When"`
		ID      UUID       `xml:"ID"`
		Data    HexBinary  `xml:"Data"`
		Lower   StringList `xml:"Lower"`
	}

	in := element{
		MAC:    MustParseMACAddress("00:1A:2B:3C:4D:5E"),
		IP:     MustParseIPAddress("192.0.2.1"),
		Prefix: MustParseIPPrefix("198.51.100.0/24"),
		When:   MustParseDateTime("2024-03-01T12:00:00Z"),
		ID:     MustParseUUID("f81d4fae-7dec-11d0-a765-00a0c91e6bf6"),
		Data:   MustParseHexBinary("00ff"),
		Lower:  StringList{"eth0", "eth1"},
	}

	data, err := xml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := "<Entry><MAC>00:1A:2B:3C:4D:5E</MAC><IP>192.0.2.1</IP><Prefix>198.51.100.0/24</Prefix>" +
		"<When>2024-03-01T12:00:00Z</When><ID>f81d4fae-7dec-11d0-a765-00a0c91e6bf6</ID>" +
		"<Data>00ff</Data><Lower>eth0,eth1</Lower></Entry>"
	if string(data) != want {
		t.Errorf("xml = %s\nwant  %s", data, want)
	}

	var out element
	if err := xml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !out.MAC.Equal(in.MAC) || !out.IP.Equal(in.IP) || !out.Prefix.Equal(in.Prefix) ||
		!out.When.Equal(in.When) || !out.ID.Equal(in.ID) || !out.Data.Equal(in.Data) || !out.Lower.Equal(in.Lower) {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestUnmarshalTextErrors(t *testing.T) {
	tests := []struct {
		name  string
		value textCodec
		input string
		err   error
	}{
		{"MACAddress", &MACAddress{}, "xx", ErrInvalidMACAddress},
		{"IPAddress", &IPAddress{}, "xx", ErrInvalidIPAddress},
		{"IPPrefix", &IPPrefix{}, "xx", ErrInvalidIPPrefix},
		{"DateTime", &DateTime{}, "xx", ErrInvalidDateTime},
		{"UUID", &UUID{}, "xx", ErrInvalidUUID},
		{"HexBinary", &HexBinary{}, "xx", ErrInvalidHexBinary},
		{"Base64", &Base64{}, "!!", ErrInvalidBase64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.value.UnmarshalText([]byte(tt.input)); !errors.Is(err, tt.err) {
				t.Errorf("UnmarshalText error = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestCBOREncoding(t *testing.T) {
	mac := MustParseMACAddress("00:1A:2B:3C:4D:5E")
	data, err := cbor.Marshal(mac)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil || s != "00:1A:2B:3C:4D:5E" {
		t.Errorf("MACAddress should encode as text string, got %q (%v)", s, err)
	}

	hexData, err := cbor.Marshal(MustParseHexBinary("00ff"))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var raw []byte
	if err := cbor.Unmarshal(hexData, &raw); err != nil || len(raw) != 2 {
		t.Errorf("HexBinary should encode as byte string, got %x (%v)", raw, err)
	}

	list := StringList{"a", "b"}
	listData, err := cbor.Marshal(list)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var items []string
	if err := cbor.Unmarshal(listData, &items); err != nil || len(items) != 2 {
		t.Errorf("StringList should encode as array, got %v (%v)", items, err)
	}

	var when DateTime
	whenData, _ := cbor.Marshal(MustParseDateTime("2024-03-01T12:00:00Z"))
	if err := cbor.Unmarshal(whenData, &when); err != nil || when.String() != "2024-03-01T12:00:00Z" {
		t.Errorf("DateTime round trip = %s (%v)", when, err)
	}

	var id UUID
	idData, _ := cbor.Marshal(MustParseUUID("f81d4fae-7dec-11d0-a765-00a0c91e6bf6"))
	if err := cbor.Unmarshal(idData, &id); err != nil || !id.IsValid() {
		t.Errorf("UUID round trip = %s (%v)", id, err)
	}

	var prefix IPPrefix
	badData, _ := cbor.Marshal("not a prefix")
	if err := cbor.Unmarshal(badData, &prefix); !errors.Is(err, ErrInvalidIPPrefix) {
		t.Errorf("error = %v, want ErrInvalidIPPrefix", err)
	}
}

package parampath

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		partial bool
		length  int
		wantErr error
	}{
		{name: "parameter path", input: "Device.DeviceInfo.SerialNumber", length: 3},
		{name: "object path", input: "Device.IP.", partial: true, length: 2},
		{name: "table entry", input: "Device.IP.Interface.1.", partial: true, length: 4},
		{name: "schema path", input: "Device.IP.Interface.{i}.IPv4Address.{i}.", partial: true, length: 6},
		{name: "alias reference", input: "Device.IP.Interface.[lan1].Enable", length: 5},
		{name: "vendor extension", input: "Device.X_ACME-COM_Feature.Enable", length: 3},
		{name: "root only", input: "Device.", partial: true, length: 1},
		{name: "empty", input: "", wantErr: ErrEmptyPath},
		{name: "dot only", input: ".", wantErr: ErrInvalidPath},
		{name: "double dot", input: "Device..IP", wantErr: ErrInvalidPath},
		{name: "leading instance", input: "1.Device", wantErr: ErrInvalidPath},
		{name: "instance after instance", input: "Device.IP.Interface.1.2.", wantErr: ErrInvalidPath},
		{name: "zero instance", input: "Device.IP.Interface.0.", wantErr: ErrInvalidInstance},
		{name: "non-numeric instance", input: "Device.IP.Interface.1a.", wantErr: ErrInvalidInstance},
		{name: "empty alias", input: "Device.IP.Interface.[].", wantErr: ErrInvalidPath},
		{name: "bad character", input: "Device.IP Interface", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if p.IsPartial() != tt.partial {
				t.Errorf("IsPartial() = %v, want %v", p.IsPartial(), tt.partial)
			}
			if p.Len() != tt.length {
				t.Errorf("Len() = %d, want %d", p.Len(), tt.length)
			}
			if p.String() != tt.input {
				t.Errorf("String() = %q, want %q", p.String(), tt.input)
			}
		})
	}
}

func TestSegments(t *testing.T) {
	p := MustParse("Device.IP.Interface.[lan1].IPv4Address.2.Enable")

	want := []Segment{
		{Kind: SegmentName, Name: "Device"},
		{Kind: SegmentName, Name: "IP"},
		{Kind: SegmentName, Name: "Interface"},
		{Kind: SegmentAlias, Name: "lan1"},
		{Kind: SegmentName, Name: "IPv4Address"},
		{Kind: SegmentInstance, Instance: 2},
		{Kind: SegmentName, Name: "Enable"},
	}
	got := p.Segments()
	if len(got) != len(want) {
		t.Fatalf("got %d segments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if p.Last().Name != "Enable" {
		t.Errorf("Last() = %+v", p.Last())
	}
}

func TestSchema(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Device.IP.Interface.1.Enable", "Device.IP.Interface.{i}.Enable"},
		{"Device.IP.Interface.[wan].IPv4Address.3.", "Device.IP.Interface.{i}.IPv4Address.{i}."},
		{"VoiceService.1.CallControl.Line.2.DirectoryNumber", "VoiceService.{i}.CallControl.Line.{i}.DirectoryNumber"},
		{"Device.DeviceInfo.", "Device.DeviceInfo."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MustParse(tt.input).Schema().String(); got != tt.want {
				t.Errorf("Schema() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilders(t *testing.T) {
	root := MustParse("Device.")

	iface := root.Child("IP").Child("Interface").Instance(2)
	if iface.String() != "Device.IP.Interface.2." {
		t.Errorf("instance path = %q", iface.String())
	}

	enable := iface.Parameter("Enable")
	if enable.String() != "Device.IP.Interface.2.Enable" {
		t.Errorf("parameter path = %q", enable.String())
	}
	if enable.IsPartial() {
		t.Error("parameter path must not be partial")
	}

	if got := iface.Parent().String(); got != "Device.IP.Interface." {
		t.Errorf("Parent() = %q", got)
	}
	if got := enable.Parent().String(); got != "Device.IP.Interface.2." {
		t.Errorf("Parent() of parameter = %q", got)
	}
	if got := root.Parent().String(); got != "" {
		t.Errorf("Parent() of root = %q, want empty", got)
	}

	// Builders must not alias the receiver's segments.
	a := iface.Parameter("Name")
	b := iface.Parameter("Status")
	if a.String() != "Device.IP.Interface.2.Name" || b.String() != "Device.IP.Interface.2.Status" {
		t.Errorf("builders share storage: %q, %q", a.String(), b.String())
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		path   string
		prefix string
		want   bool
	}{
		{"Device.IP.Interface.1.Enable", "Device.", true},
		{"Device.IP.Interface.1.Enable", "Device.IP.Interface.1.", true},
		{"Device.IP.Interface.1.Enable", "Device.IP.Interface.2.", false},
		{"Device.IP.Interface.1.Enable", "Device.IP.Interface.1.Enable", true},
		{"Device.IP.Interface.1.Enable", "Device.IP", false},
		{"Device.IP.", "Device.IP.Interface.", false},
		{"Device.IP.", "Device.IP.", true},
	}

	for _, tt := range tests {
		t.Run(tt.path+"~"+tt.prefix, func(t *testing.T) {
			got := MustParse(tt.path).HasPrefix(MustParse(tt.prefix))
			if got != tt.want {
				t.Errorf("HasPrefix = %v, want %v", got, tt.want)
			}
		})
	}
}

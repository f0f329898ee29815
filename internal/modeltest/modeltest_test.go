package modeltest

import (
	"strings"
	"testing"

	"github.com/cwmp-models/cwmp-go/pkg/datamodel/tr181"
	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/params"
)

func TestResultString(t *testing.T) {
	if got := Pass("ok").String(); got != "PASS: ok" {
		t.Errorf("Pass.String() = %q", got)
	}
	if got := Fail("bad", 1, 2).String(); got != "FAIL: bad (expected 1, got 2)" {
		t.Errorf("Fail.String() = %q", got)
	}
	if n := len(Failures([]*Result{Pass("a"), Fail("b", nil, nil), Pass("c")})); n != 1 {
		t.Errorf("Failures returned %d results, want 1", n)
	}
}

func TestCheckObjectDevice(t *testing.T) {
	results := CheckObject(tr181.NewDevice().CWMPObject())
	if len(results) == 0 {
		t.Fatal("no results")
	}
	Report(t, results)
}

func TestCheckDefaultsDetectsMismatch(t *testing.T) {
	ms := tr181.NewManagementServer()
	ms.PeriodicInformInterval = 60

	failed := Failures(CheckDefaults(ms))
	if len(failed) != 1 {
		t.Fatalf("got %d failures, want 1: %v", len(failed), failed)
	}
	if !strings.Contains(failed[0].Message, "PeriodicInformInterval") {
		t.Errorf("failure names %q", failed[0].Message)
	}
}

func TestCheckDefaultsDetectsUndeclaredValue(t *testing.T) {
	info := tr181.NewDeviceInfo()
	info.Manufacturer = "Acme"

	if failed := Failures(CheckDefaults(info)); len(failed) != 1 {
		t.Errorf("got %d failures, want 1", len(failed))
	}
}

func TestPopulate(t *testing.T) {
	d := tr181.NewDevice()
	if err := Populate(d, 2); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}

	if d.IP == nil || len(d.IP.Interface) != 2 {
		t.Fatalf("IP.Interface not populated: %+v", d.IP)
	}
	if len(d.IP.Interface[1].IPv4Address) != 2 {
		t.Errorf("nested table has %d entries, want 2", len(d.IP.Interface[1].IPv4Address))
	}
	if d.IP.Interface[0].Alias == d.IP.Interface[1].Alias {
		t.Errorf("entries share alias %q", d.IP.Interface[0].Alias)
	}
	if d.IP.Interface[0].Stats == nil {
		t.Error("single-instance child not created")
	}
	if got := d.DeviceInfo.ManufacturerOUI; len(got) != 6 {
		t.Errorf("ManufacturerOUI = %q, want 6 characters", got)
	}

	if err := model.Validate(d); err != nil {
		t.Errorf("populated tree does not validate: %v", err)
	}
}

func TestSampleValue(t *testing.T) {
	tests := []struct {
		name  string
		param model.ParameterMetadata
		n     int
		want  string
	}{
		{"enumeration", model.ParameterMetadata{Name: "Mode", Type: model.TypeString, Enumeration: []string{"Auto", "Manual"}}, 3, "Auto"},
		{"string", model.ParameterMetadata{Name: "Name", Type: model.TypeString}, 2, "Name-2"},
		{"trimmed", model.ParameterMetadata{Name: "Identifier", Type: model.TypeString, MaxLength: 4}, 7, "er-7"},
		{"padded", model.ParameterMetadata{Name: "A", Type: model.TypeString, MinLength: 6}, 1, "000A-1"},
		{"range minimum", model.ParameterMetadata{Name: "MTU", Type: model.TypeUnsignedInt, MinValue: model.Int64(64)}, 2, "64"},
		{"range maximum", model.ParameterMetadata{Name: "Level", Type: model.TypeInt, MaxValue: model.Int64(1)}, 5, "1"},
		{"IPv4", model.ParameterMetadata{Name: "IPAddress", Type: model.TypeIPv4Address}, 1, "192.0.2.2"},
		{"IPv6", model.ParameterMetadata{Name: "IPAddress", Type: model.TypeIPv6Address}, 10, "2001:db8::a"},
		{"MAC", model.ParameterMetadata{Name: "MACAddress", Type: model.TypeMACAddress}, 1, "02:00:00:00:00:01"},
		{"boolean", model.ParameterMetadata{Name: "Enable", Type: model.TypeBoolean}, 1, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleValue(&tt.param, tt.n)
			if got != tt.want {
				t.Errorf("SampleValue = %q, want %q", got, tt.want)
			}
			v, err := params.ParseValue(&tt.param, got)
			if err != nil {
				t.Fatalf("sample does not parse: %v", err)
			}
			if err := params.CheckValue(&tt.param, got, v); err != nil {
				t.Errorf("sample violates bounds: %v", err)
			}
		})
	}
}

func TestSampleValueUUIDStable(t *testing.T) {
	p := &model.ParameterMetadata{Name: "UUID", Type: model.TypeUUID}
	if SampleValue(p, 1) != SampleValue(p, 1) {
		t.Error("UUID sample not deterministic")
	}
	if SampleValue(p, 1) == SampleValue(p, 2) {
		t.Error("UUID samples of different entries are equal")
	}
}

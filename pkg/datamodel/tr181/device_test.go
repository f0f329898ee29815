package tr181

import (
	"errors"
	"strings"
	"testing"

	"github.com/cwmp-models/cwmp-go/internal/modeltest"
	"github.com/cwmp-models/cwmp-go/pkg/codec"
	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/types"
)

func TestObjectsConform(t *testing.T) {
	objects := modeltest.Objects("Device")
	if len(objects) != 15 {
		t.Errorf("registered %d Device objects, want 15", len(objects))
	}
	for _, meta := range objects {
		t.Run(meta.Type, func(t *testing.T) {
			modeltest.Report(t, modeltest.CheckObject(meta))
		})
	}
}

func TestDefaults(t *testing.T) {
	ms := NewManagementServer()
	if !ms.EnableCWMP {
		t.Error("ManagementServer.EnableCWMP defaults to false, want true")
	}
	if ms.PeriodicInformInterval != 86400 {
		t.Errorf("PeriodicInformInterval = %d, want 86400", ms.PeriodicInformInterval)
	}
	if ms.CWMPRetryIntervalMultiplier != 2000 {
		t.Errorf("CWMPRetryIntervalMultiplier = %d, want 2000", ms.CWMPRetryIntervalMultiplier)
	}
	if got := NewIPInterface().MaxMTUSize; got != 1500 {
		t.Errorf("IPInterface.MaxMTUSize = %d, want 1500", got)
	}
	if addr := NewIPv6Address(); !addr.PreferredLifetime.IsInfinite() || !addr.ValidLifetime.IsInfinite() {
		t.Errorf("IPv6Address lifetimes = %v, %v, want infinite", addr.PreferredLifetime, addr.ValidLifetime)
	}
	if !NewDeviceInfo().FirstUseDate.IsUnknown() {
		t.Error("DeviceInfo.FirstUseDate is set on a new object")
	}
}

func TestRegistry(t *testing.T) {
	meta, err := model.LookupRoot("Device")
	if err != nil {
		t.Fatalf("LookupRoot failed: %v", err)
	}
	if meta != metaDevice {
		t.Errorf("LookupRoot returned %s", meta.Name)
	}

	obj, err := model.New("Device.IP.Interface.{i}.IPv6Address.{i}.")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, ok := obj.(*IPv6Address); !ok {
		t.Errorf("New returned %T, want *IPv6Address", obj)
	}

	if _, err := model.New("Device.WiFi."); !errors.Is(err, model.ErrUnknownObject) {
		t.Errorf("New(Device.WiFi.) error = %v, want ErrUnknownObject", err)
	}
}

func sampleDevice() *Device {
	return NewDevice().
		WithRootDataModelVersion("2.16").
		WithDeviceInfo(NewDeviceInfo().
			WithManufacturerOUI("00D09E").
			WithFirstUseDate(types.MustParseDateTime("2024-03-01T08:00:00Z"))).
		WithEthernet(NewEthernet().WithInterface(NewEthernetInterface().
			WithAlias("eth0").
			WithName("eth0").
			WithMACAddress(types.MustParseMACAddress("00:D0:9E:01:02:03")).
			WithMaxBitRate(-1))).
		WithIP(NewIP().
			WithULAPrefix(types.MustParseIPPrefix("fd00:1234::/48")).
			WithInterface(NewIPInterface().
				WithAlias("lan").
				WithName("br0").
				WithLowerLayers(types.StringList{"Device.Ethernet.Interface.1"}).
				WithIPv6Address(NewIPv6Address().
					WithAlias("ula").
					WithIPAddress(types.MustParseIPAddress("fd00:1234::1"))))).
		WithSoftwareModules(NewSoftwareModules().WithDeploymentUnit(NewDeploymentUnit().
			WithUUID(types.MustParseUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8")).
			WithName("agent").
			WithVersion("1.0")))
}

func TestXMLRoundTrip(t *testing.T) {
	d := sampleDevice()

	data, err := codec.MarshalXML(d)
	if err != nil {
		t.Fatalf("MarshalXML failed: %v", err)
	}
	doc := string(data)
	for _, want := range []string{
		"<MACAddress>00:D0:9E:01:02:03</MACAddress>",
		"<ULAPrefix>fd00:1234::/48</ULAPrefix>",
		"<PreferredLifetime>9999-12-31T23:59:59Z</PreferredLifetime>",
		"<UUID>6ba7b810-9dad-11d1-80b4-00c04fd430c8</UUID>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document does not contain %s", want)
		}
	}

	got, err := codec.DecodeXML(data)
	if err != nil {
		t.Fatalf("DecodeXML failed: %v", err)
	}
	if diff := modeltest.Diff(d, got); diff != "" {
		t.Errorf("XML round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPopulatedRoundTrips(t *testing.T) {
	d := NewDevice()
	if err := modeltest.Populate(d, 2); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}

	for _, f := range []codec.Format{codec.FormatXML, codec.FormatCBOR} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := codec.Encode(f, d)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			got, err := codec.Decode(f, data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if diff := modeltest.Diff(d, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateUniqueKeys(t *testing.T) {
	d := sampleDevice()
	if err := model.Validate(d); err != nil {
		t.Fatalf("sample device does not validate: %v", err)
	}

	// Same UUID with a different version is a different deployment unit
	sm := d.SoftwareModules
	sm.WithDeploymentUnit(NewDeploymentUnit().
		WithUUID(sm.DeploymentUnit[0].UUID).
		WithAlias("agent-2").
		WithVersion("2.0"))
	if err := model.Validate(d); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	sm.DeploymentUnit[1].Version = "1.0"
	if err := model.Validate(d); !errors.Is(err, model.ErrNotUnique) {
		t.Errorf("Validate error = %v, want ErrNotUnique", err)
	}
}

func TestValidateBounds(t *testing.T) {
	d := sampleDevice()
	d.DeviceInfo.ManufacturerOUI = "00D0"
	d.IP.Interface[0].MaxMTUSize = 70000

	err := model.Validate(d)
	if !errors.Is(err, model.ErrConstraint) {
		t.Fatalf("Validate error = %v, want ErrConstraint", err)
	}
	for _, field := range []string{"ManufacturerOUI", "MaxMTUSize"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error does not mention %s: %v", field, err)
		}
	}
}

package interactive

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwmp-models/cwmp-go/cmd/cwmp-inspect/commands"
	"github.com/cwmp-models/cwmp-go/pkg/datamodel/tr104"
	"github.com/cwmp-models/cwmp-go/pkg/datamodel/tr181"
)

func newTestShell(t *testing.T) (*Shell, *tr181.Device, *bytes.Buffer) {
	t.Helper()
	device := tr181.NewDevice().
		WithManagementServer(tr181.NewManagementServer()).
		WithIP(tr181.NewIP().WithInterface(
			tr181.NewIPInterface().WithAlias("lan").WithName("br0")))

	path := filepath.Join(t.TempDir(), "device.xml")
	s := New(path, device, commands.Options{})
	var buf bytes.Buffer
	s.SetOutput(&buf)
	return s, device, &buf
}

func TestShellGet(t *testing.T) {
	s, _, buf := newTestShell(t)

	s.Execute("get Device.IP.Interface.1.Name")
	if got := buf.String(); got != "Name = \"br0\"  [string, R]\n" {
		t.Errorf("get output = %q", got)
	}

	buf.Reset()
	s.Execute("get Device.ManagementServer.")
	if !strings.Contains(buf.String(), "Device.ManagementServer.PeriodicInformInterval") {
		t.Errorf("get object should list parameters:\n%s", buf.String())
	}

	buf.Reset()
	s.Execute("get Device.Nope")
	if !strings.HasPrefix(buf.String(), "Error:") {
		t.Errorf("expected error, got %q", buf.String())
	}
}

func TestShellSet(t *testing.T) {
	s, device, buf := newTestShell(t)

	s.Execute("set Device.IP.Interface.[lan].Enable true")
	if !device.IP.Interface[0].Enable {
		t.Error("Enable was not set")
	}
	if !s.Modified() {
		t.Error("shell should be modified after set")
	}
	if !strings.Contains(buf.String(), "Enable = true") {
		t.Errorf("set should echo the new value, got %q", buf.String())
	}

	buf.Reset()
	s.Execute("set Device.IP.Interface.1.Name eth0")
	if !strings.Contains(buf.String(), "not writable") {
		t.Errorf("expected not writable error, got %q", buf.String())
	}
	if device.IP.Interface[0].Name != "br0" {
		t.Error("read-only parameter was changed")
	}
}

func TestShellSetValueWithSpaces(t *testing.T) {
	s, device, _ := newTestShell(t)

	s.Execute("set Device.ManagementServer.Username cpe user")
	if device.ManagementServer.Username != "cpe user" {
		t.Errorf("Username = %q", device.ManagementServer.Username)
	}
}

func TestShellTreeAndNames(t *testing.T) {
	s, _, buf := newTestShell(t)

	s.Execute("tree Device.IP.")
	if !strings.HasPrefix(buf.String(), "Device.IP.\n") {
		t.Errorf("tree output = %q", buf.String())
	}

	buf.Reset()
	s.Execute("names Device.IP. -next")
	want := "" +
		"  R  Device.IP.IPv4Capable\n" +
		"  W  Device.IP.IPv4Enable\n" +
		"  R  Device.IP.IPv4Status\n" +
		"  R  Device.IP.IPv6Capable\n" +
		"  W  Device.IP.IPv6Enable\n" +
		"  R  Device.IP.IPv6Status\n" +
		"  W  Device.IP.ULAPrefix\n" +
		"  R  Device.IP.InterfaceNumberOfEntries\n" +
		"  W  Device.IP.Interface.\n"
	if buf.String() != want {
		t.Errorf("names output = %q, want %q", buf.String(), want)
	}
}

func TestShellSave(t *testing.T) {
	s, _, buf := newTestShell(t)

	s.Execute("set Device.IP.Interface.1.Enable true")
	out := filepath.Join(t.TempDir(), "saved.cbor")
	s.Execute("save " + out)
	if s.Modified() {
		t.Error("save should clear the modified flag")
	}
	if !strings.Contains(buf.String(), "Saved "+out) {
		t.Errorf("save output = %q", buf.String())
	}

	obj, err := commands.Load(out)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !obj.(*tr181.Device).IP.Interface[0].Enable {
		t.Error("saved document lost the change")
	}
}

func TestShellValidate(t *testing.T) {
	s, device, buf := newTestShell(t)

	s.Execute("validate")
	if buf.String() != "OK\n" {
		t.Errorf("validate output = %q", buf.String())
	}

	device.IP.Interface = append(device.IP.Interface, tr181.NewIPInterface().WithAlias("lan"))
	buf.Reset()
	s.Execute("validate")
	if !strings.HasPrefix(buf.String(), "INVALID") {
		t.Errorf("validate output = %q", buf.String())
	}
}

func TestShellMultiInstanceRoot(t *testing.T) {
	vs := tr104.NewVoiceService()
	s := New("voice.xml", vs, commands.Options{RootInstance: 2})
	var buf bytes.Buffer
	s.SetOutput(&buf)

	s.Execute("names")
	if !strings.HasPrefix(buf.String(), "  R  VoiceService.2.\n") {
		t.Errorf("names output = %q", buf.String())
	}

	// Paths are checked against the configured root instance
	buf.Reset()
	s.Execute("get VoiceService.1.Alias")
	if !strings.HasPrefix(buf.String(), "Error:") {
		t.Errorf("expected error for wrong instance, got %q", buf.String())
	}
}

func TestShellQuit(t *testing.T) {
	s, _, buf := newTestShell(t)

	if !s.Execute("") {
		t.Error("empty line should not exit")
	}
	if !s.Execute("bogus") {
		t.Error("unknown command should not exit")
	}
	if !strings.Contains(buf.String(), "Unknown command: bogus") {
		t.Errorf("unexpected output %q", buf.String())
	}
	if s.Execute("quit") {
		t.Error("quit should exit")
	}
}

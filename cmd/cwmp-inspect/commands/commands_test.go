package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-models/cwmp-go/pkg/codec"
	"github.com/cwmp-models/cwmp-go/pkg/datamodel/tr104"
	"github.com/cwmp-models/cwmp-go/pkg/datamodel/tr181"
	"github.com/cwmp-models/cwmp-go/pkg/params"
)

// writeDevice saves a Device with one IP interface and returns the path.
func writeDevice(t *testing.T, name string) string {
	t.Helper()
	device := tr181.NewDevice().
		WithDeviceInfo(tr181.NewDeviceInfo().WithManufacturer("Acme")).
		WithManagementServer(tr181.NewManagementServer()).
		WithIP(tr181.NewIP().WithInterface(
			tr181.NewIPInterface().WithAlias("lan").WithName("br0")))

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, Save(path, device))
	return path
}

func TestLoadSave(t *testing.T) {
	for _, name := range []string{"device.xml", "device.cbor"} {
		t.Run(name, func(t *testing.T) {
			path := writeDevice(t, name)

			obj, err := Load(path)
			require.NoError(t, err)
			device, ok := obj.(*tr181.Device)
			require.True(t, ok, "got %T", obj)
			require.NotNil(t, device.DeviceInfo)
			assert.Equal(t, "Acme", device.DeviceInfo.Manufacturer)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "device.json"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestRunView(t *testing.T) {
	path := writeDevice(t, "device.xml")

	var buf bytes.Buffer
	require.NoError(t, RunView(path, ViewOptions{}, &buf))
	output := buf.String()

	assert.True(t, strings.HasPrefix(output, "Device.\n"), "output: %s", output)
	assert.Contains(t, output, `Manufacturer = "Acme"  [string, R]`)
	assert.Contains(t, output, "Device.IP.Interface.1.  [deletable]")
}

func TestRunViewTable(t *testing.T) {
	path := writeDevice(t, "device.xml")

	var buf bytes.Buffer
	require.NoError(t, RunView(path, ViewOptions{Path: "Device.DeviceInfo.", Table: true}, &buf))
	output := buf.String()

	assert.Contains(t, output, "PATH")
	assert.Contains(t, output, "Device.DeviceInfo.Manufacturer")
	assert.NotContains(t, output, "Device.IP.")
}

func TestRunGet(t *testing.T) {
	path := writeDevice(t, "device.xml")

	var buf bytes.Buffer
	err := RunGet(path, []string{"Device.IP.Interface.[lan].Name", "Device.IP.InterfaceNumberOfEntries"}, Options{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, "Device.IP.Interface.1.Name = br0\nDevice.IP.InterfaceNumberOfEntries = 1\n", buf.String())

	err = RunGet(path, []string{"Device.Nope"}, Options{}, &buf)
	var fault *params.Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, params.FaultInvalidParameterName, fault.Code)
}

func TestRunNames(t *testing.T) {
	path := writeDevice(t, "device.xml")

	var buf bytes.Buffer
	require.NoError(t, RunNames(path, "Device.IP.", true, Options{}, &buf))
	assert.Equal(t, "" +
		"R  Device.IP.IPv4Capable\n" +
		"W  Device.IP.IPv4Enable\n" +
		"R  Device.IP.IPv4Status\n" +
		"R  Device.IP.IPv6Capable\n" +
		"W  Device.IP.IPv6Enable\n" +
		"R  Device.IP.IPv6Status\n" +
		"W  Device.IP.ULAPrefix\n" +
		"R  Device.IP.InterfaceNumberOfEntries\n" +
		"W  Device.IP.Interface.\n",
		buf.String())
}

func TestParseAssignments(t *testing.T) {
	values, err := ParseAssignments([]string{"Device.IP.Interface.1.Enable=true", "Device.ManagementServer.URL=http://a/b?x=1"})
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "Device.IP.Interface.1.Enable", values[0].Name)
	assert.Equal(t, "true", values[0].Value)
	assert.Equal(t, "http://a/b?x=1", values[1].Value)

	for _, bad := range []string{"Device.IP.Interface.1.Enable", "=true"} {
		_, err := ParseAssignments([]string{bad})
		assert.ErrorIs(t, err, ErrInvalidAssignment, bad)
	}
}

func TestRunSet(t *testing.T) {
	path := writeDevice(t, "device.xml")
	out := filepath.Join(t.TempDir(), "out.cbor")

	var buf bytes.Buffer
	err := RunSet(path, []string{"Device.IP.Interface.1.Enable=true", "Device.ManagementServer.PeriodicInformInterval=3600"}, out, Options{}, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Set 2 parameter(s)")

	obj, err := Load(out)
	require.NoError(t, err)
	device := obj.(*tr181.Device)
	assert.True(t, device.IP.Interface[0].Enable)
	assert.Equal(t, uint32(3600), device.ManagementServer.PeriodicInformInterval)
}

func TestRunSetRejected(t *testing.T) {
	path := writeDevice(t, "device.xml")
	out := filepath.Join(t.TempDir(), "out.xml")

	var buf bytes.Buffer
	err := RunSet(path, []string{"Device.IP.Interface.1.Enable=true", "Device.IP.Interface.1.Name=eth0"}, out, Options{}, &buf)
	var fault *params.Fault
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, params.FaultInvalidArguments, fault.Code)

	_, err = Load(out)
	assert.Error(t, err, "nothing should be written")
}

func TestRunValidate(t *testing.T) {
	path := writeDevice(t, "device.xml")

	var buf bytes.Buffer
	require.NoError(t, RunValidate(path, &buf))
	assert.Contains(t, buf.String(), "OK (Device.)")

	dup := tr104.NewVoiceService().WithCallControl(tr104.NewCallControl().WithLine(
		tr104.NewLine().WithDirectoryNumber("100"),
		tr104.NewLine().WithDirectoryNumber("100"),
	))
	bad := filepath.Join(t.TempDir(), "voice.xml")
	require.NoError(t, Save(bad, dup))

	buf.Reset()
	err := RunValidate(bad, &buf)
	require.Error(t, err)
	assert.True(t, IsViolation(err))
	assert.Contains(t, buf.String(), "INVALID")
}

func TestRunValidateMissingDocument(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.xml")

	var buf bytes.Buffer
	err := RunValidate(missing, &buf)
	require.Error(t, err)
	assert.False(t, IsViolation(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "nope.xml")
	assert.Empty(t, buf.String())
}

func TestRunConvert(t *testing.T) {
	in := writeDevice(t, "device.xml")
	out := filepath.Join(t.TempDir(), "device.cbor")

	require.NoError(t, RunConvert(in, out, Options{}))

	obj, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, "br0", obj.(*tr181.Device).IP.Interface[0].Name)

	err = RunConvert(in, filepath.Join(t.TempDir(), "device.txt"), Options{})
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
}

package specparse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleModel = `
name: "Device:2.16"
spec: "urn:broadband-forum-org:tr-181-2-16-0"
package: tr181
objects:
  - name: "Device."
    access: readOnly
    parameters:
      - name: RootDataModelVersion
        type: string
        maxLength: 32
  - name: "Device.IP."
    parameters:
      - name: IPv4Enable
        type: boolean
        access: readWrite
        default: false
  - name: "Device.IP.Interface.{i}."
    access: readWrite
    numEntriesParameter: InterfaceNumberOfEntries
    uniqueKeys: [[Alias], [Name]]
    parameters:
      - name: Alias
        type: Alias
        access: readWrite
        maxLength: 64
      - name: Name
        type: string
        maxLength: 64
      - name: MaxMTUSize
        type: unsignedInt
        min: 64
        max: 65535
        default: 1500
  - name: "Device.IP.Interface.{i}.IPv4Address.{i}."
    type: IPv4Address
    parameters:
      - name: IPAddress
        type: IPv4Address
`

func TestParseModelDef(t *testing.T) {
	def, err := ParseModelDef([]byte(sampleModel))
	require.NoError(t, err)

	assert.Equal(t, "Device:2.16", def.Name)
	assert.Equal(t, "tr181", def.Package)
	require.Len(t, def.Objects, 4)

	iface, ok := def.Object("Device.IP.Interface.{i}.")
	require.True(t, ok)
	assert.Equal(t, "Interface", iface.Type, "type derived from path")
	assert.True(t, iface.IsMultiInstance())
	assert.Equal(t, "InterfaceNumberOfEntries", iface.NumEntriesParameter)
	assert.Equal(t, [][]string{{"Alias"}, {"Name"}}, iface.UniqueKeys)

	mtu := iface.Parameters[2]
	require.NotNil(t, mtu.Min)
	require.NotNil(t, mtu.Max)
	assert.Equal(t, int64(64), *mtu.Min)
	assert.Equal(t, int64(65535), *mtu.Max)
	assert.True(t, mtu.HasDefault())
	assert.Equal(t, "1500", mtu.DefaultString())

	ip, _ := def.Object("Device.IP.")
	assert.Equal(t, "false", ip.Parameters[0].DefaultString())
	assert.False(t, iface.Parameters[0].HasDefault())
}

func TestParseModelDefErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantMsg string
	}{
		{
			name:    "missing name",
			yaml:    "objects: []",
			wantMsg: "missing name",
		},
		{
			name: "missing trailing dot",
			yaml: `
name: "Device:2.16"
objects:
  - name: "Device"
`,
			wantMsg: "must end with",
		},
		{
			name: "unknown parameter type",
			yaml: `
name: "Device:2.16"
objects:
  - name: "Device."
    parameters:
      - name: Foo
        type: float
`,
			wantMsg: "unknown data type",
		},
		{
			name: "bad access",
			yaml: `
name: "Device:2.16"
objects:
  - name: "Device."
    access: writeOnly
`,
			wantMsg: "access",
		},
		{
			name: "missing parent",
			yaml: `
name: "Device:2.16"
objects:
  - name: "Device."
  - name: "Device.IP.Interface.{i}."
`,
			wantMsg: "parent \"Device.IP.\" not defined",
		},
		{
			name: "unique key not a parameter",
			yaml: `
name: "Device:2.16"
objects:
  - name: "Device."
  - name: "Device.Hosts.Host.{i}."
    uniqueKeys: [[PhysAddress]]
`,
			wantMsg: "unique key PhysAddress",
		},
		{
			name: "duplicate type",
			yaml: `
name: "Device:2.16"
objects:
  - name: "Device."
  - name: "Device.A."
  - name: "Device.A.Stats."
  - name: "Device.B."
  - name: "Device.B.Stats."
`,
			wantMsg: "type Stats already used",
		},
		{
			name: "duplicate parameter",
			yaml: `
name: "Device:2.16"
objects:
  - name: "Device."
    parameters:
      - {name: Foo, type: string}
      - {name: Foo, type: string}
`,
			wantMsg: "defined twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseModelDef([]byte(tt.yaml))
			require.Error(t, err)
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestCheckWrapsErrInvalidModel(t *testing.T) {
	_, err := ParseModelDef([]byte("name: X\nobjects:\n  - name: X\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidModel))
}

func TestChildren(t *testing.T) {
	def, err := ParseModelDef([]byte(sampleModel))
	require.NoError(t, err)

	roots := def.Roots()
	require.Len(t, roots, 1)
	assert.Equal(t, "Device.", roots[0].Name)

	var names []string
	for _, c := range def.Children("Device.IP.Interface.{i}.") {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Device.IP.Interface.{i}.IPv4Address.{i}."}, names)
	assert.Empty(t, def.Children("Device.IP.Interface.{i}.IPv4Address.{i}."))
}

func TestParentPath(t *testing.T) {
	tests := []struct {
		in, parent, segment string
	}{
		{"Device.", "", "Device"},
		{"Device.IP.", "Device.", "IP"},
		{"Device.IP.Interface.{i}.", "Device.IP.", "Interface"},
		{"Device.IP.Interface.{i}.IPv4Address.{i}.", "Device.IP.Interface.{i}.", "IPv4Address"},
		{"VoiceService.{i}.", "", "VoiceService"},
		{"VoiceService.{i}.Capabilities.", "VoiceService.{i}.", "Capabilities"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.parent, ParentPath(tt.in))
			assert.Equal(t, tt.segment, ObjectSegment(tt.in))
		})
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	data := `
description: test
models:
  - file: tr181/device.yaml
    output: ../pkg/datamodel/tr181
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Models, 1)
	assert.Equal(t, filepath.Join(dir, "tr181", "device.yaml"), m.Models[0].File)
	assert.Equal(t, filepath.Join(dir, "..", "pkg", "datamodel", "tr181"), m.Models[0].Output)
}

func TestParseManifestMissingFields(t *testing.T) {
	_, err := ParseManifest([]byte("models:\n  - file: a.yaml\n"))
	assert.Error(t, err)
}

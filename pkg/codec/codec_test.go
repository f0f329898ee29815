package codec

import (
	"errors"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-models/cwmp-go/pkg/datamodel/tr104"
	"github.com/cwmp-models/cwmp-go/pkg/datamodel/tr181"
	"github.com/cwmp-models/cwmp-go/pkg/model"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"xml", FormatXML, false},
		{"XML", FormatXML, false},
		{"cbor", FormatCBOR, false},
		{"cbr", FormatCBOR, false},
		{"json", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("testdata/device.xml")
	require.NoError(t, err)
	assert.Equal(t, FormatXML, f)

	f, err = FormatFromPath("/tmp/voice.cbor")
	require.NoError(t, err)
	assert.Equal(t, FormatCBOR, f)

	_, err = FormatFromPath("device")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMarshalXML(t *testing.T) {
	d := tr181.NewDevice().
		WithRootDataModelVersion("2.16").
		WithManagementServer(tr181.NewManagementServer().WithURL("https://acs.example.com"))

	data, err := MarshalXML(d)
	require.NoError(t, err)

	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, doc, "<Device>\n  <RootDataModelVersion>2.16</RootDataModelVersion>")
	assert.Contains(t, doc, "    <URL>https://acs.example.com</URL>")
	assert.NotContains(t, doc, "<DeviceInfo>")
	assert.True(t, strings.HasSuffix(doc, "</Device>\n"))
}

func TestDecodeXMLSelectsRoot(t *testing.T) {
	obj, err := DecodeXML([]byte(`<?xml version="1.0"?>
<!-- voice gateway -->
<VoiceService>
  <Alias>voice</Alias>
  <CallControl>
    <Line><DirectoryNumber>100</DirectoryNumber></Line>
    <Line><DirectoryNumber>101</DirectoryNumber></Line>
  </CallControl>
</VoiceService>`))
	require.NoError(t, err)

	vs, ok := obj.(*tr104.VoiceService)
	require.True(t, ok, "DecodeXML returned %T", obj)
	assert.Equal(t, "voice", vs.Alias)
	require.NotNil(t, vs.CallControl)
	require.Len(t, vs.CallControl.Line, 2)
	assert.Equal(t, "101", vs.CallControl.Line[1].DirectoryNumber)
}

func TestDecodeXMLAllocatesChildren(t *testing.T) {
	obj, err := DecodeXML([]byte(`<Device><ManagementServer><URL>x</URL></ManagementServer></Device>`))
	require.NoError(t, err)

	d := obj.(*tr181.Device)
	require.NotNil(t, d.ManagementServer)
	// The root is created by its constructor; children are allocated by the decoder
	assert.Equal(t, "x", d.ManagementServer.URL)
	assert.Zero(t, d.ManagementServer.PeriodicInformInterval)
}

func TestDecodeXMLErrors(t *testing.T) {
	_, err := DecodeXML([]byte("  "))
	assert.ErrorIs(t, err, ErrNoRootElement)

	_, err = DecodeXML([]byte("<InternetGatewayDevice/>"))
	assert.ErrorIs(t, err, model.ErrUnknownObject)

	_, err = DecodeXML([]byte("<Device><RootDataModelVersion>"))
	assert.Error(t, err)

	err = UnmarshalXML([]byte("<Device><DeviceInfo><UpTime>soon</UpTime></DeviceInfo></Device>"), tr181.NewDevice())
	assert.Error(t, err)
}

func TestCBORDeterministic(t *testing.T) {
	build := func() model.Object {
		return tr181.NewDevice().
			WithDeviceInfo(tr181.NewDeviceInfo().WithManufacturer("Acme").WithUpTime(42))
	}

	a, err := MarshalCBOR(build())
	require.NoError(t, err)
	b, err := MarshalCBOR(build())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	var m map[string]any
	require.NoError(t, cbor.Unmarshal(a, &m))
	assert.Contains(t, m, "DeviceInfo")
	assert.NotContains(t, m, "XMLName")
	assert.NotContains(t, m, "IP")
}

func TestDocumentRoundTrip(t *testing.T) {
	vs := tr104.NewVoiceService().WithAlias("voice")

	data, err := EncodeDocument(vs)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, cbor.Unmarshal(data, &doc))
	assert.Equal(t, "VoiceService.{i}.", doc.Model)

	obj, err := DecodeDocument(data)
	require.NoError(t, err)
	got, ok := obj.(*tr104.VoiceService)
	require.True(t, ok)
	assert.Equal(t, "voice", got.Alias)
}

func TestDecodeDocumentErrors(t *testing.T) {
	_, err := DecodeDocument([]byte{0xff})
	assert.ErrorIs(t, err, ErrInvalidDocument)

	missing, err := cbor.Marshal(map[string]string{"model": "Device."})
	require.NoError(t, err)
	_, err = DecodeDocument(missing)
	assert.ErrorIs(t, err, ErrInvalidDocument)

	unknown, err := cbor.Marshal(Document{Model: "Device.WiFi.", Object: cbor.RawMessage{0xa0}})
	require.NoError(t, err)
	_, err = DecodeDocument(unknown)
	assert.True(t, errors.Is(err, model.ErrUnknownObject))
}

func TestEncodeUnknownFormat(t *testing.T) {
	_, err := Encode(Format(9), tr181.NewDevice())
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = Decode(Format(9), nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, "unknown", Format(9).String())
}

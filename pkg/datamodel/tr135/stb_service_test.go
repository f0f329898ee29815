package tr135

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-models/cwmp-go/internal/modeltest"
	"github.com/cwmp-models/cwmp-go/pkg/codec"
	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/cwmp-models/cwmp-go/pkg/params"
	"github.com/cwmp-models/cwmp-go/pkg/types"
)

func TestObjectsConform(t *testing.T) {
	objects := modeltest.Objects("STBService")
	assert.Len(t, objects, 7)
	for _, meta := range objects {
		t.Run(meta.Type, func(t *testing.T) {
			modeltest.Report(t, modeltest.CheckObject(meta))
		})
	}
}

func TestDefaults(t *testing.T) {
	assert.True(t, NewSTBService().Enable)
	assert.False(t, NewVideoDecoder().Enable)
	assert.Equal(t, "Disabled", NewAudioDecoder().Status)
	assert.Equal(t, "Auto", NewHDMI().ResolutionMode)
	assert.Equal(t, "Absent", NewHDMIDisplayDevice().Status)
	assert.Nil(t, NewHDMI().DisplayDevice)
}

func sampleSTB() *STBService {
	return NewSTBService().
		WithAlias("stb").
		WithCapabilities(NewCapabilities().
			WithMaxActiveAVStreams(-1).
			WithVideoStandards(types.StringList{"MPEG2-Part2", "MPEG4-Part10"})).
		WithComponents(NewComponents().
			WithVideoDecoder(NewVideoDecoder().WithAlias("vd1").WithContentAspectRatio("16:9")).
			WithHDMI(NewHDMI().
				WithAlias("hdmi1").
				WithDisplayDevice(NewHDMIDisplayDevice().
					WithStatus("Present").
					WithEEDID(types.MustParseHexBinary("00ffffffffffff00")))))
}

func TestXMLRoundTrip(t *testing.T) {
	stb := sampleSTB()

	data, err := codec.MarshalXML(stb)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<EEDID>00ffffffffffff00</EEDID>")
	assert.Contains(t, string(data), "<VideoStandards>MPEG2-Part2,MPEG4-Part10</VideoStandards>")

	got, err := codec.DecodeXML(data)
	require.NoError(t, err)
	require.IsType(t, &STBService{}, got)
	assert.Empty(t, modeltest.Diff(stb, got))
}

func TestCBORRoundTrip(t *testing.T) {
	stb := NewSTBService()
	require.NoError(t, modeltest.Populate(stb, 2))

	data, err := codec.Encode(codec.FormatCBOR, stb)
	require.NoError(t, err)
	got, err := codec.Decode(codec.FormatCBOR, data)
	require.NoError(t, err)
	assert.Empty(t, modeltest.Diff(stb, got))
}

func TestRootInstance(t *testing.T) {
	values, err := params.GetParameterValues(sampleSTB(),
		[]string{"STBService.2.Components.HDMI.[hdmi1].DisplayDevice.Status"},
		params.WithRootInstance(2))
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "STBService.2.Components.HDMI.1.DisplayDevice.Status", values[0].Name)
	assert.Equal(t, "Present", values[0].Value)

	_, err = params.GetParameterValues(sampleSTB(), []string{"STBService.1.Enable"}, params.WithRootInstance(2))
	assert.ErrorIs(t, err, &params.Fault{Code: params.FaultInvalidParameterName})
}

func TestValidateEnumeration(t *testing.T) {
	stb := sampleSTB()
	require.NoError(t, model.Validate(stb))

	stb.Components.VideoDecoder[0].ContentAspectRatio = "21:9"
	err := model.Validate(stb)
	assert.True(t, errors.Is(err, model.ErrConstraint), "Validate error = %v", err)
	assert.ErrorContains(t, err, "ContentAspectRatio")
}

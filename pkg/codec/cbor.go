package codec

import (
	"errors"
	"fmt"

	"github.com/cwmp-models/cwmp-go/pkg/model"
	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for documents.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for documents.
var decMode cbor.DecMode

func init() {
	var err error

	// Configure encoder for deterministic output
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Unknown keys are ignored so documents from newer models still decode
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// ErrInvalidDocument is returned when a CBOR document envelope is malformed.
var ErrInvalidDocument = errors.New("invalid document")

// Document is the CBOR envelope of an object.
type Document struct {
	// Model is the schema path of the object, e.g. "Device.".
	Model string `cbor:"model"`

	// Object is the encoded object.
	Object cbor.RawMessage `cbor:"object"`
}

// MarshalCBOR encodes an object as a CBOR map.
func MarshalCBOR(obj model.Object) ([]byte, error) {
	data, err := encMode.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", obj.CWMPObject().Name, err)
	}
	return data, nil
}

// UnmarshalCBOR decodes a CBOR map into obj.
func UnmarshalCBOR(data []byte, obj model.Object) error {
	if err := decMode.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("decoding %s: %w", obj.CWMPObject().Name, err)
	}
	return nil
}

// EncodeDocument encodes an object together with its schema path.
func EncodeDocument(obj model.Object) ([]byte, error) {
	raw, err := MarshalCBOR(obj)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(Document{Model: obj.CWMPObject().Name, Object: raw})
}

// DecodeDocument decodes a document produced by EncodeDocument. The object is
// created from the registry; its defaults apply to keys absent from the document.
func DecodeDocument(data []byte) (model.Object, error) {
	var doc Document
	if err := decMode.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if doc.Model == "" || len(doc.Object) == 0 {
		return nil, fmt.Errorf("%w: missing model or object", ErrInvalidDocument)
	}

	obj, err := model.New(doc.Model)
	if err != nil {
		return nil, err
	}
	if err := UnmarshalCBOR(doc.Object, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

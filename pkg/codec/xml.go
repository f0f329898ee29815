package codec

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/cwmp-models/cwmp-go/pkg/model"
)

// ErrNoRootElement is returned for XML input without a document element.
var ErrNoRootElement = errors.New("no root element")

// MarshalXML encodes an object as an indented XML document with header.
func MarshalXML(obj model.Object) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(obj); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", obj.CWMPObject().Name, err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// UnmarshalXML decodes an XML document into obj. Elements absent from the
// document keep their current values.
func UnmarshalXML(data []byte, obj model.Object) error {
	if err := xml.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("decoding %s: %w", obj.CWMPObject().Name, err)
	}
	return nil
}

// DecodeXML decodes an XML document whose element names a registered root
// object, e.g. <Device> or <VoiceService>.
func DecodeXML(data []byte) (model.Object, error) {
	name, err := rootElement(data)
	if err != nil {
		return nil, err
	}

	meta, err := model.LookupRoot(name)
	if err != nil {
		return nil, err
	}
	obj, err := model.New(meta.Name)
	if err != nil {
		return nil, err
	}
	if err := UnmarshalXML(data, obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func rootElement(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return "", ErrNoRootElement
		}
		if err != nil {
			return "", fmt.Errorf("reading root element: %w", err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local, nil
		}
	}
}

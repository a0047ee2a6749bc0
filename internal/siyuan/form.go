package siyuan

import (
	"bytes"
	"mime/multipart"
)

// Form accumulates multipart/form-data fields and file parts in order.
// It is fully materialized before the request is sent; there is no
// streaming of part bodies.
type Form struct {
	fields []textField
	parts  []filePart
}

type textField struct {
	name  string
	value string
}

type filePart struct {
	fieldName string
	fileName  string
	data      []byte
}

func NewForm() *Form {
	return &Form{}
}

// Text appends a text field.
func (f *Form) Text(name, value string) *Form {
	f.fields = append(f.fields, textField{name: name, value: value})
	return f
}

// File appends a file part. Repeating the same field name produces a
// repeated field on the wire, which the backend reads as an array.
func (f *Form) File(fieldName, fileName string, data []byte) *Form {
	f.parts = append(f.parts, filePart{fieldName: fieldName, fileName: fileName, data: data})
	return f
}

// Encode renders the form into a multipart body and its Content-Type.
func (f *Form) Encode() (contentType string, body []byte, err error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, field := range f.fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return "", nil, err
		}
	}
	for _, part := range f.parts {
		w, err := writer.CreateFormFile(part.fieldName, part.fileName)
		if err != nil {
			return "", nil, err
		}
		if _, err := w.Write(part.data); err != nil {
			return "", nil, err
		}
	}
	if err := writer.Close(); err != nil {
		return "", nil, err
	}
	return writer.FormDataContentType(), buf.Bytes(), nil
}

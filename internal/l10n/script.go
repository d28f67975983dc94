package l10n

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Script returns the JavaScript registering the table with the web client.
func (t *Table) Script() []byte {
	return t.script
}

// ETag returns a validator that changes whenever the script does.
func (t *Table) ETag() string {
	return t.etag
}

// ScriptName is the file name the script is downloaded as.
func (t *Table) ScriptName() string {
	return t.Language + ".js"
}

// render builds the OC.L10N.register script and its ETag
func (t *Table) render() error {
	var buf bytes.Buffer
	buf.WriteString("OC.L10N.register(\n    ")

	app, err := jsString(t.App)
	if err != nil {
		return err
	}
	buf.Write(app)
	buf.WriteString(",\n    {\n")

	for i, key := range t.keys {
		k, err := jsString(key)
		if err != nil {
			return err
		}
		v, err := jsString(t.entries[key])
		if err != nil {
			return err
		}
		buf.WriteString("    ")
		buf.Write(k)
		buf.WriteString(" : ")
		buf.Write(v)
		if i < len(t.keys)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}

	plural, err := jsString(t.PluralForms)
	if err != nil {
		return err
	}
	buf.WriteString("},\n")
	buf.Write(plural)
	buf.WriteString(");\n")

	t.script = buf.Bytes()
	sum := blake2b.Sum256(t.script)
	t.etag = hex.EncodeToString(sum[:16])
	return nil
}

// jsString encodes s as a JavaScript string literal, leaving HTML markup readable
func jsString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode %q: %w", s, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

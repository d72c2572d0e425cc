// Package reswfile reads .resw resource files (the ResX XML schema used by
// UWP and Windows App SDK projects) into raw key/value/comment entries.
//
// Only string resources are returned: <data> elements carrying a type= or
// mimetype= attribute (files, images, serialized objects) and the
// <resheader> block are skipped.
package reswfile

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minios-linux/reswkit/model"
)

// Extension is the file extension of resource files.
const Extension = ".resw"

// File is a parsed resource file.
type File struct {
	// Path is the file the entries were read from, if any.
	Path string
	// Entries are in document order.
	Entries []model.RawEntry
	// index maps key to position in Entries.
	index map[string]int
}

type xmlData struct {
	Name     string `xml:"name,attr"`
	Type     string `xml:"type,attr"`
	MimeType string `xml:"mimetype,attr"`
	Value    string `xml:"value"`
	Comment  string `xml:"comment"`
}

// ParseFile reads and parses a resource file from disk.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse parses resource file content.
func Parse(data []byte) (*File, error) {
	f := &File{index: make(map[string]int)}

	dec := xml.NewDecoder(bytes.NewReader(data))
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth != 2 || t.Name.Local != "data" {
				continue
			}
			var d xmlData
			if err := dec.DecodeElement(&d, &t); err != nil {
				return nil, fmt.Errorf("reading <data name=%q>: %w", attr(t, "name"), err)
			}
			depth--
			if d.Name == "" || d.Type != "" || d.MimeType != "" {
				continue
			}
			f.add(model.RawEntry{Key: d.Name, Value: d.Value, Comment: strings.TrimSpace(d.Comment)})

		case xml.EndElement:
			depth--
		}
	}

	if depth != 0 {
		return nil, fmt.Errorf("unexpected end of document")
	}
	return f, nil
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// add appends e. A duplicate key replaces the earlier value in place.
func (f *File) add(e model.RawEntry) {
	if i, ok := f.index[e.Key]; ok {
		f.Entries[i] = e
		return
	}
	f.index[e.Key] = len(f.Entries)
	f.Entries = append(f.Entries, e)
}

// Get returns the entry for key.
func (f *File) Get(key string) (model.RawEntry, bool) {
	i, ok := f.index[key]
	if !ok {
		return model.RawEntry{}, false
	}
	return f.Entries[i], true
}

// Keys returns all keys in document order.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.Entries))
	for _, e := range f.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// ClassName returns the accessor class name for a resource file path:
// the file name without its extension.
func ClassName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsResourceFile reports whether path has the resource file extension.
func IsResourceFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

package model

import (
	"bytes"
	"encoding/json"
)

// Coordinates holds a resolved GPS position. Latitude and longitude are
// signed decimal degrees; MapLink points at the position on Google Maps.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	MapLink   string  `json:"google_maps"`
}

// namedSection pairs a section name with its content so that sections
// serialize in the order decoders produced them.
type namedSection struct {
	name  string
	value any
}

// Record is the root output of one extraction: file identity fields plus
// zero or more named metadata sections. A Record is populated by exactly
// the decoders applicable to the file's format and is not modified after
// being returned to the caller.
type Record struct {
	Filename  string
	Filepath  string
	Size      int64
	Extension string

	sections []namedSection
	byName   map[string]any
}

// NewRecord creates a record with its identity fields populated and no
// sections.
func NewRecord(filename, filepath string, size int64, extension string) *Record {
	return &Record{
		Filename:  filename,
		Filepath:  filepath,
		Size:      size,
		Extension: extension,
		byName:    make(map[string]any),
	}
}

// AddSection attaches a named section to the record. Empty sections are
// dropped so that a decoder which found nothing leaves no trace in the
// output. Adding a name twice replaces the earlier content in place.
func (r *Record) AddSection(name string, section *Section) {
	if section == nil || section.Len() == 0 {
		return
	}
	r.add(name, section)
}

// AddCoordinates attaches a resolved coordinates section.
func (r *Record) AddCoordinates(c *Coordinates) {
	if c == nil {
		return
	}
	r.add("coordinates", c)
}

func (r *Record) add(name string, value any) {
	if _, ok := r.byName[name]; ok {
		r.byName[name] = value
		for i := range r.sections {
			if r.sections[i].name == name {
				r.sections[i].value = value
				return
			}
		}
		return
	}
	r.byName[name] = value
	r.sections = append(r.sections, namedSection{name: name, value: value})
}

// Section returns the section stored under name, or nil if no decoder
// produced it.
func (r *Record) Section(name string) *Section {
	v, ok := r.byName[name]
	if !ok {
		return nil
	}
	s, _ := v.(*Section)
	return s
}

// Coordinates returns the resolved coordinates, or nil if the file carried
// no usable GPS data.
func (r *Record) Coordinates() *Coordinates {
	v, ok := r.byName["coordinates"]
	if !ok {
		return nil
	}
	c, _ := v.(*Coordinates)
	return c
}

// HasSection reports whether a section with the given name is present.
func (r *Record) HasSection(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// SectionNames returns the names of all attached sections in the order they
// were added.
func (r *Record) SectionNames() []string {
	names := make([]string, len(r.sections))
	for i, s := range r.sections {
		names[i] = s.name
	}
	return names
}

// MarshalJSON serializes the record as a JSON object: the four identity
// fields first, then each section in the order it was attached.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(name string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(val)
		return nil
	}

	if err := writeField("filename", r.Filename); err != nil {
		return nil, err
	}
	if err := writeField("filepath", r.Filepath); err != nil {
		return nil, err
	}
	if err := writeField("size", r.Size); err != nil {
		return nil, err
	}
	if err := writeField("extension", r.Extension); err != nil {
		return nil, err
	}
	for _, s := range r.sections {
		if err := writeField(s.name, s.value); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

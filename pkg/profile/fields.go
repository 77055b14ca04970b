package profile

// Shape is the declared result type of a profile field.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeText
	ShapeBoolean
	ShapeInteger
	ShapeRecordList
	ShapeRecord
)

func (shape Shape) String() string {
	switch shape {
	case ShapeText:
		return "text"
	case ShapeBoolean:
		return "boolean"
	case ShapeInteger:
		return "integer"
	case ShapeRecordList:
		return "record_list"
	case ShapeRecord:
		return "record"
	}

	return "unknown"
}

// Descriptor pairs a profile field name with its declared shape.
type Descriptor struct {
	Name  string
	Shape Shape
}

var descriptors = []Descriptor{
	{"hash", ShapeText},
	{"display_name", ShapeText},
	{"profile_url", ShapeText},
	{"avatar_url", ShapeText},
	{"avatar_alt_text", ShapeText},
	{"location", ShapeText},
	{"description", ShapeText},
	{"job_title", ShapeText},
	{"company", ShapeText},
	{"verified_accounts", ShapeRecordList},
	{"pronunciation", ShapeText},
	{"pronouns", ShapeText},
	{"timezone", ShapeText},
	{"languages", ShapeRecordList},
	{"first_name", ShapeText},
	{"last_name", ShapeText},
	{"is_organization", ShapeBoolean},
	{"header_image", ShapeText},
	{"background_color", ShapeText},
	{"links", ShapeRecordList},
	{"interests", ShapeRecordList},
	{"payments", ShapeRecord},
	{"contact_info", ShapeRecord},
	{"gallery", ShapeRecordList},
	{"number_verified_accounts", ShapeInteger},
	{"last_profile_edit", ShapeText},
	{"registration_date", ShapeText},
}

var byName = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		m[d.Name] = d
	}
	return m
}()

// Lookup returns the descriptor for a known field name.
func Lookup(field string) (Descriptor, bool) {
	d, ok := byName[field]
	return d, ok
}

// Fields returns every known descriptor in Gravatar's documented order.
func Fields() []Descriptor {
	return append([]Descriptor(nil), descriptors...)
}

// Names returns the known field names in the same order as Fields.
func Names() []string {
	names := make([]string, len(descriptors))
	for i, d := range descriptors {
		names[i] = d.Name
	}
	return names
}

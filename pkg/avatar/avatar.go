/*
Package avatar models the avatars attached to the authenticated Gravatar
account and resolves which one is currently selected.
*/
package avatar

import "encoding/json"

/*
Record is one avatar as returned by the avatar listing. Fields are the
ones the adapter reads; the full decoded object is kept for pass-through.
*/
type Record struct {
	ImageID     string `json:"image_id"`
	ImageURL    string `json:"image_url"`
	Rating      string `json:"rating,omitempty"`
	AltText     string `json:"alt_text,omitempty"`
	Selected    bool   `json:"selected"`
	UpdatedDate string `json:"updated_date,omitempty"`

	raw map[string]any
}

func (record *Record) UnmarshalJSON(data []byte) error {
	type plain Record

	var typed plain
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*record = Record(typed)
	record.raw = raw
	return nil
}

/*
MarshalJSON renders the object exactly as the API returned it, falling back to
the typed fields for records built in code.
*/
func (record Record) MarshalJSON() ([]byte, error) {
	if record.raw != nil {
		return json.Marshal(record.raw)
	}

	type plain Record
	return json.Marshal(plain(record))
}

/*
SelectActive returns the first selected record in list order. The list is
scanned as given and never reordered.
*/
func SelectActive(records []Record) (Record, bool) {
	for _, record := range records {
		if record.Selected {
			return record, true
		}
	}

	return Record{}, false
}

// Image is the raw payload behind an avatar's image URL.
type Image struct {
	URL      string
	MIMEType string
	Data     []byte
}

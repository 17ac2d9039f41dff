package teams

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is the server-assigned team identifier. It is opaque to the console and only
// used to address deletes. Collection servers emit it as a JSON number or string;
// both decode to the same textual form.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("team id: expected string or number, got %s", data)
	}
	*id = ID(n.String())
	return nil
}

// String returns the textual id.
func (id ID) String() string { return string(id) }

// IsZero reports whether no id has been assigned.
func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

// Team is a record of the remote teams collection.
type Team struct {
	ID         ID     `json:"id"`
	Name       string `json:"name"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
	City       string `json:"city"`
}

// Fields are the values a user submits to create a team. The server assigns the id.
type Fields struct {
	Name       string `json:"name"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
	City       string `json:"city"`
}

// Fields returns the user-supplied values of the team.
func (t Team) Fields() Fields {
	return Fields{
		Name:       t.Name,
		Conference: t.Conference,
		Division:   t.Division,
		City:       t.City,
	}
}

// WithID builds a team from submitted fields and a server-assigned id.
func (f Fields) WithID(id ID) Team {
	return Team{
		ID:         id,
		Name:       f.Name,
		Conference: f.Conference,
		Division:   f.Division,
		City:       f.City,
	}
}

// IsEmpty reports whether every field is blank.
func (f Fields) IsEmpty() bool {
	return f == Fields{}
}

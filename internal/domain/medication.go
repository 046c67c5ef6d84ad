package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Medication is one prescription line on a patient chart.
type Medication struct {
	Name       string `json:"name"`
	Strength   string `json:"strength,omitempty"`
	Form       string `json:"form,omitempty"`
	Directions string `json:"directions,omitempty"`
	Quantity   string `json:"quantity,omitempty"`
	Refills    int    `json:"refills,omitempty"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// Separators of the single-line medication format.
const (
	medNameSep   = " — "
	medDetailSep = " · "
)

const (
	medTagDirections = "directions: "
	medTagQty        = "qty: "
	medTagStrength   = "strength:"
	medTagForm       = "form: "
	medTagStart      = "start: "
	medTagEnd        = "end: "
	medTagNotes      = "notes: "
)

var medTags = []string{medTagDirections, medTagQty, medTagStrength, medTagForm, medTagStart, medTagEnd, medTagNotes}

var (
	strengthRe = regexp.MustCompile(`^(.*\S)\s+(\d+(?:[.,]\d+)?\s*(?:mg|mcg|µg|g|ml|mL|IU|units?|%))$`)
	refillsRe  = regexp.MustCompile(`^(\d+) refills?$`)
)

// Line renders m in the single-line display format:
//
//	<name>[ <strength>] — <directions> · <quantity> · <n> refills · form: <form> · start: <date> · end: <date> · notes: <text>
//
// Empty parts are omitted. The refill count is written whenever a quantity or
// a non-zero count is present. Directions and quantity are written untagged
// unless they would read back as something else. A strength that would not
// split off the name again moves to a "strength:" detail, which is written
// bare when the name alone looks like it carries a strength.
func (m Medication) Line() string {
	head := m.Name
	var parts []string

	name, strength := splitHead(joinHead(m.Name, m.Strength))
	if name == m.Name && strength == m.Strength {
		head = joinHead(m.Name, m.Strength)
	} else {
		parts = append(parts, strings.TrimSpace(medTagStrength+" "+m.Strength))
	}

	directionsTagged := false
	if m.Directions != "" {
		if looksTagged(m.Directions) {
			parts = append(parts, medTagDirections+m.Directions)
			directionsTagged = true
		} else {
			parts = append(parts, m.Directions)
		}
	}
	switch {
	case m.Quantity == "":
	case m.Directions == "" || directionsTagged || looksTagged(m.Quantity):
		parts = append(parts, medTagQty+m.Quantity)
	default:
		parts = append(parts, m.Quantity)
	}
	if m.Quantity != "" || m.Refills > 0 {
		parts = append(parts, formatRefills(m.Refills))
	}
	if m.Form != "" {
		parts = append(parts, medTagForm+m.Form)
	}
	if m.StartDate != "" {
		parts = append(parts, medTagStart+m.StartDate)
	}
	if m.EndDate != "" {
		parts = append(parts, medTagEnd+m.EndDate)
	}
	if m.Notes != "" {
		parts = append(parts, medTagNotes+m.Notes)
	}

	if len(parts) == 0 {
		return head
	}
	return head + medNameSep + strings.Join(parts, medDetailSep)
}

func joinHead(name, strength string) string {
	if strength == "" {
		return name
	}
	return name + " " + strength
}

// splitHead separates a trailing strength such as "10 mg" from the name.
func splitHead(head string) (name, strength string) {
	if sm := strengthRe.FindStringSubmatch(head); sm != nil {
		return sm[1], sm[2]
	}
	return head, ""
}

// looksTagged reports whether an untagged detail would be parsed as a tag
// or a refill count.
func looksTagged(part string) bool {
	part = strings.TrimSpace(part)
	if refillsRe.MatchString(part) {
		return true
	}
	for _, tag := range medTags {
		if strings.HasPrefix(part, tag) {
			return true
		}
	}
	return false
}

func formatRefills(n int) string {
	if n == 1 {
		return "1 refill"
	}
	return strconv.Itoa(n) + " refills"
}

// ParseMedicationLine decodes the single-line format produced by Line. It
// also accepts the free-form lines of older charts: the first untagged detail
// is the directions, the next one the quantity, and an "N refills" detail the
// refill count. Anything left over lands in Notes.
func ParseMedicationLine(line string) (Medication, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Medication{}, NewValidationError("medication", "required")
	}

	head, details, _ := strings.Cut(line, medNameSep)
	head = strings.TrimSpace(head)

	var (
		m              Medication
		strengthTagged bool
		extra          []string
	)
	for _, part := range strings.Split(details, medDetailSep) {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
		case strings.HasPrefix(part, medTagDirections):
			m.Directions = strings.TrimPrefix(part, medTagDirections)
		case strings.HasPrefix(part, medTagQty):
			m.Quantity = strings.TrimPrefix(part, medTagQty)
		case strings.HasPrefix(part, medTagStrength):
			m.Strength = strings.TrimSpace(strings.TrimPrefix(part, medTagStrength))
			strengthTagged = true
		case strings.HasPrefix(part, medTagForm):
			m.Form = strings.TrimPrefix(part, medTagForm)
		case strings.HasPrefix(part, medTagStart):
			m.StartDate = strings.TrimPrefix(part, medTagStart)
		case strings.HasPrefix(part, medTagEnd):
			m.EndDate = strings.TrimPrefix(part, medTagEnd)
		case strings.HasPrefix(part, medTagNotes):
			m.Notes = strings.TrimPrefix(part, medTagNotes)
		case refillsRe.MatchString(part):
			n, err := strconv.Atoi(refillsRe.FindStringSubmatch(part)[1])
			if err != nil {
				return Medication{}, NewValidationError("medication", fmt.Sprintf("bad refill count %q", part))
			}
			m.Refills = n
		case m.Directions == "" && m.Quantity == "":
			m.Directions = part
		case m.Quantity == "":
			m.Quantity = part
		default:
			extra = append(extra, part)
		}
	}

	if strengthTagged {
		m.Name = head
	} else {
		m.Name, m.Strength = splitHead(head)
	}
	if m.Name == "" {
		return Medication{}, NewValidationError("medication", "name required")
	}

	if len(extra) > 0 {
		rest := strings.Join(extra, medDetailSep)
		if m.Notes == "" {
			m.Notes = rest
		} else {
			m.Notes = rest + medDetailSep + m.Notes
		}
	}

	return m, nil
}

// medicationList decodes both structured entries and legacy single-line
// strings, so charts saved before meds were structured still load.
type medicationList []Medication

func (l *medicationList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode meds: %w", err)
	}

	out := make(medicationList, 0, len(raw))
	for _, item := range raw {
		var line string
		if err := json.Unmarshal(item, &line); err == nil {
			m, err := ParseMedicationLine(line)
			if err != nil {
				continue
			}
			out = append(out, m)
			continue
		}

		var m Medication
		if err := json.Unmarshal(item, &m); err != nil {
			return fmt.Errorf("decode medication: %w", err)
		}
		out = append(out, m)
	}

	*l = out
	return nil
}
